// Package session owns the client-held authentication state: the persisted
// token store and the auth state machine driving login, logout, user loading,
// and refresh-before-expiry on rejected calls.
package session
