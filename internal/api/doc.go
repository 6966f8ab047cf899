// Package api implements the typed HTTP client for the Reels content backend.
// It is the single point of HTTP egress: every call attaches the bearer token
// when one is available, reports failures as *Error values carrying the
// backend's structured detail, and notifies the configured handler exactly
// once per call that is rejected with 401.
package api
