// Package history provides client-side filtering of the generation history
// and a local SQLite cache of generated content. The cache records every
// result the CLI produces so history stays browsable when the backend list
// endpoint is unavailable.
package history
