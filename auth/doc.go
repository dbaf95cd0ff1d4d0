// Package auth provides client-side inspection of marketplace access
// tokens. The API issues JWT bearer tokens; this package decodes them
// without signature verification (the signing secret lives on the server)
// so callers can read the subject and expiry, e.g. to drop a stale session
// before issuing a request that would fail with 401.
package auth
