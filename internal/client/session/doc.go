// Package session holds the signed-in user of the client: the bearer token
// and the identity derived at login.
//
// A Store starts HYDRATING. Hydrate restores a persisted session once at
// boot and settles the status to AUTHENTICATED or ANONYMOUS; Ready is closed
// at that point. Afterwards only Login, Logout and Invalidate change the
// state, and they always replace token and identity together.
//
// Storage is pluggable; SQLStorage keeps the session in the local SQLite
// metadata table.
package session
