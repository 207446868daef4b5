// Package models defines the client-side records exchanged with the
// HouseConnect backend and the session identity persisted between runs.
//
// Optional backend fields are explicit pointers or omitempty fields; the
// client never probes for alternative field names.
package models
