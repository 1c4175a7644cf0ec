package repository

import "context"

// SequenceRepository derives receipt numbers from the persisted counter.
// Numbers are strictly increasing and never reused across restarts.
// Single-writer only: concurrent sessions are not supported.
type SequenceRepository interface {
	// Next returns the identifier that the next finalize would use,
	// zero-padded to 4 digits, without advancing the counter.
	Next(ctx context.Context) (string, error)
	// Commit persists the given identifier as the new last-used value.
	// Called only after a successful finalize so that failed attempts
	// never advance the counter.
	Commit(ctx context.Context, number string) error
}
