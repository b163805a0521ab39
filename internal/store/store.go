// Package store persists the serialized trip document. The document is one
// opaque JSON blob; decoding, migration, and defaulting are the domain
// package's job, so every implementation here moves bytes only.
//
// Three implementations exist: File (the default, one JSON file on disk),
// Postgres (a single jsonb row, used when DATABASE_URL is set), and Memory
// (tests).
package store

import "context"

// DocumentStore loads and saves the single document blob.
// Load returns (nil, nil) when no document has ever been saved; callers
// fall back to the built-in defaults. Save replaces the blob wholesale;
// the last writer wins, there is no versioning or merge.
type DocumentStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, raw []byte) error
}
