package driven

import "context"

// ArchiveSaver delivers a finalised archive to its destination.
// It is the terminal side effect of an export.
type ArchiveSaver interface {
	// Save stores data under name and returns where it was placed.
	Save(ctx context.Context, name string, data []byte) (string, error)
}
