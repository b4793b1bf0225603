package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// Archiver finalises archive entries into a single binary blob.
type Archiver interface {
	// Build writes entries in order at the archive root and returns the
	// finalised archive. modified is recorded as each entry's timestamp.
	Build(ctx context.Context, entries []domain.Entry, modified time.Time) ([]byte, error)

	// ContentType returns the MIME type of the produced blob.
	ContentType() string
}
