package driving

import (
	"context"

	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// Exporter fetches a manifest's documents and packages them into an archive.
type Exporter interface {
	// Export runs one fetch, serialise, package, finalise and save pass.
	// Individual fetch failures are reported in the result, not returned.
	Export(ctx context.Context, manifest *domain.Manifest) (*domain.ExportResult, error)
}
