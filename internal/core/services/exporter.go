package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
	"github.com/custodia-labs/flowpack/internal/core/ports/driving"
	"github.com/custodia-labs/flowpack/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driving.Exporter = (*Exporter)(nil)

// Exporter fetches every descriptor of a manifest, packages the retrieved
// documents into an archive and hands the archive to a saver.
// It holds no state between runs; every call re-fetches.
type Exporter struct {
	fetcher  driven.DocumentFetcher
	archiver driven.Archiver
	saver    driven.ArchiveSaver
	settings domain.ExportSettings

	now   func() time.Time
	newID func() string
}

// NewExporter creates a new exporter.
// The saver is optional - if nil, the archive is only returned in the result.
func NewExporter(
	fetcher driven.DocumentFetcher,
	archiver driven.Archiver,
	saver driven.ArchiveSaver,
	settings domain.ExportSettings,
) *Exporter {
	return &Exporter{
		fetcher:  fetcher,
		archiver: archiver,
		saver:    saver,
		settings: settings,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Settings returns the settings the exporter runs with.
func (e *Exporter) Settings() domain.ExportSettings {
	return e.settings
}

// Export runs one export of the manifest.
//
// Fetch failures are isolated per descriptor and reported in the result.
// Serialisation, finalisation and save failures abort the run and no
// archive is saved.
func (e *Exporter) Export(ctx context.Context, manifest *domain.Manifest) (*domain.ExportResult, error) {
	if manifest == nil {
		return nil, fmt.Errorf("%w: manifest is required", domain.ErrInvalidInput)
	}
	if e.fetcher == nil {
		return nil, errors.New("export: document fetcher not configured")
	}
	if e.archiver == nil {
		return nil, errors.New("export: archiver not configured")
	}

	result := &domain.ExportResult{
		RunID:       e.newID(),
		ArchiveName: manifest.ArchiveFilename(),
		StartedAt:   e.now(),
	}

	logger.Section("Export " + result.RunID)
	logger.Info("Exporting %d documents into %s", manifest.Len(), result.ArchiveName)

	// 1. Fetch all descriptors; failures are recorded, not returned
	docs, failures := e.fetchAll(ctx, manifest.Descriptors())
	result.Failures = failures

	if len(docs) == 0 {
		if e.settings.EmptyArchive == domain.EmptyArchiveFail {
			errs := []error{domain.ErrNoDocuments}
			for _, f := range failures {
				errs = append(errs, f)
			}
			return nil, errors.Join(errs...)
		}
		logger.Warn("No documents retrieved, producing an empty archive")
	}

	// 2. Serialise each document in manifest order
	entries := make([]domain.Entry, 0, len(docs))
	for _, doc := range docs {
		content, err := Serialise(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", domain.ErrSerialise, doc.Name, err)
		}

		logger.Debug("zip filename: %s", doc.Filename())
		logger.Debug("zip contents length: %d", len(content))

		entries = append(entries, domain.Entry{
			Filename: doc.Filename(),
			Content:  content,
		})
	}

	// 3. Package and finalise
	archive, err := e.archiver.Build(ctx, entries, result.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrArchive, err)
	}
	result.Archive = archive

	result.Entries = make([]domain.EntrySummary, len(entries))
	for i, entry := range entries {
		result.Entries[i] = domain.EntrySummary{Filename: entry.Filename, Size: entry.Size()}
	}
	logger.Debug("number of flows zipped: %d", len(entries))

	// 4. Hand off to the saver
	if e.saver != nil {
		location, err := e.saver.Save(ctx, result.ArchiveName, archive)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrSave, err)
		}
		result.Location = location
	}

	result.FinishedAt = e.now()
	logger.Info("Export complete: %d entries, %d failures, %d bytes",
		len(result.Entries), len(result.Failures), len(result.Archive))

	return result, nil
}

// fetchAll retrieves every descriptor concurrently and waits for all of them
// to settle. Successes are returned in descriptor order.
func (e *Exporter) fetchAll(
	ctx context.Context,
	descriptors []domain.Descriptor,
) ([]domain.Document, []domain.FetchFailure) {
	type outcome struct {
		doc domain.Document
		err error
	}
	outcomes := make([]outcome, len(descriptors))

	var g errgroup.Group
	if e.settings.MaxConcurrency > 0 {
		g.SetLimit(e.settings.MaxConcurrency)
	}

	for i, d := range descriptors {
		g.Go(func() error {
			body, err := e.fetchOne(ctx, d)
			outcomes[i] = outcome{
				doc: domain.Document{Name: d.Name, Locator: d.Locator, Body: body},
				err: err,
			}
			// Never fail the group: one failure must not cancel siblings.
			return nil
		})
	}
	_ = g.Wait()

	docs := make([]domain.Document, 0, len(descriptors))
	var failures []domain.FetchFailure
	for i, o := range outcomes {
		if o.err != nil {
			failure := domain.FetchFailure{
				Name:    descriptors[i].Name,
				Locator: descriptors[i].Locator,
				Err:     o.err,
			}
			logger.Error("Failed to download flow: %s --- from: %s: %v",
				failure.Name, failure.Locator, failure.Err)
			failures = append(failures, failure)
			continue
		}
		docs = append(docs, o.doc)
	}

	return docs, failures
}

func (e *Exporter) fetchOne(ctx context.Context, d domain.Descriptor) ([]byte, error) {
	if e.settings.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.settings.FetchTimeout)
		defer cancel()
	}

	logger.Debug("fetching flow: %s", d.Name)
	logger.Debug("fetching from url: %s", d.Locator)

	body, err := e.fetcher.Fetch(ctx, d.Locator)
	if err != nil {
		return nil, err
	}
	return body, nil
}
