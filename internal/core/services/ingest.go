package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driving"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService enriches documents before indexing them.
type IngestService struct {
	engine      driven.SearchEngine
	enricher    driving.EnrichmentService
	normalisers driven.NormaliserRegistry
	journal     driven.DocumentStore
	newID       func() string
}

// NewIngestService creates an ingest service.
// The journal is optional (can be nil); without it Reindex is unavailable.
func NewIngestService(
	engine driven.SearchEngine,
	enricher driving.EnrichmentService,
	normalisers driven.NormaliserRegistry,
	journal driven.DocumentStore,
) *IngestService {
	return &IngestService{
		engine:      engine,
		enricher:    enricher,
		normalisers: normalisers,
		journal:     journal,
		newID:       func() string { return uuid.New().String() },
	}
}

// IndexDocument journals, enriches and indexes one document.
func (s *IngestService) IndexDocument(
	ctx context.Context, doc domain.Document, opts domain.EnrichOptions,
) (string, error) {
	if s.engine == nil {
		return "", domain.ErrSearchUnavailable
	}

	raw, err := s.prepare(ctx, doc)
	if err != nil {
		return "", err
	}

	enriched := s.enricher.Enrich(ctx, raw, opts)
	if err := s.engine.Index(ctx, raw.ID, enriched); err != nil {
		return "", fmt.Errorf("index document %s: %w", raw.ID, err)
	}
	logger.Info("Indexed %s (%s)", raw.ID, enriched.LocationSource)
	return raw.ID, nil
}

// BulkIndex enriches documents one after another, then indexes them in
// a single call. Journal failures skip the document and are reported.
func (s *IngestService) BulkIndex(
	ctx context.Context, docs []domain.Document, opts domain.EnrichOptions,
) (domain.BulkResult, error) {
	result := domain.BulkResult{Total: len(docs)}
	if len(docs) == 0 {
		return result, nil
	}
	if s.engine == nil {
		return result, domain.ErrSearchUnavailable
	}

	logger.Section("Bulk Enrichment")
	reqs := make([]driven.IndexRequest, 0, len(docs))
	for _, doc := range docs {
		raw, err := s.prepare(ctx, doc)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		reqs = append(reqs, driven.IndexRequest{ID: raw.ID, Document: s.enricher.Enrich(ctx, raw, opts)})
	}
	if len(reqs) == 0 {
		return result, nil
	}

	indexed, err := s.engine.BulkIndex(ctx, reqs)
	if err != nil {
		return result, fmt.Errorf("bulk index: %w", err)
	}
	result.Success = indexed.Success
	result.Failed += indexed.Failed
	result.Errors = append(result.Errors, indexed.Errors...)
	logger.Info("Bulk indexed %d/%d documents", result.Success, result.Total)
	return result, nil
}

// IndexFile reads a file with the matching normaliser and indexes its documents.
func (s *IngestService) IndexFile(
	ctx context.Context, path string, opts domain.EnrichOptions,
) (domain.BulkResult, error) {
	if s.normalisers == nil {
		return domain.BulkResult{}, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedType)
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType := mime.TypeByExtension(ext)
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}

	normaliser, err := s.normalisers.Get(mimeType, ext)
	if err != nil {
		return domain.BulkResult{}, fmt.Errorf("%s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return domain.BulkResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	docs, err := normaliser.Normalise(ctx, &domain.RawDocument{URI: path, MIMEType: mimeType, Content: content})
	if err != nil {
		return domain.BulkResult{}, fmt.Errorf("normalise %s: %w", path, err)
	}
	for i := range docs {
		if docs[i].SourceFile == "" {
			docs[i].SourceFile = path
		}
	}
	logger.Debug("Read %d documents from %s", len(docs), path)

	return s.BulkIndex(ctx, docs, opts)
}

// IndexDirectory indexes every supported, non-hidden file directly inside dir.
// A file that fails counts as one failed entry; the walk continues.
func (s *IngestService) IndexDirectory(
	ctx context.Context, dir string, opts domain.EnrichOptions,
) (domain.BulkResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.BulkResult{}, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var total domain.BulkResult
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || !s.Supports(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		res, err := s.IndexFile(ctx, path, opts)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return total, err
			}
			total.Total++
			total.Failed++
			total.Errors = append(total.Errors, err.Error())
			continue
		}
		total.Total += res.Total
		total.Success += res.Success
		total.Failed += res.Failed
		total.Errors = append(total.Errors, res.Errors...)
	}
	return total, nil
}

// Supports reports whether a file name has a registered extension.
func (s *IngestService) Supports(name string) bool {
	if s.normalisers == nil {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range s.normalisers.SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Reindex re-runs the whole pipeline on fresh copies of journaled documents.
func (s *IngestService) Reindex(ctx context.Context, opts domain.EnrichOptions) (domain.BulkResult, error) {
	if s.journal == nil {
		return domain.BulkResult{}, domain.ErrJournalUnavailable
	}
	if s.engine == nil {
		return domain.BulkResult{}, domain.ErrSearchUnavailable
	}

	docs, err := s.journal.List(ctx)
	if err != nil {
		return domain.BulkResult{}, fmt.Errorf("list journal: %w", err)
	}
	logger.Info("Re-indexing %d journaled documents", len(docs))

	result := domain.BulkResult{Total: len(docs)}
	if len(docs) == 0 {
		return result, nil
	}
	reqs := make([]driven.IndexRequest, len(docs))
	for i, doc := range docs {
		reqs[i] = driven.IndexRequest{ID: doc.ID, Document: s.enricher.Enrich(ctx, doc.Clone(), opts)}
	}
	indexed, err := s.engine.BulkIndex(ctx, reqs)
	if err != nil {
		return result, fmt.Errorf("bulk index: %w", err)
	}
	result.Success = indexed.Success
	result.Failed = indexed.Failed
	result.Errors = indexed.Errors
	return result, nil
}

// Stats describes the index and the journal.
func (s *IngestService) Stats(ctx context.Context) (domain.IndexStats, error) {
	if s.engine == nil {
		return domain.IndexStats{}, domain.ErrSearchUnavailable
	}
	total, err := s.engine.Count(ctx)
	if err != nil {
		return domain.IndexStats{}, err
	}
	stats := domain.IndexStats{Backend: s.engine.Name(), TotalDocuments: total}
	if s.journal != nil {
		if n, err := s.journal.Count(ctx); err == nil {
			stats.JournaledDocuments = n
		}
	}
	return stats, nil
}

// prepare assigns an ID and journals the caller's copy.
func (s *IngestService) prepare(ctx context.Context, doc domain.Document) (domain.Document, error) {
	raw := doc.Clone()
	if raw.ID == "" {
		raw.ID = s.newID()
	}
	if s.journal != nil {
		if err := s.journal.Save(ctx, raw); err != nil {
			return raw, fmt.Errorf("journal document %s: %w", raw.ID, err)
		}
	}
	return raw, nil
}
