package usecase

import (
	"context"

	"github.com/pricelens/backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// maxImagesPerRequest caps how many photos are forwarded to the model.
// Extra images are dropped silently, never rejected.
const maxImagesPerRequest = 5

// AppraisalService orchestrates the two-stage model pipeline and the
// catalog lookup. The two calls are strictly sequential: enrichment is
// keyed on the extraction output. Either call may fail without failing
// the request; the merger works with whatever sources survived.
type AppraisalService struct {
	model   domain.ModelClient
	catalog domain.CatalogRepository
}

// NewAppraisalService creates an appraisal service with its dependencies.
func NewAppraisalService(model domain.ModelClient, catalog domain.CatalogRepository) *AppraisalService {
	return &AppraisalService{
		model:   model,
		catalog: catalog,
	}
}

// Analyze runs the full appraisal for 1-5 product photos.
// Flow: extract fields from images -> research the derived query ->
// catalog lookup -> merge. Only the zero-image precondition aborts.
func (s *AppraisalService) Analyze(ctx context.Context, images []domain.Image) (*domain.MergedResult, error) {
	if len(images) == 0 {
		return nil, domain.ErrImageRequired
	}
	if len(images) > maxImagesPerRequest {
		images = images[:maxImagesPerRequest]
	}

	vision := s.extract(ctx, images)

	var extra *domain.EnrichmentResult
	if query := vision.Query(); query != "" {
		extra = s.enrich(ctx, query)
	}

	entry, _ := s.catalog.Lookup(domain.LookupQuery{
		JAN:   vision.JAN,
		UPC:   vision.UPC,
		Name:  vision.Name,
		Model: vision.Model,
	})

	return MergeResult(vision, extra, entry), nil
}

// extract runs the image call. Failures degrade to the empty result.
func (s *AppraisalService) extract(ctx context.Context, images []domain.Image) domain.ExtractionResult {
	raw, err := s.model.GenerateFromImages(ctx, extractionPrompt, images)
	if err != nil {
		log.Warn().Err(err).Int("images", len(images)).Msg("extraction call failed, continuing without")
		return domain.ExtractionResult{}
	}
	return ParseExtraction(raw)
}

// enrich runs the research call once, never retried. Failures degrade to
// no enrichment.
func (s *AppraisalService) enrich(ctx context.Context, query string) *domain.EnrichmentResult {
	raw, err := s.model.GenerateText(ctx, enrichmentSystemPrompt, enrichmentPrompt(query))
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("enrichment call failed, continuing without")
		return nil
	}
	return ParseEnrichment(raw)
}
