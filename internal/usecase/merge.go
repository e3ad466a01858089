package usecase

import "github.com/pricelens/backend/internal/domain"

// MergeResult reconciles the three possibly-absent sources into one
// response. Field precedence is a hard contract: enrichment (freshest,
// most specific) outranks the static catalog, which outranks raw
// unverified extraction. Currency is always forced to the display unit.
func MergeResult(vision domain.ExtractionResult, extra *domain.EnrichmentResult, entry *domain.CatalogEntry) *domain.MergedResult {
	result := &domain.MergedResult{
		Name:        vision.Name,
		Model:       vision.Model,
		JAN:         vision.JAN,
		UPC:         vision.UPC,
		ReleaseDate: vision.ReleaseDate,
		Currency:    domain.DisplayCurrency,
		MSRP:        vision.MSRP,
		Confidence:  vision.Confidence,
		Notes:       vision.Notes,
	}

	var (
		enrichRelease, enrichDescription, enrichMarket string
		enrichMSRP                                     float64
	)
	if extra != nil {
		enrichRelease = extra.OfficialRelease
		enrichDescription = extra.Description
		enrichMarket = extra.MarketOverview
		enrichMSRP = extra.OfficialMSRPJPY
	}

	var (
		catalogTitle, catalogRelease string
		catalogMSRP                  float64
	)
	if entry != nil {
		catalogTitle = entry.Title
		catalogRelease = entry.OfficialRelease
		catalogMSRP = entry.OfficialMSRP
	}

	officialMSRP := firstNonZero(enrichMSRP, catalogMSRP, vision.MSRP)

	result.Enriched = domain.EnrichedInfo{
		// Enrichment carries no title; the flat name field is the
		// presentation fallback when the catalog has none either.
		Title:           catalogTitle,
		OfficialRelease: firstNonEmpty(enrichRelease, catalogRelease, vision.ReleaseDate),
		OfficialMSRP:    officialMSRP,
		Currency:        domain.DisplayCurrency,
		Description:     enrichDescription,
		MarketOverview:  enrichMarket,
	}

	if hint := EstimateUsedRange(officialMSRP); hint != nil {
		result.Enriched.UsedHintMin = hint.Min
		result.Enriched.UsedHintMax = hint.Max
		// Legacy top-level duplicates for older clients
		result.UsedPriceMin = hint.Min
		result.UsedPriceMax = hint.Max
	}
	result.UsedPriceCurrency = domain.DisplayCurrency

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
