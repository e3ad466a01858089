package usecase

import (
	"math"

	"github.com/pricelens/backend/internal/domain"
)

// Used-goods price band as a fraction of the official price. This is a
// display heuristic, not a financial calculation.
const (
	usedMinRatio = 0.35
	usedMaxRatio = 0.70
)

// EstimateUsedRange derives a used-price band from a reference price.
// A zero or negative price yields no range (nil), never a zero range.
// Rounding is math.Round, half away from zero.
func EstimateUsedRange(msrp float64) *domain.PriceRange {
	if msrp <= 0 {
		return nil
	}
	return &domain.PriceRange{
		Min: int(math.Round(msrp * usedMinRatio)),
		Max: int(math.Round(msrp * usedMaxRatio)),
	}
}
