package domain

// DisplayCurrency is the single monetary unit every response is normalized to.
// Extraction may report other currencies; they are never passed through.
const DisplayCurrency = "JPY"

// Image is one uploaded product photo, ready to forward to the model.
type Image struct {
	Data     []byte
	MIMEType string
}

// ExtractionResult holds the structured fields the vision call read off the
// product photos. Every field is optional; a failed or unparseable call
// yields the zero value.
type ExtractionResult struct {
	Name        string  `json:"name,omitempty"`
	Model       string  `json:"model,omitempty"`
	JAN         string  `json:"jan,omitempty"`
	UPC         string  `json:"upc,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"` // YYYY / YYYY-MM / YYYY-MM-DD
	Currency    string  `json:"msrp_currency,omitempty"`
	MSRP        float64 `json:"msrp,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// IsEmpty reports whether the extraction produced nothing usable.
func (e ExtractionResult) IsEmpty() bool {
	return e == ExtractionResult{}
}

// Query derives the identifying lookup string for the enrichment call:
// first nonempty of name, JAN, UPC, model. Empty means no enrichment.
func (e ExtractionResult) Query() string {
	for _, s := range []string{e.Name, e.JAN, e.UPC, e.Model} {
		if s != "" {
			return s
		}
	}
	return ""
}

// EnrichmentResult holds the two narrative fields plus release/price data
// from the research call. Produced only when the extraction yielded an
// identifying query; nil otherwise.
type EnrichmentResult struct {
	Description     string  `json:"detail_description,omitempty"`
	MarketOverview  string  `json:"market_overview,omitempty"`
	OfficialRelease string  `json:"official_release,omitempty"`
	OfficialMSRPJPY float64 `json:"official_msrp_jpy,omitempty"`
}

// PriceRange is a derived used-price band in yen. Absent (nil) when no
// nonzero reference price exists, never zero-valued.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// LookupQuery carries the identifiers used to query the static catalog.
type LookupQuery struct {
	JAN   string
	UPC   string
	Name  string
	Model string
}

// EnrichedInfo is the nested enrichment block of the merged response.
// Best-available values resolve enrichment -> catalog -> extraction.
type EnrichedInfo struct {
	Title           string  `json:"title,omitempty"`
	OfficialRelease string  `json:"official_release,omitempty"`
	OfficialMSRP    float64 `json:"official_msrp,omitempty"`
	Currency        string  `json:"currency"`
	Description     string  `json:"description,omitempty"`
	MarketOverview  string  `json:"market_overview,omitempty"`
	UsedHintMin     int     `json:"used_hint_min,omitempty"`
	UsedHintMax     int     `json:"used_hint_max,omitempty"`
}

// MergedResult is the final appraisal response: the flat extraction fields
// with currency forced to DisplayCurrency, the nested enrichment block, and
// legacy top-level used-price fields kept for older clients.
type MergedResult struct {
	Name        string  `json:"name,omitempty"`
	Model       string  `json:"model,omitempty"`
	JAN         string  `json:"jan,omitempty"`
	UPC         string  `json:"upc,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Currency    string  `json:"msrp_currency"`
	MSRP        float64 `json:"msrp,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	Notes       string  `json:"notes,omitempty"`

	Enriched EnrichedInfo `json:"enriched"`

	UsedPriceMin      int    `json:"used_price_min,omitempty"`
	UsedPriceMax      int    `json:"used_price_max,omitempty"`
	UsedPriceCurrency string `json:"used_price_currency"`
}
