package usecase

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pricelens/backend/internal/domain"
)

// The model is asked for JSON only, but responses still arrive wrapped in
// markdown fences or with stray prose around the object. Validation here is
// deliberately forgiving: any failure yields "no data", never an error the
// request would surface.

// flexFloat decodes a JSON number that the model may render as a string,
// possibly with thousands separators or a trailing 円. Failed coercion is
// not an error; the value is simply absent (zero).
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	*f = 0
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	if s[0] == '"' {
		var v string
		if json.Unmarshal(b, &v) != nil {
			return nil
		}
		v = strings.TrimSpace(v)
		v = strings.ReplaceAll(v, ",", "")
		v = strings.TrimSuffix(v, "円")
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*f = flexFloat(parsed)
		}
		return nil
	}

	var v float64
	if json.Unmarshal(b, &v) == nil {
		*f = flexFloat(v)
	}
	return nil
}

// flexString decodes a JSON string that the model may render as a bare
// number (long barcodes in particular).
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	*s = ""
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return nil
	}

	if raw[0] == '"' {
		var v string
		if json.Unmarshal(b, &v) != nil {
			return nil
		}
		*s = flexString(v)
		return nil
	}

	var n json.Number
	if json.Unmarshal(b, &n) == nil {
		*s = flexString(n.String())
	}
	return nil
}

// Wire shapes for the two model responses. Unknown fields are ignored.
type extractionPayload struct {
	Name        flexString `json:"name"`
	Model       flexString `json:"model"`
	JAN         flexString `json:"jan"`
	UPC         flexString `json:"upc"`
	ReleaseDate flexString `json:"release_date"`
	Currency    flexString `json:"msrp_currency"`
	MSRP        flexFloat  `json:"msrp"`
	Confidence  flexFloat  `json:"confidence"`
	Notes       flexString `json:"notes"`
}

type enrichmentPayload struct {
	Description     flexString `json:"detail_description"`
	MarketOverview  flexString `json:"market_overview"`
	OfficialRelease flexString `json:"official_release"`
	OfficialMSRPJPY flexFloat  `json:"official_msrp_jpy"`
}

// ParseExtraction validates raw model output against the extraction shape.
// Any parse or shape failure returns the empty result.
func ParseExtraction(raw string) domain.ExtractionResult {
	var payload extractionPayload
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &payload); err != nil {
		return domain.ExtractionResult{}
	}

	return domain.ExtractionResult{
		Name:        string(payload.Name),
		Model:       string(payload.Model),
		JAN:         string(payload.JAN),
		UPC:         string(payload.UPC),
		ReleaseDate: string(payload.ReleaseDate),
		Currency:    string(payload.Currency),
		MSRP:        float64(payload.MSRP),
		Confidence:  float64(payload.Confidence),
		Notes:       string(payload.Notes),
	}
}

// ParseEnrichment validates raw model output against the enrichment shape.
// Any parse or shape failure returns nil.
func ParseEnrichment(raw string) *domain.EnrichmentResult {
	var payload enrichmentPayload
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &payload); err != nil {
		return nil
	}

	return &domain.EnrichmentResult{
		Description:     string(payload.Description),
		MarketOverview:  string(payload.MarketOverview),
		OfficialRelease: string(payload.OfficialRelease),
		OfficialMSRPJPY: float64(payload.OfficialMSRPJPY),
	}
}

// extractJSONObject strips markdown code fences and any prose around the
// single JSON object the model was asked for.
func extractJSONObject(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}
