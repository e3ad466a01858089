package domain

// CatalogEntry is one known product in the static reference table.
// The catalog is loaded once at process start and queried read-only.
type CatalogEntry struct {
	Title           string  `json:"title"`
	JAN             string  `json:"jan,omitempty"`
	UPC             string  `json:"upc,omitempty"`
	Model           string  `json:"model,omitempty"`
	OfficialRelease string  `json:"official_release,omitempty"` // YYYY-MM-DD
	OfficialMSRP    float64 `json:"official_msrp,omitempty"`
	Currency        string  `json:"currency,omitempty"`
}
