package catalog

import (
	"strings"

	"github.com/pricelens/backend/internal/domain"
)

// defaultEntries is the built-in reference table. Entries are trusted more
// than raw extraction output but less than fresh enrichment data.
var defaultEntries = []domain.CatalogEntry{
	{
		Title:           "Nintendo Switch (有機ELモデル) ホワイト",
		JAN:             "4902370548495",
		Model:           "HEG-S-KAAAA",
		OfficialRelease: "2021-10-08",
		OfficialMSRP:    37980,
		Currency:        domain.DisplayCurrency,
	},
	{
		Title:           "PlayStation 5 (CFI-1200A01)",
		JAN:             "4948872415598",
		Model:           "CFI-1200A01",
		OfficialRelease: "2022-09-15",
		OfficialMSRP:    60478,
		Currency:        domain.DisplayCurrency,
	},
	{
		Title:           "Apple AirPods Pro (第2世代 USB‑C)",
		JAN:             "4549995402166",
		Model:           "A2968",
		OfficialRelease: "2023-09-22",
		OfficialMSRP:    39800,
		Currency:        domain.DisplayCurrency,
	},
}

// StaticCatalog is an immutable in-memory product table with a linear scan.
// Small N, read-only after construction, safe for concurrent use.
type StaticCatalog struct {
	entries []domain.CatalogEntry
}

// NewStaticCatalog builds a catalog over the built-in entries.
func NewStaticCatalog() *StaticCatalog {
	return NewStaticCatalogWithEntries(defaultEntries)
}

// NewStaticCatalogWithEntries builds a catalog over the given entries.
// The slice is copied; the catalog never mutates it afterwards.
func NewStaticCatalogWithEntries(entries []domain.CatalogEntry) *StaticCatalog {
	copied := make([]domain.CatalogEntry, len(entries))
	copy(copied, entries)
	return &StaticCatalog{entries: copied}
}

// Entries returns a copy of the full table.
func (c *StaticCatalog) Entries() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds the single best entry for the query. Tiers, first match wins:
//  1. exact match on normalized JAN
//  2. exact match on normalized UPC
//  3. case-insensitive exact match on model
//  4. query name contains the first whitespace token of the entry title
//
// The first tier with any match short-circuits the rest; there is no
// partial-credit scoring between tiers.
func (c *StaticCatalog) Lookup(q domain.LookupQuery) (*domain.CatalogEntry, bool) {
	if jan := normalizeCode(q.JAN); jan != "" {
		for i := range c.entries {
			if code := normalizeCode(c.entries[i].JAN); code != "" && code == jan {
				return entryCopy(&c.entries[i]), true
			}
		}
	}

	if upc := normalizeCode(q.UPC); upc != "" {
		for i := range c.entries {
			if code := normalizeCode(c.entries[i].UPC); code != "" && code == upc {
				return entryCopy(&c.entries[i]), true
			}
		}
	}

	if q.Model != "" {
		model := strings.ToLower(q.Model)
		for i := range c.entries {
			if c.entries[i].Model != "" && strings.ToLower(c.entries[i].Model) == model {
				return entryCopy(&c.entries[i]), true
			}
		}
	}

	if q.Name != "" {
		name := strings.ToLower(q.Name)
		for i := range c.entries {
			if token := firstTitleToken(c.entries[i].Title); token != "" && strings.Contains(name, token) {
				return entryCopy(&c.entries[i]), true
			}
		}
	}

	return nil, false
}

// normalizeCode strips every non-digit rune so that formatted codes
// ("4 902370 548495", "4902370-548495") compare equal.
func normalizeCode(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// firstTitleToken returns the lowercased first whitespace-delimited token
// of a catalog title, used for the weak name-containment tier.
func firstTitleToken(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func entryCopy(e *domain.CatalogEntry) *domain.CatalogEntry {
	out := *e
	return &out
}
