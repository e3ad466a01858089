package catalog

import (
	"testing"

	"github.com/pricelens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		{Title: "Nintendo Switch OLED", JAN: "4902370548495", Model: "HEG-S-KAAAA", OfficialMSRP: 37980},
		{Title: "PlayStation 5", JAN: "4948872415598", UPC: "711719541028", Model: "CFI-1200A01", OfficialMSRP: 60478},
		{Title: "AirPods Pro", JAN: "4549995402166", UPC: "195949052919", Model: "A2968", OfficialMSRP: 39800},
	}
}

func TestLookup_ByJAN(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	entry, ok := c.Lookup(domain.LookupQuery{JAN: "4948872415598"})

	require.True(t, ok)
	assert.Equal(t, "PlayStation 5", entry.Title)
}

func TestLookup_JANNormalization(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	// Formatted and whitespace-padded codes must compare equal
	entry, ok := c.Lookup(domain.LookupQuery{JAN: " 4902370-548495 "})

	require.True(t, ok)
	assert.Equal(t, "Nintendo Switch OLED", entry.Title)
}

func TestLookup_JANBeatsUPC(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	// JAN matches PS5, UPC matches AirPods; the JAN tier runs first
	entry, ok := c.Lookup(domain.LookupQuery{
		JAN: "4948872415598",
		UPC: "195949052919",
	})

	require.True(t, ok)
	assert.Equal(t, "PlayStation 5", entry.Title)
}

func TestLookup_ByUPC(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	entry, ok := c.Lookup(domain.LookupQuery{UPC: "711719541028"})

	require.True(t, ok)
	assert.Equal(t, "PlayStation 5", entry.Title)
}

func TestLookup_ByModelCaseInsensitive(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	entry, ok := c.Lookup(domain.LookupQuery{Model: "cfi-1200a01"})

	require.True(t, ok)
	assert.Equal(t, "PlayStation 5", entry.Title)
}

func TestLookup_ByNameContainment(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	// The query name contains the title's first token ("playstation")
	entry, ok := c.Lookup(domain.LookupQuery{Name: "Sony PlayStation 5 Digital Edition"})

	require.True(t, ok)
	assert.Equal(t, "PlayStation 5", entry.Title)
}

func TestLookup_CodeBeatsName(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	// Name would match PS5, but the JAN tier matches AirPods first
	entry, ok := c.Lookup(domain.LookupQuery{
		JAN:  "4549995402166",
		Name: "PlayStation 5",
	})

	require.True(t, ok)
	assert.Equal(t, "AirPods Pro", entry.Title)
}

func TestLookup_NoMatch(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	entry, ok := c.Lookup(domain.LookupQuery{Name: "Unknown Gadget", Model: "X-1"})

	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestLookup_EmptyQuery(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	entry, ok := c.Lookup(domain.LookupQuery{})

	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestLookup_EmptyCodesDoNotMatchEmptyQuery(t *testing.T) {
	entries := []domain.CatalogEntry{
		{Title: "No Codes Item", Model: "NC-1"},
	}
	c := NewStaticCatalogWithEntries(entries)

	// A query with a non-digit JAN normalizes to "" and must not match an
	// entry whose JAN is also empty
	entry, ok := c.Lookup(domain.LookupQuery{JAN: "abc"})

	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	c := NewStaticCatalogWithEntries(testEntries())

	entry, ok := c.Lookup(domain.LookupQuery{JAN: "4948872415598"})
	require.True(t, ok)

	entry.Title = "mutated"

	again, ok := c.Lookup(domain.LookupQuery{JAN: "4948872415598"})
	require.True(t, ok)
	assert.Equal(t, "PlayStation 5", again.Title)
}

func TestDefaultCatalog(t *testing.T) {
	c := NewStaticCatalog()

	assert.Len(t, c.Entries(), 3)

	entry, ok := c.Lookup(domain.LookupQuery{JAN: "4948872415598"})
	require.True(t, ok)
	assert.Equal(t, float64(60478), entry.OfficialMSRP)
	assert.Equal(t, domain.DisplayCurrency, entry.Currency)
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4902370548495", "4902370548495"},
		{" 49-0237 0548495 ", "4902370548495"},
		{"abc", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeCode(tt.in))
	}
}
