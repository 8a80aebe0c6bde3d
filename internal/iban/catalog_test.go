package iban

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLayoutsAreConsistent(t *testing.T) {
	for _, country := range SupportedCountries() {
		t.Run(country, func(t *testing.T) {
			layout, ok := LayoutFor(country)
			require.True(t, ok)
			assert.Equal(t, country, layout.Country)
			assert.Len(t, country, 2)
			assert.NotEmpty(t, layout.Segments)
			assert.Equal(t, layout.Length, 4+layout.BBANLength(),
				"declared length must equal country code + check digits + BBAN")
			for _, seg := range layout.Segments {
				assert.Positive(t, seg.Length)
			}
		})
	}
}

func TestSupportedCountries(t *testing.T) {
	countries := SupportedCountries()

	t.Run("sorted and unique", func(t *testing.T) {
		assert.True(t, sort.StringsAreSorted(countries))
		seen := make(map[string]bool, len(countries))
		for _, c := range countries {
			assert.False(t, seen[c], "duplicate %s", c)
			seen[c] = true
		}
	})

	t.Run("covers EU member states", func(t *testing.T) {
		for _, c := range []string{
			"AT", "BE", "BG", "CY", "CZ", "DE", "DK", "EE", "ES", "FI", "FR", "GR", "HR", "HU",
			"IE", "IT", "LT", "LU", "LV", "MT", "NL", "PL", "PT", "RO", "SE", "SI", "SK",
		} {
			assert.Contains(t, countries, c)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		countries[0] = "XX"
		assert.NotEqual(t, "XX", SupportedCountries()[0])
	})
}

func TestLayoutFor(t *testing.T) {
	t.Run("germany", func(t *testing.T) {
		layout, ok := LayoutFor("DE")
		require.True(t, ok)
		assert.Equal(t, 22, layout.Length)
		assert.Equal(t, []Segment{
			{Role: RoleBank, Length: 8, Alphabet: Numeric},
			{Role: RoleAccount, Length: 10, Alphabet: Numeric},
		}, layout.Segments)
	})

	t.Run("unknown country", func(t *testing.T) {
		_, ok := LayoutFor("ZZ")
		assert.False(t, ok)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, ok := LayoutFor("de")
		assert.False(t, ok)
	})
}

func TestAlphabetString(t *testing.T) {
	assert.Equal(t, "n", Numeric.String())
	assert.Equal(t, "a", Alpha.String())
	assert.Equal(t, "c", Alphanumeric.String())
}
