package models_test

import (
	"testing"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceRange(t *testing.T) {
	r := models.ParsePriceRange("200-300")
	require.NotNil(t, r)
	assert.Equal(t, models.PriceRange{Min: 200, Max: 300}, *r)

	r = models.ParsePriceRange(" 0 - 200 ")
	require.NotNil(t, r)
	assert.Equal(t, models.PriceRange{Min: 0, Max: 200}, *r)
}

func TestParsePriceRangeMalformedMeansNoRestriction(t *testing.T) {
	for _, token := range []string{"", "200", "abc-def", "200-", "-"} {
		assert.Nil(t, models.ParsePriceRange(token), "token %q", token)
	}
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, models.SortNameAsc, models.ParseSortOption("az"))
	assert.Equal(t, models.SortNameDesc, models.ParseSortOption("za"))
	assert.Equal(t, models.SortPriceAsc, models.ParseSortOption("price-low"))
	assert.Equal(t, models.SortPriceDesc, models.ParseSortOption("price-high"))
	assert.Equal(t, models.SortNone, models.ParseSortOption("bogus"))
	assert.Equal(t, models.SortNone, models.ParseSortOption(""))
}

func TestParseWishlistSortDefaultsToNameAsc(t *testing.T) {
	assert.Equal(t, models.SortNameAsc, models.ParseWishlistSort("name-asc"))
	assert.Equal(t, models.SortNameDesc, models.ParseWishlistSort("name-desc"))
	assert.Equal(t, models.SortPriceAsc, models.ParseWishlistSort("price-asc"))
	assert.Equal(t, models.SortPriceDesc, models.ParseWishlistSort("price-desc"))
	assert.Equal(t, models.SortNameAsc, models.ParseWishlistSort(""))
	assert.Equal(t, models.SortNameAsc, models.ParseWishlistSort("az"))
}

func TestViewportDelta(t *testing.T) {
	assert.Equal(t, 0, models.ViewportNarrow.Delta())
	assert.Equal(t, 1, models.ViewportMedium.Delta())
	assert.Equal(t, 2, models.ViewportWide.Delta())
}

func TestParseViewportClassDefaultsToWide(t *testing.T) {
	assert.Equal(t, models.ViewportNarrow, models.ParseViewportClass("narrow"))
	assert.Equal(t, models.ViewportMedium, models.ParseViewportClass("medium"))
	assert.Equal(t, models.ViewportWide, models.ParseViewportClass("wide"))
	assert.Equal(t, models.ViewportWide, models.ParseViewportClass(""))
	assert.Equal(t, models.ViewportWide, models.ParseViewportClass("desktop"))
}

func TestEnumValidators(t *testing.T) {
	assert.True(t, models.IsValidCategory("new"))
	assert.False(t, models.IsValidCategory("sale"))

	assert.True(t, models.IsValidFragranceType("citrus"))
	assert.False(t, models.IsValidFragranceType("woody"))

	assert.True(t, models.IsValidMLSize(6))
	assert.True(t, models.IsValidMLSize(10))
	assert.False(t, models.IsValidMLSize(50))
}
