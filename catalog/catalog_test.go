package catalog_test

import (
	"testing"

	"github.com/ArmanNagariya-Developer/azhari-attar/catalog"
	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Amber Oud", Category: models.CategoryNew, FragranceType: models.FragranceStrong, ML: 10, PriceINR: 150, Price: 1.8},
		{ID: 2, Name: "Citrus Bloom", Category: models.CategoryNew, FragranceType: models.FragranceCitrus, ML: 6, PriceINR: 350, Price: 4.2},
		{ID: 3, Name: "Glacier Musk", Category: models.CategoryPopular, FragranceType: models.FragranceCool, ML: 10, PriceINR: 150, Price: 1.8},
	}
}

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	require.Greater(t, cat.Len(), 0)

	seen := make(map[int]bool)
	for _, p := range cat.All() {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true

		assert.True(t, models.IsValidCategory(p.Category), "product %d category %q", p.ID, p.Category)
		assert.True(t, models.IsValidFragranceType(p.FragranceType), "product %d type %q", p.ID, p.FragranceType)
		assert.True(t, models.IsValidMLSize(p.ML), "product %d size %d", p.ID, p.ML)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := catalog.New([]models.Product{{ID: 7}, {ID: 7}})
	require.Error(t, err)
}

func TestByID(t *testing.T) {
	cat, err := catalog.New(testProducts())
	require.NoError(t, err)

	p, ok := cat.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Citrus Bloom", p.Name)

	_, ok = cat.ByID(999)
	assert.False(t, ok)
}

func TestAllReturnsACopy(t *testing.T) {
	cat, err := catalog.New(testProducts())
	require.NoError(t, err)

	first := cat.All()
	first[0].Name = "mutated"

	again := cat.All()
	assert.Equal(t, "Amber Oud", again[0].Name)
}

func TestCountByCategory(t *testing.T) {
	cat, err := catalog.New(testProducts())
	require.NoError(t, err)

	assert.Equal(t, 2, cat.CountByCategory(models.CategoryNew))
	assert.Equal(t, 1, cat.CountByCategory(models.CategoryPopular))
	assert.Equal(t, 0, cat.CountByCategory(models.CategoryTrending))
}
