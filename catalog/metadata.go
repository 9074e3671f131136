package catalog

import (
	"fmt"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
)

// The fixed INR price buckets shown in the filter sidebar.
var priceBuckets = []struct {
	min, max float64
	label    string
}{
	{0, 200, "Under ₹200"},
	{200, 300, "₹200 - ₹300"},
	{300, 400, "₹300 - ₹400"},
	{400, 1000, "Above ₹400"},
}

var fragranceLabels = map[string]string{
	models.FragranceCitrus: "Citrus Fragrance",
	models.FragranceStrong: "Strong Fragrance",
	models.FragranceCool:   "Cool Fragrance",
	models.FragranceSweet:  "Sweet Fragrance",
}

// FilterMetadata derives every facet option with its match count, plus the
// real min/max price across the catalog. The result only depends on the
// immutable catalog, so callers may cache it freely.
func (c *Catalog) FilterMetadata() models.FilterMetadata {
	meta := models.FilterMetadata{}

	for _, t := range models.FragranceTypes {
		n := 0
		for _, p := range c.products {
			if p.FragranceType == t {
				n++
			}
		}
		meta.FragranceTypes = append(meta.FragranceTypes, models.FilterOption{
			Label: fragranceLabels[t],
			Value: t,
			Count: n,
		})
	}

	for _, ml := range models.MLSizes {
		n := 0
		for _, p := range c.products {
			if p.ML == ml {
				n++
			}
		}
		meta.MLSizes = append(meta.MLSizes, models.FilterOption{
			Label: fmt.Sprintf("%d ML", ml),
			Value: fmt.Sprintf("%d", ml),
			Count: n,
		})
	}

	for _, b := range priceBuckets {
		n := 0
		for _, p := range c.products {
			if p.PriceINR >= b.min && p.PriceINR < b.max {
				n++
			}
		}
		meta.PriceRanges = append(meta.PriceRanges, models.PriceRangeOption{
			Label: b.label,
			Value: fmt.Sprintf("%g-%g", b.min, b.max),
			Range: models.PriceRange{Min: b.min, Max: b.max},
			Count: n,
		})
	}

	for _, cat := range models.Categories {
		meta.Categories = append(meta.Categories, models.FilterOption{
			Label: cat,
			Value: cat,
			Count: c.CountByCategory(cat),
		})
	}

	for i, p := range c.products {
		if i == 0 || p.PriceINR < meta.PriceBounds.Min {
			meta.PriceBounds.Min = p.PriceINR
		}
		if p.PriceINR > meta.PriceBounds.Max {
			meta.PriceBounds.Max = p.PriceINR
		}
	}

	return meta
}
