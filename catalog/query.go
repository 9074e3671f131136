package catalog

import (
	"sort"
	"strings"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// nameCollator gives locale-aware name ordering, matching how the views have
// always compared product names.
var nameCollator = collate.New(language.English)

// Query applies every active predicate of spec to the catalog, ANDed, and
// returns the matches in catalog order. Empty facets impose no restriction.
// Re-running with the same spec always yields the same sequence.
func (c *Catalog) Query(spec models.FilterSpec) []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if matches(p, spec) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Product, spec models.FilterSpec) bool {
	// Home view pins exactly one tab; shop view takes a category set.
	if spec.ActiveTab != "" && p.Category != spec.ActiveTab {
		return false
	}
	if len(spec.Categories) > 0 && !containsString(spec.Categories, p.Category) {
		return false
	}

	if spec.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(spec.SearchTerm)) {
		return false
	}

	if len(spec.FragranceTypes) > 0 && !containsString(spec.FragranceTypes, p.FragranceType) {
		return false
	}

	if len(spec.MLSizes) > 0 && !containsInt(spec.MLSizes, p.ML) {
		return false
	}

	// Half-open interval: min <= priceINR < max.
	if r := spec.PriceRange; r != nil {
		if p.PriceINR < r.Min || p.PriceINR >= r.Max {
			return false
		}
	}

	return true
}

// Sort orders products by the given option, in place. The sort is stable:
// products with equal keys keep their pre-sort relative order. SortNone
// leaves the sequence untouched, which is how the home view preserves
// catalog order.
func Sort(products []models.Product, opt models.SortOption) {
	switch opt {
	case models.SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return nameCollator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case models.SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return nameCollator.CompareString(products[j].Name, products[i].Name) < 0
		})
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceINR < products[j].PriceINR
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].PriceINR < products[i].PriceINR
		})
	}
}

// SortEntries orders wishlist snapshots with the same keys the shop uses,
// except price sorting reads the stored snapshot price.
func SortEntries(entries []models.WishlistEntry, opt models.SortOption) {
	switch opt {
	case models.SortNameAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return nameCollator.CompareString(entries[i].Name, entries[j].Name) < 0
		})
	case models.SortNameDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return nameCollator.CompareString(entries[j].Name, entries[i].Name) < 0
		})
	case models.SortPriceAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Price < entries[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[j].Price < entries[i].Price
		})
	}
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
