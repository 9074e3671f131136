package models

import (
	"strconv"
	"strings"
)

// FilterSpec is rebuilt from scratch on every request; nothing in it is
// patched incrementally. An empty slice for any facet means "no restriction
// on that facet", never "match nothing".
type FilterSpec struct {
	SearchTerm     string
	FragranceTypes []string
	MLSizes        []int
	PriceRange     *PriceRange
	Categories     []string // shop view facet
	ActiveTab      string   // home view; exactly one category when set
}

// PriceRange is a half-open INR interval [Min, Max).
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ParsePriceRange parses a "min-max" token such as "0-200". A malformed or
// empty token is treated as "no restriction" and returns nil.
func ParsePriceRange(token string) *PriceRange {
	if token == "" {
		return nil
	}
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return nil
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil
	}
	return &PriceRange{Min: min, Max: max}
}

// SortOption selects the shop/wishlist ordering. The zero value keeps the
// incoming order (home view behavior).
type SortOption string

const (
	SortNone      SortOption = ""
	SortNameAsc   SortOption = "az"
	SortNameDesc  SortOption = "za"
	SortPriceAsc  SortOption = "price-low"
	SortPriceDesc SortOption = "price-high"
)

// ParseSortOption maps the shop view sort tokens. Unknown tokens keep the
// incoming order rather than failing.
func ParseSortOption(token string) SortOption {
	switch token {
	case "az", "za", "price-low", "price-high":
		return SortOption(token)
	default:
		return SortNone
	}
}

// ParseWishlistSort maps the wishlist view's sort tokens onto the shared
// sort options. The wishlist page uses name-asc style tokens.
func ParseWishlistSort(token string) SortOption {
	switch token {
	case "name-asc":
		return SortNameAsc
	case "name-desc":
		return SortNameDesc
	case "price-asc":
		return SortPriceAsc
	case "price-desc":
		return SortPriceDesc
	default:
		return SortNameAsc
	}
}

// ViewportClass is the single process-wide notion of screen size. It is an
// explicit request value, not ambient state duplicated per component.
type ViewportClass string

const (
	ViewportNarrow ViewportClass = "narrow"
	ViewportMedium ViewportClass = "medium"
	ViewportWide   ViewportClass = "wide"
)

// ParseViewportClass defaults to wide, matching the desktop layout.
func ParseViewportClass(token string) ViewportClass {
	switch token {
	case "narrow", "medium", "wide":
		return ViewportClass(token)
	default:
		return ViewportWide
	}
}

// Delta is how many page numbers are shown on each side of the current page
// in the pagination strip.
func (v ViewportClass) Delta() int {
	switch v {
	case ViewportNarrow:
		return 0
	case ViewportMedium:
		return 1
	default:
		return 2
	}
}

// FilterMetadata is everything the filter sidebar needs to render its
// options, with per-option match counts.
type FilterMetadata struct {
	FragranceTypes []FilterOption     `json:"fragranceTypes"`
	MLSizes        []FilterOption     `json:"mlSizes"`
	PriceRanges    []PriceRangeOption `json:"priceRanges"`
	PriceBounds    PriceRange         `json:"priceBounds"`
	Categories     []FilterOption     `json:"categories"`
}

// FilterOption represents a single selectable facet value.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRangeOption is one of the fixed INR price buckets.
type PriceRangeOption struct {
	Label string     `json:"label"`
	Value string     `json:"value"` // "min-max" token
	Range PriceRange `json:"range"`
	Count int        `json:"count"`
}
