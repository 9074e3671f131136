package models

// Product is one entry of the static catalog. The catalog is loaded once at
// startup and never mutated, so products are passed around by value.
type Product struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	FragranceType  string  `json:"fragranceType"`
	ML             int     `json:"ml"`
	PriceINR       float64 `json:"priceINR"`
	Price          float64 `json:"price"`
	OldPrice       float64 `json:"oldPrice,omitempty"`
	IsSale         bool    `json:"isSale,omitempty"`
	Image          string  `json:"image"`
	SecondaryImage string  `json:"secondaryImage"`
	Description    string  `json:"description"`
}

// Fixed category enumeration used for the home tabs and shop facet.
const (
	CategoryNew      = "new"
	CategoryPopular  = "popular"
	CategoryTrending = "trending"
)

// Categories lists every valid product category, in display order.
var Categories = []string{CategoryNew, CategoryPopular, CategoryTrending}

// Fixed fragrance type enumeration used for faceted filtering.
const (
	FragranceCitrus = "citrus"
	FragranceStrong = "strong"
	FragranceCool   = "cool"
	FragranceSweet  = "sweet"
)

// FragranceTypes lists every valid fragrance type, in display order.
var FragranceTypes = []string{FragranceCitrus, FragranceStrong, FragranceCool, FragranceSweet}

// MLSizes is the fixed set of bottle sizes sold.
var MLSizes = []int{6, 10}

func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func IsValidFragranceType(t string) bool {
	for _, v := range FragranceTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsValidMLSize(ml int) bool {
	for _, v := range MLSizes {
		if v == ml {
			return true
		}
	}
	return false
}
