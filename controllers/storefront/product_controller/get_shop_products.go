package product_controller

import (
	"net/http"

	"github.com/ArmanNagariya-Developer/azhari-attar/catalog"
	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/gin-gonic/gin"
)

// GetShopProducts godoc
// @Summary List products for the shop view
// @Description Full faceted browsing: search, category set, fragrance types, sizes, price bucket, and stable sorting. An empty result is a 200 with an empty list, never an error.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search term (case-insensitive name substring)"
// @Param category query []string false "Categories (repeatable; empty = all)"
// @Param type query []string false "Fragrance types (repeatable)"
// @Param ml query []int false "Bottle sizes in ML (repeatable)"
// @Param priceRange query string false "INR price bucket token, e.g. 200-300"
// @Param sort query string false "Sort (az | za | price-low | price-high)" default(az)
// @Param page query int false "Page number" default(1)
// @Param viewport query string false "Viewport class (narrow | medium | wide)" default(wide)
// @Success 200 {object} models.ApiResponse
// @Router /store/shop/products [get]
func GetShopProducts(c *gin.Context) {
	spec := parseFacets(c)
	for _, cat := range c.QueryArray("category") {
		if models.IsValidCategory(cat) {
			spec.Categories = append(spec.Categories, cat)
		}
	}

	matched := store.Query(spec)
	catalog.Sort(matched, models.ParseSortOption(c.DefaultQuery("sort", "az")))

	result, meta := pageFor(c, matched)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		gin.H{
			"products":   result.Items,
			"shopTotal":  store.Len(),
			"matchTotal": len(matched),
		},
		meta,
	))
}
