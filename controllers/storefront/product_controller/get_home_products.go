package product_controller

import (
	"net/http"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/gin-gonic/gin"
)

// GetHomeProducts godoc
// @Summary List products for the home tabs
// @Description One mandatory tab (new | popular | trending) plus optional search and facet filters. Catalog order is preserved; there is no sorting on the home view.
// @Tags Storefront - Products
// @Produce json
// @Param tab query string false "Active tab" default(new)
// @Param q query string false "Search term (case-insensitive name substring)"
// @Param type query []string false "Fragrance types (repeatable)"
// @Param ml query []int false "Bottle sizes in ML (repeatable)"
// @Param priceRange query string false "INR price bucket token, e.g. 0-200"
// @Param page query int false "Page number" default(1)
// @Param viewport query string false "Viewport class (narrow | medium | wide)" default(wide)
// @Success 200 {object} models.ApiResponse
// @Router /store/home/products [get]
func GetHomeProducts(c *gin.Context) {
	spec := parseFacets(c)
	spec.ActiveTab = c.DefaultQuery("tab", models.CategoryNew)
	if !models.IsValidCategory(spec.ActiveTab) {
		spec.ActiveTab = models.CategoryNew
	}

	matched := store.Query(spec)
	result, meta := pageFor(c, matched)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		gin.H{
			"products":  result.Items,
			"tabTotal":  store.CountByCategory(spec.ActiveTab),
			"activeTab": spec.ActiveTab,
		},
		meta,
	))
}
