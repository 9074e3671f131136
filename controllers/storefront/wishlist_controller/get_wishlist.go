package wishlist_controller

import (
	"net/http"
	"strings"

	"github.com/ArmanNagariya-Developer/azhari-attar/catalog"
	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/gin-gonic/gin"
)

// GetWishlist godoc
// @Summary List saved wishlist entries
// @Description Returns the saved snapshots, optionally filtered by name and sorted. Stored order is not guaranteed across restarts, so the view always asks for an explicit sort.
// @Tags Storefront - Wishlist
// @Produce json
// @Param q query string false "Search term (case-insensitive name substring)"
// @Param sort query string false "Sort (name-asc | name-desc | price-asc | price-desc)" default(name-asc)
// @Success 200 {object} models.ApiResponse
// @Router /store/wishlist [get]
func GetWishlist(c *gin.Context) {
	entries := store.List()

	if q := strings.ToLower(c.Query("q")); q != "" {
		kept := entries[:0]
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Name), q) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	catalog.SortEntries(entries, models.ParseWishlistSort(c.DefaultQuery("sort", "name-asc")))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", gin.H{
		"items": entries,
		"count": len(entries),
	}))
}
