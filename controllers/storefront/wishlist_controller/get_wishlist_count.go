package wishlist_controller

import (
	"net/http"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/gin-gonic/gin"
)

// GetWishlistCount godoc
// @Summary Get the wishlist badge count
// @Description Re-reads durable storage on every call, so a view regaining focus always sees writes made by other contexts.
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/wishlist/count [get]
func GetWishlistCount(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist count fetched successfully", gin.H{
		"count": store.Count(),
	}))
}
