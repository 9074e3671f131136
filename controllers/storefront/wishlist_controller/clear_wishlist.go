package wishlist_controller

import (
	"net/http"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/ArmanNagariya-Developer/azhari-attar/notify"
	"github.com/gin-gonic/gin"
)

// ClearWishlist godoc
// @Summary Empty the wishlist
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/wishlist [delete]
func ClearWishlist(c *gin.Context) {
	store.Clear()
	hub.Publish(notify.Event{Name: notify.EventWishlistToast, Payload: "Wishlist cleared"})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist cleared", gin.H{"count": 0}))
}
