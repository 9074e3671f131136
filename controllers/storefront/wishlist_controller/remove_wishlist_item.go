package wishlist_controller

import (
	"net/http"
	"strconv"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/ArmanNagariya-Developer/azhari-attar/notify"
	"github.com/gin-gonic/gin"
)

// RemoveWishlistItem godoc
// @Summary Remove a product from the wishlist
// @Description Removes the entry if present. Removing an absent id is a no-op with no notification side effects.
// @Tags Storefront - Wishlist
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/wishlist/{id} [delete]
func RemoveWishlistItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	result := store.Remove(id)
	if result.Removed {
		hub.Publish(notify.Event{Name: notify.EventWishlistToast, Payload: "Removed from wishlist"})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist updated", gin.H{
		"removed": result.Removed,
		"count":   store.Count(),
	}))
}
