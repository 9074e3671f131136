package wishlist_controller

import (
	"net/http"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/ArmanNagariya-Developer/azhari-attar/notify"
	"github.com/gin-gonic/gin"
)

type addWishlistRequest struct {
	ID int `json:"id" binding:"required"`
}

// AddWishlistItem godoc
// @Summary Add a product to the wishlist
// @Description Persists a snapshot of the product. Adding an id that is already saved is a no-op reported in the result, not an error.
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param request body addWishlistRequest true "Product id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/wishlist [post]
func AddWishlistItem(c *gin.Context) {
	var req addWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	product, ok := products.ByID(req.ID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	result := store.Add(product)
	if result.Added {
		hub.Publish(notify.Event{Name: notify.EventWishlistToast, Payload: "Added to wishlist"})
	} else {
		hub.Publish(notify.Event{Name: notify.EventWishlistToast, Payload: "Already in wishlist"})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist updated", gin.H{
		"added":  result.Added,
		"reason": result.Reason,
		"count":  store.Count(),
	}))
}
