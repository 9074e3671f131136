package product_controller

import (
	"net/http"
	"strconv"

	"github.com/ArmanNagariya-Developer/azhari-attar/config"
	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/ArmanNagariya-Developer/azhari-attar/services"
	"github.com/gin-gonic/gin"
)

// GetProductShare godoc
// @Summary Build the WhatsApp share hand-off for a product
// @Description Returns the prebuilt message and wa.me deep link. The view opens the link in a new context; nothing comes back.
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id}/share [get]
func GetProductShare(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	product, ok := store.ByID(id)
	if !ok {
		notFound(c)
		return
	}

	link := services.BuildProductShare(product, config.App.SharePhone, baseURL())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Share link built successfully", link))
}
