package product_controller

import (
	"net/http"
	"strconv"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Get single product details
// @Description Product detail by numeric id. An unresolvable id renders an explicit not-found state with a path back to the shop, never a crash.
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}

// notFound is the recovered data-not-found state: an explicit payload the
// view renders with a way back to the catalog.
func notFound(c *gin.Context) {
	resp := models.ErrorResponse(c, "Product not found")
	resp.Data = gin.H{"backTo": "/shop"}
	c.JSON(http.StatusNotFound, resp)
}
