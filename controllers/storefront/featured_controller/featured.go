package featured_controller

import (
	"net/http"
	"strconv"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/ArmanNagariya-Developer/azhari-attar/services"
	"github.com/gin-gonic/gin"
)

var rotator *services.Rotator

// Init wires the carousel rotator into this controller package.
func Init(r *services.Rotator) {
	rotator = r
}

// GetFeatured godoc
// @Summary Get the current featured carousel slide
// @Tags Storefront - Featured
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/featured [get]
func GetFeatured(c *gin.Context) {
	product, index := rotator.Current()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured slide fetched successfully", gin.H{
		"product": product,
		"index":   index,
		"paused":  rotator.Paused(),
	}))
}

// NextFeatured godoc
// @Summary Advance the carousel (user interaction)
// @Description Interactions hold auto-play; it resumes 3 seconds after the last one.
// @Tags Storefront - Featured
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/featured/next [post]
func NextFeatured(c *gin.Context) {
	product, index := rotator.Next()
	respondSlide(c, product, index)
}

// PrevFeatured godoc
// @Summary Step the carousel back (user interaction)
// @Tags Storefront - Featured
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/featured/prev [post]
func PrevFeatured(c *gin.Context) {
	product, index := rotator.Prev()
	respondSlide(c, product, index)
}

// SelectFeatured godoc
// @Summary Jump to a carousel slide (user interaction)
// @Tags Storefront - Featured
// @Produce json
// @Param index path int true "Slide index"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/featured/select/{index} [post]
func SelectFeatured(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid slide index"))
		return
	}
	product, current := rotator.Select(index)
	respondSlide(c, product, current)
}

func respondSlide(c *gin.Context, product models.Product, index int) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured slide updated", gin.H{
		"product": product,
		"index":   index,
		"paused":  rotator.Paused(),
	}))
}
