package filter_controller

import (
	"net/http"

	filter_cache "github.com/ArmanNagariya-Developer/azhari-attar/cache"
	"github.com/ArmanNagariya-Developer/azhari-attar/catalog"
	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/gin-gonic/gin"
)

var store *catalog.Catalog

// Init wires the immutable catalog into this controller package.
func Init(c *catalog.Catalog) {
	store = c
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns fragrance types, sizes, price buckets, and categories with per-option match counts for the filter sidebar.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	meta, ok := filter_cache.Get()
	if !ok {
		meta = store.FilterMetadata()
		filter_cache.Set(meta)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
}
