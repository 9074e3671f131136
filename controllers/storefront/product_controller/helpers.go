package product_controller

import (
	"strconv"

	"github.com/ArmanNagariya-Developer/azhari-attar/catalog"
	"github.com/ArmanNagariya-Developer/azhari-attar/config"
	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Package wiring
// ─────────────────────────────────────────────────────────────

var store *catalog.Catalog

// Init wires the immutable catalog into this controller package.
func Init(c *catalog.Catalog) {
	store = c
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

// parseFacets reads the facet selections shared by the home and shop views.
// Unknown or malformed values fall back to "no restriction" rather than
// failing; the UI only offers fixed options, so anything else is noise.
func parseFacets(c *gin.Context) models.FilterSpec {
	spec := models.FilterSpec{
		SearchTerm: c.Query("q"),
		PriceRange: models.ParsePriceRange(c.Query("priceRange")),
	}

	for _, t := range c.QueryArray("type") {
		if models.IsValidFragranceType(t) {
			spec.FragranceTypes = append(spec.FragranceTypes, t)
		}
	}

	for _, raw := range c.QueryArray("ml") {
		if ml, err := strconv.Atoi(raw); err == nil && models.IsValidMLSize(ml) {
			spec.MLSizes = append(spec.MLSizes, ml)
		}
	}

	return spec
}

// pageFor slices the derived sequence and builds the response metadata.
// An out-of-range page is treated as a request to reset to page 1: changing
// any facet lands the view back on the first page.
func pageFor(c *gin.Context, seq []models.Product) (catalog.Page, *models.Pagination) {
	page := parsePage(c)
	viewport := models.ParseViewportClass(c.Query("viewport"))

	result := catalog.Paginate(seq, catalog.ItemsPerPage, page)
	if len(result.Items) == 0 && len(seq) > 0 {
		page = 1
		result = catalog.Paginate(seq, catalog.ItemsPerPage, page)
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      catalog.ItemsPerPage,
		Total:      len(seq),
		TotalPages: result.TotalPages,
		Pages:      catalog.VisiblePages(page, result.TotalPages, viewport.Delta()),
	}
	return result, meta
}

func baseURL() string {
	return config.App.BaseURL
}
