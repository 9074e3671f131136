package product_controller

import (
	"net/http"

	"github.com/ArmanNagariya-Developer/azhari-attar/config"
	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// ExportProductsToExcel godoc
// @Summary Export the catalog to Excel
// @Description Downloads the full product catalog as an .xlsx file.
// @Tags Storefront - Products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/export [get]
func ExportProductsToExcel(c *gin.Context) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create Excel sheet"))
		return
	}

	// Header row
	headers := []string{
		"ID", "Name", "Category", "FragranceType", "ML",
		"PriceINR", "Price", "OldPrice", "IsSale", "Image", "Description",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	// Data rows
	for _, p := range store.All() {
		row := sheet.AddRow()

		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Category)
		row.AddCell().SetValue(p.FragranceType)
		row.AddCell().SetValue(p.ML)
		row.AddCell().SetValue(p.PriceINR)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.OldPrice)
		row.AddCell().SetValue(p.IsSale)
		row.AddCell().SetValue(p.Image)
		row.AddCell().SetValue(p.Description)
	}

	// Set response headers for download
	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		config.Log.Warn("excel export write failed", zap.Error(err))
	}
}
