package reportControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/marrsDev/DS-CBNode/cart"
	"github.com/marrsDev/DS-CBNode/middleware"
)

// GET /api/cart/export
//
// Downloads the current cart as a quote spreadsheet: one row per line item
// plus a grand total row.
func ExportCartToExcel(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summary(c.GetString(middleware.CartIDKey))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Quote")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"Code", "Window", "Height (mm)", "Width (mm)",
			"Glass", "Thickness", "Profile Colour",
			"Quantity", "Unit Price", "Line Total",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, item := range summary.Items {
			row := sheet.AddRow()
			row.AddCell().SetValue(item.TypeCode)
			row.AddCell().SetValue(item.TypeLabel)
			row.AddCell().SetValue(item.Height)
			row.AddCell().SetValue(item.Width)
			row.AddCell().SetValue(item.GlassType)
			row.AddCell().SetValue(item.GlassThickness)
			row.AddCell().SetValue(item.ProfileColour)
			row.AddCell().SetValue(item.Quantity)
			row.AddCell().SetValue(item.UnitPrice)
			row.AddCell().SetValue(item.UnitPrice * float64(item.Quantity))
		}

		totalRow := sheet.AddRow()
		totalRow.AddCell().SetValue("Grand Total")
		for i := 0; i < 8; i++ {
			totalRow.AddCell()
		}
		totalRow.AddCell().SetValue(summary.GrandTotal)

		c.Header("Content-Disposition", "attachment; filename=quote.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
