package dashboardControllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/ldquyen/QuickDish/dashboard"
	"github.com/ldquyen/QuickDish/models"
	"github.com/ldquyen/QuickDish/store"
)

// GET /dashboard
// One response carries everything the revenue dashboard renders: headline
// stats, the per-day series, the status pie and the top tables.
func GetDashboard(client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, numDays, err := parseRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		all, err := client.GetAllOrders(c.Request.Context())
		if err != nil {
			respondStoreError(c, err)
			return
		}

		now := time.Now()
		filtered := dashboard.FilterByRange(all, r, now)

		recent := append([]models.Order(nil), filtered...)
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].CreatedAt > recent[j].CreatedAt
		})
		if len(recent) > 10 {
			recent = recent[:10]
		}

		c.JSON(http.StatusOK, gin.H{
			"stats":            dashboard.Summarize(filtered),
			"series":           dashboard.SeriesByDay(filtered, numDays, now),
			"status_breakdown": dashboard.StatusBreakdown(filtered),
			"top_tables":       dashboard.TopTablesByRevenue(filtered, 10),
			"recent_orders":    recent,
		})
	}
}

// GET /dashboard/export
// Downloads the filtered orders as an Excel workbook.
func ExportOrders(client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, _, err := parseRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		all, err := client.GetAllOrders(c.Request.Context())
		if err != nil {
			respondStoreError(c, err)
			return
		}
		filtered := dashboard.FilterByRange(all, r, time.Now())
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt > filtered[j].CreatedAt
		})

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"OrderID", "Table", "Items", "TotalAmount", "Status", "CreatedAt", "UpdatedAt", "Note"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range filtered {
			row := sheet.AddRow()
			row.AddCell().SetValue(order.OrderID)
			row.AddCell().SetValue(order.Table)
			row.AddCell().SetValue(len(order.Items))
			row.AddCell().SetValue(order.TotalAmount)
			row.AddCell().SetValue(string(order.Status))
			row.AddCell().SetValue(time.Unix(order.CreatedAt, 0).Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(time.Unix(order.UpdatedAt, 0).Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(order.Note)
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// parseRange maps the range query parameters onto a dashboard.Range and
// how many days the series should cover.
func parseRange(c *gin.Context) (dashboard.Range, int, error) {
	kind := c.DefaultQuery("range", dashboard.Range7Days)

	switch kind {
	case dashboard.RangeToday:
		return dashboard.Range{Kind: kind}, 1, nil
	case dashboard.Range7Days:
		return dashboard.Range{Kind: kind}, 7, nil
	case dashboard.Range30Days:
		return dashboard.Range{Kind: kind}, 30, nil
	case dashboard.RangeCustom:
		start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.Local)
		if err != nil {
			return dashboard.Range{}, 0, errors.New("invalid start date, want YYYY-MM-DD")
		}
		end, err := time.ParseInLocation("2006-01-02", c.Query("end"), time.Local)
		if err != nil {
			return dashboard.Range{}, 0, errors.New("invalid end date, want YYYY-MM-DD")
		}
		if end.Before(start) {
			return dashboard.Range{}, 0, errors.New("end date before start date")
		}
		numDays := int(end.Sub(start).Hours()/24) + 1
		return dashboard.Range{Kind: kind, Start: start, End: end}, numDays, nil
	default:
		return dashboard.Range{}, 0, errors.New("unknown range: " + kind)
	}
}

func respondStoreError(c *gin.Context, err error) {
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Remote store request failed"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
