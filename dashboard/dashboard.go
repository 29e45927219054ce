package dashboard

import (
	"sort"
	"time"

	"github.com/ldquyen/QuickDish/models"
)

// Range selects the slice of orders the dashboard looks at. Start and End
// are only read when Kind is RangeCustom.
type Range struct {
	Kind  string
	Start time.Time
	End   time.Time
}

const (
	RangeToday  = "today"
	Range7Days  = "7days"
	Range30Days = "30days"
	RangeCustom = "custom"
)

type Stats struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	PendingOrders     int     `json:"pending_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type DayPoint struct {
	Date    string  `json:"date"` // 2006-01-02, local calendar day
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

type TableRevenue struct {
	Table   string  `json:"table"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// FilterByRange keeps the orders whose creation time falls inside r.
// "today" compares local calendar dates; the sliding windows measure back
// from now; a custom range is inclusive of the whole end day.
func FilterByRange(orders []models.Order, r Range, now time.Time) []models.Order {
	var keep func(t time.Time) bool

	switch r.Kind {
	case RangeToday:
		y, m, d := now.Date()
		keep = func(t time.Time) bool {
			oy, om, od := t.Date()
			return oy == y && om == m && od == d
		}
	case Range7Days:
		cutoff := now.Add(-7 * 24 * time.Hour)
		keep = func(t time.Time) bool { return !t.Before(cutoff) }
	case Range30Days:
		cutoff := now.Add(-30 * 24 * time.Hour)
		keep = func(t time.Time) bool { return !t.Before(cutoff) }
	case RangeCustom:
		start := startOfDay(r.Start)
		end := endOfDay(r.End)
		keep = func(t time.Time) bool { return !t.Before(start) && !t.After(end) }
	default:
		return append([]models.Order(nil), orders...)
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if keep(time.Unix(order.CreatedAt, 0).In(now.Location())) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// Summarize computes the headline dashboard numbers. An empty collection
// yields all zeroes, average included.
func Summarize(orders []models.Order) Stats {
	stats := Stats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.TotalRevenue += order.TotalAmount
		if order.Status == models.OrderStatusPaid {
			stats.CompletedOrders++
		} else {
			stats.PendingOrders++
		}
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	return stats
}

// SeriesByDay buckets revenue and order counts per local calendar day for
// the trailing numDays days ending today, oldest day first. Days without
// orders produce zero points so the series length is always numDays.
func SeriesByDay(orders []models.Order, numDays int, now time.Time) []DayPoint {
	type bucket struct {
		revenue float64
		orders  int
	}
	buckets := make(map[string]bucket)
	for _, order := range orders {
		day := time.Unix(order.CreatedAt, 0).In(now.Location()).Format("2006-01-02")
		b := buckets[day]
		b.revenue += order.TotalAmount
		b.orders++
		buckets[day] = b
	}

	series := make([]DayPoint, 0, numDays)
	for i := numDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		b := buckets[day]
		series = append(series, DayPoint{Date: day, Revenue: b.revenue, Orders: b.orders})
	}
	return series
}

// StatusBreakdown counts orders per status, one entry per status present,
// in first-encounter order.
func StatusBreakdown(orders []models.Order) []StatusCount {
	counts := make(map[models.OrderStatus]int)
	var seen []models.OrderStatus
	for _, order := range orders {
		if _, ok := counts[order.Status]; !ok {
			seen = append(seen, order.Status)
		}
		counts[order.Status]++
	}

	breakdown := make([]StatusCount, 0, len(seen))
	for _, status := range seen {
		breakdown = append(breakdown, StatusCount{Status: status, Count: counts[status]})
	}
	return breakdown
}

// TopTablesByRevenue groups orders by table, sorts descending by revenue
// and returns at most limit entries. Ties keep first-encounter order.
func TopTablesByRevenue(orders []models.Order, limit int) []TableRevenue {
	if limit <= 0 {
		limit = 10
	}

	index := make(map[string]int)
	var tables []TableRevenue
	for _, order := range orders {
		i, ok := index[order.Table]
		if !ok {
			i = len(tables)
			index[order.Table] = i
			tables = append(tables, TableRevenue{Table: order.Table})
		}
		tables[i].Revenue += order.TotalAmount
		tables[i].Orders++
	}

	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].Revenue > tables[j].Revenue
	})
	if len(tables) > limit {
		tables = tables[:limit]
	}
	return tables
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
