package salesreport

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

type KPIs struct {
	OrdersReceived  int     `json:"ordersReceived"`
	OrdersShipped   int     `json:"ordersShipped"`
	PendingOrders   int     `json:"pendingOrders"`
	ReturnedOrders  int     `json:"returnedOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
	OnTimeDispatch  float64 `json:"onTimeDispatch"`
	OrderAccuracy   float64 `json:"orderAccuracy"`
	TotalRevenue    float64 `json:"totalRevenue"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
}

func isShipped(r Record) bool {
	return strings.EqualFold(r.Get(ColShipStatus), "Delivered") ||
		strings.EqualFold(r.Get(ColOrderStatus), "Shipped") ||
		strings.EqualFold(r.Get(ColOrderStatus), "Delivered")
}

func isCancelled(r Record) bool {
	return strings.EqualFold(r.Get(ColOrderStatus), "Cancelled")
}

func isReturned(r Record) bool {
	return strings.EqualFold(r.Get(ColOrderStatus), "Returned")
}

// price reads the revenue column; anything non-numeric counts as zero.
func price(r Record) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.Get(ColSellingPrice)), 64)
	if err != nil {
		return 0
	}
	return v
}

func quantity(r Record) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.Get(ColItemQuantity)))
	if err != nil {
		return 0
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeKPIs reduces a record set to the fulfillment and revenue scalars.
// Every ratio guards the zero-total case by yielding 0.
func ComputeKPIs(records []Record) KPIs {
	var k KPIs
	k.OrdersReceived = len(records)

	for _, r := range records {
		switch {
		case isShipped(r):
			k.OrdersShipped++
		case isCancelled(r):
			k.CancelledOrders++
		case isReturned(r):
			k.ReturnedOrders++
		default:
			k.PendingOrders++
		}
		k.TotalRevenue += price(r)
	}

	if k.OrdersReceived > 0 {
		total := float64(k.OrdersReceived)
		k.OnTimeDispatch = round1(float64(k.OrdersShipped) / total * 100)
		k.OrderAccuracy = round1(float64(k.OrdersReceived-k.ReturnedOrders-k.CancelledOrders) / total * 100)
		k.AvgOrderValue = k.TotalRevenue / total
	}

	return k
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// SalesTrend buckets records by calendar day of the order date, summing
// revenue and counting orders. Days without records are simply absent.
func SalesTrend(records []Record) []TrendPoint {
	buckets := make(map[string]*TrendPoint)
	for _, r := range records {
		date, ok := ParseOrderDate(r.Get(ColOrderDate))
		if !ok {
			continue
		}
		key := DayKey(date)
		point, exists := buckets[key]
		if !exists {
			point = &TrendPoint{Date: key}
			buckets[key] = point
		}
		point.Revenue += price(r)
		point.Orders++
	}

	trend := make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })

	return trend
}

// group is one categorical bucket with every aggregate the charts need.
type group struct {
	Name     string
	Count    int
	Revenue  float64
	Quantity int
}

// groupBy accumulates per-label aggregates in first-encounter order so that
// the later stable sort breaks ties predictably.
func groupBy(records []Record, col string) []group {
	index := make(map[string]int)
	var groups []group

	for _, r := range records {
		label := r.Label(col)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, group{Name: label})
		}
		groups[i].Count++
		groups[i].Revenue += price(r)
		groups[i].Quantity += quantity(r)
	}

	return groups
}

type rankField int

const (
	byCount rankField = iota
	byRevenue
	byQuantity
)

func rank(groups []group, field rankField, limit int) []group {
	sort.SliceStable(groups, func(i, j int) bool {
		switch field {
		case byRevenue:
			return groups[i].Revenue > groups[j].Revenue
		case byQuantity:
			return groups[i].Quantity > groups[j].Quantity
		default:
			return groups[i].Count > groups[j].Count
		}
	})
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}
