package salesreport

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeKPIs_ZeroInput(t *testing.T) {
	k := ComputeKPIs(nil)

	assert.Equal(t, 0, k.OrdersReceived)
	assert.Equal(t, 0.0, k.OnTimeDispatch)
	assert.Equal(t, 0.0, k.OrderAccuracy)
	assert.Equal(t, 0.0, k.AvgOrderValue)
}

func TestComputeKPIs_WorkedExample(t *testing.T) {
	records := []Record{
		{ColOrderStatus: "Shipped", ColSellingPrice: "100"},
		{ColOrderStatus: "Cancelled", ColSellingPrice: "50"},
		{ColOrderStatus: "Delivered", ColSellingPrice: "75"},
	}

	k := ComputeKPIs(records)

	assert.Equal(t, 3, k.OrdersReceived)
	assert.Equal(t, 2, k.OrdersShipped)
	assert.Equal(t, 1, k.CancelledOrders)
	assert.Equal(t, 225.0, k.TotalRevenue)
	assert.Equal(t, 75.0, k.AvgOrderValue)
	assert.Equal(t, 66.7, k.OrderAccuracy)
	assert.Equal(t, 66.7, k.OnTimeDispatch)
}

func TestComputeKPIs_ShippedViaShippingStatus(t *testing.T) {
	records := []Record{
		{ColOrderStatus: "Pending", ColShipStatus: "Delivered"},
		{ColOrderStatus: "Pending"},
	}

	k := ComputeKPIs(records)

	assert.Equal(t, 1, k.OrdersShipped)
	assert.Equal(t, 1, k.PendingOrders)
}

func TestComputeKPIs_NonNumericPriceCountsAsZero(t *testing.T) {
	records := []Record{
		{ColOrderStatus: "Shipped", ColSellingPrice: "abc"},
		{ColOrderStatus: "Shipped"},
		{ColOrderStatus: "Shipped", ColSellingPrice: "10.50"},
	}

	k := ComputeKPIs(records)

	assert.Equal(t, 10.5, k.TotalRevenue)
}

func TestSalesTrend_SortedAndSparse(t *testing.T) {
	records := []Record{
		{ColOrderDate: "10/7/2024", ColSellingPrice: "30"},
		{ColOrderDate: "10/5/2024", ColSellingPrice: "10"},
		{ColOrderDate: "10/5/2024", ColSellingPrice: "20"},
		{ColOrderDate: "garbage"},
	}

	trend := SalesTrend(records)

	assert.Len(t, trend, 2, "days with no records are omitted, bad dates skipped")
	assert.Equal(t, "2024-10-05", trend[0].Date)
	assert.Equal(t, 30.0, trend[0].Revenue)
	assert.Equal(t, 2, trend[0].Orders)
	assert.Equal(t, "2024-10-07", trend[1].Date)
}

func TestRank_TopTenOfEleven(t *testing.T) {
	var records []Record
	for i := 1; i <= 11; i++ {
		records = append(records, Record{
			ColProductName:  fmt.Sprintf("Product %d", i),
			ColItemQuantity: fmt.Sprintf("%d", i),
		})
	}

	top := rank(groupBy(records, ColProductName), byQuantity, 10)

	assert.Len(t, top, 10)
	assert.Equal(t, "Product 11", top[0].Name)
	assert.Equal(t, 11, top[0].Quantity)
	assert.Equal(t, 2, top[9].Quantity)
}

func TestRank_StableTieBreak(t *testing.T) {
	records := []Record{
		{ColMarketplace: "First", ColSellingPrice: "10"},
		{ColMarketplace: "Second", ColSellingPrice: "10"},
	}

	ranked := rank(groupBy(records, ColMarketplace), byRevenue, 0)

	// Equal revenue: encounter order wins.
	assert.Equal(t, "First", ranked[0].Name)
	assert.Equal(t, "Second", ranked[1].Name)
}

func TestGroupBy_AbsentLabelIsUnknown(t *testing.T) {
	records := []Record{
		{ColSellingPrice: "10"},
		{ColCategory: "Apparel"},
	}

	groups := groupBy(records, ColCategory)

	assert.Equal(t, "Unknown", groups[0].Name)
	assert.Equal(t, "Apparel", groups[1].Name)
}
