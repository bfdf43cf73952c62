package salesreport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestApply_NoCriteriaKeepsEverything(t *testing.T) {
	records := []Record{
		{ColOrderDate: "garbage"},
		{ColOrderDate: "10/5/2024"},
	}

	out := Apply(records, Criteria{})

	assert.Len(t, out, 2)
}

func TestApply_UnparseableDateExcludedByDateFilter(t *testing.T) {
	records := []Record{
		{ColOrderDate: "garbage", ColMarketplace: "Amazon"},
		{ColOrderDate: "10/5/2024", ColMarketplace: "Amazon"},
	}

	out := Apply(records, Criteria{StartDate: datePtr(2024, 1, 1)})

	assert.Len(t, out, 1)
	assert.Equal(t, "10/5/2024", out[0].Get(ColOrderDate))
}

func TestApply_DateRangeInclusive(t *testing.T) {
	records := []Record{
		{ColOrderDate: "10/4/2024"},
		{ColOrderDate: "10/5/2024"},
		{ColOrderDate: "10/6/2024"},
	}

	out := Apply(records, Criteria{
		StartDate: datePtr(2024, 10, 5),
		EndDate:   datePtr(2024, 10, 5),
	})

	// End date covers the whole calendar day.
	assert.Len(t, out, 1)
	assert.Equal(t, "10/5/2024", out[0].Get(ColOrderDate))
}

func TestApply_AllIsNoOp(t *testing.T) {
	records := []Record{
		{ColMarketplace: "Amazon"},
		{ColMarketplace: "Flipkart"},
	}

	out := Apply(records, Criteria{Marketplace: "All"})

	assert.Len(t, out, 2)
}

func TestApply_ConjunctionOfCriteria(t *testing.T) {
	records := []Record{
		{ColOrderDate: "10/5/2024", ColMarketplace: "Amazon", ColOrderStatus: "Shipped", ColPaymentMode: "Prepaid"},
		{ColOrderDate: "10/5/2024", ColMarketplace: "Amazon", ColOrderStatus: "Cancelled", ColPaymentMode: "Prepaid"},
		{ColOrderDate: "10/5/2024", ColMarketplace: "Flipkart", ColOrderStatus: "Shipped", ColPaymentMode: "Prepaid"},
	}

	out := Apply(records, Criteria{
		Marketplace: "Amazon",
		Status:      "Shipped",
		PaymentMode: "Prepaid",
	})

	assert.Len(t, out, 1)
}
