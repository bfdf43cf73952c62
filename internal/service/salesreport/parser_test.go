package salesreport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecords_Basic(t *testing.T) {
	text := "Order Date,Order Status,Selling Price\n" +
		"10/5/2024,Shipped,100\n" +
		"10/6/2024,Cancelled,50\n"

	records := ParseRecords(text)

	assert.Len(t, records, 2)
	assert.Equal(t, "10/5/2024", records[0].Get(ColOrderDate))
	assert.Equal(t, "Shipped", records[0].Get(ColOrderStatus))
	assert.Equal(t, "50", records[1].Get(ColSellingPrice))
}

func TestParseRecords_QuotedDelimiter(t *testing.T) {
	text := "Product Name,Category\n" +
		`"Shirt, Cotton",Apparel`

	records := ParseRecords(text)

	assert.Len(t, records, 1)
	assert.Equal(t, "Shirt, Cotton", records[0].Get(ColProductName))
	assert.Equal(t, "Apparel", records[0].Get(ColCategory))
}

func TestParseRecords_QuotedHeaders(t *testing.T) {
	text := `"Order Date","Order Status"` + "\n" +
		"10/5/2024,Shipped"

	records := ParseRecords(text)

	assert.Len(t, records, 1)
	assert.Equal(t, "Shipped", records[0].Get(ColOrderStatus))
}

func TestParseRecords_LeadingBacktickStripped(t *testing.T) {
	text := "Order Status,Selling Price\n" +
		"`Shipped,`100"

	records := ParseRecords(text)

	assert.Equal(t, "Shipped", records[0].Get(ColOrderStatus))
	assert.Equal(t, "100", records[0].Get(ColSellingPrice))
}

func TestParseRecords_ShortRow(t *testing.T) {
	text := "Order Date,Order Status,Selling Price\n" +
		"10/5/2024,Shipped"

	records := ParseRecords(text)

	assert.Len(t, records, 1)
	assert.Equal(t, "", records[0].Get(ColSellingPrice))
	assert.Equal(t, "Unknown", records[0].Label(ColSellingPrice))
}

func TestParseRecords_ExtraFieldsIgnored(t *testing.T) {
	text := "Order Status\nShipped,stray,fields"

	records := ParseRecords(text)

	assert.Len(t, records, 1)
	assert.Equal(t, "Shipped", records[0].Get(ColOrderStatus))
}

func TestParseRecords_EmptyLinesAndCRLF(t *testing.T) {
	text := "Order Status\r\nShipped\r\n\r\nCancelled\r\n"

	records := ParseRecords(text)

	assert.Len(t, records, 2)
	assert.Equal(t, "Cancelled", records[1].Get(ColOrderStatus))
}

func TestParseRecords_NeverPanicsOnMalformed(t *testing.T) {
	for _, text := range []string{"", "\n", `"`, "a,b\n\"unclosed,quote", "`"} {
		assert.NotPanics(t, func() { ParseRecords(text) }, "input %q", text)
	}
}

// Parsing is pure: the same text parses identically every time.
func TestParseRecords_Restartable(t *testing.T) {
	text := "Order Status,Selling Price\nShipped,100\nCancelled,50"

	first := ParseRecords(text)
	second := ParseRecords(text)

	assert.Equal(t, first, second)
}

func TestParseRecords_RoundTrip(t *testing.T) {
	records := []Record{
		{ColOrderStatus: "Shipped", ColSellingPrice: "100"},
		{ColOrderStatus: "Cancelled", ColSellingPrice: "50"},
	}

	// Plain values without delimiters or quotes survive render → parse.
	var sb strings.Builder
	sb.WriteString(ColOrderStatus + "," + ColSellingPrice + "\n")
	for _, r := range records {
		sb.WriteString(r.Get(ColOrderStatus) + "," + r.Get(ColSellingPrice) + "\n")
	}

	parsed := ParseRecords(sb.String())

	assert.Equal(t, records, parsed)
}
