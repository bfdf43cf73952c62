package salesreport

// Column names as they appear in the sheet exports. Anything outside this
// set is carried in the record but never read.
const (
	ColOrderDate     = "Order Date"
	ColMarketplace   = "Marketplace"
	ColOrderStatus   = "Order Status"
	ColShipStatus    = "Shipping Status"
	ColPaymentMode   = "Payment Mode"
	ColSellingPrice  = "Selling Price"
	ColItemQuantity  = "Item Quantity"
	ColProductName   = "Product Name"
	ColShippingState = "Shipping State"
	ColCategory      = "Category"
)

// Record is one sales order row keyed by column name. Missing columns read
// as the empty string; reducers substitute "Unknown" or zero downstream.
type Record map[string]string

func (r Record) Get(col string) string {
	return r[col]
}

// Label returns the value for a categorical column, or "Unknown" when the
// column is absent or blank.
func (r Record) Label(col string) string {
	if v := r[col]; v != "" {
		return v
	}
	return "Unknown"
}
