package salesreport

import "time"

// Criteria is the conjunction of optional filters for one report request.
// Nil dates and empty/"All" strings are no-ops.
type Criteria struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Marketplace string
	Status      string
	PaymentMode string
}

func (c Criteria) hasDateFilter() bool {
	return c.StartDate != nil || c.EndDate != nil
}

func matchValue(filter, value string) bool {
	return filter == "" || filter == "All" || filter == value
}

// Apply returns the subsequence of records satisfying every provided
// criterion. A record whose order date does not parse is out of range for
// any active date filter, but passes when no date filter is set.
func Apply(records []Record, c Criteria) []Record {
	end := c.EndDate
	if end != nil {
		e := EndOfDay(*end)
		end = &e
	}

	var out []Record
	for _, r := range records {
		if c.hasDateFilter() {
			date, ok := ParseOrderDate(r.Get(ColOrderDate))
			if !ok {
				continue
			}
			if c.StartDate != nil && date.Before(*c.StartDate) {
				continue
			}
			if end != nil && date.After(*end) {
				continue
			}
		}

		if !matchValue(c.Marketplace, r.Get(ColMarketplace)) {
			continue
		}
		if !matchValue(c.Status, r.Get(ColOrderStatus)) {
			continue
		}
		if !matchValue(c.PaymentMode, r.Get(ColPaymentMode)) {
			continue
		}

		out = append(out, r)
	}

	return out
}
