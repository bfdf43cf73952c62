package salesreport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"godown-dashboard/internal/storage"
)

type RevenueSlice struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type CountSlice struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type QuantitySlice struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type StateSlice struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type Charts struct {
	SalesTrend          []TrendPoint    `json:"salesTrend"`
	MarketplaceRevenue  []RevenueSlice  `json:"marketplaceRevenue"`
	StatusDistribution  []CountSlice    `json:"statusDistribution"`
	PaymentDistribution []CountSlice    `json:"paymentDistribution"`
	TopProducts         []QuantitySlice `json:"topProducts"`
	TopStates           []StateSlice    `json:"topStates"`
	CategoryBreakdown   []CountSlice    `json:"categoryBreakdown"`
}

type FilterOptions struct {
	Marketplaces []string `json:"marketplaces"`
	Statuses     []string `json:"statuses"`
	PaymentModes []string `json:"paymentModes"`
}

type Report struct {
	KPIs    KPIs          `json:"kpis"`
	Charts  Charts        `json:"charts"`
	Filters FilterOptions `json:"filters"`
	Message string        `json:"message,omitempty"`
}

// topListCap bounds the product and state rankings; distributions
// (status, payment, category) stay exhaustive.
const topListCap = 10

// SourceLister is the slice of the data-source registry the report needs.
type SourceLister interface {
	GetActiveSources(ctx context.Context) ([]storage.DataSource, error)
}

type Service struct {
	log     *slog.Logger
	sources SourceLister
	merger  *Merger
}

func NewService(log *slog.Logger, sources SourceLister, merger *Merger) *Service {
	return &Service{log: log, sources: sources, merger: merger}
}

// Analyze builds the full sales report for one request: merge active
// sources, apply the filter conjunction, run every reducer over the same
// filtered snapshot. Nothing is cached between calls.
func (s *Service) Analyze(ctx context.Context, criteria Criteria) (*Report, error) {
	const op = "salesreport.Service.Analyze"

	sources, err := s.sources.GetActiveSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	merged, err := s.merger.Merge(ctx, sources)
	if err != nil {
		if errors.Is(err, ErrNoSources) {
			return emptyReport("No data available. Add and import a data source first."), nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(merged) == 0 {
		return emptyReport("No records found in the configured data sources."), nil
	}

	filtered := Apply(merged, criteria)
	report := Assemble(filtered)

	// Filter vocabularies come from the unfiltered set so narrowing one
	// filter never hides the other options.
	report.Filters = collectFilterOptions(merged)

	return report, nil
}

// Assemble composes all reducers over one already-filtered record set.
func Assemble(records []Record) *Report {
	report := &Report{
		KPIs: ComputeKPIs(records),
		Charts: Charts{
			SalesTrend:          SalesTrend(records),
			MarketplaceRevenue:  revenueSlices(rank(groupBy(records, ColMarketplace), byRevenue, 0)),
			StatusDistribution:  countSlices(rank(groupBy(records, ColOrderStatus), byCount, 0)),
			PaymentDistribution: countSlices(rank(groupBy(records, ColPaymentMode), byCount, 0)),
			TopProducts:         quantitySlices(rank(groupBy(records, ColProductName), byQuantity, topListCap)),
			TopStates:           stateSlices(rank(groupBy(records, ColShippingState), byCount, topListCap)),
			CategoryBreakdown:   countSlices(rank(groupBy(records, ColCategory), byCount, 0)),
		},
	}
	ensureChartSlices(&report.Charts)

	return report
}

func emptyReport(message string) *Report {
	report := &Report{Message: message}
	ensureChartSlices(&report.Charts)
	report.Filters = FilterOptions{
		Marketplaces: []string{},
		Statuses:     []string{},
		PaymentModes: []string{},
	}
	return report
}

// ensureChartSlices keeps empty chart arrays serializing as [] rather than
// null; the SPA iterates them unconditionally.
func ensureChartSlices(c *Charts) {
	if c.SalesTrend == nil {
		c.SalesTrend = []TrendPoint{}
	}
	if c.MarketplaceRevenue == nil {
		c.MarketplaceRevenue = []RevenueSlice{}
	}
	if c.StatusDistribution == nil {
		c.StatusDistribution = []CountSlice{}
	}
	if c.PaymentDistribution == nil {
		c.PaymentDistribution = []CountSlice{}
	}
	if c.TopProducts == nil {
		c.TopProducts = []QuantitySlice{}
	}
	if c.TopStates == nil {
		c.TopStates = []StateSlice{}
	}
	if c.CategoryBreakdown == nil {
		c.CategoryBreakdown = []CountSlice{}
	}
}

func revenueSlices(groups []group) []RevenueSlice {
	out := make([]RevenueSlice, len(groups))
	for i, g := range groups {
		out[i] = RevenueSlice{Name: g.Name, Revenue: g.Revenue}
	}
	return out
}

func countSlices(groups []group) []CountSlice {
	out := make([]CountSlice, len(groups))
	for i, g := range groups {
		out[i] = CountSlice{Name: g.Name, Count: g.Count}
	}
	return out
}

func quantitySlices(groups []group) []QuantitySlice {
	out := make([]QuantitySlice, len(groups))
	for i, g := range groups {
		out[i] = QuantitySlice{Name: g.Name, Quantity: g.Quantity}
	}
	return out
}

func stateSlices(groups []group) []StateSlice {
	out := make([]StateSlice, len(groups))
	for i, g := range groups {
		out[i] = StateSlice{Name: g.Name, Orders: g.Count, Revenue: g.Revenue}
	}
	return out
}

func collectFilterOptions(records []Record) FilterOptions {
	return FilterOptions{
		Marketplaces: distinct(records, ColMarketplace),
		Statuses:     distinct(records, ColOrderStatus),
		PaymentModes: distinct(records, ColPaymentMode),
	}
}

func distinct(records []Record, col string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, r := range records {
		v := r.Get(col)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
