package salesreport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godown-dashboard/internal/storage"
)

type fakeSourceLister struct {
	sources []storage.DataSource
	err     error
}

func (f *fakeSourceLister) GetActiveSources(ctx context.Context) ([]storage.DataSource, error) {
	return f.sources, f.err
}

func TestAnalyze_NoActiveSources(t *testing.T) {
	service := NewService(discardLogger(), &fakeSourceLister{},
		NewMerger(discardLogger(), &fakeFetcher{}, time.Second))

	report, err := service.Analyze(context.Background(), Criteria{})

	require.NoError(t, err, "no data is a valid report, not an error")
	assert.NotEmpty(t, report.Message)
	assert.Equal(t, 0, report.KPIs.OrdersReceived)
	assert.NotNil(t, report.Charts.SalesTrend)
	assert.NotNil(t, report.Filters.Marketplaces)
}

func TestAnalyze_FullPipeline(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]string{
		"http://a": "Order Date,Order Status,Selling Price,Marketplace\n" +
			"10/5/2024,Shipped,100,Amazon\n" +
			"10/6/2024,Cancelled,50,Flipkart\n" +
			"10/7/2024,Delivered,75,Amazon\n",
	}}
	lister := &fakeSourceLister{sources: []storage.DataSource{
		{Name: "A", SheetURL: "http://a", Status: storage.SourceActive},
	}}
	service := NewService(discardLogger(), lister, NewMerger(discardLogger(), fetcher, time.Second))

	report, err := service.Analyze(context.Background(), Criteria{})

	require.NoError(t, err)
	assert.Equal(t, 3, report.KPIs.OrdersReceived)
	assert.Equal(t, 225.0, report.KPIs.TotalRevenue)
	assert.Len(t, report.Charts.SalesTrend, 3)
	assert.ElementsMatch(t, []string{"Amazon", "Flipkart"}, report.Filters.Marketplaces)
}

func TestAnalyze_FilterOptionsComeFromUnfilteredSet(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]string{
		"http://a": "Order Status,Marketplace\n" +
			"Shipped,Amazon\n" +
			"Shipped,Flipkart\n",
	}}
	lister := &fakeSourceLister{sources: []storage.DataSource{
		{Name: "A", SheetURL: "http://a", Status: storage.SourceActive},
	}}
	service := NewService(discardLogger(), lister, NewMerger(discardLogger(), fetcher, time.Second))

	report, err := service.Analyze(context.Background(), Criteria{Marketplace: "Amazon"})

	require.NoError(t, err)
	assert.Equal(t, 1, report.KPIs.OrdersReceived)
	assert.ElementsMatch(t, []string{"Amazon", "Flipkart"}, report.Filters.Marketplaces,
		"narrowing one filter must not hide the other options")
}

func TestAssemble_EmptySlicesNotNull(t *testing.T) {
	report := Assemble(nil)

	assert.NotNil(t, report.Charts.SalesTrend)
	assert.NotNil(t, report.Charts.MarketplaceRevenue)
	assert.NotNil(t, report.Charts.StatusDistribution)
	assert.NotNil(t, report.Charts.PaymentDistribution)
	assert.NotNil(t, report.Charts.TopProducts)
	assert.NotNil(t, report.Charts.TopStates)
	assert.NotNil(t, report.Charts.CategoryBreakdown)
}
