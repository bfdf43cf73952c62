package importer

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"godown-dashboard/internal/service/salesreport"
	"godown-dashboard/internal/storage"
)

type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) GetDataSource(ctx context.Context, id string) (*storage.DataSource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.DataSource), args.Error(1)
}

func (m *MockRegistry) MarkImported(ctx context.Context, id string, stats storage.ImportStats) error {
	args := m.Called(ctx, id, stats)
	return args.Error(0)
}

func (m *MockRegistry) MarkError(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestImport_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "Order Date,Order Status\n"+
			"10/5/2024,Shipped\n"+
			"10/7/2024,Delivered\n"+
			"garbage,Pending\n")
	}))
	defer server.Close()

	registry := new(MockRegistry)
	registry.On("GetDataSource", mock.Anything, "src-1").
		Return(&storage.DataSource{ID: "src-1", Name: "Sheet A", SheetURL: server.URL}, nil)
	registry.On("MarkImported", mock.Anything, "src-1", mock.MatchedBy(func(stats storage.ImportStats) bool {
		return stats.RecordCount == 3 &&
			stats.DateRangeStart != nil && stats.DateRangeStart.Format("2006-01-02") == "2024-10-05" &&
			stats.DateRangeEnd != nil && stats.DateRangeEnd.Format("2006-01-02") == "2024-10-07"
	})).Return(nil)

	service := NewService(discardLogger(), registry, salesreport.NewHTTPFetcher(), 5*time.Second)

	stats, err := service.Import(context.Background(), "src-1")

	require.NoError(t, err)
	assert.Equal(t, 3, stats.RecordCount)
	registry.AssertExpectations(t)
}

func TestImport_FetchFailureMarksError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	registry := new(MockRegistry)
	registry.On("GetDataSource", mock.Anything, "src-1").
		Return(&storage.DataSource{ID: "src-1", Name: "Sheet A", SheetURL: server.URL}, nil)
	registry.On("MarkError", mock.Anything, "src-1").Return(nil)

	service := NewService(discardLogger(), registry, salesreport.NewHTTPFetcher(), 5*time.Second)

	_, err := service.Import(context.Background(), "src-1")

	require.Error(t, err)
	registry.AssertExpectations(t)
	registry.AssertNotCalled(t, "MarkImported", mock.Anything, mock.Anything, mock.Anything)
}

func TestImport_UnknownSource(t *testing.T) {
	registry := new(MockRegistry)
	registry.On("GetDataSource", mock.Anything, "missing").
		Return(nil, sql.ErrNoRows)

	service := NewService(discardLogger(), registry, salesreport.NewHTTPFetcher(), time.Second)

	_, err := service.Import(context.Background(), "missing")

	assert.ErrorIs(t, err, sql.ErrNoRows)
	registry.AssertNotCalled(t, "MarkError", mock.Anything, mock.Anything)
}

func TestCollectStats_NoParseableDates(t *testing.T) {
	records := []salesreport.Record{
		{salesreport.ColOrderDate: "garbage"},
		{},
	}

	stats := collectStats(records)

	assert.Equal(t, 2, stats.RecordCount)
	assert.Nil(t, stats.DateRangeStart)
	assert.Nil(t, stats.DateRangeEnd)
}
