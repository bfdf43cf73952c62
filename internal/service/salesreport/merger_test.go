package salesreport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godown-dashboard/internal/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeFetcher struct {
	responses map[string]string
	errs      map[string]error
}

func (f *fakeFetcher) FetchCSV(ctx context.Context, url string) (string, error) {
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	return f.responses[url], nil
}

func TestMerge_ConcatenatesAllSources(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]string{
		"http://a": "Order Status\nShipped\nPending",
		"http://b": "Order Status\nCancelled",
	}}
	merger := NewMerger(discardLogger(), fetcher, time.Second)

	sources := []storage.DataSource{
		{Name: "A", SheetURL: "http://a"},
		{Name: "B", SheetURL: "http://b"},
	}

	merged, err := merger.Merge(context.Background(), sources)

	require.NoError(t, err)
	assert.Len(t, merged, 3)
}

func TestMerge_FailingSourceIsSkipped(t *testing.T) {
	fetcher := &fakeFetcher{
		responses: map[string]string{
			"http://a": "Order Status\nShipped",
			"http://c": "Order Status\nCancelled\nReturned",
		},
		errs: map[string]error{
			"http://b": errors.New("boom"),
		},
	}
	merger := NewMerger(discardLogger(), fetcher, time.Second)

	sources := []storage.DataSource{
		{Name: "A", SheetURL: "http://a"},
		{Name: "B", SheetURL: "http://b"},
		{Name: "C", SheetURL: "http://c"},
	}

	merged, err := merger.Merge(context.Background(), sources)

	require.NoError(t, err)
	assert.Len(t, merged, 3, "sources 1 and 3 contribute, source 2 contributes nothing")

	statuses := make(map[string]int)
	for _, r := range merged {
		statuses[r.Get(ColOrderStatus)]++
	}
	assert.Equal(t, map[string]int{"Shipped": 1, "Cancelled": 1, "Returned": 1}, statuses)
}

func TestMerge_NoSources(t *testing.T) {
	merger := NewMerger(discardLogger(), &fakeFetcher{}, time.Second)

	_, err := merger.Merge(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoSources)
}

type hangingFetcher struct{}

func (hangingFetcher) FetchCSV(ctx context.Context, url string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// A hanging source must behave exactly like a failed one: the merge
// finishes without it instead of stalling the whole request.
func TestMerge_TimeoutIsASourceFailure(t *testing.T) {
	merger := NewMerger(discardLogger(), hangingFetcher{}, 20*time.Millisecond)

	sources := []storage.DataSource{{Name: "slow", SheetURL: "http://slow"}}

	done := make(chan struct{})
	var merged []Record
	var err error
	go func() {
		merged, err = merger.Merge(context.Background(), sources)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("merge did not return after source timeout")
	}

	require.NoError(t, err)
	assert.Empty(t, merged)
}
