package salesreport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"godown-dashboard/internal/storage"
)

// ErrNoSources signals the no-data case: nothing is configured to merge.
// Callers answer with an empty report, not a 5xx.
var ErrNoSources = errors.New("no active data sources")

// Fetcher retrieves the raw CSV text behind one sheet URL.
type Fetcher interface {
	FetchCSV(ctx context.Context, url string) (string, error)
}

type HTTPFetcher struct {
	Client *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{}}
}

func (f *HTTPFetcher) FetchCSV(ctx context.Context, url string) (string, error) {
	const op = "salesreport.HTTPFetcher.FetchCSV"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read body: %w", op, err)
	}

	return string(body), nil
}

// Merger concatenates the parsed records of every active source.
type Merger struct {
	log     *slog.Logger
	fetcher Fetcher
	timeout time.Duration
}

func NewMerger(log *slog.Logger, fetcher Fetcher, timeout time.Duration) *Merger {
	return &Merger{log: log, fetcher: fetcher, timeout: timeout}
}

// Merge fetches all sources concurrently, each goroutine writing into its
// own slot. A source that fails to fetch or times out contributes nothing
// and never aborts the merge. Record order across sources is not defined
// and duplicates between overlapping sources are kept as-is.
func (m *Merger) Merge(ctx context.Context, sources []storage.DataSource) ([]Record, error) {
	const op = "salesreport.Merger.Merge"

	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSources)
	}

	slots := make([][]Record, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src storage.DataSource) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, m.timeout)
			defer cancel()

			text, err := m.fetcher.FetchCSV(fetchCtx, src.SheetURL)
			if err != nil {
				m.log.With(slog.String("op", op), slog.String("source", src.Name)).
					Warn("source fetch failed, skipping", slog.String("error", err.Error()))
				return
			}

			slots[i] = ParseRecords(text)
		}(i, src)
	}
	wg.Wait()

	var merged []Record
	for _, records := range slots {
		merged = append(merged, records...)
	}

	return merged, nil
}
