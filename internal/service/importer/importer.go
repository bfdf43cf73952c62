package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"godown-dashboard/internal/service/salesreport"
	"godown-dashboard/internal/storage"
)

// Registry is the data-source side of the import operation.
type Registry interface {
	GetDataSource(ctx context.Context, id string) (*storage.DataSource, error)
	MarkImported(ctx context.Context, id string, stats storage.ImportStats) error
	MarkError(ctx context.Context, id string) error
}

type Service struct {
	log      *slog.Logger
	registry Registry
	fetcher  salesreport.Fetcher
	timeout  time.Duration
}

func NewService(log *slog.Logger, registry Registry, fetcher salesreport.Fetcher, timeout time.Duration) *Service {
	return &Service{log: log, registry: registry, fetcher: fetcher, timeout: timeout}
}

// Import fetches and parses one source. Unlike the merger, a failure here
// is terminal: the source flips to error and the caller gets the reason.
// Success caches record count and the observed order-date range.
func (s *Service) Import(ctx context.Context, id string) (*storage.ImportStats, error) {
	const op = "importer.Service.Import"

	src, err := s.registry.GetDataSource(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.fetcher.FetchCSV(fetchCtx, src.SheetURL)
	if err != nil {
		s.log.With(slog.String("op", op), slog.String("source", src.Name)).
			Error("import fetch failed", slog.String("error", err.Error()))
		if markErr := s.registry.MarkError(ctx, id); markErr != nil {
			s.log.Error("mark error failed", slog.String("id", id), slog.String("error", markErr.Error()))
		}
		return nil, fmt.Errorf("%s: fetch %s: %w", op, src.Name, err)
	}

	records := salesreport.ParseRecords(text)
	stats := collectStats(records)

	if err := s.registry.MarkImported(ctx, id, stats); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("source imported",
		slog.String("source", src.Name),
		slog.Int("records", stats.RecordCount))

	return &stats, nil
}

func collectStats(records []salesreport.Record) storage.ImportStats {
	stats := storage.ImportStats{RecordCount: len(records)}

	for _, r := range records {
		date, ok := salesreport.ParseOrderDate(r.Get(salesreport.ColOrderDate))
		if !ok {
			continue
		}
		if stats.DateRangeStart == nil || date.Before(*stats.DateRangeStart) {
			d := date
			stats.DateRangeStart = &d
		}
		if stats.DateRangeEnd == nil || date.After(*stats.DateRangeEnd) {
			d := date
			stats.DateRangeEnd = &d
		}
	}

	return stats
}
