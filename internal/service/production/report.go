package production

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"godown-dashboard/internal/storage"
)

type DailyBucket struct {
	Date          string `json:"date"`
	TotalWork     int    `json:"totalWork"`
	FinalProducts int    `json:"finalProducts"`
	Tasks         int    `json:"tasks"`
}

type EmployeeWork struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TotalWork int    `json:"totalWork"`
	Tasks     int    `json:"tasks"`
}

type WorkTypeWork struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TotalDone int    `json:"totalDone"`
	Tasks     int    `json:"tasks"`
}

type ProductFinal struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	FinalCount int    `json:"finalCount"`
	WorkStages int    `json:"workStages"`
}

type DailyReport struct {
	Period             string              `json:"period"`
	StartDate          time.Time           `json:"startDate"`
	TotalWork          int                 `json:"totalWork"`
	TotalFinalProducts int                 `json:"totalFinalProducts"`
	TotalTasks         int                 `json:"totalTasks"`
	DailyData          []DailyBucket       `json:"dailyData"`
	EmployeeBreakdown  []EmployeeWork      `json:"employeeBreakdown"`
	WorkTypeBreakdown  []WorkTypeWork      `json:"workTypeBreakdown"`
	ProductBreakdown   []ProductFinal      `json:"productBreakdown"`
	Entries            []storage.WorkEntry `json:"entries"`
}

// EntryStore is the read-only snapshot access the analytics needs.
type EntryStore interface {
	GetWorkEntries(ctx context.Context, filter storage.EntryFilter) ([]storage.WorkEntry, error)
	GetEmployees(ctx context.Context, onlyActive bool) ([]storage.Employee, error)
	GetCatalog(ctx context.Context, table string) ([]storage.CatalogItem, error)
}

type Service struct {
	log    *slog.Logger
	store  EntryStore
	policy Policy
}

func NewService(log *slog.Logger, store EntryStore) *Service {
	return &Service{log: log, store: store, policy: ObservedStagesOnly}
}

// PeriodStart maps a report period onto its window start. Day means local
// midnight of the request time; week and month are trailing wall-clock
// windows, not calendar ones.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case "week":
		return now.Add(-7 * 24 * time.Hour)
	case "month":
		return now.Add(-30 * 24 * time.Hour)
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

// DailyReport recomputes the production report from completed entries in
// the period window. Reads fan out in parallel; the report itself is a pure
// function of the three snapshots.
func (s *Service) DailyReport(ctx context.Context, period string, now time.Time) (*DailyReport, error) {
	const op = "production.Service.DailyReport"

	start := PeriodStart(period, now)

	var (
		entries   []storage.WorkEntry
		employees []storage.Employee
		workTypes []storage.CatalogItem
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.store.GetWorkEntries(gCtx, storage.EntryFilter{
			Status:    storage.EntryComplete,
			StartFrom: &start,
		})
		if err != nil {
			return fmt.Errorf("entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		employees, err = s.store.GetEmployees(gCtx, true)
		if err != nil {
			return fmt.Errorf("employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		workTypes, err = s.store.GetCatalog(gCtx, "work_types")
		if err != nil {
			return fmt.Errorf("work types: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return BuildDailyReport(period, start, entries, employees, workTypes, s.policy), nil
}

// BuildDailyReport assembles the report from already-fetched snapshots.
// Products are named from the joined entry refs, so the product catalog is
// not needed here beyond what the entries carry.
func BuildDailyReport(period string, start time.Time, entries []storage.WorkEntry,
	employees []storage.Employee, workTypes []storage.CatalogItem, policy Policy) *DailyReport {

	report := &DailyReport{
		Period:     period,
		StartDate:  start,
		TotalWork:  TotalWork(entries),
		TotalTasks: len(entries),
		Entries:    entries,
	}
	if report.Entries == nil {
		report.Entries = []storage.WorkEntry{}
	}

	report.DailyData = dailyBuckets(entries, policy)
	report.EmployeeBreakdown = employeeBreakdown(entries, employees)
	report.WorkTypeBreakdown = workTypeBreakdown(entries, workTypes)
	report.ProductBreakdown, report.TotalFinalProducts = productBreakdown(entries, policy)

	return report
}

func dailyBuckets(entries []storage.WorkEntry, policy Policy) []DailyBucket {
	byDay := make(map[string][]storage.WorkEntry)
	for _, e := range entries {
		key := e.StartTime.UTC().Format("2006-01-02")
		byDay[key] = append(byDay[key], e)
	}

	buckets := make([]DailyBucket, 0, len(byDay))
	for day, dayEntries := range byDay {
		buckets = append(buckets, DailyBucket{
			Date:          day,
			TotalWork:     TotalWork(dayEntries),
			FinalProducts: TotalFinalOutput(dayEntries, policy, nil),
			Tasks:         len(dayEntries),
		})
	}
	// Newest day first, the way the dashboard lists them.
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date > buckets[j].Date })

	return buckets
}

func employeeBreakdown(entries []storage.WorkEntry, employees []storage.Employee) []EmployeeWork {
	breakdown := []EmployeeWork{}
	for _, emp := range employees {
		row := EmployeeWork{ID: emp.ID, Name: emp.Name}
		for _, e := range entries {
			if e.EmployeeID != emp.ID {
				continue
			}
			row.TotalWork += actualQty(e)
			row.Tasks++
		}
		if row.Tasks > 0 {
			breakdown = append(breakdown, row)
		}
	}
	sort.SliceStable(breakdown, func(i, j int) bool { return breakdown[i].TotalWork > breakdown[j].TotalWork })

	return breakdown
}

func workTypeBreakdown(entries []storage.WorkEntry, workTypes []storage.CatalogItem) []WorkTypeWork {
	breakdown := []WorkTypeWork{}
	for _, wt := range workTypes {
		row := WorkTypeWork{ID: wt.ID, Name: wt.Name}
		for _, e := range entries {
			if e.WorkTypeID != wt.ID {
				continue
			}
			row.TotalDone += actualQty(e)
			row.Tasks++
		}
		if row.Tasks > 0 {
			breakdown = append(breakdown, row)
		}
	}
	sort.SliceStable(breakdown, func(i, j int) bool { return breakdown[i].TotalDone > breakdown[j].TotalDone })

	return breakdown
}

func productBreakdown(entries []storage.WorkEntry, policy Policy) ([]ProductFinal, int) {
	sums := stageSums(entries)
	outputs := FinalOutputs(entries, policy, nil)

	names := make(map[int64]string)
	for _, e := range entries {
		if e.ProductID != nil && e.Product != nil {
			names[*e.ProductID] = e.Product.Name
		}
	}

	total := 0
	breakdown := []ProductFinal{}
	for productID, finalCount := range outputs {
		total += finalCount
		breakdown = append(breakdown, ProductFinal{
			ID:         productID,
			Name:       names[productID],
			FinalCount: finalCount,
			WorkStages: len(sums[productID]),
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool { return breakdown[i].FinalCount > breakdown[j].FinalCount })

	return breakdown, total
}
