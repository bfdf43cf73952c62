package production

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"godown-dashboard/internal/storage"
)

type EmployeeStats struct {
	storage.Employee
	TotalTasks    int `json:"totalTasks"`
	TotalProduced int `json:"totalProduced"`
	AvgEfficiency int `json:"avgEfficiency"`
}

type ProductivitySummary struct {
	TotalEmployees    int             `json:"totalEmployees"`
	TotalCompleted    int             `json:"totalCompleted"`
	InProgress        int             `json:"inProgress"`
	ThisWeekCompleted int             `json:"thisWeekCompleted"`
	TotalUnits        int             `json:"totalUnits"`
	AvgEfficiency     int             `json:"avgEfficiency"`
	CompletionRate    int             `json:"completionRate"`
	EmployeeStats     []EmployeeStats `json:"employeeStats"`
}

// Productivity computes the all-time summary: overall counts, the average
// efficiency across completed entries, and the per-employee table sorted by
// efficiency. Efficiency is the mean of actual/target*100 per completed
// entry, rounded to the nearest integer.
func (s *Service) Productivity(ctx context.Context, now time.Time) (*ProductivitySummary, error) {
	const op = "production.Service.Productivity"

	var (
		entries   []storage.WorkEntry
		employees []storage.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.store.GetWorkEntries(gCtx, storage.EntryFilter{})
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
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return BuildProductivity(entries, employees, now), nil
}

func BuildProductivity(entries []storage.WorkEntry, employees []storage.Employee, now time.Time) *ProductivitySummary {
	var completed, inProgress []storage.WorkEntry
	for _, e := range entries {
		switch e.Status {
		case storage.EntryComplete:
			completed = append(completed, e)
		case storage.EntryInProgress:
			inProgress = append(inProgress, e)
		}
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	thisWeek := 0
	for _, e := range completed {
		if !e.StartTime.Before(weekAgo) {
			thisWeek++
		}
	}

	summary := &ProductivitySummary{
		TotalEmployees:    len(employees),
		TotalCompleted:    len(completed),
		InProgress:        len(inProgress),
		ThisWeekCompleted: thisWeek,
		TotalUnits:        TotalWork(completed),
		AvgEfficiency:     avgEfficiency(completed),
		EmployeeStats:     []EmployeeStats{},
	}
	if len(entries) > 0 {
		summary.CompletionRate = int(math.Round(float64(len(completed)) / float64(len(entries)) * 100))
	}

	for _, emp := range employees {
		var own []storage.WorkEntry
		for _, e := range completed {
			if e.EmployeeID == emp.ID {
				own = append(own, e)
			}
		}
		summary.EmployeeStats = append(summary.EmployeeStats, EmployeeStats{
			Employee:      emp,
			TotalTasks:    len(own),
			TotalProduced: TotalWork(own),
			AvgEfficiency: avgEfficiency(own),
		})
	}
	sort.SliceStable(summary.EmployeeStats, func(i, j int) bool {
		return summary.EmployeeStats[i].AvgEfficiency > summary.EmployeeStats[j].AvgEfficiency
	})

	return summary
}

func avgEfficiency(completed []storage.WorkEntry) int {
	if len(completed) == 0 {
		return 0
	}
	var sum float64
	for _, e := range completed {
		if e.TargetQuantity <= 0 {
			continue
		}
		sum += float64(actualQty(e)) / float64(e.TargetQuantity) * 100
	}
	return int(math.Round(sum / float64(len(completed))))
}
