package production

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"godown-dashboard/internal/storage"
)

func completedWith(employeeID int64, target, actual int, start time.Time) storage.WorkEntry {
	a := actual
	return storage.WorkEntry{
		EmployeeID:     employeeID,
		WorkTypeID:     10,
		TargetQuantity: target,
		ActualQuantity: &a,
		Status:         storage.EntryComplete,
		StartTime:      start,
	}
}

func TestBuildProductivity_Empty(t *testing.T) {
	summary := BuildProductivity(nil, nil, time.Now())

	assert.Equal(t, 0, summary.TotalCompleted)
	assert.Equal(t, 0, summary.CompletionRate)
	assert.Equal(t, 0, summary.AvgEfficiency)
	assert.NotNil(t, summary.EmployeeStats)
}

func TestBuildProductivity_Counts(t *testing.T) {
	now := time.Date(2024, 10, 7, 12, 0, 0, 0, time.UTC)
	entries := []storage.WorkEntry{
		completedWith(1, 10, 10, now.Add(-time.Hour)),
		completedWith(1, 10, 8, now.Add(-10*24*time.Hour)), // older than a week
		{EmployeeID: 1, WorkTypeID: 10, TargetQuantity: 5, Status: storage.EntryInProgress, StartTime: now},
	}
	employees := []storage.Employee{{ID: 1, Name: "Asha", Active: true}}

	summary := BuildProductivity(entries, employees, now)

	assert.Equal(t, 1, summary.TotalEmployees)
	assert.Equal(t, 2, summary.TotalCompleted)
	assert.Equal(t, 1, summary.InProgress)
	assert.Equal(t, 1, summary.ThisWeekCompleted)
	assert.Equal(t, 18, summary.TotalUnits)
	assert.Equal(t, 67, summary.CompletionRate, "2 of 3 entries complete")
}

func TestBuildProductivity_EfficiencyRounding(t *testing.T) {
	now := time.Now()
	entries := []storage.WorkEntry{
		completedWith(1, 10, 10, now), // 100%
		completedWith(1, 10, 5, now),  // 50%
	}
	employees := []storage.Employee{{ID: 1, Name: "Asha"}}

	summary := BuildProductivity(entries, employees, now)

	assert.Equal(t, 75, summary.AvgEfficiency)
	assert.Equal(t, 75, summary.EmployeeStats[0].AvgEfficiency)
}

func TestBuildProductivity_ZeroTargetSkipped(t *testing.T) {
	now := time.Now()
	entries := []storage.WorkEntry{
		completedWith(1, 0, 7, now),   // no target, contributes nothing
		completedWith(1, 10, 10, now), // 100%
	}
	employees := []storage.Employee{{ID: 1, Name: "Asha"}}

	summary := BuildProductivity(entries, employees, now)

	// 100 over two completed entries.
	assert.Equal(t, 50, summary.AvgEfficiency)
}

func TestBuildProductivity_EmployeesSortedByEfficiency(t *testing.T) {
	now := time.Now()
	entries := []storage.WorkEntry{
		completedWith(1, 10, 5, now),
		completedWith(2, 10, 9, now),
		completedWith(3, 10, 7, now),
	}
	employees := []storage.Employee{
		{ID: 1, Name: "Half"},
		{ID: 2, Name: "Best"},
		{ID: 3, Name: "Mid"},
	}

	summary := BuildProductivity(entries, employees, now)

	if assert.Len(t, summary.EmployeeStats, 3) {
		assert.Equal(t, "Best", summary.EmployeeStats[0].Name)
		assert.Equal(t, "Mid", summary.EmployeeStats[1].Name)
		assert.Equal(t, "Half", summary.EmployeeStats[2].Name)
		assert.Equal(t, 1, summary.EmployeeStats[0].TotalTasks)
		assert.Equal(t, 9, summary.EmployeeStats[0].TotalProduced)
	}
}

func TestBuildProductivity_IdleEmployeeStillListed(t *testing.T) {
	now := time.Now()
	employees := []storage.Employee{{ID: 5, Name: "New Hire"}}

	summary := BuildProductivity(nil, employees, now)

	if assert.Len(t, summary.EmployeeStats, 1) {
		assert.Equal(t, 0, summary.EmployeeStats[0].TotalTasks)
		assert.Equal(t, 0, summary.EmployeeStats[0].AvgEfficiency)
	}
}
