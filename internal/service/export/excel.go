package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"godown-dashboard/internal/service/production"
)

// ReportSource builds the production report the workbook is rendered from.
type ReportSource interface {
	DailyReport(ctx context.Context, period string, now time.Time) (*production.DailyReport, error)
}

type Service struct {
	reports ReportSource
}

func NewService(reports ReportSource) *Service {
	return &Service{reports: reports}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// GenerateExcel renders the daily production report as an xlsx workbook:
// a summary block, then one row per entry.
func (s *Service) GenerateExcel(ctx context.Context, period string, now time.Time) ([]byte, error) {
	const op = "export.Service.GenerateExcel"

	report, err := s.reports.DailyReport(ctx, period, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Production Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	// Summary block
	f.SetCellValue(sheet, "A1", "Period")
	f.SetCellValue(sheet, "B1", report.Period)
	f.SetCellValue(sheet, "A2", "Total Work")
	f.SetCellValue(sheet, "B2", report.TotalWork)
	f.SetCellValue(sheet, "A3", "Final Products")
	f.SetCellValue(sheet, "B3", report.TotalFinalProducts)
	f.SetCellValue(sheet, "A4", "Tasks")
	f.SetCellValue(sheet, "B4", report.TotalTasks)

	headers := []string{"Date", "Employee", "Product", "Work Type", "Target", "Actual", "Efficiency"}
	headerRow := 6
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, headerRow), name)
	}
	f.SetCellStyle(sheet, cellName(1, headerRow), cellName(len(headers), headerRow), headerStyle)

	for i, e := range report.Entries {
		row := headerRow + 1 + i

		f.SetCellValue(sheet, cellName(1, row), e.StartTime.Format("2006-01-02"))
		if e.Employee != nil {
			f.SetCellValue(sheet, cellName(2, row), e.Employee.Name)
		}
		if e.Product != nil {
			f.SetCellValue(sheet, cellName(3, row), e.Product.Name)
		}
		if e.WorkType != nil {
			f.SetCellValue(sheet, cellName(4, row), e.WorkType.Name)
		}
		f.SetCellValue(sheet, cellName(5, row), e.TargetQuantity)

		actual := 0
		if e.ActualQuantity != nil {
			actual = *e.ActualQuantity
		}
		f.SetCellValue(sheet, cellName(6, row), actual)

		if e.TargetQuantity > 0 {
			eff := float64(actual) / float64(e.TargetQuantity) * 100
			f.SetCellValue(sheet, cellName(7, row), fmt.Sprintf("%.0f%%", eff))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write workbook: %w", op, err)
	}

	return buf.Bytes(), nil
}
