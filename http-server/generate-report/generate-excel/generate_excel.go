package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type ExcelService interface {
	GenerateExcel(ctx context.Context, period string, now time.Time) ([]byte, error)
}

// GenerateReportExcel streams the production report workbook as a download.
func GenerateReportExcel(log *slog.Logger, service ExcelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReportExcel"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		period := r.URL.Query().Get("period")
		switch period {
		case "week", "month":
		default:
			period = "day"
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		data, err := service.GenerateExcel(ctx, period, time.Now())
		if err != nil {
			log.Error("failed to generate report", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("production-report-%s-%s.xlsx", period, time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Write(data)
	}
}
