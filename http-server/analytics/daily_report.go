package analytics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"godown-dashboard/internal/service/production"
)

type ReportService interface {
	DailyReport(ctx context.Context, period string, now time.Time) (*production.DailyReport, error)
}

// GetDailyReport serves the production report for period=day|week|month.
// Anything else falls back to day.
func GetDailyReport(log *slog.Logger, service ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetDailyReport"

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

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		report, err := service.DailyReport(ctx, period, time.Now())
		if err != nil {
			log.Error("failed to build daily report", slog.String("period", period), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, report)
	}
}
