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

type ProductivityService interface {
	Productivity(ctx context.Context, now time.Time) (*production.ProductivitySummary, error)
}

// GetProductivity serves the all-time productivity summary: counts, average
// efficiency and the per-employee leaderboard.
func GetProductivity(log *slog.Logger, service ProductivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetProductivity"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		summary, err := service.Productivity(ctx, time.Now())
		if err != nil {
			log.Error("failed to build productivity summary", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}
