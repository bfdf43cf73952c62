package sales

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"godown-dashboard/internal/service/salesreport"
)

type AnalysisService interface {
	Analyze(ctx context.Context, criteria salesreport.Criteria) (*salesreport.Report, error)
}

// GetSalesAnalysis runs the full sales pipeline for one request. Filters
// arrive as query parameters; omitted or "All" values filter nothing.
// Bad date strings in startDate/endDate are rejected up front.
func GetSalesAnalysis(log *slog.Logger, service AnalysisService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sales.GetSalesAnalysis"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		criteria, err := parseCriteria(r)
		if err != nil {
			log.Error("invalid filter parameters", slog.String("error", err.Error()))
			http.Error(w, "Invalid date filter, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		// The merge waits on external sheet hosts.
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		report, err := service.Analyze(ctx, criteria)
		if err != nil {
			log.Error("sales analysis failed", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, report)
	}
}

func parseCriteria(r *http.Request) (salesreport.Criteria, error) {
	q := r.URL.Query()

	criteria := salesreport.Criteria{
		Marketplace: q.Get("marketplace"),
		Status:      q.Get("status"),
		PaymentMode: q.Get("paymentMode"),
	}

	if raw := q.Get("startDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return salesreport.Criteria{}, err
		}
		criteria.StartDate = &t
	}
	if raw := q.Get("endDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return salesreport.Criteria{}, err
		}
		criteria.EndDate = &t
	}

	return criteria, nil
}
