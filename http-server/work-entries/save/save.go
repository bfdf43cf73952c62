package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"godown-dashboard/internal/storage"
)

var validate = validator.New()

type EntrySaver interface {
	SaveWorkEntry(ctx context.Context, req storage.SaveWorkEntry) (*storage.WorkEntry, error)
}

// SaveWorkEntry starts a task: the entry is created in-progress with the
// start time stamped; actual quantity stays empty until completion.
func SaveWorkEntry(log *slog.Logger, saver EntrySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-entries.save.SaveWorkEntry"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.SaveWorkEntry
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("invalid request body", slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			log.Error("validation failed", slog.String("error", err.Error()))
			http.Error(w, "employee_id, work_type_id and a positive target_quantity are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entry, err := saver.SaveWorkEntry(ctx, req)
		if err != nil {
			log.Error("failed to save work entry", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, entry)
	}
}
