package update

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"godown-dashboard/internal/storage"
)

var validate = validator.New()

type EntryUpdater interface {
	CompleteWorkEntry(ctx context.Context, id int64, req storage.CompleteWorkEntry) (*storage.WorkEntry, error)
	UpdateWorkEntry(ctx context.Context, id int64, req storage.UpdateWorkEntry) (*storage.WorkEntry, error)
}

// CompleteWorkEntry is the one-shot transition that records the actual
// quantity and closes the entry.
func CompleteWorkEntry(log *slog.Logger, updater EntryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-entries.update.CompleteWorkEntry"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		var req storage.CompleteWorkEntry
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("invalid request body", slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "actual_quantity must be zero or more", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entry, err := updater.CompleteWorkEntry(ctx, id, req)
		if err != nil {
			log.Error("failed to complete work entry", slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, entry)
	}
}

// UpdateWorkEntry is the free-form edit for entries still in progress.
func UpdateWorkEntry(log *slog.Logger, updater EntryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-entries.update.UpdateWorkEntry"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		var req storage.UpdateWorkEntry
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("invalid request body", slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "status must be in-progress or complete", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entry, err := updater.UpdateWorkEntry(ctx, id, req)
		if err != nil {
			log.Error("failed to update work entry", slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, entry)
	}
}
