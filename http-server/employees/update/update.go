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

type EmployeeUpdater interface {
	UpdateEmployee(ctx context.Context, id int64, req storage.UpdateEmployee) (*storage.Employee, error)
	ToggleEmployee(ctx context.Context, id int64) (*storage.Employee, error)
}

func UpdateEmployee(log *slog.Logger, updater EmployeeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.update.UpdateEmployee"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		var req storage.UpdateEmployee
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("invalid request body", slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		employee, err := updater.UpdateEmployee(ctx, id, req)
		if err != nil {
			log.Error("failed to update employee", slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, employee)
	}
}

// ToggleEmployee flips active/inactive without a body.
func ToggleEmployee(log *slog.Logger, updater EmployeeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.update.ToggleEmployee"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		employee, err := updater.ToggleEmployee(ctx, id)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("failed to toggle employee", slog.Int64("id", id))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, employee)
	}
}
