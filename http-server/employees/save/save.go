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

type EmployeeSaver interface {
	SaveEmployee(ctx context.Context, name string) (*storage.Employee, error)
}

func SaveEmployee(log *slog.Logger, saver EmployeeSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.save.SaveEmployee"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.SaveEmployee
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("invalid request body", slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			log.Error("validation failed", slog.String("error", err.Error()))
			http.Error(w, "Name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		employee, err := saver.SaveEmployee(ctx, req.Name)
		if err != nil {
			log.Error("failed to save employee", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, employee)
	}
}
