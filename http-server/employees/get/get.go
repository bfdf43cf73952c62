package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"godown-dashboard/internal/storage"
)

type Employees interface {
	GetEmployees(ctx context.Context, onlyActive bool) ([]storage.Employee, error)
}

func GetEmployees(log *slog.Logger, employees Employees) http.HandlerFunc {
	return listHandler(log, employees, false, "handlers.employees.get.GetEmployees")
}

// GetActiveEmployees serves the dropdowns that only want selectable workers.
func GetActiveEmployees(log *slog.Logger, employees Employees) http.HandlerFunc {
	return listHandler(log, employees, true, "handlers.employees.get.GetActiveEmployees")
}

func listHandler(log *slog.Logger, employees Employees, onlyActive bool, op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := employees.GetEmployees(ctx, onlyActive)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to list employees")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if list == nil {
			list = []storage.Employee{}
		}

		render.JSON(w, r, list)
	}
}
