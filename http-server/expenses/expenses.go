package expenses

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

type Store interface {
	GetExpenses(ctx context.Context) ([]storage.Expense, error)
	SaveExpense(ctx context.Context, req storage.SaveExpense) (*storage.Expense, error)
	UpdateExpense(ctx context.Context, id int64, req storage.UpdateExpense) (*storage.Expense, error)
	UpdateExpenseStatus(ctx context.Context, id int64, status string) (*storage.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}

func GetExpenses(log *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.expenses.GetExpenses"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		expenses, err := store.GetExpenses(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("failed to list expenses")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if expenses == nil {
			expenses = []storage.Expense{}
		}

		render.JSON(w, r, expenses)
	}
}

func SaveExpense(log *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.expenses.SaveExpense"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.SaveExpense
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("invalid request body", slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			log.Error("validation failed", slog.String("error", err.Error()))
			http.Error(w, "item_name, a positive amount and expense_date are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		expense, err := store.SaveExpense(ctx, req)
		if err != nil {
			log.Error("failed to save expense", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, expense)
	}
}

func UpdateExpense(log *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.expenses.UpdateExpense"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		var req storage.UpdateExpense
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid expense payload", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		expense, err := store.UpdateExpense(ctx, id, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("failed to update expense", slog.Int64("id", id))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, expense)
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=active replaced"`
}

func UpdateExpenseStatus(log *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.expenses.UpdateExpenseStatus"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		var req statusRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "status must be active or replaced", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		expense, err := store.UpdateExpenseStatus(ctx, id, req.Status)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("failed to update expense status", slog.Int64("id", id))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, expense)
	}
}

func DeleteExpense(log *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.expenses.DeleteExpense"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := store.DeleteExpense(ctx, id); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("failed to delete expense", slog.Int64("id", id))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]bool{"success": true})
	}
}
