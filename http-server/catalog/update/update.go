package update

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"godown-dashboard/internal/storage"
)

var validate = validator.New()

type CatalogUpdater interface {
	UpdateCatalogItem(ctx context.Context, table string, id int64, name string) (*storage.CatalogItem, error)
}

func UpdateCatalogItem(log *slog.Logger, updater CatalogUpdater, table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.update.UpdateCatalogItem"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		var req storage.SaveCatalogItem
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		item, err := updater.UpdateCatalogItem(ctx, table, id, req.Name)
		if err != nil {
			log.With(slog.String("op", op), slog.String("table", table), slog.String("error", err.Error())).
				Error("failed to update catalog item", slog.Int64("id", id))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, item)
	}
}
