package delete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CatalogDeleter interface {
	DeleteCatalogItem(ctx context.Context, table string, id int64) error
}

func DeleteCatalogItem(log *slog.Logger, deleter CatalogDeleter, table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.delete.DeleteCatalogItem"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteCatalogItem(ctx, table, id); err != nil {
			log.With(slog.String("op", op), slog.String("table", table), slog.String("error", err.Error())).
				Error("failed to delete catalog item", slog.Int64("id", id))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]bool{"success": true})
	}
}
