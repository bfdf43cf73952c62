package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"godown-dashboard/internal/storage"
)

type Catalog interface {
	GetCatalog(ctx context.Context, table string) ([]storage.CatalogItem, error)
}

// GetCatalog lists one name-only reference table (work types, products,
// units, expense categories).
func GetCatalog(log *slog.Logger, catalog Catalog, table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.get.GetCatalog"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := catalog.GetCatalog(ctx, table)
		if err != nil {
			log.With(slog.String("op", op), slog.String("table", table), slog.String("error", err.Error())).
				Error("failed to list catalog")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if items == nil {
			items = []storage.CatalogItem{}
		}

		render.JSON(w, r, items)
	}
}
