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

type CatalogSaver interface {
	SaveCatalogItem(ctx context.Context, table, name string) (*storage.CatalogItem, error)
}

func SaveCatalogItem(log *slog.Logger, saver CatalogSaver, table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.save.SaveCatalogItem"

		log := log.With(
			slog.String("op", op),
			slog.String("table", table),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.SaveCatalogItem
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

		item, err := saver.SaveCatalogItem(ctx, table, req.Name)
		if err != nil {
			log.Error("failed to save catalog item", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, item)
	}
}
