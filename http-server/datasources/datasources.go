package datasources

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"godown-dashboard/internal/storage"
)

var validate = validator.New()

type Registry interface {
	GetDataSources(ctx context.Context) ([]storage.DataSource, error)
	SaveDataSource(ctx context.Context, req storage.SaveDataSource) (*storage.DataSource, error)
	DeleteDataSource(ctx context.Context, id string) error
}

// Importer runs the terminal single-source import: on failure the source
// is flipped to error and the reason surfaces to the operator.
type Importer interface {
	Import(ctx context.Context, id string) (*storage.ImportStats, error)
}

func GetDataSources(log *slog.Logger, registry Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.datasources.GetDataSources"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		sources, err := registry.GetDataSources(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("failed to list data sources")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if sources == nil {
			sources = []storage.DataSource{}
		}

		render.JSON(w, r, sources)
	}
}

func SaveDataSource(log *slog.Logger, registry Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.datasources.SaveDataSource"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.SaveDataSource
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("invalid request body", slog.String("error", err.Error()))
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			log.Error("validation failed", slog.String("error", err.Error()))
			http.Error(w, "Name and a valid sheet_url are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		source, err := registry.SaveDataSource(ctx, req)
		if err != nil {
			log.Error("failed to save data source", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, source)
	}
}

func ImportDataSource(log *slog.Logger, importer Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.datasources.ImportDataSource"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		// Imports wait on an external host, so they get a longer leash
		// than the usual request timeout.
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		stats, err := importer.Import(ctx, id)
		if err != nil {
			log.Error("import failed", slog.String("id", id), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, map[string]string{"error": "Import failed, source marked as error"})
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"success":      true,
			"record_count": stats.RecordCount,
		})
	}
}

func DeleteDataSource(log *slog.Logger, registry Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.datasources.DeleteDataSource"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := registry.DeleteDataSource(ctx, id); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("failed to delete data source", slog.String("id", id))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]bool{"success": true})
	}
}
