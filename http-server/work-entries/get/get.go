package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"godown-dashboard/internal/storage"
)

type Entries interface {
	GetWorkEntries(ctx context.Context, filter storage.EntryFilter) ([]storage.WorkEntry, error)
}

// GetWorkEntries lists every entry with joined employee/work-type/product/
// unit names, newest first.
func GetWorkEntries(log *slog.Logger, entries Entries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-entries.get.GetWorkEntries"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := entries.GetWorkEntries(ctx, storage.EntryFilter{})
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("failed to list work entries")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if list == nil {
			list = []storage.WorkEntry{}
		}

		render.JSON(w, r, list)
	}
}
