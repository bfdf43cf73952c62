package storage

import "time"

const (
	SourcePending = "pending"
	SourceActive  = "active"
	SourceError   = "error"
)

// DataSource is one externally hosted sheet exporting sales orders as CSV.
// Metadata fields are cached at import time, not recomputed on read.
type DataSource struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SheetURL       string     `json:"sheet_url"`
	Status         string     `json:"status"`
	RecordCount    int        `json:"record_count"`
	DateRangeStart *time.Time `json:"date_range_start"`
	DateRangeEnd   *time.Time `json:"date_range_end"`
	LastImportedAt *time.Time `json:"last_imported_at"`
}

type SaveDataSource struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	SheetURL string `json:"sheet_url" validate:"required,url"`
}

// ImportStats is what a successful import writes back onto the source row.
type ImportStats struct {
	RecordCount    int
	DateRangeStart *time.Time
	DateRangeEnd   *time.Time
}
