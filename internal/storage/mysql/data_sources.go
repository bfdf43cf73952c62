package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"godown-dashboard/internal/storage"
)

func (s *Storage) GetDataSources(ctx context.Context) ([]storage.DataSource, error) {
	const op = "storage.mysql.GetDataSources"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, sheet_url, status, record_count,
		       date_range_start, date_range_end, last_imported_at
		FROM data_sources ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sources []storage.DataSource
	for rows.Next() {
		src, err := scanDataSource(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sources = append(sources, *src)
	}

	return sources, rows.Err()
}

// GetActiveSources returns only sources that have imported successfully;
// the sales merger reads from these.
func (s *Storage) GetActiveSources(ctx context.Context) ([]storage.DataSource, error) {
	const op = "storage.mysql.GetActiveSources"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, sheet_url, status, record_count,
		       date_range_start, date_range_end, last_imported_at
		FROM data_sources WHERE status = ? ORDER BY name ASC`, storage.SourceActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sources []storage.DataSource
	for rows.Next() {
		src, err := scanDataSource(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sources = append(sources, *src)
	}

	return sources, rows.Err()
}

func scanDataSource(rows *sql.Rows) (*storage.DataSource, error) {
	var (
		src        storage.DataSource
		rangeStart sql.NullTime
		rangeEnd   sql.NullTime
		imported   sql.NullTime
	)

	err := rows.Scan(&src.ID, &src.Name, &src.SheetURL, &src.Status,
		&src.RecordCount, &rangeStart, &rangeEnd, &imported)
	if err != nil {
		return nil, fmt.Errorf("scan data source: %w", err)
	}

	if rangeStart.Valid {
		src.DateRangeStart = &rangeStart.Time
	}
	if rangeEnd.Valid {
		src.DateRangeEnd = &rangeEnd.Time
	}
	if imported.Valid {
		src.LastImportedAt = &imported.Time
	}

	return &src, nil
}

func (s *Storage) SaveDataSource(ctx context.Context, req storage.SaveDataSource) (*storage.DataSource, error) {
	const op = "storage.mysql.SaveDataSource"

	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO data_sources (id, name, sheet_url, status, record_count)
		VALUES (?, ?, ?, ?, 0)`,
		id, req.Name, req.SheetURL, storage.SourcePending)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.DataSource{
		ID:       id,
		Name:     req.Name,
		SheetURL: req.SheetURL,
		Status:   storage.SourcePending,
	}, nil
}

func (s *Storage) GetDataSource(ctx context.Context, id string) (*storage.DataSource, error) {
	const op = "storage.mysql.GetDataSource"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, sheet_url, status, record_count,
		       date_range_start, date_range_end, last_imported_at
		FROM data_sources WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%s: %w", op, id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("%s: id=%s: %w", op, id, sql.ErrNoRows)
	}

	src, err := scanDataSource(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return src, nil
}

// MarkImported flips the source to active and caches the import metadata.
// Last write wins; there is no version check.
func (s *Storage) MarkImported(ctx context.Context, id string, stats storage.ImportStats) error {
	const op = "storage.mysql.MarkImported"

	_, err := s.db.ExecContext(ctx, `
		UPDATE data_sources
		SET status = ?, record_count = ?, date_range_start = ?, date_range_end = ?,
		    last_imported_at = ?
		WHERE id = ?`,
		storage.SourceActive, stats.RecordCount, stats.DateRangeStart, stats.DateRangeEnd,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, id, err)
	}

	return nil
}

func (s *Storage) MarkError(ctx context.Context, id string) error {
	const op = "storage.mysql.MarkError"

	_, err := s.db.ExecContext(ctx,
		`UPDATE data_sources SET status = ? WHERE id = ?`, storage.SourceError, id)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, id, err)
	}

	return nil
}

func (s *Storage) DeleteDataSource(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteDataSource"

	_, err := s.db.ExecContext(ctx, `DELETE FROM data_sources WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, id, err)
	}

	return nil
}
