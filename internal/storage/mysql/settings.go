package mysql

import (
	"context"
	"fmt"
)

func (s *Storage) GetSettings(ctx context.Context) (map[string]string, error) {
	const op = "storage.mysql.GetSettings"

	rows, err := s.db.QueryContext(ctx, "SELECT `key`, `value` FROM settings")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		settings[key] = value
	}

	return settings, rows.Err()
}

func (s *Storage) SaveSettings(ctx context.Context, settings map[string]string) error {
	const op = "storage.mysql.SaveSettings"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO settings (`+"`key`, `value`"+`) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE `+"`value`"+` = VALUES(`+"`value`"+`), updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for key, value := range settings {
		if _, err := stmt.ExecContext(ctx, key, value); err != nil {
			return fmt.Errorf("%s: upsert key=%s: %w", op, key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
