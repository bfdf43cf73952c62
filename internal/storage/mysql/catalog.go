package mysql

import (
	"context"
	"fmt"

	"godown-dashboard/internal/storage"
)

// Name-only reference tables share one CRUD implementation. The allowlist
// keeps table names out of user-controlled input.
var catalogTables = map[string]bool{
	"work_types":         true,
	"products":           true,
	"units":              true,
	"expense_categories": true,
}

func checkCatalogTable(table string) error {
	if !catalogTables[table] {
		return fmt.Errorf("unknown catalog table %q", table)
	}
	return nil
}

func (s *Storage) GetCatalog(ctx context.Context, table string) ([]storage.CatalogItem, error) {
	const op = "storage.mysql.GetCatalog"

	if err := checkCatalogTable(table); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT id, name FROM %s ORDER BY name ASC`, table))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, table, err)
	}
	defer rows.Close()

	var items []storage.CatalogItem
	for rows.Next() {
		var item storage.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *Storage) SaveCatalogItem(ctx context.Context, table, name string) (*storage.CatalogItem, error) {
	const op = "storage.mysql.SaveCatalogItem"

	if err := checkCatalogTable(table); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (name) VALUES (?)`, table), name)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, table, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return &storage.CatalogItem{ID: id, Name: name}, nil
}

func (s *Storage) UpdateCatalogItem(ctx context.Context, table string, id int64, name string) (*storage.CatalogItem, error) {
	const op = "storage.mysql.UpdateCatalogItem"

	if err := checkCatalogTable(table); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET name = ? WHERE id = ?`, table), name, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %s id=%d: %w", op, table, id, err)
	}

	return &storage.CatalogItem{ID: id, Name: name}, nil
}

func (s *Storage) DeleteCatalogItem(ctx context.Context, table string, id int64) error {
	const op = "storage.mysql.DeleteCatalogItem"

	if err := checkCatalogTable(table); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return fmt.Errorf("%s: %s id=%d: %w", op, table, id, err)
	}

	return nil
}
