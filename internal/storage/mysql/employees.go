package mysql

import (
	"context"
	"fmt"

	"godown-dashboard/internal/storage"
)

func (s *Storage) GetEmployees(ctx context.Context, onlyActive bool) ([]storage.Employee, error) {
	const op = "storage.mysql.GetEmployees"

	query := `SELECT id, name, active, created_at, updated_at FROM employees`
	if onlyActive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var employees []storage.Employee
	for rows.Next() {
		var e storage.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (s *Storage) SaveEmployee(ctx context.Context, name string) (*storage.Employee, error) {
	const op = "storage.mysql.SaveEmployee"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO employees (name, active) VALUES (?, TRUE)`, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return s.getEmployee(ctx, id)
}

func (s *Storage) UpdateEmployee(ctx context.Context, id int64, req storage.UpdateEmployee) (*storage.Employee, error) {
	const op = "storage.mysql.UpdateEmployee"

	_, err := s.db.ExecContext(ctx,
		`UPDATE employees SET name = ?, active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		req.Name, req.Active, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.getEmployee(ctx, id)
}

// ToggleEmployee flips the active flag and returns the updated row.
func (s *Storage) ToggleEmployee(ctx context.Context, id int64) (*storage.Employee, error) {
	const op = "storage.mysql.ToggleEmployee"

	_, err := s.db.ExecContext(ctx,
		`UPDATE employees SET active = NOT active, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.getEmployee(ctx, id)
}

func (s *Storage) getEmployee(ctx context.Context, id int64) (*storage.Employee, error) {
	const op = "storage.mysql.getEmployee"

	var e storage.Employee
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, active, created_at, updated_at FROM employees WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return &e, nil
}
