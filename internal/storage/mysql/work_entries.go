package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"godown-dashboard/internal/storage"
)

const entrySelect = `
	SELECT we.id, we.employee_id, we.work_type_id, we.product_id, we.unit_id,
	       we.target_quantity, we.actual_quantity, we.status, we.notes,
	       we.start_time, we.end_time,
	       e.name, wt.name, p.name, u.name
	FROM work_entries we
	JOIN employees e ON e.id = we.employee_id
	JOIN work_types wt ON wt.id = we.work_type_id
	LEFT JOIN products p ON p.id = we.product_id
	LEFT JOIN units u ON u.id = we.unit_id`

func (s *Storage) GetWorkEntries(ctx context.Context, filter storage.EntryFilter) ([]storage.WorkEntry, error) {
	const op = "storage.mysql.GetWorkEntries"

	query := entrySelect
	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != "" {
		conds = append(conds, `we.status = ?`)
		args = append(args, filter.Status)
	}
	if filter.StartFrom != nil {
		conds = append(conds, `we.start_time >= ?`)
		args = append(args, filter.StartFrom.UTC())
	}
	for i, c := range conds {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}
	query += ` ORDER BY we.start_time DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []storage.WorkEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, *entry)
	}

	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*storage.WorkEntry, error) {
	var (
		e            storage.WorkEntry
		productID    sql.NullInt64
		unitID       sql.NullInt64
		actual       sql.NullInt64
		notes        sql.NullString
		endTime      sql.NullTime
		employeeName string
		workTypeName string
		productName  sql.NullString
		unitName     sql.NullString
	)

	err := row.Scan(&e.ID, &e.EmployeeID, &e.WorkTypeID, &productID, &unitID,
		&e.TargetQuantity, &actual, &e.Status, &notes,
		&e.StartTime, &endTime,
		&employeeName, &workTypeName, &productName, &unitName)
	if err != nil {
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	e.Notes = notes.String
	if productID.Valid {
		e.ProductID = &productID.Int64
	}
	if unitID.Valid {
		e.UnitID = &unitID.Int64
	}
	if actual.Valid {
		v := int(actual.Int64)
		e.ActualQuantity = &v
	}
	if endTime.Valid {
		t := endTime.Time
		e.EndTime = &t
	}

	e.Employee = &storage.EntityRef{ID: e.EmployeeID, Name: employeeName}
	e.WorkType = &storage.EntityRef{ID: e.WorkTypeID, Name: workTypeName}
	if e.ProductID != nil {
		e.Product = &storage.EntityRef{ID: *e.ProductID, Name: productName.String}
	}
	if e.UnitID != nil {
		e.Unit = &storage.EntityRef{ID: *e.UnitID, Name: unitName.String}
	}

	return &e, nil
}

func (s *Storage) SaveWorkEntry(ctx context.Context, req storage.SaveWorkEntry) (*storage.WorkEntry, error) {
	const op = "storage.mysql.SaveWorkEntry"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO work_entries
		(employee_id, work_type_id, product_id, unit_id, target_quantity, status, start_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.EmployeeID, req.WorkTypeID, req.ProductID, req.UnitID,
		req.TargetQuantity, storage.EntryInProgress, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return s.getWorkEntry(ctx, id)
}

// CompleteWorkEntry stamps the actual quantity exactly once and moves the
// entry to complete with an end time.
func (s *Storage) CompleteWorkEntry(ctx context.Context, id int64, req storage.CompleteWorkEntry) (*storage.WorkEntry, error) {
	const op = "storage.mysql.CompleteWorkEntry"

	_, err := s.db.ExecContext(ctx, `
		UPDATE work_entries
		SET actual_quantity = ?, notes = ?, status = ?, end_time = ?
		WHERE id = ?`,
		req.ActualQuantity, req.Notes, storage.EntryComplete, time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return s.getWorkEntry(ctx, id)
}

func (s *Storage) UpdateWorkEntry(ctx context.Context, id int64, req storage.UpdateWorkEntry) (*storage.WorkEntry, error) {
	const op = "storage.mysql.UpdateWorkEntry"

	status := req.Status
	if status == "" {
		status = storage.EntryInProgress
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE work_entries
		SET actual_quantity = ?, notes = ?, status = ?
		WHERE id = ?`,
		req.ActualQuantity, req.Notes, status, id)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return s.getWorkEntry(ctx, id)
}

func (s *Storage) DeleteWorkEntry(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteWorkEntry"

	_, err := s.db.ExecContext(ctx, `DELETE FROM work_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return nil
}

func (s *Storage) getWorkEntry(ctx context.Context, id int64) (*storage.WorkEntry, error) {
	const op = "storage.mysql.getWorkEntry"

	row := s.db.QueryRowContext(ctx, entrySelect+` WHERE we.id = ?`, id)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return entry, nil
}
