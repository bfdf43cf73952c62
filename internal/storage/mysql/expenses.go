package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"godown-dashboard/internal/storage"
)

const expenseSelect = `
	SELECT ex.id, ex.item_name, ex.amount, ex.category_id, ex.expense_date,
	       ex.receipt_url, ex.is_replacement, ex.replacement_reason,
	       ex.original_expense_id, ex.notes, ex.status, ex.created_at, ec.name
	FROM expenses ex
	LEFT JOIN expense_categories ec ON ec.id = ex.category_id`

func (s *Storage) GetExpenses(ctx context.Context) ([]storage.Expense, error) {
	const op = "storage.mysql.GetExpenses"

	rows, err := s.db.QueryContext(ctx, expenseSelect+` ORDER BY ex.expense_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var expenses []storage.Expense
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		expenses = append(expenses, *exp)
	}

	return expenses, rows.Err()
}

func scanExpense(row rowScanner) (*storage.Expense, error) {
	var (
		exp          storage.Expense
		categoryID   sql.NullInt64
		receiptURL   sql.NullString
		reason       sql.NullString
		originalID   sql.NullInt64
		notes        sql.NullString
		categoryName sql.NullString
	)

	err := row.Scan(&exp.ID, &exp.ItemName, &exp.Amount, &categoryID, &exp.ExpenseDate,
		&receiptURL, &exp.IsReplacement, &reason, &originalID, &notes,
		&exp.Status, &exp.CreatedAt, &categoryName)
	if err != nil {
		return nil, fmt.Errorf("scan expense: %w", err)
	}

	exp.ReceiptURL = receiptURL.String
	exp.ReplacementReason = reason.String
	exp.Notes = notes.String
	if categoryID.Valid {
		exp.CategoryID = &categoryID.Int64
		exp.Category = &storage.EntityRef{ID: categoryID.Int64, Name: categoryName.String}
	}
	if originalID.Valid {
		exp.OriginalExpenseID = &originalID.Int64
	}

	return &exp, nil
}

// SaveExpense inserts an expense; a replacement also marks the original row
// replaced within the same transaction.
func (s *Storage) SaveExpense(ctx context.Context, req storage.SaveExpense) (*storage.Expense, error) {
	const op = "storage.mysql.SaveExpense"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO expenses
		(item_name, amount, category_id, expense_date, receipt_url,
		 is_replacement, replacement_reason, original_expense_id, notes, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ItemName, req.Amount, req.CategoryID, req.ExpenseDate, req.ReceiptURL,
		req.IsReplacement, req.ReplacementReason, req.OriginalExpenseID, req.Notes,
		storage.ExpenseActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.IsReplacement && req.OriginalExpenseID != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE expenses SET status = ? WHERE id = ?`,
			storage.ExpenseReplaced, *req.OriginalExpenseID)
		if err != nil {
			return nil, fmt.Errorf("%s: mark original replaced id=%d: %w", op, *req.OriginalExpenseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return s.getExpense(ctx, id)
}

func (s *Storage) UpdateExpense(ctx context.Context, id int64, req storage.UpdateExpense) (*storage.Expense, error) {
	const op = "storage.mysql.UpdateExpense"

	_, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET item_name = ?, amount = ?, category_id = ?, expense_date = ?, notes = ?
		WHERE id = ?`,
		req.ItemName, req.Amount, req.CategoryID, req.ExpenseDate, req.Notes, id)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return s.getExpense(ctx, id)
}

func (s *Storage) UpdateExpenseStatus(ctx context.Context, id int64, status string) (*storage.Expense, error) {
	const op = "storage.mysql.UpdateExpenseStatus"

	_, err := s.db.ExecContext(ctx,
		`UPDATE expenses SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return s.getExpense(ctx, id)
}

func (s *Storage) DeleteExpense(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteExpense"

	_, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return nil
}

func (s *Storage) getExpense(ctx context.Context, id int64) (*storage.Expense, error) {
	const op = "storage.mysql.getExpense"

	row := s.db.QueryRowContext(ctx, expenseSelect+` WHERE ex.id = ?`, id)
	exp, err := scanExpense(row)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return exp, nil
}
