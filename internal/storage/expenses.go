package storage

import "time"

const (
	ExpenseActive   = "active"
	ExpenseReplaced = "replaced"
)

type Expense struct {
	ID                int64      `json:"id"`
	ItemName          string     `json:"item_name"`
	Amount            float64    `json:"amount"`
	CategoryID        *int64     `json:"category_id"`
	ExpenseDate       time.Time  `json:"expense_date"`
	ReceiptURL        string     `json:"receipt_url"`
	IsReplacement     bool       `json:"is_replacement"`
	ReplacementReason string     `json:"replacement_reason"`
	OriginalExpenseID *int64     `json:"original_expense_id"`
	Notes             string     `json:"notes"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	Category          *EntityRef `json:"category,omitempty"`
}

type SaveExpense struct {
	ItemName          string  `json:"item_name" validate:"required,min=1,max=200"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	CategoryID        *int64  `json:"category_id"`
	ExpenseDate       string  `json:"expense_date" validate:"required"`
	ReceiptURL        string  `json:"receipt_url"`
	IsReplacement     bool    `json:"is_replacement"`
	ReplacementReason string  `json:"replacement_reason"`
	OriginalExpenseID *int64  `json:"original_expense_id"`
	Notes             string  `json:"notes"`
}

type UpdateExpense struct {
	ItemName    string  `json:"item_name" validate:"omitempty,min=1,max=200"`
	Amount      float64 `json:"amount" validate:"omitempty,gt=0"`
	CategoryID  *int64  `json:"category_id"`
	ExpenseDate string  `json:"expense_date"`
	Notes       string  `json:"notes"`
}
