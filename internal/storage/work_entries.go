package storage

import "time"

const (
	EntryInProgress = "in-progress"
	EntryComplete   = "complete"
)

type EntityRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WorkEntry is one worker's attempt at one production stage for one
// unit of product. ActualQuantity stays nil until the entry is completed.
type WorkEntry struct {
	ID             int64      `json:"id"`
	EmployeeID     int64      `json:"employee_id"`
	WorkTypeID     int64      `json:"work_type_id"`
	ProductID      *int64     `json:"product_id"`
	UnitID         *int64     `json:"unit_id"`
	TargetQuantity int        `json:"target_quantity"`
	ActualQuantity *int       `json:"actual_quantity"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`

	Employee *EntityRef `json:"employee,omitempty"`
	WorkType *EntityRef `json:"work_type,omitempty"`
	Product  *EntityRef `json:"product,omitempty"`
	Unit     *EntityRef `json:"unit,omitempty"`
}

type SaveWorkEntry struct {
	EmployeeID     int64  `json:"employee_id" validate:"required,gt=0"`
	WorkTypeID     int64  `json:"work_type_id" validate:"required,gt=0"`
	ProductID      *int64 `json:"product_id"`
	UnitID         *int64 `json:"unit_id"`
	TargetQuantity int    `json:"target_quantity" validate:"required,gt=0"`
}

type CompleteWorkEntry struct {
	ActualQuantity int    `json:"actual_quantity" validate:"gte=0"`
	Notes          string `json:"notes"`
}

// UpdateWorkEntry is the free-form edit allowed while an entry is still
// in progress (or to flip status manually).
type UpdateWorkEntry struct {
	ActualQuantity *int   `json:"actual_quantity"`
	Notes          string `json:"notes"`
	Status         string `json:"status" validate:"omitempty,oneof=in-progress complete"`
}

// EntryFilter narrows work entry reads for the analytics snapshots.
type EntryFilter struct {
	Status    string
	StartFrom *time.Time
}
