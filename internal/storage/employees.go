package storage

import "time"

type Employee struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaveEmployee struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type UpdateEmployee struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Active bool   `json:"active"`
}
