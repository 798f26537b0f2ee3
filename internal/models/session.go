package models

import (
	"time"

	"github.com/google/uuid"
)

// Session holds per-login state: who is signed in and the columns
// collected by the table builder before the table is created.
type Session struct {
	ID          uuid.UUID    `json:"id"`
	Username    string       `json:"username"`
	DisplayName string       `json:"display_name"`
	Columns     []ColumnSpec `json:"columns"`
	CreatedAt   time.Time    `json:"created_at"`
}
