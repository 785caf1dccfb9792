package entity

import (
	"time"
)

// Base holds columns shared by every table. IDs are bigserial,
// assigned by the database on insert.
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
