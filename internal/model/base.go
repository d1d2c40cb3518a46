package model

import (
	"time"
)

// Base contains common fields for all models
type Base struct {
	ID        string    `json:"id" db:"id" bson:"_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" bson:"updated_at"`
}

// Touch stamps UpdatedAt, and CreatedAt when it is still zero.
func (b *Base) Touch(now time.Time) {
	now = now.UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
