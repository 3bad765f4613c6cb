package entity

import (
	"github.com/google/uuid"
)

// Tweet carries the author's email/username denormalized, same pattern
// as the reservation snapshot fields.
type Tweet struct {
	BaseSimple
	UserID       uuid.UUID `db:"user_id"`
	UserEmail    string    `db:"user_email"`
	UserUsername string    `db:"user_username"`
	Content      string    `db:"content"`
}
