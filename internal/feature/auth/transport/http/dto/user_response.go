package dto

import "time"

// UserRes represents the public view of a user record. The password hash is
// never serialized.
type UserRes struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
