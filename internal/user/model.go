package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"-"` // Never expose password hash in JSON
	EmailVerified bool      `json:"email_verified"`
	// VerificationToken is set while the address is unverified and cleared
	// exactly once when consumed
	VerificationToken *string `json:"-"`
	// ResetToken and ResetTokenExpiry are set together by a reset request
	// and cleared together on consumption or supersession
	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	Image            *string    `json:"image,omitempty"` // OAuth avatar URL
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
