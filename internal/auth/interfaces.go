package auth

import (
	"time"

	"github.com/google/uuid"
)

// TokenService mints and verifies session tokens. PasetoService (PASETO
// v4.local) is the default implementation.
type TokenService interface {
	CreateToken(userID uuid.UUID, email string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*SessionClaims, error)
}
