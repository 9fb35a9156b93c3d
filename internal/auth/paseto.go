package auth

import (
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// sessionKeyLen is the v4.local symmetric key size.
const sessionKeyLen = 32

// SessionClaims are the facts a dashboard session token carries. The user
// ID travels as a string claim and is parsed back to a UUID by the auth
// middleware.
type SessionClaims struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// PasetoService mints and verifies dashboard session tokens as PASETO
// v4.local (symmetric XChaCha20-Poly1305). Sessions are stateless: the
// token is the only session record, which is why logout is just a cookie
// clear.
type PasetoService struct {
	key paseto.V4SymmetricKey
}

func NewPasetoService(symmetricKey []byte) (*PasetoService, error) {
	if len(symmetricKey) != sessionKeyLen {
		return nil, fmt.Errorf("session key must be exactly %d bytes, got %d", sessionKeyLen, len(symmetricKey))
	}

	key, err := paseto.V4SymmetricKeyFromBytes(symmetricKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric key: %w", err)
	}

	return &PasetoService{key: key}, nil
}

// CreateToken mints a session token for the user, valid for duration.
func (s *PasetoService) CreateToken(userID uuid.UUID, email string, duration time.Duration) (string, error) {
	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(duration))
	token.SetString("user_id", userID.String())
	token.SetString("email", email)

	return token.V4Encrypt(s.key, nil), nil
}

// VerifyToken decrypts and validates a session token. Expiry violations
// surface as ErrExpiredToken; everything else (wrong key, garbage input,
// missing claims) collapses to ErrInvalidToken.
func (s *PasetoService) VerifyToken(tokenStr string) (*SessionClaims, error) {
	parsed, err := paseto.NewParser().ParseV4Local(s.key, tokenStr, nil)
	if err != nil {
		// The parser's default rules check expiry; a rule violation on an
		// otherwise well-formed token means it expired.
		if errors.Is(err, &paseto.RuleError{}) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, err := sessionClaimsFromToken(parsed)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func sessionClaimsFromToken(t *paseto.Token) (*SessionClaims, error) {
	userID, err := t.GetString("user_id")
	if err != nil {
		return nil, err
	}
	email, err := t.GetString("email")
	if err != nil {
		return nil, err
	}
	issuedAt, err := t.GetIssuedAt()
	if err != nil {
		return nil, err
	}
	expiresAt, err := t.GetExpiration()
	if err != nil {
		return nil, err
	}

	return &SessionClaims{
		UserID:    userID,
		Email:     email,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
