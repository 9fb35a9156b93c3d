package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost 12 keeps hashing slow enough to resist offline brute force.
const bcryptCost = 12

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooWeak  = errors.New("password must contain uppercase, lowercase, number, and special character")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidName      = errors.New("name must be 2-50 characters of letters and spaces")
)

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
// bcrypt's comparison is constant-time over the derived key.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the signup password policy: at least 8
// characters with one uppercase, one lowercase, one digit, and one
// special character.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return ErrPasswordTooWeak
	}
	return nil
}

// ValidateName enforces the signup name rules: 2-50 characters, letters
// and spaces only.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	runes := []rune(name)
	if len(runes) < 2 || len(runes) > 50 {
		return ErrInvalidName
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && r != ' ' {
			return ErrInvalidName
		}
	}
	return nil
}

// generateToken creates a cryptographically secure random token:
// 32 bytes (256 bits) hex-encoded.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
