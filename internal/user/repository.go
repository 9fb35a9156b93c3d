package user

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrAlreadyVerified = errors.New("email already verified")
	// ErrInvalidOrExpiredToken deliberately merges unknown and expired
	// tokens so callers cannot tell which condition failed
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)

// ResetTokenTTL is how long a password reset token stays redeemable.
const ResetTokenTTL = time.Hour

// UpdateRequest names the fields Update may change. Nil fields are left
// untouched.
type UpdateRequest struct {
	Name  *string
	Email *string
	Image *string
}

// Repository is the in-memory credential store. It owns the user records,
// the unique email index, and the verification/reset token indexes, all
// guarded by a single lock so every operation is atomic with respect to
// concurrent callers.
type Repository struct {
	mu                 sync.RWMutex
	byID               map[uuid.UUID]*User
	byEmail            map[string]uuid.UUID
	verificationTokens map[string]uuid.UUID
	resetTokens        map[string]uuid.UUID

	now func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		byID:               make(map[uuid.UUID]*User),
		byEmail:            make(map[string]uuid.UUID),
		verificationTokens: make(map[string]uuid.UUID),
		resetTokens:        make(map[string]uuid.UUID),
		now:                time.Now,
	}
}

// Create stores a new unverified user. Exactly one of two concurrent
// creates for the same email wins; the other gets ErrDuplicateEmail.
func (r *Repository) Create(email, passwordHash, name, verificationToken string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, ErrDuplicateEmail
	}

	now := r.now()
	u := &User{
		ID:                uuid.New(),
		Email:             email,
		Name:              name,
		PasswordHash:      passwordHash,
		EmailVerified:     false,
		VerificationToken: &verificationToken,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	r.verificationTokens[verificationToken] = u.ID

	return copyUser(u), nil
}

// GetByEmail retrieves a user by email
func (r *Repository) GetByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(r.byID[id]), nil
}

// GetByID retrieves a user by ID
func (r *Repository) GetByID(id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(u), nil
}

// Update applies the non-nil fields of req. An email change repoints the
// unique email index in the same critical section, so a stale index entry
// can never be observed.
func (r *Repository) Update(id uuid.UUID, req UpdateRequest) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Email != nil && *req.Email != u.Email {
		if other, taken := r.byEmail[*req.Email]; taken && other != id {
			return nil, ErrDuplicateEmail
		}
		delete(r.byEmail, u.Email)
		r.byEmail[*req.Email] = id
		u.Email = *req.Email
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Image != nil {
		u.Image = req.Image
	}
	u.UpdatedAt = r.now()

	return copyUser(u), nil
}

// UpdatePassword swaps the stored password hash
func (r *Repository) UpdatePassword(id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = r.now()
	return nil
}

// SetVerificationToken issues a fresh verification token, invalidating any
// pending one. Only one verification token is outstanding per user.
func (r *Repository) SetVerificationToken(id uuid.UUID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if u.EmailVerified {
		return ErrAlreadyVerified
	}

	if u.VerificationToken != nil {
		delete(r.verificationTokens, *u.VerificationToken)
	}
	u.VerificationToken = &token
	u.UpdatedAt = r.now()
	r.verificationTokens[token] = id

	return nil
}

// ConsumeVerificationToken marks the owning user verified and clears the
// token in one atomic step, so a token can never be redeemed twice even
// under concurrent requests.
func (r *Repository) ConsumeVerificationToken(token string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.verificationTokens[token]
	if !ok {
		return nil, ErrInvalidOrExpiredToken
	}

	u := r.byID[id]
	u.EmailVerified = true
	u.VerificationToken = nil
	u.UpdatedAt = r.now()
	delete(r.verificationTokens, token)

	return copyUser(u), nil
}

// SetResetToken issues a password reset token expiring ResetTokenTTL from
// now, superseding any prior reset token for the user.
func (r *Repository) SetResetToken(id uuid.UUID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}

	if u.ResetToken != nil {
		delete(r.resetTokens, *u.ResetToken)
	}
	expiry := r.now().Add(ResetTokenTTL)
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	u.UpdatedAt = r.now()
	r.resetTokens[token] = id

	return nil
}

// ConsumeResetToken redeems a reset token: the token must match and the
// current time must be strictly before its expiry. On success the stored
// hash is replaced and the token cleared in the same critical section.
// On failure the pending token is left untouched.
func (r *Repository) ConsumeResetToken(token, newPasswordHash string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.resetTokens[token]
	if !ok {
		return nil, ErrInvalidOrExpiredToken
	}

	u := r.byID[id]
	if u.ResetTokenExpiry == nil || !r.now().Before(*u.ResetTokenExpiry) {
		return nil, ErrInvalidOrExpiredToken
	}

	u.PasswordHash = newPasswordHash
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
	u.UpdatedAt = r.now()
	delete(r.resetTokens, token)

	return copyUser(u), nil
}

// copyUser returns a detached copy so callers never share memory with the
// records behind the lock
func copyUser(u *User) *User {
	c := *u
	if u.VerificationToken != nil {
		t := *u.VerificationToken
		c.VerificationToken = &t
	}
	if u.ResetToken != nil {
		t := *u.ResetToken
		c.ResetToken = &t
	}
	if u.ResetTokenExpiry != nil {
		t := *u.ResetTokenExpiry
		c.ResetTokenExpiry = &t
	}
	if u.Image != nil {
		img := *u.Image
		c.Image = &img
	}
	return &c
}
