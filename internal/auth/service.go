package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/redmonkez12/pizza-dashboard/internal/logging"
	"github.com/redmonkez12/pizza-dashboard/internal/ratelimit"
	"github.com/redmonkez12/pizza-dashboard/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrEmailNotVerified   = errors.New("email not verified, please check your inbox")
	ErrTooManyAttempts    = errors.New("too many login attempts, please try again later")
)

// EmailSender defines the interface for outbound email
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, toEmail, token string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, token string) error
}

// AuthTokens is the session material returned on successful login
type AuthTokens struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Service handles authentication business logic
type Service struct {
	users               *user.Repository
	limiter             *ratelimit.Limiter
	tokenService        TokenService
	emailSender         EmailSender
	logger              *logging.Logger
	accessTokenDuration time.Duration
}

func NewService(
	users *user.Repository,
	limiter *ratelimit.Limiter,
	tokenService TokenService,
	emailSender EmailSender,
	logger *logging.Logger,
	accessTokenDuration time.Duration,
) *Service {
	return &Service{
		users:               users,
		limiter:             limiter,
		tokenService:        tokenService,
		emailSender:         emailSender,
		logger:              logger,
		accessTokenDuration: accessTokenDuration,
	}
}

// Register creates a new unverified user account and sends the
// verification email
func (s *Service) Register(ctx context.Context, email, password, name string) (*user.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(email) > 254 {
		return nil, ErrInvalidEmailFormat
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmailFormat
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	verificationToken, err := generateToken()
	if err != nil {
		return nil, err
	}

	newUser, err := s.users.Create(email, passwordHash, name, verificationToken)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Send verification email in a goroutine (non-blocking). The user can
	// request a resend if delivery fails.
	go func() {
		emailCtx := context.Background()
		if err := s.emailSender.SendVerificationEmail(emailCtx, email, verificationToken); err != nil {
			s.logger.Warn("failed to send verification email", "email", email, "error", err)
		}
	}()

	return newUser, nil
}

// VerifyPassword checks the supplied credentials against the stored hash.
// The rate limiter is consulted before the hash is touched so a locked-out
// caller cannot use the comparison step as a timing oracle. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) VerifyPassword(ctx context.Context, email, password string) (*user.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if err := s.limiter.CheckAllowed(email); err != nil {
		return nil, ErrTooManyAttempts
	}

	existingUser, err := s.users.GetByEmail(email)
	if err != nil {
		s.limiter.RecordFailure(email)
		return nil, ErrInvalidCredentials
	}

	if !CheckPassword(existingUser.PasswordHash, password) {
		s.limiter.RecordFailure(email)
		return nil, ErrInvalidCredentials
	}

	s.limiter.RecordSuccess(email)
	return existingUser, nil
}

// Login authenticates a user and mints a session token. The email must be
// verified before a session is issued.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthTokens, error) {
	existingUser, err := s.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if !existingUser.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	accessToken, err := s.tokenService.CreateToken(existingUser.ID, existingUser.Email, s.accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &AuthTokens{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTokenDuration.Seconds()),
	}, nil
}

// VerifyEmail redeems a verification token and marks the owning account
// verified. The token is single-use.
func (s *Service) VerifyEmail(ctx context.Context, token string) (*user.User, error) {
	verified, err := s.users.ConsumeVerificationToken(token)
	if err != nil {
		return nil, user.ErrInvalidOrExpiredToken
	}
	return verified, nil
}

// RequestPasswordReset issues a reset token and mails the reset link.
// Always returns nil so callers cannot probe which emails are registered.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	existingUser, err := s.users.GetByEmail(email)
	if err != nil {
		// Don't reveal if user exists
		return nil
	}

	token, err := generateToken()
	if err != nil {
		s.logger.Warn("failed to generate password reset token", "error", err)
		return nil
	}

	if err := s.users.SetResetToken(existingUser.ID, token); err != nil {
		s.logger.Warn("failed to store password reset token", "error", err)
		return nil
	}

	go func() {
		emailCtx := context.Background()
		if err := s.emailSender.SendPasswordResetEmail(emailCtx, email, token); err != nil {
			s.logger.Warn("failed to send password reset email", "email", email, "error", err)
		}
	}()

	return nil
}

// ResetPassword redeems a reset token and replaces the account password.
// Invalid and expired tokens produce the same failure.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	// Hash before taking the store's lock; an invalid token just wastes
	// the work.
	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	if _, err := s.users.ConsumeResetToken(token, passwordHash); err != nil {
		return user.ErrInvalidOrExpiredToken
	}

	return nil
}

// ResendVerificationEmail issues a fresh verification token, invalidating
// any pending one, and mails it. Always returns nil to prevent email
// enumeration; already-verified accounts are silently skipped.
func (s *Service) ResendVerificationEmail(ctx context.Context, email string) error {
	existingUser, err := s.users.GetByEmail(email)
	if err != nil {
		// Don't reveal if user exists
		return nil
	}

	if existingUser.EmailVerified {
		// Don't reveal that email is already verified
		return nil
	}

	token, err := generateToken()
	if err != nil {
		s.logger.Warn("failed to generate verification token", "error", err)
		return nil
	}

	if err := s.users.SetVerificationToken(existingUser.ID, token); err != nil {
		s.logger.Warn("failed to update verification token", "error", err)
		return nil
	}

	go func() {
		emailCtx := context.Background()
		if err := s.emailSender.SendVerificationEmail(emailCtx, email, token); err != nil {
			s.logger.Warn("failed to resend verification email", "email", email, "error", err)
		}
	}()

	return nil
}
