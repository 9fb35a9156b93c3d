package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/pizza-dashboard/internal/logging"
	"github.com/redmonkez12/pizza-dashboard/internal/ratelimit"
	"github.com/redmonkez12/pizza-dashboard/internal/user"
)

// noopSender satisfies EmailSender without sending anything
type noopSender struct{}

func (noopSender) SendVerificationEmail(ctx context.Context, toEmail, token string) error {
	return nil
}

func (noopSender) SendPasswordResetEmail(ctx context.Context, toEmail, token string) error {
	return nil
}

func newTestService(t *testing.T, lockout time.Duration) (*Service, *user.Repository) {
	t.Helper()

	users := user.NewRepository()
	limiter := ratelimit.NewLimiter(5, lockout)

	pasetoService, err := NewPasetoService([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	svc := NewService(users, limiter, pasetoService, noopSender{}, logging.NewLogger(true), 15*time.Minute)
	return svc, users
}

func registerVerified(t *testing.T, svc *Service, email, password, name string) *user.User {
	t.Helper()

	u, err := svc.Register(context.Background(), email, password, name)
	require.NoError(t, err)
	require.NotNil(t, u.VerificationToken)

	verified, err := svc.VerifyEmail(context.Background(), *u.VerificationToken)
	require.NoError(t, err)
	return verified
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t, 15*time.Minute)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
		userName string
		wantErr  error
	}{
		{"missing email", "", "Secret123!", "Demo User", ErrEmailRequired},
		{"bad email", "not-an-email", "Secret123!", "Demo User", ErrInvalidEmailFormat},
		{"missing name", "a@x.com", "Secret123!", "", ErrNameRequired},
		{"bad name", "a@x.com", "Secret123!", "X1", ErrInvalidName},
		{"missing password", "a@x.com", "", "Demo User", ErrPasswordRequired},
		{"weak password", "a@x.com", "password", "Demo User", ErrPasswordTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.email, tc.password, tc.userName)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t, 15*time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "Secret123!", "First User")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@x.com", "Other999?", "Second User")
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestSignupVerificationRoundTrip(t *testing.T) {
	svc, users := newTestService(t, 15*time.Minute)
	ctx := context.Background()

	created, err := svc.Register(ctx, "a@x.com", "Secret123!", "Demo User")
	require.NoError(t, err)
	assert.False(t, created.EmailVerified)
	require.NotNil(t, created.VerificationToken)
	token := *created.VerificationToken

	verified, err := svc.VerifyEmail(ctx, token)
	require.NoError(t, err)
	assert.True(t, verified.EmailVerified)
	assert.Nil(t, verified.VerificationToken)

	// No residual token in the store either
	stored, err := users.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, stored.EmailVerified)
	assert.Nil(t, stored.VerificationToken)

	// Second consumption must fail
	_, err = svc.VerifyEmail(ctx, token)
	assert.ErrorIs(t, err, user.ErrInvalidOrExpiredToken)
}

func TestLoginRequiresVerifiedEmail(t *testing.T) {
	svc, _ := newTestService(t, 15*time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "Secret123!", "Demo User")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@x.com", "Secret123!")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newTestService(t, 15*time.Minute)
	registerVerified(t, svc, "a@x.com", "Secret123!", "Demo User")

	tokens, err := svc.Login(context.Background(), "a@x.com", "Secret123!")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), tokens.ExpiresIn)
}

func TestVerifyPasswordDoesNotLeakUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t, 15*time.Minute)
	registerVerified(t, svc, "a@x.com", "Secret123!", "Demo User")
	ctx := context.Background()

	_, errUnknown := svc.VerifyPassword(ctx, "nobody@x.com", "Secret123!")
	_, errWrongPw := svc.VerifyPassword(ctx, "a@x.com", "WrongPass1!")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	const lockout = 150 * time.Millisecond
	svc, _ := newTestService(t, lockout)
	registerVerified(t, svc, "a@x.com", "Secret123!", "Demo User")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.VerifyPassword(ctx, "a@x.com", "WrongPass1!")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// Locked out even with the correct password
	_, err := svc.VerifyPassword(ctx, "a@x.com", "Secret123!")
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// After the lockout window the correct password works again
	time.Sleep(lockout + 50*time.Millisecond)
	u, err := svc.VerifyPassword(ctx, "a@x.com", "Secret123!")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
}

func TestSuccessfulLoginResetsFailureCount(t *testing.T) {
	svc, _ := newTestService(t, 15*time.Minute)
	registerVerified(t, svc, "a@x.com", "Secret123!", "Demo User")
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := svc.VerifyPassword(ctx, "a@x.com", "WrongPass1!")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := svc.VerifyPassword(ctx, "a@x.com", "Secret123!")
	require.NoError(t, err)

	// The counter restarted, so a further failure does not lock
	_, err = svc.VerifyPassword(ctx, "a@x.com", "WrongPass1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.VerifyPassword(ctx, "a@x.com", "Secret123!")
	assert.NoError(t, err)
}

func TestPasswordResetScenario(t *testing.T) {
	svc, users := newTestService(t, 15*time.Minute)
	registerVerified(t, svc, "a@x.com", "Secret123!", "A")
	ctx := context.Background()

	require.NoError(t, svc.RequestPasswordReset(ctx, "a@x.com"))

	stored, err := users.GetByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored.ResetToken)
	require.NotNil(t, stored.ResetTokenExpiry)
	resetToken := *stored.ResetToken

	// Wrong token fails and leaves the real one usable
	err = svc.ResetPassword(ctx, "wrong-token", "NewSecret456!")
	assert.ErrorIs(t, err, user.ErrInvalidOrExpiredToken)

	// Correct token rotates the password
	require.NoError(t, svc.ResetPassword(ctx, resetToken, "NewSecret456!"))

	// Old password is dead, new one works
	_, err = svc.VerifyPassword(ctx, "a@x.com", "Secret123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	u, err := svc.VerifyPassword(ctx, "a@x.com", "NewSecret456!")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	// Token is single-use
	err = svc.ResetPassword(ctx, resetToken, "ThirdPass789!")
	assert.ErrorIs(t, err, user.ErrInvalidOrExpiredToken)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t, 15*time.Minute)

	// Never leaks whether the account exists
	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "nobody@x.com"))
}

func TestResetPasswordEnforcesPolicy(t *testing.T) {
	svc, users := newTestService(t, 15*time.Minute)
	registerVerified(t, svc, "a@x.com", "Secret123!", "Demo User")
	ctx := context.Background()

	require.NoError(t, svc.RequestPasswordReset(ctx, "a@x.com"))
	stored, err := users.GetByEmail("a@x.com")
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, *stored.ResetToken, "weak")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	// The policy failure must not have consumed the token
	assert.NoError(t, svc.ResetPassword(ctx, *stored.ResetToken, "NewSecret456!"))
}

func TestResendVerificationRotatesToken(t *testing.T) {
	svc, users := newTestService(t, 15*time.Minute)
	ctx := context.Background()

	created, err := svc.Register(ctx, "a@x.com", "Secret123!", "Demo User")
	require.NoError(t, err)
	oldToken := *created.VerificationToken

	require.NoError(t, svc.ResendVerificationEmail(ctx, "a@x.com"))

	stored, err := users.GetByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored.VerificationToken)
	newToken := *stored.VerificationToken
	assert.NotEqual(t, oldToken, newToken)

	// Old token was invalidated by the reissue
	_, err = svc.VerifyEmail(ctx, oldToken)
	assert.ErrorIs(t, err, user.ErrInvalidOrExpiredToken)

	_, err = svc.VerifyEmail(ctx, newToken)
	assert.NoError(t, err)
}

func TestResendVerificationForVerifiedUser(t *testing.T) {
	svc, users := newTestService(t, 15*time.Minute)
	u := registerVerified(t, svc, "a@x.com", "Secret123!", "Demo User")

	// Silently succeeds without issuing a token
	require.NoError(t, svc.ResendVerificationEmail(context.Background(), "a@x.com"))

	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.VerificationToken)
}
