package user

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, r *Repository, email string) *User {
	t.Helper()
	u, err := r.Create(email, "hashed-secret", "Test User", "verify-"+email)
	require.NoError(t, err)
	return u
}

func TestCreateAndLookup(t *testing.T) {
	r := NewRepository()

	u := newTestUser(t, r, "a@x.com")
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.EmailVerified)
	require.NotNil(t, u.VerificationToken)

	byEmail, err := r.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := r.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = r.GetByEmail("missing@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDuplicateEmail(t *testing.T) {
	r := NewRepository()
	newTestUser(t, r, "a@x.com")

	_, err := r.Create("a@x.com", "other-hash", "Other", "other-token")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateConcurrentDuplicates(t *testing.T) {
	r := NewRepository()

	const racers = 32
	var wg sync.WaitGroup
	errs := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Create("race@x.com", "hash", "Racer", uuid.NewString())
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var wins, losses int
	for err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateEmail)
			losses++
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent create must win")
	assert.Equal(t, racers-1, losses)
}

func TestUpdateRepointsEmailIndex(t *testing.T) {
	r := NewRepository()
	u := newTestUser(t, r, "old@x.com")

	newEmail := "new@x.com"
	updated, err := r.Update(u.ID, UpdateRequest{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", updated.Email)

	// Old key must be gone, new key must resolve
	_, err = r.GetByEmail("old@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := r.GetByEmail("new@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
}

func TestUpdateRejectsTakenEmail(t *testing.T) {
	r := NewRepository()
	newTestUser(t, r, "a@x.com")
	b := newTestUser(t, r, "b@x.com")

	taken := "a@x.com"
	_, err := r.Update(b.ID, UpdateRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// b must still be reachable under its original email
	found, err := r.GetByEmail("b@x.com")
	require.NoError(t, err)
	assert.Equal(t, b.ID, found.ID)
}

func TestConsumeVerificationTokenOnce(t *testing.T) {
	r := NewRepository()
	u := newTestUser(t, r, "a@x.com")
	token := *u.VerificationToken

	verified, err := r.ConsumeVerificationToken(token)
	require.NoError(t, err)
	assert.True(t, verified.EmailVerified)
	assert.Nil(t, verified.VerificationToken)

	// Replay must fail
	_, err = r.ConsumeVerificationToken(token)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestConsumeVerificationTokenConcurrent(t *testing.T) {
	r := NewRepository()
	u := newTestUser(t, r, "a@x.com")
	token := *u.VerificationToken

	const racers = 16
	var wg sync.WaitGroup
	errs := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.ConsumeVerificationToken(token)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins int
	for err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
		}
	}
	assert.Equal(t, 1, wins, "a token must not be consumed twice")
}

func TestReissueInvalidatesOldVerificationToken(t *testing.T) {
	r := NewRepository()
	u := newTestUser(t, r, "a@x.com")
	oldToken := *u.VerificationToken

	require.NoError(t, r.SetVerificationToken(u.ID, "fresh-token"))

	_, err := r.ConsumeVerificationToken(oldToken)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	verified, err := r.ConsumeVerificationToken("fresh-token")
	require.NoError(t, err)
	assert.True(t, verified.EmailVerified)
}

func TestSetVerificationTokenOnVerifiedUser(t *testing.T) {
	r := NewRepository()
	u := newTestUser(t, r, "a@x.com")

	_, err := r.ConsumeVerificationToken(*u.VerificationToken)
	require.NoError(t, err)

	err = r.SetVerificationToken(u.ID, "pointless")
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestResetTokenExpiryBoundary(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		wantOK  bool
	}{
		{"just inside the window", 3599 * time.Second, true},
		{"exactly at expiry", 3600 * time.Second, false},
		{"just past the window", 3601 * time.Second, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRepository()
			clock := issued
			r.now = func() time.Time { return clock }

			u := newTestUser(t, r, "a@x.com")
			require.NoError(t, r.SetResetToken(u.ID, "reset-token"))

			clock = issued.Add(tc.elapsed)
			updated, err := r.ConsumeResetToken("reset-token", "new-hash")
			if tc.wantOK {
				require.NoError(t, err)
				assert.Equal(t, "new-hash", updated.PasswordHash)
				assert.Nil(t, updated.ResetToken)
				assert.Nil(t, updated.ResetTokenExpiry)
			} else {
				assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
			}
		})
	}
}

func TestConsumeResetTokenOnce(t *testing.T) {
	r := NewRepository()
	u := newTestUser(t, r, "a@x.com")
	require.NoError(t, r.SetResetToken(u.ID, "reset-token"))

	_, err := r.ConsumeResetToken("reset-token", "hash-1")
	require.NoError(t, err)

	_, err = r.ConsumeResetToken("reset-token", "hash-2")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	// First consumption's hash must have stuck
	got, err := r.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash-1", got.PasswordHash)
}

func TestFailedResetConsumeLeavesTokenUsable(t *testing.T) {
	r := NewRepository()
	u := newTestUser(t, r, "a@x.com")
	require.NoError(t, r.SetResetToken(u.ID, "right-token"))

	_, err := r.ConsumeResetToken("wrong-token", "hash")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	// The pending token survives a failed attempt
	_, err = r.ConsumeResetToken("right-token", "hash")
	assert.NoError(t, err)
}

func TestReissueSupersedesResetToken(t *testing.T) {
	r := NewRepository()
	u := newTestUser(t, r, "a@x.com")

	require.NoError(t, r.SetResetToken(u.ID, "first"))
	require.NoError(t, r.SetResetToken(u.ID, "second"))

	_, err := r.ConsumeResetToken("first", "hash")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	_, err = r.ConsumeResetToken("second", "hash")
	assert.NoError(t, err)
}

func TestReturnedUsersAreDetached(t *testing.T) {
	r := NewRepository()
	u := newTestUser(t, r, "a@x.com")

	u.Email = "mutated@x.com"
	u.PasswordHash = "mutated"

	stored, err := r.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.Equal(t, "hashed-secret", stored.PasswordHash)
}
