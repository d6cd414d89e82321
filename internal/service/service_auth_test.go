package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/signbridge/signbridge/internal/config"
	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/store"
	"github.com/signbridge/signbridge/internal/utils"
	"github.com/signbridge/signbridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	user.ID = 1
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	createSessionFn         func(ctx context.Context, session models.Session) (models.Session, error)
	deleteSessionsByTokenFn func(ctx context.Context, token string) error
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, session)
	}
	session.ID = 1
	return session, nil
}

func (m *mockSessionRepository) DeleteSessionsByToken(ctx context.Context, token string) error {
	if m.deleteSessionsByTokenFn != nil {
		return m.deleteSessionsByTokenFn(ctx, token)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "signbridge",
	TokenDuration: config.Duration(time.Hour),
}

func newTestAuthService(users *mockUserRepository, sessions *mockSessionRepository) AuthService {
	return NewAuthService(users, sessions, testAppConfig, logger.Nop())
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	var createdUser models.User
	var createdSession models.Session

	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			createdUser = user
			user.ID = 7
			return user, nil
		},
	}
	sessions := &mockSessionRepository{
		createSessionFn: func(_ context.Context, session models.Session) (models.Session, error) {
			createdSession = session
			session.ID = 1
			return session, nil
		},
	}
	svc := newTestAuthService(users, sessions)

	user, token, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "en", createdUser.PreferredLanguage)
	assert.NotEmpty(t, token.SignedString)

	// the stored hash must verify against the plain password and never equal it
	assert.NotEqual(t, "s3cret", createdUser.PasswordHash)
	assert.True(t, utils.VerifyPassword("s3cret", createdUser.PasswordHash))

	// the session row mirrors the issued token
	assert.Equal(t, int64(7), createdSession.UserID)
	assert.Equal(t, token.SignedString, createdSession.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), createdSession.ExpiresAt, 5*time.Second)
}

func TestAuthService_Register_KeepsRequestedLanguage(t *testing.T) {
	var createdUser models.User
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			createdUser = user
			user.ID = 7
			return user, nil
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	req := validRegisterRequest()
	req.PreferredLanguage = "uk"

	_, _, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "uk", createdUser.PreferredLanguage)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockSessionRepository{})

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{name: "no name", req: models.RegisterRequest{Email: "a@x.com", Password: "p"}},
		{name: "no email", req: models.RegisterRequest{Name: "A", Password: "p"}},
		{name: "no password", req: models.RegisterRequest{Name: "A", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_EmailAlreadyExists(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{ID: 3, Email: "alice@example.com"}, nil
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	_, _, err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// The unique constraint may fire even though the existence check passed;
// the duplicate sentinel must surface either way.
func TestAuthService_Register_UniqueViolationOnInsert(t *testing.T) {
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	_, _, err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_SessionCreationFails(t *testing.T) {
	sessions := &mockSessionRepository{
		createSessionFn: func(_ context.Context, _ models.Session) (models.Session, error) {
			return models.Session{}, errors.New("db is down")
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, sessions)

	_, _, err := svc.Register(context.Background(), validRegisterRequest())
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		ID:                5,
		Name:              "Alice",
		Email:             "alice@example.com",
		PasswordHash:      hash,
		PreferredLanguage: "en",
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	existing := storedUser(t, "s3cret")
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return existing, nil
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	user, token, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.NotEmpty(t, token.SignedString)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockSessionRepository{})

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// Unknown email and wrong password must be indistinguishable.
func TestAuthService_Login_UniformCredentialFailure(t *testing.T) {
	existing := storedUser(t, "right password")

	unknownEmail := &mockUserRepository{}
	wrongPassword := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return existing, nil
		},
	}

	for name, users := range map[string]*mockUserRepository{
		"unknown email":  unknownEmail,
		"wrong password": wrongPassword,
	} {
		t.Run(name, func(t *testing.T) {
			svc := newTestAuthService(users, &mockSessionRepository{})
			_, _, err := svc.Login(context.Background(), models.LoginRequest{
				Email:    "alice@example.com",
				Password: "wrong password",
			})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

// ─────────────────────────────────────────────
// Logout
// ─────────────────────────────────────────────

func TestAuthService_Logout_DeletesByToken(t *testing.T) {
	var deletedToken string
	sessions := &mockSessionRepository{
		deleteSessionsByTokenFn: func(_ context.Context, token string) error {
			deletedToken = token
			return nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, sessions)

	require.NoError(t, svc.Logout(context.Background(), "signed.jwt.token"))
	assert.Equal(t, "signed.jwt.token", deletedToken)
}

func TestAuthService_Logout_EmptyTokenIsNoOp(t *testing.T) {
	called := false
	sessions := &mockSessionRepository{
		deleteSessionsByTokenFn: func(_ context.Context, _ string) error {
			called = true
			return nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, sessions)

	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.False(t, called)
}

// ─────────────────────────────────────────────
// ParseToken
// ─────────────────────────────────────────────

func TestAuthService_ParseToken_Roundtrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockSessionRepository{})

	issued, err := utils.GenerateJWTToken("signbridge", 5, "alice@example.com", time.Hour, "test-sign-key")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.Claims.UserID)
	assert.Equal(t, "alice@example.com", parsed.Claims.Email)
}

// Every verification failure collapses into the same sentinel.
func TestAuthService_ParseToken_UniformFailure(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockSessionRepository{})

	expired, err := utils.GenerateJWTToken("signbridge", 5, "a@x.com", -time.Minute, "test-sign-key")
	require.NoError(t, err)
	forged, err := utils.GenerateJWTToken("signbridge", 5, "a@x.com", time.Hour, "another-key")
	require.NoError(t, err)

	for name, tokenString := range map[string]string{
		"expired":   expired.SignedString,
		"forged":    forged.SignedString,
		"malformed": "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tokenString)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

// Logout deletes the session row but verification is purely cryptographic,
// so the token keeps working until its natural expiry.
func TestAuthService_ParseToken_AcceptedAfterLogout(t *testing.T) {
	deletedTokens := make([]string, 0, 1)
	sessions := &mockSessionRepository{
		deleteSessionsByTokenFn: func(_ context.Context, token string) error {
			deletedTokens = append(deletedTokens, token)
			return nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, sessions)

	issued, err := utils.GenerateJWTToken("signbridge", 5, "alice@example.com", time.Hour, "test-sign-key")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), issued.SignedString))
	require.Equal(t, []string{issued.SignedString}, deletedTokens)

	parsed, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.Claims.UserID)
}

// ─────────────────────────────────────────────
// CurrentUser
// ─────────────────────────────────────────────

func TestAuthService_CurrentUser(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			if userID == 5 {
				return models.User{ID: 5, Email: "alice@example.com"}, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	user, err := svc.CurrentUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.CurrentUser(context.Background(), 6)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
