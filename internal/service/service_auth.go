package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/signbridge/signbridge/internal/config"
	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/store"
	"github.com/signbridge/signbridge/internal/utils"
	"github.com/signbridge/signbridge/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, JWT token
// lifecycle, and session bookkeeping using a UserRepository and a
// SessionRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository records one row per issued token. Sessions are
	// written at registration and login and deleted at logout; they are
	// not consulted during token verification.
	sessionRepository store.SessionRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration.Std(),
		logger:            logger,
	}
}

// Register creates a new user account and opens its first session.
//
// It validates that Name, Email and Password are non-empty, rejects emails
// that already have an account, hashes the password with bcrypt, persists
// the user, issues a signed token and records the session.
//
// The explicit existence check is not atomic with the insert: two
// concurrent registrations can both pass it, in which case the unique
// constraint on users.email decides and the loser still receives
// [store.ErrEmailAlreadyExists]. The check leaking account existence
// through the response is an accepted tradeoff for this class of app.
//
// Returns the persisted user and a fresh token, or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage or signing error otherwise.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, req.Email); err == nil {
		log.Warn().Str("email", req.Email).Msg("registration attempt for existing email")
		return models.User{}, models.Token{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user existence check failed")
		return models.User{}, models.Token{}, fmt.Errorf("user existence check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	preferredLanguage := req.PreferredLanguage
	if preferredLanguage == "" {
		preferredLanguage = "en"
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      passwordHash,
		PreferredLanguage: preferredLanguage,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.openSession(ctx, registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("email", registeredUser.Email).Msg("user registered")

	return registeredUser, token, nil
}

// Login authenticates an existing user and opens a new session.
//
// It validates that Email and Password are non-empty, looks up the account,
// and verifies the password against the stored bcrypt hash. An unknown email
// and a wrong password both yield ErrInvalidCredentials so that the response
// cannot be used to enumerate accounts.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.openSession(ctx, foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("email", foundUser.Email).Msg("user logged in")

	return foundUser, token, nil
}

// Logout removes the session row(s) matching the token. Deleting an unknown
// token is a no-op: logout is idempotent and always succeeds from the
// caller's point of view. The token itself remains cryptographically valid
// until its natural expiry; verification does not re-check the session
// store.
func (a *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return a.sessionRepository.DeleteSessionsByToken(ctx, token)
}

// CurrentUser loads the account record for an authenticated user ID.
// Returns store.ErrNoUserWasFound when the row no longer exists.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, userID)
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Any validation failure (expired, forged,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors, and cannot tell the causes
// apart.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// openSession issues a signed JWT for the user and records the matching
// session row. The session's expiry equals the token's exp claim.
func (a *authService) openSession(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if _, err := a.sessionRepository.CreateSession(ctx, models.Session{
		UserID:    user.ID,
		Token:     token.SignedString,
		ExpiresAt: token.Claims.ExpiresAt.Time,
	}); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("session creation failed")
		return models.Token{}, fmt.Errorf("session creation failed: %w", err)
	}

	return token, nil
}
