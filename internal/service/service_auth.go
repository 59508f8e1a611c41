package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher computes and verifies one-way password hashes. Account
	// passwords are never stored or compared in plaintext.
	hasher crypto.PasswordHasher

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

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The email is probed first so the common duplicate case gets a clean
// conflict without touching the unique index; a concurrent registration that
// slips between the probe and the insert still surfaces as the same conflict
// via the database constraint.
//
// Returns nil on success or:
//   - [ErrEmailAlreadyInUse] if an account with that email exists.
//   - A wrapped storage or hashing error for anything else.
func (a *authService) Register(ctx context.Context, email, rawPassword string) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		log.Info().Str("email", email).Msg("registration rejected: email already in use")
		return ErrEmailAlreadyInUse
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	hashedPassword, err := a.hasher.Hash(rawPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{Email: email, Password: hashedPassword})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return ErrEmailAlreadyInUse
		}
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	return nil
}

// Login authenticates an existing user and issues a signed JWT.
//
// Both failure causes — unknown email and wrong password — collapse into the
// single [ErrIncorrectCredentials] value so responses are indistinguishable.
func (a *authService) Login(ctx context.Context, email, rawPassword string) (models.Token, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrIncorrectCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Compare(foundUser.Password, rawPassword) {
		log.Info().Int64("id", foundUser.UserID).Msg("login rejected: wrong password")
		return models.Token{}, ErrIncorrectCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}

// ParseToken verifies the signature, issuer and expiry of a bearer token and
// returns it with the embedded user id. Any verification failure maps to
// [ErrInvalidToken].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
