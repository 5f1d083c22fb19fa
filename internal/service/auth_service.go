package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
	"github.com/spec-kit/account-service/internal/validation"
)

const bearerPrefix = "Bearer "

var credentialFields = []string{"username", "password"}

// ProfileCache is a read-through cache for public profiles. Get returns (nil, nil) on a miss.
type ProfileCache interface {
	Get(ctx context.Context, userID int64) (*domain.Profile, error)
	Set(ctx context.Context, profile domain.Profile) error
}

// AuthService coordinates registration, login and access gating.
type AuthService struct {
	users             repository.UserRepository
	hasher            *auth.PasswordHasher
	tokenMgr          *auth.TokenManager
	profiles          ProfileCache
	events            events.Dispatcher
	logger            *zap.Logger
	minPasswordLength int
	dummyHash         []byte
	now               func() time.Time
}

// AuthDependencies encapsulates collaborators for the auth service.
// ProfileCache and Dispatcher are optional; TokenManager defaults to one built from config.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	ProfileCache ProfileCache
	Dispatcher   events.Dispatcher
	TokenManager *auth.TokenManager
	Logger       *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	tokenMgr := deps.TokenManager
	if tokenMgr == nil {
		tokenMgr = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &AuthService{
		users:             deps.UserRepo,
		hasher:            auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		tokenMgr:          tokenMgr,
		profiles:          deps.ProfileCache,
		events:            deps.Dispatcher,
		logger:            logger.Named("auth_service"),
		minPasswordLength: cfg.Auth.MinPasswordLength,
		now:               time.Now,
	}
	if s.minPasswordLength <= 0 {
		s.minPasswordLength = 8
	}

	// Unknown usernames skip bcrypt unless equalization is enabled, which makes
	// them measurably faster to reject than wrong passwords.
	if cfg.Auth.EqualizeLoginTiming {
		hash, err := s.hasher.Hash("timing-equalization-placeholder")
		if err != nil {
			s.logger.Warn("login timing equalization disabled", zap.Error(err))
		}
		s.dummyHash = hash
	}
	return s
}

// Register creates a new account. No token is issued.
func (s *AuthService) Register(ctx context.Context, payload validation.Payload) (*domain.User, error) {
	fields, err := validation.Validate(payload, credentialFields...)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(fields["username"])
	if username == "" {
		return nil, &validation.Error{Reason: validation.ReasonMissingField, Field: "username"}
	}
	password := fields["password"]
	if utf8.RuneCountInString(password) < s.minPasswordLength {
		return nil, &domain.WeakPasswordError{MinLength: s.minPasswordLength}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, domain.ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	s.publish(ctx, events.NewEvent(events.EventUserRegistered, events.UserRegisteredPayload{
		UserID:   user.ID,
		Username: user.Username,
	}))
	return user, nil
}

// Login authenticates a user and issues a bearer token bound to its id.
// Unknown usernames and wrong passwords yield the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, payload validation.Payload) (*domain.Session, error) {
	fields, err := validation.Validate(payload, credentialFields...)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(fields["username"])
	password := fields["password"]

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
		}
		if s.dummyHash != nil {
			s.hasher.Verify(password, s.dummyHash)
		}
		s.publish(ctx, events.NewEvent(events.EventLoginFailed, events.LoginFailedPayload{
			Username:    username,
			UnknownUser: true,
		}))
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.publish(ctx, events.NewEvent(events.EventLoginFailed, events.LoginFailedPayload{Username: username}))
		return nil, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.publish(ctx, events.NewEvent(events.EventLoginSucceeded, events.LoginSucceededPayload{
		UserID:   user.ID,
		Username: user.Username,
	}))
	return &domain.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: exp,
	}, nil
}

// Authorize resolves a raw Authorization header value to a user id.
// The "Bearer " prefix is optional.
func (s *AuthService) Authorize(ctx context.Context, header string) (int64, error) {
	if header == "" {
		s.rejectToken(ctx, "missing")
		return 0, domain.ErrTokenMissing
	}

	userID, err := s.tokenMgr.Verify(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			s.rejectToken(ctx, "expired")
			return 0, domain.ErrTokenExpired
		}
		s.rejectToken(ctx, "malformed")
		return 0, domain.ErrTokenInvalid
	}
	return userID, nil
}

// Profile returns the public profile of userID, consulting the cache first.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.Profile, error) {
	if s.profiles != nil {
		cached, err := s.profiles.Get(ctx, userID)
		if err != nil {
			s.logger.Warn("profile cache read failed", zap.Int64("user_id", userID), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	profile := user.Profile()
	if s.profiles != nil {
		if err := s.profiles.Set(ctx, profile); err != nil {
			s.logger.Warn("profile cache write failed", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	return &profile, nil
}

// ListUsers returns every account's public profile.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.Profile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}
	return users, nil
}

func (s *AuthService) rejectToken(ctx context.Context, reason string) {
	s.publish(ctx, events.NewEvent(events.EventTokenRejected, events.TokenRejectedPayload{Reason: reason}))
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
