package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

const dbTimeout = 1 * time.Second

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrStorageFailure     = errors.New("storage failure")
)

// UserRepository defines the account storage the auth service consumes.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
}

// Session is the token pair handed to a signed-in client.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Service implements email/password sign-in and sign-up over the users
// table, issuing HS256 JWT sessions.
type Service struct {
	users    UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewService builds the auth service. A nil users repository is allowed;
// sign-in and sign-up then fail with ErrStorageFailure while token
// validation keeps working.
func NewService(users UserRepository, secret string, tokenTTL time.Duration, logger *zap.Logger) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// SignIn verifies the credentials and returns the account with a fresh
// session. Unknown email and wrong password are deliberately
// indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (models.User, Session, error) {
	if s.users == nil {
		return models.User{}, Session{}, fmt.Errorf("%w: users store not configured", ErrStorageFailure)
	}
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	user, err := s.users.GetByEmail(dbCtx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, Session{}, ErrInvalidCredentials
		}
		return models.User{}, Session{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, Session{}, ErrInvalidCredentials
	}
	if user.EmailConfirmedAt == "" {
		return models.User{}, Session{}, ErrEmailNotConfirmed
	}

	session, err := s.issueSession(user)
	if err != nil {
		return models.User{}, Session{}, err
	}

	s.logger.Info("user signed in", zap.String("email", email))
	return user, session, nil
}

// SignUp creates a confirmed account and signs it in.
func (s *Service) SignUp(ctx context.Context, email, password string) (models.User, Session, error) {
	if s.users == nil {
		return models.User{}, Session{}, fmt.Errorf("%w: users store not configured", ErrStorageFailure)
	}
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := s.users.GetByEmail(dbCtx, email); err == nil {
		return models.User{}, Session{}, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, Session{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, Session{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(dbCtx, models.User{
		Email:            email,
		PasswordHash:     string(hash),
		EmailConfirmedAt: s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return models.User{}, Session{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	session, err := s.issueSession(user)
	if err != nil {
		return models.User{}, Session{}, err
	}

	s.logger.Info("user registered", zap.String("email", email))
	return user, session, nil
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *Service) issueSession(user models.User) (Session, error) {
	expiresAt := s.now().Add(s.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}
	return Session{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}

// ParseToken validates a session token and returns the user id and email.
func (s *Service) ParseToken(tokenString string) (string, string, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidCredentials
	}
	return c.Subject, c.Email, nil
}
