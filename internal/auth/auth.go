// Package auth issues and verifies API tokens.
//
// This is not a production-grade identity system: in mock mode the
// signing secret is a fixed development value and login does not check
// the password. The signing and verification path itself is real, so
// deploying with a proper secret and the Firestore backend upgrades it
// in place.
package auth

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/smartbudget/backend/internal/models"
	"github.com/smartbudget/backend/internal/storage"
)

var (
	ErrTokenInvalid = errors.New("the token is invalid or has expired")
	ErrMissingField = errors.New("email and password must both be set")
)

// Identity is the verified subject of a token.
type Identity struct {
	UserID string
	Email  string
}

// Service handles registration, login and token verification against
// a store.
type Service struct {
	store  storage.Store
	secret []byte
	ttl    time.Duration
}

func NewService(store storage.Store, secret string, ttl time.Duration) *Service {
	return &Service{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// ExpiresIn returns the token lifetime in seconds, as reported to
// clients.
func (s *Service) ExpiresIn() int64 {
	return int64(s.ttl.Seconds())
}

// Register creates a new user and issues a token for it.
func (s *Service) Register(ctx context.Context, email, password, name string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", ErrMissingField
	}

	if name == "" {
		// Fall back to the local part of the email address
		name, _, _ = strings.Cut(email, "@")
	}

	user, err := s.store.CreateUser(ctx, models.User{
		Email:        email,
		Name:         name,
		PasswordHash: s.hash(password),
		CreatedAt:    time.Now().UTC().Format("2006-01-02"),
	})
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.issue(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Login looks up the user by email and issues a token.
//
// The password is only checked against the stored hash when the real
// backend is active. The mock store stands in for Firebase
// Authentication, which has no server-side password check here.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", ErrMissingField
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, "", models.ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if !s.store.IsMock() && user.PasswordHash != s.hash(password) {
		return models.User{}, "", models.ErrInvalidCredentials
	}

	token, err := s.issue(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Verify checks the token signature and expiry and returns the
// identity it was issued for.
func (s *Service) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return Identity{}, ErrTokenInvalid
	}

	email, _ := claims["email"].(string)

	return Identity{UserID: subject, Email: email}, nil
}

// issue signs a token encoding the identity and the issuance time.
func (s *Service) issue(user models.User) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (s *Service) hash(password string) string {
	sum := sha256.Sum256(append(s.secret, []byte(password)...))
	return fmt.Sprintf("%x", sum)
}
