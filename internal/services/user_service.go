package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"github.com/geonjuring/parking-system/internal/logger"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/repository"
)

// ErrInvalidCredentials is returned when the username or password is
// wrong. Login deliberately does not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService defines the interface for account operations.
type UserService interface {
	// Register creates a new account.
	// Returns repository.ErrDuplicateUsername if the username is taken.
	Register(ctx context.Context, username, password, email string) (*models.User, error)

	// Login verifies the credentials and stamps the login time.
	// Returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// ChangePassword replaces the password after verifying the current one.
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error

	// DeleteAccount removes the account and all of its data after
	// verifying the password.
	DeleteAccount(ctx context.Context, username, password string) error
}

// userService is the concrete implementation of UserService.
type userService struct {
	repo repository.UserRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repository.UserRepository, log *logger.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// hashPassword derives the stored form of a password (hex SHA-256).
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// verifyPassword compares a candidate against the stored hash in
// constant time.
func verifyPassword(password, storedHash string) bool {
	candidate := hashPassword(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}

func (s *userService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	user, err := s.repo.Create(ctx, username, hashPassword(password), email)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered", map[string]interface{}{
		"user": username,
	})

	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, storedHash, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !verifyPassword(password, storedHash) {
		return nil, ErrInvalidCredentials
	}

	loginAt := s.now()
	if err := s.repo.RecordLogin(ctx, username, loginAt); err != nil {
		return nil, err
	}
	user.LastLoginAt = &loginAt

	s.log.Info("User logged in", map[string]interface{}{
		"user": username,
	})

	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	_, storedHash, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if !verifyPassword(currentPassword, storedHash) {
		return ErrInvalidCredentials
	}

	if err := s.repo.UpdatePassword(ctx, username, hashPassword(newPassword)); err != nil {
		return err
	}

	s.log.Info("Password changed", map[string]interface{}{
		"user": username,
	})

	return nil
}

func (s *userService) DeleteAccount(ctx context.Context, username, password string) error {
	_, storedHash, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if !verifyPassword(password, storedHash) {
		return ErrInvalidCredentials
	}

	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}

	s.log.Info("Account deleted", map[string]interface{}{
		"user": username,
	})

	return nil
}
