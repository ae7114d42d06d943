package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/smartpark-payroll-api/internal/credential"
	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/metrics"
	"github.com/smartpark-payroll-api/internal/repository"
)

// AuthService определяет интерфейс аутентификации
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Register(ctx context.Context, username, password string) error
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*UpdateProfileResult, error)
}

// UpdateProfileInput - параметры изменения профиля.
// Пустые NewUsername и NewPassword означают «не менять».
type UpdateProfileInput struct {
	CurrentUsername string
	NewUsername     string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfileResult - итог изменения профиля
type UpdateProfileResult struct {
	Username string
	Changed  bool
}

type authService struct {
	users  repository.UserRepository
	hasher *credential.Hasher
	logger *slog.Logger
}

// NewAuthService создаёт новый экземпляр сервиса
func NewAuthService(users repository.UserRepository, hasher *credential.Hasher, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// Login проверяет учётные данные.
// Пароль, сохранённый открытым текстом, при совпадении перезаписывается хешем.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if password == "" {
		return nil, domain.ErrPasswordRequired
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info("login attempt with unknown username", slog.String("username", username))
			metrics.ObserveLogin("invalid")
			return nil, domain.ErrInvalidCredentials
		}
		metrics.ObserveLogin("error")
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	switch s.hasher.Verify(user.Password, password) {
	case credential.Match:
		metrics.ObserveLogin("success")
		return user, nil

	case credential.LegacyMatch:
		if err := s.migratePassword(ctx, user, password); err != nil {
			metrics.ObserveLogin("error")
			return nil, err
		}
		metrics.ObserveLogin("legacy")
		return user, nil

	default:
		s.logger.Info("login failed with wrong password", slog.String("username", username))
		metrics.ObserveLogin("invalid")
		return nil, domain.ErrInvalidCredentials
	}
}

func (s *authService) migratePassword(ctx context.Context, user *domain.User, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to migrate legacy password: %w", err)
	}
	user.Password = hash

	metrics.IncCredentialMigrations()
	s.logger.Info("legacy password migrated to hash", slog.String("username", user.Username))
	return nil
}

func (s *authService) Register(ctx context.Context, username, password string) error {
	if password == "" {
		return domain.ErrPasswordRequired
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(ctx, &domain.User{Username: username, Password: hash}); err != nil {
		return err
	}

	s.logger.Info("user registered", slog.String("username", username))
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*UpdateProfileResult, error) {
	user, err := s.users.GetByUsername(ctx, in.CurrentUsername)
	if err != nil {
		return nil, err
	}

	verified := s.hasher.Verify(user.Password, in.CurrentPassword)
	if verified == credential.Mismatch {
		return nil, domain.ErrIncorrectPassword
	}

	usernameChanged := in.NewUsername != "" && in.NewUsername != user.Username
	passwordChanged := in.NewPassword != ""

	if !usernameChanged && !passwordChanged {
		return &UpdateProfileResult{Username: user.Username}, nil
	}

	username := user.Username
	if usernameChanged {
		exists, err := s.users.ExistsByUsername(ctx, in.NewUsername)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrUsernameTaken
		}
		username = in.NewUsername
	}

	password := user.Password
	migrated := false
	switch {
	case passwordChanged:
		if password, err = s.hasher.Hash(in.NewPassword); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	case verified == credential.LegacyMatch:
		// запись обновляется в любом случае, заодно убираем открытый текст
		if password, err = s.hasher.Hash(in.CurrentPassword); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		migrated = true
	}

	if err := s.users.UpdateCredentials(ctx, user.ID, username, password); err != nil {
		return nil, err
	}

	if migrated {
		metrics.IncCredentialMigrations()
	}
	s.logger.Info("profile updated",
		slog.String("username", user.Username),
		slog.String("new_username", username),
		slog.Bool("password_changed", passwordChanged),
	)

	return &UpdateProfileResult{Username: username, Changed: true}, nil
}
