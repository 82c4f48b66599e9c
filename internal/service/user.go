package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/service/ports"
)

type UserService struct {
	repo  ports.UserRepo
	clock ports.Clock
}

func NewUserService(repo ports.UserRepo, clock ports.Clock) *UserService {
	return &UserService{repo: repo, clock: clock}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Company == "" {
		return nil, fmt.Errorf("%w: company is required", domain.ErrValidation)
	}

	users, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	user := domain.User{
		TelegramID:   input.TelegramID,
		Name:         input.Name,
		Company:      input.Company,
		RegisteredAt: s.clock.Now(),
	}
	users[strconv.FormatInt(input.TelegramID, 10)] = user

	if err = s.repo.SaveAll(ctx, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}
	return &user, nil
}

func (s *UserService) Get(ctx context.Context, telegramID int64) (*domain.User, error) {
	users, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	user, ok := users[strconv.FormatInt(telegramID, 10)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// IsRegistered reports whether a telegram id has completed registration.
func (s *UserService) IsRegistered(ctx context.Context, telegramID int64) (bool, error) {
	_, err := s.Get(ctx, telegramID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, telegramID int64, name, company string) (*domain.User, error) {
	if name == "" || company == "" {
		return nil, fmt.Errorf("%w: name and company are required", domain.ErrValidation)
	}

	users, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	key := strconv.FormatInt(telegramID, 10)
	user, ok := users[key]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	user.Name = name
	user.Company = company
	user.UpdatedAt = s.clock.Now()
	users[key] = user

	if err = s.repo.SaveAll(ctx, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}
	return &user, nil
}
