package service

import (
	"context"
	"fmt"
	"time"

	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/repository"
)

var (
	ErrUserNotFound      = repository.ErrUserNotFound
	ErrUserHasDependents = repository.ErrUserHasDependents
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
	now  func() time.Time
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, actor domain.Actor, profile domain.ProfileUpdate) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	profile.Apply(&user)

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) ListUsers(ctx context.Context, actor domain.Actor, filter domain.UserFilter) ([]domain.User, error) {
	if err := actor.Require(domain.CapManageUsers); err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return users, nil
}

// CreateUser adds a user with any role.
func (s *UserService) CreateUser(ctx context.Context, actor domain.Actor, user domain.User) (domain.User, error) {
	if err := actor.Require(domain.CapManageUsers); err != nil {
		return domain.User{}, err
	}
	if _, err := domain.ParseRole(string(user.Role)); err != nil {
		return domain.User{}, err
	}

	hash, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hash
	user.Email = normalizeEmail(user.Email)
	user.DateJoined = s.now()
	user.IsActive = true

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// SetAccess changes the role and the active flag of a user. Admins cannot demote or deactivate themselves.
func (s *UserService) SetAccess(ctx context.Context, actor domain.Actor, id uint, role domain.Role, active bool) (domain.User, error) {
	if err := actor.Require(domain.CapManageUsers); err != nil {
		return domain.User{}, err
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return domain.User{}, err
	}
	if id == actor.UserID && (role != actor.Role || !active) {
		return domain.User{}, domain.NewValidationError("role", "you cannot change your own access")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	user.Role = role
	user.IsActive = active

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, actor domain.Actor, id uint) error {
	if err := actor.Require(domain.CapManageUsers); err != nil {
		return err
	}
	if id == actor.UserID {
		return domain.NewValidationError("id", "you cannot delete yourself")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
