// Package service implements the business rules of Katalog Miniatur on top of
// the repository layer.
package service

import (
	"context"

	"minikatalog/internal/models"
	"minikatalog/internal/repository"
	"minikatalog/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides registration, authentication and profile management.
type UserService struct {
	userRepo repository.UserRepository
}

// RegisterInput is the whitelisted registration payload. Admin is deliberately
// not a field here: it can never be set from untrusted input.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// UpdateProfileInput is the whitelisted profile update payload.
type UpdateProfileInput struct {
	UserID uint
	Name   string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register validates the input, hashes the password and persists the user.
// Validation failures are collected across all fields, never short-circuited,
// and nothing is persisted on failure. A fresh remember token is set by the
// persistence hook on the successful save.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if fields := validation.ValidateRegistration(in.Name, in.Email, in.Password, in.PasswordConfirmation); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}

	email := validation.NormalizeEmail(in.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email is already taken")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:           in.Name,
		Email:          email,
		PasswordDigest: string(digest),
	}
	// The DB unique index backstops the uniqueness precheck under
	// concurrent registration; the repository maps that to a conflict.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the credentials and returns the user, or an
// unauthorized error. Lookups are uncached so the caller always sees the
// current remember token.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GetUserByID returns the user with the given ID.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserWithRecentMicroposts returns the user together with their newest
// microposts, for the profile view.
func (s *UserService) GetUserWithRecentMicroposts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.userRepo.GetByIDWithMicroposts(ctx, id, limit)
}

// ListUsers returns a page of users.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile applies the whitelisted profile fields. The save rotates the
// user's remember token.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = in.Name
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetAdmin toggles the admin flag. Only reachable through admin tooling, never
// from registration input.
func (s *UserService) SetAdmin(ctx context.Context, targetID uint, isAdmin bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Admin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user, cascading to their microposts and to every
// relationship edge touching them.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
