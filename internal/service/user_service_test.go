package service

import (
	"context"
	"errors"
	"testing"

	"minikatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:                 "Alice Example",
		Email:                "Alice@Example.COM",
		Password:             "password123",
		PasswordConfirmation: "password123",
	}
}

func TestRegisterSuccess(t *testing.T) {
	var created *models.User
	repo := &userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			return nil, nil
		},
		createFn: func(_ context.Context, user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "Alice Example", user.Name)
	assert.Equal(t, "alice@example.com", user.Email, "email stored lowercase")
	assert.False(t, user.Admin, "admin can never come from registration input")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte("password123")))
	assert.NotEqual(t, "password123", user.PasswordDigest)
}

func TestRegisterCollectsAllValidationErrors(t *testing.T) {
	repo := &userRepoStub{
		getByEmailFn: func(context.Context, string) (*models.User, error) {
			t.Fatal("repo must not be touched when validation fails")
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:                 "ab",
		Email:                "user@foo,com",
		Password:             "short",
		PasswordConfirmation: "different",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	// Every failing field is reported at once.
	assert.Contains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
	assert.Contains(t, appErr.Fields, "password_confirmation")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return &models.User{ID: 7, Email: email}, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestAuthenticate(t *testing.T) {
	digest, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.User{ID: 3, Email: "alice@example.com", PasswordDigest: string(digest)}
	repo := &userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == "alice@example.com" {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "ALICE@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@example.com", "wrongpass")
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "password123")
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	stored := &models.User{ID: 5, Name: "Old Name", Email: "alice@example.com"}
	var saved *models.User
	repo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			if id != 5 {
				return nil, models.NewNotFoundError("User", id)
			}
			u := *stored
			return &u, nil
		},
		updateFn: func(_ context.Context, user *models.User) error {
			saved = user
			return nil
		},
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	t.Run("valid name change", func(t *testing.T) {
		user, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 5, Name: "New Name"})
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		require.NotNil(t, saved)
		assert.Equal(t, "New Name", saved.Name)
	})

	t.Run("name too short", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 5, Name: "ab"})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 99, Name: "Whoever"})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestSetAdmin(t *testing.T) {
	stored := &models.User{ID: 5, Name: "Alice", Email: "alice@example.com"}
	var saved *models.User
	repo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			u := *stored
			return &u, nil
		},
		updateFn: func(_ context.Context, user *models.User) error {
			saved = user
			return nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.SetAdmin(context.Background(), 5, true)
	require.NoError(t, err)
	assert.True(t, user.Admin)
	require.NotNil(t, saved)
	assert.True(t, saved.Admin)
}
