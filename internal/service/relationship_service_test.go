package service

import (
	"context"
	"errors"
	"testing"

	"minikatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSuccess(t *testing.T) {
	var created *models.Relationship
	relRepo := &relationshipRepoStub{
		createFn: func(_ context.Context, rel *models.Relationship) error {
			rel.ID = 9
			created = rel
			return nil
		},
	}
	userRepo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}
	svc := NewRelationshipService(relRepo, userRepo)

	rel, err := svc.Follow(context.Background(), 1, 2)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(1), rel.FollowerID)
	assert.Equal(t, uint(2), rel.FollowedID)
}

func TestFollowSelf(t *testing.T) {
	relRepo := &relationshipRepoStub{
		createFn: func(context.Context, *models.Relationship) error {
			t.Fatal("no edge may be created for a self-follow")
			return nil
		},
	}
	userRepo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}
	svc := NewRelationshipService(relRepo, userRepo)

	_, err := svc.Follow(context.Background(), 1, 1)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestFollowMissingTarget(t *testing.T) {
	relRepo := &relationshipRepoStub{}
	userRepo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
	}
	svc := NewRelationshipService(relRepo, userRepo)

	_, err := svc.Follow(context.Background(), 1, 99)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestFollowDuplicateEdge(t *testing.T) {
	relRepo := &relationshipRepoStub{
		createFn: func(context.Context, *models.Relationship) error {
			return models.NewConflictError("Already following this user")
		},
	}
	userRepo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}
	svc := NewRelationshipService(relRepo, userRepo)

	_, err := svc.Follow(context.Background(), 1, 2)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUnfollow(t *testing.T) {
	t.Run("existing edge", func(t *testing.T) {
		var deletedID uint
		relRepo := &relationshipRepoStub{
			getEdgeFn: func(_ context.Context, followerID, followedID uint) (*models.Relationship, error) {
				return &models.Relationship{ID: 42, FollowerID: followerID, FollowedID: followedID}, nil
			},
			deleteFn: func(_ context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}
		svc := NewRelationshipService(relRepo, &userRepoStub{})

		require.NoError(t, svc.Unfollow(context.Background(), 1, 2))
		assert.Equal(t, uint(42), deletedID)
	})

	t.Run("missing edge", func(t *testing.T) {
		relRepo := &relationshipRepoStub{
			getEdgeFn: func(context.Context, uint, uint) (*models.Relationship, error) {
				return nil, nil
			},
			deleteFn: func(context.Context, uint) error {
				t.Fatal("delete must not run when the edge does not exist")
				return nil
			},
		}
		svc := NewRelationshipService(relRepo, &userRepoStub{})

		err := svc.Unfollow(context.Background(), 1, 2)
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestFollowCounts(t *testing.T) {
	relRepo := &relationshipRepoStub{
		countFollowingFn: func(_ context.Context, userID uint) (int64, error) {
			return 3, nil
		},
		countFollowersFn: func(_ context.Context, userID uint) (int64, error) {
			return 7, nil
		},
	}
	svc := NewRelationshipService(relRepo, &userRepoStub{})

	following, followers, err := svc.FollowCounts(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), following)
	assert.Equal(t, int64(7), followers)
}

func TestFollowedUsersUnknownUser(t *testing.T) {
	relRepo := &relationshipRepoStub{
		followedUsersFn: func(context.Context, uint) ([]models.User, error) {
			t.Fatal("graph query must not run for an unknown user")
			return nil, nil
		},
	}
	userRepo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
	}
	svc := NewRelationshipService(relRepo, userRepo)

	_, err := svc.FollowedUsers(context.Background(), 99)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
