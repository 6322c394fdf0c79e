package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"minikatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverAdmin(context.Context, uint) (bool, error) { return false, nil }

func TestCreateMicropost(t *testing.T) {
	var created *models.Micropost
	postRepo := &micropostRepoStub{
		createFn: func(_ context.Context, post *models.Micropost) error {
			post.ID = 1
			created = post
			return nil
		},
	}
	svc := NewMicropostService(postRepo, &userRepoStub{}, neverAdmin)
	ctx := context.Background()

	t.Run("valid content", func(t *testing.T) {
		post, err := svc.CreateMicropost(ctx, CreateMicropostInput{UserID: 3, Content: "Lorem ipsum"})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(3), post.UserID)
		assert.Equal(t, "Lorem ipsum", post.Content)
	})

	t.Run("blank content", func(t *testing.T) {
		_, err := svc.CreateMicropost(ctx, CreateMicropostInput{UserID: 3, Content: "   "})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("content too long", func(t *testing.T) {
		_, err := svc.CreateMicropost(ctx, CreateMicropostInput{UserID: 3, Content: strings.Repeat("a", 141)})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("140 characters is accepted", func(t *testing.T) {
		_, err := svc.CreateMicropost(ctx, CreateMicropostInput{UserID: 3, Content: strings.Repeat("a", 140)})
		assert.NoError(t, err)
	})
}

func TestDeleteMicropost(t *testing.T) {
	post := &models.Micropost{ID: 10, UserID: 3, Content: "mine"}

	newRepo := func(deleted *bool) *micropostRepoStub {
		return &micropostRepoStub{
			getByIDFn: func(_ context.Context, id uint) (*models.Micropost, error) {
				if id != post.ID {
					return nil, models.NewNotFoundError("Micropost", id)
				}
				return post, nil
			},
			deleteFn: func(_ context.Context, id uint) error {
				*deleted = true
				return nil
			},
		}
	}
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		var deleted bool
		svc := NewMicropostService(newRepo(&deleted), &userRepoStub{}, neverAdmin)
		require.NoError(t, svc.DeleteMicropost(ctx, 3, 10))
		assert.True(t, deleted)
	})

	t.Run("admin deletes another user's post", func(t *testing.T) {
		var deleted bool
		alwaysAdmin := func(context.Context, uint) (bool, error) { return true, nil }
		svc := NewMicropostService(newRepo(&deleted), &userRepoStub{}, alwaysAdmin)
		require.NoError(t, svc.DeleteMicropost(ctx, 8, 10))
		assert.True(t, deleted)
	})

	t.Run("non-owner non-admin rejected", func(t *testing.T) {
		var deleted bool
		svc := NewMicropostService(newRepo(&deleted), &userRepoStub{}, neverAdmin)
		err := svc.DeleteMicropost(ctx, 8, 10)
		require.Error(t, err)
		assert.False(t, deleted)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})

	t.Run("missing post", func(t *testing.T) {
		var deleted bool
		svc := NewMicropostService(newRepo(&deleted), &userRepoStub{}, neverAdmin)
		err := svc.DeleteMicropost(ctx, 3, 999)
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestFeedDelegatesToRepository(t *testing.T) {
	var gotUserID uint
	postRepo := &micropostRepoStub{
		feedFn: func(_ context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
			gotUserID = userID
			return []models.Micropost{{ID: 2, UserID: userID}, {ID: 1, UserID: userID}}, nil
		},
	}
	svc := NewMicropostService(postRepo, &userRepoStub{}, neverAdmin)

	feed, err := svc.Feed(context.Background(), 5, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(5), gotUserID)
	assert.Len(t, feed, 2)
}
