package repository

import (
	"context"
	"errors"

	"minikatalog/internal/cache"
	"minikatalog/internal/models"

	"gorm.io/gorm"
)

// RelationshipRepository defines persistence operations for follow edges.
type RelationshipRepository interface {
	Create(ctx context.Context, rel *models.Relationship) error
	GetEdge(ctx context.Context, followerID, followedID uint) (*models.Relationship, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)
	FollowedUsers(ctx context.Context, userID uint) ([]models.User, error)
	Followers(ctx context.Context, userID uint) ([]models.User, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
}

type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository returns a new RelationshipRepository implementation.
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) Create(ctx context.Context, rel *models.Relationship) error {
	if err := r.db.WithContext(ctx).Create(rel).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already following this user")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateFollowGraph(ctx, rel.FollowerID, rel.FollowedID)
	return nil
}

// GetEdge returns the directed edge from follower to followed, or (nil, nil)
// when no such edge exists.
func (r *relationshipRepository) GetEdge(ctx context.Context, followerID, followedID uint) (*models.Relationship, error) {
	var rel models.Relationship
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&rel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &rel, nil
}

func (r *relationshipRepository) Delete(ctx context.Context, id uint) error {
	var rel models.Relationship
	if err := r.db.WithContext(ctx).First(&rel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Relationship", id)
		}
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Delete(&models.Relationship{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFollowGraph(ctx, rel.FollowerID, rel.FollowedID)
	return nil
}

func (r *relationshipRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// FollowedUsers returns every user the given user follows.
// FollowedUsers serves from the cache under FollowingKey; Create and Delete
// invalidate it. The cached lists are display data only and are never passed
// back to a Save.
func (r *relationshipRepository) FollowedUsers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := cache.Aside(ctx, cache.FollowingKey(userID), &users, cache.GraphTTL, func() error {
		if err := r.db.WithContext(ctx).
			Table("users").
			Joins("JOIN relationships r ON users.id = r.followed_id").
			Where("r.follower_id = ?", userID).
			Order("users.id").
			Find(&users).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Followers returns every user following the given user, cached under
// FollowersKey like FollowedUsers.
func (r *relationshipRepository) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := cache.Aside(ctx, cache.FollowersKey(userID), &users, cache.GraphTTL, func() error {
		if err := r.db.WithContext(ctx).
			Table("users").
			Joins("JOIN relationships r ON users.id = r.follower_id").
			Where("r.followed_id = ?", userID).
			Order("users.id").
			Find(&users).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *relationshipRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *relationshipRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("followed_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
