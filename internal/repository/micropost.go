package repository

import (
	"context"
	"errors"

	"minikatalog/internal/models"

	"gorm.io/gorm"
)

// MicropostRepository defines persistence operations for microposts.
type MicropostRepository interface {
	Create(ctx context.Context, post *models.Micropost) error
	GetByID(ctx context.Context, id uint) (*models.Micropost, error)
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error)
	Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error)
}

type micropostRepository struct {
	db *gorm.DB
}

// NewMicropostRepository returns a new MicropostRepository implementation.
func NewMicropostRepository(db *gorm.DB) MicropostRepository {
	return &micropostRepository{db: db}
}

func (r *micropostRepository) Create(ctx context.Context, post *models.Micropost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *micropostRepository) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	var post models.Micropost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Micropost", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *micropostRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Micropost{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Micropost", id)
	}
	return nil
}

// ListByUser returns the user's microposts newest first. Ordering is applied
// explicitly; storage order is never relied on.
func (r *micropostRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	var posts []models.Micropost
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Feed returns the microposts shown on the user's feed: exactly the user's own
// posts, newest first. Posts of followed users are intentionally excluded.
func (r *micropostRepository) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	var posts []models.Micropost
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
