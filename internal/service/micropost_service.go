package service

import (
	"context"

	"minikatalog/internal/middleware"
	"minikatalog/internal/models"
	"minikatalog/internal/repository"
	"minikatalog/internal/validation"
)

// MicropostService provides micropost and feed business logic.
type MicropostService struct {
	postRepo repository.MicropostRepository
	userRepo repository.UserRepository
	isAdmin  func(ctx context.Context, userID uint) (bool, error)
}

// CreateMicropostInput is the whitelisted micropost creation payload.
type CreateMicropostInput struct {
	UserID  uint
	Content string
}

// NewMicropostService returns a new MicropostService. isAdmin decides whether
// a user may delete posts they do not own.
func NewMicropostService(
	postRepo repository.MicropostRepository,
	userRepo repository.UserRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *MicropostService {
	return &MicropostService{
		postRepo: postRepo,
		userRepo: userRepo,
		isAdmin:  isAdmin,
	}
}

// CreateMicropost validates and persists a new micropost for the user.
func (s *MicropostService) CreateMicropost(ctx context.Context, in CreateMicropostInput) (*models.Micropost, error) {
	if err := validation.ValidateMicropostContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Micropost{
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteMicropost removes a micropost. Only the owner or an admin may delete it.
func (s *MicropostService) DeleteMicropost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		admin, err := s.isAdmin(ctx, userID)
		if err != nil {
			return models.NewInternalError(err)
		}
		if !admin {
			return models.NewUnauthorizedError("You can only delete your own microposts")
		}
	}

	return s.postRepo.Delete(ctx, postID)
}

// ListByUser returns the user's microposts newest first.
func (s *MicropostService) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByUser(ctx, userID, limit, offset)
}

// Feed returns the user's feed: their own microposts ordered newest first.
// Each call computes a fresh snapshot; there is no caching layer.
func (s *MicropostService) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	middleware.FeedQueries.Inc()
	return s.postRepo.Feed(ctx, userID, limit, offset)
}
