package service

import (
	"context"

	"minikatalog/internal/middleware"
	"minikatalog/internal/models"
	"minikatalog/internal/repository"
)

// RelationshipService provides follow-graph business logic.
type RelationshipService struct {
	relRepo  repository.RelationshipRepository
	userRepo repository.UserRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(relRepo repository.RelationshipRepository, userRepo repository.UserRepository) *RelationshipService {
	return &RelationshipService{
		relRepo:  relRepo,
		userRepo: userRepo,
	}
}

// Follow creates the directed edge from follower to followed. Self-follow is a
// validation error, a missing target is not-found, and a duplicate edge is a
// conflict (the edge is unique per pair).
func (s *RelationshipService) Follow(ctx context.Context, followerID, followedID uint) (*models.Relationship, error) {
	if followerID == followedID {
		middleware.FollowOperations.WithLabelValues("follow", "rejected").Inc()
		return nil, models.NewValidationError("Cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		middleware.FollowOperations.WithLabelValues("follow", "rejected").Inc()
		return nil, err
	}

	rel := &models.Relationship{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	if err := s.relRepo.Create(ctx, rel); err != nil {
		middleware.FollowOperations.WithLabelValues("follow", "error").Inc()
		return nil, err
	}

	middleware.FollowOperations.WithLabelValues("follow", "ok").Inc()
	return rel, nil
}

// Unfollow removes the directed edge from follower to followed. When no edge
// exists the caller gets a typed not-found error; nothing is dereferenced
// blindly.
func (s *RelationshipService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	edge, err := s.relRepo.GetEdge(ctx, followerID, followedID)
	if err != nil {
		middleware.FollowOperations.WithLabelValues("unfollow", "error").Inc()
		return err
	}
	if edge == nil {
		middleware.FollowOperations.WithLabelValues("unfollow", "rejected").Inc()
		return models.NewNotFoundError("Relationship", followedID)
	}

	if err := s.relRepo.Delete(ctx, edge.ID); err != nil {
		middleware.FollowOperations.WithLabelValues("unfollow", "error").Inc()
		return err
	}

	middleware.FollowOperations.WithLabelValues("unfollow", "ok").Inc()
	return nil
}

// IsFollowing reports whether the directed edge from follower to candidate exists.
func (s *RelationshipService) IsFollowing(ctx context.Context, followerID, candidateID uint) (bool, error) {
	return s.relRepo.Exists(ctx, followerID, candidateID)
}

// FollowedUsers returns every user the given user follows.
func (s *RelationshipService) FollowedUsers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relRepo.FollowedUsers(ctx, userID)
}

// Followers returns every user following the given user.
func (s *RelationshipService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relRepo.Followers(ctx, userID)
}

// FollowCounts returns how many users the given user follows and is followed by.
func (s *RelationshipService) FollowCounts(ctx context.Context, userID uint) (following int64, followers int64, err error) {
	following, err = s.relRepo.CountFollowing(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	followers, err = s.relRepo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return following, followers, nil
}
