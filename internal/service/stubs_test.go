package service

import (
	"context"

	"minikatalog/internal/models"
)

type userRepoStub struct {
	getByIDFn               func(context.Context, uint) (*models.User, error)
	getByIDWithMicropostsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn            func(context.Context, string) (*models.User, error)
	createFn                func(context.Context, *models.User) error
	updateFn                func(context.Context, *models.User) error
	deleteFn                func(context.Context, uint) error
	listFn                  func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithMicroposts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithMicropostsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

type relationshipRepoStub struct {
	createFn         func(context.Context, *models.Relationship) error
	getEdgeFn        func(context.Context, uint, uint) (*models.Relationship, error)
	deleteFn         func(context.Context, uint) error
	existsFn         func(context.Context, uint, uint) (bool, error)
	followedUsersFn  func(context.Context, uint) ([]models.User, error)
	followersFn      func(context.Context, uint) ([]models.User, error)
	countFollowingFn func(context.Context, uint) (int64, error)
	countFollowersFn func(context.Context, uint) (int64, error)
}

func (s *relationshipRepoStub) Create(ctx context.Context, rel *models.Relationship) error {
	return s.createFn(ctx, rel)
}
func (s *relationshipRepoStub) GetEdge(ctx context.Context, followerID, followedID uint) (*models.Relationship, error) {
	return s.getEdgeFn(ctx, followerID, followedID)
}
func (s *relationshipRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *relationshipRepoStub) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followedID)
}
func (s *relationshipRepoStub) FollowedUsers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followedUsersFn(ctx, userID)
}
func (s *relationshipRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *relationshipRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}
func (s *relationshipRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}

type micropostRepoStub struct {
	createFn     func(context.Context, *models.Micropost) error
	getByIDFn    func(context.Context, uint) (*models.Micropost, error)
	deleteFn     func(context.Context, uint) error
	listByUserFn func(context.Context, uint, int, int) ([]models.Micropost, error)
	feedFn       func(context.Context, uint, int, int) ([]models.Micropost, error)
}

func (s *micropostRepoStub) Create(ctx context.Context, post *models.Micropost) error {
	return s.createFn(ctx, post)
}
func (s *micropostRepoStub) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	return s.getByIDFn(ctx, id)
}
func (s *micropostRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *micropostRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *micropostRepoStub) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	return s.feedFn(ctx, userID, limit, offset)
}
