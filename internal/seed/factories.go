// Package seed provides helpers to create demo and test data. Intended for
// development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"minikatalog/internal/models"
	"minikatalog/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with fake but valid attributes. All seeded users
// share the password "password123" so demo logins work.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           gofakeit.Name(),
		Email:          validation.NormalizeEmail(fmt.Sprintf("%s.%d@example.com", gofakeit.Username(), f.rng.Intn(100000))),
		PasswordDigest: string(digest),
	}
	for _, o := range overrides {
		o(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateMicropost persists a micropost for the user with a created_at spread
// over the past maxDays days so feeds look lived-in.
func (f *Factory) CreateMicropost(user *models.User, maxDays int, overrides ...func(*models.Micropost)) (*models.Micropost, error) {
	if maxDays <= 0 {
		maxDays = 30
	}

	post := &models.Micropost{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
	}

	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	for _, o := range overrides {
		o(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateRelationship persists a follow edge between two users.
func (f *Factory) CreateRelationship(follower, followed *models.User) (*models.Relationship, error) {
	rel := &models.Relationship{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}
	if err := f.db.Create(rel).Error; err != nil {
		return nil, err
	}
	return rel, nil
}
