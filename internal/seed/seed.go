package seed

import (
	"fmt"
	"log/slog"

	"minikatalog/internal/middleware"
	"minikatalog/internal/models"

	"gorm.io/gorm"
)

// Options controls how much demo data Run creates.
type Options struct {
	Users              int
	MicropostsPerUser  int
	FollowsPerUser     int
	MicropostSpreadDay int
}

// DefaultOptions returns a small but socially connected demo data set.
func DefaultOptions() Options {
	return Options{
		Users:              30,
		MicropostsPerUser:  10,
		FollowsPerUser:     8,
		MicropostSpreadDay: 30,
	}
}

// Run seeds users, microposts and a follow mesh. The first seeded user is an
// admin ("Admin User", admin@example.com) so the demo has a moderator.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)

	admin, err := f.CreateUser(func(u *models.User) {
		u.Name = "Admin User"
		u.Email = "admin@example.com"
		u.Admin = true
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	users = append(users, admin)

	for i := 1; i < opts.Users; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		users = append(users, u)
	}

	for _, u := range users {
		for i := 0; i < opts.MicropostsPerUser; i++ {
			if _, err := f.CreateMicropost(u, opts.MicropostSpreadDay); err != nil {
				return fmt.Errorf("seed micropost for user %d: %w", u.ID, err)
			}
		}
	}

	// Follow mesh: each user follows the next FollowsPerUser users in ring
	// order. Deterministic, no self-follows, no duplicate edges.
	for i, u := range users {
		for j := 1; j <= opts.FollowsPerUser && j < len(users); j++ {
			target := users[(i+j)%len(users)]
			if target.ID == u.ID {
				continue
			}
			if _, err := f.CreateRelationship(u, target); err != nil {
				return fmt.Errorf("seed follow %d->%d: %w", u.ID, target.ID, err)
			}
		}
	}

	middleware.Logger.Info("seeding completed",
		slog.Int("users", len(users)),
		slog.Int("microposts_per_user", opts.MicropostsPerUser),
		slog.Int("follows_per_user", opts.FollowsPerUser),
	)
	return nil
}
