// Command seed populates the database with demo users, microposts and a
// follow mesh. Development use only.
package main

import (
	"flag"
	"log"

	"minikatalog/internal/config"
	"minikatalog/internal/database"
	"minikatalog/internal/seed"
)

func main() {
	users := flag.Int("users", 30, "number of users to create")
	posts := flag.Int("posts", 10, "microposts per user")
	follows := flag.Int("follows", 8, "follow edges per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.MicropostsPerUser = *posts
	opts.FollowsPerUser = *follows

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed")
}
