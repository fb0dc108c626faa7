// Command seed imports users from a local JSON file into the store. Existing
// emails are skipped, so re-running the import is harmless.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	"gorm.io/gorm"

	"lingua/internal/config"
	"lingua/internal/db"
	"lingua/internal/model"
	"lingua/internal/repository"
)

// SeedUserData is one entry of the import file.
type SeedUserData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func main() {
	file := flag.String("file", "seed/users.json", "path to the users JSON file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	log.Printf("Database file: %s", cfg.SQLitePath)

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users, err := loadUsersFromFile(*file)
	if err != nil {
		log.Fatalf("Failed to load users: %v", err)
	}
	log.Printf("Loaded %d users from %s", len(users), *file)

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, skipped, err := seedUsers(ctx, userRepo, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}

// loadUsersFromFile reads and validates the import file.
func loadUsersFromFile(path string) ([]model.User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []SeedUserData
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(entries))
	skipped := 0
	for _, item := range entries {
		if item.Name == "" || item.Email == "" {
			log.Printf("Skipping entry with missing name or email: %+v", item)
			skipped++
			continue
		}
		role := item.Role
		if role == "" {
			role = model.RoleStudent
		}
		users = append(users, model.User{
			Name:     item.Name,
			Email:    item.Email,
			Password: item.Password,
			Role:     role,
		})
	}
	if skipped > 0 {
		log.Printf("Skipped %d invalid entries", skipped)
	}
	return users, nil
}

// seedUsers inserts users that are not already present, keyed by email.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []model.User) (created int, skipped int, err error) {
	for i := range users {
		user := users[i]
		_, err := repo.FindByEmail(ctx, user.Email)
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, err
		}

		if err := repo.Create(ctx, &user); err != nil {
			if repository.IsDuplicateKey(err) {
				skipped++
				continue
			}
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
