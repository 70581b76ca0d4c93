package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/kimdohyun-dev/actionlog/internal/domain/entities"
	"github.com/kimdohyun-dev/actionlog/internal/infrastructure/database"
	"github.com/kimdohyun-dev/actionlog/pkg/config"
)

// Seeds a handful of local accounts for manual testing. Not for production.
func main() {
	log.Println("🚀 Creating test users...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	testUsers := []struct {
		LoginID  string
		Password string
		Name     string
		Email    string
	}{
		{LoginID: "alice", Password: "alice1234", Name: "Alice", Email: "alice@test.local"},
		{LoginID: "bob", Password: "bob1234", Name: "Bob", Email: "bob@test.local"},
		{LoginID: "charlie", Password: "charlie1234", Name: "Charlie", Email: "charlie@test.local"},
	}

	for _, tu := range testUsers {
		var count int64
		db.Model(&entities.User{}).Where("login_id = ?", tu.LoginID).Count(&count)
		if count > 0 {
			log.Printf("⏭️  %s already exists, skipping", tu.LoginID)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(tu.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", tu.LoginID, err)
		}

		user := entities.NewUser(tu.LoginID, string(hash), tu.Name, tu.Email)
		if err := db.Create(user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", tu.LoginID, err)
		}

		fmt.Printf("✅ Created %s (password: %s)\n", tu.LoginID, tu.Password)
	}

	log.Println("✅ Done")
}
