package seeds

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BazaarWorks/BW-Backend/internal/auth"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedUser is one demo account entry in the seed file.
type SeedUser struct {
	Username    string    `yaml:"username"`
	Email       string    `yaml:"email"`
	Password    string    `yaml:"password"`
	Role        auth.Role `yaml:"role"`
	DisplayName string    `yaml:"display_name"`
	Wishlist    []string  `yaml:"wishlist"`
}

// SeedUsers loads demo accounts from a YAML file and inserts the ones that
// don't exist yet. Existing usernames are skipped, so reseeding is safe.
func SeedUsers(conn *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	var entries []SeedUser
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	store := auth.NewGormStore(conn)
	seeded := 0
	for _, entry := range entries {
		if !entry.Role.Valid() {
			return fmt.Errorf("seed user %s has unknown role %q", entry.Username, entry.Role)
		}

		username := auth.NormalizeUsername(entry.Username)
		if _, err := store.FindByUsername(username); err == nil {
			log.Printf("⚠️ User exists, skipping: %s", username)
			continue
		} else if !errors.Is(err, auth.ErrNotFound) {
			return fmt.Errorf("DB error on user %s: %w", username, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(entry.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", username, err)
		}

		user := auth.User{
			UserID:         uuid.NewString(),
			Username:       username,
			HashedPassword: string(hashed),
			Role:           entry.Role,
			DisplayName:    entry.DisplayName,
			Wishlist:       entry.Wishlist,
		}
		if email := entry.Email; email != "" {
			user.Email = &email
		}
		if err := store.Create(&user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", username, err)
		}
		seeded++
	}

	log.Printf("✅ Seeded %d users", seeded)
	return nil
}
