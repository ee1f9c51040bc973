package auth

import (
	"fmt"

	"github.com/BazaarWorks/BW-Backend/internal/db"
	"gorm.io/gorm"
)

// Init creates the auth schema and tables. Idempotent.
func Init(conn *gorm.DB) error {
	if err := db.EnsureSchema(conn, "app_auth"); err != nil {
		return fmt.Errorf("failed to ensure schema app_auth: %w", err)
	}
	if err := conn.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("failed to auto-migrate auth tables: %w", err)
	}
	return nil
}
