package auth

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lifestream-health/donation-backend/internal/db"
)

func Init(conn *gorm.DB) error {
	if err := db.EnsureSchema(conn, "accounts"); err != nil {
		return fmt.Errorf("ensure schema accounts: %w", err)
	}

	if err := conn.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("auto-migrate accounts tables: %w", err)
	}
	return nil
}
