package contact

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lifestream-health/donation-backend/internal/db"
)

func Init(conn *gorm.DB) error {
	if err := db.EnsureSchema(conn, "contact"); err != nil {
		return fmt.Errorf("ensure schema contact: %w", err)
	}

	if err := conn.AutoMigrate(&Message{}); err != nil {
		return fmt.Errorf("auto-migrate contact tables: %w", err)
	}
	return nil
}
