package donation

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lifestream-health/donation-backend/internal/db"
)

func Init(conn *gorm.DB) error {
	if err := db.EnsureSchema(conn, "donations"); err != nil {
		return fmt.Errorf("ensure schema donations: %w", err)
	}

	if err := conn.AutoMigrate(&Donation{}); err != nil {
		return fmt.Errorf("auto-migrate donations tables: %w", err)
	}
	return nil
}
