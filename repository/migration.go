package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates every table from the models. Production
// postgres deployments run the versioned SQL in migrations/ instead.
func Migrate(DB *gorm.DB) error {
	err := DB.AutoMigrate(&User{}, &Scholarship{}, &Application{}, &Review{}, &SystemLog{})
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
