package menu

import (
	"log"

	"gorm.io/gorm"

	"github.com/friends-cafe/cafe-api/models"
)

// Seed inserts the menu on first boot. An already-populated menu is left
// alone so operator edits survive restarts.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.MenuCategory{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	categories := Categories()
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded menu with %d categories", len(categories))
	return nil
}
