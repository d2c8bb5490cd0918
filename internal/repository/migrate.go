package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every row model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&customerModel{},
		&contractModel{},
		&eventModel{},
	)
}
