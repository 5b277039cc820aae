package db

import (
	types "github.com/yungbote/cardealer/internal/domain"
	"gorm.io/gorm"
)

// AutoMigrateAll creates the schema in dependency order so foreign keys resolve.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// =========================
		// Car dealer
		// =========================
		&types.Supplier{},
		&types.Part{},
		&types.Car{},
		&types.PartCar{},
		&types.Customer{},
		&types.Sale{},

		// =========================
		// Hospital
		// =========================
		&types.Patient{},
		&types.Visitation{},
	)
}
