package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bcrservices/car-rental-api/internal/config"
	"github.com/bcrservices/car-rental-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Car{},
		&models.Rental{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return SeedRoles(db)
}

// SeedRoles ensures the fixed role rows exist. Roles are immutable after
// seeding and never deleted in normal operation.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{models.RoleAdmin, models.RoleCustomer} {
		var role models.Role
		if err := db.Where("name = ?", name).
			FirstOrCreate(&role, models.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
