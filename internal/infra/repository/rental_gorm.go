package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/bcrservices/car-rental-api/internal/domain/rental"
	"github.com/bcrservices/car-rental-api/internal/models"
)

type RentalGormRepository struct {
	db *gorm.DB
}

func NewRentalGormRepository(db *gorm.DB) *RentalGormRepository {
	return &RentalGormRepository{db: db}
}

// --------------------------------------------------
// Car
// --------------------------------------------------

func (r *RentalGormRepository) GetCar(
	ctx context.Context,
	id uint,
) (*models.Car, error) {

	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCarNotFound
		}
		return nil, err
	}
	return &car, nil
}

// --------------------------------------------------
// Rental (atomic check-and-insert)
// --------------------------------------------------

func (r *RentalGormRepository) CreateRental(
	ctx context.Context,
	rental *models.Rental,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Rental{}).
			Where(
				"car_id = ? AND rent_started_at < ? AND rent_ended_at > ?",
				rental.CarID,
				rental.RentEndedAt,
				rental.RentStartedAt,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return domain.ErrOverlap
		}

		return tx.Create(rental).Error
	})
}

// Compile-time check
var _ domain.Repository = (*RentalGormRepository)(nil)
