package rental

import (
	"context"
	"errors"

	"github.com/bcrservices/car-rental-api/internal/models"
)

var (
	ErrCarNotFound = errors.New("car not found")
	ErrOverlap     = errors.New("rental window overlaps an existing rental")
)

type Repository interface {
	GetCar(
		ctx context.Context,
		id uint,
	) (*models.Car, error)

	// CreateRental inserts the rental atomically, failing with ErrOverlap
	// when the car already has a rental intersecting the window.
	CreateRental(
		ctx context.Context,
		r *models.Rental,
	) error
}
