package rental

import (
	"context"
	"errors"
	"time"

	"github.com/bcrservices/car-rental-api/internal/apperr"
	"github.com/bcrservices/car-rental-api/internal/audit"
	domain "github.com/bcrservices/car-rental-api/internal/domain/rental"
	"github.com/bcrservices/car-rental-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RentCarInput struct {
	CarID  uint
	UserID uint

	RentStartedAt time.Time
	RentEndedAt   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type RentCar struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRentCar(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RentCar {
	return &RentCar{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RentCar) Execute(
	ctx context.Context,
	in RentCarInput,
) (*models.Rental, error) {

	if !in.RentEndedAt.After(in.RentStartedAt) {
		return nil, apperr.Validation(
			"rentEndedAt must be after rentStartedAt",
			nil,
		)
	}

	car, err := uc.repo.GetCar(ctx, in.CarID)
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return nil, apperr.NotFound()
		}
		return nil, err
	}

	rental := &models.Rental{
		CarID:         car.ID,
		UserID:        in.UserID,
		RentStartedAt: in.RentStartedAt,
		RentEndedAt:   in.RentEndedAt,
	}

	if err := uc.repo.CreateRental(ctx, rental); err != nil {
		if errors.Is(err, domain.ErrOverlap) {
			return nil, apperr.Validation(
				"car is already rented for the requested window",
				nil,
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "car_rented",
		Entity:   "rental",
		EntityID: &rental.ID,
	})

	return rental, nil
}
