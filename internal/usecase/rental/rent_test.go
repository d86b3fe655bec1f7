package rental_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bcrservices/car-rental-api/internal/apperr"
	"github.com/bcrservices/car-rental-api/internal/audit"
	dbpkg "github.com/bcrservices/car-rental-api/internal/db"
	infraRepo "github.com/bcrservices/car-rental-api/internal/infra/repository"
	"github.com/bcrservices/car-rental-api/internal/models"
	ucrental "github.com/bcrservices/car-rental-api/internal/usecase/rental"
)

func setupRentCar(t *testing.T) (*ucrental.RentCar, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	repo := infraRepo.NewRentalGormRepository(gdb)
	dispatcher := audit.NewDispatcher(audit.New(gdb))

	return ucrental.NewRentCar(repo, dispatcher), gdb
}

func createCar(t *testing.T, gdb *gorm.DB) models.Car {
	t.Helper()
	car := models.Car{Name: "Toyota Camry", Price: 100, Size: models.CarSizeMedium}
	require.NoError(t, gdb.Create(&car).Error)
	return car
}

func rentalCount(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, gdb.Model(&models.Rental{}).Count(&count).Error)
	return count
}

func TestRentCarSuccess(t *testing.T) {
	uc, gdb := setupRentCar(t)
	car := createCar(t, gdb)

	start := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	rental, err := uc.Execute(context.Background(), ucrental.RentCarInput{
		CarID:         car.ID,
		UserID:        1,
		RentStartedAt: start,
		RentEndedAt:   end,
	})
	require.NoError(t, err)

	assert.NotZero(t, rental.ID)
	assert.Equal(t, car.ID, rental.CarID)
	assert.Equal(t, uint(1), rental.UserID)
	assert.Equal(t, int64(1), rentalCount(t, gdb))
}

func TestRentCarInvalidWindow(t *testing.T) {
	uc, gdb := setupRentCar(t)
	car := createCar(t, gdb)

	start := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	for _, end := range []time.Time{start, start.Add(-time.Hour)} {
		_, err := uc.Execute(context.Background(), ucrental.RentCarInput{
			CarID:         car.ID,
			UserID:        1,
			RentStartedAt: start,
			RentEndedAt:   end,
		})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.NameValidation))
	}

	assert.Equal(t, int64(0), rentalCount(t, gdb))
}

func TestRentCarNotFound(t *testing.T) {
	uc, _ := setupRentCar(t)

	start := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), ucrental.RentCarInput{
		CarID:         999,
		UserID:        1,
		RentStartedAt: start,
		RentEndedAt:   start.Add(time.Hour),
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.NameNotFound))
}

func TestRentCarRejectsOverlap(t *testing.T) {
	uc, gdb := setupRentCar(t)
	car := createCar(t, gdb)

	start := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	_, err := uc.Execute(context.Background(), ucrental.RentCarInput{
		CarID:         car.ID,
		UserID:        1,
		RentStartedAt: start,
		RentEndedAt:   end,
	})
	require.NoError(t, err)

	// intersecting window
	_, err = uc.Execute(context.Background(), ucrental.RentCarInput{
		CarID:         car.ID,
		UserID:        2,
		RentStartedAt: start.Add(24 * time.Hour),
		RentEndedAt:   end.Add(24 * time.Hour),
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.NameValidation))
	assert.Equal(t, int64(1), rentalCount(t, gdb))

	// window starting exactly at the previous end does not overlap
	_, err = uc.Execute(context.Background(), ucrental.RentCarInput{
		CarID:         car.ID,
		UserID:        2,
		RentStartedAt: end,
		RentEndedAt:   end.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), rentalCount(t, gdb))
}

func TestRentCarOverlapScopedToCar(t *testing.T) {
	uc, gdb := setupRentCar(t)
	carA := createCar(t, gdb)
	carB := createCar(t, gdb)

	start := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	_, err := uc.Execute(context.Background(), ucrental.RentCarInput{
		CarID: carA.ID, UserID: 1, RentStartedAt: start, RentEndedAt: end,
	})
	require.NoError(t, err)

	// same window on a different car is fine
	_, err = uc.Execute(context.Background(), ucrental.RentCarInput{
		CarID: carB.ID, UserID: 1, RentStartedAt: start, RentEndedAt: end,
	})
	require.NoError(t, err)
}
