package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bcrservices/car-rental-api/internal/apperr"
	"github.com/bcrservices/car-rental-api/internal/cache"
	"github.com/bcrservices/car-rental-api/internal/middleware"
	ucrental "github.com/bcrservices/car-rental-api/internal/usecase/rental"
)

type RentalHandler struct {
	rent  *ucrental.RentCar
	cache *cache.Store
}

func NewRentalHandler(rent *ucrental.RentCar, cache *cache.Store) *RentalHandler {
	return &RentalHandler{
		rent:  rent,
		cache: cache,
	}
}

// --------- Requests ---------

type RentRequest struct {
	RentStartedAt time.Time `json:"rentStartedAt" binding:"required"`
	RentEndedAt   time.Time `json:"rentEndedAt" binding:"required"`
}

// --------- Handlers ---------

func (h *RentalHandler) Rent(c *gin.Context) {
	carID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperr.Respond(c, apperr.NotFound())
		return
	}

	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		apperr.Respond(c, apperr.Authentication("missing authentication"))
		return
	}

	var req RentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation("invalid request body", err.Error()))
		return
	}

	rental, err := h.rent.Execute(c.Request.Context(), ucrental.RentCarInput{
		CarID:         uint(carID),
		UserID:        claims.UserID,
		RentStartedAt: req.RentStartedAt,
		RentEndedAt:   req.RentEndedAt,
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, rental)
}
