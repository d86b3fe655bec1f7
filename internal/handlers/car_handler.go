package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bcrservices/car-rental-api/internal/apperr"
	"github.com/bcrservices/car-rental-api/internal/audit"
	"github.com/bcrservices/car-rental-api/internal/cache"
	cardomain "github.com/bcrservices/car-rental-api/internal/domain/car"
	"github.com/bcrservices/car-rental-api/internal/middleware"
	"github.com/bcrservices/car-rental-api/internal/models"
	"github.com/bcrservices/car-rental-api/internal/pagination"
	"github.com/bcrservices/car-rental-api/internal/storage"
)

type CarHandler struct {
	db       *gorm.DB
	cache    *cache.Store
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewCarHandler(
	db *gorm.DB,
	cache *cache.Store,
	uploader *storage.Uploader,
	audit *audit.Dispatcher,
) *CarHandler {
	return &CarHandler{
		db:       db,
		cache:    cache,
		uploader: uploader,
		audit:    audit,
	}
}

// --------- Requests / Responses ---------

type CarRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Size  string  `json:"size" binding:"required,oneof=small medium large"`
	Image string  `json:"image"`
}

type ListCarsResponse struct {
	Cars []models.Car          `json:"cars"`
	Meta pagination.Pagination `json:"meta"`
}

// --------- Handlers ---------

func (h *CarHandler) List(c *gin.Context) {
	q := cardomain.BuildListQuery(cardomain.ListParams{
		Page:        c.Query("page"),
		PageSize:    c.Query("pageSize"),
		Size:        c.Query("size"),
		AvailableAt: c.Query("availableAt"),
	})

	ctx := c.Request.Context()
	cacheKey := c.Request.URL.RawQuery

	var resp ListCarsResponse
	if h.cache.GetJSON(ctx, cacheKey, &resp) {
		c.JSON(http.StatusOK, resp)
		return
	}

	var count int64
	if err := q.ApplyFilter(h.db.Model(&models.Car{})).Count(&count).Error; err != nil {
		apperr.Respond(c, err)
		return
	}

	cars := []models.Car{}
	if err := q.Apply(h.db).Order("id ASC").Find(&cars).Error; err != nil {
		apperr.Respond(c, err)
		return
	}

	resp = ListCarsResponse{
		Cars: cars,
		Meta: pagination.Build(q.Page, q.PageSize, count),
	}
	h.cache.SetJSON(ctx, cacheKey, resp)

	c.JSON(http.StatusOK, resp)
}

func (h *CarHandler) Get(c *gin.Context) {
	car, ok := h.carFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) Create(c *gin.Context) {
	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation("invalid request body", err.Error()))
		return
	}

	car := models.Car{
		Name:  req.Name,
		Price: req.Price,
		Size:  req.Size,
		Image: req.Image,
	}

	if err := h.db.Create(&car).Error; err != nil {
		apperr.Respond(c, err)
		return
	}

	h.dispatchAudit(c, "car_created", car.ID)
	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, car)
}

func (h *CarHandler) Update(c *gin.Context) {
	car, ok := h.carFromParam(c)
	if !ok {
		return
	}

	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation("invalid request body", err.Error()))
		return
	}

	car.Name = req.Name
	car.Price = req.Price
	car.Size = req.Size
	car.Image = req.Image

	if err := h.db.Save(car).Error; err != nil {
		apperr.Respond(c, err)
		return
	}

	h.dispatchAudit(c, "car_updated", car.ID)
	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) Delete(c *gin.Context) {
	car, ok := h.carFromParam(c)
	if !ok {
		return
	}

	if err := h.db.Delete(car).Error; err != nil {
		apperr.Respond(c, err)
		return
	}

	h.dispatchAudit(c, "car_deleted", car.ID)
	h.cache.Invalidate(c.Request.Context())

	c.Status(http.StatusNoContent)
}

func (h *CarHandler) UploadImage(c *gin.Context) {
	car, ok := h.carFromParam(c)
	if !ok {
		return
	}

	if h.uploader == nil {
		apperr.Respond(c, apperr.Validation("image storage is not configured", nil))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		apperr.Respond(c, apperr.Validation("image file is required", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperr.Respond(c, apperr.Validation("unreadable image file", nil))
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadCarImage(c.Request.Context(), file)
	if err != nil {
		apperr.Respond(c, apperr.Validation("unsupported or corrupt image", nil))
		return
	}

	car.Image = url
	if err := h.db.Save(car).Error; err != nil {
		apperr.Respond(c, err)
		return
	}

	h.dispatchAudit(c, "car_image_uploaded", car.ID)
	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, car)
}

// --------- Helpers ---------

func (h *CarHandler) carFromParam(c *gin.Context) (*models.Car, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperr.Respond(c, apperr.NotFound())
		return nil, false
	}

	var car models.Car
	if err := h.db.First(&car, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.NotFound())
			return nil, false
		}
		apperr.Respond(c, err)
		return nil, false
	}

	return &car, true
}

func (h *CarHandler) dispatchAudit(c *gin.Context, action string, carID uint) {
	var userID *uint
	if claims, ok := middleware.ClaimsFrom(c); ok {
		userID = &claims.UserID
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   "car",
		EntityID: &carID,
	})
}
