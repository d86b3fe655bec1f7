package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bcrservices/car-rental-api/internal/apperr"
	"github.com/bcrservices/car-rental-api/internal/models"
	"github.com/bcrservices/car-rental-api/internal/pagination"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, pageSize := pagination.FromQuery(c.Query("page"), c.Query("pageSize"))

	var count int64
	if err := h.db.Model(&models.AuditLog{}).Count(&count).Error; err != nil {
		apperr.Respond(c, err)
		return
	}

	logs := []models.AuditLog{}
	if err := h.db.
		Order("id DESC").
		Limit(pageSize).
		Offset(pagination.Offset(page, pageSize)).
		Find(&logs).Error; err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"auditLogs": logs,
		"meta":      pagination.Build(page, pageSize, count),
	})
}
