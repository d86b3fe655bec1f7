package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcrservices/car-rental-api/internal/apperr"
)

type AppHandler struct{}

func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

func (h *AppHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "BCR API is up and running!",
	})
}

// NotFound is the catch-all for unmatched routes.
func (h *AppHandler) NotFound(c *gin.Context) {
	apperr.Respond(c, apperr.NotFound())
}
