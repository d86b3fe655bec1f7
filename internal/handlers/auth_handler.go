package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bcrservices/car-rental-api/internal/apperr"
	"github.com/bcrservices/car-rental-api/internal/audit"
	"github.com/bcrservices/car-rental-api/internal/auth"
	"github.com/bcrservices/car-rental-api/internal/middleware"
	"github.com/bcrservices/car-rental-api/internal/models"
	"github.com/bcrservices/car-rental-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	hasher *auth.Hasher
	tokens *auth.TokenService
	audit  *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	hasher *auth.Hasher,
	tokens *auth.TokenService,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:     db,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation("invalid request body", err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		apperr.Respond(c, apperr.Validation("invalid email address", nil))
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		apperr.Respond(c, apperr.Validation("email already registered", nil))
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	// Registration always binds the default role; admins are provisioned
	// out of band.
	var role models.Role
	if err := h.db.Where("name = ?", models.RoleCustomer).First(&role).Error; err != nil {
		apperr.Respond(c, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashed,
		RoleID:       role.ID,
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// uniqueness is also enforced by the store
		apperr.Respond(c, apperr.Validation("email already registered", nil))
		return
	}

	token, err := h.tokens.Issue(&user, &role)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"accessToken": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  gin.H{"id": role.ID, "name": role.Name},
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation("invalid request body", err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Preload("Role").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.Authentication("invalid email or password"))
			return
		}
		apperr.Respond(c, err)
		return
	}

	if !h.hasher.Verify(req.Password, user.PasswordHash) {
		apperr.Respond(c, apperr.Authentication("invalid email or password"))
		return
	}

	token, err := h.tokens.Issue(&user, &user.Role)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"accessToken": token})
}

// Whoami reflects the claims at token-issuance time; it never re-reads the
// store.
func (h *AuthHandler) Whoami(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		apperr.Respond(c, apperr.Authentication("missing authentication"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    claims.UserID,
		"name":  claims.Name,
		"email": claims.Email,
		"role":  gin.H{"id": claims.Role.ID, "name": claims.Role.Name},
	})
}
