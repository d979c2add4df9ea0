package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/syncbridge-go/dto"
	"github.com/linskybing/syncbridge-go/middleware"
	"github.com/linskybing/syncbridge-go/models"
	"github.com/linskybing/syncbridge-go/response"
	"github.com/linskybing/syncbridge-go/services"
	"github.com/linskybing/syncbridge-go/utils"
)

type AuthHandler struct {
	svc *services.UserService
}

func NewAuthHandler(svc *services.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if _, err := h.svc.Register(input); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "User registered successfully"})
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	user, err := h.svc.Login(input)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	token, err := middleware.GenerateToken(&user, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	var role *string
	if user.Role != nil {
		r := string(*user.Role)
		role = &r
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:       token,
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Role:        role,
	})
}

// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /licenses/activate
func (h *AuthHandler) ActivateLicense(c *gin.Context) {
	user, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.ActivateLicenseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	updated, err := h.svc.ActivateLicense(user, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	// Role changed, hand back a fresh token.
	token, err := middleware.GenerateToken(&updated, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}
	var role *string
	if updated.Role != nil {
		r := string(*updated.Role)
		role = &r
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:       token,
		UserID:      updated.ID,
		DisplayName: updated.DisplayName,
		Role:        role,
	})
}

// POST /licenses (admin)
func (h *AuthHandler) CreateLicense(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required,oneof=client developer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	lic, err := h.svc.CreateLicense(models.UserRole(input.Role), nil)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lic)
}
