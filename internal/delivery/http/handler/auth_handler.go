package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/usecase/auth"
)

type AuthHandler struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthHandler(authUseCase *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// Register handles signup. The form arrives as multipart so the optional
// photo can ride along; a photo failure never fails the registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	var result *auth.AuthResult
	var err error
	if file, _, ferr := c.Request.FormFile("photo"); ferr == nil {
		defer file.Close()
		result, err = h.authUseCase.Register(c.Request.Context(), &req, file)
	} else {
		result, err = h.authUseCase.Register(c.Request.Context(), &req, nil)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
		case errors.Is(err, domain.ErrInvalidMobile):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "enter a valid Nepali mobile number (10 digits starting with 98/97/96)"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "login failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authorization token"})
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "logout failed"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "logged out successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString("uid")

	user, profile, err := h.authUseCase.Me(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"profile":  profile,
		"is_admin": c.GetBool("is_admin"),
	})
}
