package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/respond"
)

// Handler wires the signup and login endpoints to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
	rg.POST("/login", h.login)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	userID, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			respond.Error(c, http.StatusConflict, "Email already exists")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error signing up")
		return
	}

	c.Set("userId", userID)
	respond.OK(c, gin.H{
		"message": "Signup successful",
		"userId":  userID,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	// A missing or malformed body simply fails the credential match below,
	// matching the original behavior of answering 401 rather than 400.
	_ = c.ShouldBindJSON(&req)

	user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error logging in")
		return
	}

	c.Set("userId", user.ID)
	respond.OK(c, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}
