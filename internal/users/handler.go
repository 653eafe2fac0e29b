package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches auth routes to the router group. These run outside
// the session middleware: register and login are how a session starts.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.register)
	rg.POST("/auth/login", h.login)
	rg.POST("/auth/logout", h.logout)
	rg.GET("/auth/me", h.me)
}

type registerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	// Password is accepted for form compatibility but never stored or
	// verified; see Service.Login.
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "All fields are required.", nil)
		case errors.Is(err, ErrDuplicateEmail):
			respond.Error(c, http.StatusConflict, "duplicate_email", "Email already exists.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "registration failed", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, user)
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	user, err := h.Svc.Login(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "email is required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "user_not_found", "User not found. Please register.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "login failed", nil)
		}
		return
	}

	respond.OK(c, user)
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "logout failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) me(c *gin.Context) {
	user, ok, err := h.Svc.Current(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "session lookup failed", nil)
		return
	}
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	respond.OK(c, user)
}
