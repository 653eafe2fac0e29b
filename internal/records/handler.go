package records

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/llm"
	"resume-tailor/internal/shared/server/middleware"
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

// RegisterRoutes attaches improvement routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/improvements", h.improve)
	rg.GET("/improvements", h.list)
	rg.GET("/improvements/:id", h.get)
}

type improveRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) improve(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req improveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	record, err := h.Svc.Improve(c.Request.Context(), userID, req.ResumeText, req.JobDescription)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Both inputs are required.", nil)
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "ai_not_configured", "No AI provider is configured.", nil)
		case errors.Is(err, llm.ErrMalformedResponse):
			respond.Error(c, http.StatusBadGateway, "malformed_ai_response", "AI returned an unusable response. Try again.", nil)
		case errors.Is(err, llm.ErrRequestFailed):
			respond.Error(c, http.StatusBadGateway, "ai_request_failed", "AI failed to process. Check API connection.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "improvement failed", nil)
		}
		return
	}

	c.Set("recordId", record.ID)
	respond.JSON(c, http.StatusCreated, record)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	records, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list records", nil)
		return
	}
	respond.OK(c, records)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	record, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "record not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to load record", nil)
		}
		return
	}
	respond.OK(c, record)
}
