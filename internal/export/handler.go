package export

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/records"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
)

// Handler serves downloads of stored improvements in the supported formats.
type Handler struct {
	Records *records.Service
}

func NewHandler(recordsSvc *records.Service) *Handler {
	return &Handler{Records: recordsSvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/improvements/:id/export/:format", h.download)
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	recordID := c.Param("id")
	format := c.Param("format")

	record, err := h.Records.Get(c.Request.Context(), userID, recordID)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "record not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load record", nil)
		return
	}

	var (
		data        []byte
		contentType string
		fileName    string
	)
	switch format {
	case "pdf":
		data, err = PDF(record.ImprovedContent)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to generate PDF", nil)
			return
		}
		contentType = "application/pdf"
		fileName = fmt.Sprintf("resume_%s.pdf", record.ID)
	case "doc":
		data = Word(record.ImprovedContent)
		contentType = "application/msword"
		fileName = fmt.Sprintf("resume_%s.doc", record.ID)
	case "md":
		data = Markdown(record.ImprovedContent)
		contentType = "text/markdown"
		fileName = fmt.Sprintf("optimized_resume_%s.md", record.ID)
	default:
		respond.Error(c, http.StatusBadRequest, "unsupported_format", ErrUnsupportedFormat.Error(), gin.H{"format": format})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, contentType, data)
}
