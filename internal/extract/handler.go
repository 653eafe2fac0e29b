package extract

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler exposes text extraction over HTTP.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
}

type extractResponse struct {
	Text string `json:"text"`
}

func (h *Handler) extract(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	text, err := Text(data, mimeType, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedFormat):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_format", "Unsupported format. Try PDF or DOCX.", nil)
		case errors.Is(err, ErrCorruptDocument):
			respond.Error(c, http.StatusUnprocessableEntity, "corrupt_document", "Could not read the uploaded file.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "extraction failed", nil)
		}
		return
	}

	respond.OK(c, extractResponse{Text: text})
}
