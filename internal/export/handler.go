package export

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studybot-backend/internal/shared/metrics"
	"studybot-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers for artifact export.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/export", h.export)
}

type exportRequest struct {
	Kind     string `json:"kind"`
	Content  string `json:"content"`
	Format   string `json:"format"`
	FileName string `json:"fileName,omitempty"`
}

func (h *Handler) export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	format, err := ParseFormat(req.Format)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "format must be markdown or docx", nil)
		return
	}
	c.Set("exportFormat", string(format))

	fileName, err := FileName(req.Kind, req.FileName, format)
	if err != nil {
		metrics.IncExportFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	data, err := Export(req.Content, format)
	if err != nil {
		metrics.IncExportFailed()
		switch {
		case errors.Is(err, ErrEmptyContent):
			respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "export_failed", "Unable to export artifact", nil)
		}
		return
	}
	metrics.IncExportCompleted()

	c.Header("Content-Disposition", `attachment; filename="`+strings.ReplaceAll(fileName, `"`, "")+`"`)
	c.Data(http.StatusOK, format.ContentType(), data)
}
