package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"fitcoach/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	exportFileName = "fitness_data.csv"
	maxImportBytes = 5 << 20
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

type ImportResponse struct {
	Rows      int                 `json:"rows"`
	Data      []map[string]string `json:"data"`
	Persisted bool                `json:"persisted"`
}

// ExportCSV streams the whole history as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, err := h.exportService.Rows(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to export data")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := service.WriteExportCSV(c.Writer, rows); err != nil {
		_ = c.Error(err)
	}
}

// ArchiveExport godoc
// @Summary Upload the CSV export to object storage
// @Tags Export
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.ArchiveResult
// @Failure 503 {object} gin.H "Object storage not configured"
// @Router /export/archive [post]
func (h *ExportHandler) ArchiveExport(c *gin.Context) {
	res, err := h.exportService.Archive(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		abortWithServiceError(c, err, "Failed to archive export")
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ImportCSV parses an uploaded CSV (multipart field "file" or a raw text/csv body)
// and echoes the rows back. Nothing is stored. Uploads over maxImportBytes get 413.
func (h *ExportHandler) ImportCSV(c *gin.Context) {
	var src io.Reader
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Could not read uploaded file")
			return
		}
		defer f.Close()
		src = f
	} else {
		src = c.Request.Body
	}

	// read one byte past the limit so an oversized upload is rejected, not cut short
	data, err := io.ReadAll(io.LimitReader(src, maxImportBytes+1))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	if len(data) > maxImportBytes {
		abortWithError(c, http.StatusRequestEntityTooLarge, "CSV file exceeds the 5 MB import limit")
		return
	}

	rows, err := h.exportService.ParseImport(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCSV) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithServiceError(c, err, "Failed to import data")
		return
	}
	c.JSON(http.StatusOK, ImportResponse{Rows: len(rows), Data: rows, Persisted: false})
}
