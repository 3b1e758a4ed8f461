package api

import (
	"alcyxob/nutrition-app/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

type ExportRequest struct {
	Format string `json:"format" binding:"omitempty,oneof=json csv"`
}

// CreateExport godoc
// @Summary Export the diary to object storage
// @Tags Exports
// @Accept json
// @Produce json
// @Param export body ExportRequest false "json (default) or csv"
// @Success 201 {object} service.ExportResult
// @Router /exports [post]
func (h *ExportHandler) CreateExport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req ExportRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
			return
		}
	}

	result, err := h.exportService.CreateExport(c.Request.Context(), userID, req.Format)
	if err != nil {
		if errors.Is(err, service.ErrInvalidExportFormat) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithInternal(c, err, "Failed to export meal logs")
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ExportHandler) GetExports(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	results, err := h.exportService.ListExports(c.Request.Context(), userID)
	if err != nil {
		abortWithInternal(c, err, "Failed to list exports")
		return
	}
	c.JSON(http.StatusOK, results)
}
