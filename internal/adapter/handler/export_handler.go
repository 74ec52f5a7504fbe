package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/export"
)

type ExportHandler struct {
	exportSvc ExportService
}

func NewExportHandler(exportSvc ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

func (h *ExportHandler) Create(c *gin.Context) {
	var req request.ExportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.ValidationError(c, err)
			return
		}
	}

	var input export.Input
	if req.Since != nil {
		input.Since = *req.Since
	}

	result, err := h.exportSvc.Export(c.Request.Context(), input)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.ExportResponse{
		Key:       result.Key,
		URL:       result.URL,
		Callers:   result.Callers,
		ExpiresAt: result.ExpiresAt,
	})
}
