package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/httputil"
)

type FixHandler struct {
	fixSvc FixService
}

func NewFixHandler(fixSvc FixService) *FixHandler {
	return &FixHandler{fixSvc: fixSvc}
}

// Compute godoc
//
//	@Summary		Triangulate a fix
//	@Description	Intersect the latest bearings of the two most recently reporting stations
//	@Tags			fix
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.FixRequest	true	"Bearing reports"
//	@Success		200		{object}	response.FixResultResponse
//	@Failure		400		{object}	httputil.ErrorResponse	"Malformed bearing"
//	@Failure		404		{object}	httputil.ErrorResponse	"Unknown station"
//	@Failure		422		{object}	httputil.ErrorResponse	"Bearings do not intersect"
//	@Router			/fix [post]
func (h *FixHandler) Compute(c *gin.Context) {
	var req request.FixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	reports := request.ReportsToEntities(req.Reports)
	ctx := c.Request.Context()

	f, err := h.fixSvc.Compute(ctx, reports)
	if err != nil {
		if !writeFixError(c, err) {
			httputil.InternalError(c)
		}
		return
	}

	lines, err := h.fixSvc.BearingLines(ctx, reports)
	if err != nil {
		if !writeFixError(c, err) {
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.FixResultResponse{
		Fix:   response.FixFromValue(f),
		Lines: response.BearingLinesFromResult(lines),
	})
}
