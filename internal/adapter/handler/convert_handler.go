package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/geodesy"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/httputil"
)

type ConvertHandler struct {
	convertSvc ConvertService
}

func NewConvertHandler(convertSvc ConvertService) *ConvertHandler {
	return &ConvertHandler{convertSvc: convertSvc}
}

// ToDecimal godoc
//
//	@Summary		DMS to decimal degrees
//	@Tags			convert
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.ToDecimalRequest	true	"Angle text"
//	@Success		200		{object}	response.DecimalResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/convert/to-decimal [post]
func (h *ConvertHandler) ToDecimal(c *gin.Context) {
	var req request.ToDecimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	value, err := h.convertSvc.ToDecimal(req.Angle)
	if err != nil {
		if errors.Is(err, geodesy.ErrMalformedAngle) {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "MALFORMED_ANGLE", err.Error())
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.DecimalResponse{Angle: req.Angle, Decimal: value})
}

// ToDMS godoc
//
//	@Summary		Decimal degrees to DMS
//	@Tags			convert
//	@Produce		json
//	@Param			lat	query		number	true	"Latitude"
//	@Param			lng	query		number	true	"Longitude"
//	@Success		200	{object}	response.DMSResponse
//	@Failure		400	{object}	httputil.ErrorResponse
//	@Router			/convert/to-dms [get]
func (h *ConvertHandler) ToDMS(c *gin.Context) {
	var req request.ToDMSRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	dms, err := h.convertSvc.ToDMS(*req.Latitude, *req.Longitude)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLocation) {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_LOCATION", "invalid coordinates")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.DMSResponse{Latitude: dms.Latitude, Longitude: dms.Longitude})
}
