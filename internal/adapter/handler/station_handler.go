package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/station"
)

type StationHandler struct {
	stationSvc StationService
}

func NewStationHandler(stationSvc StationService) *StationHandler {
	return &StationHandler{stationSvc: stationSvc}
}

func (h *StationHandler) Create(c *gin.Context) {
	var req request.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	st, err := h.stationSvc.Create(c.Request.Context(), station.CreateInput{
		Name:     req.Name,
		Location: valueobject.NewLocation(*req.Latitude, *req.Longitude),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStationAlreadyExists):
			httputil.HandleError(c, apperror.Conflict("STATION_EXISTS", "station already exists"))
		case errors.Is(err, domain.ErrInvalidLocation):
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_LOCATION", "invalid coordinates")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.Created(c, response.StationFromEntity(st))
}

func (h *StationHandler) List(c *gin.Context) {
	stations, err := h.stationSvc.List(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.StationsListResponse{
		Stations: response.StationsFromEntities(stations),
	})
}

func (h *StationHandler) Get(c *gin.Context) {
	st, err := h.stationSvc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, domain.ErrStationNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "station not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.StationFromEntity(st))
}

func (h *StationHandler) Move(c *gin.Context) {
	var req request.MoveStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	st, err := h.stationSvc.Move(c.Request.Context(), c.Param("name"), valueobject.NewLocation(*req.Latitude, *req.Longitude))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStationNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "station not found")
		case errors.Is(err, domain.ErrInvalidLocation):
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_LOCATION", "invalid coordinates")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.StationFromEntity(st))
}

func (h *StationHandler) Delete(c *gin.Context) {
	if err := h.stationSvc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		if errors.Is(err, domain.ErrStationNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "station not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}

// Nearest suggests the station best placed to take a bearing on a point.
func (h *StationHandler) Nearest(c *gin.Context) {
	var req request.NearestStationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.stationSvc.Nearest(c.Request.Context(), valueobject.NewLocation(*req.Latitude, *req.Longitude))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStationNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "no stations registered")
		case errors.Is(err, domain.ErrInvalidLocation):
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_LOCATION", "invalid coordinates")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.NearestFromResult(result))
}
