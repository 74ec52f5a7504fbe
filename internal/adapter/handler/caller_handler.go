package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/caller"
)

type CallerHandler struct {
	callerSvc CallerService
}

func NewCallerHandler(callerSvc CallerService) *CallerHandler {
	return &CallerHandler{callerSvc: callerSvc}
}

func (h *CallerHandler) Create(c *gin.Context) {
	var req request.CreateCallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	input := caller.CreateInput{
		Channel:  req.Channel,
		Reports:  request.ReportsToEntities(req.Reports),
		StopTime: req.StopTime,
	}
	if req.StartTime != nil {
		input.StartTime = *req.StartTime
	}

	cl, err := h.callerSvc.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	httputil.Created(c, response.CallerFromEntity(cl))
}

// List replays callers, optionally only those started since a given time.
func (h *CallerHandler) List(c *gin.Context) {
	var req request.ListCallersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	callers, pageInfo, err := h.callerSvc.List(c.Request.Context(), caller.ListInput{
		Page:    req.Page,
		PerPage: req.PerPage,
		Since:   req.Since,
		Channel: req.Channel,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.CallersListResponse{
		Callers:    response.CallersFromEntities(callers),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *CallerHandler) Get(c *gin.Context) {
	id, ok := parseCallerID(c)
	if !ok {
		return
	}

	cl, err := h.callerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	httputil.OK(c, response.CallerFromEntity(cl))
}

func (h *CallerHandler) Update(c *gin.Context) {
	id, ok := parseCallerID(c)
	if !ok {
		return
	}

	var req request.UpdateCallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	cl, err := h.callerSvc.Update(c.Request.Context(), id, caller.UpdateInput{
		Channel:  req.Channel,
		Reports:  request.ReportsToEntities(req.Reports),
		StopTime: req.StopTime,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	httputil.OK(c, response.CallerFromEntity(cl))
}

func (h *CallerHandler) AddReport(c *gin.Context) {
	id, ok := parseCallerID(c)
	if !ok {
		return
	}

	var req request.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	report := req.ToEntity()
	if report.ReceivedAt.IsZero() {
		report.ReceivedAt = time.Now().UTC()
	}

	cl, err := h.callerSvc.AddReport(c.Request.Context(), id, report)
	if err != nil {
		h.handleError(c, err)
		return
	}

	httputil.OK(c, response.CallerFromEntity(cl))
}

func (h *CallerHandler) Delete(c *gin.Context) {
	id, ok := parseCallerID(c)
	if !ok {
		return
	}

	if err := h.callerSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	httputil.NoContent(c)
}

func (h *CallerHandler) Lines(c *gin.Context) {
	id, ok := parseCallerID(c)
	if !ok {
		return
	}

	lines, err := h.callerSvc.BearingLines(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	httputil.OK(c, response.BearingLinesResponse{
		Lines: response.BearingLinesFromResult(lines),
	})
}

func (h *CallerHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCallerNotFound):
		httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "caller not found")
	case errors.Is(err, domain.ErrCallerStopped):
		httputil.HandleError(c, apperror.Conflict("CALLER_STOPPED", "caller already stopped"))
	case errors.Is(err, domain.ErrCallerConflict):
		httputil.HandleError(c, apperror.Conflict("CALLER_CONFLICT", "caller was modified concurrently, retry"))
	case writeFixError(c, err):
	default:
		httputil.InternalError(c)
	}
}

func parseCallerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid caller id")
		return uuid.Nil, false
	}
	return id, true
}
