package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/geodesy"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/httputil"
)

// writeFixError answers for failures raised while triangulating. It reports
// false when err is not one of them.
func writeFixError(c *gin.Context, err error) bool {
	var (
		parseErr *geodesy.ParseError
		geomErr  *geodesy.DegenerateGeometryError
	)

	switch {
	case errors.As(err, &parseErr):
		httputil.HandleError(c, apperror.New("MALFORMED_ANGLE", parseErr.Error(), http.StatusBadRequest))
	case errors.Is(err, domain.ErrInvalidReport):
		httputil.HandleError(c, apperror.BadRequest(err.Error()))
	case errors.Is(err, domain.ErrStationNotFound):
		httputil.HandleError(c, apperror.NotFound("station"))
	case errors.As(err, &geomErr):
		httputil.HandleError(c, apperror.Unprocessable("DEGENERATE_GEOMETRY", geomErr.Error()))
	case errors.Is(err, domain.ErrImplausibleFix):
		httputil.HandleError(c, apperror.Unprocessable("IMPLAUSIBLE_FIX", "fix outside operating area"))
	default:
		return false
	}
	return true
}
