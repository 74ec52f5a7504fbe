package domain

import "errors"

var (
	ErrStationNotFound      = errors.New("station not found")
	ErrStationAlreadyExists = errors.New("station already exists")
	ErrCallerNotFound       = errors.New("caller not found")
	ErrCallerStopped        = errors.New("caller already stopped")
	ErrCallerConflict       = errors.New("caller modified concurrently")
	ErrImplausibleFix       = errors.New("fix outside operating area")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrInvalidBoundingBox   = errors.New("invalid bounding box")
	ErrInvalidLocation      = errors.New("invalid location")
	ErrInvalidReport        = errors.New("invalid bearing report")
)
