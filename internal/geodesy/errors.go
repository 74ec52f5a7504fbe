package geodesy

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedAngle     = errors.New("malformed angle")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

type ParseError struct {
	Input  string
	Groups int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing angle %q: found %d numeric groups, need 3", e.Input, e.Groups)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedAngle
}

type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: %s", e.Reason)
}

func (e *DegenerateGeometryError) Is(target error) bool {
	return target == ErrDegenerateGeometry
}
