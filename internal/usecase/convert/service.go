package convert

import (
	"fmt"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/geodesy"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) ToDecimal(angle string) (float64, error) {
	d, err := geodesy.ParseAngle(angle)
	if err != nil {
		return 0, err
	}
	return float64(d), nil
}

type DMS struct {
	Latitude  string
	Longitude string
}

func (s *Service) ToDMS(lat, lng float64) (*DMS, error) {
	loc := valueobject.NewLocation(lat, lng)
	if !loc.IsValid() {
		return nil, fmt.Errorf("%w: %v, %v", domain.ErrInvalidLocation, lat, lng)
	}
	latStr, lngStr := loc.DMS()
	return &DMS{Latitude: latStr, Longitude: lngStr}, nil
}
