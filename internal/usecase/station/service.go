package station

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/geodesy"
)

type Service struct {
	stationRepo repository.StationRepository
}

func NewService(stationRepo repository.StationRepository) *Service {
	return &Service{stationRepo: stationRepo}
}

type CreateInput struct {
	Name     string
	Location *valueobject.Location
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Station, error) {
	if input.Location == nil || !input.Location.IsValid() {
		return nil, domain.ErrInvalidLocation
	}

	exists, err := s.stationRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("checking station name: %w", err)
	}
	if exists {
		return nil, domain.ErrStationAlreadyExists
	}

	station := entity.NewStation(input.Name, input.Location)
	if err := s.stationRepo.Create(ctx, station); err != nil {
		return nil, fmt.Errorf("creating station: %w", err)
	}

	return station, nil
}

func (s *Service) List(ctx context.Context) ([]entity.Station, error) {
	stations, err := s.stationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stations: %w", err)
	}
	return stations, nil
}

func (s *Service) GetByName(ctx context.Context, name string) (*entity.Station, error) {
	return s.stationRepo.GetByName(ctx, name)
}

func (s *Service) Move(ctx context.Context, name string, loc *valueobject.Location) (*entity.Station, error) {
	if loc == nil || !loc.IsValid() {
		return nil, domain.ErrInvalidLocation
	}

	station, err := s.stationRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	station.Move(loc)
	if err := s.stationRepo.Update(ctx, station); err != nil {
		return nil, fmt.Errorf("updating station: %w", err)
	}
	return station, nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	return s.stationRepo.Delete(ctx, name)
}

type NearestResult struct {
	Station  *entity.Station
	Distance float64
	// Bearing is the bearing from the station towards the queried point.
	Bearing geodesy.Degrees
}

// Nearest finds the station closest to loc, used to suggest which RFF
// should take a bearing on a new signal.
func (s *Service) Nearest(ctx context.Context, loc *valueobject.Location) (*NearestResult, error) {
	if loc == nil || !loc.IsValid() {
		return nil, domain.ErrInvalidLocation
	}

	stations, err := s.stationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stations: %w", err)
	}
	if len(stations) == 0 {
		return nil, domain.ErrStationNotFound
	}

	target := loc.GeoPoint()
	var best *NearestResult
	for i := range stations {
		from := stations[i].Location.GeoPoint()
		d := geodesy.Distance(from, target)
		if best == nil || d < best.Distance {
			best = &NearestResult{
				Station:  &stations[i],
				Distance: d,
				Bearing:  geodesy.InitialBearing(from, target),
			}
		}
	}
	return best, nil
}
