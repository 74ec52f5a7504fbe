package fix

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/geodesy"
)

const DefaultLineLength = 160934.4

// Recorder receives the outcome of every fix computation.
type Recorder interface {
	FixComputed()
	FixFailed(reason string)
}

type nopRecorder struct{}

func (nopRecorder) FixComputed()     {}
func (nopRecorder) FixFailed(string) {}

type Config struct {
	// Area rejects fixes outside the operating area when set.
	Area *valueobject.BoundingBox
	// MaxRange rejects fixes further than this many metres from either station when positive.
	MaxRange float64
	// LineLength is the drawn length of a bearing line in metres.
	LineLength float64
}

type Service struct {
	stationRepo repository.StationRepository
	cfg         Config
	recorder    Recorder
}

func NewService(stationRepo repository.StationRepository, cfg Config, recorder Recorder) *Service {
	if cfg.LineLength <= 0 {
		cfg.LineLength = DefaultLineLength
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		stationRepo: stationRepo,
		cfg:         cfg,
		recorder:    recorder,
	}
}

// ValidateReport checks a report can take part in a fix without touching storage.
func ValidateReport(r entity.Report) error {
	if strings.TrimSpace(r.Station) == "" {
		return fmt.Errorf("%w: station is required", domain.ErrInvalidReport)
	}
	if _, err := geodesy.ParseAngle(r.Bearing); err != nil {
		return fmt.Errorf("bearing from %s: %w", r.Station, err)
	}
	return nil
}

// Compute triangulates the latest bearings from the two most recently
// reporting stations. It returns a nil fix, without error, while fewer
// than two distinct stations have reported.
func (s *Service) Compute(ctx context.Context, reports []entity.Report) (*valueobject.Fix, error) {
	pair := latestPair(reports)
	if pair == nil {
		return nil, nil
	}

	fix, err := s.intersect(ctx, pair[0], pair[1])
	if err != nil {
		s.recorder.FixFailed(failureReason(err))
		return nil, err
	}

	s.recorder.FixComputed()
	return fix, nil
}

func (s *Service) intersect(ctx context.Context, r1, r2 entity.Report) (*valueobject.Fix, error) {
	st1, b1, err := s.resolve(ctx, r1)
	if err != nil {
		return nil, err
	}
	st2, b2, err := s.resolve(ctx, r2)
	if err != nil {
		return nil, err
	}

	p1 := st1.Location.GeoPoint()
	p2 := st2.Location.GeoPoint()

	lat, lng, err := geodesy.Intersect(p1.Lat, p1.Lon, b1.Radians(), p2.Lat, p2.Lon, b2.Radians())
	if err != nil {
		return nil, fmt.Errorf("intersecting %s and %s: %w", st1.Name, st2.Name, err)
	}

	fix := valueobject.NewFix(lat, lng)
	if err := s.checkPlausible(fix, st1, st2); err != nil {
		return nil, err
	}
	return fix, nil
}

func (s *Service) resolve(ctx context.Context, r entity.Report) (*entity.Station, geodesy.Degrees, error) {
	station, err := s.stationRepo.GetByName(ctx, r.Station)
	if err != nil {
		return nil, 0, fmt.Errorf("resolving station %q: %w", r.Station, err)
	}
	bearing, err := geodesy.ParseAngle(r.Bearing)
	if err != nil {
		return nil, 0, fmt.Errorf("bearing from %s: %w", r.Station, err)
	}
	return station, bearing, nil
}

func (s *Service) checkPlausible(fix *valueobject.Fix, stations ...*entity.Station) error {
	if s.cfg.Area != nil && !s.cfg.Area.ContainsFix(fix) {
		return fmt.Errorf("%w: %.5f, %.5f", domain.ErrImplausibleFix, fix.Latitude, fix.Longitude)
	}
	if s.cfg.MaxRange > 0 {
		point := fix.Location().GeoPoint()
		for _, st := range stations {
			if d := geodesy.Distance(st.Location.GeoPoint(), point); d > s.cfg.MaxRange {
				return fmt.Errorf("%w: %.0f m from %s", domain.ErrImplausibleFix, d, st.Name)
			}
		}
	}
	return nil
}

type BearingLine struct {
	Station string
	Bearing geodesy.Degrees
	Start   *valueobject.Location
	End     *valueobject.Location
}

// BearingLines projects every report as a line of the configured length from its station.
func (s *Service) BearingLines(ctx context.Context, reports []entity.Report) ([]BearingLine, error) {
	lines := make([]BearingLine, 0, len(reports))
	for _, r := range reports {
		station, bearing, err := s.resolve(ctx, r)
		if err != nil {
			return nil, err
		}
		end := geodesy.Destination(station.Location.GeoPoint(), bearing.Radians(), s.cfg.LineLength)
		lines = append(lines, BearingLine{
			Station: station.Name,
			Bearing: bearing,
			Start:   station.Location,
			End:     valueobject.NewLocation(float64(end.LatDegrees()), float64(end.LonDegrees())),
		})
	}
	return lines, nil
}

// latestPair picks the newest report of the two stations that reported most recently.
func latestPair(reports []entity.Report) []entity.Report {
	if len(reports) < 2 {
		return nil
	}

	latest := make(map[string]int, len(reports))
	for i, r := range reports {
		j, ok := latest[r.Station]
		if !ok || !r.ReceivedAt.Before(reports[j].ReceivedAt) {
			latest[r.Station] = i
		}
	}
	if len(latest) < 2 {
		return nil
	}

	idx := make([]int, 0, len(latest))
	for _, i := range latest {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool {
		ra, rb := reports[idx[a]], reports[idx[b]]
		if ra.ReceivedAt.Equal(rb.ReceivedAt) {
			return idx[a] > idx[b]
		}
		return ra.ReceivedAt.After(rb.ReceivedAt)
	})

	first, second := reports[idx[0]], reports[idx[1]]
	if idx[1] < idx[0] {
		first, second = second, first
	}
	return []entity.Report{first, second}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrStationNotFound):
		return "station_not_found"
	case errors.Is(err, geodesy.ErrMalformedAngle):
		return "malformed_bearing"
	case errors.Is(err, geodesy.ErrDegenerateGeometry):
		return "degenerate_geometry"
	case errors.Is(err, domain.ErrImplausibleFix):
		return "implausible"
	default:
		return "internal"
	}
}
