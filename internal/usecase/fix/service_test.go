package fix_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/geodesy"
	"github.com/marcos-nsantos/df-fix-backend/internal/mocks"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/fix"
)

type countingRecorder struct {
	computed int
	failed   []string
}

func (r *countingRecorder) FixComputed()            { r.computed++ }
func (r *countingRecorder) FixFailed(reason string) { r.failed = append(r.failed, reason) }

var (
	alpha = entity.NewStation("ALPHA", valueobject.NewLocation(32.0, -117.0))
	bravo = entity.NewStation("BRAVO", valueobject.NewLocation(32.0, -118.0))
)

func report(station, bearing string, at time.Time) entity.Report {
	return entity.Report{Station: station, Bearing: bearing, ReceivedAt: at}
}

func TestService_Compute(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fewer than two reports is not computable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := fix.NewService(stationRepo, fix.Config{}, nil)

		f, err := svc.Compute(context.Background(), []entity.Report{report("ALPHA", "315 0 0", t0)})

		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("one station reporting twice is not computable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := fix.NewService(stationRepo, fix.Config{}, nil)

		f, err := svc.Compute(context.Background(), []entity.Report{
			report("ALPHA", "315 0 0", t0),
			report("ALPHA", "316 0 0", t0.Add(time.Minute)),
		})

		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("converging bearings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		recorder := &countingRecorder{}
		svc := fix.NewService(stationRepo, fix.Config{}, recorder)

		stationRepo.EXPECT().GetByName(gomock.Any(), "ALPHA").Return(alpha, nil)
		stationRepo.EXPECT().GetByName(gomock.Any(), "BRAVO").Return(bravo, nil)

		f, err := svc.Compute(context.Background(), []entity.Report{
			report("ALPHA", `315° 00' 00"`, t0),
			report("BRAVO", `45° 00' 00"`, t0.Add(time.Second)),
		})

		require.NoError(t, err)
		require.NotNil(t, f)
		assert.InDelta(t, 32.42108786458018, f.Latitude, 1e-9)
		assert.InDelta(t, -117.5, f.Longitude, 1e-9)
		assert.Equal(t, 1, recorder.computed)
	})

	t.Run("uses the latest bearing of the two most recent stations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := fix.NewService(stationRepo, fix.Config{}, nil)

		stationRepo.EXPECT().GetByName(gomock.Any(), "ALPHA").Return(alpha, nil)
		stationRepo.EXPECT().GetByName(gomock.Any(), "BRAVO").Return(bravo, nil)

		f, err := svc.Compute(context.Background(), []entity.Report{
			report("CHARLIE", "10 0 0", t0),
			report("ALPHA", "200 0 0", t0.Add(time.Second)),
			report("BRAVO", "45 0 0", t0.Add(2*time.Second)),
			report("ALPHA", "315 0 0", t0.Add(3*time.Second)),
		})

		require.NoError(t, err)
		require.NotNil(t, f)
		assert.InDelta(t, 32.42108786458018, f.Latitude, 1e-9)
		assert.InDelta(t, -117.5, f.Longitude, 1e-9)
	})

	t.Run("unknown station", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		recorder := &countingRecorder{}
		svc := fix.NewService(stationRepo, fix.Config{}, recorder)

		stationRepo.EXPECT().GetByName(gomock.Any(), "ALPHA").Return(nil, domain.ErrStationNotFound)

		f, err := svc.Compute(context.Background(), []entity.Report{
			report("ALPHA", "315 0 0", t0),
			report("BRAVO", "45 0 0", t0.Add(time.Second)),
		})

		assert.Nil(t, f)
		assert.ErrorIs(t, err, domain.ErrStationNotFound)
		assert.Equal(t, []string{"station_not_found"}, recorder.failed)
	})

	t.Run("malformed bearing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		recorder := &countingRecorder{}
		svc := fix.NewService(stationRepo, fix.Config{}, recorder)

		stationRepo.EXPECT().GetByName(gomock.Any(), "ALPHA").Return(alpha, nil)

		_, err := svc.Compute(context.Background(), []entity.Report{
			report("ALPHA", "315 degrees", t0),
			report("BRAVO", "45 0 0", t0.Add(time.Second)),
		})

		assert.ErrorIs(t, err, geodesy.ErrMalformedAngle)
		assert.Equal(t, []string{"malformed_bearing"}, recorder.failed)
	})

	t.Run("co-located stations are degenerate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		recorder := &countingRecorder{}
		svc := fix.NewService(stationRepo, fix.Config{}, recorder)

		twin := entity.NewStation("TWIN", valueobject.NewLocation(32.0, -117.0))
		stationRepo.EXPECT().GetByName(gomock.Any(), "ALPHA").Return(alpha, nil)
		stationRepo.EXPECT().GetByName(gomock.Any(), "TWIN").Return(twin, nil)

		_, err := svc.Compute(context.Background(), []entity.Report{
			report("ALPHA", "315 0 0", t0),
			report("TWIN", "45 0 0", t0.Add(time.Second)),
		})

		assert.ErrorIs(t, err, geodesy.ErrDegenerateGeometry)
		assert.Equal(t, []string{"degenerate_geometry"}, recorder.failed)
	})

	t.Run("fix outside operating area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		recorder := &countingRecorder{}
		svc := fix.NewService(stationRepo, fix.Config{
			Area: valueobject.NewBoundingBox(30, 32.2, -119, -116),
		}, recorder)

		stationRepo.EXPECT().GetByName(gomock.Any(), "ALPHA").Return(alpha, nil)
		stationRepo.EXPECT().GetByName(gomock.Any(), "BRAVO").Return(bravo, nil)

		_, err := svc.Compute(context.Background(), []entity.Report{
			report("ALPHA", "315 0 0", t0),
			report("BRAVO", "45 0 0", t0.Add(time.Second)),
		})

		assert.ErrorIs(t, err, domain.ErrImplausibleFix)
		assert.Equal(t, []string{"implausible"}, recorder.failed)
	})

	t.Run("fix beyond range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := fix.NewService(stationRepo, fix.Config{MaxRange: 10_000}, nil)

		stationRepo.EXPECT().GetByName(gomock.Any(), "ALPHA").Return(alpha, nil)
		stationRepo.EXPECT().GetByName(gomock.Any(), "BRAVO").Return(bravo, nil)

		_, err := svc.Compute(context.Background(), []entity.Report{
			report("ALPHA", "315 0 0", t0),
			report("BRAVO", "45 0 0", t0.Add(time.Second)),
		})

		assert.ErrorIs(t, err, domain.ErrImplausibleFix)
	})
}

func TestService_BearingLines(t *testing.T) {
	t.Run("projects each report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := fix.NewService(stationRepo, fix.Config{}, nil)

		stationRepo.EXPECT().GetByName(gomock.Any(), "ALPHA").Return(alpha, nil)

		lines, err := svc.BearingLines(context.Background(), []entity.Report{
			report("ALPHA", "90 0 0", time.Now()),
		})

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "ALPHA", lines[0].Station)
		assert.InDelta(t, 90.0, float64(lines[0].Bearing), 1e-12)
		assert.Equal(t, alpha.Location, lines[0].Start)

		length := geodesy.Distance(lines[0].Start.GeoPoint(), lines[0].End.GeoPoint())
		assert.InDelta(t, fix.DefaultLineLength, length, 1e-3)
		assert.InDelta(t, 90.0, float64(geodesy.InitialBearing(lines[0].Start.GeoPoint(), lines[0].End.GeoPoint())), 1e-9)
	})

	t.Run("unknown station", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := fix.NewService(stationRepo, fix.Config{LineLength: 1000}, nil)

		stationRepo.EXPECT().GetByName(gomock.Any(), "GHOST").Return(nil, domain.ErrStationNotFound)

		_, err := svc.BearingLines(context.Background(), []entity.Report{report("GHOST", "90 0 0", time.Now())})
		assert.ErrorIs(t, err, domain.ErrStationNotFound)
	})
}

func TestValidateReport(t *testing.T) {
	assert.NoError(t, fix.ValidateReport(entity.Report{Station: "ALPHA", Bearing: `45° 30' 00"`}))
	assert.ErrorIs(t, fix.ValidateReport(entity.Report{Station: " ", Bearing: "45 0 0"}), domain.ErrInvalidReport)
	assert.ErrorIs(t, fix.ValidateReport(entity.Report{Station: "ALPHA", Bearing: "45"}), geodesy.ErrMalformedAngle)
}
