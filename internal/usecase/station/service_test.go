package station_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/geodesy"
	"github.com/marcos-nsantos/df-fix-backend/internal/mocks"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/station"
)

func TestService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := station.NewService(stationRepo)

		stationRepo.EXPECT().ExistsByName(gomock.Any(), "ALPHA").Return(false, nil)
		stationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		st, err := svc.Create(context.Background(), station.CreateInput{
			Name:     "ALPHA",
			Location: valueobject.NewLocation(32, -117),
		})

		require.NoError(t, err)
		assert.Equal(t, "ALPHA", st.Name)
		assert.Equal(t, 32.0, st.Location.Latitude)
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := station.NewService(stationRepo)

		stationRepo.EXPECT().ExistsByName(gomock.Any(), "ALPHA").Return(true, nil)

		_, err := svc.Create(context.Background(), station.CreateInput{
			Name:     "ALPHA",
			Location: valueobject.NewLocation(32, -117),
		})

		assert.ErrorIs(t, err, domain.ErrStationAlreadyExists)
	})

	t.Run("invalid location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := station.NewService(mocks.NewMockStationRepository(ctrl))

		_, err := svc.Create(context.Background(), station.CreateInput{
			Name:     "ALPHA",
			Location: valueobject.NewLocation(95, -117),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidLocation)
	})
}

func TestService_Move(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := station.NewService(stationRepo)

		existing := entity.NewStation("ALPHA", valueobject.NewLocation(32, -117))
		stationRepo.EXPECT().GetByName(gomock.Any(), "ALPHA").Return(existing, nil)
		stationRepo.EXPECT().Update(gomock.Any(), existing).Return(nil)

		st, err := svc.Move(context.Background(), "ALPHA", valueobject.NewLocation(33, -116))

		require.NoError(t, err)
		assert.Equal(t, 33.0, st.Location.Latitude)
		assert.Equal(t, -116.0, st.Location.Longitude)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := station.NewService(stationRepo)

		stationRepo.EXPECT().GetByName(gomock.Any(), "GHOST").Return(nil, domain.ErrStationNotFound)

		_, err := svc.Move(context.Background(), "GHOST", valueobject.NewLocation(33, -116))
		assert.ErrorIs(t, err, domain.ErrStationNotFound)
	})
}

func TestService_Nearest(t *testing.T) {
	alpha := entity.NewStation("ALPHA", valueobject.NewLocation(32, -117))
	bravo := entity.NewStation("BRAVO", valueobject.NewLocation(32, -118))

	t.Run("picks the closest station", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := station.NewService(stationRepo)

		stationRepo.EXPECT().List(gomock.Any()).Return([]entity.Station{*bravo, *alpha}, nil)

		target := valueobject.NewLocation(32.1, -117.1)
		result, err := svc.Nearest(context.Background(), target)

		require.NoError(t, err)
		assert.Equal(t, "ALPHA", result.Station.Name)
		assert.InDelta(t, geodesy.Distance(alpha.Location.GeoPoint(), target.GeoPoint()), result.Distance, 1e-6)
		assert.InDelta(t, float64(geodesy.InitialBearing(alpha.Location.GeoPoint(), target.GeoPoint())), float64(result.Bearing), 1e-9)
		assert.True(t, result.Bearing > 270 && result.Bearing < 360)
	})

	t.Run("no stations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stationRepo := mocks.NewMockStationRepository(ctrl)
		svc := station.NewService(stationRepo)

		stationRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		_, err := svc.Nearest(context.Background(), valueobject.NewLocation(0, 0))
		assert.ErrorIs(t, err, domain.ErrStationNotFound)
	})

	t.Run("invalid location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := station.NewService(mocks.NewMockStationRepository(ctrl))

		_, err := svc.Nearest(context.Background(), valueobject.NewLocation(0, 200))
		assert.ErrorIs(t, err, domain.ErrInvalidLocation)
	})
}
