package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/station"
)

type StationResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Location  LocationResponse `json:"location"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type StationsListResponse struct {
	Stations []StationResponse `json:"stations"`
}

type NearestStationResponse struct {
	Station        StationResponse `json:"station"`
	DistanceMeters float64         `json:"distance_meters"`
	Bearing        float64         `json:"bearing"`
}

func StationFromEntity(s *entity.Station) StationResponse {
	return StationResponse{
		ID:        s.ID,
		Name:      s.Name,
		Location:  LocationFromValue(s.Location),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func StationsFromEntities(stations []entity.Station) []StationResponse {
	result := make([]StationResponse, 0, len(stations))
	for _, s := range stations {
		result = append(result, StationFromEntity(&s))
	}
	return result
}

func NearestFromResult(r *station.NearestResult) NearestStationResponse {
	return NearestStationResponse{
		Station:        StationFromEntity(r.Station),
		DistanceMeters: r.Distance,
		Bearing:        float64(r.Bearing),
	}
}
