package response

import (
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/pagination"
)

type LocationResponse struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LatitudeDMS  string  `json:"latitude_dms"`
	LongitudeDMS string  `json:"longitude_dms"`
}

func LocationFromValue(l *valueobject.Location) LocationResponse {
	lat, lng := l.DMS()
	return LocationResponse{
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		LatitudeDMS:  lat,
		LongitudeDMS: lng,
	}
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
