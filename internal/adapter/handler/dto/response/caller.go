package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
)

type ReportResponse struct {
	Station    string    `json:"station"`
	Bearing    string    `json:"bearing"`
	ReceivedAt time.Time `json:"received_at"`
}

type CallerResponse struct {
	ID        uuid.UUID        `json:"id"`
	Channel   string           `json:"channel"`
	Reports   []ReportResponse `json:"reports"`
	Fix       FixResponse      `json:"fix"`
	StartTime time.Time        `json:"start_time"`
	StopTime  *time.Time       `json:"stop_time"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CallersListResponse struct {
	Callers    []CallerResponse   `json:"callers"`
	Pagination PaginationResponse `json:"pagination"`
}

type BearingLinesResponse struct {
	Lines []BearingLineResponse `json:"lines"`
}

func CallerFromEntity(c *entity.Caller) CallerResponse {
	resp := CallerResponse{
		ID:        c.ID,
		Channel:   c.Channel,
		Reports:   make([]ReportResponse, 0, len(c.Reports)),
		Fix:       FixFromValue(c.Fix),
		StartTime: c.StartTime,
		StopTime:  c.StopTime,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, r := range c.Reports {
		resp.Reports = append(resp.Reports, ReportResponse{
			Station:    r.Station,
			Bearing:    r.Bearing,
			ReceivedAt: r.ReceivedAt,
		})
	}
	return resp
}

func CallersFromEntities(callers []entity.Caller) []CallerResponse {
	result := make([]CallerResponse, 0, len(callers))
	for _, c := range callers {
		result = append(result, CallerFromEntity(&c))
	}
	return result
}
