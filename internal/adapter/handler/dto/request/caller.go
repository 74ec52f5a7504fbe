package request

import (
	"time"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
)

type ReportRequest struct {
	Station    string     `json:"station" binding:"required,max=64"`
	Bearing    string     `json:"bearing" binding:"required,max=64"`
	ReceivedAt *time.Time `json:"received_at"`
}

func (r ReportRequest) ToEntity() entity.Report {
	report := entity.Report{
		Station: r.Station,
		Bearing: r.Bearing,
	}
	if r.ReceivedAt != nil {
		report.ReceivedAt = r.ReceivedAt.UTC()
	}
	return report
}

func ReportsToEntities(reqs []ReportRequest) []entity.Report {
	if reqs == nil {
		return nil
	}
	reports := make([]entity.Report, 0, len(reqs))
	for _, r := range reqs {
		reports = append(reports, r.ToEntity())
	}
	return reports
}

type CreateCallerRequest struct {
	Channel   string          `json:"channel" binding:"required,max=32"`
	Reports   []ReportRequest `json:"reports" binding:"omitempty,dive"`
	StartTime *time.Time      `json:"start_time"`
	StopTime  *time.Time      `json:"stop_time"`
}

type UpdateCallerRequest struct {
	Channel  *string         `json:"channel" binding:"omitempty,max=32"`
	Reports  []ReportRequest `json:"reports" binding:"omitempty,dive"`
	StopTime *time.Time      `json:"stop_time"`
}

type ListCallersRequest struct {
	Page    int        `form:"page" binding:"omitempty,min=1"`
	PerPage int        `form:"per_page" binding:"omitempty,min=1,max=100"`
	Since   *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Channel string     `form:"channel" binding:"omitempty,max=32"`
}
