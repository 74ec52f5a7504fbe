package request

import "time"

type ExportRequest struct {
	Since *time.Time `json:"since"`
}
