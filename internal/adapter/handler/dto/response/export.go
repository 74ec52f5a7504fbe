package response

import "time"

type ExportResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Callers   int       `json:"callers"`
	ExpiresAt time.Time `json:"expires_at"`
}
