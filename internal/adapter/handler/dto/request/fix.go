package request

type FixRequest struct {
	Reports []ReportRequest `json:"reports" binding:"required,min=2,dive"`
}
