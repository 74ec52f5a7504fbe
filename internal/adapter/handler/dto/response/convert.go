package response

type DecimalResponse struct {
	Angle   string  `json:"angle"`
	Decimal float64 `json:"decimal"`
}

type DMSResponse struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
