package request

type ToDecimalRequest struct {
	Angle string `json:"angle" binding:"required,max=64"`
}

type ToDMSRequest struct {
	Latitude  *float64 `form:"lat" binding:"required"`
	Longitude *float64 `form:"lng" binding:"required"`
}
