package valueobject

import "github.com/marcos-nsantos/df-fix-backend/internal/geodesy"

// Fix is a triangulated transmitter position in decimal degrees. A nil
// *Fix means fewer than two receivers have reported.
type Fix struct {
	Latitude  float64
	Longitude float64
}

func NewFix(lat, lng geodesy.Degrees) *Fix {
	return &Fix{
		Latitude:  float64(lat),
		Longitude: float64(lng),
	}
}

func (f *Fix) Location() *Location {
	return NewLocation(f.Latitude, f.Longitude)
}
