package valueobject

import "github.com/marcos-nsantos/df-fix-backend/internal/geodesy"

type Location struct {
	Latitude  float64
	Longitude float64
}

func NewLocation(lat, lng float64) *Location {
	return &Location{
		Latitude:  lat,
		Longitude: lng,
	}
}

func (l *Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

func (l *Location) GeoPoint() geodesy.GeoPoint {
	return geodesy.NewGeoPoint(geodesy.Degrees(l.Latitude), geodesy.Degrees(l.Longitude))
}

func (l *Location) DMS() (string, string) {
	return geodesy.FormatLatLong(geodesy.Degrees(l.Latitude), geodesy.Degrees(l.Longitude))
}
