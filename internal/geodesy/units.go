package geodesy

import "math"

// EarthRadius is the mean earth radius in metres used by the spherical model.
const EarthRadius = 6371e3

// Degrees and Radians are kept as distinct types so a missing conversion
// fails to compile instead of producing a wrong fix.
type Degrees float64

type Radians float64

func (d Degrees) Radians() Radians {
	return Radians(float64(d) * math.Pi / 180)
}

func (r Radians) Degrees() Degrees {
	return Degrees(float64(r) * 180 / math.Pi)
}

type GeoPoint struct {
	Lat Radians
	Lon Radians
}

func NewGeoPoint(lat, lon Degrees) GeoPoint {
	return GeoPoint{Lat: lat.Radians(), Lon: lon.Radians()}
}

func (p GeoPoint) LatDegrees() Degrees {
	return p.Lat.Degrees()
}

func (p GeoPoint) LonDegrees() Degrees {
	return p.Lon.Degrees()
}

// NormalizeLongitude maps a longitude into (-180, 180].
func NormalizeLongitude(lon Degrees) Degrees {
	l := math.Mod(float64(lon)+180, 360)
	if l <= 0 {
		l += 360
	}
	return Degrees(l - 180)
}
