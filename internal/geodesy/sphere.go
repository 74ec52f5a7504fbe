package geodesy

import "math"

// InitialBearing is the bearing in [0, 360) at from along the great circle to to.
func InitialBearing(from, to GeoPoint) Degrees {
	φ1, φ2 := float64(from.Lat), float64(to.Lat)
	Δλ := float64(to.Lon - from.Lon)

	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)

	return Degrees(math.Mod(float64(Radians(math.Atan2(y, x)).Degrees())+360, 360))
}

// Distance is the haversine distance in metres.
func Distance(from, to GeoPoint) float64 {
	φ1, φ2 := float64(from.Lat), float64(to.Lat)
	Δφ := φ2 - φ1
	Δλ := float64(to.Lon - from.Lon)

	a := sq(math.Sin(Δφ/2)) + math.Cos(φ1)*math.Cos(φ2)*sq(math.Sin(Δλ/2))
	return EarthRadius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Destination walks distance metres from from on the given initial bearing.
func Destination(from GeoPoint, bearing Radians, distance float64) GeoPoint {
	δ := distance / EarthRadius
	θ := float64(bearing)
	φ1, λ1 := float64(from.Lat), float64(from.Lon)

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return GeoPoint{
		Lat: Radians(φ2),
		Lon: NormalizeLongitude(Radians(λ2).Degrees()).Radians(),
	}
}
