package geodesy

import "math"

const (
	// domainTolerance is how far an inverse trig argument may drift past
	// ±1 before the configuration is treated as degenerate.
	domainTolerance = 1e-9
	zeroTolerance   = 1e-12

	// baselineTolerance absorbs the acos noise near ±1 in the station
	// bearings while staying well under one arcsecond (4.8e-6 rad).
	baselineTolerance = 1e-7
)

// Intersect returns the point where the great circles leaving
// (lat1, lon1) on bearing1 and (lat2, lon2) on bearing2 cross.
// Inputs are radians, the result is decimal degrees.
//
// Parallel or divergent bearings are not detected: the closed form still
// returns a crossing point, possibly on the far side of the globe.
func Intersect(lat1, lon1, bearing1, lat2, lon2, bearing2 Radians) (Degrees, Degrees, error) {
	φ1, λ1, θ13 := float64(lat1), float64(lon1), float64(bearing1)
	φ2, λ2, θ23 := float64(lat2), float64(lon2), float64(bearing2)

	Δφ := φ2 - φ1
	Δλ := λ2 - λ1

	h := sq(math.Sin(Δφ/2)) + math.Cos(φ1)*math.Cos(φ2)*sq(math.Sin(Δλ/2))
	h, err := clampUnit(h, "station separation")
	if err != nil {
		return 0, 0, err
	}
	δ12 := 2 * math.Asin(math.Sqrt(math.Max(h, 0)))

	θa, err := baselineBearing(φ1, φ2, δ12)
	if err != nil {
		return 0, 0, err
	}
	θb, err := baselineBearing(φ2, φ1, δ12)
	if err != nil {
		return 0, 0, err
	}

	var θ12, θ21 float64
	if math.Sin(Δλ) > 0 {
		θ12 = θa
		θ21 = 2*math.Pi - θb
	} else {
		θ12 = 2*math.Pi - θa
		θ21 = θb
	}

	α1 := θ13 - θ12
	α2 := θ21 - θ23

	onBaseline1 := math.Abs(math.Sin(α1)) < baselineTolerance
	onBaseline2 := math.Abs(math.Sin(α2)) < baselineTolerance
	switch {
	case onBaseline1 && onBaseline2:
		return 0, 0, &DegenerateGeometryError{Reason: "both bearings lie on the station baseline"}
	case onBaseline1:
		// Line 1 runs through station 2, so station 2 is the only crossing on line 2.
		return lat2.Degrees(), NormalizeLongitude(lon2.Degrees()), nil
	case onBaseline2:
		return lat1.Degrees(), NormalizeLongitude(lon1.Degrees()), nil
	}

	cosα3, err := clampUnit(-math.Cos(α1)*math.Cos(α2)+math.Sin(α1)*math.Sin(α2)*math.Cos(δ12), "vertex angle")
	if err != nil {
		return 0, 0, err
	}
	α3 := math.Acos(cosα3)

	δ13 := math.Atan2(
		math.Sin(δ12)*math.Sin(α1)*math.Sin(α2),
		math.Cos(α2)+math.Cos(α1)*math.Cos(α3),
	)

	sinφ3, err := clampUnit(math.Sin(φ1)*math.Cos(δ13)+math.Cos(φ1)*math.Sin(δ13)*math.Cos(θ13), "fix latitude")
	if err != nil {
		return 0, 0, err
	}
	φ3 := math.Asin(sinφ3)

	Δλ13 := math.Atan2(
		math.Sin(θ13)*math.Sin(δ13)*math.Cos(φ1),
		math.Cos(δ13)-math.Sin(φ1)*math.Sin(φ3),
	)
	λ3 := λ1 + Δλ13

	return Radians(φ3).Degrees(), NormalizeLongitude(Radians(λ3).Degrees()), nil
}

// baselineBearing is the unsigned angle at the station at latitude from
// between north and the arc towards the station at latitude to.
func baselineBearing(from, to, δ12 float64) (float64, error) {
	denominator := math.Sin(δ12) * math.Cos(from)
	if math.Abs(denominator) < zeroTolerance {
		return 0, &DegenerateGeometryError{Reason: "stations are coincident, antipodal or polar"}
	}
	c, err := clampUnit((math.Sin(to)-math.Sin(from)*math.Cos(δ12))/denominator, "station bearing")
	if err != nil {
		return 0, err
	}
	return math.Acos(c), nil
}

func clampUnit(x float64, what string) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, &DegenerateGeometryError{Reason: what + " is not a number"}
	case x > 1+domainTolerance || x < -1-domainTolerance:
		return 0, &DegenerateGeometryError{Reason: what + " is outside the inverse trig domain"}
	case x > 1:
		return 1, nil
	case x < -1:
		return -1, nil
	}
	return x, nil
}

func sq(x float64) float64 {
	return x * x
}
