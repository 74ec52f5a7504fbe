package geodesy

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// ParseAngle converts a DMS string such as `32° 30' 00" S` into signed
// decimal degrees. Only the first three digit runs are read. A bearing
// carries no hemisphere letter and stays unsigned.
func ParseAngle(text string) (Degrees, error) {
	runs := digitRun.FindAllString(text, -1)
	if len(runs) < 3 {
		return 0, &ParseError{Input: text, Groups: len(runs)}
	}

	var parts [3]float64
	for i := range parts {
		v, err := strconv.ParseFloat(runs[i], 64)
		if err != nil {
			return 0, &ParseError{Input: text, Groups: i}
		}
		parts[i] = v
	}

	minutes := parts[1] + parts[2]/60
	value := parts[0] + minutes/60

	if strings.ContainsAny(text, "SW") {
		value = -value
	}
	return Degrees(value), nil
}

// FormatLatLong renders a signed latitude/longitude pair as DMS strings.
func FormatLatLong(lat, lon Degrees) (string, string) {
	return FormatAngle(lat, 'N', 'S'), FormatAngle(lon, 'E', 'W')
}

// FormatAngle truncates value to whole arcseconds. The truncation happens
// once on the total so 5.1 renders as 5° 06' 00" rather than 5° 05' 59".
func FormatAngle(value Degrees, pos, neg byte) string {
	hemisphere := pos
	v := float64(value)
	if v < 0 {
		hemisphere = neg
		v = -v
	}

	// Decomposed in float64 so magnitudes past the int64 range stay well formed.
	var deg, mins, secs float64
	total := math.Trunc(v*3600 + 1e-6)
	if math.IsInf(total, 0) {
		deg = math.Trunc(v)
	} else {
		rem := math.Mod(total, 3600)
		deg = math.Trunc((total - rem) / 3600)
		mins = math.Trunc(rem / 60)
		secs = math.Mod(rem, 60)
	}

	return fmt.Sprintf("%.0f° %02.0f' %02.0f\" %c", deg, mins, secs, hemisphere)
}
