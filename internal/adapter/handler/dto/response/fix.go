package response

import (
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/fix"
)

// FixResponse carries null coordinates while no fix can be computed.
type FixResponse struct {
	Lat     *float64 `json:"lat"`
	Long    *float64 `json:"long"`
	LatDMS  string   `json:"lat_dms,omitempty"`
	LongDMS string   `json:"long_dms,omitempty"`
}

type BearingLineResponse struct {
	Station string           `json:"station"`
	Bearing float64          `json:"bearing"`
	Start   LocationResponse `json:"start"`
	End     LocationResponse `json:"end"`
}

type FixResultResponse struct {
	Fix   FixResponse           `json:"fix"`
	Lines []BearingLineResponse `json:"lines"`
}

func FixFromValue(f *valueobject.Fix) FixResponse {
	if f == nil {
		return FixResponse{}
	}
	lat, lng := f.Latitude, f.Longitude
	latDMS, lngDMS := f.Location().DMS()
	return FixResponse{
		Lat:     &lat,
		Long:    &lng,
		LatDMS:  latDMS,
		LongDMS: lngDMS,
	}
}

func BearingLinesFromResult(lines []fix.BearingLine) []BearingLineResponse {
	result := make([]BearingLineResponse, 0, len(lines))
	for _, l := range lines {
		result = append(result, BearingLineResponse{
			Station: l.Station,
			Bearing: float64(l.Bearing),
			Start:   LocationFromValue(l.Start),
			End:     LocationFromValue(l.End),
		})
	}
	return result
}
