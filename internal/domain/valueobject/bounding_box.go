package valueobject

// BoundingBox is the operating area a fix must fall in to be plausible.
// A box whose MinLng is greater than its MaxLng wraps across the antimeridian.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func NewBoundingBox(minLat, maxLat, minLng, maxLng float64) *BoundingBox {
	return &BoundingBox{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: maxLng}
}

func (bb *BoundingBox) IsValid() bool {
	return bb.MinLat <= bb.MaxLat &&
		bb.MinLat >= -90 && bb.MaxLat <= 90 &&
		bb.MinLng >= -180 && bb.MinLng <= 180 &&
		bb.MaxLng >= -180 && bb.MaxLng <= 180
}

func (bb *BoundingBox) wrapsAntimeridian() bool {
	return bb.MinLng > bb.MaxLng
}

func (bb *BoundingBox) Contains(lat, lng float64) bool {
	if lat < bb.MinLat || lat > bb.MaxLat {
		return false
	}
	if bb.wrapsAntimeridian() {
		return lng >= bb.MinLng || lng <= bb.MaxLng
	}
	return lng >= bb.MinLng && lng <= bb.MaxLng
}

func (bb *BoundingBox) ContainsFix(f *Fix) bool {
	return f != nil && bb.Contains(f.Latitude, f.Longitude)
}
