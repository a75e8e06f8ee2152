package boundary

// Record is one normalized administrative unit, ready to be written to its
// level's table. Lat/Lng is the area-weighted centroid of the simplified
// boundary, the min/max fields its bounding box, and Boundaries the WKB
// encoding of the simplified polygon or multipolygon.
//
// ParentID is nil for provinces and for ids that carry no dot separator;
// such orphans are written detached rather than rejected.
type Record struct {
	ID         string
	Name       string
	ParentID   *string
	Lat        float64
	Lng        float64
	MinLat     float64
	MaxLat     float64
	MinLng     float64
	MaxLng     float64
	Boundaries []byte
}
