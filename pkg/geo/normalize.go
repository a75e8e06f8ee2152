package geo

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// DefaultTolerance is the simplification threshold in degrees. 0.0002
// degree is roughly 20 meters at the equator, small enough that the
// simplified boundary stays usable for point-in-area lookup.
const DefaultTolerance = 0.0002

// Boundary is the normalized form of one administrative boundary: the
// simplified geometry's centroid, bounding box, and WKB encoding.
type Boundary struct {
	Lat    float64
	Lng    float64
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
	WKB    []byte
}

// ParseFeature decodes one GeoJSON document. The source files are
// inconsistent: some hold a bare Feature, others a FeatureCollection whose
// first feature is the boundary.
func ParseFeature(data []byte) (*geojson.Feature, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding geojson document: %w", err)
	}

	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("decoding feature collection: %w", err)
		}
		if len(fc.Features) == 0 {
			return nil, fmt.Errorf("feature collection has no features")
		}
		return fc.Features[0], nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("decoding feature: %w", err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unrecognized geojson document type %q", probe.Type)
	}
}

// Normalize simplifies the geometry with Douglas-Peucker at the given
// tolerance (degrees) and derives centroid, bounding box, and WKB from the
// simplified result. Multipolygon inputs (island groups) keep all their
// parts. The input geometry is not modified.
func Normalize(geom orb.Geometry, tolerance float64) (*Boundary, error) {
	if geom == nil {
		return nil, fmt.Errorf("feature has no geometry")
	}
	switch geom.(type) {
	case orb.Polygon, orb.MultiPolygon:
	default:
		return nil, fmt.Errorf("unsupported geometry type %s", geom.GeoJSONType())
	}

	simplified := simplify.DouglasPeucker(tolerance).Simplify(orb.Clone(geom))

	// orb points are (x=lng, y=lat); re-pair explicitly.
	centroid, _ := planar.CentroidArea(simplified)
	bound := simplified.Bound()

	encoded, err := wkb.Marshal(simplified)
	if err != nil {
		return nil, fmt.Errorf("encoding wkb: %w", err)
	}

	return &Boundary{
		Lat:    centroid.Y(),
		Lng:    centroid.X(),
		MinLat: bound.Min.Y(),
		MaxLat: bound.Max.Y(),
		MinLng: bound.Min.X(),
		MaxLng: bound.Max.X(),
		WKB:    encoded,
	}, nil
}
