package mapfile

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/floormap/geom"
)

// Feature kinds written to the "kind" property.
const (
	KindWall    = "wall"
	KindDoorway = "doorway"
	KindBeacon  = "beacon"
)

// FeatureCollection renders contours (grid-cell units, as produced by the
// pipeline) together with the map's doorways and beacons as GeoJSON in world
// meters. Coordinates are planar X/Z, not longitude/latitude.
func (m *Map) FeatureCollection(contours []geom.Polyline) (*geojson.FeatureCollection, error) {
	g, err := m.Grid()
	if err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	for i, pl := range contours {
		ls := make(orb.LineString, len(pl))
		for j, p := range pl {
			w := g.PointToWorld(p)
			ls[j] = orb.Point{w.X, w.Y}
		}
		f := geojson.NewFeature(ls)
		f.Properties["kind"] = KindWall
		f.Properties["index"] = i
		fc.Append(f)
	}
	for _, d := range m.Doorways {
		f := geojson.NewFeature(orb.LineString{{d.A.X, d.A.Y}, {d.B.X, d.B.Y}})
		f.ID = encodeID(d.ID)
		f.Properties["kind"] = KindDoorway
		f.Properties["width"] = d.Width
		fc.Append(f)
	}
	for _, b := range m.Beacons {
		f := geojson.NewFeature(orb.Point{b.Position.X, b.Position.Y})
		f.ID = encodeID(b.ID)
		f.Properties["kind"] = KindBeacon
		f.Properties["name"] = b.Name
		fc.Append(f)
	}
	fc.ExtraMembers = geojson.Properties{"title": m.Title, "id": encodeID(m.ID)}
	return fc, nil
}
