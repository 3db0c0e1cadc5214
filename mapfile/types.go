package mapfile

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/floormap/distfield"
	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
)

// Doorway widths in meters.
const (
	DefaultDoorWidth = 0.9
	MinDoorWidth     = 0.4
)

// Map is one persisted floor map. Doorway and beacon positions are world
// X/Z coordinates in meters.
type Map struct {
	ID       uuid.UUID
	Title    string
	Spec     grid.Spec
	Cells    []grid.Cell
	Doorways []Doorway
	Beacons  []Beacon
	// Distance is the cached distance field; nil when never computed.
	Distance *distfield.Field
}

// Doorway is a passage placed across a wall.
type Doorway struct {
	ID    uuid.UUID
	A, B  geom.Point
	Width float64
}

// Beacon is a named point of interest.
type Beacon struct {
	ID       uuid.UUID
	Position geom.Point
	Name     string
}

// vec2 is a world X/Z pair encoded as a two-element array.
type vec2 [2]float64

func toVec(p geom.Point) vec2   { return vec2{p.X, p.Y} }
func (v vec2) point() geom.Point { return geom.Pt(v[0], v[1]) }

// Wire structs. Field order is alphabetical so encoding/json emits sorted keys.

type mapDoc struct {
	Beacons       []beaconDoc  `json:"beacons"`
	DistanceField *fieldDoc    `json:"distanceField,omitempty"`
	Doorways      []doorwayDoc `json:"doorways"`
	Grid          *[]int       `json:"grid"`
	ID            *string      `json:"id"`
	Spec          *specDoc     `json:"spec"`
	Title         *string      `json:"title"`
}

type specDoc struct {
	Height        *int     `json:"height"`
	OriginWorldXZ *vec2    `json:"originWorldXZ"`
	Resolution    *float64 `json:"resolution"`
	Width         *int     `json:"width"`
}

type doorwayDoc struct {
	ID     string `json:"id"`
	PointA *vec2  `json:"pointA,omitempty"`
	PointB *vec2  `json:"pointB,omitempty"`
	// Older documents name the endpoints "a" and "b".
	LegacyA *vec2   `json:"a,omitempty"`
	LegacyB *vec2   `json:"b,omitempty"`
	Width   float64 `json:"width"`
}

type beaconDoc struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position vec2   `json:"position"`
}

type fieldDoc struct {
	Height int     `json:"height"`
	Meters []Float `json:"meters"`
	Width  int     `json:"width"`
}
