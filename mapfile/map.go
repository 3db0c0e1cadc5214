package mapfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/floormap/distfield"
	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
)

// New returns an empty, all-free map with a fresh id.
// Returns ErrBadSpec if spec does not validate.
func New(title string, spec grid.Spec) (*Map, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSpec, err)
	}
	return &Map{
		ID:       uuid.New(),
		Title:    title,
		Spec:     spec,
		Cells:    make([]grid.Cell, spec.Width*spec.Height),
		Doorways: []Doorway{},
		Beacons:  []Beacon{},
	}, nil
}

// Grid returns the occupancy grid as a fresh grid.Grid.
func (m *Map) Grid() (*grid.Grid, error) {
	g, err := grid.FromCells(m.Spec, m.Cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGridShape, err)
	}
	return g, nil
}

// SetGrid replaces spec and cells with a copy of g. A cached distance field
// that no longer matches the shape is dropped.
func (m *Map) SetGrid(g *grid.Grid) {
	m.Spec = g.Spec()
	m.Cells = g.Cells()
	if f := m.Distance; f != nil && (f.Width != m.Spec.Width || f.Height != m.Spec.Height) {
		m.Distance = nil
	}
}

// Field returns the cached distance field, or nil if none is stored.
func (m *Map) Field() *distfield.Field {
	return m.Distance
}

// SetField stores f as the cached distance field.
// Returns ErrGridShape if f does not match the map dimensions.
func (m *Map) SetField(f *distfield.Field) error {
	if f == nil {
		m.Distance = nil
		return nil
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrGridShape, err)
	}
	if f.Width != m.Spec.Width || f.Height != m.Spec.Height {
		return fmt.Errorf("%w: field %d×%d, map %d×%d", ErrGridShape, f.Width, f.Height, m.Spec.Width, m.Spec.Height)
	}
	m.Distance = f
	return nil
}

// AddDoorway records a doorway between world points a and b and carves a
// free corridor of its width through the grid. Widths below MinDoorWidth
// are raised to it.
func (m *Map) AddDoorway(a, b geom.Point, width float64) (Doorway, error) {
	g, err := m.Grid()
	if err != nil {
		return Doorway{}, err
	}
	if !(width >= MinDoorWidth) {
		width = MinDoorWidth
	}
	d := Doorway{ID: uuid.New(), A: a, B: b, Width: width}
	g.CarveCorridor(a, b, width)
	m.Cells = g.Cells()
	m.Doorways = append(m.Doorways, d)
	return d, nil
}

// AddBeacon records a named point at world position p.
func (m *Map) AddBeacon(p geom.Point, name string) Beacon {
	b := Beacon{ID: uuid.New(), Position: p, Name: name}
	m.Beacons = append(m.Beacons, b)
	return b
}

// encodeID renders ids in upper case, matching existing documents.
func encodeID(id uuid.UUID) string {
	return strings.ToUpper(id.String())
}

// MarshalJSON implements json.Marshaler.
func (m *Map) MarshalJSON() ([]byte, error) {
	if len(m.Cells) != m.Spec.Width*m.Spec.Height {
		return nil, fmt.Errorf("%w: %d cells for %d×%d", ErrGridShape, len(m.Cells), m.Spec.Width, m.Spec.Height)
	}
	cells := make([]int, len(m.Cells))
	for i, c := range m.Cells {
		cells[i] = int(c)
	}
	id, title := encodeID(m.ID), m.Title
	origin := toVec(m.Spec.Origin)
	doc := mapDoc{
		Beacons:  make([]beaconDoc, len(m.Beacons)),
		Doorways: make([]doorwayDoc, len(m.Doorways)),
		Grid:     &cells,
		ID:       &id,
		Spec: &specDoc{
			Height:        &m.Spec.Height,
			OriginWorldXZ: &origin,
			Resolution:    &m.Spec.Resolution,
			Width:         &m.Spec.Width,
		},
		Title: &title,
	}
	for i, b := range m.Beacons {
		doc.Beacons[i] = beaconDoc{ID: encodeID(b.ID), Name: b.Name, Position: toVec(b.Position)}
	}
	for i, d := range m.Doorways {
		a, b := toVec(d.A), toVec(d.B)
		doc.Doorways[i] = doorwayDoc{ID: encodeID(d.ID), PointA: &a, PointB: &b, Width: d.Width}
	}
	if f := m.Distance; f != nil {
		doc.DistanceField = &fieldDoc{Height: f.Height, Meters: Floats(f.Meters), Width: f.Width}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler. All failures wrap ErrContent.
func (m *Map) UnmarshalJSON(data []byte) error {
	var doc mapDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return classify(err)
	}
	out, err := doc.toMap()
	if err != nil {
		return err
	}
	*m = *out
	return nil
}

// classify maps decoder errors onto the content error kinds.
func classify(err error) error {
	if errors.Is(err, ErrContent) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

func parseID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", ErrMalformed, field, err)
	}
	return id, nil
}

func (doc *mapDoc) toMap() (*Map, error) {
	switch {
	case doc.ID == nil:
		return nil, missing("id")
	case doc.Title == nil:
		return nil, missing("title")
	case doc.Spec == nil:
		return nil, missing("spec")
	case doc.Grid == nil:
		return nil, missing("grid")
	}
	id, err := parseID("id", *doc.ID)
	if err != nil {
		return nil, err
	}
	spec, err := doc.Spec.toSpec()
	if err != nil {
		return nil, err
	}

	m := &Map{ID: id, Title: *doc.Title, Spec: spec}
	if m.Cells, err = toCells(*doc.Grid, spec); err != nil {
		return nil, err
	}
	m.Doorways = make([]Doorway, len(doc.Doorways))
	for i, d := range doc.Doorways {
		if m.Doorways[i], err = d.toDoorway(i); err != nil {
			return nil, err
		}
	}
	m.Beacons = make([]Beacon, len(doc.Beacons))
	for i, b := range doc.Beacons {
		bid, err := parseID(fmt.Sprintf("beacons[%d].id", i), b.ID)
		if err != nil {
			return nil, err
		}
		m.Beacons[i] = Beacon{ID: bid, Position: b.Position.point(), Name: b.Name}
	}
	if doc.DistanceField != nil {
		if m.Distance, err = doc.DistanceField.toField(spec); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (s *specDoc) toSpec() (grid.Spec, error) {
	switch {
	case s.Resolution == nil:
		return grid.Spec{}, missing("spec.resolution")
	case s.Width == nil:
		return grid.Spec{}, missing("spec.width")
	case s.Height == nil:
		return grid.Spec{}, missing("spec.height")
	case s.OriginWorldXZ == nil:
		return grid.Spec{}, missing("spec.originWorldXZ")
	}
	spec := grid.Spec{
		Resolution: *s.Resolution,
		Width:      *s.Width,
		Height:     *s.Height,
		Origin:     s.OriginWorldXZ.point(),
	}
	if err := spec.Validate(); err != nil {
		return grid.Spec{}, fmt.Errorf("%w: %w", ErrBadSpec, err)
	}
	return spec, nil
}

func toCells(raw []int, spec grid.Spec) ([]grid.Cell, error) {
	if len(raw) != spec.Width*spec.Height {
		return nil, fmt.Errorf("%w: grid has %d cells, want %d", ErrGridShape, len(raw), spec.Width*spec.Height)
	}
	cells := make([]grid.Cell, len(raw))
	for i, v := range raw {
		if v != int(grid.Free) && v != int(grid.Wall) {
			return nil, fmt.Errorf("%w: grid[%d] = %d", ErrGridShape, i, v)
		}
		cells[i] = grid.Cell(v)
	}
	return cells, nil
}

func (d doorwayDoc) toDoorway(i int) (Doorway, error) {
	id, err := parseID(fmt.Sprintf("doorways[%d].id", i), d.ID)
	if err != nil {
		return Doorway{}, err
	}
	a, b := d.PointA, d.PointB
	if a == nil {
		a = d.LegacyA
	}
	if b == nil {
		b = d.LegacyB
	}
	if a == nil || b == nil {
		return Doorway{}, missing(fmt.Sprintf("doorways[%d].pointA/pointB", i))
	}
	return Doorway{ID: id, A: a.point(), B: b.point(), Width: d.Width}, nil
}

func (f *fieldDoc) toField(spec grid.Spec) (*distfield.Field, error) {
	if f.Width != spec.Width || f.Height != spec.Height {
		return nil, fmt.Errorf("%w: distanceField %d×%d, spec %d×%d", ErrGridShape, f.Width, f.Height, spec.Width, spec.Height)
	}
	if len(f.Meters) != f.Width*f.Height {
		return nil, fmt.Errorf("%w: distanceField has %d values, want %d", ErrGridShape, len(f.Meters), f.Width*f.Height)
	}
	return &distfield.Field{Width: f.Width, Height: f.Height, Meters: Float64s(f.Meters)}, nil
}
