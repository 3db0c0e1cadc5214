package mapfile_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
	"github.com/katalvlaran/floormap/mapfile"
)

// TestFeatureCollection maps contours to world meters and keeps placements.
func TestFeatureCollection(t *testing.T) {
	m, err := mapfile.New("fc", grid.Spec{Resolution: 0.5, Width: 4, Height: 4, Origin: geom.Pt(10, 20)})
	require.NoError(t, err)
	_, err = m.AddDoorway(geom.Pt(10, 20), geom.Pt(11, 20), 0.9)
	require.NoError(t, err)
	m.AddBeacon(geom.Pt(10.5, 21), "lamp")

	fc, err := m.FeatureCollection([]geom.Polyline{{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1)}})
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	wall := fc.Features[0]
	assert.Equal(t, mapfile.KindWall, wall.Properties.MustString("kind"))
	ls, ok := wall.Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.Point{10.25, 20.25}, ls[0])
	assert.Equal(t, orb.Point{10.75, 20.75}, ls[2])

	assert.Equal(t, mapfile.KindDoorway, fc.Features[1].Properties.MustString("kind"))
	assert.Equal(t, "lamp", fc.Features[2].Properties.MustString("name"))

	data, err := fc.MarshalJSON()
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.Len(t, back.Features, 3)
	assert.Equal(t, "fc", back.ExtraMembers.MustString("title"))
}
