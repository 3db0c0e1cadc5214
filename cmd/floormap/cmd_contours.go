package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/floormap/distfield"
	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
	"github.com/katalvlaran/floormap/internal/logging"
	"github.com/katalvlaran/floormap/mapfile"
	"github.com/katalvlaran/floormap/pipeline"
)

var (
	worldCoords  bool
	outPath      string
	writeField   bool
	outputFormat string
)

// contoursCmd traces the smoothed wall contours of a map
var contoursCmd = &cobra.Command{
	Use:   "contours [map.json]",
	Short: "Trace smoothed wall contours",
	Long: `Closes the wall mask, traces its boundaries, simplifies them (RDP) and
smooths them (Chaikin). Output is a JSON array of polylines in grid-cell
units, or world meters with --world. --format geojson writes a GeoJSON
FeatureCollection in world meters that also carries doorways and beacons.`,
	Args: cobra.ExactArgs(1),
	RunE: runContours,
}

// distanceCmd computes the distance-to-wall field of a map
var distanceCmd = &cobra.Command{
	Use:   "distance [map.json]",
	Short: "Compute the distance-to-nearest-wall field",
	Args:  cobra.ExactArgs(1),
	RunE:  runDistance,
}

// deriveCmd computes both artifacts concurrently
var deriveCmd = &cobra.Command{
	Use:   "derive [map.json]",
	Short: "Compute contours and the distance field together, caching the field in the map",
	Args:  cobra.ExactArgs(1),
	RunE:  runDerive,
}

func init() {
	contoursCmd.Flags().BoolVar(&worldCoords, "world", false, "Emit world meters instead of grid units")
	contoursCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write output to file instead of stdout")
	contoursCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json or geojson")
	distanceCmd.Flags().BoolVar(&writeField, "write", false, "Cache the field in the map document")
	deriveCmd.Flags().BoolVar(&worldCoords, "world", false, "Emit world meters instead of grid units")
	deriveCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write contours to file instead of stdout")
}

// loadGrid reads a map document and its grid.
func loadGrid(path string) (*mapfile.Map, *grid.Grid, error) {
	m, err := mapfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := m.Grid()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("map loaded",
		zap.String("path", path),
		zap.String("id", m.ID.String()),
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()),
		zap.Int("walls", g.WallCount()))
	return m, g, nil
}

func runContours(cmd *cobra.Command, args []string) error {
	if outputFormat != "json" && outputFormat != "geojson" {
		return fmt.Errorf("unknown format %q", outputFormat)
	}
	m, g, err := loadGrid(args[0])
	if err != nil {
		return err
	}

	done := logging.Stage(logger, "contours")
	st, err := pipeline.Run(g, cfg.PipelineOptions()...)
	if err != nil {
		return err
	}
	done(
		zap.Int("contours", len(st.Smoothed)),
		zap.Int("raw_vertices", vertexCount(st.Raw)),
		zap.Int("simplified_vertices", vertexCount(st.Simplified)),
		zap.Int("smoothed_vertices", vertexCount(st.Smoothed)))

	if outputFormat == "geojson" {
		fc, err := m.FeatureCollection(st.Smoothed)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), fc)
	}
	return writeContours(cmd.OutOrStdout(), g, st.Smoothed)
}

func runDistance(cmd *cobra.Command, args []string) error {
	m, g, err := loadGrid(args[0])
	if err != nil {
		return err
	}

	done := logging.Stage(logger, "distance")
	f := distfield.Build(g)
	stats := f.Stats()
	done(zap.Int("reachable", stats.Reachable), zap.Int("unreachable", stats.Unreachable))

	fmt.Fprintf(cmd.OutOrStdout(), "reachable=%d unreachable=%d max=%.3fm\n",
		stats.Reachable, stats.Unreachable, stats.Max)

	if !writeField {
		return nil
	}
	if err := m.SetField(f); err != nil {
		return err
	}
	if err := mapfile.Save(args[0], m); err != nil {
		return err
	}
	logger.Info("distance field cached", zap.String("path", args[0]))
	return nil
}

func runDerive(cmd *cobra.Command, args []string) error {
	m, g, err := loadGrid(args[0])
	if err != nil {
		return err
	}

	done := logging.Stage(logger, "derive")
	res, err := pipeline.Derive(cmd.Context(), g, cfg.PipelineOptions()...)
	if err != nil {
		return err
	}
	done(zap.Int("contours", len(res.Contours)), zap.Int("unreachable", res.Field.Stats().Unreachable))

	if err := m.SetField(res.Field); err != nil {
		return err
	}
	if err := mapfile.Save(args[0], m); err != nil {
		return err
	}
	return writeContours(cmd.OutOrStdout(), g, res.Contours)
}

// writeContours encodes polylines as JSON to --out or w.
func writeContours(w io.Writer, g *grid.Grid, contours []geom.Polyline) error {
	out := make([]geom.Polyline, len(contours))
	for i, pl := range contours {
		out[i] = pl.Clone()
		if worldCoords {
			for j, p := range out[i] {
				out[i][j] = g.PointToWorld(p)
			}
		}
	}
	return writeJSON(w, out)
}

// writeJSON encodes v indented to --out or w.
func writeJSON(w io.Writer, v any) error {
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func vertexCount(pls []geom.Polyline) int {
	n := 0
	for _, pl := range pls {
		n += len(pl)
	}
	return n
}
