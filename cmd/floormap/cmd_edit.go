package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
	"github.com/katalvlaran/floormap/mapfile"
)

var (
	newTitle      string
	newWidth      int
	newHeight     int
	newResolution float64
	newOriginX    float64
	newOriginZ    float64

	doorWidth  float64
	beaconName string
)

// newCmd creates an empty map document
var newCmd = &cobra.Command{
	Use:   "new [map.json]",
	Short: "Create an empty (all free) map document",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

// editCmd groups in-place edits of a map document
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a map document (doorways, beacons, walls)",
}

var editDoorwayCmd = &cobra.Command{
	Use:   "doorway [map.json] [ax] [az] [bx] [bz]",
	Short: "Add a doorway between two world points and carve a corridor through the walls",
	Args:  cobra.ExactArgs(5),
	RunE:  runEditDoorway,
}

var editBeaconCmd = &cobra.Command{
	Use:   "beacon [map.json] [x] [z]",
	Short: "Add a named beacon at a world point",
	Args:  cobra.ExactArgs(3),
	RunE:  runEditBeacon,
}

var editWallCmd = &cobra.Command{
	Use:   "wall [map.json] [x] [z]...",
	Short: "Mark the cells containing the given world points as walls",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runEditWall,
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "Untitled", "Map title")
	newCmd.Flags().IntVar(&newWidth, "width", 200, "Width in cells")
	newCmd.Flags().IntVar(&newHeight, "height", 200, "Height in cells")
	newCmd.Flags().Float64Var(&newResolution, "resolution", 0.05, "Cell size in meters")
	newCmd.Flags().Float64Var(&newOriginX, "origin-x", 0, "World X of the grid origin")
	newCmd.Flags().Float64Var(&newOriginZ, "origin-z", 0, "World Z of the grid origin")

	editDoorwayCmd.Flags().Float64Var(&doorWidth, "width", mapfile.DefaultDoorWidth, "Doorway width in meters")
	editBeaconCmd.Flags().StringVar(&beaconName, "name", "Beacon", "Beacon name")

	editCmd.AddCommand(editDoorwayCmd)
	editCmd.AddCommand(editBeaconCmd)
	editCmd.AddCommand(editWallCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	m, err := mapfile.New(newTitle, grid.Spec{
		Resolution: newResolution,
		Width:      newWidth,
		Height:     newHeight,
		Origin:     geom.Pt(newOriginX, newOriginZ),
	})
	if err != nil {
		return err
	}
	if err := mapfile.Save(args[0], m); err != nil {
		return err
	}
	logger.Info("map created", zap.String("path", args[0]), zap.String("id", m.ID.String()))
	fmt.Fprintln(cmd.OutOrStdout(), m.ID)
	return nil
}

// parsePoints reads consecutive x z pairs.
func parsePoints(args []string) ([]geom.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("expected x z pairs, got %d values", len(args))
	}
	pts := make([]geom.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		var x, z float64
		if _, err := fmt.Sscan(args[i], &x); err != nil {
			return nil, fmt.Errorf("bad x %q: %w", args[i], err)
		}
		if _, err := fmt.Sscan(args[i+1], &z); err != nil {
			return nil, fmt.Errorf("bad z %q: %w", args[i+1], err)
		}
		pts = append(pts, geom.Pt(x, z))
	}
	return pts, nil
}

func runEditDoorway(cmd *cobra.Command, args []string) error {
	pts, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	m, err := mapfile.Load(args[0])
	if err != nil {
		return err
	}
	d, err := m.AddDoorway(pts[0], pts[1], doorWidth)
	if err != nil {
		return err
	}
	// The cached field no longer matches the carved grid.
	_ = m.SetField(nil)
	if err := mapfile.Save(args[0], m); err != nil {
		return err
	}
	logger.Info("doorway added", zap.String("id", d.ID.String()), zap.Float64("width", d.Width))
	fmt.Fprintln(cmd.OutOrStdout(), d.ID)
	return nil
}

func runEditBeacon(cmd *cobra.Command, args []string) error {
	pts, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	m, err := mapfile.Load(args[0])
	if err != nil {
		return err
	}
	b := m.AddBeacon(pts[0], beaconName)
	if err := mapfile.Save(args[0], m); err != nil {
		return err
	}
	logger.Info("beacon added", zap.String("id", b.ID.String()), zap.String("name", b.Name))
	fmt.Fprintln(cmd.OutOrStdout(), b.ID)
	return nil
}

func runEditWall(cmd *cobra.Command, args []string) error {
	pts, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	m, g, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	changed := 0
	for _, p := range pts {
		if g.MarkWall(p) {
			changed++
		} else {
			logger.Debug("point skipped", zap.Float64("x", p.X), zap.Float64("z", p.Y))
		}
	}
	if changed > 0 {
		m.SetGrid(g)
		_ = m.SetField(nil)
		if err := mapfile.Save(args[0], m); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d cells marked\n", changed)
	return nil
}
