package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/floormap/grid"
)

// inspectCmd summarizes a map document
var inspectCmd = &cobra.Command{
	Use:   "inspect [map.json]",
	Short: "Summarize a map: dimensions, walls, free regions, placements",
	Long: `Prints the grid metadata and counts. Free space is split into
4-connected regions; regions that do not touch the grid border are reported
as enclosed pockets (rooms sealed off by walls, or scanning artifacts).`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	m, g, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	spec := g.Spec()

	fmt.Fprintf(w, "id:          %s\n", m.ID)
	fmt.Fprintf(w, "title:       %s\n", m.Title)
	fmt.Fprintf(w, "size:        %d×%d cells @ %.3fm (%.2fm × %.2fm)\n",
		spec.Width, spec.Height, spec.Resolution,
		float64(spec.Width)*spec.Resolution, float64(spec.Height)*spec.Resolution)
	fmt.Fprintf(w, "origin:      (%.3f, %.3f)\n", spec.Origin.X, spec.Origin.Y)
	fmt.Fprintf(w, "walls:       %d\n", g.WallCount())

	free := g.Regions(grid.Free, grid.Conn4)
	enclosed := 0
	for _, r := range free {
		if !g.TouchesBorder(r) {
			enclosed++
		}
	}
	fmt.Fprintf(w, "free:        %d regions, %d enclosed\n", len(free), enclosed)
	fmt.Fprintf(w, "wall groups: %d\n", len(g.Regions(grid.Wall, grid.Conn8)))

	fmt.Fprintf(w, "doorways:    %d\n", len(m.Doorways))
	for _, d := range m.Doorways {
		fmt.Fprintf(w, "  %s (%.2f,%.2f)→(%.2f,%.2f) width %.2fm\n", d.ID, d.A.X, d.A.Y, d.B.X, d.B.Y, d.Width)
	}
	fmt.Fprintf(w, "beacons:     %d\n", len(m.Beacons))
	for _, b := range m.Beacons {
		fmt.Fprintf(w, "  %s %q at (%.2f,%.2f)\n", b.ID, b.Name, b.Position.X, b.Position.Y)
	}

	if f := m.Field(); f != nil {
		st := f.Stats()
		fmt.Fprintf(w, "field:       cached, max %.3fm, %d unreachable\n", st.Max, st.Unreachable)
	} else {
		fmt.Fprintln(w, "field:       none")
	}
	return nil
}
