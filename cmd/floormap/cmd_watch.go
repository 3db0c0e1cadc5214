package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/floormap/internal/logging"
	"github.com/katalvlaran/floormap/internal/watch"
	"github.com/katalvlaran/floormap/pipeline"
)

var watchDebounce time.Duration

// watchCmd re-derives a map every time its document changes
var watchCmd = &cobra.Command{
	Use:   "watch [map.json]",
	Short: "Recompute contours whenever the map document changes",
	Long: `Watches a map document and, on every settled change, derives the
contours and the distance field from a fresh snapshot. Contours are written
to --out or stdout (GeoJSON with --format geojson). Stops on interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before recomputing")
	watchCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write contours to file instead of stdout")
	watchCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json or geojson")
	watchCmd.Flags().BoolVar(&worldCoords, "world", false, "Emit world coordinates (meters) instead of grid units")
}

// rederive returns the watch handler: one full recompute of the document at
// path, written to w (or --out).
func rederive(w io.Writer) watch.Handler {
	return func(ctx context.Context, path string) error {
		m, g, err := loadGrid(path)
		if err != nil {
			return err
		}
		done := logging.Stage(logger, "derive")
		res, err := pipeline.Derive(ctx, g, cfg.PipelineOptions()...)
		if err != nil {
			return err
		}
		done(zap.Int("contours", len(res.Contours)), zap.Int("unreachable", res.Field.Stats().Unreachable))

		if outputFormat == "geojson" {
			fc, err := m.FeatureCollection(res.Contours)
			if err != nil {
				return err
			}
			return writeJSON(w, fc)
		}
		return writeContours(w, g, res.Contours)
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	if outputFormat != "json" && outputFormat != "geojson" {
		return fmt.Errorf("unknown format %q", outputFormat)
	}
	w, err := watch.New(args[0], watchDebounce, rederive(cmd.OutOrStdout()), logger)
	if err != nil {
		return err
	}
	logger.Info("watching", zap.String("path", args[0]), zap.Duration("debounce", watchDebounce))
	return w.Run(cmd.Context())
}
