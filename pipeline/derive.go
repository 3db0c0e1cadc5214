package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/floormap/distfield"
	"github.com/katalvlaran/floormap/grid"
)

// Derive computes the contours and the distance field of g concurrently.
// The stages themselves cannot be interrupted; ctx is only consulted before
// work starts and its error returned if it is already done.
func Derive(ctx context.Context, g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if _, err := gather(opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{}
	eg := new(errgroup.Group)
	eg.Go(func() error {
		c, err := Contours(g, opts...)
		res.Contours = c
		return err
	})
	eg.Go(func() error {
		res.Field = distfield.Build(g)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
