// Package baker evaluates a texture sampler over an image grid using a pool
// of workers that share the sampler read-only.
package baker

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-texture-pipeline/pkg/core"
	"github.com/df07/go-texture-pipeline/pkg/mapping"
	"github.com/df07/go-texture-pipeline/pkg/texture"
)

// ErrInvalidSize is returned for non-positive output dimensions
var ErrInvalidSize = errors.New("bake size must be positive")

// Mode selects how output pixels are turned into lookup coordinates
type Mode int

const (
	// ModePlane maps the image onto the [-1,1]^2 plane, +Y up
	ModePlane Mode = iota
	// ModeLatLong maps the image onto the sphere of directions with the inverse sphere mapping
	ModeLatLong
)

func (m Mode) String() string {
	if m == ModeLatLong {
		return "latlong"
	}
	return "plane"
}

// Options configures a bake
type Options struct {
	Width, Height    int
	TileSize         int // 32 when zero
	Workers          int // runtime.NumCPU() when zero
	Mode             Mode
	UsePostprocessed bool
	Logger           core.Logger
}

func (o Options) withDefaults() Options {
	if o.TileSize <= 0 {
		o.TileSize = 32
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = core.NopLogger{}
	}
	return o
}

// LookupPoint returns the coordinate sampled for pixel (x, y) of a width x height image
func (m Mode) LookupPoint(x, y, width, height int) core.Vec3 {
	u := (float64(x) + 0.5) / float64(width)
	v := 1 - (float64(y)+0.5)/float64(height)
	if m == ModeLatLong {
		return mapping.InvSphereMap(u, v)
	}
	return core.NewVec2(u, v).Centered().Point()
}

// Bake evaluates s at every pixel. The sampler, including any
// post-processed cache, must be fully configured before Bake is called.
func Bake(ctx context.Context, s *texture.Sampler, opts Options) (*image.NRGBA64, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	opts = opts.withDefaults()
	start := time.Now()

	img := image.NewNRGBA64(image.Rect(0, 0, opts.Width, opts.Height))
	render := func(bounds image.Rectangle) {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				p := opts.Mode.LookupPoint(x, y, opts.Width, opts.Height)
				img.SetNRGBA64(x, y, s.Color(p, opts.UsePostprocessed).RGBA64())
			}
		}
	}

	tiles := NewTileGrid(opts.Width, opts.Height, opts.TileSize)
	pool := NewWorkerPool(render, len(tiles), opts.Workers)
	pool.Start()

	for i, tile := range tiles {
		if ctx.Err() != nil {
			break
		}
		pool.SubmitTask(TileTask{Ctx: ctx, Tile: tile, TaskID: i})
	}
	pool.Stop()

	var firstErr error
	pixels := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		pixels += result.Pixels
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	opts.Logger.Printf("Baked %d pixels (%s, %d tiles, %d workers) in %v\n",
		pixels, opts.Mode, len(tiles), pool.GetNumWorkers(), time.Since(start))
	return img, nil
}
