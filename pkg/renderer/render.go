package renderer

import (
	"image"
	"image/color"
	"runtime"
	"sync/atomic"

	"github.com/alitto/pond/v2"

	"github.com/nkryptic/pathtracer/pkg/core"
	"github.com/nkryptic/pathtracer/pkg/scene"
)

// tileSize is the square edge length, in pixels, of one unit of work
// handed to the worker pool.
const tileSize = 32

// Config holds the parameters that control a single render pass.
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Seed            int64
	// Progress, if non-nil, is called once per completed tile with the
	// number of tiles completed so far and the total tile count.
	Progress func(done, total int)
}

type tile struct {
	x0, y0, x1, y1 int
}

func tilesFor(width, height int) []tile {
	var tiles []tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			x1, y1 := x+tileSize, y+tileSize
			if x1 > width {
				x1 = width
			}
			if y1 > height {
				y1 = height
			}
			tiles = append(tiles, tile{x0: x, y0: y, x1: x1, y1: y1})
		}
	}
	return tiles
}

// Render renders sc into a single RGBA image, splitting the image into
// tiles and rendering them concurrently across a worker pool, one RNG per
// tile (seeded with Config.Seed plus the tile index) so output is
// reproducible from Config.Seed regardless of how tiles happen to
// interleave across goroutines.
func Render(sc *scene.Scene, cfg Config, log core.Logger) *image.RGBA {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	tiles := tilesFor(cfg.Width, cfg.Height)
	total := len(tiles)

	pool := pond.NewPool(workers)

	var done int64
	for i, t := range tiles {
		t := t
		seed := cfg.Seed + int64(i)
		pool.Submit(func() {
			renderTile(img, sc, cfg, t, core.NewRNG(seed))
			n := atomic.AddInt64(&done, 1)
			if cfg.Progress != nil {
				cfg.Progress(int(n), total)
			}
		})
	}
	pool.StopAndWait()

	log.Infof("rendered %dx%d, %d tiles, %d workers", cfg.Width, cfg.Height, total, workers)
	return img
}

func renderTile(img *image.RGBA, sc *scene.Scene, cfg Config, t tile, rng *core.RNG) {
	for y := t.y0; y < t.y1; y++ {
		for x := t.x0; x < t.x1; x++ {
			var sum core.Color
			for s := 0; s < cfg.SamplesPerPixel; s++ {
				u := (float64(x) + rng.Float64()) / float64(cfg.Width-1)
				v := (float64(cfg.Height-1-y) + rng.Float64()) / float64(cfg.Height-1)

				r := sc.Camera.Ray(u, v, rng)
				sum = sum.Add(RayColor(r, sc.World, sc.Background, cfg.MaxDepth, rng))
			}
			avg := sum.Multiply(1.0 / float64(cfg.SamplesPerPixel))
			img.SetRGBA(x, y, toRGBA(avg))
		}
	}
}

// toRGBA tone-maps a linear color: gamma-2 correction, clamp to [0, 0.999],
// then quantize to 8 bits per channel via floor(256*c).
func toRGBA(c core.Color) color.RGBA {
	c = c.GammaCorrect(2.0).Clamp(0, 0.999)
	return color.RGBA{
		R: uint8(256 * c.X),
		G: uint8(256 * c.Y),
		B: uint8(256 * c.Z),
		A: 255,
	}
}
