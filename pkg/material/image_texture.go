package material

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder

	"github.com/nkryptic/pathtracer/pkg/core"
)

// ImageTexture samples color from a decoded 2D image, addressed by UV
// coordinates with nearest-neighbor filtering. NewCheckerboardTexture below
// also builds one by pre-rendering a checker pattern into the pixel buffer.
type ImageTexture struct {
	Width, Height int
	Pixels        []core.Color // row-major, Pixels[y*Width+x]
}

// NewImageTexture wraps an existing pixel buffer.
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// LoadImageTexture decodes a PNG, JPEG, or BMP file from disk.
func LoadImageTexture(path string) (*ImageTexture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding texture image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = core.NewVec3(float64(r)/65535, float64(g)/65535, float64(b)/65535)
		}
	}
	return NewImageTexture(width, height, pixels), nil
}

// Value samples the texture at (u, v), wrapping out-of-range coordinates
// into [0, 1) and flipping V so v=1 is the top row of the image.
func (t *ImageTexture) Value(u, v float64, p core.Point3) core.Color {
	u = wrap01(u)
	v = wrap01(v)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return t.Pixels[y*t.Width+x]
}

func wrap01(x float64) float64 {
	x -= float64(int(x))
	if x < 0 {
		x += 1
	}
	return x
}

// NewCheckerboardTexture renders a procedural checkerboard into an
// ImageTexture's pixel buffer, addressed by UV rather than world position.
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Color) *ImageTexture {
	pixels := make([]core.Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX, checkY := x/checkSize, y/checkSize
			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}
	return NewImageTexture(width, height, pixels)
}
