package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-texture-pipeline/pkg/core"
	"github.com/df07/go-texture-pipeline/pkg/texture"
)

// ErrEmptyImage is returned for images with no pixels
var ErrEmptyImage = errors.New("image has no pixels")

// ImageData contains loaded image data as a ColorA array
type ImageData struct {
	Width  int
	Height int
	Format string // Decoder name, e.g. "png"
	Pixels []core.ColorA
}

// LoadImage loads a PNG, JPEG, BMP, TIFF or WebP image and converts it to a ColorA array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return data, nil
}

// DecodeImage decodes an image stream, auto-detecting the format from its header
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	// Normalize every decoder's output to 16-bit non-premultiplied RGBA
	rgba := image.NewNRGBA64(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	pixels := make([]core.ColorA, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = core.ColorAFromColor(rgba.NRGBA64At(x, y))
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: pixels,
	}, nil
}

// Texture wraps the decoded pixels in a discrete image texture
func (d *ImageData) Texture() *texture.ImageTexture {
	return texture.NewImageTexture(d.Width, d.Height, d.Pixels)
}

// LoadImageTexture loads filename straight into an image texture
func LoadImageTexture(filename string) (*texture.ImageTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return data.Texture(), nil
}
