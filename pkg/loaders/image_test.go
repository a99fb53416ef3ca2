package loaders

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/df07/go-texture-pipeline/pkg/core"
	"github.com/df07/go-texture-pipeline/pkg/texture"
)

// testImage returns a 2x2 image: white, red / green, blue
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func checkPixels(t *testing.T, imageData *ImageData) {
	t.Helper()
	require.Equal(t, 2, imageData.Width)
	require.Equal(t, 2, imageData.Height)
	require.Len(t, imageData.Pixels, 4)

	expected := []core.ColorA{
		core.NewColorA(1, 1, 1, 1),
		core.NewColorA(1, 0, 0, 1),
		core.NewColorA(0, 1, 0, 1),
		core.NewColorA(0, 0, 1, 1),
	}
	for i, want := range expected {
		assert.True(t, imageData.Pixels[i].Equals(want, 0.01), "pixel %d: expected %v, got %v", i, want, imageData.Pixels[i])
	}
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")

	f, err := os.Create(testFile)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage()))
	require.NoError(t, f.Close())

	imageData, err := LoadImage(testFile)
	require.NoError(t, err)
	assert.Equal(t, "png", imageData.Format)
	checkPixels(t, imageData)
}

func TestDecodeImage_BMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage()))

	imageData, err := DecodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, "bmp", imageData.Format)
	checkPixels(t, imageData)
}

func TestDecodeImage_OffsetBounds(t *testing.T) {
	src := testImage()
	sub := src.SubImage(image.Rect(1, 1, 2, 2))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sub))

	imageData, err := DecodeImage(&buf)
	require.NoError(t, err)
	require.Len(t, imageData.Pixels, 1)
	assert.True(t, imageData.Pixels[0].Equals(core.NewColorA(0, 0, 1, 1), 0.01))
}

func TestDecodeImage_TranslucentPixelsAreNotPremultiplied(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 128})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	imageData, err := DecodeImage(&buf)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, imageData.Pixels[0].R, 0.01)
	assert.InDelta(t, 0.5, imageData.Pixels[0].A, 0.01)
}

func TestLoadImageTexture(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(testFile)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage()))
	require.NoError(t, f.Close())

	tex, err := LoadImageTexture(testFile)
	require.NoError(t, err)
	assert.True(t, texture.IsDiscrete(tex))
	x, y, z := tex.Resolution()
	assert.Equal(t, [3]int{2, 2, 1}, [3]int{x, y, z})

	// Top-right texel is red
	assert.True(t, tex.ColorAt(1, 0, 0, false).Equals(core.NewColorA(1, 0, 0, 1), 0.01))
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecodeImage_Garbage(t *testing.T) {
	_, err := DecodeImage(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, image.ErrFormat)
}
