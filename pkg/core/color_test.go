package core

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorA_ClampRGB01(t *testing.T) {
	c := NewColorA(-0.5, 0.5, 1.5, 2).ClampRGB01()
	assert.Equal(t, NewColorA(0, 0.5, 1, 2), c, "alpha must not be clamped")
}

func TestColorA_Brightness(t *testing.T) {
	assert.InDelta(t, 1.0, Gray(1).Brightness(), 1e-6)
	assert.InDelta(t, 0.0, Gray(0).Brightness(), 1e-6)
	assert.InDelta(t, 0.2126, NewColorA(1, 0, 0, 1).Brightness(), 1e-6)
	assert.InDelta(t, 0.7152, NewColorA(0, 1, 0, 1).Brightness(), 1e-6)
	assert.InDelta(t, 0.0722, NewColorA(0, 0, 1, 1).Brightness(), 1e-6)
}

func TestColorA_HSVRoundTrip(t *testing.T) {
	colors := []ColorA{
		NewColorA(0.8, 0.2, 0.1, 1),
		NewColorA(0.1, 0.9, 0.4, 0.5),
		NewColorA(0.3, 0.3, 0.7, 0),
		NewColorA(0.5, 0.5, 0.5, 1),
		NewColorA(0, 0, 0, 1),
		NewColorA(1.4, 0.2, 0.6, 1),
	}

	for _, c := range colors {
		h, s, v := c.HSV()
		got := c.FromHSV(h, s, v)
		assert.True(t, got.Equals(c, 1e-5), "round trip of %v gave %v", c, got)
	}
}

func TestColorA_HSVDesaturate(t *testing.T) {
	c := NewColorA(0.8, 0.2, 0.4, 0.3)
	h, _, v := c.HSV()
	got := c.FromHSV(h, 0, v)
	assert.True(t, got.Equals(NewColorA(0.8, 0.8, 0.8, 0.3), 1e-5), "got %v", got)
}

func TestColorA_HSVAllNegative(t *testing.T) {
	c := NewColorA(-0.6, -0.5, -0.4, 1)
	h, s, v := c.HSV()
	assert.InDelta(t, 210, h, 1e-3)
	assert.InDelta(t, -0.5, s, 1e-6)
	assert.InDelta(t, -0.4, v, 1e-6)

	half := c.FromHSV(h, s*0.5, v)
	assert.True(t, half.Equals(NewColorA(-0.5, -0.45, -0.4, 1), 1e-6), "got %v", half)

	gray := c.FromHSV(h, 0, v)
	assert.True(t, gray.Equals(Gray(-0.4), 1e-6), "got %v", gray)
}

func TestColorA_Lerp(t *testing.T) {
	got := Gray(0).Lerp(Gray(1), 0.25)
	assert.True(t, got.Equals(NewColorA(0.25, 0.25, 0.25, 1), 1e-6), "got %v", got)
}

func TestColorA_ImageColorConversion(t *testing.T) {
	src := color.NRGBA{R: 255, G: 0, B: 51, A: 255}
	c := ColorAFromColor(src)
	assert.True(t, c.Equals(NewColorA(1, 0, 0.2, 1), 1e-3), "got %v", c)

	out := NewColorA(2, -1, 0.5, 1).RGBA64()
	assert.Equal(t, uint16(65535), out.R)
	assert.Equal(t, uint16(0), out.G)
	assert.Equal(t, uint16(32768), out.B)
	assert.Equal(t, uint16(65535), out.A)
}
