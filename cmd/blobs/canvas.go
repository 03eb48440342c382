package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/joesingo/blobs/internal/colour"
)

// canvas implements the engine's draw contract on an ebiten image.
type canvas struct {
	img *ebiten.Image
}

func (c *canvas) Clear(col colour.RGB) {
	c.img.Fill(col.ToRGBA())
}

func (c *canvas) FillCircle(x, y, radius float64, col colour.RGB) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), col.ToRGBA(), true)
}

func (c *canvas) StrokeRect(x, y, w, h float64, col colour.RGB) {
	vector.StrokeRect(c.img, float32(x), float32(y), float32(w), float32(h), 1, col.ToRGBA(), true)
}
