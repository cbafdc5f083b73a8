// Package sensor models the simple sensors carried by a simulated robot:
// line sensors that sample a floor image and light sensors that respond
// to the angular distance from a beam.
package sensor

import (
	"image"

	"github.com/robosim/gfx"
)

// LineMap wraps a floor image placed somewhere in the world, transparent
// except where the line itself exists. A sensor triggers wherever the
// sampled alpha is nonzero. Sampled pixels are cached, since a sensor
// sweeping along a line revisits the same pixels many times per second.
type LineMap struct {
	img      image.Image
	center   gfx.Point
	rotation float64 // radians, counter-clockwise placement rotation
	cache    map[image.Point]uint32
}

// NewLineMap creates a line map from an image centered at the given
// world position with the given rotation. A nil image is a valid empty
// map that never triggers.
func NewLineMap(img image.Image, center gfx.Point, rotation float64) *LineMap {
	return &LineMap{
		img:      img,
		center:   center,
		rotation: rotation,
		cache:    make(map[image.Point]uint32),
	}
}

// SetPlacement moves or rotates the map, invalidating the pixel cache.
func (m *LineMap) SetPlacement(center gfx.Point, rotation float64) {
	m.center = center
	m.rotation = rotation
	m.cache = make(map[image.Point]uint32)
}

// SetImage replaces the map image, invalidating the pixel cache.
func (m *LineMap) SetImage(img image.Image) {
	m.img = img
	m.cache = make(map[image.Point]uint32)
}

// Triggered reports whether the world point (x, y) lies on the line. The
// point is mapped into image space by undoing the map's placement
// rotation about its center, then offsetting to the image origin; points
// outside the image never trigger.
func (m *LineMap) Triggered(x, y float64) bool {
	if m.img == nil {
		return false
	}
	b := m.img.Bounds()
	p := gfx.Pt(x, y).RotateAround(m.center, -m.rotation)
	px := int(p.X - (m.center.X - float64(b.Dx())/2))
	py := int(p.Y - (m.center.Y - float64(b.Dy())/2))

	if px < 0 || px >= b.Dx() || py < 0 || py >= b.Dy() {
		return false
	}
	return m.alphaAt(px, py) > 0
}

func (m *LineMap) alphaAt(px, py int) uint32 {
	key := image.Pt(px, py)
	if a, ok := m.cache[key]; ok {
		return a
	}
	b := m.img.Bounds()
	_, _, _, a := m.img.At(b.Min.X+px, b.Min.Y+py).RGBA()
	m.cache[key] = a
	return a
}
