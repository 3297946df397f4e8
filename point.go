package kdgo

import (
	"reflect"
	"slices"
)

// Point is an immutable K-dimensional coordinate vector plus an optional
// opaque caller-supplied payload. The tree never mutates a Point; moving a
// point means changing which node references it.
type Point struct {
	coords  []float32
	payload any
}

// NewPoint creates a Point from the given coordinates and payload.
// The coordinates are copied so later mutation of the input slice cannot
// reach into the tree. Returns ErrInvalidPoint for nil or empty coordinates.
func NewPoint(coords []float32, payload any) (*Point, error) {
	if len(coords) == 0 {
		return nil, ErrInvalidPoint
	}
	return &Point{
		coords:  slices.Clone(coords),
		payload: payload,
	}, nil
}

// MustPoint is like NewPoint but panics on error. Intended for literals.
func MustPoint(coords []float32, payload any) *Point {
	p, err := NewPoint(coords, payload)
	if err != nil {
		panic(err)
	}
	return p
}

// Coordinate returns the coordinate at the given axis.
// Returns ErrIndexOutOfRange for an axis outside [0, Dimension()).
func (p *Point) Coordinate(axis int) (float32, error) {
	if axis < 0 || axis >= len(p.coords) {
		return 0, &ErrIndexOutOfRange{Index: axis, Dimension: len(p.coords)}
	}
	return p.coords[axis], nil
}

// at is the unchecked fast path used by tree internals after dimensions
// have been validated at the public entry point.
func (p *Point) at(axis int) float32 {
	return p.coords[axis]
}

// Coordinates returns a copy of the point's coordinates.
func (p *Point) Coordinates() []float32 {
	return slices.Clone(p.coords)
}

// Dimension returns the number of coordinates.
func (p *Point) Dimension() int {
	return len(p.coords)
}

// Payload returns the caller-supplied payload, if any.
func (p *Point) Payload() any {
	return p.payload
}

// Equal reports whether both coordinates and payload are equal.
// Payloads are opaque, so they are compared with reflect.DeepEqual;
// uncomparable payloads such as slices or maps are handled.
func (p *Point) Equal(other *Point) bool {
	if other == nil {
		return false
	}
	return slices.Equal(p.coords, other.coords) && reflect.DeepEqual(p.payload, other.payload)
}
