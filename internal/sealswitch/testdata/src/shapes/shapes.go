// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

// Shape is a closed set of figures.
//
//defunc:sealed
type Shape interface { // want Shape:`sealed\(Circle, Square, Triangle\)`
	Area() float64
	isShape()
}

// figure carries the marker. Generic, so it is not a variant itself.
type figure[T any] struct{}

func (figure[T]) isShape() {}

type Circle struct {
	figure[float64]
	R float64
}

func (c Circle) Area() float64 { return 3 * c.R * c.R }

type Square struct {
	figure[float64]
	S float64
}

func (s Square) Area() float64 { return s.S * s.S }

// Triangle carries the marker on its pointer receiver.
type Triangle struct{ B, H float64 }

func (*Triangle) isShape() {}

func (t *Triangle) Area() float64 { return t.B * t.H / 2 }

// Point has an area but no marker; it is not a variant.
type Point struct{}

func (Point) Area() float64 { return 0 }

func Complete(s Shape) string {
	switch s.(type) {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case *Triangle:
		return "triangle"
	}
	return ""
}

func MissingTriangle(s Shape) string {
	switch s.(type) { // want `missing cases in type switch over shapes\.Shape: Triangle`
	case Circle, Square:
		return "smooth or square"
	}
	return ""
}

func DefaultDoesNotCount(s Shape) float64 {
	switch v := s.(type) { // want `missing cases in type switch over shapes\.Shape: Square, Triangle`
	case Circle:
		return v.R
	default:
		return 0
	}
}

func Ignored(s Shape) bool {
	//sealswitch:ignore
	switch s.(type) {
	case Circle:
		return true
	}
	return false
}

func ThroughAny(s Shape) string {
	switch any(s).(type) { // want `missing cases in type switch over shapes\.Shape: Circle`
	case Square, *Triangle:
		return "corners"
	}
	return ""
}

func NotSealed(x any) int {
	switch x.(type) {
	case int:
		return 1
	}
	return 0
}
