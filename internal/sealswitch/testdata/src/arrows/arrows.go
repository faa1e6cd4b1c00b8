// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrows

// Arrow is a sealed, type-indexed function value.
//
//defunc:sealed
type Arrow[A, B any] interface { // want Arrow:`sealed\(Double, Len, Neg\)`
	Name() string
	phantom(A) B
}

type sig[A, B any] struct{}

func (sig[A, B]) phantom(A) B { panic("phantom") }

type Double struct{ sig[int, int] }

type Neg struct{ sig[int, int] }

type Len struct{ sig[string, int] }

func (Double) Name() string { return "double" }
func (Neg) Name() string    { return "neg" }
func (Len) Name() string    { return "len" }

func Apply[A, B any](f Arrow[A, B], a A) B {
	var r any
	switch any(f).(type) {
	case Double:
		r = any(a).(int) * 2
	case Neg:
		r = -any(a).(int)
	case Len:
		r = len(any(a).(string))
	default:
		panic("unhandled")
	}
	return r.(B)
}

func ApplyMissing[A, B any](f Arrow[A, B], a A) B {
	var r any
	switch any(f).(type) { // want `missing cases in type switch over arrows\.Arrow: Len`
	case Double:
		r = any(a).(int) * 2
	case Neg:
		r = -any(a).(int)
	}
	return r.(B)
}

func Describe(f Arrow[int, int]) string {
	switch f.(type) { // want `missing cases in type switch over arrows\.Arrow: Neg`
	case Double:
		return "x2"
	}
	return f.Name()
}

func ApplyBounded[F Arrow[int, int]](f F, a int) int {
	switch any(f).(type) { // want `missing cases in type switch over arrows\.Arrow: Neg`
	case Double:
		return a * 2
	}
	return a
}

// IntArrow embeds the sealed interface in a constraint.
type IntArrow interface {
	Arrow[int, int]
	comparable
}

func ApplyEmbedded[F IntArrow](f F, a int) int {
	switch any(f).(type) { // want `missing cases in type switch over arrows\.Arrow: Double`
	case Neg:
		return -a
	}
	return a
}

func ApplyBoundedComplete[F Arrow[int, int]](f F, a int) int {
	switch any(f).(type) {
	case Double:
		return a * 2
	case Neg:
		return -a
	}
	return a
}

// ApplyOpen is bounded by an arrow over its own type parameter, which no
// variant satisfies, so every variant is required.
func ApplyOpen[A any, F Arrow[A, A]](f F, a A) A {
	switch any(f).(type) { // want `missing cases in type switch over arrows\.Arrow: Len`
	case Double, Neg:
	}
	return a
}
