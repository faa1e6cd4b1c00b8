// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package defunc

// Erased represents a type-erased value inside the dispatch switch.
// Concrete types are recovered via type assertions at variant boundaries.
type Erased = any

// Arrow is a defunctionalized function value from A to B.
//
// The set of implementations is closed: every variant embeds the unexported
// sig[A, B] marker, which outside packages cannot name. The phantom method
// ties a variant to its domain and result types so that passing, say,
// [PlusCons] where an Arrow[Pair[int, int], int] is expected fails to compile.
//
// Arrows are immutable values. Their meaning is given by [Apply].
//
//defunc:sealed
type Arrow[A, B any] interface {
	// Kind reports which variant the arrow is.
	Kind() Kind

	phantom(A) B
}

// sig is the embeddable phantom signature of an arrow variant.
type sig[A, B any] struct{}

func (sig[A, B]) phantom(A) B { panic("phantom") }

// Pair holds two values. It is the argument of binary arrows.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair creates a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Binary combiners. Each takes Pair{element, accumulator}.

// Plus adds the element to the accumulator.
type Plus struct{ sig[Pair[int, int], int] }

// Times multiplies the element with the accumulator.
type Times struct{ sig[Pair[int, int], int] }

// Minus subtracts the accumulator from the element.
// It is not associative: a right fold of [1 2 3] from 0 gives 1-(2-(3-0)) = 2.
type Minus struct{ sig[Pair[int, int], int] }

// Max keeps the larger of element and accumulator.
type Max struct{ sig[Pair[int, int], int] }

// PlusCons adds N to the element and prepends the sum to the accumulator list.
type PlusCons struct {
	sig[Pair[int, List[int]], List[int]]
	N int
}

// Join concatenates the element in front of the accumulator, separated by Sep.
// An empty accumulator yields the element alone.
type Join struct {
	sig[Pair[string, string], string]
	Sep string
}

// SumLen adds the byte length of the element to the accumulator.
type SumLen struct{ sig[Pair[string, int], int] }

// Unary arrows.

// Add adds N.
type Add struct {
	sig[int, int]
	N int
}

// Scale multiplies by N.
type Scale struct {
	sig[int, int]
	N int
}

// Length is the byte length of a string.
type Length struct{ sig[string, int] }

func (Plus) Kind() Kind     { return KindPlus }
func (Times) Kind() Kind    { return KindTimes }
func (Minus) Kind() Kind    { return KindMinus }
func (Max) Kind() Kind      { return KindMax }
func (PlusCons) Kind() Kind { return KindPlusCons }
func (Join) Kind() Kind     { return KindJoin }
func (SumLen) Kind() Kind   { return KindSumLen }
func (Add) Kind() Kind      { return KindAdd }
func (Scale) Kind() Kind    { return KindScale }
func (Length) Kind() Kind   { return KindLength }

var (
	_ Arrow[Pair[int, int], int]             = Plus{}
	_ Arrow[Pair[int, int], int]             = Times{}
	_ Arrow[Pair[int, int], int]             = Minus{}
	_ Arrow[Pair[int, int], int]             = Max{}
	_ Arrow[Pair[int, List[int]], List[int]] = PlusCons{}
	_ Arrow[Pair[string, string], string]    = Join{}
	_ Arrow[Pair[string, int], int]          = SumLen{}
	_ Arrow[int, int]                        = Add{}
	_ Arrow[int, int]                        = Scale{}
	_ Arrow[string, int]                     = Length{}
)
