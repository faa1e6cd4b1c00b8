// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package defunc

import "fmt"

// unhandledArrow panics with a descriptive message for a value outside the
// closed variant set. Extracted as a noinline function so that Apply stays small.
//
//go:noinline
func unhandledArrow(f Erased) {
	panic(fmt.Sprintf("defunc: unhandled arrow variant %T", f))
}

// Apply runs the function that f stands for on a.
//
// This is the single interpretation of every [Arrow] variant. The switch is
// checked for exhaustiveness by sealswitch; the assertions inside each case
// cannot fail because the phantom signature of the variant fixes A and B.
// The default branch is reached only by types outside the closed set, for
// instance an outside struct that embeds a variant.
func Apply[A, B any](f Arrow[A, B], a A) B {
	var r Erased
	switch f := any(f).(type) {
	case Plus:
		p := any(a).(Pair[int, int])
		r = p.Fst + p.Snd
	case Times:
		p := any(a).(Pair[int, int])
		r = p.Fst * p.Snd
	case Minus:
		p := any(a).(Pair[int, int])
		r = p.Fst - p.Snd
	case Max:
		p := any(a).(Pair[int, int])
		r = max(p.Fst, p.Snd)
	case PlusCons:
		p := any(a).(Pair[int, List[int]])
		r = Cons(p.Fst+f.N, p.Snd)
	case Join:
		p := any(a).(Pair[string, string])
		if p.Snd == "" {
			r = p.Fst
		} else {
			r = p.Fst + f.Sep + p.Snd
		}
	case SumLen:
		p := any(a).(Pair[string, int])
		r = len(p.Fst) + p.Snd
	case Add:
		r = any(a).(int) + f.N
	case Scale:
		r = any(a).(int) * f.N
	case Length:
		r = len(any(a).(string))
	default:
		unhandledArrow(f)
	}
	return r.(B)
}
