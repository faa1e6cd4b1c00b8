// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package defunc

// Func converts an arrow back into the closure it stands for.
// Tagged data becomes a function value again; Apply(f, a) == Func(f)(a).
//
// Example:
//
//	inc := defunc.Func[int, int](defunc.Add{N: 1})
//	inc(41) // 42
func Func[A, B any](f Arrow[A, B]) func(A) B {
	return func(a A) B {
		return Apply(f, a)
	}
}

// FoldFunc is the higher-order right fold that [Fold] defunctionalizes.
// It takes the combining step as a closure and recurses on the tail, so its
// stack depth grows with the list. It serves as the reference semantics for
// Fold: for any arrow f, Fold(f, init, xs) == FoldFunc(Func2(f), init, xs).
func FoldFunc[A, B any](f func(A, B) B, init B, xs List[A]) B {
	x, tail, ok := xs.Uncons()
	if !ok {
		return init
	}
	return f(x, FoldFunc(f, init, tail))
}

// Func2 converts a binary arrow into a two-argument closure.
func Func2[A, B, C any](f Arrow[Pair[A, B], C]) func(A, B) C {
	return func(a A, b B) C {
		return Apply(f, Pair[A, B]{Fst: a, Snd: b})
	}
}
