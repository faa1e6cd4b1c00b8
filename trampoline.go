// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package defunc

// unwind runs the pending steps of k against acc, innermost first.
// This is the iterative evaluator for the fold continuation; it never grows
// the goroutine stack regardless of input length.
func unwind[A, B any](f Arrow[Pair[A, B], B], acc B, k frames[A]) B {
	for {
		x, ok := k.pop()
		if !ok {
			return acc
		}
		acc = Apply(f, Pair[A, B]{Fst: x, Snd: acc})
	}
}

// Fold is the right fold of xs with the binary arrow f.
//
// The empty list returns init unchanged. Otherwise the result is
// Apply(f, Pair{head, Fold(f, init, tail)}): the fold of the tail is
// finished before the head is combined, so the last element meets init first.
// For example, with PlusCons{N: 2} and init Nil, [1 2 3] folds to [3 4 5].
//
// Every call owns its own continuation, so Fold is safe to call concurrently
// and repeatedly with the same arrow.
func Fold[A, B any](f Arrow[Pair[A, B], B], init B, xs List[A]) B {
	if xs.IsEmpty() {
		return init
	}
	k := make(frames[A], 0, xs.Len())
	for x := range xs.All() {
		k.push(x)
	}
	return unwind(f, init, k)
}

// FoldSlice is [Fold] over a slice. xs is read, never written.
func FoldSlice[A, B any](f Arrow[Pair[A, B], B], init B, xs []A) B {
	return unwind(f, init, frames[A](xs))
}

// FoldLeft is the left fold of xs with f:
// FoldLeft(f, init, [x1 x2]) = Apply(f, Pair{Apply(f, Pair{init, x1}), x2}).
func FoldLeft[A, B any](f Arrow[Pair[B, A], B], init B, xs List[A]) B {
	acc := init
	for x := range xs.All() {
		acc = Apply(f, Pair[B, A]{Fst: acc, Snd: x})
	}
	return acc
}

// Map applies the unary arrow f to every element of xs, preserving order.
func Map[A, B any](f Arrow[A, B], xs List[A]) List[B] {
	if xs.IsEmpty() {
		return Nil[B]()
	}
	k := make(frames[B], 0, xs.Len())
	for x := range xs.All() {
		k.push(Apply(f, x))
	}
	var out List[B]
	for {
		y, ok := k.pop()
		if !ok {
			return out
		}
		out = Cons(y, out)
	}
}
