// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package defunc provides defunctionalized function values in Go.
//
// Defunctionalization (Reynolds 1972) replaces closures with a closed set of
// tagged data values and a single dispatch function that interprets them.
// A closure such as
//
//	func(x int, acc List[int]) List[int] { return Cons(x+2, acc) }
//
// becomes the value PlusCons{N: 2}: the captured 2 is a field, the code is a
// case in [Apply]. Such values can be compared, printed, encoded, and checked
// for exhaustive handling, which closures cannot.
//
// # Arrows
//
// [Arrow] is the sealed interface of all variants. Arrow[A, B] carries its
// domain A and result B as a phantom signature, so a variant can only be
// passed where its types match:
//
//   - [Plus], [Times], [Minus], [Max]: Pair[int, int] -> int
//   - [PlusCons]: Pair[int, List[int]] -> List[int], captures N
//   - [Join]: Pair[string, string] -> string, captures Sep
//   - [SumLen]: Pair[string, int] -> int
//   - [Add], [Scale]: int -> int, capture N
//   - [Length]: string -> int
//
// Every variant reports its [Kind].
//
// # Dispatch
//
//   - [Apply]: Interpret an arrow on an argument
//
// Go has no indexed sum types, so Apply is a type switch whose per-case
// assertions are guaranteed by the phantom signature rather than by the
// compiler. Exhaustiveness of that switch is enforced by the sealswitch
// analyzer (cmd/sealswitch), which understands the //defunc:sealed directive
// on [Arrow]. A value outside the closed set reaching Apply panics with the
// name of its type.
//
// # Traversals
//
//   - [Fold]: Right fold over a [List] with a binary arrow
//   - [FoldSlice]: Right fold over a slice
//   - [FoldLeft]: Left fold
//   - [Map]: Apply a unary arrow to every element
//
// Fold keeps its pending steps as an explicit continuation stack instead of
// recursing, and evaluates innermost first:
//
//	defunc.Fold(defunc.PlusCons{N: 2}, defunc.Nil[int](), defunc.ListOf(1, 2, 3))
//	// [3 4 5]
//
// # Lists
//
// [List] is an immutable cons list with structural sharing: [Nil], [Cons],
// [ListOf], [FromSlice], [List.Uncons], [List.All], [List.Slice], [Equal].
//
// # Closures
//
//   - [Func], [Func2]: Turn an arrow back into a closure
//   - [FoldFunc]: The closure-based recursive fold that Fold defunctionalizes
//
// # Descriptors
//
// Arrows are data and round-trip through [Descriptor]:
//
//   - [Describe]: Arrow to descriptor
//   - [Decode]: Descriptor to arrow, checking the signature ([ErrSignature])
//     and rejecting fields the kind does not capture ([ErrCapture])
//   - [Marshal], [Unmarshal]: YAML encoding of descriptors
package defunc
