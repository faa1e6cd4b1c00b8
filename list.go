// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package defunc

import "iter"

// List is an immutable singly linked list.
// The zero value is the empty list. Cons shares the tail, so building a
// list never copies or mutates an existing one.
type List[A any] struct {
	n *node[A]
}

type node[A any] struct {
	head A
	tail *node[A]
	len  int
}

// Nil returns the empty list.
func Nil[A any]() List[A] { return List[A]{} }

// Cons returns a list with x in front of xs.
func Cons[A any](x A, xs List[A]) List[A] {
	return List[A]{n: &node[A]{head: x, tail: xs.n, len: xs.Len() + 1}}
}

// ListOf returns a list of xs in order.
func ListOf[A any](xs ...A) List[A] {
	return FromSlice(xs)
}

// FromSlice returns a list holding the elements of xs in order.
// The list does not alias xs.
func FromSlice[A any](xs []A) List[A] {
	var l List[A]
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// IsEmpty reports whether l has no elements.
func (l List[A]) IsEmpty() bool { return l.n == nil }

// Len returns the number of elements. O(1).
func (l List[A]) Len() int {
	if l.n == nil {
		return 0
	}
	return l.n.len
}

// Uncons splits l into its head and tail.
// Returns ok == false for the empty list.
func (l List[A]) Uncons() (head A, tail List[A], ok bool) {
	if l.n == nil {
		return head, tail, false
	}
	return l.n.head, List[A]{n: l.n.tail}, true
}

// All returns an iterator over the elements from front to back.
func (l List[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for n := l.n; n != nil; n = n.tail {
			if !yield(n.head) {
				return
			}
		}
	}
}

// Slice returns the elements in a new slice. The empty list gives nil.
func (l List[A]) Slice() []A {
	if l.n == nil {
		return nil
	}
	s := make([]A, 0, l.n.len)
	for x := range l.All() {
		s = append(s, x)
	}
	return s
}

// Equal reports whether a and b have the same length and pairwise equal
// elements under eq.
func Equal[A any](a, b List[A], eq func(A, A) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for x, y := a.n, b.n; x != nil; x, y = x.tail, y.tail {
		if x == y {
			return true
		}
		if !eq(x.head, y.head) {
			return false
		}
	}
	return true
}
