// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package defunc

// frames is the defunctionalized continuation of a right fold.
//
// In the recursive definition
//
//	fold(f, init, x::xs) = apply(f, (x, fold(f, init, xs)))
//
// each call leaves behind one pending step, "combine x with the folded tail".
// That step captures nothing but x, so the whole continuation is the stack of
// pending heads, innermost on top.
type frames[A any] []A

// push records a pending combine step for head x.
func (k *frames[A]) push(x A) {
	*k = append(*k, x)
}

// pop removes the innermost pending step.
// Returns ok == false when the continuation is empty.
// pop never writes to the backing array, so a stack built over a caller's
// slice leaves that slice untouched.
func (k *frames[A]) pop() (x A, ok bool) {
	s := *k
	if len(s) == 0 {
		return x, false
	}
	x = s[len(s)-1]
	*k = s[:len(s)-1]
	return x, true
}
