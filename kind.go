// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package defunc

import (
	"encoding"
	"fmt"
)

// Kind names an arrow variant.
type Kind uint8

const (
	_ Kind = iota
	KindPlus
	KindTimes
	KindMinus
	KindMax
	KindPlusCons
	KindJoin
	KindSumLen
	KindAdd
	KindScale
	KindLength

	kindEnd
)

var kindNames = [kindEnd]string{
	KindPlus:     "plus",
	KindTimes:    "times",
	KindMinus:    "minus",
	KindMax:      "max",
	KindPlusCons: "plus-cons",
	KindJoin:     "join",
	KindSumLen:   "sum-len",
	KindAdd:      "add",
	KindScale:    "scale",
	KindLength:   "length",
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, kindEnd-1)
	for k := KindPlus; k < kindEnd; k++ {
		ks = append(ks, k)
	}
	return ks
}

// Valid reports whether k names an arrow variant.
func (k Kind) Valid() bool {
	return k > 0 && k < kindEnd
}

// capturesN reports whether arrows of kind k capture the integer N.
func (k Kind) capturesN() bool {
	return k == KindPlusCons || k == KindAdd || k == KindScale
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind-invalid(%d)", uint8(k))
	}
	return kindNames[k]
}

var (
	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownKind, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for c := KindPlus; c < kindEnd; c++ {
		if kindNames[c] == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownKind, b)
}
