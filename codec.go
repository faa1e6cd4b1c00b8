// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package defunc

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned when a descriptor names no arrow variant.
	ErrUnknownKind = errors.New("defunc: unknown arrow kind")
	// ErrSignature is returned when a decoded arrow does not have the
	// requested domain and result types.
	ErrSignature = errors.New("defunc: arrow signature mismatch")
	// ErrCapture is returned when a descriptor sets a field its kind does
	// not capture.
	ErrCapture = errors.New("defunc: field not captured by arrow kind")
)

// Descriptor is the plain-data form of an arrow: its kind plus the values
// it captures. Fields a variant does not capture stay zero.
type Descriptor struct {
	Kind Kind   `yaml:"kind"`
	N    int    `yaml:"n,omitempty"`
	Sep  string `yaml:"sep,omitempty"`
}

// Describe returns the descriptor of f.
func Describe[A, B any](f Arrow[A, B]) Descriptor {
	switch v := any(f).(type) {
	case Plus, Times, Minus, Max, SumLen, Length:
		return Descriptor{Kind: f.Kind()}
	case PlusCons:
		return Descriptor{Kind: KindPlusCons, N: v.N}
	case Join:
		return Descriptor{Kind: KindJoin, Sep: v.Sep}
	case Add:
		return Descriptor{Kind: KindAdd, N: v.N}
	case Scale:
		return Descriptor{Kind: KindScale, N: v.N}
	default:
		unhandledArrow(v)
		return Descriptor{}
	}
}

// build returns the variant d describes, type-erased.
// Fields the kind does not capture must be zero.
func (d Descriptor) build() (Erased, error) {
	if !d.Kind.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownKind, uint8(d.Kind))
	}
	if d.N != 0 && !d.Kind.capturesN() {
		return nil, fmt.Errorf("%w: %s does not capture n", ErrCapture, d.Kind)
	}
	if d.Sep != "" && d.Kind != KindJoin {
		return nil, fmt.Errorf("%w: %s does not capture sep", ErrCapture, d.Kind)
	}

	switch d.Kind {
	case KindPlus:
		return Plus{}, nil
	case KindTimes:
		return Times{}, nil
	case KindMinus:
		return Minus{}, nil
	case KindMax:
		return Max{}, nil
	case KindPlusCons:
		return PlusCons{N: d.N}, nil
	case KindJoin:
		return Join{Sep: d.Sep}, nil
	case KindSumLen:
		return SumLen{}, nil
	case KindAdd:
		return Add{N: d.N}, nil
	case KindScale:
		return Scale{N: d.N}, nil
	case KindLength:
		return Length{}, nil
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownKind, uint8(d.Kind))
	}
}

// Decode rebuilds the arrow described by d.
// The variant must have signature A -> B; otherwise Decode returns an error
// wrapping ErrSignature.
func Decode[A, B any](d Descriptor) (Arrow[A, B], error) {
	v, err := d.build()
	if err != nil {
		return nil, err
	}
	f, ok := v.(Arrow[A, B])
	if !ok {
		var a A
		var b B
		return nil, fmt.Errorf("%w: %s is not an arrow from %T to %T", ErrSignature, d.Kind, a, b)
	}
	return f, nil
}

// Marshal encodes f as a YAML descriptor.
func Marshal[A, B any](f Arrow[A, B]) ([]byte, error) {
	out, err := yaml.Marshal(Describe(f))
	if err != nil {
		return nil, fmt.Errorf("encoding %s descriptor: %w", f.Kind(), err)
	}
	return out, nil
}

// Unmarshal decodes a YAML descriptor into an arrow from A to B.
func Unmarshal[A, B any](data []byte) (Arrow[A, B], error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding descriptor: %w", err)
	}
	return Decode[A, B](d)
}
