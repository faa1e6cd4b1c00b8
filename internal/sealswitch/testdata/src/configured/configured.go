// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package configured

// Token is sealed through sealswitch.toml, without a directive.
type Token interface { // want Token:`sealed\(Ident, Number\)`
	String() string
	token()
	pos() int
}

type Ident struct{}

func (Ident) String() string { return "ident" }
func (Ident) token()         {}
func (Ident) pos() int       { return 0 }

type Number struct{}

func (Number) String() string { return "number" }
func (Number) token()         {}
func (Number) pos() int       { return 0 }

// Other is not listed in the config.
type Other interface{ other() }

type X struct{}

func (X) other() {}

type Y struct{}

func (Y) other() {}

func Classify(t Token) int {
	switch t.(type) { // want `missing cases in type switch over configured\.Token: Number`
	case Ident:
		return 1
	}
	return 0
}

func Loose(o Other) int {
	switch o.(type) {
	case X:
		return 1
	}
	return 0
}
