// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nomarker

// Open cannot be sealed: anyone can implement Name.
//
//defunc:sealed
type Open interface { // want `sealed interface nomarker\.Open has no unexported marker method`
	Name() string
}

type A struct{}

func (A) Name() string { return "a" }

func Use(o Open) string {
	switch o.(type) {
	case A:
		return "a"
	}
	return ""
}
