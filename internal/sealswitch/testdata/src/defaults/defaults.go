// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package defaults

//defunc:sealed
type Event interface { // want Event:`sealed\(Start, Stop\)`
	event()
}

type Start struct{}

func (Start) event() {}

type Stop struct{}

func (Stop) event() {}

func Handle(e Event) string {
	switch e.(type) {
	case Start:
		return "start"
	default:
		return "other"
	}
}
