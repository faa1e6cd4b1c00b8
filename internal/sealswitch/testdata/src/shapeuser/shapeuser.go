// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapeuser

import "shapes"

func Name(s shapes.Shape) string {
	switch s.(type) { // want `missing cases in type switch over shapes\.Shape: Square`
	case shapes.Circle, *shapes.Triangle:
		return "no square"
	}
	return ""
}

func Corners(s shapes.Shape) int {
	switch s.(type) {
	case shapes.Circle:
		return 0
	case shapes.Square:
		return 4
	case *shapes.Triangle:
		return 3
	}
	return -1
}
