// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/lacrymose/goma/inp"

// BuildCoordsMatrix returns the coordinate matrix [ndim][nverts] of a particular Cell
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	return msh.CellCoords(cell)
}
