// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "gonum.org/v1/gonum/mat"

// Local holds the element residual and Jacobian split by families of unknowns
//
//   R[row][i]           residual of equation row @ test dof i
//   J[row][col][i][j]   derivative of R[row][i] w.r.t dof j of column col
//
// Inactive rows and columns are nil
type Local struct {
	R [][]float64
	J [][][][]float64
}

// NewLocal allocates a local accumulator. rows[r] and cols[c] hold the number of dofs of each
// family; zero means inactive
func NewLocal(rows, cols []int) (o *Local) {
	o = new(Local)
	o.R = make([][]float64, len(rows))
	o.J = make([][][][]float64, len(rows))
	for r, ni := range rows {
		if ni == 0 {
			continue
		}
		o.R[r] = make([]float64, ni)
		o.J[r] = make([][][]float64, len(cols))
		for c, nj := range cols {
			if nj == 0 {
				continue
			}
			o.J[r][c] = make([][]float64, ni)
			for i := 0; i < ni; i++ {
				o.J[r][c][i] = make([]float64, nj)
			}
		}
	}
	return
}

// Reset clears all values
func (o *Local) Reset() {
	for r := range o.R {
		for i := range o.R[r] {
			o.R[r][i] = 0
		}
		for c := range o.J[r] {
			for i := range o.J[r][c] {
				for j := range o.J[r][c][i] {
					o.J[r][c][i][j] = 0
				}
			}
		}
	}
}

// AddToRhs adds -R to fb. rmap[row][i] holds equation numbers
func (o *Local) AddToRhs(fb []float64, rmap [][]int) {
	for r := range o.R {
		for i, I := range rmap[r] {
			if o.R[r] != nil {
				fb[I] -= o.R[r][i]
			}
		}
	}
}

// AddToKb adds J to Kb. cmap[col][j] holds equation numbers of unknowns
func (o *Local) AddToKb(Kb *mat.Dense, rmap, cmap [][]int) {
	for r := range o.J {
		for c := range o.J[r] {
			if o.J[r][c] == nil || cmap[c] == nil {
				continue
			}
			for i, I := range rmap[r] {
				for j, J := range cmap[c] {
					Kb.Set(I, J, Kb.At(I, J)+o.J[r][c][i][j])
				}
			}
		}
	}
}
