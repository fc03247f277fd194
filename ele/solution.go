// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes.
//
//        / E \
//        | H |
//   y =  | T |   EM fields, temperature, mesh displacements and species
//        | d |
//        \ c / (ny x 1)
//
type Solution struct {
	Y []float64 // DOFs (solution variables)
}

// NewSolution allocates a solution with ny dofs
func NewSolution(ny int) *Solution {
	return &Solution{Y: make([]float64, ny)}
}

// Reset clear values
func (o *Solution) Reset() {
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
	}
}
