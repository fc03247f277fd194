// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

import "gonum.org/v1/gonum/mat"

// Element defines what all elements must implement
type Element interface {

	// information and initialisation
	Id() int                        // returns the cell Id
	SetEqs(eqs [][]int) (err error) // set equations. eqs[nverts][ndofsPerVert] follows Info.Dofs

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) (err error) // adds -R to global residual vector fb
	AddToKb(Kb *mat.Dense, sol *Solution) (err error) // adds element K to global Jacobian matrix Kb
}

// WithNatBcs defines elements with natural boundary conditions on faces
type WithNatBcs interface {
	SetNatBcs(bcs []*NaturalBc) (err error)               // sets natural boundary conditions
	EvalNatBcs(sol *Solution) (res []*BcValue, err error) // evaluates all natural boundary conditions
}

// CanOutputIps defines elements that can output integration points' values
type CanOutputIps interface {
	Id() int                                        // returns the cell Id
	OutIpCoords() [][]float64                       // coordinates of integration points
	OutIpKeys() []string                            // integration points' keys; e.g. "n", "k"
	OutIpVals(M *IpsMap, sol *Solution) (err error) // integration points' values corresponding to keys
}
