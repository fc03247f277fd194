// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optical

import "github.com/cpmech/gosl/utl"

// State holds the point variables optical properties may depend upon
type State struct {
	T float64   // temperature
	X []float64 // [ndim] position
	C []float64 // [nspec] species concentrations
}

// NewState returns a new state
func NewState(ndim, nspec int) *State {
	return &State{X: make([]float64, ndim), C: make([]float64, nspec)}
}

// Partials holds pointwise derivatives of a property
type Partials struct {
	DT float64   // ∂/∂T
	DX []float64 // [ndim] ∂/∂x
	DC []float64 // [nspec] ∂/∂c
}

// NewPartials returns a new set of partial derivatives
func NewPartials(ndim, nspec int) *Partials {
	return &Partials{DX: make([]float64, ndim), DC: make([]float64, nspec)}
}

// zero clears all derivatives
func (o *Partials) zero() {
	if o == nil {
		return
	}
	o.DT = 0
	for i := range o.DX {
		o.DX[i] = 0
	}
	for i := range o.DC {
		o.DC[i] = 0
	}
}

// Sens holds the derivatives of a property w.r.t. the degrees of freedom of the element
//
//   T[j]    = ∂prop/∂T_j    = ∂prop/∂T · φT_j
//   X[b][j] = ∂prop/∂x_bj   = ∂prop/∂x_b · φX_j    since x_b = Σ_j x_bj φX_j
//   C[w][j] = ∂prop/∂c_wj   = ∂prop/∂c_w · φC_j
//
type Sens struct {
	T []float64   // [ndofT]
	X [][]float64 // [ndim][ndofX]
	C [][]float64 // [nspec][ndofC]
}

// NewSens allocates a derivatives bundle
func NewSens(ndim, nspec, ndofT, ndofX, ndofC int) *Sens {
	return &Sens{
		T: make([]float64, ndofT),
		X: utl.Alloc(ndim, ndofX),
		C: utl.Alloc(nspec, ndofC),
	}
}

// Set computes the bundle from pointwise derivatives and interpolation functions. Nil bases are skipped
func (o *Sens) Set(p *Partials, phiT, phiX, phiC []float64) {
	if phiT != nil {
		for j := range o.T {
			o.T[j] = p.DT * phiT[j]
		}
	}
	if phiX != nil {
		for b := range o.X {
			for j := range o.X[b] {
				o.X[b][j] = p.DX[b] * phiX[j]
			}
		}
	}
	if phiC != nil {
		for w := range o.C {
			for j := range o.C[w] {
				o.C[w][j] = p.DC[w] * phiC[j]
			}
		}
	}
}
