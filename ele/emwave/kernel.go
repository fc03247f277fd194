// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package emwave implements the time-harmonic electromagnetic wave equations
//
//      ω ε E + ∇ × H = 0      (real and imaginary projections)
//     -ω μ H + ∇ × E = 0
//
// with ε = (n + i k)² ε_r, together with a far-field (matched impedance) boundary condition
package emwave

import "github.com/cpmech/gosl/chk"

// Kernel holds the data required to assemble one equation @ one integration point
type Kernel struct {

	// input
	Prob Problem    // problem description
	Pt   *Point     // integration point data
	Bf   *Bases     // interpolation functions
	Fld  *Fields    // current field
	Med  *Medium    // material properties
	Xfem Enrichment // [optional] enrichment

	// derived
	U Unpacked // unpacked variables of current equation

	// scratchpad
	test   *Basis  // basis of test functions
	w      float64 // |J| h3 wt
	adv    bool    // advection is enabled
	dif    bool    // diffusion is enabled
	sa, sd float64 // multipliers of advection and diffusion
}

// Unpack prepares the kernel to assemble equation eq
func (o *Kernel) Unpack(eq Var) (err error) {
	err = Unpack(&o.U, eq, o.Fld, o.Med, o.Prob.Omega(), o.Prob.ScaledDerivs())
	if err != nil {
		return
	}
	o.test = o.Bf.Get(eq.Col())
	if o.test == nil {
		return chk.Err("basis functions of equation %v are not available", eq)
	}
	o.w = o.Pt.Weight()
	o.adv = o.Prob.Enabled(eq, Advection)
	o.dif = o.Prob.Enabled(eq, Diffusion)
	o.sa = o.Prob.Scale(eq, Advection)
	o.sd = o.Prob.Scale(eq, Diffusion)
	return
}

// active tells whether the family of column col is active and has basis functions
func (o *Kernel) active(col int) bool {
	return o.Prob.Active(col) && o.Bf.Get(col) != nil
}

// curlTerm returns -Σ_pq ε_pq,axis ∂φ_i/∂x_p v_q
func curlTerm(test *Basis, i, axis int, v *[3]float64) (res float64) {
	for p := 0; p < 3; p++ {
		for q := 0; q < 3; q++ {
			res -= LeviCivita(p, q, axis) * test.grad(i, p) * v[q]
		}
	}
	return
}
