// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

import (
	"math/cmplx"

	"github.com/lacrymose/goma/mdl/optical"
)

// Point holds integration point data shared by all equations
type Point struct {
	Ndim int     // space dimension
	Wt   float64 // quadrature weight
	H3   float64 // volume scale factor; e.g. 1 (Cartesian) or radius (axisymmetric)
	DetJ float64 // determinant of Jacobian
}

// Weight returns |J| h3 wt
func (o *Point) Weight() float64 { return o.DetJ * o.H3 * o.Wt }

// MeshSens holds derivatives of basis data w.r.t the mesh displacement dof (b,j)
type MeshSens struct {
	DdetJ [][]float64     // [ndim][nmesh] ∂|J|/∂x_bj
	DH3   [][]float64     // [ndim][nmesh] ∂h3/∂x_bj; may be nil => zero
	DGrad [][][][]float64 // [ndof][ndim][ndim][nmesh] ∂(∂φ_i/∂x_p)/∂x_bj
}

// dh3 returns ∂h3/∂x_bj
func (o *MeshSens) dh3(b, j int) float64 {
	if o.DH3 == nil {
		return 0
	}
	return o.DH3[b][j]
}

// Basis holds the interpolation functions of one variable @ point
type Basis struct {
	Phi  []float64   // [ndof] φ_i
	Grad [][]float64 // [ndof][ndim] ∂φ_i/∂x_p
	Mesh *MeshSens   // [optional] sensitivities w.r.t mesh dofs
}

// Ndof returns the number of local dofs
func (o *Basis) Ndof() int { return len(o.Phi) }

// grad returns ∂φ_i/∂x_p with zero for components beyond the space dimension
func (o *Basis) grad(i, p int) float64 {
	if p < len(o.Grad[i]) {
		return o.Grad[i][p]
	}
	return 0
}

// dgrad returns ∂(∂φ_i/∂x_p)/∂x_bj with zero for components beyond the space dimension
func (o *Basis) dgrad(i, p, b, j int) float64 {
	if o.Mesh == nil || o.Mesh.DGrad == nil || p >= len(o.Mesh.DGrad[i]) {
		return 0
	}
	return o.Mesh.DGrad[i][p][b][j]
}

// Bases collects the bases of all variable families. Nil entries are inactive families
type Bases struct {
	Em      [NumVars]*Basis // EM unknowns
	Temp    *Basis          // temperature
	Mesh    [3]*Basis       // mesh displacements
	Species *Basis          // species concentrations (shared by all species)
}

// Get returns the basis of column col
func (o *Bases) Get(col int) *Basis {
	switch {
	case col < 0:
		return nil
	case col < NumVars:
		return o.Em[col]
	case col == ColTemp:
		return o.Temp
	case col < NumCols:
		return o.Mesh[col-ColMesh1]
	}
	return o.Species
}

// SetAll sets all EM unknowns with the same basis
func (o *Bases) SetAll(b *Basis) {
	for i := 0; i < NumVars; i++ {
		o.Em[i] = b
	}
}

// Fields holds the current EM field @ point
type Fields struct {
	Val   [NumVars]float64     // values of the twelve components; see Var.Index
	Dmesh [NumVars][][]float64 // [optional] [var][b][j] ∂value/∂x_bj; nil => zero
}

// Get returns the value of v
func (o *Fields) Get(v Var) float64 { return o.Val[v.Index()] }

// Set sets the value of v
func (o *Fields) Set(v Var, val float64) { o.Val[v.Index()] = val }

// Vec returns the vector of field f and part p
func (o *Fields) Vec(f Field, p Part) (vec [3]float64) {
	for b := 0; b < 3; b++ {
		vec[b] = o.Val[Var{Field: f, Part: p, Axis: b}.Index()]
	}
	return
}

// dmesh returns ∂value(v)/∂x_bj
func (o *Fields) dmesh(v Var, b, j int) float64 {
	d := o.Dmesh[v.Index()]
	if d == nil {
		return 0
	}
	return d[b][j]
}

// Enrichment informs the state of degrees of freedom of cut-cell/enriched elements
type Enrichment interface {
	DofState(i int) (extended, active bool) // extended dof and whether its enrichment is active
}

// skip tells whether test dof i must be skipped: extended but inactive
func skip(xf Enrichment, i int) bool {
	if xf == nil {
		return false
	}
	extended, active := xf.DofState(i)
	return extended && !active
}

// Medium holds the electromagnetic properties of a medium
type Medium struct {
	N, K   float64       // refractive index and extinction coefficient
	Eps    float64       // real permittivity multiplying (n + i k)²
	Mu     float64       // magnetic permeability
	Dn, Dk *optical.Sens // [optional] derivatives of n and k w.r.t dofs
}

// Permittivity returns the complex permittivity ε = (n + i k)² ε_r
func (o *Medium) Permittivity() complex128 {
	nk := complex(o.N, o.K)
	return nk * nk * complex(o.Eps, 0)
}

// Impedance returns the complex impedance z = sqrt(μ / ε)
func (o *Medium) Impedance() complex128 {
	return cmplx.Sqrt(complex(o.Mu, 0) / o.Permittivity())
}
