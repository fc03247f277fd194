// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

import "github.com/lacrymose/goma/mdl/optical"

// MeshDiffusion returns the derivative of the curl integrand
//
//   g |J| h3 wt   with   g = -ε_pq,axis ∂φ_i/∂x_p cross_q
//
// w.r.t. the mesh dof (b,j). It is the sum of four contributions
//
//   a: ∂(∂φ_i/∂x_p)/∂x_bj  |J| h3 wt
//   b: ∂cross_q/∂x_bj      |J| h3 wt
//   c: ∂|J|/∂x_bj          h3 wt
//   d: ∂h3/∂x_bj           |J| wt
//
// dcross holds ∂cross_q/∂x_bj
func MeshDiffusion(pt *Point, test *Basis, i, axis, b, j int, cross, dcross *[3]float64) float64 {
	var ga, gb, g float64
	for p := 0; p < 3; p++ {
		for q := 0; q < 3; q++ {
			e := LeviCivita(p, q, axis)
			if e == 0 {
				continue
			}
			ga -= e * test.dgrad(i, p, b, j) * cross[q]
			gb -= e * test.grad(i, p) * dcross[q]
			g -= e * test.grad(i, p) * cross[q]
		}
	}
	var ddetJ, dh3 float64
	if test.Mesh != nil {
		ddetJ = test.Mesh.DdetJ[b][j]
		dh3 = test.Mesh.dh3(b, j)
	}
	a := ga * pt.DetJ * pt.H3 * pt.Wt
	c := g * ddetJ * pt.H3 * pt.Wt
	d := g * pt.DetJ * dh3 * pt.Wt
	return a + gb*pt.DetJ*pt.H3*pt.Wt + c + d
}

// MeshAdvection returns the derivative of the mass-like integrand
//
//   f φ_i |J| h3 wt   with   f = emf EMF + conj EMF_partner
//
// w.r.t. the mesh dof (b,j) where dn and dk are ∂n/∂x_bj and ∂k/∂x_bj and dEMF and dEMFp are the
// derivatives of the field values
func MeshAdvection(pt *Point, test *Basis, i, b, j int, u *Unpacked, dn, dk, dEMF, dEMFp float64) float64 {
	df := u.coefChain(dn, dk) + u.Emf*dEMF + u.Conj*dEMFp
	res := test.Phi[i] * df * pt.Weight()
	if test.Mesh != nil {
		f := u.Emf*u.EMF + u.Conj*u.EMFp
		res += test.Phi[i] * f * (test.Mesh.DdetJ[b][j]*pt.H3 + pt.DetJ*test.Mesh.dh3(b, j)) * pt.Wt
	}
	return res
}

// coefChain returns EMF ∂emf/∂ζ + EMF_partner ∂conj/∂ζ for a dof ζ with ∂n/∂ζ = dn and ∂k/∂ζ = dk
func (u *Unpacked) coefChain(dn, dk float64) float64 {
	return u.EMF*(u.DEmfDn*dn+u.DEmfDk*dk) + u.EMFp*(u.DConjDn*dn+u.DConjDk*dk)
}

// sens getters; nil bundles yield zero

func sensT(s *optical.Sens, j int) float64 {
	if s == nil || j >= len(s.T) {
		return 0
	}
	return s.T[j]
}

func sensX(s *optical.Sens, b, j int) float64 {
	if s == nil || b >= len(s.X) || j >= len(s.X[b]) {
		return 0
	}
	return s.X[b][j]
}

func sensC(s *optical.Sens, w, j int) float64 {
	if s == nil || w >= len(s.C) || j >= len(s.C[w]) {
		return 0
	}
	return s.C[w][j]
}
