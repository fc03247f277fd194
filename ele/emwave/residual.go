// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

// AddToResid adds the residual of the unpacked equation to R[i], i in test dofs
//
//   R_i += (emf EMF + conj EMF_partner) φ_i |J| h3 wt · s_adv
//        - ε_pq,axis ∂φ_i/∂x_p cross_q  |J| h3 wt · s_dif
//
func (o *Kernel) AddToResid(R []float64) {
	u := &o.U
	var advection, diffusion float64
	for i := 0; i < o.test.Ndof(); i++ {
		if skip(o.Xfem, i) {
			continue
		}
		advection, diffusion = 0, 0
		if o.adv {
			advection = (u.Emf*u.EMF + u.Conj*u.EMFp) * o.test.Phi[i] * o.w * o.sa
		}
		if o.dif {
			diffusion = curlTerm(o.test, i, u.Axis, &u.CrossVal) * o.w * o.sd
		}
		R[i] += advection + diffusion
	}
}
