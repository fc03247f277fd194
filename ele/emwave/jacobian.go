// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

// rule computes the Jacobian entries of the unpacked equation w.r.t a family of columns
type rule struct {
	name  string                                 // name of rule
	cols  func(o *Kernel) []int                  // active columns
	entry func(o *Kernel, i, col, j int) float64 // ∂R_i/∂u_{col,j}
}

// rules lists all Jacobian contributions
var rules = []rule{
	{"self", selfCols, selfEntry},
	{"partner", partnerCols, partnerEntry},
	{"cross", crossCols, crossEntry},
	{"temp", tempCols, tempEntry},
	{"mesh", meshCols, meshEntry},
	{"species", speciesCols, speciesEntry},
}

// AddToJac adds the Jacobian of the unpacked equation to J[col][i][j]; i in test dofs, j in the
// dofs of col. Nil J[col] are skipped
func (o *Kernel) AddToJac(J [][][]float64) {
	for _, r := range rules {
		for _, col := range r.cols(o) {
			if col >= len(J) || J[col] == nil {
				continue
			}
			trial := o.Bf.Get(col)
			for i := 0; i < o.test.Ndof(); i++ {
				if skip(o.Xfem, i) {
					continue
				}
				for j := 0; j < trial.Ndof(); j++ {
					J[col][i][j] += r.entry(o, i, col, j)
				}
			}
		}
	}
}

// self /////////////////////////////////////////////////////////////////////////////////////////

func selfCols(o *Kernel) []int {
	if o.adv && o.active(o.U.Eq.Col()) {
		return []int{o.U.Eq.Col()}
	}
	return nil
}

func selfEntry(o *Kernel, i, col, j int) float64 {
	return o.U.Emf * o.test.Phi[i] * o.Bf.Get(col).Phi[j] * o.w * o.sa
}

// partner //////////////////////////////////////////////////////////////////////////////////////

func partnerCols(o *Kernel) []int {
	if o.adv && o.active(o.U.Partner.Col()) {
		return []int{o.U.Partner.Col()}
	}
	return nil
}

func partnerEntry(o *Kernel, i, col, j int) float64 {
	return o.U.Conj * o.test.Phi[i] * o.Bf.Get(col).Phi[j] * o.w * o.sa
}

// cross ////////////////////////////////////////////////////////////////////////////////////////

func crossCols(o *Kernel) (cols []int) {
	if !o.dif {
		return
	}
	for b := 0; b < 3; b++ {
		if c := o.U.Eq.Cross(b).Col(); o.active(c) {
			cols = append(cols, c)
		}
	}
	return
}

func crossEntry(o *Kernel, i, col, j int) (res float64) {
	b := col % 3
	phj := o.Bf.Get(col).Phi[j]
	for p := 0; p < 3; p++ {
		res -= LeviCivita(p, b, o.U.Axis) * o.test.grad(i, p) * phj
	}
	return res * o.w * o.sd
}

// temperature //////////////////////////////////////////////////////////////////////////////////

func tempCols(o *Kernel) []int {
	if o.adv && o.active(ColTemp) {
		return []int{ColTemp}
	}
	return nil
}

func tempEntry(o *Kernel, i, col, j int) float64 {
	df := o.U.coefChain(sensT(o.Med.Dn, j), sensT(o.Med.Dk, j))
	return o.test.Phi[i] * df * o.w * o.sa
}

// mesh /////////////////////////////////////////////////////////////////////////////////////////

func meshCols(o *Kernel) (cols []int) {
	if !o.adv && !o.dif {
		return
	}
	for b := 0; b < o.Pt.Ndim; b++ {
		if c := ColMesh(b); o.active(c) {
			cols = append(cols, c)
		}
	}
	return
}

func meshEntry(o *Kernel, i, col, j int) (res float64) {
	b := col - ColMesh1
	u := &o.U
	if o.adv {
		dn, dk := sensX(o.Med.Dn, b, j), sensX(o.Med.Dk, b, j)
		dEMF, dEMFp := o.Fld.dmesh(u.Eq, b, j), o.Fld.dmesh(u.Partner, b, j)
		res += MeshAdvection(o.Pt, o.test, i, b, j, u, dn, dk, dEMF, dEMFp) * o.sa
	}
	if o.dif {
		var dcross [3]float64
		for q := 0; q < 3; q++ {
			dcross[q] = o.Fld.dmesh(u.Eq.Cross(q), b, j)
		}
		res += MeshDiffusion(o.Pt, o.test, i, u.Axis, b, j, &u.CrossVal, &dcross) * o.sd
	}
	return
}

// species //////////////////////////////////////////////////////////////////////////////////////

func speciesCols(o *Kernel) (cols []int) {
	if !o.adv {
		return
	}
	for w := 0; w < o.Prob.Nspecies(); w++ {
		if c := ColSpecies(w); o.active(c) {
			cols = append(cols, c)
		}
	}
	return
}

func speciesEntry(o *Kernel, i, col, j int) float64 {
	w := col - NumCols
	df := o.U.coefChain(sensC(o.Med.Dn, w, j), sensC(o.Med.Dk, w, j))
	return o.test.Phi[i] * df * o.w * o.sa
}
