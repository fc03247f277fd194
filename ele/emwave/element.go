// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/lacrymose/goma/ele"
	"github.com/lacrymose/goma/inp"
	"github.com/lacrymose/goma/mdl/optical"
	"github.com/lacrymose/goma/shp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Element implements the time-harmonic EM wave equations on one cell. All families of unknowns
// (EM fields, temperature, mesh displacements and species) are interpolated at vertices
type Element struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of initial nodal coordinates [ndim][nnode]
	Ndim int         // space dimension

	// problem
	Prob   *Description  // equations, terms and active variables
	Mat    *inp.Material // material and optical model
	Mu     float64       // magnetic permeability
	Axisym bool          // axisymmetric: h3 = radius
	Xfem   Enrichment    // [optional] enrichment

	// integration points
	IpsElem []shp.Ipoint // integration points of element
	IpsFace []shp.Ipoint // integration points corresponding to faces

	// natural boundary conditions
	NatBcs []*ele.NaturalBc // natural boundary conditions
	farKnd []BcKind         // kinds of far-field conditions
	farDat []*FarFieldData  // data of far-field conditions

	// equations
	Rows []Var   // assembled equations
	Vmap [][]int // [ncols][nverts] assembly map; nil => inactive column

	// scratchpad
	shape *shp.Shape        // shape structure
	loc   *ele.Local        // residual and Jacobian
	xcur  [][]float64       // [ndim][nverts] current coordinates
	ker   Kernel            // kernel
	pt    Point             // integration point data
	bas   Basis             // interpolation functions shared by all families
	msens MeshSens          // mesh sensitivities of bas
	bf    Bases             // bases of all families
	fld   Fields            // EM field @ ip
	med   Medium            // material @ ip
	state *optical.State    // state for the optical model
	pn    *optical.Partials // partial derivatives of n
	pk    *optical.Partials // partial derivatives of k
	bpt   BoundaryPoint     // far-field data @ face integration point
	bjac  *BcJacobian       // derivatives of far-field conditions
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("emwave", func(sim *inp.Simulation, cell *inp.Cell) (*ele.Info, error) {

		// problem
		prob, err := NewDescription(sim)
		if err != nil {
			return nil, err
		}

		// solution variables
		var info ele.Info
		ykeys := dofKeys(prob)
		nverts := len(cell.Verts)
		info.Dofs = make([][]string, nverts)
		for m := 0; m < nverts; m++ {
			info.Dofs[m] = ykeys
		}
		for _, eq := range prob.Equations() {
			info.Rows = append(info.Rows, eq.Key())
		}
		return &info, nil
	})

	// element allocator
	ele.SetAllocator("emwave", func(sim *inp.Simulation, cell *inp.Cell, x [][]float64) (ele.Element, error) {
		return New(sim, cell, x)
	})
}

// New allocates a new element
func New(sim *inp.Simulation, cell *inp.Cell, x [][]float64) (o *Element, err error) {

	// basic data
	o = new(Element)
	o.Cell = cell
	o.X = x
	o.Ndim = sim.Ndim
	o.Mu = sim.Data.Mu
	o.Axisym = sim.Data.Axisym

	// problem
	o.Prob, err = NewDescription(sim)
	if err != nil {
		return nil, err
	}
	o.Rows = o.Prob.Equations()

	// shape and integration points
	o.shape, err = shp.New(cell.Type)
	if err != nil {
		return nil, err
	}
	if o.shape.Gndim != o.Ndim || o.shape.Nverts != len(cell.Verts) {
		return nil, chk.Err("shape %q requires ndim=%d and %d vertices. ndim=%d and %d vertices is incorrect", cell.Type, o.shape.Gndim, o.shape.Nverts, o.Ndim, len(cell.Verts))
	}
	o.IpsElem, err = o.shape.GetIps(cell.Nip)
	if err != nil {
		return nil, err
	}
	o.IpsFace, err = o.shape.GetFaceIps(cell.Nipf)
	if err != nil {
		return nil, err
	}

	// model
	o.Mat = sim.GetMat(cell.Mat)
	if o.Mat == nil {
		return nil, chk.Err("cannot get model for emwave element {id=%d material=%q}", cell.Id, cell.Mat)
	}

	// enrichment
	o.Xfem, err = parseXfem(cell.Extra, len(cell.Verts))
	if err != nil {
		return nil, err
	}

	// natural boundary conditions
	err = o.SetNatBcs(ele.NewNaturalBcs(sim.CellFaceBcs(cell.Id)))
	if err != nil {
		return nil, err
	}

	// scratchpad
	nverts := len(cell.Verts)
	nspec := o.Prob.Nspecies()
	rows := make([]int, NumVars)
	for _, eq := range o.Rows {
		rows[eq.Index()] = nverts
	}
	cols := make([]int, NumCols+nspec)
	for c := range cols {
		if o.Prob.Active(c) {
			cols[c] = nverts
		}
	}
	o.loc = ele.NewLocal(rows, cols)
	o.xcur = utl.Alloc(o.Ndim, nverts)
	o.state = optical.NewState(o.Ndim, nspec)
	o.pn = optical.NewPartials(o.Ndim, nspec)
	o.pk = optical.NewPartials(o.Ndim, nspec)
	o.med.Dn = optical.NewSens(o.Ndim, nspec, nverts, nverts, nverts)
	o.med.Dk = optical.NewSens(o.Ndim, nspec, nverts, nverts, nverts)
	o.med.Eps = o.Mat.Eps
	o.med.Mu = o.Mu
	if o.Axisym {
		o.msens.DH3 = utl.Alloc(o.Ndim, nverts)
	}
	o.bf.SetAll(&o.bas)
	o.bf.Temp = &o.bas
	for b := 0; b < o.Ndim; b++ {
		o.bf.Mesh[b] = &o.bas
	}
	o.bf.Species = &o.bas
	o.pt.Ndim = o.Ndim
	o.bpt.Ndim = o.Ndim
	o.bpt.Phi = make([]float64, nverts)
	o.bjac = NewBcJacobian(nverts)
	o.ker = Kernel{Prob: o.Prob, Pt: &o.pt, Bf: &o.bf, Fld: &o.fld, Med: &o.med, Xfem: o.Xfem}
	return
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Element) Id() int { return o.Cell.Id }

// SetEqs sets equations
func (o *Element) SetEqs(eqs [][]int) (err error) {
	keys := dofKeys(o.Prob)
	nverts := len(o.Cell.Verts)
	if len(eqs) != nverts {
		return chk.Err("emwave element %d requires equations for %d vertices. %d is incorrect", o.Cell.Id, nverts, len(eqs))
	}
	o.Vmap = make([][]int, len(o.Prob.Cols))
	for k, c := range dofCols(o.Prob) {
		o.Vmap[c] = make([]int, nverts)
		for m := 0; m < nverts; m++ {
			if len(eqs[m]) != len(keys) {
				return chk.Err("emwave element %d requires %d equations per vertex. %d is incorrect", o.Cell.Id, len(keys), len(eqs[m]))
			}
			o.Vmap[c][m] = eqs[m][k]
		}
	}
	return
}

// SetNatBcs sets natural boundary conditions
func (o *Element) SetNatBcs(bcs []*ele.NaturalBc) (err error) {
	o.NatBcs, o.farKnd, o.farDat = nil, nil, nil
	for _, bc := range bcs {
		kind, err := ParseBcKind(bc.Key)
		if err != nil {
			return err
		}
		if bc.IdxFace < 0 || bc.IdxFace >= len(o.shape.FaceLocalVerts) {
			return chk.Err("face %d of %q is not available for condition %q", bc.IdxFace, o.shape.Type, bc.Key)
		}
		dat, err := NewFarFieldData(bc.Vals)
		if err != nil {
			return err
		}
		o.NatBcs = append(o.NatBcs, bc)
		o.farKnd = append(o.farKnd, kind)
		o.farDat = append(o.farDat, dat)
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *Element) AddToRhs(fb []float64, sol *ele.Solution) (err error) {
	err = o.assemble(sol, false)
	if err != nil {
		return
	}
	o.loc.AddToRhs(fb, o.Vmap[:NumVars])
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *Element) AddToKb(Kb *mat.Dense, sol *ele.Solution) (err error) {
	err = o.assemble(sol, true)
	if err != nil {
		return
	}
	o.loc.AddToKb(Kb, o.Vmap[:NumVars], o.Vmap)
	return
}

// Local returns the local residual and Jacobian computed by the last call to AddToRhs or AddToKb
func (o *Element) Local() *ele.Local { return o.loc }

// EvalNatBcs evaluates the far-field conditions @ the vertices of faces
func (o *Element) EvalNatBcs(sol *ele.Solution) (res []*ele.BcValue, err error) {
	for idx, bc := range o.NatBcs {
		vals, _, err := o.FarFieldAt(idx, sol, false)
		if err != nil {
			return nil, err
		}
		for k, m := range o.shape.FaceLocalVerts[bc.IdxFace] {
			res = append(res, &ele.BcValue{Key: bc.Key, Face: bc.IdxFace, Vert: o.Cell.Verts[m], R: vals[k]})
		}
	}
	return
}

// FarFieldAt evaluates far-field condition idx @ each vertex of its face. The Jacobians, if
// requested, hold derivatives w.r.t the E dofs of all vertices of the element
func (o *Element) FarFieldAt(idx int, sol *ele.Solution, withJac bool) (res [][3]float64, jac []*BcJacobian, err error) {
	if idx < 0 || idx >= len(o.NatBcs) {
		return nil, nil, chk.Err("far-field condition %d is not available in element %d", idx, o.Cell.Id)
	}
	bc := o.NatBcs[idx]
	o.updateCoords(sol)

	// normal
	var pt BoundaryPoint
	pt.Ndim = o.Ndim
	normal := bc.Normal
	if len(normal) == 0 {
		normal, err = o.shape.FaceNormal(o.xcur, bc.IdxFace)
		if err != nil {
			return
		}
	}
	copy(pt.Normal[:], normal)
	err = pt.NormalizeNormal()
	if err != nil {
		return
	}

	// for each vertex on face
	nverts := len(o.Cell.Verts)
	pt.Phi = make([]float64, nverts)
	fverts := o.shape.FaceLocalVerts[bc.IdxFace]
	res = make([][3]float64, len(fverts))
	for k, m := range fverts {

		// E field and interpolation functions @ vertex
		for g := 0; g < 3; g++ {
			pt.E[g] = complex(o.nodal(sol, Var{Efield, Real, g}.Col(), m), o.nodal(sol, Var{Efield, Imag, g}.Col(), m))
		}
		for j := 0; j < nverts; j++ {
			pt.Phi[j] = 0
		}
		pt.Phi[m] = 1

		// material @ vertex
		o.setState(sol, func(c int) float64 { return o.nodal(sol, c, m) })
		for i := 0; i < o.Ndim; i++ {
			o.state.X[i] = o.xcur[i][m]
		}
		in := Medium{N: o.Mat.Optical.N(nil, o.state), K: o.Mat.Optical.K(nil, o.state), Eps: o.Mat.Eps, Mu: o.Mu}

		// condition
		var J *BcJacobian
		if withJac {
			J = NewBcJacobian(nverts)
			jac = append(jac, J)
		}
		err = FarField(&res[k], J, o.farKnd[idx], &pt, &in, o.farDat[idx])
		if err != nil {
			return
		}
	}
	return
}

// OutIpCoords returns the coordinates of integration points
func (o *Element) OutIpCoords() (C [][]float64) {
	C = make([][]float64, len(o.IpsElem))
	for idx, ip := range o.IpsElem {
		C[idx] = o.shape.IpRealCoords(o.X, ip)
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *Element) OutIpKeys() []string { return []string{"n", "k", "h3"} }

// OutIpVals returns the integration points' values corresponding to keys
func (o *Element) OutIpVals(M *ele.IpsMap, sol *ele.Solution) (err error) {
	nip := len(o.IpsElem)
	o.updateCoords(sol)
	for idx, ip := range o.IpsElem {
		err = o.ipvars(ip, sol, false)
		if err != nil {
			return
		}
		M.Set("n", idx, nip, o.med.N)
		M.Set("k", idx, nip, o.med.K)
		M.Set("h3", idx, nip, o.pt.H3)
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// assemble computes the local residual and, if withJac, the local Jacobian
func (o *Element) assemble(sol *ele.Solution, withJac bool) (err error) {
	if o.Vmap == nil {
		return chk.Err("equations of emwave element %d have not been set", o.Cell.Id)
	}
	o.loc.Reset()
	o.updateCoords(sol)
	meshDerivs := withJac && o.Prob.Active(ColMesh1)
	for _, ip := range o.IpsElem {
		err = o.ipvars(ip, sol, meshDerivs)
		if err != nil {
			return
		}
		for _, eq := range o.Rows {
			err = o.ker.Unpack(eq)
			if err != nil {
				return
			}
			o.ker.AddToResid(o.loc.R[eq.Index()])
			if withJac {
				o.ker.AddToJac(o.loc.J[eq.Index()])
			}
		}
	}
	for idx := range o.NatBcs {
		err = o.addFarField(idx, sol, withJac)
		if err != nil {
			return
		}
	}
	return
}

// addFarField integrates far-field condition idx over its face and adds the result to the rows
// given by BcKind.Row
func (o *Element) addFarField(idx int, sol *ele.Solution, withJac bool) (err error) {
	bc, kind, dat := o.NatBcs[idx], o.farKnd[idx], o.farDat[idx]
	fverts := o.shape.FaceLocalVerts[bc.IdxFace]
	fixed := len(bc.Normal) > 0
	meshDerivs := withJac && o.Prob.Active(ColMesh1)
	pt := &o.bpt
	for _, ip := range o.IpsFace {

		// geometry
		err = o.shape.CalcAtFaceIp(o.xcur, bc.IdxFace, ip)
		if err != nil {
			return
		}
		Sf, N := o.shape.Sf, o.shape.Fnormal
		area := floats.Norm(N, 2)
		pt.Normal = [3]float64{}
		if fixed {
			copy(pt.Normal[:], bc.Normal)
		} else {
			copy(pt.Normal[:], N)
		}
		err = pt.NormalizeNormal()
		if err != nil {
			return
		}
		for j := range pt.Phi {
			pt.Phi[j] = 0
		}
		for k, m := range fverts {
			pt.Phi[m] = Sf[k]
		}

		// field and material
		for g := 0; g < 3; g++ {
			pt.E[g] = complex(o.interpWith(pt.Phi, sol, Var{Efield, Real, g}.Col()), o.interpWith(pt.Phi, sol, Var{Efield, Imag, g}.Col()))
		}
		o.setState(sol, func(col int) float64 { return o.interpWith(pt.Phi, sol, col) })
		for i := 0; i < o.Ndim; i++ {
			o.state.X[i] = 0
			for m, s := range pt.Phi {
				o.state.X[i] += s * o.xcur[i][m]
			}
		}
		in := Medium{N: o.Mat.Optical.N(nil, o.state), K: o.Mat.Optical.K(nil, o.state), Eps: o.Mat.Eps, Mu: o.Mu}
		h3 := 1.0
		if o.Axisym {
			h3 = o.state.X[0]
		}
		coef := ip[3] * area * h3

		// condition
		var res [3]float64
		var jac *BcJacobian
		if withJac {
			jac = o.bjac
		}
		err = FarField(&res, jac, kind, pt, &in, dat)
		if err != nil {
			return
		}

		// residual
		for p := 0; p < 3; p++ {
			R := o.loc.R[kind.Row(p).Index()]
			if R == nil {
				continue
			}
			for k, m := range fverts {
				if skip(o.Xfem, m) {
					continue
				}
				R[m] += Sf[k] * res[p] * coef
			}
		}
		if !withJac {
			continue
		}

		// derivatives w.r.t E
		for p := 0; p < 3; p++ {
			Jr := o.loc.J[kind.Row(p).Index()]
			if Jr == nil {
				continue
			}
			for _, part := range []Part{Real, Imag} {
				for g := 0; g < 3; g++ {
					v := Var{Efield, part, g}
					if Jr[v.Col()] == nil {
						continue
					}
					D := jac.D[p][v.Index()]
					for k, m := range fverts {
						if skip(o.Xfem, m) {
							continue
						}
						for j, dj := range D {
							Jr[v.Col()][m][j] += Sf[k] * dj * coef
						}
					}
				}
			}
		}
		if !meshDerivs {
			continue
		}

		// derivatives w.r.t mesh: g_p = res_p |N| h3
		var v [3]complex128
		if !fixed && (kind == FarFieldEr || kind == FarFieldEi) {
			_, gam, tau := Reflection(&in, dat)
			for r := 0; r < 3; r++ {
				v[r] = tau/(1+gam)*pt.E[r] + dat.Inc[r]
			}
		}
		sel := func(z complex128) float64 { return real(z) }
		if kind == FarFieldEi || kind == FarFieldHi {
			sel = func(z complex128) float64 { return imag(z) }
		}
		for p := 0; p < 3; p++ {
			Jr := o.loc.J[kind.Row(p).Index()]
			if Jr == nil {
				continue
			}
			for b := 0; b < o.Ndim; b++ {
				Jc := Jr[ColMesh(b)]
				if Jc == nil {
					continue
				}
				for kb, mb := range fverts {

					// ∂(res_p |N|)/∂x_bk
					var dg float64
					if !fixed && (kind == FarFieldEr || kind == FarFieldEi) {
						var z complex128
						for q := 0; q < o.Ndim; q++ {
							for r := 0; r < 3; r++ {
								z += complex(LeviCivita(p, q, r)*o.shape.DFndx[q][b][kb], 0) * v[r]
							}
						}
						dg = sel(z)
					} else {
						var darea float64
						for q := 0; q < o.Ndim; q++ {
							darea += N[q] * o.shape.DFndx[q][b][kb] / area
						}
						dg = res[p] * darea
					}
					dg *= h3
					if o.Axisym && b == 0 {
						dg += res[p] * area * Sf[kb]
					}
					for k, m := range fverts {
						if skip(o.Xfem, m) {
							continue
						}
						Jc[m][mb] += Sf[k] * dg * ip[3]
					}
				}
			}
		}
	}
	return
}

// updateCoords computes the current coordinates x = X + d
func (o *Element) updateCoords(sol *ele.Solution) {
	for i := 0; i < o.Ndim; i++ {
		for m := 0; m < len(o.Cell.Verts); m++ {
			o.xcur[i][m] = o.X[i][m] + o.nodal(sol, ColMesh(i), m)
		}
	}
}

// nodal returns the value of column col @ vertex m; zero if inactive
func (o *Element) nodal(sol *ele.Solution, col, m int) float64 {
	if o.Vmap == nil || col >= len(o.Vmap) || o.Vmap[col] == nil {
		return 0
	}
	return sol.Y[o.Vmap[col][m]]
}

// interp interpolates column col @ integration point; zero if inactive
func (o *Element) interp(sol *ele.Solution, col int) float64 {
	return o.interpWith(o.shape.S, sol, col)
}

// interpWith interpolates column col using the functions phi of all vertices
func (o *Element) interpWith(phi []float64, sol *ele.Solution, col int) (res float64) {
	for m, s := range phi {
		res += s * o.nodal(sol, col, m)
	}
	return
}

// setState sets temperature and concentrations of the optical state using value(col)
func (o *Element) setState(sol *ele.Solution, value func(col int) float64) {
	o.state.T = value(ColTemp)
	for w := range o.state.C {
		o.state.C[w] = value(ColSpecies(w))
	}
}

// ipvars computes current values @ integration points
func (o *Element) ipvars(ip shp.Ipoint, sol *ele.Solution, meshDerivs bool) (err error) {

	// interpolation functions and gradients
	err = o.shape.CalcAtIp(o.xcur, ip, meshDerivs)
	if err != nil {
		return
	}
	S := o.shape.S
	o.bas.Phi = S
	o.bas.Grad = o.shape.G
	o.bas.Mesh = nil
	o.pt.Wt = ip[3]
	o.pt.DetJ = o.shape.J

	// coordinates and scale factor
	for i := 0; i < o.Ndim; i++ {
		o.state.X[i] = 0
		for m, s := range S {
			o.state.X[i] += s * o.xcur[i][m]
		}
	}
	o.pt.H3 = 1
	if o.Axisym {
		o.pt.H3 = o.state.X[0]
	}
	if meshDerivs {
		o.msens.DdetJ = o.shape.DJdx
		o.msens.DGrad = o.shape.DGdx
		if o.Axisym {
			copy(o.msens.DH3[0], S)
		}
		o.bas.Mesh = &o.msens
	}

	// fields
	for c := 0; c < NumVars; c++ {
		o.fld.Val[c] = o.interp(sol, c)
	}

	// material
	o.setState(sol, func(col int) float64 { return o.interp(sol, col) })
	o.med.N = o.Mat.Optical.N(o.pn, o.state)
	o.med.K = o.Mat.Optical.K(o.pk, o.state)
	var phiT, phiX, phiC []float64
	if o.Prob.Active(ColTemp) {
		phiT = S
	}
	if o.Prob.Active(ColMesh1) {
		phiX = S
	}
	if o.Prob.Nspecies() > 0 {
		phiC = S
	}
	o.med.Dn.Set(o.pn, phiT, phiX, phiC)
	o.med.Dk.Set(o.pk, phiT, phiX, phiC)
	return
}

// dofCols returns the active columns in the order of the dofs @ each vertex
func dofCols(prob *Description) (cols []int) {
	for c := range prob.Cols {
		if prob.Active(c) {
			cols = append(cols, c)
		}
	}
	return
}

// dofKeys returns the keys of the dofs @ each vertex
func dofKeys(prob *Description) (keys []string) {
	for _, c := range dofCols(prob) {
		keys = append(keys, ColKey(c))
	}
	return
}

// xfemDofs implements Enrichment for dofs listed in the element extra flags
type xfemDofs struct {
	extended []bool // extended dofs
	active   bool   // enrichment is active
}

// DofState returns the state of dof i
func (o *xfemDofs) DofState(i int) (extended, active bool) {
	return o.extended[i], o.active
}

// parseXfem reads enrichment flags; e.g. "!xfem:1,3 !xact:0"
func parseXfem(extra string, ndof int) (Enrichment, error) {
	val, found := io.Keycode(extra, "xfem")
	if !found {
		return nil, nil
	}
	o := &xfemDofs{extended: make([]bool, ndof), active: true}
	for _, str := range strings.Split(val, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil || i < 0 || i >= ndof {
			return nil, chk.Err("cannot parse enriched dof %q in %q", str, extra)
		}
		o.extended[i] = true
	}
	if act, ok := io.Keycode(extra, "xact"); ok {
		o.active = act != "0" && act != "false"
	}
	return o, nil
}
