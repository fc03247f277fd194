// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lacrymose/goma/ele"
	"github.com/lacrymose/goma/inp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// testDomain holds elements with dofs numbered vertex by vertex
type testDomain struct {
	sim   *inp.Simulation
	elems []*Element
	keys  []string // [ny] keys of dofs
	dofs  [][]int  // [nverts][ndofPerVert] equation numbers
	sol   *ele.Solution
}

func newTestDomain(tst *testing.T, simfn string) (o *testDomain) {
	o = new(testDomain)
	var err error
	o.sim, err = inp.ReadSim(simfn)
	require.NoError(tst, err)
	o.dofs = make([][]int, len(o.sim.Mesh.Verts))
	for _, cell := range o.sim.Mesh.Cells {
		info, err := ele.GetInfo(cell, o.sim)
		require.NoError(tst, err)
		for m, v := range cell.Verts {
			if o.dofs[v] != nil {
				continue
			}
			for _, key := range info.Dofs[m] {
				o.dofs[v] = append(o.dofs[v], len(o.keys))
				o.keys = append(o.keys, key)
			}
		}
		e, err := ele.New(cell, o.sim)
		require.NoError(tst, err)
		o.elems = append(o.elems, e.(*Element))
	}
	for _, e := range o.elems {
		eqs := make([][]int, len(e.Cell.Verts))
		for m, v := range e.Cell.Verts {
			eqs[m] = o.dofs[v]
		}
		require.NoError(tst, e.SetEqs(eqs))
	}
	o.sol = ele.NewSolution(len(o.keys))
	for I, key := range o.keys {
		s := math.Sin(1.7*float64(I) + 0.3)
		switch {
		case key == "temp":
			o.sol.Y[I] = 310 + 5*s
		case key == "ux" || key == "uy" || key == "uz":
			o.sol.Y[I] = 0.02 * s
		case key[0] == 'c':
			o.sol.Y[I] = 0.1 + 0.05*s
		default:
			o.sol.Y[I] = s
		}
	}
	return
}

// fb computes the global residual vector
func (o *testDomain) fb(tst *testing.T) (fb []float64) {
	fb = make([]float64, len(o.keys))
	for _, e := range o.elems {
		require.NoError(tst, e.AddToRhs(fb, o.sol))
	}
	return
}

// checkKb compares Kb with finite differences of -fb. Columns with skipCol(key) are not checked
func (o *testDomain) checkKb(tst *testing.T, tol float64, skipCol func(key string) bool) {
	ny := len(o.keys)
	Kb := mat.NewDense(ny, ny, nil)
	for _, e := range o.elems {
		require.NoError(tst, e.AddToKb(Kb, o.sol))
	}
	Y := o.sol.Y
	defer func() { o.sol.Y = Y }()
	dfdy := mat.NewDense(ny, ny, nil)
	fd.Jacobian(dfdy, func(f, y []float64) {
		o.sol.Y = y
		for i := range f {
			f[i] = 0
		}
		for _, e := range o.elems {
			if err := e.AddToRhs(f, o.sol); err != nil {
				chk.Panic("AddToRhs failed:\n%v", err)
			}
		}
	}, append([]float64{}, Y...), &fd.JacobianSettings{Formula: fd.Central, Step: 1e-6})
	for J, key := range o.keys {
		if skipCol != nil && skipCol(key) {
			continue
		}
		for I := 0; I < ny; I++ {
			chk.AnaNum(tst, io.Sf("Kb[%s:%d][%s:%d]", o.keys[I], I, key, J), tol, Kb.At(I, J), -dfdy.At(I, J), chk.Verbose)
		}
	}
}

func Test_element01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("element01. qua4 with temperature, mesh and species couplings")

	o := newTestDomain(tst, "../../inp/data/em2d.sim")
	require.Len(tst, o.elems, 1)
	e := o.elems[0]
	chk.Int(tst, "nrows", len(e.Rows), 12)
	chk.Int(tst, "ny", len(o.keys), 4*16)
	chk.String(tst, o.keys[12], "temp")
	chk.String(tst, o.keys[13], "ux")
	chk.String(tst, o.keys[15], "c0")

	fb := o.fb(tst)
	assert.Greater(tst, mat.Norm(mat.NewVecDense(len(fb), fb), 2), 0.0)
	o.checkKb(tst, 1e-6, nil)

	// local residual and Jacobian are those of the last assembly
	loc := e.Local()
	chk.Int(tst, "len(R)", len(loc.R), NumVars)
	chk.Int(tst, "len(R[0])", len(loc.R[0]), 4)
	chk.Int(tst, "len(J[0])", len(loc.J[0]), NumCols+1)
}

func Test_element02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("element02. axisymmetric tri3 with mesh couplings")

	o := newTestDomain(tst, "../../inp/data/axisym.sim")
	require.Len(tst, o.elems, 2)
	for _, e := range o.elems {
		assert.True(tst, e.Axisym)
		chk.Int(tst, "nrows", len(e.Rows), 6)
	}

	// h3 is the radius of integration points
	M := ele.NewIpsMap()
	e := o.elems[0]
	o.sol.Reset()
	require.NoError(tst, e.OutIpVals(M, o.sol))
	C := e.OutIpCoords()
	h3 := M.Get("h3")
	require.Len(tst, h3, len(C))
	for i, x := range C {
		chk.Float64(tst, "h3", 1e-14, h3[i], x[0])
		chk.Float64(tst, "n", 1e-14, M.Get("n")[i], 1.45+0.02*x[0])
		chk.Float64(tst, "k", 1e-14, M.Get("k")[i], 0.01+0.003*x[1])
	}

	o = newTestDomain(tst, "../../inp/data/axisym.sim")
	o.checkKb(tst, 1e-6, nil)
}

func Test_element03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("element03. tet4 with inactive enrichment")

	o := newTestDomain(tst, "../../inp/data/em3d.yaml")
	e := o.elems[0]
	require.NotNil(tst, e.Xfem)
	ext, act := e.Xfem.DofState(3)
	assert.True(tst, ext)
	assert.False(tst, act)

	// rows of the extended vertex are not assembled
	fb := o.fb(tst)
	for k, I := range o.dofs[3] {
		if k < NumVars {
			chk.Float64(tst, io.Sf("fb[%s@3]", o.keys[I]), 1e-17, fb[I], 0)
		}
	}

	// scaled coefficient derivatives are approximations; check the EM couplings only
	o.checkKb(tst, 1e-6, func(key string) bool { return key == "temp" })
}

func Test_element04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("element04. far-field conditions")

	o := newTestDomain(tst, "../../inp/data/em2d.sim")
	e := o.elems[0]
	require.Len(tst, e.NatBcs, 2)

	res, err := e.EvalNatBcs(o.sol)
	require.NoError(tst, err)
	require.Len(tst, res, 4)
	assert.Equal(tst, "emfar_er", res[0].Key)
	assert.Equal(tst, "emfar_hi", res[3].Key)
	chk.Ints(tst, "verts", []int{res[0].Vert, res[1].Vert, res[2].Vert, res[3].Vert}, []int{1, 2, 1, 2})

	// Jacobians w.r.t E dofs
	set := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for idx := range e.NatBcs {
		vals, jac, err := e.FarFieldAt(idx, o.sol, true)
		require.NoError(tst, err)
		require.Len(tst, jac, 2)
		for k := range vals {
			chk.Array(tst, "R", 1e-15, vals[k][:], res[2*idx+k].R[:])
			for _, part := range []Part{Real, Imag} {
				for g := 0; g < 3; g++ {
					v := Var{Efield, part, g}
					for m := 0; m < 4; m++ {
						I := e.Vmap[v.Col()][m]
						for p := 0; p < 3; p++ {
							dnum := fd.Derivative(func(x float64) float64 {
								tmp := o.sol.Y[I]
								o.sol.Y[I] = x
								defer func() { o.sol.Y[I] = tmp }()
								r, _, _ := e.FarFieldAt(idx, o.sol, false)
								return r[k][p]
							}, o.sol.Y[I], set)
							chk.AnaNum(tst, io.Sf("bc%d: ∂f%d@%d/∂%s@%d", idx, p, k, v.Key(), m), 1e-9, jac[k].D[p][v.Index()][m], dnum, chk.Verbose)
						}
					}
				}
			}
		}
	}

	_, _, err = e.FarFieldAt(5, o.sol, false)
	assert.Error(tst, err)
}

func Test_element05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("element05. enrichment flags and errors")

	xf, err := parseXfem("!xfem:0,2", 4)
	require.NoError(tst, err)
	for i, ref := range []bool{true, false, true, false} {
		ext, act := xf.DofState(i)
		assert.Equal(tst, ref, ext)
		assert.True(tst, act)
	}
	xf, err = parseXfem("", 4)
	require.NoError(tst, err)
	assert.Nil(tst, xf)
	_, err = parseXfem("!xfem:7", 4)
	assert.Error(tst, err)

	o := newTestDomain(tst, "../../inp/data/em2d.sim")
	e := o.elems[0]
	assert.Error(tst, e.SetEqs([][]int{{0}}))
	assert.Error(tst, e.SetNatBcs([]*ele.NaturalBc{{Key: "emfar_xx", IdxFace: 0, Vals: make([]float64, 8)}}))
	assert.Error(tst, e.SetNatBcs([]*ele.NaturalBc{{Key: "emfar_er", IdxFace: 9, Vals: make([]float64, 8)}}))
	assert.Error(tst, e.SetNatBcs([]*ele.NaturalBc{{Key: "emfar_er", IdxFace: 0, Vals: make([]float64, 2)}}))

	e.Vmap = nil
	assert.Error(tst, e.AddToRhs(make([]float64, len(o.keys)), o.sol))
}

func Test_element06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("element06. far-field conditions integrated over faces")

	// uniform E field
	o := newTestDomain(tst, "../../inp/data/em2d.sim")
	e := o.elems[0]
	for I, key := range o.keys {
		if key[0] == 'e' {
			v := 0.1 * float64(key[2]-'0')
			if key[1] == 'i' {
				v = -2 * v
			}
			o.sol.Y[I] = v
		}
	}

	// values @ vertices are uniform too
	bcs := e.NatBcs
	require.Len(tst, bcs, 2)
	var vals [2][3]float64
	for idx := range bcs {
		res, _, err := e.FarFieldAt(idx, o.sol, false)
		require.NoError(tst, err)
		chk.Array(tst, "uniform", 1e-14, res[0][:], res[1][:])
		vals[idx] = res[0]
	}

	// current length of face 1
	fverts := []int{1, 2}
	var dx [2]float64
	for i := 0; i < 2; i++ {
		xa := e.X[i][fverts[0]] + o.sol.Y[e.Vmap[ColMesh(i)][fverts[0]]]
		xb := e.X[i][fverts[1]] + o.sol.Y[e.Vmap[ColMesh(i)][fverts[1]]]
		dx[i] = xb - xa
	}
	length := math.Hypot(dx[0], dx[1])

	// contributions of conditions
	withBcs := o.fb(tst)
	require.NoError(tst, e.SetNatBcs(nil))
	noBcs := o.fb(tst)
	require.NoError(tst, e.SetNatBcs(bcs))
	for idx, kind := range []BcKind{FarFieldEr, FarFieldHi} {
		for p := 0; p < 3; p++ {
			row := kind.Row(p)
			sum := 0.0
			for m := 0; m < 4; m++ {
				I := e.Vmap[row.Col()][m]
				diff := withBcs[I] - noBcs[I]
				if m == 0 || m == 3 {
					chk.Float64(tst, io.Sf("%s@%d", row.Key(), m), 1e-15, diff, 0)
				}
				sum += diff
			}
			chk.Float64(tst, io.Sf("∫%s", row.Key()), 1e-13, sum, -vals[idx][p]*length)
		}
	}

	// rows
	assert.Equal(tst, Var{Efield, Imag, 1}, FarFieldEi.Row(1))
	assert.Equal(tst, Var{Hfield, Real, 2}, FarFieldHr.Row(2))
}
