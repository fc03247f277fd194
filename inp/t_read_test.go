// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lacrymose/goma/mdl/optical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim, err := ReadSim("data/em2d.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if chk.Verbose {
		sim.GetInfo(os.Stdout)
		io.Pf("\n")
	}

	io.Pfyel("Ndim = %v\n", sim.Ndim)
	chk.String(tst, sim.Key, "em2d")
	chk.Int(tst, "ndim", sim.Ndim, 2)
	chk.Int(tst, "nspecies", sim.Data.Nspecies, 1)
	chk.Int(tst, "neqs", len(sim.Eqs), 12)
	chk.Float64(tst, "omega", 1e-15, sim.Data.Omega, 2.5)
	chk.Float64(tst, "mu", 1e-15, sim.Data.Mu, 1.2)
	chk.Float64(tst, "hr3: dif", 1e-15, sim.Eqs[8].Scales["dif"], 2.0)
	assert.Subset(tst, sim.Vars, []string{"temp", "mesh", "spec"})

	cell := sim.Mesh.Cells[0]
	chk.String(tst, cell.Elem, DefaultElem)
	x := sim.Mesh.CellCoords(cell)
	chk.Array(tst, "x", 1e-15, x[0], []float64{0, 1.2, 1.1, 0.1})
	chk.Array(tst, "y", 1e-15, x[1], []float64{0, 0.1, 0.9, 1.0})

	mat := sim.GetMat("film")
	if mat == nil {
		tst.Errorf("cannot find material \"film\"\n")
		return
	}
	io.Pforan("film = %v\n", mat)
	chk.Float64(tst, "eps", 1e-15, mat.Eps, 1.3)
	s := optical.NewState(2, 1)
	s.T = 300
	chk.Float64(tst, "n(0)", 1e-15, mat.Optical.N(nil, s), 1.5)
	chk.Float64(tst, "k(0)", 1e-15, mat.Optical.K(nil, s), 0.2)

	bcs := sim.CellFaceBcs(0)
	chk.Int(tst, "nbcs", len(bcs), 2)
	chk.String(tst, bcs[1].Key, "emfar_hi")
	chk.Array(tst, "vals", 1e-15, bcs[0].Vals, []float64{1, 0, 0.5, 0, 0, 0, 0.1, 0})
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02")

	sim, err := ReadSim("data/em3d.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	chk.String(tst, sim.Key, "em3d")
	chk.Int(tst, "ndim", sim.Ndim, 3)
	chk.String(tst, sim.Data.CoefDerivs, "scaled")
	chk.Float64(tst, "mu", 1e-15, sim.Data.Mu, DefaultMu)
	chk.String(tst, sim.Mesh.Cells[0].Extra, "!xfem:3 !xact:0")

	mat := sim.GetMat("metal")
	chk.Float64(tst, "eps", 1e-15, mat.Eps, 1)
	chk.String(tst, mat.Model, "drude")
	chk.Array(tst, "normal", 1e-15, sim.FaceBcs[0].Normal, []float64{0, 0, -1})
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03")

	sim, err := ReadSim("data/axisym.sim")
	require.NoError(tst, err)
	assert.True(tst, sim.Data.Axisym)
	assert.Len(tst, sim.Mesh.Cells, 2)
	assert.Equal(tst, []int{0, 2, 3}, sim.Mesh.Cells[1].Verts)
	assert.Empty(tst, sim.CellFaceBcs(1))
	require.Len(tst, sim.CellFaceBcs(0), 2)
	assert.Empty(tst, sim.FaceBcs[1].Normal)
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. errors")

	_, err := ReadSim("data/bad-mat.sim")
	require.Error(tst, err)
	io.Pforan("%v\n", err)
	assert.Contains(tst, err.Error(), "unknown")

	_, err = ReadSim("data/doesnotexist.sim")
	assert.Error(tst, err)

	bad := map[string]string{
		"no equations": `{"mesh":{"verts":[{"id":0,"c":[0,0]},{"id":1,"c":[1,0]},{"id":2,"c":[0,1]}],
			"cells":[{"id":0,"type":"tri3","verts":[0,1,2],"mat":"a"}]},
			"mats":[{"name":"a","model":"cte","prms":[{"n":"n","v":1}]}]}`,
		"wrong vertex": `{"mesh":{"verts":[{"id":0,"c":[0,0]},{"id":1,"c":[1,0]}],
			"cells":[{"id":0,"type":"tri3","verts":[0,1,5],"mat":"a"}]},
			"eqs":[{"key":"er1"}],
			"mats":[{"name":"a","model":"cte","prms":[{"n":"n","v":1}]}]}`,
		"unknown model": `{"mesh":{"verts":[{"id":0,"c":[0,0]},{"id":1,"c":[1,0]},{"id":2,"c":[0,1]}],
			"cells":[{"id":0,"type":"tri3","verts":[0,1,2],"mat":"a"}]},
			"eqs":[{"key":"er1"}],
			"mats":[{"name":"a","model":"foo"}]}`,
		"missing parameter": `{"mesh":{"verts":[{"id":0,"c":[0,0]},{"id":1,"c":[1,0]},{"id":2,"c":[0,1]}],
			"cells":[{"id":0,"type":"tri3","verts":[0,1,2],"mat":"a"}]},
			"eqs":[{"key":"er1"}],
			"mats":[{"name":"a","model":"cte"}]}`,
		"axisym 3d": `{"data":{"axisym":true},
			"mesh":{"verts":[{"id":0,"c":[0,0,0]},{"id":1,"c":[1,0,0]},{"id":2,"c":[0,1,0]},{"id":3,"c":[0,0,1]}],
			"cells":[{"id":0,"type":"tet4","verts":[0,1,2,3],"mat":"a"}]},
			"eqs":[{"key":"er1"}],
			"mats":[{"name":"a","model":"cte","prms":[{"n":"n","v":1}]}]}`,
		"wrong bc cell": `{"mesh":{"verts":[{"id":0,"c":[0,0]},{"id":1,"c":[1,0]},{"id":2,"c":[0,1]}],
			"cells":[{"id":0,"type":"tri3","verts":[0,1,2],"mat":"a"}]},
			"eqs":[{"key":"er1"}],
			"mats":[{"name":"a","model":"cte","prms":[{"n":"n","v":1}]}],
			"facebcs":[{"key":"emfar_er","cell":3}]}`,
	}
	for name, data := range bad {
		_, err = DecodeSim([]byte(data), false)
		if assert.Error(tst, err, name) {
			io.Pfyel("%-17s: %v\n", name, err)
		}
	}
}

func Test_sim05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim05. yaml and json give the same data")

	j, err := ReadSim("data/em2d.sim")
	require.NoError(tst, err)

	y, err := DecodeSim([]byte(`
data: {desc: "one qua4 film with thermal, mesh and species couplings", omega: 2.5, mu: 1.2, nspecies: 1, coefderivs: exact}
mesh:
  verts: [{id: 0, c: [0.0, 0.0]}, {id: 1, c: [1.2, 0.1]}, {id: 2, c: [1.1, 0.9]}, {id: 3, c: [0.1, 1.0]}]
  cells: [{id: 0, type: qua4, verts: [0, 1, 2, 3], mat: film}]
eqs: [{key: er1, terms: [adv, dif]}]
vars: [temp, mesh, spec]
mats:
  - {name: film, model: lin, eps: 1.3, prms: [{n: n0, v: 1.5}, {n: k0, v: 0.2}]}
`), true)
	require.NoError(tst, err)

	assert.Equal(tst, j.Data, y.Data)
	assert.Equal(tst, j.Ndim, y.Ndim)
	assert.Equal(tst, j.Vars, y.Vars)
	assert.Equal(tst, j.Mesh.CellCoords(j.Mesh.Cells[0]), y.Mesh.CellCoords(y.Mesh.Cells[0]))
	assert.Equal(tst, j.Eqs[0].Terms, y.Eqs[0].Terms)
}
