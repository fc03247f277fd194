// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/lacrymose/goma/fem"
	"github.com/lacrymose/goma/tests"
)

// setIniVals sets smooth fields over the domain
func setIniVals(dom *fem.Domain) {
	for k, key := range []string{"er1", "er2", "er3", "ei1", "ei2", "ei3", "hr1", "hr2", "hr3", "hi1", "hi2", "hi3"} {
		a := 0.3 + 0.1*float64(k)
		dom.SetIniVals(key, func(x []float64) float64 { return math.Sin(a*x[0]+1) * math.Cos(a*x[1]) })
	}
	dom.SetIniVals("temp", func(x []float64) float64 { return 320 - 5*x[0] })
	dom.SetIniVals("ux", func(x []float64) float64 { return 0.01 * x[1] })
	dom.SetIniVals("uy", func(x []float64) float64 { return -0.02 * x[0] * x[1] })
	dom.SetIniVals("uz", func(x []float64) float64 { return 0.01 * x[2] })
	dom.SetIniVals("c0", func(x []float64) float64 { return 0.1 + 0.05*x[0] })
}

func Test_emwave01a(tst *testing.T) {

	/* EM waves in a film
	 *
	 *        Nodes                Equations
	 *
	 *     5     4     3        48    32    80
	 *     o-----o-----o         o-----o-----o
	 *     |     |     |         |     |     |
	 *     |     |     | ← far   |     |     |
	 *     o-----o-----o         o-----o-----o
	 *     0     1     2         0    16    64
	 */

	//tests.Verbose()
	chk.PrintTitle("emwave01a. Film. Check DOFs")

	// start simulation
	main, err := fem.NewMain("data/film.sim", chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}

	// domain
	dom := main.Domain
	chk.Int(tst, "nnodes", len(dom.Nodes), 6)
	chk.Int(tst, "nelems", len(dom.Elems), 2)
	for _, nod := range dom.Nodes {
		chk.Int(tst, "ndofs", len(nod.Dofs), 16)
	}

	// check equations
	nids, eqs := tests.GetNidsEqs(dom)
	chk.Ints(tst, "nids", nids, []int{0, 1, 4, 5, 2, 3})
	chk.Ints(tst, "eqs", eqs, utl.IntRange(96))
	chk.Int(tst, "er1@3", dom.Vid2node[3].GetEq("er1"), 80)
	chk.Int(tst, "c0@3", dom.Vid2node[3].GetEq("c0"), 95)
}

func Test_emwave01b(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("emwave01b. Film. Check element Jacobians")

	main, err := fem.NewMain("data/film.sim", chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	setIniVals(main.Domain)

	for eid := range main.Domain.Elems {
		kb := &tests.Kb{Tst: tst, Eid: eid, Tol: 1e-6, Step: 1e-6, Verb: chk.Verbose, Ni: -1, Nj: -1}
		tests.Emwave(main, kb)
		err = main.Run()
		if err != nil {
			tst.Errorf("Run failed:\n%v", err)
			return
		}
		chk.Int(tst, "nchecks", kb.Nchecks, 12*4*16*4)
	}

	// far-field values on the right face
	sum := main.Summary
	chk.Int(tst, "nbcs", len(sum.BcVals), 4)
	for _, v := range sum.BcVals {
		if v.Vert != 2 && v.Vert != 3 {
			tst.Errorf("far-field vertex %d is not on the right face\n", v.Vert)
			return
		}
	}
	if chk.Verbose {
		io.Pf("%v", sum)
	}
}

func Test_emwave02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("emwave02. Axisymmetric. Check global Jacobian")

	main, err := fem.NewMain("../../inp/data/axisym.sim", chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	setIniVals(main.Domain)
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	kb := &tests.Kb{Tst: tst, Tol: 1e-6, Verb: chk.Verbose}
	kb.CheckGlobal(main.Domain)
	chk.Int(tst, "nchecks", kb.Nchecks, 32*32)
}

func Test_emwave03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("emwave03. 3D Drude metal with scaled derivatives")

	main, err := fem.NewMain("../../inp/data/em3d.yaml", chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	setIniVals(main.Domain)

	// temperature derivatives are approximations with scaled coefficient derivatives
	kb := &tests.Kb{Tst: tst, Eid: 0, Tol: 1e-6, Verb: chk.Verbose, Ni: 2, Nj: -1}
	kb.SkipBlock = func(row, col string) bool { return col == "temp" }
	tests.Emwave(main, kb)
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if kb.Nchecks == 0 {
		tst.Errorf("no entries were checked\n")
	}
}
