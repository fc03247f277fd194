// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lacrymose/goma/inp"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_local01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("local01. assembly of local blocks")

	// two rows (second inactive) and two columns
	loc := NewLocal([]int{2, 0}, []int{2, 1})
	assert.Nil(tst, loc.R[1])
	assert.Nil(tst, loc.J[1])
	loc.R[0][0], loc.R[0][1] = 1, 2
	loc.J[0][0][0][0], loc.J[0][0][1][1] = 3, 4
	loc.J[0][1][0][0], loc.J[0][1][1][0] = 5, 6

	rmap := [][]int{{2, 0}, nil}
	cmap := [][]int{{2, 0}, {1}}
	fb := []float64{10, 10, 10}
	loc.AddToRhs(fb, rmap)
	chk.Array(tst, "fb", 1e-17, fb, []float64{8, 10, 9})

	Kb := mat.NewDense(3, 3, nil)
	loc.AddToKb(Kb, rmap, cmap)
	loc.AddToKb(Kb, rmap, cmap)
	chk.Array(tst, "Kb row 0", 1e-17, mat.Row(nil, 0, Kb), []float64{8, 12, 0})
	chk.Array(tst, "Kb row 2", 1e-17, mat.Row(nil, 2, Kb), []float64{0, 10, 6})

	// inactive column map
	Kb.Zero()
	loc.AddToKb(Kb, rmap, [][]int{{2, 0}, nil})
	chk.Array(tst, "Kb row 0", 1e-17, mat.Row(nil, 0, Kb), []float64{4, 0, 0})

	loc.Reset()
	chk.Array(tst, "R", 1e-17, loc.R[0], []float64{0, 0})
	chk.Array(tst, "J01", 1e-17, []float64{loc.J[0][1][0][0], loc.J[0][1][1][0]}, []float64{0, 0})
}

func Test_local02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("local02. auxiliary structures")

	sol := NewSolution(3)
	sol.Y[1] = 2
	sol.Reset()
	chk.Array(tst, "Y", 1e-17, sol.Y, []float64{0, 0, 0})

	M := NewIpsMap()
	M.Set("n", 1, 3, 1.4)
	M.Set("n", 0, 3, 1.2)
	chk.Array(tst, "n", 1e-17, M.Get("n"), []float64{1.2, 1.4, 0})
	assert.Nil(tst, M.Get("k"))

	bcs := NewNaturalBcs([]*inp.FaceBc{{Key: "emfar_er", Cell: 3, Face: 2, Vals: []float64{1}}})
	assert.Equal(tst, []*NaturalBc{{Key: "emfar_er", IdxFace: 2, Vals: []float64{1}}}, bcs)

	_, err := GetInfo(&inp.Cell{Id: 0, Elem: "nonexistent"}, nil)
	assert.Error(tst, err)
	_, err = New(&inp.Cell{Id: 0, Elem: "nonexistent"}, nil)
	assert.Error(tst, err)
}
