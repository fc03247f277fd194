// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test elements and FE simulations
package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/lacrymose/goma/ele"
	"github.com/lacrymose/goma/ele/emwave"
	"github.com/lacrymose/goma/fem"
	"gonum.org/v1/gonum/diff/fd"
)

// Kb helps on checking Kb matrices
type Kb struct {

	// input (must)
	Tst  *testing.T // testing structure
	Eid  int        // element id
	Tol  float64    // tolerance to compare K's
	Step float64    // step for finite differences method
	Verb bool       // verbose: show results
	Ni   int        // number of i components of K to be tested; -1 means all K components
	Nj   int        // number of j components of K to be tested; -1 means all K components

	// input (optional)
	SkipBlock func(row, col string) bool // skip blocks; e.g. approximate derivatives

	// derived
	Nchecks int       // number of entries checked
	Fbtmp   []float64 // auxiliary array
	Ybkp    []float64 // auxiliary array
}

// block holds a copy of one block of the element Jacobian
type block struct {
	label      string      // e.g. "Ker1_temp"
	row, col   string      // keys
	Imap, Jmap []int       // equation numbers
	K          [][]float64 // [len(Imap)][len(Jmap)]
}

// Emwave defines a global function to debug Kb for emwave elements
func Emwave(main *fem.Main, o *Kb) {
	main.DebugKb = func(d *fem.Domain) {

		elem := d.Elems[o.Eid]
		if e, ok := elem.(*emwave.Element); ok {

			// copy blocks of the last assembly
			var blocks []*block
			loc := e.Local()
			for _, eq := range e.Rows {
				r := eq.Index()
				for c, jmap := range e.Vmap {
					if jmap == nil || loc.J[r][c] == nil {
						continue
					}
					b := &block{row: eq.Key(), col: emwave.ColKey(c), Imap: e.Vmap[r], Jmap: jmap}
					b.label = io.Sf("K%s_%s", b.row, b.col)
					b.K = utl.Alloc(len(b.Imap), len(b.Jmap))
					for i := range b.K {
						copy(b.K[i], loc.J[r][c][i])
					}
					blocks = append(blocks, b)
				}
			}

			// backup and restore upon exit
			o.aux_backup(d)
			defer func() { o.aux_restore(d) }()

			// check
			for _, b := range blocks {
				if o.SkipBlock != nil && o.SkipBlock(b.row, b.col) {
					continue
				}
				o.check(b.label, d, e, b.Imap, b.Jmap, b.K, o.Tol)
			}
		} else {
			io.Pfred("warning: Eid=%d does not correspond to emwave element\n", o.Eid)
		}
	}
}

// CheckGlobal compares the global Kb of the domain with finite differences of the global residual
func (o *Kb) CheckGlobal(d *fem.Domain) {
	o.aux_backup(d)
	defer func() { o.aux_restore(d) }()
	o.step()
	for J := 0; J < d.Ny; J++ {
		for I := 0; I < d.Ny; I++ {
			dnum := fd.Derivative(func(x float64) float64 {
				tmp := d.Sol.Y[J]
				d.Sol.Y[J] = x
				defer func() { d.Sol.Y[J] = tmp }()
				err := d.AssembleFb()
				if err != nil {
					chk.Panic("testing: CheckGlobal: cannot assemble residual:\n%v", err)
				}
				return -d.Fb[I]
			}, d.Sol.Y[J], &fd.Settings{Formula: fd.Central, Step: o.Step})
			chk.AnaNum(o.Tst, io.Sf("Kb%3d%3d", I, J), o.Tol, d.Kb.At(I, J), dnum, o.Verb)
			o.Nchecks++
		}
	}
}

// step sets the default step
func (o *Kb) step() {
	if o.Step < 1e-14 {
		o.Step = 1e-6
	}
}

// aux_backup generates auxiliary arrays
func (o *Kb) aux_backup(d *fem.Domain) {
	o.Fbtmp = make([]float64, d.Ny)
	o.Ybkp = make([]float64, d.Ny)
	copy(o.Ybkp, d.Sol.Y)
}

// aux_restore restores the solution
func (o *Kb) aux_restore(d *fem.Domain) {
	copy(d.Sol.Y, o.Ybkp)
}

// check performs the checking of Kb using numerical derivatives
func (o *Kb) check(label string, d *fem.Domain, e ele.Element, Imap, Jmap []int, Kana [][]float64, tol float64) {
	var imap, jmap []int
	if o.Ni < 0 {
		imap = Imap
	} else {
		if o.Ni <= len(Imap) {
			imap = Imap[:o.Ni]
		}
	}
	if o.Nj < 0 {
		jmap = Jmap
	} else {
		if o.Nj <= len(Jmap) {
			jmap = Jmap[:o.Nj]
		}
	}
	o.step()
	settings := &fd.Settings{Formula: fd.Central, Step: o.Step}
	var tmp float64
	for i, I := range imap {
		for j, J := range jmap {
			dnum := fd.Derivative(func(x float64) (res float64) {
				tmp, d.Sol.Y[J] = d.Sol.Y[J], x
				for k := 0; k < d.Ny; k++ {
					o.Fbtmp[k] = 0
				}
				err := e.AddToRhs(o.Fbtmp, d.Sol)
				if err != nil {
					chk.Panic("testing: check: cannot add element contribution to residual:\n%v", err)
				}
				res = -o.Fbtmp[I]
				d.Sol.Y[J] = tmp
				return res
			}, d.Sol.Y[J], settings)
			chk.AnaNum(o.Tst, io.Sf(label+"%3d%3d", i, j), tol, Kana[i][j], dnum, o.Verb)
			o.Nchecks++
		}
	}
}
