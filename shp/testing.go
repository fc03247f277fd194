// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/diff/fd"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckMeshDerivs checks the derivatives of J and G w.r.t nodal coordinates using finite differences
func CheckMeshDerivs(tst *testing.T, shape *Shape, x [][]float64, ip Ipoint, tol float64, verbose bool) {

	// analytical
	err := shape.CalcAtIp(x, ip, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	n, m := shape.Nverts, shape.Gndim
	dJdx := utl.Alloc(m, n)
	for b := 0; b < m; b++ {
		copy(dJdx[b], shape.DJdx[b])
	}
	dGdx := make([][][][]float64, n)
	for i := 0; i < n; i++ {
		dGdx[i] = make([][][]float64, m)
		for p := 0; p < m; p++ {
			dGdx[i][p] = utl.Alloc(m, n)
			for b := 0; b < m; b++ {
				copy(dGdx[i][p][b], shape.DGdx[i][p][b])
			}
		}
	}

	// numerical
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for b := 0; b < m; b++ {
		for k := 0; k < n; k++ {
			xbk := x[b][k]
			perturbed := func(val float64, out func() float64) float64 {
				x[b][k] = val
				defer func() { x[b][k] = xbk }()
				if e := shape.CalcAtIp(x, ip, false); e != nil {
					chk.Panic("CalcAtIp failed:\n%v", e)
				}
				return out()
			}
			dnum := fd.Derivative(func(val float64) float64 {
				return perturbed(val, func() float64 { return shape.J })
			}, xbk, settings)
			chk.AnaNum(tst, io.Sf("dJ/dx[%d][%d]", b, k), tol, dJdx[b][k], dnum, verbose)
			for i := 0; i < n; i++ {
				for p := 0; p < m; p++ {
					dnum = fd.Derivative(func(val float64) float64 {
						return perturbed(val, func() float64 { return shape.G[i][p] })
					}, xbk, settings)
					chk.AnaNum(tst, io.Sf("dG[%d][%d]/dx[%d][%d]", i, p, b, k), tol, dGdx[i][p][b][k], dnum, verbose)
				}
			}
		}
	}
}

// CheckFaceDerivs checks the derivatives of the scaled face normal w.r.t nodal coordinates using
// finite differences
func CheckFaceDerivs(tst *testing.T, shape *Shape, x [][]float64, iface int, ip Ipoint, tol float64, verbose bool) {

	// analytical
	err := shape.CalcAtFaceIp(x, iface, ip)
	if err != nil {
		tst.Errorf("CalcAtFaceIp failed:\n%v", err)
		return
	}
	m, nf := shape.Gndim, shape.FaceNverts
	dNdx := make([][][]float64, m)
	for p := 0; p < m; p++ {
		dNdx[p] = utl.Alloc(m, nf)
		for b := 0; b < m; b++ {
			copy(dNdx[p][b], shape.DFndx[p][b])
		}
	}

	// numerical
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for b := 0; b < m; b++ {
		for k, vert := range shape.FaceLocalVerts[iface] {
			xbk := x[b][vert]
			for p := 0; p < m; p++ {
				dnum := fd.Derivative(func(val float64) float64 {
					x[b][vert] = val
					defer func() { x[b][vert] = xbk }()
					if e := shape.CalcAtFaceIp(x, iface, ip); e != nil {
						chk.Panic("CalcAtFaceIp failed:\n%v", e)
					}
					return shape.Fnormal[p]
				}, xbk, settings)
				chk.AnaNum(tst, io.Sf("dN%d/dx[%d][%d]", p, b, vert), tol, dNdx[p][b][k], dnum, verbose)
			}
		}
	}
}
