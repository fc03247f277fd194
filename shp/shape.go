// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements isoparametric shape functions with sensitivities w.r.t nodal coordinates
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Ipoint holds the natural coordinates {r, s, t} and the weight w of an integration point
type Ipoint [4]float64

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data and the scratchpad computed at integration points
type Shape struct {

	// geometry
	Type           string      // name; e.g. "tri3"
	Gndim          int         // geometry of shape; e.g. "tri3" => gndim = 2
	Nverts         int         // number of vertices
	NatCoords      [][]float64 // [gndim][nverts] natural coordinates of vertices
	FaceLocalVerts [][]int     // [nfaces][nverts_on_face] local vertices on faces
	Func           ShpFunc     // shape functions and derivatives
	DefaultNip     int         // default number of integration points

	// volume data
	S    []float64   // [nverts] shape functions
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	G    [][]float64 // [nverts][gndim] derivatives of S w.r.t real coordinates
	J    float64     // determinant of dxdR

	// derivatives w.r.t nodal coordinates x_bk
	DJdx [][]float64     // [gndim][nverts] ∂J/∂x_bk = J G_kb
	DGdx [][][][]float64 // [nverts][gndim][gndim][nverts] ∂G_mp/∂x_bk = -G_mb G_kp

	// face data
	FaceFunc   ShpFunc       // shape functions of faces
	FaceNverts int           // number of vertices on each face
	Sf         []float64     // [nfverts] face shape functions
	DSfdR      [][]float64   // [nfverts][gndim-1] derivatives of Sf w.r.t natural coordinates
	Fnormal    []float64     // [gndim] outward normal scaled by the face Jacobian
	DFndx      [][][]float64 // [gndim][gndim][nfverts] ∂Fnormal_p/∂x_bk (k: vertex on face)

	// scratchpad
	dxdR *mat.Dense // [gndim][gndim] dx/dR
	dRdx *mat.Dense // [gndim][gndim] dR/dx
}

// New allocates a new shape structure from factory
func New(name string) (o *Shape, err error) {
	alloc, ok := factory[name]
	if !ok {
		return nil, chk.Err("cannot find shape type %q in factory", name)
	}
	o = alloc()
	n, m := o.Nverts, o.Gndim
	o.S = make([]float64, n)
	o.DSdR = utl.Alloc(n, m)
	o.G = utl.Alloc(n, m)
	o.DJdx = utl.Alloc(m, n)
	o.DGdx = make([][][][]float64, n)
	for i := 0; i < n; i++ {
		o.DGdx[i] = make([][][]float64, m)
		for p := 0; p < m; p++ {
			o.DGdx[i][p] = utl.Alloc(m, n)
		}
	}
	o.dxdR = mat.NewDense(m, m, nil)
	o.dRdx = mat.NewDense(m, m, nil)
	o.initFace()
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts]  -- coordinates matrix of solid element
//   ip               -- natural coordinates
//   meshDerivs       -- also compute derivatives w.r.t nodal coordinates
//  Output:
//   S, DSdR, G, J and, if meshDerivs, DJdx and DGdx
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, meshDerivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip[:], true)

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j = sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			v := 0.0
			for n := 0; n < o.Nverts; n++ {
				v += x[i][n] * o.DSdR[n][j]
			}
			o.dxdR.Set(i, j, v)
		}
	}

	// dRdx := inv(dxdR)
	o.J = mat.Det(o.dxdR)
	if o.J < 1e-14 {
		return chk.Err("Jacobian determinant of %q is too small or negative. J = %g", o.Type, o.J)
	}
	err = o.dRdx.Inverse(o.dxdR)
	if err != nil {
		return chk.Err("cannot invert dx/dR of %q:\n%v", o.Type, err)
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dR_i := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.dRdx.At(i, j)
			}
		}
	}
	if !meshDerivs {
		return
	}

	// mesh sensitivities
	for b := 0; b < o.Gndim; b++ {
		for k := 0; k < o.Nverts; k++ {
			o.DJdx[b][k] = o.J * o.G[k][b]
		}
	}
	for m := 0; m < o.Nverts; m++ {
		for p := 0; p < o.Gndim; p++ {
			for b := 0; b < o.Gndim; b++ {
				for k := 0; k < o.Nverts; k++ {
					o.DGdx[m][p][b][k] = -o.G[m][b] * o.G[k][p]
				}
			}
		}
	}
	return
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip[:], false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// factory holds all shape allocators
var factory = map[string]func() *Shape{}
