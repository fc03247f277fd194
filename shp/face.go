// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Lin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements (faces of 2D shapes) at {r} natural coordinates
//
//   0-----+-----1 ---- r
//  (-1)        (+1)
//
func Lin2(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r := R[0]
	S[0] = (1.0 - r) / 2.0
	S[1] = (1.0 + r) / 2.0
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = +0.5
}

// initFace allocates face data; faces of 2D shapes are lin2 and faces of 3D shapes are tri3
func (o *Shape) initFace() {
	m := o.Gndim
	o.FaceFunc, o.FaceNverts = Lin2, 2
	if m == 3 {
		o.FaceFunc, o.FaceNverts = Tri3, 3
	}
	o.Sf = make([]float64, o.FaceNverts)
	o.DSfdR = make([][]float64, o.FaceNverts)
	for k := 0; k < o.FaceNverts; k++ {
		o.DSfdR[k] = make([]float64, m-1)
	}
	o.Fnormal = make([]float64, m)
	o.DFndx = make([][][]float64, m)
	for p := 0; p < m; p++ {
		o.DFndx[p] = make([][]float64, m)
		for b := 0; b < m; b++ {
			o.DFndx[p][b] = make([]float64, o.FaceNverts)
		}
	}
}

// GetFaceIps returns the integration points of faces. nip == 0 means default
func (o *Shape) GetFaceIps(nip int) (ips []Ipoint, err error) {
	key, def := "lin", 2
	if o.Gndim == 3 {
		key, def = "tri", 3
	}
	if nip == 0 {
		nip = def
	}
	set, ok := ipsfactory[key][nip]
	if !ok {
		return nil, chk.Err("cannot find face integration points for %q with nip=%d", o.Type, nip)
	}
	ips = make([]Ipoint, len(set))
	copy(ips, set)
	return
}

// CalcAtFaceIp calculates face data at natural coordinate r of face iface
//  Input:
//   x[ndim][nverts]  -- coordinates matrix of solid element
//   iface            -- local index of face
//   ip               -- natural coordinates of face
//  Output:
//   Sf, DSfdR, the outward normal Fnormal scaled by the face Jacobian (|Fnormal| ⋅ w is the
//   area of the face associated with ip) and DFndx
func (o *Shape) CalcAtFaceIp(x [][]float64, iface int, ip Ipoint) (err error) {
	if iface < 0 || iface >= len(o.FaceLocalVerts) {
		return chk.Err("face index %d is out of range for %q", iface, o.Type)
	}
	fverts := o.FaceLocalVerts[iface]
	o.FaceFunc(o.Sf, o.DSfdR, ip[:], true)

	// tangents: t_ri = sum_k x_i^k dSf^k/dR_r
	var t [2][3]float64
	for r := 0; r < o.Gndim-1; r++ {
		for i := 0; i < o.Gndim; i++ {
			for k, m := range fverts {
				t[r][i] += o.DSfdR[k][r] * x[i][m]
			}
		}
	}

	// unsigned normal and its derivatives w.r.t x_bk
	switch o.Gndim {
	case 2:
		o.Fnormal[0], o.Fnormal[1] = t[0][1], -t[0][0]
		for k := range fverts {
			o.DFndx[0][0][k], o.DFndx[0][1][k] = 0, o.DSfdR[k][0]
			o.DFndx[1][0][k], o.DFndx[1][1][k] = -o.DSfdR[k][0], 0
		}
	case 3:
		u, v := t[0], t[1]
		nrm := cross3(u, v)
		copy(o.Fnormal, nrm[:])
		for b := 0; b < 3; b++ {
			var eb [3]float64
			eb[b] = 1
			dudb, dvdb := cross3(eb, v), cross3(u, eb)
			for p := 0; p < 3; p++ {
				for k := range fverts {
					o.DFndx[p][b][k] = dudb[p]*o.DSfdR[k][0] + dvdb[p]*o.DSfdR[k][1]
				}
			}
		}
	}
	if floats.Norm(o.Fnormal, 2) < 1e-14 {
		return chk.Err("face %d of %q is degenerated", iface, o.Type)
	}

	// orient outwards: from element centroid to face centroid
	if floats.Dot(o.faceDir(x, iface), o.Fnormal) < 0 {
		floats.Scale(-1, o.Fnormal)
		for p := range o.DFndx {
			for b := range o.DFndx[p] {
				floats.Scale(-1, o.DFndx[p][b])
			}
		}
	}
	return
}

// FaceNormal computes the outward unit normal of a straight face
func (o *Shape) FaceNormal(x [][]float64, iface int) (normal []float64, err error) {
	var centre Ipoint
	if o.Gndim == 3 {
		centre = Ipoint{1.0 / 3.0, 1.0 / 3.0, 0, 0}
	}
	err = o.CalcAtFaceIp(x, iface, centre)
	if err != nil {
		return
	}
	normal = make([]float64, o.Gndim)
	copy(normal, o.Fnormal)
	floats.Scale(1.0/floats.Norm(normal, 2), normal)
	return
}

// FaceRealCoords returns the real coordinates (y) of a face integration point
func (o *Shape) FaceRealCoords(x [][]float64, iface int, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.FaceFunc(o.Sf, o.DSfdR, ip[:], false)
	for i := 0; i < ndim; i++ {
		for k, m := range o.FaceLocalVerts[iface] {
			y[i] += o.Sf[k] * x[i][m]
		}
	}
	return
}

// faceDir returns the vector from the element centroid to the centroid of face iface
func (o *Shape) faceDir(x [][]float64, iface int) (dir []float64) {
	fverts := o.FaceLocalVerts[iface]
	dir = make([]float64, o.Gndim)
	for i := 0; i < o.Gndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			dir[i] -= x[i][m] / float64(o.Nverts)
		}
		for _, m := range fverts {
			dir[i] += x[i][m] / float64(len(fverts))
		}
	}
	return
}

// cross3 returns u × v
func cross3(u, v [3]float64) (w [3]float64) {
	w[0] = u[1]*v[2] - u[2]*v[1]
	w[1] = u[2]*v[0] - u[0]*v[2]
	w[2] = u[0]*v[1] - u[1]*v[0]
	return
}
