// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shapes
func init() {

	factory["tri3"] = func() *Shape {
		return &Shape{
			Type:           "tri3",
			Gndim:          2,
			Nverts:         3,
			NatCoords:      [][]float64{{0, 1, 0}, {0, 0, 1}},
			FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
			Func:           Tri3,
			DefaultNip:     3,
		}
	}

	factory["qua4"] = func() *Shape {
		return &Shape{
			Type:           "qua4",
			Gndim:          2,
			Nverts:         4,
			NatCoords:      [][]float64{{-1, 1, 1, -1}, {-1, -1, 1, 1}},
			FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
			Func:           Qua4,
			DefaultNip:     4,
		}
	}

	factory["tet4"] = func() *Shape {
		return &Shape{
			Type:           "tet4",
			Gndim:          3,
			Nverts:         4,
			NatCoords:      [][]float64{{0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}},
			FaceLocalVerts: [][]int{{0, 3, 2}, {0, 1, 3}, {0, 2, 1}, {1, 2, 3}},
			Func:           Tet4,
			DefaultNip:     4,
		}
	}
}

// Tri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s} natural coordinates
//
//   s
//   |
//   2, (0,1)
//   | ',
//   |   ',
//   |     ',
//   |       ',
//   0-----------1 ---- r
// (0,0)       (1,0)
//
func Tri3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = 1.0 - r - s
	S[1] = r
	S[2] = s
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s} natural coordinates
//
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    |           |
//    0-----------1
//
func Qua4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = (1.0 - r - s + r*s) / 4.0
	S[1] = (1.0 + r - s - r*s) / 4.0
	S[2] = (1.0 + r + s + r*s) / 4.0
	S[3] = (1.0 - r + s - r*s) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = (-1.0+s)/4.0, (-1.0+r)/4.0
	dSdR[1][0], dSdR[1][1] = (+1.0-s)/4.0, (-1.0-r)/4.0
	dSdR[2][0], dSdR[2][1] = (+1.0+s)/4.0, (+1.0+r)/4.0
	dSdR[3][0], dSdR[3][1] = (-1.0-s)/4.0, (+1.0-r)/4.0
}

// Tet4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tet4
// elements at {r,s,t} natural coordinates
func Tet4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s, t := R[0], R[1], R[2]
	S[0] = 1.0 - r - s - t
	S[1] = r
	S[2] = s
	S[3] = t
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1], dSdR[0][2] = -1.0, -1.0, -1.0
	dSdR[1][0], dSdR[1][1], dSdR[1][2] = 1.0, 0.0, 0.0
	dSdR[2][0], dSdR[2][1], dSdR[2][2] = 0.0, 1.0, 0.0
	dSdR[3][0], dSdR[3][1], dSdR[3][2] = 0.0, 0.0, 1.0
}
