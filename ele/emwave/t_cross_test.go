// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func checkComplex(tst *testing.T, msg string, tol float64, a, b []complex128) {
	for i := range a {
		chk.Float64(tst, msg+" (re)", tol, real(a[i]), real(b[i]))
		chk.Float64(tst, msg+" (im)", tol, imag(a[i]), imag(b[i]))
	}
}

func Test_cross01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cross01. Levi-Civita symbol")

	chk.Float64(tst, "ε012", 1e-17, LeviCivita(0, 1, 2), 1)
	chk.Float64(tst, "ε120", 1e-17, LeviCivita(1, 2, 0), 1)
	chk.Float64(tst, "ε201", 1e-17, LeviCivita(2, 0, 1), 1)
	chk.Float64(tst, "ε021", 1e-17, LeviCivita(0, 2, 1), -1)
	chk.Float64(tst, "ε210", 1e-17, LeviCivita(2, 1, 0), -1)
	chk.Float64(tst, "ε102", 1e-17, LeviCivita(1, 0, 2), -1)
	chk.Float64(tst, "ε010", 1e-17, LeviCivita(0, 1, 0), 0)
	chk.Float64(tst, "ε222", 1e-17, LeviCivita(2, 2, 2), 0)
	chk.Float64(tst, "ε013", 1e-17, LeviCivita(0, 1, 3), 0)
	chk.Float64(tst, "ε-1,0,1", 1e-17, LeviCivita(-1, 0, 1), 0)
	chk.Float64(tst, "ε3,1,2", 1e-17, LeviCivita(3, 1, 2), 0)
}

func Test_cross02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cross02. cross product laws")

	u := []complex128{1 + 2i, -0.5 + 1i, 3 - 1i}
	v := []complex128{-2 + 0.5i, 4, 1i}
	uv := make([]complex128, 3)
	vu := make([]complex128, 3)
	CrossC(uv, u, v)
	CrossC(vu, v, u)
	neg := []complex128{-vu[0], -vu[1], -vu[2]}
	checkComplex(tst, "u×v = -v×u", 1e-15, uv, neg)

	// reference: explicit formula
	ref := []complex128{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
	checkComplex(tst, "u×v", 1e-15, uv, ref)

	// v×v = 0 and the output is zeroed first
	w := []complex128{123, 456i, 7}
	CrossC(w, v, v)
	checkComplex(tst, "v×v", 1e-17, w, []complex128{0, 0, 0})

	// basis vectors
	e0 := []complex128{1, 0, 0}
	e1 := []complex128{0, 1, 0}
	CrossC(w, e0, e1)
	checkComplex(tst, "e0×e1", 1e-17, w, []complex128{0, 0, 1})
}
