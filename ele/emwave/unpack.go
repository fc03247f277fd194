// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

import "github.com/cpmech/gosl/chk"

// Unpacked holds the variables and coefficients of one EM equation @ point
//
//  E equations:   emf = ω Im(ε)    conj = ± ω Re(ε)    (+ real, - imag)
//  H equations:   emf = 0          conj = ∓ ω μ        (- real, + imag)
//
type Unpacked struct {
	Eq       Var        // equation (and unknown) being assembled
	Partner  Var        // same-axis unknown with opposite phase
	Axis     int        // curl axis
	Cross    Field      // Maxwell-paired field
	EMF      float64    // value of Eq
	EMFp     float64    // value of Partner
	CrossVal [3]float64 // value of the paired field with the same phase

	// coefficients and derivatives w.r.t n and k
	Emf, Conj        float64
	DEmfDn, DEmfDk   float64
	DConjDn, DConjDk float64
}

// Unpack selects field values and computes the coefficients of equation eq
func Unpack(u *Unpacked, eq Var, fld *Fields, med *Medium, omega float64, scaled bool) (err error) {
	if !eq.Valid() {
		return chk.Err("invalid EM variable %v", eq)
	}
	u.Eq = eq
	u.Partner = eq.Partner()
	u.Axis = eq.Axis
	u.Cross = eq.CrossField()
	u.EMF = fld.Get(eq)
	u.EMFp = fld.Get(u.Partner)
	u.CrossVal = fld.Vec(u.Cross, eq.Part)

	// sign of conjugate coefficient
	sgn := 1.0
	if eq.Part == Imag {
		sgn = -1.0
	}

	switch eq.Field {
	case Efield:
		eps := med.Permittivity()
		u.Emf = omega * imag(eps)
		u.Conj = sgn * omega * real(eps)
		if scaled {
			u.DEmfDn, u.DEmfDk = divOrZero(u.Emf, med.N), divOrZero(u.Emf, med.K)
			u.DConjDn, u.DConjDk = divOrZero(u.Conj, med.N), divOrZero(u.Conj, med.K)
			return
		}
		// Re(ε) = (n² - k²) ε_r   and   Im(ε) = 2 n k ε_r
		u.DEmfDn = omega * 2 * med.K * med.Eps
		u.DEmfDk = omega * 2 * med.N * med.Eps
		u.DConjDn = sgn * omega * 2 * med.N * med.Eps
		u.DConjDk = -sgn * omega * 2 * med.K * med.Eps
	case Hfield:
		u.Emf = 0
		u.Conj = -sgn * omega * med.Mu
		u.DEmfDn, u.DEmfDk, u.DConjDn, u.DConjDk = 0, 0, 0, 0
	default:
		return chk.Err("invalid EM field %d", eq.Field)
	}
	return
}

// divOrZero returns a/b or zero if b is zero
func divOrZero(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
