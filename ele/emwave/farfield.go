// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// BcKind identifies a far-field boundary condition
type BcKind int

// far-field conditions
const (
	FarFieldEr BcKind = iota // real part of n × (E τ/(1+Γ) + inc)
	FarFieldEi               // imaginary part of n × (E τ/(1+Γ) + inc)
	FarFieldHr               // real part of -E τ/(1+Γ)/z2 - inc/z2
	FarFieldHi               // imaginary part of -E τ/(1+Γ)/z2 - inc/z2
)

// bcKeys holds the keys of far-field conditions
var bcKeys = []string{"emfar_er", "emfar_ei", "emfar_hr", "emfar_hi"}

// String returns the key of the condition
func (k BcKind) String() string {
	if k < 0 || int(k) >= len(bcKeys) {
		return io.Sf("invalid(%d)", int(k))
	}
	return bcKeys[k]
}

// ParseBcKind returns the far-field condition of key; e.g. "emfar_er"
func ParseBcKind(key string) (k BcKind, err error) {
	for i, s := range bcKeys {
		if s == key {
			return BcKind(i), nil
		}
	}
	return -1, chk.Err("far-field boundary condition %q is not available", key)
}

// Row returns the equation receiving component p of the condition. E-tagged conditions act on the
// E equations and H-tagged ones on the H equations, with the real or imaginary part of the tag
func (k BcKind) Row(p int) Var {
	field, part := Efield, Real
	if k == FarFieldHr || k == FarFieldHi {
		field = Hfield
	}
	if k == FarFieldEi || k == FarFieldHi {
		part = Imag
	}
	return Var{field, part, p}
}

// FarFieldData holds the properties of the outside medium and the incident field
type FarFieldData struct {
	N, K float64       // refractive index and extinction coefficient of the outside medium
	Inc  [3]complex128 // incident field amplitude
}

// NewFarFieldData decodes {n2, k2, Re(inc_0..2), Im(inc_0..2)}
func NewFarFieldData(vals []float64) (o *FarFieldData, err error) {
	if len(vals) != 8 {
		return nil, chk.Err("far-field data requires 8 values (n2, k2, 3 real and 3 imaginary incident components). %d is incorrect", len(vals))
	}
	o = &FarFieldData{N: vals[0], K: vals[1]}
	for i := 0; i < 3; i++ {
		o.Inc[i] = complex(vals[2+i], vals[5+i])
	}
	return
}

// BoundaryPoint holds data @ boundary integration point
type BoundaryPoint struct {
	Ndim   int           // space dimension
	Normal [3]float64    // outward unit normal
	E      [3]complex128 // electric field inside
	Phi    []float64     // [ndof] interpolation functions of E
}

// NormalizeNormal scales Normal to unit length
func (o *BoundaryPoint) NormalizeNormal() error {
	nrm := floats.Norm(o.Normal[:], 2)
	if nrm < 1e-14 {
		return chk.Err("cannot normalize zero normal vector")
	}
	floats.Scale(1/nrm, o.Normal[:])
	return nil
}

// BcJacobian holds the derivatives of the far-field residual w.r.t the EM unknowns
type BcJacobian struct {
	D [3][NumVars][]float64 // [p][var][j] ∂f_p/∂u_{var,j}; nil for unknowns the residual does not depend upon
}

// NewBcJacobian allocates derivatives w.r.t the real and imaginary E dofs
func NewBcJacobian(ndof int) (o *BcJacobian) {
	o = new(BcJacobian)
	for p := 0; p < 3; p++ {
		for _, part := range []Part{Real, Imag} {
			for g := 0; g < 3; g++ {
				o.D[p][Var{Efield, part, g}.Index()] = make([]float64, ndof)
			}
		}
	}
	return
}

// Reflection returns the impedance of the outside medium together with the reflection and
// transmission coefficients Γ and τ at the interface
func Reflection(in *Medium, out *FarFieldData) (z2, gam, tau complex128) {
	ext := Medium{N: out.N, K: out.K, Eps: in.Eps, Mu: in.Mu}
	z1 := in.Impedance()
	z2 = ext.Impedance()
	gam = (z2 - z1) / (z2 + z1)
	tau = 2 * z2 / (z2 + z1)
	return
}

// FarField computes the residual of a far-field condition and, if jac != nil, its derivatives
//
//   z = sqrt(μ/ε)   Γ = (z2 - z1) / (z2 + z1)   τ = 2 z2 / (z2 + z1)
//
// where 1 is the inside medium and 2 the outside one. The permittivity and permeability of the
// inside medium are shared by the outside one
func FarField(res *[3]float64, jac *BcJacobian, kind BcKind, pt *BoundaryPoint, in *Medium, out *FarFieldData) (err error) {

	// impedances
	z2, gam, tau := Reflection(in, out)
	a := tau / (1 + gam)

	// c[p][g] = ∂f_p/∂E_g
	var f [3]complex128
	var c [3][3]complex128
	nrm := [3]complex128{complex(pt.Normal[0], 0), complex(pt.Normal[1], 0), complex(pt.Normal[2], 0)}
	switch kind {
	case FarFieldEr, FarFieldEi:
		var v [3]complex128
		for r := 0; r < 3; r++ {
			v[r] = a*pt.E[r] + out.Inc[r]
		}
		CrossC(f[:], nrm[:], v[:])
		for p := 0; p < 3; p++ {
			for q := 0; q < 3; q++ {
				for g := 0; g < 3; g++ {
					c[p][g] += complex(LeviCivita(p, q, g), 0) * nrm[q] * a
				}
			}
		}
	case FarFieldHr, FarFieldHi:
		for p := 0; p < 3; p++ {
			f[p] = -pt.E[p]*a/z2 - out.Inc[p]/z2
			c[p][p] = -a / z2
		}
	default:
		return chk.Err("far-field boundary condition %v is not available", kind)
	}

	// real or imaginary part
	sel := func(z complex128) float64 { return real(z) }
	if kind == FarFieldEi || kind == FarFieldHi {
		sel = func(z complex128) float64 { return imag(z) }
	}
	for p := 0; p < 3; p++ {
		res[p] = sel(f[p])
	}
	if jac == nil {
		return
	}

	// derivatives: E = Er + i Ei  =>  ∂f/∂Er_g = c_pg  and  ∂f/∂Ei_g = i c_pg
	for p := 0; p < 3; p++ {
		for g := 0; g < 3; g++ {
			dr := sel(c[p][g])
			di := sel(1i * c[p][g])
			Dr := jac.D[p][Var{Efield, Real, g}.Index()]
			Di := jac.D[p][Var{Efield, Imag, g}.Index()]
			for j, phj := range pt.Phi {
				Dr[j] = dr * phj
				Di[j] = di * phj
			}
		}
	}
	return
}
