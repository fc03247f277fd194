// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optical

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Drude implements the free-electron (Drude) dielectric model with a temperature dependent
// plasma frequency
//
//   (n + i k)² = ε∞ - ωp² / (ω² + i γ ω)      with      ωp = ωp0 + dωp/dT (T - T0)
//
type Drude struct {
	Einf  float64 // high-frequency permittivity ε∞
	Wp0   float64 // plasma frequency @ T0
	DwpDT float64 // dωp/dT
	T0    float64 // reference temperature
	Gam   float64 // damping γ
	W     float64 // angular frequency ω
}

// add model to factory
func init() {
	allocators["drude"] = func() Model { return new(Drude) }
}

// Init initialises this structure
func (o *Drude) Init(ndim, nspec int, prms dbf.Params) (err error) {
	if o.Wp0, err = prmRequired(prms, "wp", "Drude"); err != nil {
		return
	}
	if o.W, err = prmRequired(prms, "w", "Drude"); err != nil {
		return
	}
	if o.W <= 0 {
		return chk.Err("Drude model: angular frequency 'w' must be positive. %g is invalid", o.W)
	}
	o.Einf = prmOrDefault(prms, "einf", 1)
	o.Gam = prmOrDefault(prms, "gam", 0)
	o.DwpDT = prmOrDefault(prms, "dwpdT", 0)
	o.T0 = prmOrDefault(prms, "T0", 0)
	return
}

// N returns the refractive index
func (o *Drude) N(p *Partials, s *State) float64 {
	nc, dncdT := o.calc(s)
	if p != nil {
		p.zero()
		p.DT = real(dncdT)
	}
	return real(nc)
}

// K returns the extinction coefficient
func (o *Drude) K(p *Partials, s *State) float64 {
	nc, dncdT := o.calc(s)
	if p != nil {
		p.zero()
		p.DT = imag(dncdT)
	}
	return imag(nc)
}

// calc computes n + i k and its derivative w.r.t temperature
func (o *Drude) calc(s *State) (nc, dncdT complex128) {
	wp := o.Wp0 + o.DwpDT*(s.T-o.T0)
	den := complex(o.W*o.W, o.Gam*o.W)
	eps := complex(o.Einf, 0) - complex(wp*wp, 0)/den
	nc = cmplx.Sqrt(eps)
	depsdT := complex(-2*wp*o.DwpDT, 0) / den
	dncdT = depsdT / (2 * nc)
	return
}
