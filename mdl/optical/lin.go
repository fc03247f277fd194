// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optical

import "github.com/cpmech/gosl/fun/dbf"

// Lin implements optical properties varying linearly with temperature, position and species
//
//   n = n0 + dndT (T - T0) + Σ_b dndx_b x_b + Σ_w dndc_w c_w
//   k = k0 + dkdT (T - T0) + Σ_b dkdx_b x_b + Σ_w dkdc_w c_w
//
type Lin struct {
	N0, K0     float64   // reference values
	T0         float64   // reference temperature
	DnDT, DkDT float64   // thermo-optic coefficients
	DnDx, DkDx []float64 // [ndim] spatial gradients
	DnDc, DkDc []float64 // [nspec] species coefficients
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises this structure
func (o *Lin) Init(ndim, nspec int, prms dbf.Params) (err error) {
	o.N0, err = prmRequired(prms, "n0", "Lin")
	if err != nil {
		return
	}
	o.K0 = prmOrDefault(prms, "k0", 0)
	o.T0 = prmOrDefault(prms, "T0", 0)
	o.DnDT = prmOrDefault(prms, "dndT", 0)
	o.DkDT = prmOrDefault(prms, "dkdT", 0)
	o.DnDx = make([]float64, ndim)
	o.DkDx = make([]float64, ndim)
	for b, key := range xKeys(ndim) {
		o.DnDx[b] = prmOrDefault(prms, "dnd"+key, 0)
		o.DkDx[b] = prmOrDefault(prms, "dkd"+key, 0)
	}
	o.DnDc = make([]float64, nspec)
	o.DkDc = make([]float64, nspec)
	for w := 0; w < nspec; w++ {
		o.DnDc[w] = prmOrDefault(prms, speciesKey("dndc", w), 0)
		o.DkDc[w] = prmOrDefault(prms, speciesKey("dkdc", w), 0)
	}
	return
}

// N returns the refractive index
func (o *Lin) N(p *Partials, s *State) float64 {
	return o.eval(p, s, o.N0, o.DnDT, o.DnDx, o.DnDc)
}

// K returns the extinction coefficient
func (o *Lin) K(p *Partials, s *State) float64 {
	return o.eval(p, s, o.K0, o.DkDT, o.DkDx, o.DkDc)
}

// eval computes a linear property and its partials
func (o *Lin) eval(p *Partials, s *State, v0, dT float64, dx, dc []float64) (res float64) {
	res = v0 + dT*(s.T-o.T0)
	for b, d := range dx {
		res += d * s.X[b]
	}
	for w, d := range dc {
		res += d * s.C[w]
	}
	if p != nil {
		p.DT = dT
		copy(p.DX, dx)
		copy(p.DC, dc)
	}
	return
}
