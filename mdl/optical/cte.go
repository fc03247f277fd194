// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optical

import "github.com/cpmech/gosl/fun/dbf"

// Cte implements a medium with constant optical properties
type Cte struct {
	Nval float64 // refractive index
	Kval float64 // extinction coefficient
}

// add model to factory
func init() {
	allocators["cte"] = func() Model { return new(Cte) }
}

// Init initialises this structure
func (o *Cte) Init(ndim, nspec int, prms dbf.Params) (err error) {
	o.Nval, err = prmRequired(prms, "n", "Cte")
	if err != nil {
		return
	}
	o.Kval = prmOrDefault(prms, "k", 0)
	return
}

// N returns the refractive index
func (o *Cte) N(p *Partials, s *State) float64 {
	p.zero()
	return o.Nval
}

// K returns the extinction coefficient
func (o *Cte) K(p *Partials, s *State) float64 {
	p.zero()
	return o.Kval
}
