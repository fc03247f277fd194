// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

import (
	"github.com/cpmech/gosl/chk"
	"github.com/lacrymose/goma/inp"
)

// Term identifies a weak-form contribution category
type Term int

// terms
const (
	Advection Term = iota // mass-like term: (emf·EMF + conj·EMF_partner) φ_i
	Diffusion             // curl term: -ε_pq,axis ∂φ_i/∂x_p cross_q
	NumTerms
)

// termKeys maps input keys to terms
var termKeys = map[string]Term{"adv": Advection, "dif": Diffusion}

// Problem describes enabled terms, scales and active variable families
type Problem interface {
	Omega() float64               // angular frequency
	Enabled(eq Var, t Term) bool  // term t is enabled in equation eq
	Scale(eq Var, t Term) float64 // multiplier of term t in equation eq
	Active(col int) bool          // variable family of column col is active
	Nspecies() int                // number of species equations
	ScaledDerivs() bool           // use coefficient/n and coefficient/k as coefficient derivatives
}

// Description implements Problem with tables
type Description struct {
	W      float64                    // angular frequency
	Eqs    [NumVars]bool              // active equations
	Terms  [NumVars][NumTerms]bool    // enabled terms
	Scales [NumVars][NumTerms]float64 // terms multipliers
	Cols   []bool                     // [NumCols+nspec] active columns
	Nspec  int                        // number of species
	Scaled bool                       // scaled coefficient derivatives
}

// NewEmptyDescription returns a description without equations or active variables
func NewEmptyDescription(omega float64, nspec int) *Description {
	return &Description{W: omega, Cols: make([]bool, NumCols+nspec), Nspec: nspec}
}

// NewDescription builds a problem description from input data
func NewDescription(sim *inp.Simulation) (o *Description, err error) {
	o = NewEmptyDescription(sim.Data.Omega, sim.Data.Nspecies)
	switch sim.Data.CoefDerivs {
	case "", "exact":
	case "scaled":
		o.Scaled = true
	default:
		return nil, chk.Err("coefficient derivatives option %q is invalid; options are \"exact\" and \"scaled\"", sim.Data.CoefDerivs)
	}
	for _, edat := range sim.Eqs {
		eq, err := ParseVar(edat.Key)
		if err != nil {
			return nil, err
		}
		var flags [NumTerms]bool
		for _, key := range edat.Terms {
			t, ok := termKeys[key]
			if !ok {
				return nil, chk.Err("term %q of equation %q is invalid; options are \"adv\" and \"dif\"", key, edat.Key)
			}
			flags[t] = true
		}
		o.SetEquation(eq, flags[Advection], flags[Diffusion])
		for key, val := range edat.Scales {
			t, ok := termKeys[key]
			if !ok {
				return nil, chk.Err("scale %q of equation %q is invalid", key, edat.Key)
			}
			o.Scales[eq.Index()][t] = val
		}
	}
	for _, key := range sim.Vars {
		switch key {
		case "temp":
			o.Activate(ColTemp)
		case "mesh":
			for b := 0; b < sim.Ndim; b++ {
				o.Activate(ColMesh(b))
			}
		case "spec":
			for w := 0; w < o.Nspec; w++ {
				o.Activate(ColSpecies(w))
			}
		default:
			v, err := ParseVar(key)
			if err != nil {
				return nil, chk.Err("variable %q is invalid; options are \"temp\", \"mesh\", \"spec\" and the EM keys", key)
			}
			o.Activate(v.Col())
		}
	}
	return
}

// SetEquation activates equation eq (and its unknown) with unit multipliers
func (o *Description) SetEquation(eq Var, adv, dif bool) {
	i := eq.Index()
	o.Eqs[i] = true
	o.Terms[i][Advection] = adv
	o.Terms[i][Diffusion] = dif
	o.Scales[i][Advection] = 1
	o.Scales[i][Diffusion] = 1
	o.Cols[eq.Col()] = true
}

// Activate activates variable families
func (o *Description) Activate(cols ...int) {
	for _, c := range cols {
		o.Cols[c] = true
	}
}

// Equations returns the active equations ordered by index
func (o *Description) Equations() (eqs []Var) {
	for _, v := range AllVars() {
		if o.Eqs[v.Index()] {
			eqs = append(eqs, v)
		}
	}
	return
}

// Omega returns the angular frequency
func (o *Description) Omega() float64 { return o.W }

// Enabled tells whether term t is enabled in equation eq
func (o *Description) Enabled(eq Var, t Term) bool {
	i := eq.Index()
	return o.Eqs[i] && o.Terms[i][t]
}

// Scale returns the multiplier of term t in equation eq
func (o *Description) Scale(eq Var, t Term) float64 { return o.Scales[eq.Index()][t] }

// Active tells whether the family of column col is active
func (o *Description) Active(col int) bool { return col >= 0 && col < len(o.Cols) && o.Cols[col] }

// Nspecies returns the number of species
func (o *Description) Nspecies() int { return o.Nspec }

// ScaledDerivs tells whether to use the scaled coefficient derivatives
func (o *Description) ScaledDerivs() bool { return o.Scaled }
