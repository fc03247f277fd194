// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/lacrymose/goma/mdl/optical"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name" yaml:"name"`   // name of material
	Model string     `json:"model" yaml:"model"` // name of optical model; e.g. "cte", "lin", "drude"
	Eps   float64    `json:"eps" yaml:"eps"`     // real permittivity multiplying (n + i k)²; 0 => 1
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // prms holds all model parameters for this material

	// derived
	Optical optical.Model `json:"-" yaml:"-"` // pointer to actual optical model
}

// initMaterials allocates and initialises the models of all materials
func initMaterials(mats []*Material, ndim, nspec int) (db map[string]*Material, err error) {
	db = make(map[string]*Material)
	for _, m := range mats {
		if _, ok := db[m.Name]; ok {
			return nil, chk.Err("material named %q is repeated", m.Name)
		}
		if m.Eps == 0 {
			m.Eps = 1
		}
		m.Optical, err = optical.New(m.Model)
		if err != nil {
			return nil, chk.Err("cannot allocate model of material %q:\n%v", m.Name, err)
		}
		err = m.Optical.Init(ndim, nspec, m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise model of material %q:\n%v", m.Name, err)
		}
		db[m.Name] = m
	}
	return
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("{name:%q, model:%q, eps:%g, prms:[", o.Name, o.Model, o.Eps)
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%s=%g", p.N, p.V)
	}
	return l + "]}"
}
