// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// default values
const (
	DefaultMu   = 1.4e-7   // magnetic permeability
	DefaultElem = "emwave" // element type
)

// Data holds global data for simulations
type Data struct {

	// global information
	Desc string `json:"desc" yaml:"desc"` // description of simulation

	// problem definition and options
	Omega      float64 `json:"omega" yaml:"omega"`           // angular frequency
	Mu         float64 `json:"mu" yaml:"mu"`                 // magnetic permeability; 0 => DefaultMu
	Nspecies   int     `json:"nspecies" yaml:"nspecies"`     // number of species
	CoefDerivs string  `json:"coefderivs" yaml:"coefderivs"` // derivatives of coefficients w.r.t n and k: "exact" (default) or "scaled"
	Axisym     bool    `json:"axisym" yaml:"axisym"`         // axisymmetric; x is the radial coordinate
}

// EqData holds data of one EM equation
type EqData struct {
	Key    string             `json:"key" yaml:"key"`       // equation key; e.g. "er1", "hi3"
	Terms  []string           `json:"terms" yaml:"terms"`   // enabled terms; e.g. ["adv", "dif"]
	Scales map[string]float64 `json:"scales" yaml:"scales"` // [optional] multipliers of terms; e.g. {"dif": 2}
}

// FaceBc holds face boundary condition
type FaceBc struct {
	Key    string    `json:"key" yaml:"key"`       // key indicating type of bcs. ex: emfar_er, emfar_hi
	Cell   int       `json:"cell" yaml:"cell"`     // id of cell
	Face   int       `json:"face" yaml:"face"`     // local index of face
	Normal []float64 `json:"normal" yaml:"normal"` // [optional] outward normal; computed from geometry if empty
	Vals   []float64 `json:"vals" yaml:"vals"`     // values. ex: {n2, k2, Re(inc), Im(inc)}
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data        `json:"data" yaml:"data"`       // stores global simulation data
	Mesh    Mesh        `json:"mesh" yaml:"mesh"`       // mesh
	Eqs     []*EqData   `json:"eqs" yaml:"eqs"`         // active equations
	Vars    []string    `json:"vars" yaml:"vars"`       // extra active variables; e.g. "temp", "mesh", "spec", "hr1"
	Mats    []*Material `json:"mats" yaml:"mats"`       // materials
	FaceBcs []*FaceBc   `json:"facebcs" yaml:"facebcs"` // face boundary conditions

	// derived
	Key       string               // simulation key; e.g. mysim01.sim => mysim01
	Ndim      int                  // space dimension
	MatModels map[string]*Material // materials and models
}

// ReadSim reads all simulation data from a .sim (JSON) or .yaml file
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := os.ReadFile(os.ExpandEnv(simfilepath))
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	ext := strings.ToLower(filepath.Ext(simfilepath))
	o, err = DecodeSim(b, ext == ".yaml" || ext == ".yml")
	if err != nil {
		return nil, chk.Err("cannot load simulation file %q:\n%v", simfilepath, err)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))
	return
}

// DecodeSim decodes simulation data from JSON or YAML bytes, sets defaults and initialises models
func DecodeSim(b []byte, isYaml bool) (o *Simulation, err error) {

	// decode
	o = new(Simulation)
	if isYaml {
		err = yaml.Unmarshal(b, o)
	} else {
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation data:\n%v", err)
	}

	// global data
	if o.Data.Mu == 0 {
		o.Data.Mu = DefaultMu
	}
	if o.Data.Omega < 0 {
		return nil, chk.Err("angular frequency must be non-negative. omega = %g is invalid", o.Data.Omega)
	}
	if o.Data.Nspecies < 0 {
		return nil, chk.Err("number of species must be non-negative. nspecies = %d is invalid", o.Data.Nspecies)
	}

	// mesh
	o.Ndim, err = o.Mesh.init()
	if err != nil {
		return nil, err
	}
	if o.Data.Axisym && o.Ndim != 2 {
		return nil, chk.Err("axisymmetric simulations require ndim = 2. ndim = %d is invalid", o.Ndim)
	}

	// equations
	if len(o.Eqs) == 0 {
		return nil, chk.Err("at least one equation must be given")
	}

	// materials
	o.MatModels, err = initMaterials(o.Mats, o.Ndim, o.Data.Nspecies)
	if err != nil {
		return nil, err
	}
	for _, c := range o.Mesh.Cells {
		if _, ok := o.MatModels[c.Mat]; !ok {
			return nil, chk.Err("cannot find material named %q of cell %d", c.Mat, c.Id)
		}
	}

	// boundary conditions
	for _, bc := range o.FaceBcs {
		if bc.Cell < 0 || bc.Cell >= len(o.Mesh.Cells) {
			return nil, chk.Err("face boundary condition %q refers to cell %d which does not exist", bc.Key, bc.Cell)
		}
		if len(bc.Normal) != 0 && len(bc.Normal) != o.Ndim {
			return nil, chk.Err("normal of face boundary condition %q must have %d components", bc.Key, o.Ndim)
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// GetMat returns a material
//  Note: returns nil if not found
func (o *Simulation) GetMat(name string) *Material {
	return o.MatModels[name]
}

// CellFaceBcs returns the face boundary conditions of cell
func (o *Simulation) CellFaceBcs(cellId int) (bcs []*FaceBc) {
	for _, bc := range o.FaceBcs {
		if bc.Cell == cellId {
			bcs = append(bcs, bc)
		}
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
