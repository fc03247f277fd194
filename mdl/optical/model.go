// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package optical implements models for the complex refractive index n + i k
package optical

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines optical models returning the refractive index n and the extinction coefficient k
// together with their pointwise partial derivatives
type Model interface {
	Init(ndim, nspec int, prms dbf.Params) error // Init initialises this structure
	N(p *Partials, s *State) float64             // refractive index; p may be nil
	K(p *Partials, s *State) float64             // extinction coefficient; p may be nil
}

// New optical model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'optical' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
