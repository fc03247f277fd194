// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/lacrymose/goma/inp"

// NaturalBc holds information on natural boundary conditions acting on faces
type NaturalBc struct {
	Key     string    // key such as emfar_er, emfar_hi, etc...
	IdxFace int       // local index of face
	Normal  []float64 // [optional] outward normal
	Vals    []float64 // values; e.g. properties of outside medium
}

// BcValue holds the value of a natural boundary condition @ one vertex of a face
type BcValue struct {
	Key  string     // key of condition
	Face int        // local index of face
	Vert int        // global vertex id
	R    [3]float64 // residual components
}

// NewNaturalBcs converts input data of face conditions
func NewNaturalBcs(bcs []*inp.FaceBc) (res []*NaturalBc) {
	for _, bc := range bcs {
		res = append(res, &NaturalBc{Key: bc.Key, IdxFace: bc.Face, Normal: bc.Normal, Vals: bc.Vals})
	}
	return
}
