// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Vert holds vertex data
type Vert struct {
	Id int       `json:"id" yaml:"id"` // id
	C  []float64 `json:"c" yaml:"c"`   // coordinates (size==2 or 3)
}

// Cell holds cell data
type Cell struct {
	Id    int    `json:"id" yaml:"id"`       // cell id
	Type  string `json:"type" yaml:"type"`   // geometry type; e.g. "tri3", "qua4", "tet4"
	Verts []int  `json:"verts" yaml:"verts"` // vertices
	Mat   string `json:"mat" yaml:"mat"`     // material name
	Elem  string `json:"elem" yaml:"elem"`   // element type; "" => DefaultElem
	Nip   int    `json:"nip" yaml:"nip"`     // number of integration points; 0 => use default
	Nipf  int    `json:"nipf" yaml:"nipf"`   // number of integration points on faces; 0 => use default
	Extra string `json:"extra" yaml:"extra"` // extra flags (in keycode format). ex: "!xfem:1,2 !xact:0"
}

// Mesh holds a mesh for FE analyses
type Mesh struct {
	Verts []*Vert `json:"verts" yaml:"verts"` // vertices
	Cells []*Cell `json:"cells" yaml:"cells"` // cells
}

// init checks ids and connectivity and returns the space dimension
func (o *Mesh) init() (ndim int, err error) {
	if len(o.Verts) < 2 {
		return 0, chk.Err("mesh must have at least 2 vertices")
	}
	if len(o.Cells) < 1 {
		return 0, chk.Err("mesh must have at least 1 cell")
	}
	ndim = len(o.Verts[0].C)
	if ndim < 2 || ndim > 3 {
		return 0, chk.Err("space dimension must be 2 or 3. ndim = %d is invalid", ndim)
	}
	for i, v := range o.Verts {
		if v.Id != i {
			return 0, chk.Err("vertices ids must coincide with order in \"verts\" list. %d != %d", v.Id, i)
		}
		if len(v.C) != ndim {
			return 0, chk.Err("all vertices must have %d coordinates. vertex %d has %d", ndim, v.Id, len(v.C))
		}
	}
	for i, c := range o.Cells {
		if c.Id != i {
			return 0, chk.Err("cells ids must coincide with order in \"cells\" list. %d != %d", c.Id, i)
		}
		if len(c.Verts) < 2 {
			return 0, chk.Err("cell %d must have at least 2 vertices", c.Id)
		}
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return 0, chk.Err("cell %d refers to vertex %d which does not exist", c.Id, v)
			}
		}
		if c.Elem == "" {
			c.Elem = DefaultElem
		}
	}
	return
}

// CellCoords returns the coordinates matrix [ndim][nverts] of cell
func (o *Mesh) CellCoords(c *Cell) (x [][]float64) {
	ndim := len(o.Verts[0].C)
	x = utl.Alloc(ndim, len(c.Verts))
	for i := 0; i < ndim; i++ {
		for j, v := range c.Verts {
			x[i][j] = o.Verts[v].C[i]
		}
	}
	return
}
