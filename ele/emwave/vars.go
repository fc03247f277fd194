// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Field identifies the electric (E) or magnetic (H) field
type Field int

// fields
const (
	Efield Field = iota // electric field
	Hfield              // magnetic field
)

// Part identifies the real or imaginary projection of a harmonic field
type Part int

// parts
const (
	Real Part = iota // real part
	Imag             // imaginary part
)

// Var identifies one of the twelve EM unknowns: {E,H} x {real,imag} x {axis 0,1,2}
type Var struct {
	Field Field // E or H
	Part  Part  // real or imaginary
	Axis  int   // spatial component 0, 1 or 2
}

// NumVars is the number of EM unknowns
const NumVars = 12

// column indices of the local Jacobian after the EM unknowns
const (
	ColTemp  = NumVars + iota // temperature
	ColMesh1                  // mesh displacement x
	ColMesh2                  // mesh displacement y
	ColMesh3                  // mesh displacement z
	NumCols                   // number of fixed columns; species columns follow
)

// ColMesh returns the column of mesh displacement component b
func ColMesh(b int) int { return ColMesh1 + b }

// ColSpecies returns the column of species w
func ColSpecies(w int) int { return NumCols + w }

// Valid tells whether v is one of the twelve recognised identities
func (v Var) Valid() bool {
	return (v.Field == Efield || v.Field == Hfield) &&
		(v.Part == Real || v.Part == Imag) &&
		v.Axis >= 0 && v.Axis < 3
}

// Index returns the index of v in [0, NumVars); e.g. E-real-x => 0 and H-imag-z => 11
func (v Var) Index() int {
	return int(v.Field)*6 + int(v.Part)*3 + v.Axis
}

// Col returns the Jacobian column of v
func (v Var) Col() int { return v.Index() }

// Partner returns the same-axis component with the opposite phase
func (v Var) Partner() Var {
	v.Part = 1 - v.Part
	return v
}

// CrossField returns the Maxwell-paired field: H for E and E for H
func (v Var) CrossField() Field {
	return 1 - v.Field
}

// Cross returns component b of the Maxwell-paired field with the same phase
func (v Var) Cross(b int) Var {
	return Var{Field: v.CrossField(), Part: v.Part, Axis: b}
}

// Key returns the key of v; e.g. "er1", "hi3"
func (v Var) Key() string {
	f, p := "e", "r"
	if v.Field == Hfield {
		f = "h"
	}
	if v.Part == Imag {
		p = "i"
	}
	return io.Sf("%s%s%d", f, p, v.Axis+1)
}

// String returns the key of v
func (v Var) String() string {
	if !v.Valid() {
		return io.Sf("invalid(%d,%d,%d)", v.Field, v.Part, v.Axis)
	}
	return v.Key()
}

// VarFromIndex returns the Var of index idx
func VarFromIndex(idx int) (v Var, err error) {
	if idx < 0 || idx >= NumVars {
		return v, chk.Err("invalid EM variable index %d", idx)
	}
	return Var{Field: Field(idx / 6), Part: Part((idx % 6) / 3), Axis: idx % 3}, nil
}

// ParseVar returns the Var corresponding to key; e.g. "er1" (E, real, x) or "hi3" (H, imag, z)
func ParseVar(key string) (v Var, err error) {
	if v, ok := keys2vars[key]; ok {
		return v, nil
	}
	return v, chk.Err("invalid EM variable name %q", key)
}

// AllVars returns the twelve EM unknowns ordered by index
func AllVars() (vars []Var) {
	vars = make([]Var, NumVars)
	for i := 0; i < NumVars; i++ {
		vars[i], _ = VarFromIndex(i)
	}
	return
}

// keys2vars maps keys to identities
var keys2vars = make(map[string]Var)

func init() {
	for _, v := range AllVars() {
		keys2vars[v.Key()] = v
	}
}

// ColKey returns the dof key of column col; e.g. "er1", "temp", "ux", "c0"
func ColKey(col int) string {
	switch {
	case col < 0:
		return io.Sf("invalid(%d)", col)
	case col < NumVars:
		v, _ := VarFromIndex(col)
		return v.Key()
	case col == ColTemp:
		return "temp"
	case col < NumCols:
		return []string{"ux", "uy", "uz"}[col-ColMesh1]
	}
	return io.Sf("c%d", col-NumCols)
}
