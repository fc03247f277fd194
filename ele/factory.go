// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/lacrymose/goma/inp"
)

// InfoFuncType defines a function that returns information about a certain element type
type InfoFuncType func(sim *inp.Simulation, cell *inp.Cell) (*Info, error)

// AllocatorType defines a function that allocates an element
type AllocatorType func(sim *inp.Simulation, cell *inp.Cell, x [][]float64) (Element, error)

// GetInfo returns information about elements from factory
func GetInfo(cell *inp.Cell, sim *inp.Simulation) (info *Info, err error) {
	fcn, ok := infofactory[cell.Elem]
	if !ok {
		return nil, chk.Err("cannot get info for element {type=%q, id=%d}", cell.Elem, cell.Id)
	}
	info, err = fcn(sim, cell)
	if err != nil {
		return nil, chk.Err("info for element {type=%q, id=%d} is not available:\n%v", cell.Elem, cell.Id, err)
	}
	return
}

// New returns a new element from from factory
func New(cell *inp.Cell, sim *inp.Simulation) (ele Element, err error) {
	fcn, ok := allocators[cell.Elem]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {type=%q, id=%d}", cell.Elem, cell.Id)
	}
	x := BuildCoordsMatrix(cell, &sim.Mesh)
	ele, err = fcn(sim, cell, x)
	if err != nil {
		return nil, chk.Err("element {type=%q, id=%d} is not available:\n%v", cell.Elem, cell.Id, err)
	}
	return
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
