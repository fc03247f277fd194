// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/lacrymose/goma/inp"

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "er1", "temp", "ux", "c0"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Dofs []*Dof    // degrees-of-freedom == solution variables
	Vert *inp.Vert // pointer to Vertex
}

// NewNode allocates a new Node
func NewNode(v *inp.Vert) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new dof with equation number eqnum if ukey does not exist yet. It returns
// the next available equation number
func (o *Node) AddDofAndEq(ukey string, eqnum int) (nexteq int) {
	if o.GetDof(ukey) != nil {
		return eqnum
	}
	o.Dofs = append(o.Dofs, &Dof{ukey, eqnum})
	return eqnum + 1
}

// GetDof returns the Dof structure for given Dof name (ukey)
//  Note: returns nil if not found
func (o *Node) GetDof(ukey string) *Dof {
	for _, d := range o.Dofs {
		if d.Key == ukey {
			return d
		}
	}
	return nil
}

// GetEq returns the equation number for given Dof name (ukey)
//  Note: returns -1 if not found
func (o *Node) GetEq(ukey string) (eq int) {
	if d := o.GetDof(ukey); d != nil {
		return d.Eq
	}
	return -1
}
