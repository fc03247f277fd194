// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lacrymose/goma/ele"
	"github.com/lacrymose/goma/inp"
	"gonum.org/v1/gonum/mat"
)

// Domain holds all Nodes and Elements in addition to the Solution at nodes
type Domain struct {

	// init: auxiliary variables
	Sim     *inp.Simulation // [from FEM] input data
	Msh     *inp.Mesh       // mesh data
	ShowMsg bool            // show messages

	// nodes and elements
	Nodes []*Node       // nodes. Note: indices in Nodes do NOT correspond to Ids => use Vid2node
	Elems []ele.Element // elements

	// auxiliary maps for nodes and elements
	Vid2node []*Node       // [nverts] VertexId => node. Unused vertices are 'nil'
	Cid2elem []ele.Element // [ncells] CellId => element
	Rows     []string      // keys of assembled equations; e.g. "er1", "hi3"

	// dimensions
	Ny int // total number of dofs

	// solution and linear system
	Sol *ele.Solution // solution state
	Kb  *mat.Dense    // Jacobian == dRdy
	Fb  []float64     // residual == -fb
}

// NewDomain allocates nodes, elements and equation numbers
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// new domain
	o = new(Domain)
	o.Sim = sim
	o.Msh = &sim.Mesh
	o.ShowMsg = verbose
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.Cid2elem = make([]ele.Element, len(o.Msh.Cells))

	// for each cell
	var eq int // current equation number => total number of equations @ end of loop
	rows := make(map[string]bool)
	infos := make([]*ele.Info, 0, len(o.Msh.Cells))
	for _, cell := range o.Msh.Cells {

		// get element info
		info, err := ele.GetInfo(cell, sim)
		if err != nil {
			return nil, chk.Err("get element information failed:\n%v", err)
		}
		if len(info.Dofs) != len(cell.Verts) {
			return nil, chk.Err("element info of cell %d has dofs for %d vertices. %d is correct", cell.Id, len(info.Dofs), len(cell.Verts))
		}
		for _, key := range info.Rows {
			if !rows[key] {
				rows[key] = true
				o.Rows = append(o.Rows, key)
			}
		}

		// loop over nodes of this element
		for j, v := range cell.Verts {

			// new or existent node
			var nod *Node
			if o.Vid2node[v] == nil {
				nod = NewNode(o.Msh.Verts[v])
				o.Vid2node[v] = nod
				o.Nodes = append(o.Nodes, nod)
			} else {
				nod = o.Vid2node[v]
			}

			// set DOFs and equation numbers
			for _, ukey := range info.Dofs[j] {
				eq = nod.AddDofAndEq(ukey, eq)
			}
		}

		// new element
		e, err := ele.New(cell, sim)
		if err != nil {
			return nil, chk.Err("new element failed:\n%v", err)
		}
		o.Cid2elem[cell.Id] = e
		o.Elems = append(o.Elems, e)
		infos = append(infos, info)
	}

	// give equation numbers to elements
	for i, e := range o.Elems {
		cell, info := o.Msh.Cells[e.Id()], infos[i]
		eqs := make([][]int, len(cell.Verts))
		for j, v := range cell.Verts {
			for _, ukey := range info.Dofs[j] {
				eqs[j] = append(eqs[j], o.Vid2node[v].GetEq(ukey))
			}
		}
		err = e.SetEqs(eqs)
		if err != nil {
			return nil, chk.Err("cannot set element equations:\n%v", err)
		}
	}

	// solution structure and linear system
	o.Ny = eq
	o.Sol = ele.NewSolution(o.Ny)
	o.Kb = mat.NewDense(o.Ny, o.Ny, nil)
	o.Fb = make([]float64, o.Ny)

	// message
	if o.ShowMsg {
		io.Pf(">> Axisym=%v, Nspecies=%d\n", sim.Data.Axisym, sim.Data.Nspecies)
		io.Pf(">> Number of nodes = %d\n", len(o.Nodes))
		io.Pf(">> Number of elements = %d\n", len(o.Elems))
		io.Pf(">> Number of equations = %d\n", o.Ny)
	}
	return
}

// AssembleFb computes the global residual vector fb == -R
func (o *Domain) AssembleFb() (err error) {
	for i := range o.Fb {
		o.Fb[i] = 0
	}
	for _, e := range o.Elems {
		err = e.AddToRhs(o.Fb, o.Sol)
		if err != nil {
			return chk.Err("cannot add element %d contribution to residual vector:\n%v", e.Id(), err)
		}
	}
	return
}

// AssembleKb computes the global Jacobian matrix Kb == dR/dy
func (o *Domain) AssembleKb() (err error) {
	o.Kb.Zero()
	for _, e := range o.Elems {
		err = e.AddToKb(o.Kb, o.Sol)
		if err != nil {
			return chk.Err("cannot add element %d contribution to Jacobian matrix:\n%v", e.Id(), err)
		}
	}
	return
}

// EvalNatBcs evaluates the natural boundary conditions of all elements
func (o *Domain) EvalNatBcs() (res []*ele.BcValue, err error) {
	for _, e := range o.Elems {
		if enat, ok := e.(ele.WithNatBcs); ok {
			vals, err := enat.EvalNatBcs(o.Sol)
			if err != nil {
				return nil, chk.Err("cannot evaluate natural boundary conditions of element %d:\n%v", e.Id(), err)
			}
			res = append(res, vals...)
		}
	}
	return
}

// SetIniVals sets the nodal values of the dofs named key using fcn(x); e.g. key = "temp"
func (o *Domain) SetIniVals(key string, fcn func(x []float64) float64) (n int) {
	for _, nod := range o.Nodes {
		if eq := nod.GetEq(key); eq >= 0 {
			o.Sol.Y[eq] = fcn(nod.Vert.C)
			n++
		}
	}
	return
}

// Eqs returns the equation numbers of all dofs named key
func (o *Domain) Eqs(key string) (eqs []int) {
	for _, nod := range o.Nodes {
		if eq := nod.GetEq(key); eq >= 0 {
			eqs = append(eqs, eq)
		}
	}
	return
}
