// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/lacrymose/goma/ele"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Summary records the norms of the assembled system, boundary values and integration points data
type Summary struct {
	Key     string              // simulation key
	Ny      int                 // number of equations
	ResNorm map[string]float64  // [dofkey] Euclidean norm of the residual of equations named dofkey
	KbNorm  float64             // Frobenius norm of Jacobian
	BcVals  []*ele.BcValue      // natural boundary conditions @ face vertices
	IpVals  map[int]*ele.IpsMap // [cellId] values @ integration points
	IpCoord map[int][][]float64 // [cellId][nip][ndim] coordinates of integration points
}

// NewSummary collects the summary of the assembled domain
func NewSummary(d *Domain) (o *Summary, err error) {
	o = &Summary{
		Key:     d.Sim.Key,
		Ny:      d.Ny,
		ResNorm: make(map[string]float64),
		KbNorm:  mat.Norm(d.Kb, 2),
		IpVals:  make(map[int]*ele.IpsMap),
		IpCoord: make(map[int][][]float64),
	}
	for _, key := range d.Rows {
		eqs := d.Eqs(key)
		vals := make([]float64, len(eqs))
		for i, eq := range eqs {
			vals[i] = d.Fb[eq]
		}
		o.ResNorm[key] = floats.Norm(vals, 2)
	}
	o.BcVals, err = d.EvalNatBcs()
	if err != nil {
		return
	}
	for _, e := range d.Elems {
		if eout, ok := e.(ele.CanOutputIps); ok {
			M := ele.NewIpsMap()
			err = eout.OutIpVals(M, d.Sol)
			if err != nil {
				return
			}
			o.IpVals[e.Id()] = M
			o.IpCoord[e.Id()] = eout.OutIpCoords()
		}
	}
	return
}

// String returns a formatted table with the summary
func (o *Summary) String() string {
	var b bytes.Buffer
	io.Ff(&b, "simulation %q: ny = %d\n", o.Key, o.Ny)
	io.Ff(&b, "%-8s%23s\n", "eq", "|R|")
	keys := make([]string, 0, len(o.ResNorm))
	for key := range o.ResNorm {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		io.Ff(&b, "%-8s%23.15e\n", key, o.ResNorm[key])
	}
	io.Ff(&b, "%-8s%23.15e\n", "|Kb|", o.KbNorm)
	if len(o.BcVals) > 0 {
		io.Ff(&b, "%-10s%6s%6s%23s%23s%23s\n", "bc", "face", "vert", "f0", "f1", "f2")
		for _, v := range o.BcVals {
			io.Ff(&b, "%-10s%6d%6d%23.15e%23.15e%23.15e\n", v.Key, v.Face, v.Vert, v.R[0], v.R[1], v.R[2])
		}
	}
	return b.String()
}
