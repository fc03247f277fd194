// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem assembles the global residual and Jacobian of electromagnetic wave simulations
package fem

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lacrymose/goma/inp"
)

// DebugKbFunc defines a function to debug global Jacobian matrix
type DebugKbFunc func(d *Domain)

// Main holds all data for an assembly using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Domain  *Domain         // domain
	Summary *Summary        // summary of last run
	DebugKb DebugKbFunc     // debug Kb callback function
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim or .yaml) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> Simulation file read: %s\n", o.Sim.Key)
	}

	// allocate domain
	o.Domain, err = NewDomain(o.Sim, verbose)
	if err != nil {
		return nil, err
	}
	return
}

// Run assembles the residual and Jacobian @ the current solution, evaluates natural boundary
// conditions and collects a summary
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// assemble
	d := o.Domain
	if o.ShowMsg {
		io.Pf("> Assembling residual vector and Jacobian matrix\n")
	}
	err = d.AssembleFb()
	if err != nil {
		return
	}
	err = d.AssembleKb()
	if err != nil {
		return
	}

	// debug Kb
	if o.DebugKb != nil {
		o.DebugKb(d)
	}

	// summary
	o.Summary, err = NewSummary(d)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Since(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
