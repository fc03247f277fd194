// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lacrymose/goma/fem"
	"github.com/spf13/cobra"
)

// newRootCmd returns the command line interface
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "goma-em",
		Short:         "Time-harmonic electromagnetic wave assembly",
		Long:          "Assembles the residual and Jacobian of the time-harmonic Maxwell equations and evaluates far-field conditions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var verbose bool
	run := &cobra.Command{
		Use:   "run <file.sim>",
		Short: "Assemble a simulation and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(args[0], verbose)
		},
	}
	run.Flags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	root.AddCommand(run)
	return root
}

// runSim runs one simulation
func runSim(fnamepath string, verbose bool) (err error) {

	// message
	io.Verbose = verbose
	if verbose {
		io.PfWhite("\nGoma-EM -- time-harmonic electromagnetic waves\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
	}

	// analysis data
	analysis, err := fem.NewMain(fnamepath, verbose)
	if err != nil {
		return
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		return chk.Err("Run failed:\n%v", err)
	}
	io.Pf("%v", analysis.Summary)
	return
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}
