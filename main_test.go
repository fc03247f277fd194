// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
)

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. command line")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", "inp/data/em2d.sim"})
	assert.NoError(tst, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetArgs([]string{"run"})
	assert.Error(tst, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetArgs([]string{"run", "inp/data/not-found.sim"})
	assert.Error(tst, cmd.Execute())
}
