// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds all information required to number the equations of an element
type Info struct {
	Dofs [][]string // solution variables PER NODE. ex for 2 nodes: [["er1", "ei1", "temp"], ["er1", "ei1", "temp"]]
	Rows []string   // keys of assembled equations; e.g. ["er1", "ei1"]
}
