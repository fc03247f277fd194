// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// GetIps returns the integration points of this shape. nip == 0 means default
func (o *Shape) GetIps(nip int) (ips []Ipoint, err error) {
	if nip == 0 {
		nip = o.DefaultNip
	}
	key := o.Type
	switch o.Type {
	case "tri3":
		key = "tri"
	case "qua4":
		key = "qua"
	case "tet4":
		key = "tet"
	}
	set, ok := ipsfactory[key][nip]
	if !ok {
		return nil, chk.Err("cannot find integration points for %q with nip=%d", o.Type, nip)
	}
	ips = make([]Ipoint, len(set))
	copy(ips, set)
	return
}

// ipsfactory holds integration points sets. [family][nip]
var ipsfactory = map[string]map[int][]Ipoint{
	"lin": {
		1: {
			{0, 0, 0, 2},
		},
		2: {
			{-1.0 / math.Sqrt(3.0), 0, 0, 1},
			{+1.0 / math.Sqrt(3.0), 0, 0, 1},
		},
	},
	"tri": {
		1: {
			{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
		},
		3: {
			{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
			{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
			{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
		},
	},
	"qua": {
		1: {
			{0, 0, 0, 4},
		},
		4: {
			{-1.0 / math.Sqrt(3.0), -1.0 / math.Sqrt(3.0), 0, 1},
			{+1.0 / math.Sqrt(3.0), -1.0 / math.Sqrt(3.0), 0, 1},
			{-1.0 / math.Sqrt(3.0), +1.0 / math.Sqrt(3.0), 0, 1},
			{+1.0 / math.Sqrt(3.0), +1.0 / math.Sqrt(3.0), 0, 1},
		},
	},
	"tet": {
		1: {
			{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, 1.0 / 6.0},
		},
		4: {
			{0.1381966011250105, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
			{0.5854101966249685, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
			{0.1381966011250105, 0.5854101966249685, 0.1381966011250105, 1.0 / 24.0},
			{0.1381966011250105, 0.1381966011250105, 0.5854101966249685, 1.0 / 24.0},
		},
	},
}
