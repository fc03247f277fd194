// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optical

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// prmOrDefault returns the value of parameter 'name' or 'def' if not found
func prmOrDefault(prms dbf.Params, name string, def float64) float64 {
	for _, p := range prms {
		if p.N == name {
			return p.V
		}
	}
	return def
}

// prmRequired returns the value of parameter 'name' or an error if not found
func prmRequired(prms dbf.Params, name, model string) (float64, error) {
	for _, p := range prms {
		if p.N == name {
			return p.V, nil
		}
	}
	return 0, chk.Err("%s model: parameter %q must be given in database of material parameters", model, name)
}

// xKeys returns the suffixes of spatial parameters
func xKeys(ndim int) []string {
	if ndim == 3 {
		return []string{"x", "y", "z"}
	}
	return []string{"x", "y"}
}

// speciesKey returns the key of a species parameter; e.g. dndc0
func speciesKey(prefix string, w int) string {
	return io.Sf("%s%d", prefix, w)
}
