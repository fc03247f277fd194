// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emwave

// LeviCivita returns the permutation symbol ε_pqr: +1 for even and -1 for odd permutations of
// (0,1,2) and 0 if an index repeats or is outside [0,3)
func LeviCivita(p, q, r int) float64 {
	if p < 0 || p > 2 || q < 0 || q > 2 || r < 0 || r > 2 {
		return 0
	}
	if p == q || q == r || r == p {
		return 0
	}
	if (p == 0 && q == 1) || (p == 1 && q == 2) || (p == 2 && q == 0) {
		return 1
	}
	return -1
}

// CrossC computes the cross product of complex vectors: w := u × v, i.e. w_k = ε_ijk u_i v_j
//  Note: w is zeroed first and must not alias u or v
func CrossC(w, u, v []complex128) {
	for k := 0; k < 3; k++ {
		w[k] = 0
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				w[k] += complex(LeviCivita(i, j, k), 0) * u[i] * v[j]
			}
		}
	}
}
