// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// IpsMap holds values @ integration points; e.g. "n" => [n @ ip0, n @ ip1, ...]
type IpsMap map[string][]float64

// NewIpsMap returns a new IpsMap
func NewIpsMap() *IpsMap {
	M := make(IpsMap)
	return &M
}

// Set sets the value of key @ integration point idx. The slice is allocated with nip if missing
func (o *IpsMap) Set(key string, idx, nip int, val float64) {
	slice, ok := (*o)[key]
	if !ok {
		slice = make([]float64, nip)
		(*o)[key] = slice
	}
	slice[idx] = val
}

// Get returns the values of key or nil if not found
func (o *IpsMap) Get(key string) []float64 {
	return (*o)[key]
}
