// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// IpsMap holds results @ integration points; e.g. "sx" => values at each ip
type IpsMap map[string][]float64

// NewIpsMap returns a new IpsMap
func NewIpsMap() *IpsMap {
	var M IpsMap
	M = make(map[string][]float64)
	return &M
}

// Set stores the value of 'key' @ integration point 'idx'. The slice holding
// all values of 'key' is allocated with size nip upon the first call.
func (o *IpsMap) Set(key string, idx, nip int, val float64) {
	if slice, ok := (*o)[key]; ok {
		slice[idx] = val
		return
	}
	slice := make([]float64, nip)
	slice[idx] = val
	(*o)[key] = slice
}

// Get returns the value of 'key' @ integration point 'idx'; zero if 'key' is absent
func (o *IpsMap) Get(key string, idx int) float64 {
	if slice, ok := (*o)[key]; ok {
		return slice[idx]
	}
	return 0
}
