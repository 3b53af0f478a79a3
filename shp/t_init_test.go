// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// identity returns an identity extraction operator
func identity(n int) (mat [][]float64) {
	mat = make([][]float64, n)
	for i := 0; i < n; i++ {
		mat[i] = make([]float64, n)
		mat[i][i] = 1
	}
	return
}
