// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/GabrielJie/Isogeometric-Analysis/inp"
	"github.com/cpmech/gosl/la"
)

// BuildCoordsMatrix returns the coordinate matrix of a particular Cell
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = la.MatAlloc(msh.Ndim, len(cell.Verts))
	for i := 0; i < msh.Ndim; i++ {
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].C[i]
		}
	}
	return
}

// BuildWeightsVector returns the control point weights of a particular Cell
func BuildWeightsVector(cell *inp.Cell, msh *inp.Mesh) (w []float64) {
	w = make([]float64, len(cell.Verts))
	for j, v := range cell.Verts {
		w[j] = msh.Verts[v].W
	}
	return
}
