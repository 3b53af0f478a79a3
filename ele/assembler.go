// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/james-bowman/sparse"
)

// Assembler collects element contributions into the global Jacobian matrix.
// The matrix is held in dictionary-of-keys format; thus Put is additive and
// the same (i,j) pair may be set many times, by many elements.
type Assembler struct {
	nrows int
	ncols int
	dok   *sparse.DOK
}

// NewAssembler returns a new global matrix assembler with nrows x ncols
func NewAssembler(nrows, ncols int) (o *Assembler) {
	o = new(Assembler)
	o.nrows, o.ncols = nrows, ncols
	o.dok = sparse.NewDOK(nrows, ncols)
	return
}

// Start (re)initialises the assembler for a new round of element contributions
func (o *Assembler) Start() {
	o.dok = sparse.NewDOK(o.nrows, o.ncols)
}

// Put adds value v to entry (i,j)
func (o *Assembler) Put(i, j int, v float64) {
	o.dok.Set(i, j, o.dok.At(i, j)+v)
}

// At returns the current value of entry (i,j)
func (o *Assembler) At(i, j int) float64 {
	return o.dok.At(i, j)
}

// Dims returns the dimensions of the global matrix
func (o *Assembler) Dims() (nrows, ncols int) {
	return o.nrows, o.ncols
}

// Nnz returns the number of nonzero entries collected so far
func (o *Assembler) Nnz() int {
	return o.dok.NNZ()
}

// DoNonZero calls fn for each nonzero entry of the assembled matrix
func (o *Assembler) DoNonZero(fn func(i, j int, v float64)) {
	o.dok.DoNonZero(fn)
}

// ToCSR converts the assembled matrix to compressed-sparse-row format
func (o *Assembler) ToCSR() *sparse.CSR {
	return o.dok.ToCSR()
}
