// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/GabrielJie/Isogeometric-Analysis/ele"
	"github.com/GabrielJie/Isogeometric-Analysis/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LinSys solves the global linear system partitioned into known (prescribed)
// and unknown equations. With subscripts u == unknown and k == known:
//
//	[Kuu Kuk] / xu \   / bu \
//	[Kku Kkk] \ wk / = \ bk /   =>   Kuu*xu = bu - Kuk*wk
//
// Each row of the system is divided by its largest-magnitude entry before the
// reduced block is factorised.
type LinSys struct {

	// partition
	ny  int   // total number of equations
	eqk []int // known equations
	equ []int // unknown equations
	red []int // equation => index in the reduced system; -1 for known equations
	nu  int   // number of unknowns

	// workspace
	scal []float64  // largest absolute entry per row
	Auu  la.Triplet // reduced (unknown-unknown) block
	bu   []float64  // reduced right-hand side
	xu   []float64  // solution of the reduced system

	// linear solver
	lis         la.LinSol // sparse direct solver
	symmetric   bool
	verbose     bool
	timing      bool
	allocated   bool // reduced triplet space allocated
	initialised bool // sparsity pattern analysed by the direct solver
}

// NewLinSys returns a new partitioned system solver
//  Input:
//   eqk -- known (prescribed) equations
//   equ -- unknown equations; complement of eqk
//   cfg -- sparse linear solver configuration
func NewLinSys(eqk, equ []int, cfg *inp.LinSolData) (o *LinSys) {
	o = new(LinSys)
	o.ny = len(eqk) + len(equ)
	o.eqk = eqk
	o.equ = equ
	o.nu = len(equ)
	o.red = make([]int, o.ny)
	for i := 0; i < o.ny; i++ {
		o.red[i] = -1
	}
	for iu, I := range equ {
		o.red[I] = iu
	}
	o.scal = make([]float64, o.ny)
	o.bu = make([]float64, o.nu)
	o.xu = make([]float64, o.nu)
	o.lis = la.GetSolver(cfg.Name)
	o.symmetric = cfg.Symmetric
	o.verbose = cfg.Verbose
	o.timing = cfg.Timing
	return
}

// Solve computes the increments of the unknowns and scatters them into wb.
//  Input:
//   Kb -- assembled global matrix
//   fb -- global right-hand side == negative of residuals
//   wb -- increment vector with the prescribed increments already set on the
//         known equations (see EssentialBcs.SetIncrements)
//  Output:
//   wb -- increments of the unknowns are written onto the unknown equations;
//         the known entries are left untouched
func (o *LinSys) Solve(Kb *ele.Assembler, fb, wb []float64) (err error) {

	// nothing to solve when all equations are prescribed
	if o.nu == 0 {
		return
	}

	// row scaling coefficients
	la.VecFill(o.scal, 0)
	Kb.DoNonZero(func(i, j int, v float64) {
		if math.Abs(v) > o.scal[i] {
			o.scal[i] = math.Abs(v)
		}
	})
	for i := 0; i < o.ny; i++ {
		if o.scal[i] == 0 {
			o.scal[i] = 1
		}
	}

	// space for the reduced block
	if !o.allocated {
		o.Auu.Init(o.nu, o.nu, Kb.Nnz())
		o.allocated = true
	}

	// scaled right-hand side of the unknown equations
	for iu, I := range o.equ {
		o.bu[iu] = fb[I] / o.scal[I]
	}

	// reduced block; known columns are eliminated into the right-hand side
	o.Auu.Start()
	Kb.DoNonZero(func(i, j int, v float64) {
		iu := o.red[i]
		if iu < 0 {
			return // known row
		}
		v /= o.scal[i]
		if ju := o.red[j]; ju < 0 {
			o.bu[iu] -= v * wb[j]
		} else {
			o.Auu.Put(iu, ju, v)
		}
	})

	// initialise solver upon first call. The nonzero pattern of Auu must not
	// change afterwards; the assembler guarantees this by keeping entries
	// that sum to zero.
	if !o.initialised {
		err = o.lis.InitR(&o.Auu, o.symmetric, o.verbose, o.timing)
		if err != nil {
			return chk.Err("cannot initialise linear solver:\n%v", err)
		}
		o.initialised = true
	}

	// factorise and solve
	err = o.lis.Fact()
	if err != nil {
		return chk.Err("factorisation failed (tangent matrix is singular):\n%v", err)
	}
	err = o.lis.SolveR(o.xu, o.bu, false)
	if err != nil {
		return chk.Err("linear solver failed:\n%v", err)
	}

	// scatter increments of the unknowns
	for iu, I := range o.equ {
		wb[I] = o.xu[iu]
	}
	return
}

// Free frees the memory allocated by the sparse direct solver
func (o *LinSys) Free() {
	if o.initialised {
		o.lis.Free()
		o.initialised = false
	}
}
