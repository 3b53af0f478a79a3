// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// SolverImplicit solves the quasi-static problem using an implicit procedure
// (Newton-Raphson method) wrapped by an adaptive load stepping scheme.
//
// The baseline increment Δt is scaled by 2^lvl where lvl is an integer level
// that never exceeds zero. A diverged increment is retried with the level
// decremented; after NconvUp consecutive convergences below the baseline the
// level is incremented again. The run is unrecoverable if the level falls
// below LvlMin.
type SolverImplicit struct {
	doms []*Domain
	sum  *Summary
}

// set factory
func init() {
	allocators["imp"] = func(doms []*Domain, sum *Summary) Solver {
		solver := new(SolverImplicit)
		solver.doms = doms
		solver.sum = sum
		return solver
	}
}

// Run runs the time loop for all domains
func (o *SolverImplicit) Run(tf float64, dtFunc, dtoFunc fun.Func, verbose bool, dbgKb DebugKb_t) (err error) {

	// load stepping control
	lvl := 0   // current increment level; baseline increments have level 0
	nconv := 0 // number of consecutive convergences below the baseline level
	if o.sum != nil {
		lvl, nconv = o.sum.Level, o.sum.Nconv
	}

	// time control
	t := o.doms[0].Sol.T
	dat := &o.doms[0].Sim.Solver
	tout := t + dtoFunc.F(t, nil)

	// output of initial state
	if o.sum != nil {
		err = o.sum.SaveDomains(t, o.doms)
		if err != nil {
			return chk.Err("cannot save results:\n%v", err)
		}
	}

	// time loop
	var Δt float64
	var lastStep bool
	for t < tf {

		// increment size
		Δt = dtFunc.F(t, nil) * math.Exp2(float64(lvl))
		lastStep = false
		if t+Δt >= tf {
			Δt = tf - t
			lastStep = true
		}

		// update time and backup converged state
		t += Δt
		for _, d := range o.doms {
			d.Sol.T = t
			d.Sol.Dt = Δt
			d.backup()
		}

		// message
		if verbose && !dat.ShowR {
			io.PfWhite("%30.15f\r", t)
		}

		// run iterations for all domains
		diverging := false
		for _, d := range o.doms {
			var diverg bool
			_, diverg, err = run_iterations(t, Δt, d, o.sum, dbgKb)
			if err != nil {
				return
			}
			if diverg {
				diverging = true
			}
		}

		// divergence: restore converged state and reduce the increment level
		if diverging {
			for _, d := range o.doms {
				d.restore()
			}
			t -= Δt
			lvl--
			nconv = 0
			if lvl < dat.LvlMin {
				return chk.Err("cannot converge because the increment level fell below %d", dat.LvlMin)
			}
			if verbose {
				io.Pfred(". . . diverging: reducing increment level to %d . . .\n", lvl)
			}
			continue
		}

		// raise the level after enough consecutive convergences below the baseline
		if lvl < 0 {
			nconv++
			if nconv >= dat.NconvUp {
				lvl++
				nconv = 0
				if verbose {
					io.Pfgreen(". . . raising increment level to %d . . .\n", lvl)
				}
			}
		}

		// record load stepping state
		if o.sum != nil {
			o.sum.Level = lvl
			o.sum.Nconv = nconv
		}

		// output results
		if t >= tout || lastStep {
			if o.sum != nil {
				err = o.sum.SaveDomains(t, o.doms)
				if err != nil {
					return chk.Err("cannot save results:\n%v", err)
				}
			}
			tout += dtoFunc.F(t, nil)
		}
	}

	// completion flag
	if o.sum != nil {
		o.sum.Complete = true
	}
	return
}

// run_iterations solves the nonlinear problem for one increment.
//
// The convergence test has two stages: first the RMS norm of the increment
// over the free (unknown) equations must fall below Itol, which raises a
// close-to-convergence flag and records the current residual; then, on a
// later iteration, the residual must be smaller than the recorded one (or
// smaller than FbMin). The increment is declared diverging if the budget of
// NmaxIt iterations is exhausted before both stages are satisfied.
func run_iterations(t, Δt float64, d *Domain, sum *Summary, dbgKb DebugKb_t) (it int, diverging bool, err error) {

	// zero accumulated increments
	la.VecFill(d.Sol.ΔY, 0)

	// auxiliary
	dat := &d.Sim.Solver
	var largFb, Lδu, residRec float64
	flagged := false

	// message
	if dat.ShowR {
		io.Pf("\n%13s%4s%23s%23s\n", "t", "it", "largFb", "Lδu")
	}

	// iterations
	for it = 0; it < dat.NmaxIt; it++ {

		// assemble right-hand side vector (fb) with negative of residuals
		la.VecFill(d.Fb, 0)
		for _, e := range d.Elems {
			err = e.AddToRhs(d.Fb, d.Sol)
			if err != nil {
				return
			}
		}

		// point loads
		d.PtNatBcs.AddToRhs(d.Fb, t)

		// largest absolute component of fb over the unknown equations. The known
		// equations carry the support reactions and are never driven to zero.
		largFb = 0
		if len(d.Equ) > 0 {
			for iu, I := range d.Equ {
				d.fu[iu] = d.Fb[I]
			}
			largFb = la.VecLargest(d.fu, 1)
		}

		// save residual
		if d.Sim.Data.Stat && sum != nil {
			sum.Resids.Append(it == 0, largFb)
		}

		// check convergence
		if flagged && (largFb < residRec || largFb < dat.FbMin) {
			if dat.ShowR {
				io.Pf("%13.6e%4d%23.15e%23s\n", t, it, largFb, "converged")
			}
			return
		}

		// prescribed increments at the known equations
		d.EssenBcs.SetIncrements(t, d.Sol.Y, d.Wb, it == 0)

		// assemble Jacobian matrix
		d.Kb.Start()
		for _, e := range d.Elems {
			err = e.AddToKb(d.Kb, d.Sol, it == 0)
			if err != nil {
				return
			}
		}

		// debug
		if dbgKb != nil {
			dbgKb(d, it)
		}

		// solve for the increments of the unknowns
		err = d.Sys.Solve(d.Kb, d.Fb, d.Wb)
		if err != nil {
			return
		}

		// update primary variables (y)
		for i := 0; i < d.Ny; i++ {
			d.Sol.Y[i] += d.Wb[i]  // y += δy
			d.Sol.ΔY[i] += d.Wb[i] // ΔY += δy
		}

		// backup / restore
		if it == 0 {
			// create backup copy of all secondary variables
			for _, e := range d.ElemIntvars {
				e.BackupIvs(false)
			}
		} else {
			// recover last converged state from backup copy
			for _, e := range d.ElemIntvars {
				e.RestoreIvs(false)
			}
		}

		// update secondary variables
		for _, e := range d.ElemIntvars {
			err = e.Update(d.Sol)
			if err != nil {
				return
			}
		}

		// RMS norm of the increment over the free equations
		Lδu = 0
		if len(d.Equ) > 0 {
			for iu, I := range d.Equ {
				d.wu[iu] = d.Wb[I]
				d.yu[iu] = d.Sol.Y[I]
			}
			Lδu = la.VecRmsErr(d.wu, dat.Atol, dat.Rtol, d.yu)
		}

		// message
		if dat.ShowR {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", t, it, largFb, Lδu)
		}

		// raise the close-to-convergence flag and record the current residual
		if !flagged && Lδu < dat.Itol {
			flagged = true
			residRec = largFb
		}
	}

	// iteration budget exhausted
	diverging = true
	return
}
