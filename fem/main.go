// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the isogeometric finite element solver: domains,
// boundary conditions, the partitioned linear system and the nonlinear
// (Newton-Raphson) driver with adaptive load stepping
package fem

import (
	"time"

	"github.com/GabrielJie/Isogeometric-Analysis/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure
	Domains []*Domain       // all domains
	Solver  Solver          // finite element method solver; e.g. implicit
	DebugKb DebugKb_t       // debug Kb callback function
	Verbose bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary
//   readSummary -- read summary of a previous simulation
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, saveSummary, readSummary, verbose bool) (o *Main) {

	// new Main object
	o = new(Main)

	// read input data
	o.Sim = inp.ReadSim(simfilepath, alias, erasePrev)
	if o.Sim == nil {
		chk.Panic("cannot read simulation input data")
	}
	o.Verbose = verbose

	// read summary of previous simulation
	if saveSummary || readSummary {
		o.Summary = new(Summary)
	}
	if readSummary {
		err := o.Summary.Read(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
		if err != nil {
			chk.Panic("cannot read summary:\n%v", err)
		}
	}

	// allocate domains
	o.Domains = NewDomains(o.Sim)

	// allocate solver
	if alloc, ok := allocators[o.Sim.Solver.Type]; ok {
		o.Solver = alloc(o.Domains, o.Summary)
	} else {
		chk.Panic("cannot find solver type named %q", o.Sim.Solver.Type)
	}
	return
}

// Run runs the simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.Verbose {
		io.Pf("> Solving stages\n")
	}

	// loop over stages
	for stgidx, stg := range o.Sim.Stages {

		// skip stage?
		if stg.Skip {
			continue
		}

		// set stage
		err = o.SetStage(stgidx)
		if err != nil {
			return
		}

		// initialise solution vectors
		err = o.ZeroStage(stgidx, true)
		if err != nil {
			return
		}

		// time loop
		err = o.Solver.Run(stg.Control.Tf, stg.Control.DtFunc, stg.Control.DtoFunc, o.Verbose, o.DebugKb)
		if err != nil {
			return
		}
	}
	return
}

// SetStage sets stage for all domains
//  Input:
//   stgidx -- stage index (in o.Sim.Stages)
func (o *Main) SetStage(stgidx int) (err error) {
	if o.Verbose {
		io.Pf("> Setting stage %d\n", stgidx)
	}
	for _, d := range o.Domains {
		err = d.SetStage(stgidx)
		if err != nil {
			return
		}
	}
	return
}

// ZeroStage zeroes solution variables; i.e. it initialises solution vectors
// (Y, internal values such as States.Sig, etc.) in all domains for all nodes
// and all elements
//  Input:
//   stgidx  -- stage index (in o.Sim.Stages)
//   zeroSol -- zero vectors in domains.Sol
func (o *Main) ZeroStage(stgidx int, zeroSol bool) (err error) {
	for _, d := range o.Domains {
		err = d.SetIniVals(stgidx, zeroSol)
		if err != nil {
			return
		}
	}
	return
}

// SolveOneStage solves one stage that was already set
//  Input:
//   stgidx    -- stage index (in o.Sim.Stages)
//   zerostage -- zero vectors in domains.Sol => call ZeroStage
func (o *Main) SolveOneStage(stgidx int, zerostage bool) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// zero stage
	if zerostage {
		err = o.ZeroStage(stgidx, true)
		if err != nil {
			return
		}
	}

	// run
	stg := o.Sim.Stages[stgidx]
	err = o.Solver.Run(stg.Control.Tf, stg.Control.DtFunc, stg.Control.DtoFunc, o.Verbose, o.DebugKb)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit frees resources, prints the final message and saves the summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// free resources
	o.Sim.Clean()
	for _, d := range o.Domains {
		d.Free()
	}

	// show final message
	if o.Verbose {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save summary
	if o.Summary != nil {
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.Verbose)
		if err != nil {
			return
		}
	}

	// keep previous error
	if prevErr != nil {
		err = prevErr
	}
	return
}
