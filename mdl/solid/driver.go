// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Driver runs strain-driven simulations with constitutive models for a
// single material point
type Driver struct {

	// input
	nsig  int   // number of stress components
	model Small // model

	// settings
	TolD float64    // tolerance to compare consistent matrix with numerical one
	VerD bool       // verbose check of D
	TstD *testing.T // if != nil, do check consistent D

	// results
	Res []*State    // stress/internal-variable results [nincs+1]
	Eps [][]float64 // total strains [nincs+1][nsig]

	// auxiliary
	D [][]float64 // consistent modulus
}

// Init initialises driver: model is allocated from the factory
func (o *Driver) Init(simfnk, modelname string, ndim int, pstress bool, prms fun.Prms) (err error) {
	mdl, err := New(modelname)
	if err != nil {
		return
	}
	err = mdl.Init(ndim, pstress, prms)
	if err != nil {
		return
	}
	return o.InitWithModel(ndim, mdl)
}

// InitWithModel initialises driver with a pre-allocated model
func (o *Driver) InitWithModel(ndim int, mdl Model) (err error) {
	small, ok := mdl.(Small)
	if !ok {
		return chk.Err("driver: model does not implement the Small interface")
	}
	o.nsig = 2 * ndim
	o.model = small
	o.TolD = 1e-6
	o.D = la.MatAlloc(o.nsig, o.nsig)

	// initial state
	s, err := mdl.(Model).InitIntVars(make([]float64, o.nsig))
	if err != nil {
		return
	}
	o.Res = []*State{s}
	o.Eps = [][]float64{make([]float64, o.nsig)}
	return
}

// Run applies a sequence of strain increments, updating the state and,
// if TstD is set, checking the consistent modulus against numerical
// differentiation after each increment
func (o *Driver) Run(Δεs [][]float64) (err error) {
	ε := make([]float64, o.nsig)
	for k, Δε := range Δεs {

		// previous state and total strain
		sprev := o.Res[len(o.Res)-1].GetCopy()
		εprev := o.Eps[len(o.Eps)-1]
		la.VecCopy(ε, 1, εprev)
		la.VecAdd(ε, 1, Δε)

		// update
		s := sprev.GetCopy()
		err = o.model.Update(s, ε, Δε, 0, 0, 0)
		if err != nil {
			return chk.Err("driver: update failed at increment %d:\n%v", k, err)
		}
		o.Res = append(o.Res, s)
		εcopy := make([]float64, o.nsig)
		copy(εcopy, ε)
		o.Eps = append(o.Eps, εcopy)

		// check consistent modulus
		if o.TstD != nil {
			err = o.model.CalcD(o.D, s, false)
			if err != nil {
				return chk.Err("driver: CalcD failed at increment %d:\n%v", k, err)
			}
			o.checkD(k, sprev, εprev, ε)
		}
	}
	return
}

// checkD compares the consistent modulus with a numerical approximation
// built by re-running the update from the previous state
func (o *Driver) checkD(inc int, sprev *State, εprev, ε []float64) {
	Δ := make([]float64, o.nsig)
	chk.DerivVecVec(o.TstD, io.Sf("D%d", inc), o.TolD, o.D, ε, 1e-5, o.VerD, func(f, x []float64) error {
		tmp := sprev.GetCopy()
		for i := 0; i < o.nsig; i++ {
			Δ[i] = x[i] - εprev[i]
		}
		e := o.model.Update(tmp, x, Δ, 0, 0, 0)
		copy(f, tmp.Sig)
		return e
	})
}
