// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// OnedLinElast implements a linear elastic model for 1D elements such
// as rods
type OnedLinElast struct {
	E   float64 // Young's modulus
	A   float64 // cross-sectional area
	Rho float64 // density
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Model { return new(OnedLinElast) }
}

// Init initialises model
func (o *OnedLinElast) Init(ndim int, pstress bool, prms fun.Prms) (err error) {
	o.A = 1
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "A":
			o.A = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("oned-elast: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.E <= 0 || o.A <= 0 {
		return chk.Err("oned-elast: parameters E=%g and A=%g must be positive", o.E, o.A)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 1000},
		&fun.Prm{N: "A", V: 1},
	}
}

// GetRho returns density
func (o OnedLinElast) GetRho() float64 {
	return o.Rho
}

// Clean clean resources
func (o *OnedLinElast) Clean() {
}

// InitIntVars: unused
func (o *OnedLinElast) InitIntVars(σ []float64) (s *State, err error) {
	return
}

// InitIntVars1D initialises internal (secondary) variables
func (o OnedLinElast) InitIntVars1D() (s *OnedState, err error) {
	s = NewOnedState(0)
	return
}

// Update updates stresses for given strains
func (o *OnedLinElast) Update(s *OnedState, ε, Δε, aux float64) (err error) {
	s.Sig += o.E * Δε
	s.Eps = ε
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *OnedLinElast) CalcD(s *OnedState, firstIt bool) (DσDε, DσDaux float64, err error) {
	return o.E, 0, nil
}

// GetA returns cross-sectional area
func (o OnedLinElast) GetA() float64 {
	return o.A
}
