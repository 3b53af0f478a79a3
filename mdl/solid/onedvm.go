// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// OnedVonMises implements a 1D rate-independent plasticity model with
// linear isotropic hardening for rod elements
type OnedVonMises struct {
	E   float64 // Young's modulus
	A   float64 // cross-sectional area
	Rho float64 // density
	sy0 float64 // initial yield stress
	H   float64 // hardening modulus
}

// add model to factory
func init() {
	allocators["oned-vm"] = func() Model { return new(OnedVonMises) }
}

// Init initialises model
func (o *OnedVonMises) Init(ndim int, pstress bool, prms fun.Prms) (err error) {
	o.A = 1
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "A":
			o.A = p.V
		case "rho":
			o.Rho = p.V
		case "sy0":
			o.sy0 = p.V
		case "H":
			o.H = p.V
		default:
			return chk.Err("oned-vm: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.E <= 0 || o.A <= 0 || o.sy0 <= 0 {
		return chk.Err("oned-vm: parameters E=%g, A=%g and sy0=%g must be positive", o.E, o.A, o.sy0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedVonMises) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 1000},
		&fun.Prm{N: "A", V: 1},
		&fun.Prm{N: "sy0", V: 20},
		&fun.Prm{N: "H", V: 0},
	}
}

// GetRho returns density
func (o OnedVonMises) GetRho() float64 {
	return o.Rho
}

// Clean clean resources
func (o *OnedVonMises) Clean() {
}

// InitIntVars: unused
func (o *OnedVonMises) InitIntVars(σ []float64) (s *State, err error) {
	return
}

// InitIntVars1D initialises internal (secondary) variables
func (o OnedVonMises) InitIntVars1D() (s *OnedState, err error) {
	s = NewOnedState(1) // 1:{εp equivalent}
	return
}

// Update updates stresses for given strains
func (o *OnedVonMises) Update(s *OnedState, ε, Δε, aux float64) (err error) {

	// internal values
	σ := &s.Sig
	α0 := &s.Alp[0]
	s.Eps = ε
	s.Dgam = 0

	// trial stress
	σtr := (*σ) + o.E*Δε
	ftr := math.Abs(σtr) - (o.sy0 + o.H*(*α0))

	// elastic update
	if ftr <= 0.0 {
		*σ = σtr
		s.Loading = false
		return
	}

	// plastic update
	Δγ := ftr / (o.E + o.H)
	*σ = σtr - o.E*Δγ*fun.Sign(σtr)
	*α0 += Δγ
	s.Dgam = Δγ
	s.Loading = true
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *OnedVonMises) CalcD(s *OnedState, firstIt bool) (DσDε, DσDaux float64, err error) {

	// set first Δγ
	if firstIt {
		s.Dgam = 0
	}

	// elastic
	if !s.Loading {
		return o.E, 0, nil
	}

	// plastic
	DσDε = o.E * o.H / (o.E + o.H)
	return
}

// GetA returns cross-sectional area
func (o OnedVonMises) GetA() float64 {
	return o.A
}
