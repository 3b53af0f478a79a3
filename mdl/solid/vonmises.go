// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/tsr"
)

// VonMises implements J2 plasticity with combined linear isotropic and
// kinematic hardening. The radial return has a closed-form plastic
// multiplier, so no local iterations are needed.
type VonMises struct {
	SmallElasticity
	sy0  float64   // initial yield stress
	Hiso float64   // isotropic hardening modulus
	Hkin float64   // kinematic hardening modulus
	ten  []float64 // auxiliary tensor: trial stress
	xi   []float64 // auxiliary tensor: relative deviatoric stress
}

// add model to factory
func init() {
	allocators["vm"] = func() Model { return new(VonMises) }
}

// Init initialises model
func (o *VonMises) Init(ndim int, pstress bool, prms fun.Prms) (err error) {

	// elastic parameters
	if pstress {
		return chk.Err("vm: plane-stress analyses are not available")
	}
	err = o.SmallElasticity.Init(ndim, pstress, prms)
	if err != nil {
		return
	}

	// parse parameters
	for _, p := range prms {
		switch p.N {
		case "sy0":
			o.sy0 = p.V
		case "Hiso":
			o.Hiso = p.V
		case "Hkin":
			o.Hkin = p.V
		case "E", "nu", "l", "G", "K", "rho":
		default:
			return chk.Err("vm: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.sy0 <= 0 {
		return chk.Err("vm: initial yield stress sy0=%g must be positive", o.sy0)
	}

	// auxiliary structures
	o.ten = make([]float64, o.Nsig)
	o.xi = make([]float64, o.Nsig)
	return
}

// GetPrms gets (an example) of parameters
func (o VonMises) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "sy0", V: 0.24},
		&fun.Prm{N: "Hiso", V: 0},
		&fun.Prm{N: "Hkin", V: 0},
	}
}

// Clean clean resources
func (o *VonMises) Clean() {
}

// InitIntVars initialises internal (secondary) variables
func (o VonMises) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig, 1)
	copy(s.Sig, σ)
	return
}

// Update updates stresses for given strains
func (o *VonMises) Update(s *State, ε, Δε []float64, eid, ipid int, time float64) (err error) {

	// set flags
	s.Loading = false // => not elastoplastic
	s.Dgam = 0        // Δγ := 0

	// accessors
	σ := s.Sig
	β := s.Back
	α0 := &s.Alp[0]
	copy(s.Eps, ε)

	// trial stress
	var devΔε_i float64
	trΔε := Δε[0] + Δε[1] + Δε[2]
	for i := 0; i < o.Nsig; i++ {
		devΔε_i = Δε[i] - trΔε*tsr.Im[i]/3.0
		o.ten[i] = σ[i] + o.K*trΔε*tsr.Im[i] + 2.0*o.G*devΔε_i // ten := σtr
	}

	// relative deviatoric trial stress: ξ := dev(σtr) - β
	ptr := tsr.M_p(o.ten)
	no := 0.0
	for i := 0; i < o.Nsig; i++ {
		o.xi[i] = o.ten[i] + ptr*tsr.Im[i] - β[i]
		no += o.xi[i] * o.xi[i]
	}
	no = math.Sqrt(no)

	// trial yield function
	ftr := no - tsr.SQ2by3*(o.sy0+o.Hiso*(*α0))

	// elastic update
	if ftr <= 0.0 {
		copy(σ, o.ten) // σ := ten = σtr
		return
	}

	// radial return
	var n_i float64
	s.Dgam = ftr / (2.0*o.G + 2.0*(o.Hiso+o.Hkin)/3.0)
	for i := 0; i < o.Nsig; i++ {
		n_i = o.xi[i] / no
		σ[i] = o.ten[i] - 2.0*o.G*s.Dgam*n_i
		β[i] += 2.0 * o.Hkin * s.Dgam * n_i / 3.0
		s.EpsP[i] += s.Dgam * n_i
	}
	*α0 += tsr.SQ2by3 * s.Dgam
	s.Loading = true
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *VonMises) CalcD(D [][]float64, s *State, firstIt bool) (err error) {

	// set first Δγ
	if firstIt {
		s.Dgam = 0
	}

	// elastic
	if !s.Loading {
		return o.SmallElasticity.CalcD(D, s)
	}

	// reconstruct the return direction from the updated state
	σ := s.Sig
	β := s.Back
	p := tsr.M_p(σ)
	no := 0.0
	for i := 0; i < o.Nsig; i++ {
		o.xi[i] = σ[i] + p*tsr.Im[i] - β[i]
		no += o.xi[i] * o.xi[i]
	}
	no = math.Sqrt(no)
	if no < 1e-14 {
		return o.SmallElasticity.CalcD(D, s)
	}

	// elastoplastic => consistent stiffness
	Δγ := s.Dgam
	qtr := no + (2.0*o.G+2.0*o.Hkin/3.0)*Δγ // norm of the trial ξ
	θ := 1.0 - 2.0*o.G*Δγ/qtr
	θb := 1.0/(1.0+(o.Hiso+o.Hkin)/(3.0*o.G)) - (1.0 - θ)
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D[i][j] = o.K*tsr.Im[i]*tsr.Im[j] + 2.0*o.G*θ*tsr.Psd[i][j] -
				2.0*o.G*θb*o.xi[i]*o.xi[j]/(no*no)
		}
	}
	return
}

// ContD computes D = dσ_new/dε_new continuous
func (o *VonMises) ContD(D [][]float64, s *State) (err error) {

	// elastic part
	err = o.SmallElasticity.CalcD(D, s)
	if err != nil {
		return
	}

	// only elastic
	if !s.Loading {
		return
	}

	// elastoplastic
	σ := s.Sig
	β := s.Back
	p := tsr.M_p(σ)
	no := 0.0
	for i := 0; i < o.Nsig; i++ {
		o.xi[i] = σ[i] + p*tsr.Im[i] - β[i]
		no += o.xi[i] * o.xi[i]
	}
	no = math.Sqrt(no)
	if no < 1e-14 {
		return
	}
	a1 := 2.0 * o.G / (1.0 + (o.Hiso+o.Hkin)/(3.0*o.G))
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D[i][j] -= a1 * o.xi[i] * o.xi[j] / (no * no)
		}
	}
	return
}

// YieldFunc computes the yield function value for the current state
func (o *VonMises) YieldFunc(s *State) float64 {
	p := tsr.M_p(s.Sig)
	no := 0.0
	for i := 0; i < o.Nsig; i++ {
		v := s.Sig[i] + p*tsr.Im[i] - s.Back[i]
		no += v * v
	}
	return math.Sqrt(no) - tsr.SQ2by3*(o.sy0+o.Hiso*s.Alp[0])
}
