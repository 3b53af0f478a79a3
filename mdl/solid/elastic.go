// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/tsr"
)

// SmallElasticity implements linear isotropic elasticity for small
// strain analyses. It is embedded by the elastoplastic models.
type SmallElasticity struct {

	// constants
	Nsig int  // number of stress components
	Pse  bool // plane stress

	// parameters
	E, Nu float64 // Young's modulus and Poisson's ratio
	L, G  float64 // Lamé parameters λ and G (shear modulus)
	K     float64 // bulk modulus
	Rho   float64 // density
}

// Init initialises model. Either {E, nu} or {K, G} must be given; the
// remaining moduli are derived. Unknown parameters are ignored so that
// embedding models can share the same parameter list.
func (o *SmallElasticity) Init(ndim int, pstress bool, prms fun.Prms) (err error) {
	o.Nsig = 2 * ndim
	o.Pse = pstress
	var hasE, hasNu, hasK, hasG bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "K":
			o.K, hasK = p.V, true
		case "G":
			o.G, hasG = p.V, true
		case "l":
			o.L = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	switch {
	case hasE && hasNu:
		o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
		o.G = o.E / (2.0 * (1.0 + o.Nu))
	case hasK && hasG:
		o.E = 9.0 * o.K * o.G / (3.0*o.K + o.G)
		o.Nu = (3.0*o.K - 2.0*o.G) / (2.0 * (3.0*o.K + o.G))
	default:
		return chk.Err("elasticity: either {E, nu} or {K, G} parameters must be provided")
	}
	o.L = o.K - 2.0*o.G/3.0
	if o.E < 0 || o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("elasticity: parameters are invalid: E=%g, nu=%g", o.E, o.Nu)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SmallElasticity) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 2000},
		&fun.Prm{N: "nu", V: 0.2},
	}
}

// GetRho returns density
func (o SmallElasticity) GetRho() float64 {
	return o.Rho
}

// CalcD computes the elastic modulus D
func (o SmallElasticity) CalcD(D [][]float64, s *State) (err error) {

	// plane stress
	if o.Pse {
		if o.Nsig != 4 {
			return chk.Err("elasticity: plane-stress analyses require ndim = 2")
		}
		c := o.E / (1.0 - o.Nu*o.Nu)
		for i := 0; i < o.Nsig; i++ {
			for j := 0; j < o.Nsig; j++ {
				D[i][j] = 0
			}
		}
		D[0][0], D[0][1] = c, c*o.Nu
		D[1][0], D[1][1] = c*o.Nu, c
		D[3][3] = c * (1.0 - o.Nu)
		return
	}

	// 3D or plane strain: D = K Im ⊗ Im + 2G Psd
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D[i][j] = o.K*tsr.Im[i]*tsr.Im[j] + 2.0*o.G*tsr.Psd[i][j]
		}
	}
	return
}

// LinElast wraps SmallElasticity as a registered model
type LinElast struct {
	SmallElasticity
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// InitIntVars initialises internal (secondary) variables
func (o LinElast) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig, 0)
	copy(s.Sig, σ)
	return
}

// Clean clean resources
func (o *LinElast) Clean() {
}

// Update updates stresses for given strains
func (o *LinElast) Update(s *State, ε, Δε []float64, eid, ipid int, time float64) (err error) {
	σ := s.Sig
	copy(s.Eps, ε)
	if o.Pse {
		c := o.E / (1.0 - o.Nu*o.Nu)
		σ[0] += c*Δε[0] + c*o.Nu*Δε[1]
		σ[1] += c*o.Nu*Δε[0] + c*Δε[1]
		σ[3] += c * (1.0 - o.Nu) * Δε[3]
		return
	}
	var devΔε_i float64
	trΔε := Δε[0] + Δε[1] + Δε[2]
	for i := 0; i < o.Nsig; i++ {
		devΔε_i = Δε[i] - trΔε*tsr.Im[i]/3.0
		σ[i] += o.K*trΔε*tsr.Im[i] + 2.0*o.G*devΔε_i
	}
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *LinElast) CalcD(D [][]float64, s *State, firstIt bool) (err error) {
	return o.SmallElasticity.CalcD(D, s)
}

// ContD computes D = dσ_new/dε_new continuous
func (o *LinElast) ContD(D [][]float64, s *State) (err error) {
	return o.SmallElasticity.CalcD(D, s)
}
