// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

// State holds all continuum mechanics data of a material point, including
// for updating the state
type State struct {

	// essential
	Sig []float64 // σ: current Cauchy stress tensor [nsig]
	Eps []float64 // ε: current total strain tensor [nsig]

	// for plasticity (if len(α) > 0)
	Back    []float64 // β: backstress tensor for kinematic hardening [nsig]
	EpsP    []float64 // εp: plastic strain tensor [nsig]
	Alp     []float64 // α: internal variables of rate type [nalp]
	Dgam    float64   // Δγ: increment of plastic multiplier
	Loading bool      // plastic loading flag
}

// NewState allocates a state structure
//  nsig -- number of stress/strain components
//  nalp -- number of scalar internal variables; zero for elastic models
func NewState(nsig, nalp int) *State {
	var state State
	state.Sig = make([]float64, nsig)
	state.Eps = make([]float64, nsig)
	if nalp > 0 {
		state.Back = make([]float64, nsig)
		state.EpsP = make([]float64, nsig)
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	copy(o.Eps, other.Eps)
	if len(o.Alp) > 0 {
		copy(o.Back, other.Back)
		copy(o.EpsP, other.EpsP)
		copy(o.Alp, other.Alp)
		o.Dgam = other.Dgam
		o.Loading = other.Loading
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig), len(o.Alp))
	other.Set(o)
	return other
}

// OnedState holds all continuum mechanics data of a one-dimensional
// material point
type OnedState struct {

	// essential
	Sig float64 // σ: current axial stress
	Eps float64 // ε: current axial strain

	// for plasticity (if len(α) > 0)
	Alp     []float64 // α: internal variables of rate type [nalp]
	Dgam    float64   // Δγ: increment of plastic multiplier
	Loading bool      // plastic loading flag
}

// NewOnedState allocates a 1D state structure
func NewOnedState(nalp int) *OnedState {
	var state OnedState
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
func (o *OnedState) Set(other *OnedState) {
	o.Sig = other.Sig
	o.Eps = other.Eps
	if len(o.Alp) > 0 {
		copy(o.Alp, other.Alp)
		o.Dgam = other.Dgam
		o.Loading = other.Loading
	}
}

// GetCopy returns a copy of this state
func (o *OnedState) GetCopy() *OnedState {
	other := NewOnedState(len(o.Alp))
	other.Set(o)
	return other
}
