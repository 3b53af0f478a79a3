// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func Test_oned01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("oned01. elastic rod model")

	mdl, err := New("oned-elast")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(1, false, []*fun.Prm{
		&fun.Prm{N: "E", V: 1000},
		&fun.Prm{N: "A", V: 0.5},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	rod := mdl.(*OnedLinElast)
	chk.Scalar(tst, "A", 1e-15, rod.GetA(), 0.5)

	s, err := rod.InitIntVars1D()
	if err != nil {
		tst.Errorf("InitIntVars1D failed: %v\n", err)
		return
	}
	err = rod.Update(s, 0.002, 0.002, 0)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "σ", 1e-15, s.Sig, 2.0)
	D, _, err := rod.CalcD(s, false)
	if err != nil {
		tst.Errorf("CalcD failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "D", 1e-15, D, 1000)
}

func Test_oned02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("oned02. elastoplastic rod model")

	E, H, sy0 := 1000.0, 250.0, 2.0
	mdl, err := New("oned-vm")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(1, false, []*fun.Prm{
		&fun.Prm{N: "E", V: E},
		&fun.Prm{N: "A", V: 1},
		&fun.Prm{N: "sy0", V: sy0},
		&fun.Prm{N: "H", V: H},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	rod := mdl.(*OnedVonMises)
	s, err := rod.InitIntVars1D()
	if err != nil {
		tst.Errorf("InitIntVars1D failed: %v\n", err)
		return
	}

	// elastic up to the yield strain, then hardening slope EH/(E+H)
	ey := sy0 / E
	epSlope := E * H / (E + H)
	ε, δ := 0.0, ey/2.0
	for k := 1; k <= 6; k++ {
		ε += δ
		err = rod.Update(s, ε, δ, 0)
		if err != nil {
			tst.Errorf("Update failed: %v\n", err)
			return
		}
		var σ float64
		if ε <= ey {
			σ = E * ε
		} else {
			σ = sy0 + epSlope*(ε-ey)
		}
		io.Pf("ε=%8.5f  σ=%10.6f  α=%g\n", ε, s.Sig, s.Alp[0])
		chk.Scalar(tst, io.Sf("σ@%d", k), 1e-12, s.Sig, σ)
		D, _, e := rod.CalcD(s, false)
		if e != nil {
			tst.Errorf("CalcD failed: %v\n", e)
			return
		}
		if ε <= ey {
			chk.Scalar(tst, "D", 1e-12, D, E)
		} else {
			chk.Scalar(tst, "D", 1e-12, D, epSlope)
		}
	}

	// elastic unloading
	err = rod.Update(s, ε-δ, -δ, 0)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	if s.Loading {
		tst.Errorf("unloading step must be elastic\n")
		return
	}
	D, _, err := rod.CalcD(s, false)
	if err != nil {
		tst.Errorf("CalcD failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "D unload", 1e-12, D, E)
}
