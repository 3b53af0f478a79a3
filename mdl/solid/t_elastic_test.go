// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

func Test_elast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast01. plane-strain elastic modulus")

	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(2, false, []*fun.Prm{
		&fun.Prm{N: "E", V: 1500},
		&fun.Prm{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	ela := mdl.(*LinElast)
	chk.Scalar(tst, "K", 1e-12, ela.K, 1000)
	chk.Scalar(tst, "G", 1e-12, ela.G, 600)

	// D matrix: λ + 2G on the diagonal, λ off-diagonal, 2G in shear
	nsig := 4
	D := la.MatAlloc(nsig, nsig)
	s, err := mdl.InitIntVars(make([]float64, nsig))
	if err != nil {
		tst.Errorf("InitIntVars failed: %v\n", err)
		return
	}
	err = ela.CalcD(D, s, false)
	if err != nil {
		tst.Errorf("CalcD failed: %v\n", err)
		return
	}
	λ, G := ela.L, ela.G
	chk.Matrix(tst, "D", 1e-12, D, [][]float64{
		{λ + 2*G, λ, λ, 0},
		{λ, λ + 2*G, λ, 0},
		{λ, λ, λ + 2*G, 0},
		{0, 0, 0, 2 * G},
	})

	// update equals D times strain increment
	Δε := []float64{0.001, -0.002, 0, 0.0005}
	err = ela.Update(s, Δε, Δε, 0, 0, 0)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	σ := make([]float64, nsig)
	la.MatVecMul(σ, 1, D, Δε)
	chk.Vector(tst, "σ", 1e-12, s.Sig, σ)
}

func Test_elast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast02. plane-stress elastic modulus")

	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	E, ν := 1500.0, 0.25
	err = mdl.Init(2, true, []*fun.Prm{
		&fun.Prm{N: "E", V: E},
		&fun.Prm{N: "nu", V: ν},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	ela := mdl.(*LinElast)
	nsig := 4
	D := la.MatAlloc(nsig, nsig)
	s, _ := mdl.InitIntVars(make([]float64, nsig))
	err = ela.CalcD(D, s, false)
	if err != nil {
		tst.Errorf("CalcD failed: %v\n", err)
		return
	}
	c := E / (1.0 - ν*ν)
	chk.Matrix(tst, "D", 1e-12, D, [][]float64{
		{c, c * ν, 0, 0},
		{c * ν, c, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, c * (1.0 - ν)},
	})

	// uniaxial stress: σx = E εx when εy = -ν εx
	εx := 0.001
	Δε := []float64{εx, -ν * εx, 0, 0}
	err = ela.Update(s, Δε, Δε, 0, 0, 0)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "σx", 1e-12, s.Sig[0], E*εx)
	chk.Scalar(tst, "σy", 1e-12, s.Sig[1], 0)
}

func Test_elast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast03. K/G parameters and invalid input")

	var ela SmallElasticity
	err := ela.Init(3, false, []*fun.Prm{
		&fun.Prm{N: "K", V: 1000},
		&fun.Prm{N: "G", V: 600},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "E", 1e-12, ela.E, 1500)
	chk.Scalar(tst, "nu", 1e-12, ela.Nu, 0.25)

	err = ela.Init(3, false, []*fun.Prm{&fun.Prm{N: "rho", V: 1}})
	if err == nil {
		tst.Errorf("error should have been raised for missing moduli\n")
	}
}
