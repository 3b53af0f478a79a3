// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/GabrielJie/Isogeometric-Analysis/ele"
	"github.com/GabrielJie/Isogeometric-Analysis/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_solid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid01. information and allocation")

	// load sim => mesh => edat => cell
	sim := inp.ReadSim("data/solid.sim", "", true)
	msh := sim.Regions[0].Msh
	edat := sim.Regions[0].ElemsData[0]
	cell := msh.Cells[0]

	// check info
	infofcn := ele.GetInfoFunc("solid")
	info := infofcn(sim, cell, edat)
	chk.IntAssert(len(info.Dofs), 9)
	for _, dof := range info.Dofs {
		chk.Strings(tst, "u dofs", dof, []string{"ux", "uy"})
	}

	// check element
	allocator := ele.GetAllocator("solid")
	e := allocator(sim, cell, edat, ele.BuildCoordsMatrix(cell, msh), ele.BuildWeightsVector(cell, msh)).(*Solid)
	e.SetEqs([][]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17},
	})
	chk.Ints(tst, "Umap", e.Umap, utl.IntRange(18))
	chk.IntAssert(len(e.IpsElem), 9)
}

func Test_solid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid02. patch with homogeneous strain")

	// load sim => allocate element
	sim := inp.ReadSim("data/solid.sim", "", true)
	msh := sim.Regions[0].Msh
	edat := sim.Regions[0].ElemsData[0]
	cell := msh.Cells[0]
	allocator := ele.GetAllocator("solid")
	e := allocator(sim, cell, edat, ele.BuildCoordsMatrix(cell, msh), ele.BuildWeightsVector(cell, msh)).(*Solid)
	e.SetEqs([][]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17},
	})

	// solution with homogeneous horizontal strain: ux = εxx * x and uy = 0
	nu := 18
	sol := &ele.Solution{Y: make([]float64, nu), ΔY: make([]float64, nu)}
	e.SetIniIvs(sol, nil)
	εxx := 0.001
	for m := 0; m < 9; m++ {
		sol.Y[0+m*2] = εxx * e.X[0][m]
		sol.ΔY[0+m*2] = sol.Y[0+m*2]
	}

	// update => uniform stresses at all integration points
	err := e.Update(sol)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	λ, G := 600.0, 600.0 // E=1500 and ν=0.25
	σref := []float64{(λ + 2*G) * εxx, λ * εxx, λ * εxx, 0}
	for idx, s := range e.States {
		chk.Vector(tst, io.Sf("ip%d: σ", idx), 1e-14, s.Sig, σref)
	}

	// stiffness matrix
	Kb := ele.NewAssembler(nu, nu)
	err = e.AddToKb(Kb, sol, false)
	if err != nil {
		tst.Errorf("AddToKb failed:\n%v", err)
		return
	}

	// symmetry
	for i := 0; i < nu; i++ {
		for j := i + 1; j < nu; j++ {
			chk.Scalar(tst, io.Sf("K%d%d", i, j), 1e-12, Kb.At(i, j), Kb.At(j, i))
		}
	}

	// rigid body translation must produce no forces
	for i := 0; i < nu; i++ {
		sumx, sumy := 0.0, 0.0
		for m := 0; m < 9; m++ {
			sumx += Kb.At(i, 0+m*2)
			sumy += Kb.At(i, 1+m*2)
		}
		chk.Scalar(tst, io.Sf("Σ K[%d][ux]", i), 1e-11, sumx, 0)
		chk.Scalar(tst, io.Sf("Σ K[%d][uy]", i), 1e-11, sumy, 0)
	}

	// residual forces must match K ⋅ y for the linear model
	fb := make([]float64, nu)
	err = e.AddToRhs(fb, sol)
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	for i := 0; i < nu; i++ {
		ky := 0.0
		for j := 0; j < nu; j++ {
			ky += Kb.At(i, j) * sol.Y[j]
		}
		chk.Scalar(tst, io.Sf("fb%d", i), 1e-12, fb[i], -ky)
	}
}
