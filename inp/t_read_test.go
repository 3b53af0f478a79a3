// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01")

	msh, err := ReadMsh("data", "bar2.msh")
	if err != nil {
		tst.Errorf("cannot read mesh:\n%v", err)
		return
	}
	io.Pforan("msh = %v\n", msh)

	// dimensions
	chk.IntAssert(msh.Ndim, 1)
	chk.IntAssert(len(msh.Verts), 4)
	chk.IntAssert(len(msh.Cells), 2)

	// control points
	xs := []float64{0, 0.5, 1.5, 2}
	for i, v := range msh.Verts {
		chk.Scalar(tst, io.Sf("vert%d: x", i), 1e-17, v.C[0], xs[i])
		chk.Scalar(tst, io.Sf("vert%d: w", i), 1e-17, v.W, 1)
	}

	// tagged control points
	chk.IntAssert(len(msh.VertTag2verts[-100]), 1)
	chk.IntAssert(len(msh.VertTag2verts[-200]), 1)
	chk.IntAssert(msh.VertTag2verts[-100][0].Id, 0)
	chk.IntAssert(msh.VertTag2verts[-200][0].Id, 3)

	// cells
	c0, c1 := msh.Cells[0], msh.Cells[1]
	chk.Ints(tst, "cell0: verts", c0.Verts, []int{0, 1, 2})
	chk.Ints(tst, "cell1: verts", c1.Verts, []int{1, 2, 3})
	chk.Ints(tst, "cell0: deg", c0.Degrees, []int{2})
	chk.Vector(tst, "cell0: h", 1e-17, c0.Psize, []float64{1})
	chk.Matrix(tst, "cell0: ext", 1e-17, c0.Ext[0], [][]float64{
		{1, 0, 0},
		{0, 1, 0.5},
		{0, 0, 0.5},
	})
	chk.Matrix(tst, "cell1: ext", 1e-17, c1.Ext[0], [][]float64{
		{0.5, 0, 0},
		{0.5, 1, 0},
		{0, 0, 1},
	})

	// tagged cells
	chk.IntAssert(len(msh.CellTag2cells[-1]), 2)

	// missing file must not panic
	_, err = ReadMsh("data", "__missing__.msh")
	if err == nil {
		tst.Errorf("reading inexistent file must return error\n")
		return
	}
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01")

	mdb, err := ReadMat("data", "solids.mat", 2, false)
	if err != nil {
		tst.Errorf("cannot read materials:\n%v", err)
		return
	}
	io.Pfblue2("mdb = %v\n", mdb)

	// solids
	elast := mdb.Get("elast1")
	if elast == nil || elast.Solid == nil {
		tst.Errorf("cannot find material \"elast1\" with allocated model\n")
		return
	}
	vm := mdb.Get("vmsld1")
	if vm == nil || vm.Solid == nil {
		tst.Errorf("cannot find material \"vmsld1\" with allocated model\n")
		return
	}

	// fracture parameter set
	crack := mdb.Get("crack1")
	if crack == nil || crack.Frac == nil {
		tst.Errorf("cannot find fracture material \"crack1\"\n")
		return
	}
	chk.Scalar(tst, "Gc", 1e-17, crack.Frac.Gc, 0.5)
	chk.Scalar(tst, "l", 1e-17, crack.Frac.L, 0.1)
	chk.Scalar(tst, "kres", 1e-17, crack.Frac.Kres, 1e-9)

	// group: shares the solid model and the fracture set of its members
	grp := mdb.Get("sldcrk1")
	if grp == nil {
		tst.Errorf("cannot find material group \"sldcrk1\"\n")
		return
	}
	if grp.Solid != elast.Solid {
		tst.Errorf("group must point to the solid model of \"elast1\"\n")
		return
	}
	if grp.Frac != crack.Frac {
		tst.Errorf("group must point to the fracture set of \"crack1\"\n")
		return
	}

	// inexistent material
	if mdb.Get("invalid") != nil {
		tst.Errorf("Get must return nil for inexistent material\n")
		return
	}

	// write and read back
	io.WriteFileSD("/tmp/iga/inp", "solids-rt.mat", mdb.String())
	mdb2, err := ReadMat("/tmp/iga/inp", "solids-rt.mat", 2, false)
	if err != nil {
		tst.Errorf("cannot re-read materials:\n%v", err)
		return
	}
	chk.IntAssert(len(mdb2.Materials), len(mdb.Materials))
	crack2 := mdb2.Get("crack1")
	if crack2 == nil || crack2.Frac == nil {
		tst.Errorf("re-read database is incomplete\n")
		return
	}
	chk.Scalar(tst, "re-read: Gc", 1e-17, crack2.Frac.Gc, 0.5)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim := ReadSim("data/basic.sim", "", true)
	if sim == nil {
		tst.Errorf("cannot read simulation file\n")
		return
	}
	if chk.Verbose {
		sim.GetInfo(os.Stdout)
		io.Pf("\n")
	}

	// global data
	if sim.Data.Matfile != "solids.mat" {
		tst.Errorf("matfile is incorrect: %q\n", sim.Data.Matfile)
		return
	}
	if sim.Key != "basic" {
		tst.Errorf("simulation key is incorrect: %q\n", sim.Key)
		return
	}
	if sim.EncType != "gob" {
		tst.Errorf("default encoder must be gob: %q\n", sim.EncType)
		return
	}
	chk.IntAssert(sim.Ndim, 1)

	// linear and nonlinear solver data
	if sim.LinSol.Name != "umfpack" {
		tst.Errorf("default linear solver must be umfpack: %q\n", sim.LinSol.Name)
		return
	}
	chk.IntAssert(sim.Solver.NmaxIt, 10)
	chk.IntAssert(sim.Solver.LvlMin, -7)
	chk.IntAssert(sim.Solver.NconvUp, 4)
	chk.Scalar(tst, "Atol", 1e-17, sim.Solver.Atol, 1e-6)
	chk.Scalar(tst, "Rtol", 1e-17, sim.Solver.Rtol, 1e-8)
	chk.Scalar(tst, "FbMin", 1e-17, sim.Solver.FbMin, 1e-10)
	chk.Scalar(tst, "Itol", 1e-17, sim.Solver.Itol, 1e-4)

	// regions
	chk.IntAssert(len(sim.Regions), 1)
	edat := sim.Regions[0].Etag2data(-1)
	if edat == nil {
		tst.Errorf("cannot get elements data with tag -1\n")
		return
	}
	if edat.Mat != "bar1" || edat.Type != "rod" {
		tst.Errorf("elements data is incorrect: %v\n", edat)
		return
	}

	// materials database
	if sim.MatParams.Get("bar1") == nil {
		tst.Errorf("materials database was not read\n")
		return
	}

	// functions
	ramp, err := sim.Functions.Get("ramp")
	if err != nil {
		tst.Errorf("cannot get \"ramp\" function:\n%v", err)
		return
	}
	chk.Scalar(tst, "ramp(1)", 1e-17, ramp.F(1, nil), 0.02)
	zero, err := sim.Functions.Get("zero")
	if err != nil {
		tst.Errorf("cannot get \"zero\" function:\n%v", err)
		return
	}
	chk.Scalar(tst, "zero(1)", 1e-17, zero.F(1, nil), 0)

	// stages
	chk.IntAssert(len(sim.Stages), 1)
	stg := sim.Stages[0]
	chk.IntAssert(len(stg.NodeBcs), 2)
	chk.Scalar(tst, "Tf", 1e-17, stg.Control.Tf, 1.0)
	chk.Scalar(tst, "Dt", 1e-17, stg.Control.Dt, 0.25)
	chk.Scalar(tst, "DtOut", 1e-17, stg.Control.DtOut, 0.5)
	chk.Scalar(tst, "DtFunc(0)", 1e-17, stg.Control.DtFunc.F(0, nil), 0.25)
	chk.Scalar(tst, "DtoFunc(0)", 1e-17, stg.Control.DtoFunc.F(0, nil), 0.5)
}
