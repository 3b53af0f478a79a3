// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/GabrielJie/Isogeometric-Analysis/ele"
	"github.com/GabrielJie/Isogeometric-Analysis/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Domain holds all Nodes and Elements active during a stage in addition to
// the Solution at control points and the global linear system.
type Domain struct {

	// init: auxiliary variables
	Sim *inp.Simulation // [from Main] input data
	Reg *inp.Region     // region data
	Msh *inp.Mesh       // mesh data

	// stage: nodes and elements
	Nodes  []*Node       // active nodes. Note: indices in Nodes do NOT correspond to Ids => use Vid2node
	Elems  []ele.Element // all elements
	MyCids []int         // the ids of cells in Elems

	// stage: auxiliary maps for dofs
	F2Y   map[string]string // converts f-keys to y-keys; e.g.: "fx" => "ux"
	YandC map[string]bool   // y keys admissible as prescribed values; e.g. "ux", "phi"

	// stage: auxiliary maps for nodes and elements
	Vid2node []*Node       // [nverts] VertexId => node. Vertices not referenced by cells are 'nil'
	Cid2elem []ele.Element // [ncells] CellId => element

	// stage: subsets of elements
	ElemIntvars []ele.WithIntVars  // elements with internal (secondary) variables
	ElemOutIps  []ele.CanOutputIps // elements that can output integration point values

	// stage: prescribed values and point loads
	EssenBcs EssentialBcs // prescribed values at control points
	PtNatBcs PtNaturalBcs // point loads at control points

	// stage: dimensions and partition
	Ny  int   // total number of dofs
	Eqk []int // known (prescribed) equations
	Equ []int // unknown equations

	// stage: solution and linear system
	Sol *ele.Solution  // solution state
	Kb  *ele.Assembler // global Jacobian == dRdy
	Fb  []float64      // global right-hand side == -R
	Wb  []float64      // Newton increment vector
	Sys *LinSys        // partitioned linear system solver

	// workspace: values gathered at the unknown equations
	fu []float64 // resid components
	wu []float64 // increment components
	yu []float64 // solution components

	// for divergence control
	bkpSol *ele.Solution // backup solution
}

// NewDomains returns one domain per region
func NewDomains(sim *inp.Simulation) (doms []*Domain) {
	doms = make([]*Domain, len(sim.Regions))
	for i, reg := range sim.Regions {
		doms[i] = new(Domain)
		doms[i].Sim = sim
		doms[i].Reg = reg
		doms[i].Msh = reg.Msh
	}
	return
}

// Free frees memory allocated by the linear solver
func (o *Domain) Free() {
	if o.Sys != nil {
		o.Sys.Free()
	}
}

// SetStage sets nodes, equation numbers and auxiliary data for given stage
func (o *Domain) SetStage(stgidx int) (err error) {

	// pointer to stage structure
	stg := o.Sim.Stages[stgidx]

	// nodes and elements
	o.Nodes = make([]*Node, 0)
	o.Elems = make([]ele.Element, 0)
	o.MyCids = make([]int, 0)

	// auxiliary maps for dofs
	o.F2Y = make(map[string]string)
	o.YandC = make(map[string]bool)

	// auxiliary maps for nodes and elements
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.Cid2elem = make([]ele.Element, len(o.Msh.Cells))

	// subsets of elements
	o.ElemIntvars = make([]ele.WithIntVars, 0)
	o.ElemOutIps = make([]ele.CanOutputIps, 0)

	// allocate nodes and elements ------------------------------------------------------------------

	// for each cell
	var eq int // current equation number => total number of equations @ end of loop
	for _, cell := range o.Msh.Cells {

		// get element info
		info, err := ele.GetInfo(cell, o.Reg, o.Sim)
		if err != nil {
			return chk.Err("get element information failed:\n%v", err)
		}
		chk.IntAssert(len(info.Dofs), len(cell.Verts))

		// store y and f information
		for ykey, fkey := range info.Y2F {
			o.F2Y[fkey] = ykey
			o.YandC[ykey] = true
		}

		// loop over control points of this cell
		for j, v := range cell.Verts {

			// new or existent node
			var nod *Node
			if o.Vid2node[v] == nil {
				nod = NewNode(o.Msh.Verts[v])
				o.Vid2node[v] = nod
				o.Nodes = append(o.Nodes, nod)
			} else {
				nod = o.Vid2node[v]
			}

			// set DOFs and equation numbers
			for _, ukey := range info.Dofs[j] {
				eq = nod.AddDofAndEq(ukey, eq)
			}
		}

		// new element
		e, err := ele.New(cell, o.Reg, o.Sim)
		if err != nil {
			return chk.Err("new element failed:\n%v", err)
		}
		o.Cid2elem[cell.Id] = e
		o.Elems = append(o.Elems, e)
		o.MyCids = append(o.MyCids, e.Id())

		// give equation numbers to new element
		eqs := make([][]int, len(cell.Verts))
		for j, v := range cell.Verts {
			for _, ukey := range info.Dofs[j] {
				eqs[j] = append(eqs[j], o.Vid2node[v].GetEq(ukey))
			}
		}
		err = e.SetEqs(eqs)
		if err != nil {
			return chk.Err("cannot set element equations:\n%v", err)
		}

		// subsets of elements
		o.add_element_to_subsets(e)
	}

	// prescribed values and point loads ------------------------------------------------------------

	// (re)set structures
	o.EssenBcs.Init()
	o.PtNatBcs.Reset()

	// element conditions
	for _, ec := range stg.EleConds {
		cells, ok := o.Msh.CellTag2cells[ec.Tag]
		if !ok {
			return chk.Err("cannot find cells with tag = %d to assign conditions", ec.Tag)
		}
		for _, cell := range cells {
			e := o.Cid2elem[cell.Id]
			if e == nil {
				continue
			}
			for j, key := range ec.Keys {
				fcn, err := o.Sim.Functions.Get(ec.Funcs[j])
				if err != nil {
					return chk.Err("cannot find function named %q:\n%v", ec.Funcs[j], err)
				}
				err = e.SetEleConds(key, fcn, ec.Extra)
				if err != nil {
					return chk.Err("cannot set element condition %q:\n%v", key, err)
				}
			}
		}
	}

	// control point boundary conditions
	for _, nc := range stg.NodeBcs {
		verts, ok := o.Msh.VertTag2verts[nc.Tag]
		if !ok {
			return chk.Err("cannot find control points with tag = %d to assign boundary conditions", nc.Tag)
		}
		for _, v := range verts {
			n := o.Vid2node[v.Id]
			if n == nil {
				continue
			}
			for j, key := range nc.Keys {
				fcn, err := o.Sim.Functions.Get(nc.Funcs[j])
				if err != nil {
					return chk.Err("cannot find function named %q:\n%v", nc.Funcs[j], err)
				}
				if o.YandC[key] {
					err = o.EssenBcs.Set(key, []*Node{n}, fcn, nc.Extra)
				} else {
					ykey, ok := o.F2Y[key]
					if !ok {
						return chk.Err("cannot handle boundary condition with key %q", key)
					}
					err = o.PtNatBcs.Set(ykey, n, fcn, nc.Extra)
				}
				if err != nil {
					return chk.Err("cannot set boundary condition %q at control point %d:\n%v", key, v.Id, err)
				}
			}
		}
	}

	// partition, solution structure and linear system ----------------------------------------------

	// known/unknown partition
	o.Ny = eq
	o.Eqk, o.Equ = o.EssenBcs.Build(o.Ny)

	// list prescribed values
	if o.Sim.Data.ListBcs {
		io.Pf("%v", o.EssenBcs.List(0))
	}

	// solution structure
	o.Sol = new(ele.Solution)
	o.Sol.Axisym = o.Sim.Data.Axisym
	o.Sol.Pstress = o.Sim.Data.Pstress
	o.Sol.Y = make([]float64, o.Ny)
	o.Sol.ΔY = make([]float64, o.Ny)

	// global system
	o.Kb = ele.NewAssembler(o.Ny, o.Ny)
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)
	if o.Sys != nil {
		o.Sys.Free()
	}
	o.Sys = NewLinSys(o.Eqk, o.Equ, &o.Sim.LinSol)

	// workspace
	nu := len(o.Equ)
	o.fu = make([]float64, nu)
	o.wu = make([]float64, nu)
	o.yu = make([]float64, nu)

	// success
	return
}

// SetIniVals sets/resets initial values at control points and integration points
func (o *Domain) SetIniVals(stgidx int, zeroSol bool) (err error) {

	// pointer to stage structure
	stg := o.Sim.Stages[stgidx]

	// clear solution vectors
	if zeroSol {
		o.Sol.Reset()
	}

	// initialise internal variables
	for _, e := range o.ElemIntvars {
		err = e.SetIniIvs(o.Sol, nil)
		if err != nil {
			return chk.Err("cannot set initial internal values:\n%v", err)
		}
	}

	// import results from a previous simulation
	if stg.Import != nil {
		sum, err := ReadSum(stg.Import.Dir, stg.Import.Fnk, o.Sim.EncType)
		if err != nil {
			return chk.Err("cannot import state from %s/%s:\n%v", stg.Import.Dir, stg.Import.Fnk, err)
		}
		err = o.Read(sum, len(sum.OutTimes)-1)
		if err != nil {
			return chk.Err("cannot load results into domain:\n%v", err)
		}
		if o.Ny != len(o.Sol.Y) {
			return chk.Err("length of primary variables vector imported is not equal to the one allocated. make sure the number of DOFs of the imported simulation matches this one. %d != %d", o.Ny, len(o.Sol.Y))
		}
		if stg.Import.ResetU {
			for _, e := range o.ElemIntvars {
				err = e.Ureset(o.Sol)
				if err != nil {
					return chk.Err("cannot reset element after displacements are zeroed:\n%v", err)
				}
			}
			for _, nod := range o.Nodes {
				for _, ukey := range []string{"ux", "uy", "uz"} {
					eq := nod.GetEq(ukey)
					if eq >= 0 {
						o.Sol.Y[eq] = 0
					}
				}
			}
		}
	}

	// time is zero at the beginning of a stage
	o.Sol.T = 0
	return
}

// auxiliary functions //////////////////////////////////////////////////////////////////////////////

// add_element_to_subsets adds an element to as many subsets as it fits
func (o *Domain) add_element_to_subsets(e ele.Element) {
	if w, ok := e.(ele.WithIntVars); ok {
		o.ElemIntvars = append(o.ElemIntvars, w)
	}
	if w, ok := e.(ele.CanOutputIps); ok {
		o.ElemOutIps = append(o.ElemOutIps, w)
	}
}

// backup saves a copy of the solution and of the internal variables
func (o *Domain) backup() {
	if o.bkpSol == nil {
		o.bkpSol = new(ele.Solution)
		o.bkpSol.Y = make([]float64, o.Ny)
		o.bkpSol.ΔY = make([]float64, o.Ny)
	}
	o.bkpSol.T = o.Sol.T
	copy(o.bkpSol.Y, o.Sol.Y)
	copy(o.bkpSol.ΔY, o.Sol.ΔY)
	for _, e := range o.ElemIntvars {
		e.BackupIvs(true)
	}
}

// restore restores the solution and the internal variables from the backup copies
func (o *Domain) restore() {
	o.Sol.T = o.bkpSol.T
	copy(o.Sol.Y, o.bkpSol.Y)
	copy(o.Sol.ΔY, o.bkpSol.ΔY)
	for _, e := range o.ElemIntvars {
		e.RestoreIvs(true)
	}
}
