// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solid implements elements for the simulation of solid mechanics
// problems using Bezier-extracted isogeometric patches
package solid

import (
	"github.com/GabrielJie/Isogeometric-Analysis/ele"
	"github.com/GabrielJie/Isogeometric-Analysis/inp"
	"github.com/GabrielJie/Isogeometric-Analysis/mdl/solid"
	"github.com/GabrielJie/Isogeometric-Analysis/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Solid implements a solid element with displacements u as primary variables.
// The control point values are interpolated with the weighted rational basis
// of the cell and all quantities are integrated with a tensor-product
// Gauss-Legendre rule of order deg+1 along each direction
type Solid struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // [ndim][nverts] matrix of control point coordinates
	Shp  *shp.Shape  // shape structure
	Nu   int         // total number of unknowns
	Ndim int         // space dimension

	// gravity
	Rho  float64  // density of solids
	Gfcn fun.Func // gravity function

	// optional data
	Thickness float64 // thickness (for plane-stress)

	// integration points
	IpsElem []shp.Ipoint // integration points of element

	// material model
	Model    solid.Model // material model
	MdlSmall solid.Small // model specialisation for small strains

	// internal variables
	States    []*solid.State // [nip] states
	StatesBkp []*solid.State // [nip] backup states
	StatesAux []*solid.State // [nip] auxiliary backup states

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// scratchpad. computed @ each ip
	grav []float64   // [ndim] gravity vector
	fi   []float64   // [nu] internal forces
	K    [][]float64 // [nu][nu] consistent tangent (stiffness) matrix
	B    [][]float64 // [nsig][nu] strain-displacement matrix
	D    [][]float64 // [nsig][nsig] constitutive consistent tangent matrix

	// strains
	ε  []float64 // total (updated) strains
	Δε []float64 // incremental strains leading to updated strains
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("solid", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {

		// new info
		var info ele.Info

		// solution variables
		ykeys := []string{"ux", "uy"}
		if sim.Ndim == 3 {
			ykeys = []string{"ux", "uy", "uz"}
		}
		nverts := len(cell.Verts)
		info.Dofs = make([][]string, nverts)
		for m := 0; m < nverts; m++ {
			info.Dofs[m] = ykeys
		}

		// maps
		info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"}
		return &info
	})

	// element allocator
	ele.SetAllocator("solid", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64, w []float64) ele.Element {

		// check
		if sim.Ndim == 1 {
			chk.Panic("solid elements are not available for 1D meshes; use rod instead")
		}

		// basic data
		var o Solid
		o.Cell = cell
		o.X = x
		o.Shp = shp.GetShapeBezier(cell.Degrees, cell.Ext, cell.Psize, w)
		o.Ndim = sim.Ndim
		o.Nu = o.Ndim * o.Shp.Nverts

		// flags
		o.Thickness = GetSolidFlags(sim.Data.Pstress, edat.Extra)

		// integration points
		o.IpsElem = shp.IpsTensor(cell.Degrees)

		// material model
		mat := sim.MatParams.Get(edat.Mat)
		if mat == nil || mat.Solid == nil {
			chk.Panic("cannot get material data for solid element {tag=%d id=%d material=%q}", cell.Tag, cell.Id, edat.Mat)
		}
		o.Model = mat.Solid

		// model specialisation
		small, ok := o.Model.(solid.Small)
		if !ok {
			chk.Panic("material model %q does not work with small strains", edat.Mat)
		}
		o.MdlSmall = small
		o.Rho = o.Model.GetRho()

		// scratchpad. computed @ each ip
		nsig := 2 * o.Ndim
		o.grav = make([]float64, o.Ndim)
		o.fi = make([]float64, o.Nu)
		o.K = la.MatAlloc(o.Nu, o.Nu)
		o.B = la.MatAlloc(nsig, o.Nu)
		o.D = la.MatAlloc(nsig, nsig)

		// strains
		o.ε = make([]float64, nsig)
		o.Δε = make([]float64, nsig)

		// return new element
		return &o
	})
}

// Id returns the cell Id
func (o *Solid) Id() int { return o.Cell.Id }

// SetEqs sets equations
func (o *Solid) SetEqs(eqs [][]int) (err error) {
	o.Umap = make([]int, o.Nu)
	for m := 0; m < o.Shp.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			r := i + m*o.Ndim
			o.Umap[r] = eqs[m][i]
		}
	}
	return
}

// SetEleConds sets element conditions
func (o *Solid) SetEleConds(key string, f fun.Func, extra string) (err error) {
	if key == "g" { // gravity
		o.Gfcn = f
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *Solid) AddToRhs(fb []float64, sol *ele.Solution) (err error) {

	// clear fi vector
	la.VecFill(o.fi, 0)

	// for each integration point
	nverts := o.Shp.Nverts
	for idx, ip := range o.IpsElem {

		// interpolation functions and gradients
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}

		// auxiliary
		coef := o.Shp.J * ip[3] * o.Thickness
		S := o.Shp.S
		G := o.Shp.G

		// strain-displacement matrix
		radius := 1.0
		if sol.Axisym {
			radius = o.Shp.AxisymGetRadius(o.X)
			coef *= radius
		}
		IpBmatrix(o.B, o.Ndim, nverts, G, radius, S, sol.Axisym)

		// internal forces
		la.MatTrVecMulAdd(o.fi, coef, o.B, o.States[idx].Sig) // fi += coef * tr(B) * σ

		// gravity term
		if o.Gfcn != nil {
			o.grav[o.Ndim-1] = -o.Gfcn.F(sol.T, nil)
			for m := 0; m < nverts; m++ {
				for i := 0; i < o.Ndim; i++ {
					r := i + m*o.Ndim
					o.fi[r] -= coef * S[m] * o.Rho * o.grav[i]
				}
			}
		}
	}

	// assemble fb
	for i, I := range o.Umap {
		fb[I] -= o.fi[i]
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *Solid) AddToKb(Kb *ele.Assembler, sol *ele.Solution, firstIt bool) (err error) {

	// zero K matrix
	la.MatFill(o.K, 0)

	// for each integration point
	nverts := o.Shp.Nverts
	for idx, ip := range o.IpsElem {

		// interpolation functions and gradients
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}

		// auxiliary
		coef := o.Shp.J * ip[3] * o.Thickness
		S := o.Shp.S
		G := o.Shp.G

		// consistent tangent model matrix
		err = o.MdlSmall.CalcD(o.D, o.States[idx], firstIt)
		if err != nil {
			return
		}

		// strain-displacement matrix
		radius := 1.0
		if sol.Axisym {
			radius = o.Shp.AxisymGetRadius(o.X)
			coef *= radius
		}
		IpBmatrix(o.B, o.Ndim, nverts, G, radius, S, sol.Axisym)

		// add contribution to consistent tangent matrix
		la.MatTrMulAdd3(o.K, coef, o.B, o.D, o.B) // K += coef * tr(B) * D * B
	}

	// add K to sparse matrix Kb
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.K[i][j])
		}
	}
	return
}

// Update performs (tangent) update
func (o *Solid) Update(sol *ele.Solution) (err error) {

	// for each integration point
	nverts := o.Shp.Nverts
	nsig := 2 * o.Ndim
	for idx, ip := range o.IpsElem {

		// interpolation functions and gradients
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}

		// compute strains
		radius := 1.0
		if sol.Axisym {
			radius = o.Shp.AxisymGetRadius(o.X)
		}
		IpBmatrix(o.B, o.Ndim, nverts, o.Shp.G, radius, o.Shp.S, sol.Axisym)
		IpStrainsAndIncB(o.ε, o.Δε, nsig, o.Nu, o.B, sol.Y, sol.ΔY, o.Umap)

		// call model update => update stresses
		err = o.MdlSmall.Update(o.States[idx], o.ε, o.Δε, o.Id(), idx, sol.T)
		if err != nil {
			return chk.Err("update failed (eid=%d, ip=%d)\nΔε=%v\n%v", o.Id(), idx, o.Δε, err)
		}
	}
	return
}

// SetIniIvs sets initial ivs for given values in sol and ivs map
func (o *Solid) SetIniIvs(sol *ele.Solution, ivs map[string][]float64) (err error) {

	// allocate slices of states
	nip := len(o.IpsElem)
	o.States = make([]*solid.State, nip)
	o.StatesBkp = make([]*solid.State, nip)
	o.StatesAux = make([]*solid.State, nip)

	// has specified stresses?
	_, hasSig := ivs["sx"]

	// for each integration point
	σ := make([]float64, 2*o.Ndim)
	for i := 0; i < nip; i++ {
		if hasSig {
			Ivs2sigmas(σ, i, ivs)
		}
		o.States[i], err = o.Model.InitIntVars(σ)
		if err != nil {
			return
		}
		o.StatesBkp[i] = o.States[i].GetCopy()
		o.StatesAux[i] = o.States[i].GetCopy()
	}
	return
}

// BackupIvs creates copy of internal variables
func (o *Solid) BackupIvs(aux bool) (err error) {
	if aux {
		for i, s := range o.StatesAux {
			s.Set(o.States[i])
		}
		return
	}
	for i, s := range o.StatesBkp {
		s.Set(o.States[i])
	}
	return
}

// RestoreIvs restores internal variables from copies
func (o *Solid) RestoreIvs(aux bool) (err error) {
	if aux {
		for i, s := range o.States {
			s.Set(o.StatesAux[i])
		}
		return
	}
	for i, s := range o.States {
		s.Set(o.StatesBkp[i])
	}
	return
}

// Ureset fixes internal variables after displacements have been zeroed
func (o *Solid) Ureset(sol *ele.Solution) (err error) {
	for idx := range o.IpsElem {
		la.VecFill(o.States[idx].Eps, 0)
		la.VecFill(o.StatesBkp[idx].Eps, 0)
	}
	return
}

// Encode encodes internal variables
func (o *Solid) Encode(enc ele.Encoder) (err error) {
	return enc.Encode(o.States)
}

// Decode decodes internal variables
func (o *Solid) Decode(dec ele.Decoder) (err error) {
	err = dec.Decode(&o.States)
	if err != nil {
		return
	}
	return o.BackupIvs(false)
}

// OutIpCoords returns the coordinates of integration points
func (o *Solid) OutIpCoords() (C [][]float64) {
	C = make([][]float64, len(o.IpsElem))
	for idx, ip := range o.IpsElem {
		C[idx] = o.Shp.IpRealCoords(o.X, ip)
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *Solid) OutIpKeys() []string {
	return StressKeys(o.Ndim)
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *Solid) OutIpVals(M *ele.IpsMap, sol *ele.Solution) {
	keys := StressKeys(o.Ndim)
	nip := len(o.IpsElem)
	for idx := 0; idx < nip; idx++ {
		for i, key := range keys {
			M.Set(key, idx, nip, o.States[idx].Sig[i])
		}
	}
}

// GetSolidFlags parses the extra information string of solid elements
func GetSolidFlags(pstress bool, extra string) (thickness float64) {
	thickness = 1.0
	if s, found := io.Keycode(extra, "thick"); found {
		thickness = io.Atof(s)
	}
	if !pstress {
		thickness = 1.0
	}
	return
}
