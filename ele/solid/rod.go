// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/GabrielJie/Isogeometric-Analysis/ele"
	"github.com/GabrielJie/Isogeometric-Analysis/inp"
	"github.com/GabrielJie/Isogeometric-Analysis/mdl/solid"
	"github.com/GabrielJie/Isogeometric-Analysis/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// Rod implements a structural rod element (for axial loads only) described
// by a rational Bezier curve embedded in 1D, 2D or 3D space
type Rod struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // [ndim][nverts] matrix of control point coordinates
	Shp  *shp.Shape  // shape structure
	Nu   int         // total number of unknowns
	Ndim int         // space dimension

	// material model
	Model solid.OneD // material model
	A     float64    // cross-sectional area

	// internal variables
	States    []*solid.OnedState // [nip] states
	StatesBkp []*solid.OnedState // [nip] backup states
	StatesAux []*solid.OnedState // [nip] auxiliary backup states

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// integration points
	IpsElem []shp.Ipoint // integration points of element

	// scratchpad. computed @ each ip
	tvec []float64   // [ndim] unit tangent vector
	K    [][]float64 // [nu][nu] consistent tangent (stiffness) matrix
	fi   []float64   // [nu] internal forces
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("rod", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {

		// new info
		var info ele.Info

		// solution variables
		ykeys := []string{"ux"}
		switch sim.Ndim {
		case 2:
			ykeys = []string{"ux", "uy"}
		case 3:
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
	ele.SetAllocator("rod", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64, w []float64) ele.Element {

		// basic data
		var o Rod
		o.Cell = cell
		o.X = x
		o.Shp = shp.GetShapeBezier(cell.Degrees, cell.Ext, cell.Psize, w)
		o.Ndim = sim.Ndim
		o.Nu = o.Ndim * o.Shp.Nverts
		if o.Shp.Gndim != 1 {
			chk.Panic("rod elements must be curves; gdim=%d is invalid", o.Shp.Gndim)
		}

		// material model
		mat := sim.MatParams.Get(edat.Mat)
		if mat == nil || mat.Solid == nil {
			chk.Panic("cannot get material data for rod element {tag=%d id=%d material=%q}", cell.Tag, cell.Id, edat.Mat)
		}
		oned, ok := mat.Solid.(solid.OneD)
		if !ok {
			chk.Panic("material model %q is not a 1D model for rod elements", edat.Mat)
		}
		o.Model = oned
		o.A = oned.GetA()

		// integration points
		o.IpsElem = shp.IpsTensor(cell.Degrees)

		// scratchpad. computed @ each ip
		o.tvec = make([]float64, o.Ndim)
		o.K = la.MatAlloc(o.Nu, o.Nu)
		o.fi = make([]float64, o.Nu)

		// return new element
		return &o
	})
}

// Id returns the cell Id
func (o *Rod) Id() int { return o.Cell.Id }

// SetEqs sets equations
func (o *Rod) SetEqs(eqs [][]int) (err error) {
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
func (o *Rod) SetEleConds(key string, f fun.Func, extra string) (err error) {
	if key == "g" {
		chk.Panic("rod cannot handle gravity yet")
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *Rod) AddToRhs(fb []float64, sol *ele.Solution) (err error) {

	// clear fi vector
	la.VecFill(o.fi, 0)

	// for each integration point
	nverts := o.Shp.Nverts
	for idx, ip := range o.IpsElem {

		// interpolation functions and gradients
		err = o.ipvars(ip)
		if err != nil {
			return
		}

		// auxiliary
		coef := o.Shp.J * ip[3]
		G := o.Shp.G
		σ := o.States[idx].Sig

		// internal forces
		for m := 0; m < nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				r := i + m*o.Ndim
				o.fi[r] += coef * o.A * σ * G[m][0] * o.tvec[i]
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
func (o *Rod) AddToKb(Kb *ele.Assembler, sol *ele.Solution, firstIt bool) (err error) {

	// zero K matrix
	la.MatFill(o.K, 0)

	// for each integration point
	var E float64
	nverts := o.Shp.Nverts
	for idx, ip := range o.IpsElem {

		// interpolation functions and gradients
		err = o.ipvars(ip)
		if err != nil {
			return
		}

		// auxiliary
		coef := o.Shp.J * ip[3]
		G := o.Shp.G

		// consistent tangent modulus
		E, _, err = o.Model.CalcD(o.States[idx], firstIt)
		if err != nil {
			return
		}

		// add contribution to consistent tangent matrix
		for m := 0; m < nverts; m++ {
			for n := 0; n < nverts; n++ {
				for i := 0; i < o.Ndim; i++ {
					for j := 0; j < o.Ndim; j++ {
						r := i + m*o.Ndim
						c := j + n*o.Ndim
						o.K[r][c] += coef * o.A * E * G[m][0] * G[n][0] * o.tvec[i] * o.tvec[j]
					}
				}
			}
		}
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
func (o *Rod) Update(sol *ele.Solution) (err error) {

	// for each integration point
	nverts := o.Shp.Nverts
	for idx, ip := range o.IpsElem {

		// interpolation functions and gradients
		err = o.ipvars(ip)
		if err != nil {
			return
		}
		G := o.Shp.G

		// axial strain and increment
		ε, Δε := 0.0, 0.0
		for m := 0; m < nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				r := o.Umap[i+m*o.Ndim]
				ε += G[m][0] * o.tvec[i] * sol.Y[r]
				Δε += G[m][0] * o.tvec[i] * sol.ΔY[r]
			}
		}

		// call model update => update stresses
		err = o.Model.Update(o.States[idx], ε, Δε, 0)
		if err != nil {
			return chk.Err("update failed (eid=%d, ip=%d)\nΔε=%v\n%v", o.Id(), idx, Δε, err)
		}
	}
	return
}

// SetIniIvs sets initial ivs for given values in sol and ivs map
func (o *Rod) SetIniIvs(sol *ele.Solution, ivs map[string][]float64) (err error) {

	// allocate slices of states
	nip := len(o.IpsElem)
	o.States = make([]*solid.OnedState, nip)
	o.StatesBkp = make([]*solid.OnedState, nip)
	o.StatesAux = make([]*solid.OnedState, nip)

	// for each integration point
	for i := 0; i < nip; i++ {
		o.States[i], err = o.Model.InitIntVars1D()
		if err != nil {
			return
		}
		o.StatesBkp[i] = o.States[i].GetCopy()
		o.StatesAux[i] = o.States[i].GetCopy()
	}

	// initial stresses
	if vals, ok := ivs["sig"]; ok {
		for i := 0; i < nip; i++ {
			o.States[i].Sig = vals[i]
			o.StatesBkp[i].Sig = o.States[i].Sig
		}
	}
	return
}

// BackupIvs creates copy of internal variables
func (o *Rod) BackupIvs(aux bool) (err error) {
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
func (o *Rod) RestoreIvs(aux bool) (err error) {
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
func (o *Rod) Ureset(sol *ele.Solution) (err error) {
	for idx := range o.IpsElem {
		o.States[idx].Eps = 0
		o.StatesBkp[idx].Eps = 0
	}
	return
}

// Encode encodes internal variables
func (o *Rod) Encode(enc ele.Encoder) (err error) {
	return enc.Encode(o.States)
}

// Decode decodes internal variables
func (o *Rod) Decode(dec ele.Decoder) (err error) {
	err = dec.Decode(&o.States)
	if err != nil {
		return
	}
	return o.BackupIvs(false)
}

// OutIpCoords returns the coordinates of integration points
func (o *Rod) OutIpCoords() (C [][]float64) {
	C = make([][]float64, len(o.IpsElem))
	for idx, ip := range o.IpsElem {
		C[idx] = o.Shp.IpRealCoords(o.X, ip)
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *Rod) OutIpKeys() []string {
	return []string{"sig"}
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *Rod) OutIpVals(M *ele.IpsMap, sol *ele.Solution) {
	nip := len(o.IpsElem)
	for idx := 0; idx < nip; idx++ {
		M.Set("sig", idx, nip, o.States[idx].Sig)
	}
}

// ipvars computes the shape functions and the unit tangent vector @ ip
func (o *Rod) ipvars(ip shp.Ipoint) (err error) {
	err = o.Shp.CalcAtIp(o.X, ip, true)
	if err != nil {
		return
	}
	jn := 0.0
	for i := 0; i < o.Ndim; i++ {
		jn += o.Shp.Jvec[i] * o.Shp.Jvec[i]
	}
	jn = math.Sqrt(jn)
	for i := 0; i < o.Ndim; i++ {
		o.tvec[i] = o.Shp.Jvec[i] / jn
	}
	return
}
