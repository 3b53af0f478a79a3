// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phasefrac implements elements for the simulation of brittle
// fracture with the phase-field approach
package phasefrac

import (
	"github.com/GabrielJie/Isogeometric-Analysis/ele"
	esolid "github.com/GabrielJie/Isogeometric-Analysis/ele/solid"
	"github.com/GabrielJie/Isogeometric-Analysis/inp"
	"github.com/GabrielJie/Isogeometric-Analysis/mdl/solid"
	"github.com/GabrielJie/Isogeometric-Analysis/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// SolidCrack implements a solid element with displacements u and a crack
// phase-field φ as primary variables. The formulation is the second order
// (AT2) model with the hybrid scheme: the momentum balance uses the
// isotropically degraded stress g(φ)⋅σ while the crack driving force is the
// history field H, the largest elastic energy density seen at each
// integration point
//
//	g(φ) = (1-φ)² + kres
//
// The tangent operator is block diagonal: the u-φ coupling blocks are
// dropped and the convergence control of the nonlinear solver resolves the
// interaction between the two fields
type SolidCrack struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // [ndim][nverts] matrix of control point coordinates
	Shp  *shp.Shape  // shape structure
	Nu   int         // number of displacement unknowns
	Np   int         // number of phase-field unknowns
	Ndim int         // space dimension

	// fracture parameters
	Gc   float64 // critical energy release rate
	L    float64 // characteristic length scale
	Kres float64 // residual stiffness factor

	// optional data
	Thickness float64 // thickness (for plane-stress)

	// integration points
	IpsElem []shp.Ipoint // integration points of element

	// material model
	Model    solid.Model // material model
	MdlSmall solid.Small // model specialisation for small strains

	// internal variables
	States    []*solid.State // [nip] states with effective (undegraded) stresses
	StatesBkp []*solid.State // [nip] backup states
	StatesAux []*solid.State // [nip] auxiliary backup states
	H         []float64      // [nip] history field
	Hbkp      []float64      // [nip] backup history field
	Haux      []float64      // [nip] auxiliary backup history field

	// problem variables
	Umap []int // assembly map for displacements
	Pmap []int // assembly map for the phase-field

	// scratchpad. computed @ each ip
	fu    []float64   // [nu] internal forces
	fp    []float64   // [np] phase-field residual
	Kuu   [][]float64 // [nu][nu] displacement tangent block
	Kpp   [][]float64 // [np][np] phase-field tangent block
	B     [][]float64 // [nsig][nu] strain-displacement matrix
	D     [][]float64 // [nsig][nsig] constitutive consistent tangent matrix
	gradφ []float64   // [ndim] gradient of phase-field @ ip

	// strains
	ε  []float64 // total (updated) strains
	Δε []float64 // incremental strains leading to updated strains
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("solid-crack", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {

		// new info
		var info ele.Info

		// solution variables
		ykeys := []string{"ux", "uy", "phi"}
		if sim.Ndim == 3 {
			ykeys = []string{"ux", "uy", "uz", "phi"}
		}
		nverts := len(cell.Verts)
		info.Dofs = make([][]string, nverts)
		for m := 0; m < nverts; m++ {
			info.Dofs[m] = ykeys
		}

		// maps
		info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz", "phi": "qphi"}
		return &info
	})

	// element allocator
	ele.SetAllocator("solid-crack", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64, w []float64) ele.Element {

		// check
		if sim.Ndim == 1 {
			chk.Panic("solid-crack elements are not available for 1D meshes")
		}

		// basic data
		var o SolidCrack
		o.Cell = cell
		o.X = x
		o.Shp = shp.GetShapeBezier(cell.Degrees, cell.Ext, cell.Psize, w)
		o.Ndim = sim.Ndim
		o.Nu = o.Ndim * o.Shp.Nverts
		o.Np = o.Shp.Nverts

		// flags
		o.Thickness = esolid.GetSolidFlags(sim.Data.Pstress, edat.Extra)

		// integration points
		o.IpsElem = shp.IpsTensor(cell.Degrees)

		// material model and fracture parameters
		mat := sim.MatParams.Get(edat.Mat)
		if mat == nil || mat.Solid == nil || mat.Frac == nil {
			chk.Panic("cannot get group material data for solid-crack element {tag=%d id=%d material=%q}", cell.Tag, cell.Id, edat.Mat)
		}
		o.Model = mat.Solid
		o.Gc = mat.Frac.Gc
		o.L = mat.Frac.L
		o.Kres = mat.Frac.Kres

		// model specialisation
		small, ok := o.Model.(solid.Small)
		if !ok {
			chk.Panic("material model %q does not work with small strains", edat.Mat)
		}
		o.MdlSmall = small

		// scratchpad. computed @ each ip
		nsig := 2 * o.Ndim
		o.fu = make([]float64, o.Nu)
		o.fp = make([]float64, o.Np)
		o.Kuu = la.MatAlloc(o.Nu, o.Nu)
		o.Kpp = la.MatAlloc(o.Np, o.Np)
		o.B = la.MatAlloc(nsig, o.Nu)
		o.D = la.MatAlloc(nsig, nsig)
		o.gradφ = make([]float64, o.Ndim)

		// strains
		o.ε = make([]float64, nsig)
		o.Δε = make([]float64, nsig)

		// return new element
		return &o
	})
}

// Id returns the cell Id
func (o *SolidCrack) Id() int { return o.Cell.Id }

// SetEqs sets equations
func (o *SolidCrack) SetEqs(eqs [][]int) (err error) {
	o.Umap = make([]int, o.Nu)
	o.Pmap = make([]int, o.Np)
	for m := 0; m < o.Shp.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			r := i + m*o.Ndim
			o.Umap[r] = eqs[m][i]
		}
		o.Pmap[m] = eqs[m][o.Ndim]
	}
	return
}

// SetEleConds sets element conditions
func (o *SolidCrack) SetEleConds(key string, f fun.Func, extra string) (err error) {
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *SolidCrack) AddToRhs(fb []float64, sol *ele.Solution) (err error) {

	// clear residual vectors
	la.VecFill(o.fu, 0)
	la.VecFill(o.fp, 0)

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

		// phase-field and gradient @ ip
		φ := o.ipphi(sol)

		// strain-displacement matrix
		radius := 1.0
		if sol.Axisym {
			radius = o.Shp.AxisymGetRadius(o.X)
			coef *= radius
		}
		esolid.IpBmatrix(o.B, o.Ndim, nverts, G, radius, S, sol.Axisym)

		// degraded internal forces: fu += coef * g(φ) * tr(B) * σ
		g := (1.0-φ)*(1.0-φ) + o.Kres
		la.MatTrVecMulAdd(o.fu, coef*g, o.B, o.States[idx].Sig)

		// phase-field residual
		H := o.H[idx]
		for m := 0; m < nverts; m++ {
			o.fp[m] += coef * S[m] * ((o.Gc/o.L)*φ - 2.0*(1.0-φ)*H)
			for i := 0; i < o.Ndim; i++ {
				o.fp[m] += coef * o.Gc * o.L * G[m][i] * o.gradφ[i]
			}
		}
	}

	// assemble fb
	for i, I := range o.Umap {
		fb[I] -= o.fu[i]
	}
	for m, I := range o.Pmap {
		fb[I] -= o.fp[m]
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *SolidCrack) AddToKb(Kb *ele.Assembler, sol *ele.Solution, firstIt bool) (err error) {

	// zero tangent blocks
	la.MatFill(o.Kuu, 0)
	la.MatFill(o.Kpp, 0)

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

		// phase-field @ ip
		φ := o.ipphi(sol)

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
		esolid.IpBmatrix(o.B, o.Ndim, nverts, G, radius, S, sol.Axisym)

		// degraded displacement block: Kuu += coef * g(φ) * tr(B) * D * B
		g := (1.0-φ)*(1.0-φ) + o.Kres
		la.MatTrMulAdd3(o.Kuu, coef*g, o.B, o.D, o.B)

		// phase-field block
		H := o.H[idx]
		for m := 0; m < nverts; m++ {
			for n := 0; n < nverts; n++ {
				o.Kpp[m][n] += coef * S[m] * S[n] * (o.Gc/o.L + 2.0*H)
				for i := 0; i < o.Ndim; i++ {
					o.Kpp[m][n] += coef * o.Gc * o.L * G[m][i] * G[n][i]
				}
			}
		}
	}

	// add blocks to sparse matrix Kb
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.Kuu[i][j])
		}
	}
	for m, I := range o.Pmap {
		for n, J := range o.Pmap {
			Kb.Put(I, J, o.Kpp[m][n])
		}
	}
	return
}

// Update performs (tangent) update and tracks the history field
func (o *SolidCrack) Update(sol *ele.Solution) (err error) {

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
		esolid.IpBmatrix(o.B, o.Ndim, nverts, o.Shp.G, radius, o.Shp.S, sol.Axisym)
		esolid.IpStrainsAndIncB(o.ε, o.Δε, nsig, o.Nu, o.B, sol.Y, sol.ΔY, o.Umap)

		// call model update => update effective stresses
		err = o.MdlSmall.Update(o.States[idx], o.ε, o.Δε, o.Id(), idx, sol.T)
		if err != nil {
			return chk.Err("update failed (eid=%d, ip=%d)\nΔε=%v\n%v", o.Id(), idx, o.Δε, err)
		}

		// history field: largest elastic energy density
		ψ := 0.5 * la.VecDot(o.ε, o.States[idx].Sig)
		if ψ > o.H[idx] {
			o.H[idx] = ψ
		}
	}
	return
}

// SetIniIvs sets initial ivs for given values in sol and ivs map
func (o *SolidCrack) SetIniIvs(sol *ele.Solution, ivs map[string][]float64) (err error) {

	// allocate slices of states
	nip := len(o.IpsElem)
	o.States = make([]*solid.State, nip)
	o.StatesBkp = make([]*solid.State, nip)
	o.StatesAux = make([]*solid.State, nip)
	o.H = make([]float64, nip)
	o.Hbkp = make([]float64, nip)
	o.Haux = make([]float64, nip)

	// has specified stresses?
	_, hasSig := ivs["sx"]

	// for each integration point
	σ := make([]float64, 2*o.Ndim)
	for i := 0; i < nip; i++ {
		if hasSig {
			esolid.Ivs2sigmas(σ, i, ivs)
		}
		o.States[i], err = o.Model.InitIntVars(σ)
		if err != nil {
			return
		}
		o.StatesBkp[i] = o.States[i].GetCopy()
		o.StatesAux[i] = o.States[i].GetCopy()
	}

	// initial history field
	if vals, ok := ivs["H"]; ok {
		copy(o.H, vals)
		copy(o.Hbkp, vals)
	}
	return
}

// BackupIvs creates copy of internal variables
func (o *SolidCrack) BackupIvs(aux bool) (err error) {
	if aux {
		for i, s := range o.StatesAux {
			s.Set(o.States[i])
		}
		copy(o.Haux, o.H)
		return
	}
	for i, s := range o.StatesBkp {
		s.Set(o.States[i])
	}
	copy(o.Hbkp, o.H)
	return
}

// RestoreIvs restores internal variables from copies
func (o *SolidCrack) RestoreIvs(aux bool) (err error) {
	if aux {
		for i, s := range o.States {
			s.Set(o.StatesAux[i])
		}
		copy(o.H, o.Haux)
		return
	}
	for i, s := range o.States {
		s.Set(o.StatesBkp[i])
	}
	copy(o.H, o.Hbkp)
	return
}

// Ureset fixes internal variables after displacements have been zeroed.
// The history field is kept: cracks cannot heal
func (o *SolidCrack) Ureset(sol *ele.Solution) (err error) {
	for idx := range o.IpsElem {
		la.VecFill(o.States[idx].Eps, 0)
		la.VecFill(o.StatesBkp[idx].Eps, 0)
	}
	return
}

// Encode encodes internal variables
func (o *SolidCrack) Encode(enc ele.Encoder) (err error) {
	err = enc.Encode(o.States)
	if err != nil {
		return
	}
	return enc.Encode(o.H)
}

// Decode decodes internal variables
func (o *SolidCrack) Decode(dec ele.Decoder) (err error) {
	err = dec.Decode(&o.States)
	if err != nil {
		return
	}
	err = dec.Decode(&o.H)
	if err != nil {
		return
	}
	return o.BackupIvs(false)
}

// OutIpCoords returns the coordinates of integration points
func (o *SolidCrack) OutIpCoords() (C [][]float64) {
	C = make([][]float64, len(o.IpsElem))
	for idx, ip := range o.IpsElem {
		C[idx] = o.Shp.IpRealCoords(o.X, ip)
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *SolidCrack) OutIpKeys() []string {
	return append(esolid.StressKeys(o.Ndim), "H")
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *SolidCrack) OutIpVals(M *ele.IpsMap, sol *ele.Solution) {
	keys := esolid.StressKeys(o.Ndim)
	nip := len(o.IpsElem)
	for idx := 0; idx < nip; idx++ {
		for i, key := range keys {
			M.Set(key, idx, nip, o.States[idx].Sig[i])
		}
		M.Set("H", idx, nip, o.H[idx])
	}
}

// ipphi interpolates the phase-field and its gradient @ ip. The basis
// values in S and G must be up-to-date
func (o *SolidCrack) ipphi(sol *ele.Solution) (φ float64) {
	for i := 0; i < o.Ndim; i++ {
		o.gradφ[i] = 0
	}
	for m := 0; m < o.Shp.Nverts; m++ {
		r := o.Pmap[m]
		φ += o.Shp.S[m] * sol.Y[r]
		for i := 0; i < o.Ndim; i++ {
			o.gradφ[i] += o.Shp.G[m][i] * sol.Y[r]
		}
	}
	return
}
