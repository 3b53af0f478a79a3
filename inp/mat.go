// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/GabrielJie/Isogeometric-Analysis/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// FracData holds phase-field fracture parameters
type FracData struct {
	Gc   float64 // critical energy release rate
	L    float64 // regularisation length scale
	Kres float64 // residual stiffness factor of the degradation function
}

// Material holds material data
type Material struct {

	// input
	Name  string   `json:"name"`  // name of material
	Type  string   `json:"type"`  // type of material; "solid", "frac" or "group"
	Model string   `json:"model"` // name of model; e.g. "lin-elast", "vm", "oned-elast"
	Extra string   `json:"extra"` // extra information; e.g. group member names
	Prms  fun.Prms `json:"prms"`  // all model parameters of this material

	// derived
	Solid solid.Model // pointer to actual solid model
	Frac  *FracData   // fracture parameters
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Solids map[string]*Material // subset with materials/models: solids
	Fracs  map[string]*Material // subset with materials/models: fracture parameter sets
	Groups map[string]*Material // subset with materials/models: groups
}

// Clean cleans resources
func (o *MatDb) Clean() {
	for _, mat := range o.Materials {
		if mat.Solid != nil {
			mat.Solid.Clean()
		}
	}
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string, ndim int, pstress bool) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Solids = make(map[string]*Material)
	mdb.Fracs = make(map[string]*Material)
	mdb.Groups = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "solid":
			mdb.Solids[m.Name] = m
		case "frac":
			mdb.Fracs[m.Name] = m
		case "group":
			mdb.Groups[m.Name] = m
		default:
			err = chk.Err("material type %q is incorrect; options are \"solid\", \"frac\" and \"group\"", m.Type)
			return
		}
	}

	// alloc/init: solids
	for _, m := range mdb.Solids {
		m.Solid, err = solid.New(m.Model)
		if err != nil {
			return
		}
		err = m.Solid.Init(ndim, pstress, m.Prms)
		if err != nil {
			return
		}
	}

	// init: fracture parameter sets
	for _, m := range mdb.Fracs {
		m.Frac = new(FracData)
		m.Frac.Kres = 1e-9
		for _, p := range m.Prms {
			switch p.N {
			case "Gc":
				m.Frac.Gc = p.V
			case "l":
				m.Frac.L = p.V
			case "kres":
				m.Frac.Kres = p.V
			default:
				err = chk.Err("fracture material %q: parameter named %q is incorrect", m.Name, p.N)
				return
			}
		}
		if m.Frac.Gc <= 0 {
			err = chk.Err("fracture material %q must have a positive critical energy release rate Gc", m.Name)
			return
		}
		if m.Frac.L <= 0 {
			err = chk.Err("fracture material %q must have a positive length scale l", m.Name)
			return
		}
	}

	// handle groups: a group combines one solid and one fracture parameter set
	for _, m := range mdb.Groups {
		matnames := strings.Fields(m.Extra)
		for _, name := range matnames {
			if mm, ok := mdb.Solids[name]; ok {
				m.Solid = mm.Solid
			}
			if mm, ok := mdb.Fracs[name]; ok {
				m.Frac = mm.Frac
			}
		}
		if m.Solid == nil {
			err = chk.Err("material group %q must name a solid material in \"extra\"", m.Name)
			return
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	fun.G_extraindent = "  "
	fun.G_openbrackets = false
	return io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n%v\n    }", o.Name, o.Type, o.Model, o.Extra, o.Prms)
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
