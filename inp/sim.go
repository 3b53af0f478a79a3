// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim), (.msh) and (.mat) JSON files
package inp

import (
	"encoding/json"
	goio "io"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds global data for simulations
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/iga
	Encoder string `json:"encoder"` // encoder name; "gob" or "json"

	// problem definition and options
	Axisym  bool `json:"axisym"`  // axisymmetric
	Pstress bool `json:"pstress"` // plane-stress
	Stat    bool `json:"stat"`    // record residuals history in summary
	ListBcs bool `json:"listbcs"` // list boundary conditions
}

// LinSolData holds data for the sparse linear solver
type LinSolData struct {
	Name      string `json:"name"`      // "umfpack"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Timing    bool   `json:"timing"`    // show timing statistics
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// SolverData holds nonlinear solver data
type SolverData struct {

	// nonlinear solver
	Type   string  `json:"type"`   // nonlinear solver type; e.g. "imp" => implicit
	NmaxIt int     `json:"nmaxit"` // number of max iterations
	Atol   float64 `json:"atol"`   // absolute tolerance
	Rtol   float64 `json:"rtol"`   // relative tolerance
	FbMin  float64 `json:"fbmin"`  // minimum value of fb (residual floor)
	ShowR  bool    `json:"showr"`  // show residuals during iterations

	// load stepping
	LvlMin  int `json:"lvlmin"`  // lowest increment level allowed before giving up
	NconvUp int `json:"nconvup"` // number of consecutive convergences before raising the level

	// constants
	Eps float64 `json:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0

	// derived
	Itol float64 // iterations tolerance
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "imp"
	o.NmaxIt = 10
	o.Atol = 1e-6
	o.Rtol = 1e-6
	o.FbMin = 1e-10
	o.LvlMin = -7
	o.NconvUp = 4
	o.Eps = 1e-16
}

// PostProcess computes derived quantities after reading the json file
func (o *SolverData) PostProcess() {
	o.Itol = utl.Max(10.0*o.Eps/o.Rtol, utl.Min(0.01, math.Sqrt(o.Rtol)))
}

// ElemData holds element data
type ElemData struct {
	Tag   int    `json:"tag"`   // tag of element
	Mat   string `json:"mat"`   // material name
	Type  string `json:"type"`  // type of element; e.g. "solid", "rod", "solid-crack"
	Extra string `json:"extra"` // extra flags
}

// Region holds region data
type Region struct {

	// input data
	Desc      string      `json:"desc"`      // description of region
	Mshfile   string      `json:"mshfile"`   // file path of file with mesh data
	ElemsData []*ElemData `json:"elemsdata"` // list of elements data
	AbsPath   bool        `json:"abspath"`   // mesh filename is given in absolute path

	// derived
	Msh      *Mesh       // the mesh
	etag2idx map[int]int // maps element tag to element index in ElemsData slice
}

// Etag2data returns the ElemData corresponding to element tag
//  Note: returns nil if not found
func (o *Region) Etag2data(etag int) *ElemData {
	idx, ok := o.etag2idx[etag]
	if !ok {
		return nil
	}
	return o.ElemsData[idx]
}

// NodeBc holds boundary conditions at control points
type NodeBc struct {
	Tag   int      `json:"tag"`   // tag of control point
	Keys  []string `json:"keys"`  // keys; e.g. "ux", "uy", "phi" (essential) or "fx", "fy" (point loads)
	Funcs []string `json:"funcs"` // names of value functions; e.g. "zero", "load"
	Extra string   `json:"extra"` // extra information
}

// EleCond holds element conditions
type EleCond struct {
	Tag   int      `json:"tag"`   // tag of cell/element
	Keys  []string `json:"keys"`  // keys; e.g. "g" (gravity)
	Funcs []string `json:"funcs"` // names of value functions
	Extra string   `json:"extra"` // extra information
}

// TimeControl holds data for defining the load stepping
type TimeControl struct {
	Tf     float64 `json:"tf"`     // final (pseudo) time
	Dt     float64 `json:"dt"`     // baseline increment size (if constant)
	DtOut  float64 `json:"dtout"`  // increment size for output
	DtFcn  string  `json:"dtfcn"`  // baseline increment size (function name)
	DtoFcn string  `json:"dtofcn"` // increment size for output (function name)

	// derived
	DtFunc  fun.Func // baseline increment function
	DtoFunc fun.Func // output increment function
}

// ImportRes holds definitions for importing results from a previous simulation
type ImportRes struct {
	Dir    string `json:"dir"`    // output directory with previous simulation files
	Fnk    string `json:"fnk"`    // previous simulation file name key (without .sim)
	ResetU bool   `json:"resetu"` // reset/zero u (displacements)
}

// Stage holds stage data
type Stage struct {

	// main
	Desc string `json:"desc"` // description of stage
	Skip bool   `json:"skip"` // do not run stage

	// initial state
	Import *ImportRes `json:"import"` // import results from a previous simulation

	// conditions
	EleConds []*EleCond `json:"eleconds"` // element conditions; e.g. gravity
	NodeBcs  []*NodeBc  `json:"nodebcs"`  // boundary conditions at control points

	// load stepping control
	Control TimeControl `json:"control"`
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data       `json:"data"`      // global data
	Functions FuncsData  `json:"functions"` // boundary condition functions
	Regions   []*Region  `json:"regions"`   // regions
	LinSol    LinSolData `json:"linsol"`    // linear solver data
	Solver    SolverData `json:"solver"`    // nonlinear solver data
	Stages    []*Stage   `json:"stages"`    // stages

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType   string // encoder type
	MatParams *MatDb // materials' parameters
	Ndim      int    // space dimension
}

// Clean cleans resources
func (o *Simulation) Clean() {
	if o.MatParams != nil {
		o.MatParams.Clean()
	}
}

// ReadSim reads all simulation data from a .sim JSON file
//  Note: this function initialises log file as well
func ReadSim(simfilepath, alias string, erasefiles bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()
	o.LinSol.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/iga/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// set solver constants
	o.Solver.PostProcess()

	// for all regions
	for i, reg := range o.Regions {

		// read mesh
		ddir := dir
		if reg.AbsPath {
			ddir = ""
		}
		reg.Msh, err = ReadMsh(ddir, reg.Mshfile)
		if err != nil {
			chk.Panic("ReadSim: cannot read mesh file:\n%v", err)
		}

		// dependent variables
		reg.etag2idx = make(map[int]int)
		for j, ed := range reg.ElemsData {
			reg.etag2idx[ed.Tag] = j
		}

		// space dimension
		if i == 0 {
			o.Ndim = reg.Msh.Ndim
		} else {
			if reg.Msh.Ndim != o.Ndim {
				chk.Panic("ReadSim: Ndim value is inconsistent: %d != %d", reg.Msh.Ndim, o.Ndim)
			}
		}
	}

	// read materials database
	o.MatParams, err = ReadMat(dir, o.Data.Matfile, o.Ndim, o.Data.Pstress)
	if err != nil {
		chk.Panic("ReadSim: cannot read materials database:\n%v", err)
	}

	// for all stages
	var t float64
	for _, stg := range o.Stages {

		// fix Tf
		if stg.Control.Tf < 1e-14 {
			stg.Control.Tf = 1
		}

		// fix Dt
		if stg.Control.DtFcn == "" {
			if stg.Control.Dt < 1e-14 {
				stg.Control.Dt = 1
			}
			stg.Control.DtFunc = &fun.Cte{C: stg.Control.Dt}
		} else {
			stg.Control.DtFunc, err = o.Functions.Get(stg.Control.DtFcn)
			if err != nil {
				chk.Panic("ReadSim: cannot find DtFunc named %q", stg.Control.DtFcn)
			}
			stg.Control.Dt = stg.Control.DtFunc.F(t, nil)
		}

		// fix DtOut
		if stg.Control.DtoFcn == "" {
			if stg.Control.DtOut < 1e-14 {
				stg.Control.DtOut = stg.Control.Dt
				stg.Control.DtoFunc = stg.Control.DtFunc
			} else {
				if stg.Control.DtOut < stg.Control.Dt {
					stg.Control.DtOut = stg.Control.Dt
				}
				stg.Control.DtoFunc = &fun.Cte{C: stg.Control.DtOut}
			}
		} else {
			stg.Control.DtoFunc, err = o.Functions.Get(stg.Control.DtoFcn)
			if err != nil {
				chk.Panic("ReadSim: cannot find DtoFunc named %q", stg.Control.DtoFcn)
			}
			stg.Control.DtOut = stg.Control.DtoFunc.F(t, nil)
		}

		// update time
		t += stg.Control.Tf
	}

	// results
	return &o
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
