// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/GabrielJie/Isogeometric-Analysis/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Vert holds control point data
type Vert struct {
	Id  int       `json:"i"` // id
	Tag int       `json:"t"` // tag
	C   []float64 `json:"c"` // coordinates (size==1, 2 or 3)
	W   float64   `json:"w"` // weight
}

// Cell holds cell data: connectivity and the Bezier extraction of one knot span.
// Verts lists the control points of the spline basis functions with support on
// this span, ordered with the first parametric direction running fastest.
type Cell struct {

	// input data
	Id      int           `json:"i"`   // id
	Tag     int           `json:"t"`   // tag
	Verts   []int         `json:"v"`   // connectivity (control point ids)
	Degrees []int         `json:"deg"` // polynomial degree along each parametric direction
	Ext     [][][]float64 `json:"ext"` // extraction operator along each parametric direction
	Psize   []float64     `json:"h"`   // knot span (parametric) size along each direction
}

// Mesh holds an isogeometric mesh: control points and Bezier-extracted cells
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts"` // control points
	Cells []*Cell `json:"cells"` // cells

	// derived
	FnamePath string // complete filename path
	Ndim      int    // space dimension

	// derived: maps
	VertTag2verts map[int][]*Vert // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell // cell tag => set of cells
}

// ReadMsh reads a mesh file
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}

	// check for minimum number of vertices and cells
	if len(o.Verts) < 2 {
		return nil, chk.Err("mesh %q must have at least 2 control points. %d is invalid", fn, len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return nil, chk.Err("mesh %q must have at least 1 cell. %d is invalid", fn, len(o.Cells))
	}

	// vertex related derived data
	o.Ndim = len(o.Verts[0].C)
	if o.Ndim < 1 || o.Ndim > 3 {
		return nil, chk.Err("space dimension must be 1, 2 or 3. %d is invalid", o.Ndim)
	}
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return nil, chk.Err("control points must be sequentially numbered. %d != %d", v.Id, i)
		}

		// check coordinates and weight
		if len(v.C) != o.Ndim {
			return nil, chk.Err("control point %d must have %d coordinates. %d is invalid", v.Id, o.Ndim, len(v.C))
		}
		if v.W < shp.MINWGT {
			return nil, chk.Err("control point %d must have a strictly positive weight. %g is invalid", v.Id, v.W)
		}

		// vertex tag => vertices map
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {

		// check cell id
		if c.Id != i {
			return nil, chk.Err("cells must be sequentially numbered. %d != %d", c.Id, i)
		}

		// check degrees, extraction operators and parametric sizes
		gdim := len(c.Degrees)
		if gdim < 1 || gdim > 3 {
			return nil, chk.Err("cell %d must have 1, 2 or 3 parametric directions. %d is invalid", c.Id, gdim)
		}
		if gdim > o.Ndim {
			return nil, chk.Err("cell %d cannot have more parametric directions (%d) than the space dimension (%d)", c.Id, gdim, o.Ndim)
		}
		if len(c.Ext) != gdim || len(c.Psize) != gdim {
			return nil, chk.Err("cell %d must have one extraction operator and one parametric size per direction. %d and %d are invalid", c.Id, len(c.Ext), len(c.Psize))
		}
		nbasis := 1
		for k, p := range c.Degrees {
			if p < 1 {
				return nil, chk.Err("cell %d: degree along direction %d must be at least 1. %d is invalid", c.Id, k, p)
			}
			if c.Psize[k] <= 0 {
				return nil, chk.Err("cell %d: parametric size along direction %d must be positive. %g is invalid", c.Id, k, c.Psize[k])
			}
			if len(c.Ext[k]) != p+1 {
				return nil, chk.Err("cell %d: extraction operator along direction %d must have %d rows. %d is invalid", c.Id, k, p+1, len(c.Ext[k]))
			}
			for _, row := range c.Ext[k] {
				if len(row) != p+1 {
					return nil, chk.Err("cell %d: extraction operator along direction %d must have %d columns. %d is invalid", c.Id, k, p+1, len(row))
				}
			}
			nbasis *= p + 1
		}

		// check connectivity
		if len(c.Verts) != nbasis {
			return nil, chk.Err("cell %d must list %d control points. %d is invalid", c.Id, nbasis, len(c.Verts))
		}
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return nil, chk.Err("cell %d references unknown control point %d", c.Id, v)
			}
		}

		// cell tag => cells map
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
	}
	return
}

// String returns a JSON representation of the mesh
func (o *Mesh) String() string {
	b, err := json.Marshal(o)
	if err != nil {
		return "{}"
	}
	return string(b)
}
