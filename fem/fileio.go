// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path"

	"github.com/GabrielJie/Isogeometric-Analysis/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SaveSol saves the solution at control points (o.Sol) to a file named with
// tidx (time output index)
func (o *Domain) SaveSol(tidx int, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := ele.GetEncoder(&buf, o.Sim.EncType)

	// encode Sol
	err = enc.Encode(o.Sol.T)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.T:\n%v", err)
	}
	err = enc.Encode(o.Sol.Y)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.Y:\n%v", err)
	}
	err = enc.Encode(o.Sol.ΔY)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.ΔY:\n%v", err)
	}

	// save file
	fn := out_nod_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf, verbose)
}

// ReadSol reads the solution at control points from a file named with tidx
func (o *Domain) ReadSol(dir, fnkey, enctype string, tidx int) (err error) {

	// open file
	fn := out_nod_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer fil.Close()

	// decode Sol
	dec := ele.GetDecoder(fil, enctype)
	err = dec.Decode(&o.Sol.T)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.T:\n%v", err)
	}
	err = dec.Decode(&o.Sol.Y)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.Y:\n%v", err)
	}
	err = dec.Decode(&o.Sol.ΔY)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.ΔY:\n%v", err)
	}
	return
}

// SaveIvs saves the elements' internal values to a file named with tidx
func (o *Domain) SaveIvs(tidx int, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := ele.GetEncoder(&buf, o.Sim.EncType)

	// elements that go to file
	err = enc.Encode(o.MyCids)
	if err != nil {
		return chk.Err("cannot encode element ids:\n%v", err)
	}

	// encode internal variables
	for _, e := range o.Elems {
		err = e.Encode(enc)
		if err != nil {
			return chk.Err("cannot encode element %d:\n%v", e.Id(), err)
		}
	}

	// save file
	fn := out_ele_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf, verbose)
}

// ReadIvs reads the elements' internal values from a file named with tidx
func (o *Domain) ReadIvs(dir, fnkey, enctype string, tidx int) (err error) {

	// open file
	fn := out_ele_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer fil.Close()

	// elements that are in file
	dec := ele.GetDecoder(fil, enctype)
	err = dec.Decode(&o.MyCids)
	if err != nil {
		return chk.Err("cannot decode element ids:\n%v", err)
	}

	// decode internal variables
	for _, cid := range o.MyCids {
		e := o.Cid2elem[cid]
		if e == nil {
			return chk.Err("cannot find element with cid=%d", cid)
		}
		err = e.Decode(dec)
		if err != nil {
			return chk.Err("cannot decode element %d:\n%v", cid, err)
		}
	}
	return
}

// Save saves the solution and the internal values to files
func (o *Domain) Save(tidx int, verbose bool) (err error) {
	err = o.SaveSol(tidx, verbose)
	if err != nil {
		return
	}
	return o.SaveIvs(tidx, verbose)
}

// Read performs the inverse operation of Save
func (o *Domain) Read(sum *Summary, tidx int) (err error) {
	err = o.ReadIvs(sum.Dirout, sum.Fnkey, o.Sim.EncType, tidx)
	if err != nil {
		return
	}
	return o.ReadSol(sum.Dirout, sum.Fnkey, o.Sim.EncType, tidx)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_nod_path(dir, fnkey, enctype string, tidx int) string {
	return path.Join(dir, io.Sf("%s_nod_%010d.%s", fnkey, tidx, enctype))
}

func out_ele_path(dir, fnkey, enctype string, tidx int) string {
	return path.Join(dir, io.Sf("%s_ele_%010d.%s", fnkey, tidx, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer fil.Close()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
