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
	"github.com/cpmech/gosl/utl"
)

// Summary records a summary of the output generated by one simulation,
// including the load stepping bookkeeping required to resume an interrupted
// run.
type Summary struct {

	// main data
	OutTimes []float64    // [nOutTimes] output times
	Resids   utl.DblSlist // residuals history (if Stat is on; includes all stages)
	Level    int          // increment level at the last converged step
	Nconv    int          // number of consecutive convergences below the baseline level
	Complete bool         // the last stage ran to completion
	Dirout   string       // directory where results were saved
	Fnkey    string       // filename key of simulation

	// auxiliary
	tidx int // time output index
}

// SaveDomains saves the results (control points and elements) from all domains
func (o *Summary) SaveDomains(t float64, doms []*Domain) (err error) {
	for _, d := range doms {
		err = d.Save(o.tidx, false)
		if err != nil {
			return chk.Err("cannot save domain results:\n%v", err)
		}
	}
	o.OutTimes = append(o.OutTimes, t)
	o.tidx++
	return
}

// Save saves the summary to disc
func (o *Summary) Save(dirout, fnkey, enctype string, verbose bool) (err error) {

	// set paths before saving
	o.Dirout = dirout
	o.Fnkey = fnkey

	// buffer and encoder
	var buf bytes.Buffer
	enc := ele.GetEncoder(&buf, enctype)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}

	// save file
	fn := out_sum_path(dirout, fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// Read reads the summary of a previous simulation
func (o *Summary) Read(dir, fnkey, enctype string) (err error) {

	// open file
	fn := out_sum_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer fil.Close()

	// decode summary
	dec := ele.GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return chk.Err("cannot decode summary:\n%v", err)
	}
	o.tidx = len(o.OutTimes)
	return
}

// ReadSum reads the summary of a previous simulation
func ReadSum(dir, fnkey, enctype string) (o *Summary, err error) {
	o = new(Summary)
	err = o.Read(dir, fnkey, enctype)
	if err != nil {
		return nil, err
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}
