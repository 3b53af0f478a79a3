// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Iga solves nonlinear solid mechanics problems discretised with
// isogeometric (rational Bezier) finite elements.
package main

import (
	"github.com/GabrielJie/Isogeometric-Analysis/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/pkg/profile"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveSummary := io.ArgToBool(3, true)
	readSummary := io.ArgToBool(4, false)
	doprof := io.ArgToInt(5, 0)

	// message
	if verbose {
		io.PfWhite("\nIGA -- Isogeometric Analysis in Go\n")
		io.Pf("Copyright 2017 The IGA Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save summary", "saveSummary", saveSummary,
			"read summary of a previous run", "readSummary", readSummary,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling
	switch doprof {
	case 1:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case 2:
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	// analysis data
	alias := ""
	analysis := fem.NewMain(fnamepath, alias, erasePrev, saveSummary, readSummary, verbose)

	// run simulation
	err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
