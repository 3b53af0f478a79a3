// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds all information required to set a simulation stage
type Info struct {
	Dofs [][]string        // solution variables PER CONTROL POINT. ex for 2 points: [["ux", "uy"], ["ux", "uy"]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx", "phi" => "qphi"
}
