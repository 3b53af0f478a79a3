// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/GabrielJie/Isogeometric-Analysis/ele/phasefrac"
	"github.com/GabrielJie/Isogeometric-Analysis/ele/solid"
)

// enforce loading of all elements
func init() {
	_ = solid.Solid{}
	_ = solid.Rod{}
	_ = phasefrac.SolidCrack{}
}
