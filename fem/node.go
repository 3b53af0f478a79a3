// Copyright 2017 The IGA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/GabrielJie/Isogeometric-Analysis/inp"

	"github.com/cpmech/gosl/io"
)

// Dof holds information about one degree-of-freedom == one scalar solution variable
type Dof struct {
	Key string // name of this dof; e.g. "ux", "uy", "phi"
	Eq  int    // equation number in the global system
}

// String returns the string representation of this dof
func (o *Dof) String() string {
	return io.Sf("{%q:%d}", o.Key, o.Eq)
}

// Node holds one control point and its degrees-of-freedom
type Node struct {
	Dofs []*Dof    // degrees-of-freedom == solution variables
	Vert *inp.Vert // pointer to control point
}

// NewNode allocates a new Node
func NewNode(v *inp.Vert) *Node {
	return &Node{nil, v}
}

// AddDofAndEq adds a new dof to the node and sets the corresponding equation number.
// It does nothing if a dof with the same key exists already.
//  Returns the next equation number.
func (o *Node) AddDofAndEq(key string, eq int) (nexteq int) {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return eq
		}
	}
	o.Dofs = append(o.Dofs, &Dof{key, eq})
	return eq + 1
}

// GetDof returns the dof with given key; or nil if the node does not have it
func (o *Node) GetDof(key string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number of the dof with given key; or -1 if the node does not have it
func (o *Node) GetEq(key string) (eq int) {
	eq = -1
	if dof := o.GetDof(key); dof != nil {
		eq = dof.Eq
	}
	return
}
