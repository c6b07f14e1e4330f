package graph

/*
Author: Jeff Berkowitz
Copyright (C) 2023 Jeff Berkowitz

This file is part of gatesim.

Gatesim is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation, either version 3
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see http://www.gnu.org/licenses/.
*/

import (
	"sort"

	"github.com/gmofishsauce/gatesim/signal"
)

// NodeID is the opaque identity of a node (an equivalence class of
// connected pins). Ids are minted monotonically and never reused.
type NodeID int

// node is an equivalence class of pins treated as a single electrical net.
// everDriven distinguishes a node that has at some point had an Output
// member (a real electrical net, whose last-resolved signal should be
// sampled-and-held into Input members even on a tick where it's
// momentarily undriven) from one that never has (a pin used purely as a
// part's own private, never-connected storage — see TFlipFlop's hidden
// edge-detection pin — whose self-written value must never be clobbered
// by node resolution).
type node struct {
	pins       map[int]struct{}
	signal     signal.Signal
	everDriven bool
}

func newNode(pinIndex int) *node {
	return &node{
		pins:   map[int]struct{}{pinIndex: {}},
		signal: signal.Off,
	}
}

// sortedPins returns the node's member pin indices in ascending order.
// Resolution doesn't care about order, but diagnostics and tests want
// determinism.
func (n *node) sortedPins() []int {
	out := make([]int, 0, len(n.pins))
	for p := range n.pins {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
