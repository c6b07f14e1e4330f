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

import "github.com/gmofishsauce/gatesim/signal"

// PinState is the tagged state of a single pin: either disconnected (HiZ),
// reading whatever its node resolves to (Input), or driving its node
// (Output).
type PinState struct {
	kind pinKind
	sig  signal.Signal
}

type pinKind byte

const (
	hiZ pinKind = iota
	input
	output
)

// HiZState is the high-impedance pin state: neither reading from nor
// driving its node.
var HiZState = PinState{kind: hiZ}

// InputState returns an Input pin state carrying sig.
func InputState(sig signal.Signal) PinState {
	return PinState{kind: input, sig: sig}
}

// OutputState returns an Output pin state carrying sig.
func OutputState(sig signal.Signal) PinState {
	return PinState{kind: output, sig: sig}
}

// IsHiZ reports whether this is the high-impedance state.
func (s PinState) IsHiZ() bool { return s.kind == hiZ }

// IsInput reports whether this is an Input(_) state.
func (s PinState) IsInput() bool { return s.kind == input }

// IsOutput reports whether this is an Output(_) state.
func (s PinState) IsOutput() bool { return s.kind == output }

// Signal returns the canonical signal of a pin state: Off for HiZ,
// otherwise the inner signal.
func (s PinState) Signal() signal.Signal {
	if s.kind == hiZ {
		return signal.Off
	}
	return s.sig
}

// Pin is a stable, cheaply-copyable handle identifying a single bit of
// port belonging to a part. Equality is by index; a Pin never carries a
// reference back to the graph that created it, so every read or mutation
// goes through an explicit *Graph rather than letting a Pin reach back
// into the graph on its own.
type Pin struct {
	name  string
	index int
}

// Name returns the pin's human-readable debug name.
func (p Pin) Name() string { return p.name }

// Index returns the pin's slot in the graph's pin-state store.
func (p Pin) Index() int { return p.index }
