package signal

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

import "github.com/pkg/errors"

// MaxBusWidth is the widest bus this simulator can encode into a single
// BusValue: one bit per Signal, packed into a uint64 accumulator.
const MaxBusWidth = 64

// A BusValue is the integer-plus-error-mask encoding of a multi-bit value
// read off a set of pins. Bit i of Val is 1 iff bit i's signal is High and
// not Error; bit i of Err is 1 iff bit i's signal is Error.
type BusValue struct {
	Val uint64
	Err uint64
}

// NewBusValue builds a BusValue from an ordered sequence of signals,
// least-significant bit first. It panics if the sequence is wider than
// MaxBusWidth; that is a circuit-construction bug, not a runtime condition.
func NewBusValue(bits []Signal) BusValue {
	if len(bits) > MaxBusWidth {
		panic(errors.Errorf("bus width %d exceeds max width %d", len(bits), MaxBusWidth))
	}
	var bv BusValue
	for i, s := range bits {
		switch s {
		case Error:
			bv.Err |= 1 << uint(i)
		case High:
			bv.Val |= 1 << uint(i)
		}
	}
	return bv
}

// HasError reports whether any bit of the bus was driven with Error.
func (bv BusValue) HasError() bool {
	return bv.Err != 0
}
