package parts

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
	"github.com/pkg/errors"

	"github.com/gmofishsauce/gatesim/graph"
	"github.com/gmofishsauce/gatesim/signal"
)

const (
	ramAddrBits = 15
	ramWords    = 1 << ramAddrBits
	ramIOWidth  = 8
)

const (
	ramCEInv = 0
	ramOEInv = 1
	ramWEInv = 2
	ramIO    = 3
	ramAddr  = ramIO + ramIOWidth
)

// RAM32K is a 32K x 8 static RAM modeled on the CY7C199: active-low chip
// enable, output enable, and write enable, an 8-bit bidirectional I/O bus,
// and a 15-bit address bus. Uninitialized memory reads as 0xFF.
//
// Simultaneous OE and WE both asserted is a contention the real part's
// datasheets disagree on; this model forces the I/O bus to HiZ in that
// case, the defensive choice confirmed against the reference
// implementation's own resolution of the same ambiguity.
type RAM32K struct {
	CEInv, OEInv, WEInv graph.Pin
	IO                  [ramIOWidth]graph.Pin
	Addr                [ramAddrBits]graph.Pin
}

// NewRAM32K builds one 32K x 8 RAM.
func NewRAM32K(g *graph.Graph, name string) RAM32K {
	states := make([]graph.PinState, ramAddr+ramAddrBits)
	states[ramCEInv] = graph.InputState(signal.Off)
	states[ramOEInv] = graph.InputState(signal.Off)
	states[ramWEInv] = graph.InputState(signal.Off)
	for i := 0; i < ramIOWidth; i++ {
		states[ramIO+i] = graph.HiZState
	}
	for i := 0; i < ramAddrBits; i++ {
		states[ramAddr+i] = graph.InputState(signal.Off)
	}

	mem := make([]byte, ramWords)
	for i := range mem {
		mem[i] = 0xFF
	}

	pins := g.NewPart(name, states, func(pins []graph.PinState) {
		updateRAM(mem, pins)
	})

	var ram RAM32K
	ram.CEInv = pins[ramCEInv]
	ram.OEInv = pins[ramOEInv]
	ram.WEInv = pins[ramWEInv]
	copy(ram.IO[:], pins[ramIO:ramIO+ramIOWidth])
	copy(ram.Addr[:], pins[ramAddr:ramAddr+ramAddrBits])
	return ram
}

func updateRAM(mem []byte, pins []graph.PinState) {
	ce := signal.Not(pins[ramCEInv].Signal())
	oe := signal.Not(pins[ramOEInv].Signal())
	we := signal.Not(pins[ramWEInv].Signal())

	io := pins[ramIO : ramIO+ramIOWidth]
	addrPins := pins[ramAddr : ramAddr+ramAddrBits]

	addrBits := make([]signal.Signal, ramAddrBits)
	for i, p := range addrPins {
		addrBits[i] = p.Signal()
	}
	addr := signal.NewBusValue(addrBits)
	if addr.HasError() {
		panic(errors.Errorf("RAM address bus has an Error bit: %+v", addr))
	}

	switch {
	case ce.IsLowish() || (oe.IsHigh() && we.IsHigh()):
		for i := range io {
			io[i] = graph.HiZState
		}
	case oe.IsHigh():
		data := mem[addr.Val]
		for i := 0; i < ramIOWidth; i++ {
			bit := signal.Low
			if data&(1<<uint(i)) != 0 {
				bit = signal.High
			}
			io[i] = graph.OutputState(bit)
		}
	case we.IsHigh():
		dataBits := make([]signal.Signal, ramIOWidth)
		for i, p := range io {
			dataBits[i] = p.Signal()
		}
		data := signal.NewBusValue(dataBits)
		mem[addr.Val] = byte(data.Val)
		for i := 0; i < ramIOWidth; i++ {
			bit := signal.Low
			if data.Val&(1<<uint(i)) != 0 {
				bit = signal.High
			}
			io[i] = graph.InputState(bit)
		}
	}
}
