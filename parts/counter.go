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

import "github.com/gmofishsauce/gatesim/graph"

// Ic74193 is a 4-bit synchronous up/down counter modeled on the 74193
// TTL part: a half-adder low bit and three full-adder higher bits chained
// by carry-lookahead UpCond/DownCond signals, with shared active-high
// Clear and active-low LoadInv control and Carry/Borrow ripple outputs.
type Ic74193 struct {
	Up, Down, LoadInv, Clear graph.Pin
	In                       [4]graph.Pin
	Q                        [4]graph.Pin
	Carry, Borrow            graph.Pin

	adder1 HalfAdder
	adder2 FullAdder
	adder3 FullAdder
	adder4 FullAdder
}

// NewIc74193 builds one 4-bit counter cell.
func NewIc74193(g *graph.Graph, name string) Ic74193 {
	upInv := Not(g, name+".up_inv")
	downInv := Not(g, name+".down_inv")
	load := Not(g, name+".load")
	clearInv := Not(g, name+".clear_inv")

	adder1 := NewHalfAdder(g, name+".adder1")
	adder2 := NewFullAdder(g, name+".adder2")
	adder3 := NewFullAdder(g, name+".adder3")
	adder4 := NewFullAdder(g, name+".adder4")

	carry := NandNary(g, name+".carry", 5)
	g.Connect(upInv.Q, carry.Input(0))
	g.Connect(adder1.Q, carry.Input(1))
	g.Connect(adder2.Q, carry.Input(2))
	g.Connect(adder3.Q, carry.Input(3))
	g.Connect(adder4.Q, carry.Input(4))

	borrow := NandNary(g, name+".borrow", 5)
	g.Connect(downInv.Q, borrow.Input(0))
	g.Connect(adder1.QInv, borrow.Input(1))
	g.Connect(adder2.QInv, borrow.Input(2))
	g.Connect(adder3.QInv, borrow.Input(3))
	g.Connect(adder4.QInv, borrow.Input(4))

	toggle1 := Nor(g, name+".toggle1")
	g.Connect(upInv.Q, toggle1.A)
	g.Connect(downInv.Q, toggle1.B)
	g.Connect(toggle1.Q, adder1.Toggle)

	g.Connect(adder1.Q, adder2.UpCond)
	g.Connect(adder1.QInv, adder2.DownCond)

	upCond3 := And(g, name+".up_cond3")
	g.Connect(adder1.Q, upCond3.A)
	g.Connect(adder2.Q, upCond3.B)
	downCond3 := And(g, name+".down_cond3")
	g.Connect(adder1.QInv, downCond3.A)
	g.Connect(adder2.QInv, downCond3.B)
	g.Connect(upCond3.Q, adder3.UpCond)
	g.Connect(downCond3.Q, adder3.DownCond)

	upCond4 := And(g, name+".up_cond4")
	g.Connect(upCond3.Q, upCond4.A)
	g.Connect(adder3.Q, upCond4.B)
	downCond4 := And(g, name+".down_cond4")
	g.Connect(downCond3.Q, downCond4.A)
	g.Connect(adder3.QInv, downCond4.B)
	g.Connect(upCond4.Q, adder4.UpCond)
	g.Connect(downCond4.Q, adder4.DownCond)

	g.ConnectAll([]graph.Pin{upInv.Q, adder2.Up, adder3.Up, adder4.Up})
	g.ConnectAll([]graph.Pin{downInv.Q, adder2.Down, adder3.Down, adder4.Down})
	g.ConnectAll([]graph.Pin{load.Q, adder1.Load, adder2.Load, adder3.Load, adder4.Load})
	g.ConnectAll([]graph.Pin{clearInv.Q, adder1.Clear, adder2.Clear, adder3.Clear, adder4.Clear})

	return Ic74193{
		Up:      upInv.A,
		Down:    downInv.A,
		LoadInv: load.A,
		Clear:   clearInv.A,
		In:      [4]graph.Pin{adder1.Input, adder2.Input, adder3.Input, adder4.Input},
		Q:       [4]graph.Pin{adder1.Q, adder2.Q, adder3.Q, adder4.Q},
		Carry:   carry.Q,
		Borrow:  borrow.Q,
		adder1:  adder1, adder2: adder2, adder3: adder3, adder4: adder4,
	}
}

// Counter8 chains two Ic74193 cells into an 8-bit up/down counter.
type Counter8 struct {
	Up, Down, LoadInv, Clear graph.Pin
	In                       [8]graph.Pin
	Q                        [8]graph.Pin
	Carry, Borrow            graph.Pin
}

// NewCounter8 builds an 8-bit counter.
func NewCounter8(g *graph.Graph, name string) Counter8 {
	c1 := NewIc74193(g, name+".counter1")
	c2 := NewIc74193(g, name+".counter2")

	g.Connect(c1.Carry, c2.Up)
	g.Connect(c1.Borrow, c2.Down)
	g.Connect(c1.LoadInv, c2.LoadInv)
	g.Connect(c1.Clear, c2.Clear)

	return Counter8{
		Up: c1.Up, Down: c1.Down, LoadInv: c1.LoadInv, Clear: c1.Clear,
		In: [8]graph.Pin{c1.In[0], c1.In[1], c1.In[2], c1.In[3], c2.In[0], c2.In[1], c2.In[2], c2.In[3]},
		Q:  [8]graph.Pin{c1.Q[0], c1.Q[1], c1.Q[2], c1.Q[3], c2.Q[0], c2.Q[1], c2.Q[2], c2.Q[3]},
		Carry: c2.Carry, Borrow: c2.Borrow,
	}
}

// Counter16 chains two Counter8 cells into a 16-bit up/down counter.
type Counter16 struct {
	Up, Down, LoadInv, Clear graph.Pin
	In                       [16]graph.Pin
	Q                        [16]graph.Pin
	Carry, Borrow            graph.Pin
}

// NewCounter16 builds a 16-bit counter.
func NewCounter16(g *graph.Graph, name string) Counter16 {
	c1 := NewCounter8(g, name+".counter1")
	c2 := NewCounter8(g, name+".counter2")

	g.Connect(c1.Carry, c2.Up)
	g.Connect(c1.Borrow, c2.Down)
	g.Connect(c1.LoadInv, c2.LoadInv)
	g.Connect(c1.Clear, c2.Clear)

	var in [16]graph.Pin
	var q [16]graph.Pin
	copy(in[0:8], c1.In[:])
	copy(in[8:16], c2.In[:])
	copy(q[0:8], c1.Q[:])
	copy(q[8:16], c2.Q[:])

	return Counter16{
		Up: c1.Up, Down: c1.Down, LoadInv: c1.LoadInv, Clear: c1.Clear,
		In: in, Q: q,
		Carry: c2.Carry, Borrow: c2.Borrow,
	}
}
