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

// Updater is a part's state transition over its own contiguous pin-state
// slice. It must not reorder, grow, or alias the slice it's given; it may
// freely transition pins between HiZ, Input(_) and Output(_) and change
// their signals. Reads within a single Update invocation see the latest
// write made by that same invocation (the slice is read/write, not a
// separate before/after pair) — sequential parts rely on this to read
// their own previous output before overwriting it.
type Updater func(pins []PinState)

// part is a named unit of behavior with a contiguous, disjoint range of
// pins and an updater applied once per tick.
type part struct {
	name    string
	start   int
	end     int
	updater Updater
}
