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

// RunStats summarizes one Run to steady state (or detected cycle): how
// many ticks it took, how many node updates those ticks produced, and, if
// a repeated fingerprint ended the run, the tick distance between the two
// occurrences minus one (0 if no cycle was detected).
type RunStats struct {
	Ticks   int
	Updates int
	Cycle   int
}

// Add combines two RunStats componentwise. Useful for driving multi-run
// "pulse" operations that report on the sum of their constituent runs.
func (a RunStats) Add(b RunStats) RunStats {
	return RunStats{
		Ticks:   a.Ticks + b.Ticks,
		Updates: a.Updates + b.Updates,
		Cycle:   a.Cycle + b.Cycle,
	}
}

// RunConfig tunes Graph.RunWithConfig. The zero value matches the
// unconfigured behavior of Graph.Run: no tick budget. Tracing is not part
// of RunConfig; it is controlled by Graph.SetTracer.
type RunConfig struct {
	// MaxTicks, if non-zero, bounds how many ticks Run will execute before
	// giving up and returning the partial stats gathered so far. An optional
	// escape hatch for the otherwise-unbounded run loop, not a required
	// behavior.
	MaxTicks int
}
