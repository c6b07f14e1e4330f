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

import "github.com/pkg/errors"

// Invariant violations are programmer errors in the circuit builder, not
// runtime conditions a caller is expected to recover from — we panic with
// a wrapped, descriptive cause rather than return an error a caller would
// routinely ignore.

func panicDoubleConnect(a, b Pin) {
	panic(errors.Errorf("connect(%s, %s): pins are already connected", a.Name(), b.Name()))
}

func panicNotOutput(p Pin, op string) {
	panic(errors.Errorf("%s(%s): pin is not an Output pin", op, p.Name()))
}
