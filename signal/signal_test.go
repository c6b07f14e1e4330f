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

import "testing"

func chk(t *testing.T, got, want Signal) {
	t.Helper()
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNot(t *testing.T) {
	chk(t, Not(Off), Off)
	chk(t, Not(Low), High)
	chk(t, Not(High), Low)
	chk(t, Not(Error), Error)
}

func TestAnd(t *testing.T) {
	for _, s := range []Signal{Off, Low, High, Error} {
		chk(t, And(Error, s), Error)
		chk(t, And(s, Error), Error)
	}
	cases := []struct{ a, b, want Signal }{
		{Off, Off, Off}, {Off, Low, Low}, {Off, High, Low},
		{Low, Off, Low}, {Low, Low, Low}, {Low, High, Low},
		{High, Off, Low}, {High, Low, Low}, {High, High, High},
	}
	for _, c := range cases {
		chk(t, And(c.a, c.b), c.want)
	}
}

func TestOr(t *testing.T) {
	for _, s := range []Signal{Off, Low, High, Error} {
		chk(t, Or(Error, s), Error)
		chk(t, Or(s, Error), Error)
	}
	cases := []struct{ a, b, want Signal }{
		{Off, Off, Off}, {Off, Low, Low}, {Off, High, High},
		{Low, Off, Low}, {Low, Low, Low}, {Low, High, High},
		{High, Off, High}, {High, Low, High}, {High, High, High},
	}
	for _, c := range cases {
		chk(t, Or(c.a, c.b), c.want)
	}
}

func TestXor(t *testing.T) {
	for _, s := range []Signal{Off, Low, High, Error} {
		chk(t, Xor(Error, s), Error)
		chk(t, Xor(s, Error), Error)
	}
	cases := []struct{ a, b, want Signal }{
		{Off, Off, Off}, {Off, Low, Low}, {Off, High, High},
		{Low, Off, Low}, {Low, Low, Low}, {Low, High, High},
		{High, Off, High}, {High, Low, High}, {High, High, Low},
	}
	for _, c := range cases {
		chk(t, Xor(c.a, c.b), c.want)
	}
}

func TestInvolution(t *testing.T) {
	chk(t, Not(Not(Low)), Low)
	chk(t, Not(Not(High)), High)
	chk(t, Not(Not(Off)), Off)
	chk(t, Not(Not(Error)), Error)
}

func TestIsLowishIsHigh(t *testing.T) {
	if !Off.IsLowish() || !Low.IsLowish() {
		t.Error("Off and Low should be lowish")
	}
	if High.IsLowish() || Error.IsLowish() {
		t.Error("High and Error should not be lowish")
	}
	if !High.IsHigh() {
		t.Error("High should be high")
	}
	if Off.IsHigh() || Low.IsHigh() || Error.IsHigh() {
		t.Error("only High should be high")
	}
}

func TestNewBusValueRoundTrip(t *testing.T) {
	for v := uint64(0); v < 16; v++ {
		bits := make([]Signal, 4)
		for i := range bits {
			if v&(1<<uint(i)) != 0 {
				bits[i] = High
			} else {
				bits[i] = Low
			}
		}
		bv := NewBusValue(bits)
		if bv.Val != v {
			t.Errorf("v=%d: got Val=%d", v, bv.Val)
		}
		if bv.Err != 0 {
			t.Errorf("v=%d: unexpected Err=%d", v, bv.Err)
		}
	}
}

func TestNewBusValueError(t *testing.T) {
	bv := NewBusValue([]Signal{High, Error, Low})
	if bv.Val != 0b001 {
		t.Errorf("got Val=%b", bv.Val)
	}
	if bv.Err != 0b010 {
		t.Errorf("got Err=%b", bv.Err)
	}
	if !bv.HasError() {
		t.Error("expected HasError")
	}
}

func TestNewBusValueTooWide(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for oversize bus")
		}
	}()
	bits := make([]Signal, MaxBusWidth+1)
	NewBusValue(bits)
}
