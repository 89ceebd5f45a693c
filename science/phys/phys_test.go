/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/
package phys

import (
	"math"
	"testing"
)

func TestInterpolKnots(t *testing.T) {
	x := []float64{130, 500, 3000, 8000, 10000}
	y := []float64{0.1, 1.7, 7.4483688049578625, 8.3, 8.9}
	for i := range x {
		if v := Interpol(x, y, x[i]); v != y[i] {
			t.Errorf("increasing knot %d: %v != %v", i, v, y[i])
		}
	}
	xr := []float64{10000, 8000, 3000, 500, 130}
	yr := []float64{8.9, 8.3, 7.4483688049578625, 1.7, 0.1}
	for i := range xr {
		if v := Interpol(xr, yr, xr[i]); v != yr[i] {
			t.Errorf("decreasing knot %d: %v != %v", i, v, yr[i])
		}
	}
	if v := Interpol(x, y, 5500); math.Abs(v-(y[2]+y[3])/2) > 1e-12 {
		t.Errorf("midpoint: %v", v)
	}
	if v := Interpol(x, y, 1); v != y[0] {
		t.Errorf("below range: %v", v)
	}
	if v := Interpol(x, y, 2e4); v != y[4] {
		t.Errorf("above range: %v", v)
	}
}
