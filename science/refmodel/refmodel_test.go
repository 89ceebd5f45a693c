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

package refmodel

import (
	"math"
	"testing"

	"github.com/spatialmodel/photosphere/science/phys"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestRescaleIdentity(t *testing.T) {
	tau := phys.Tau(48, -6, 2)
	for _, ref := range []Reference{Cool(), Hot()} {
		s, err := Rescale(Params{Teff: ref.Teff, LogG: ref.LogG, ZScale: 1, LogAHe: SolarLogAHe}, tau)
		if err != nil {
			t.Fatal(err)
		}
		if s.Reference != ref.Name {
			t.Errorf("have reference %s, want %s", s.Reference, ref.Name)
		}
		for i := 1; i < tau.Len(); i++ {
			temp, pg, pe := ref.At(tau.Val[i])
			if different(s.Temp.Val[i], temp, 1e-9) {
				t.Errorf("%s depth %d: temperature %g != %g", ref.Name, i, s.Temp.Val[i], temp)
			}
			if different(s.PGas.Val[i], pg, 1e-6) {
				t.Errorf("%s depth %d: gas pressure %g != %g", ref.Name, i, s.PGas.Val[i], pg)
			}
			if pe <= 0.5*pg && different(s.Pe.Val[i], pe, 1e-6) {
				t.Errorf("%s depth %d: electron pressure %g != %g", ref.Name, i, s.Pe.Val[i], pe)
			}
		}
	}
}

func TestRescaleMonotonic(t *testing.T) {
	tau := phys.Tau(48, -6, 2)
	for _, teff := range []float64{3000, 5780, 7299, 7300, 20000, 50000} {
		s, err := Rescale(Params{Teff: teff, LogG: 4.4, ZScale: 1, LogAHe: SolarLogAHe}, tau)
		if err != nil {
			t.Fatal(err)
		}
		want := "cool"
		if teff >= ThresholdTeff {
			want = "hot"
		}
		if s.Reference != want {
			t.Errorf("Teff %g: have %s, want %s", teff, s.Reference, want)
		}
		for i := 0; i < tau.Len(); i++ {
			for _, v := range []float64{s.Temp.Val[i], s.PGas.Val[i], s.Pe.Val[i], s.Ne.Val[i]} {
				if !(v > 0) || math.IsInf(v, 0) {
					t.Fatalf("Teff %g depth %d: invalid value %g", teff, i, v)
				}
			}
			if s.Pe.Val[i] > 0.5*s.PGas.Val[i]*(1+1e-12) {
				t.Errorf("Teff %g depth %d: Pe > Pgas/2", teff, i)
			}
			if i > 0 && s.PGas.Val[i] <= s.PGas.Val[i-1] {
				t.Errorf("Teff %g depth %d: gas pressure not increasing", teff, i)
			}
		}
	}
}

func TestSunDensity(t *testing.T) {
	rho, err := Sun().RhoAt(1)
	if err != nil {
		t.Fatal(err)
	}
	if rho < 1e-8 || rho > 1e-6 {
		t.Errorf("solar density at τ=1 is %g g/cm³", rho)
	}
	if _, err := Cool().RhoAt(1); err == nil {
		t.Error("expected error for missing density table")
	}
}
