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

package refdata

import (
	"math"
	"testing"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestParseSpecies(t *testing.T) {
	for s, want := range map[string]Species{
		"FeI":  {"Fe", 1},
		"FeII": {"Fe", 2},
		"VI":   {"V", 1},
		"VIV":  {"V", 4},
		"HeII": {"He", 2},
		"CaIV": {"Ca", 4},
	} {
		got, err := ParseSpecies(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("%s: have %+v, want %+v", s, got, want)
		}
		if got.String() != s {
			t.Errorf("round trip: have %s, want %s", got.String(), s)
		}
	}
	if _, err := ParseSpecies("XxI"); err == nil {
		t.Error("expected error for unknown element")
	}
}

func TestLookups(t *testing.T) {
	if q := IonizationEnergy(Species{"Fe", 2}); !q.Resolved || different(q.Value, 16.1992, 1e-6) {
		t.Errorf("Fe II ionization energy: %+v", q)
	}
	if q := Mass("Fe"); !q.Resolved || different(q.Value, 55.845, 1e-6) {
		t.Errorf("Fe mass: %+v", q)
	}
	if q := DissociationEnergy("CO"); !q.Resolved || different(q.Value, 11.092, 1e-6) {
		t.Errorf("CO dissociation energy: %+v", q)
	}
	// θ = 1 and θ = 0.5 return the tabulated values.
	if q := LogPartitionFn(Species{"Fe", 1}, 5040); different(q.Value, 1.43*math.Ln10, 1e-9) {
		t.Errorf("Fe I partition function at θ=1: %g", q.Value)
	}
	if q := LogPartitionFn(Species{"Fe", 1}, 10080); different(q.Value, 1.74*math.Ln10, 1e-9) {
		t.Errorf("Fe I partition function at θ=0.5: %g", q.Value)
	}
	mid := LogPartitionFn(Species{"Fe", 1}, 5040/0.75).Value
	if different(mid, (1.43+1.74)/2*math.Ln10, 1e-9) {
		t.Errorf("Fe I partition function at θ=0.75: %g", mid)
	}
}

func TestDefaulted(t *testing.T) {
	// Molybdenum and germanium are carried but have no ionization data.
	for _, sym := range []string{"Mo", "Ge"} {
		q := IonizationEnergy(Species{sym, 1})
		if q.Resolved || q.Value != DefaultIonizationEnergy {
			t.Errorf("%s: %+v", sym, q)
		}
		u := LogPartitionFn(Species{sym, 1}, 5000)
		if u.Resolved || u.Value != 0 {
			t.Errorf("%s partition function: %+v", sym, u)
		}
	}
	if q := DissociationEnergy("XY"); q.Resolved || q.Value != DefaultDissociationEnergy {
		t.Errorf("missing molecule: %+v", q)
	}
}

func TestAdjacency(t *testing.T) {
	for _, e := range Elements() {
		adj := MoleculesOf(e.Symbol)
		if len(adj) > MaxMoleculesPerElement {
			t.Errorf("%s has %d molecules", e.Symbol, len(adj))
		}
		for _, m := range adj {
			if !m.Contains(e.Symbol) {
				t.Errorf("%s adjacency has %s", e.Symbol, m.Name)
			}
		}
	}
	ti := MoleculesOf("Ti")
	if len(ti) != 1 || ti[0].Name != "TiO" || ti[0].Partner("Ti") != "O" {
		t.Errorf("Ti adjacency: %+v", ti)
	}
	h := MoleculesOf("H")
	if len(h) == 0 || h[0].Name != "H2" || h[0].Partner("H") != "H" {
		t.Errorf("H adjacency: %+v", h)
	}
	co, ok := LookupMolecule("CO")
	if !ok || different(co.ReducedMass(), 12.0096*15.999/(12.0096+15.999), 1e-3) {
		t.Errorf("CO reduced mass: %+v", co)
	}
}

func TestMolecularPartitionFn(t *testing.T) {
	q := LogMolecularPartitionFn("CO", 3000)
	if !q.Resolved || q.Value != molecularPartitionLn["CO"][2] {
		t.Errorf("CO at 3000 K: %+v", q)
	}
	lo := LogMolecularPartitionFn("CO", 3000).Value
	hi := LogMolecularPartitionFn("CO", 8000).Value
	mid := LogMolecularPartitionFn("CO", 5500).Value
	if different(mid, (lo+hi)/2, 1e-9) {
		t.Errorf("CO at 5500 K: %g", mid)
	}
}
