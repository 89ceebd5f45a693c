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

package equilibrium

import (
	"math"
	"testing"

	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refdata"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

// testInput returns a small column spanning cool to hot gas at
// photospheric densities.
func testInput(cfg Config) Input {
	temps := []float64{2800, 3500, 4500, 5800, 8000, 12000, 25000}
	n := len(temps)
	in := Input{
		Temp: phys.ColumnFromVal(temps),
		Ne:   phys.NewColumn(n),
		LogN: make(map[string][]float64),
	}
	nH := 1.0e16 // cm⁻³
	for i := 0; i < n; i++ {
		in.Ne.Set(i, 1.0e-4*nH*temps[i]/5000)
	}
	for _, e := range cfg.Elements {
		a := refdata.Abundance(e).Value
		in.LogN[e] = make([]float64, n)
		for i := range in.LogN[e] {
			in.LogN[e][i] = math.Log(nH) + (a-12)*phys.Ln10
		}
	}
	return in
}

func TestConservation(t *testing.T) {
	for name, cfg := range map[string]Config{"restricted": Restricted(), "full": Full(8)} {
		in := testInput(cfg)
		r, err := Solve(cfg, in)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range cfg.Elements {
			for i := 0; i < in.Temp.Len(); i++ {
				total := math.Exp(r.Total(e, i))
				want := math.Exp(in.LogN[e][i])
				if different(total, want, 1e-10) {
					t.Errorf("%s %s depth %d: populations sum to %g, want %g", name, e, i, total, want)
				}
			}
		}
	}
}

func TestIonizationIncreasesWithTemperature(t *testing.T) {
	cfg := Full(8)
	in := testInput(cfg)
	r, err := Solve(cfg, in)
	if err != nil {
		t.Fatal(err)
	}
	h := r.Stages["H"]
	first := h[1][0] - h[0][0]
	last := h[1][in.Temp.Len()-1] - h[0][in.Temp.Len()-1]
	if last <= first {
		t.Errorf("H II / H I does not increase with temperature: %g → %g", first, last)
	}
	for i := 0; i < in.Temp.Len(); i++ {
		if !(r.Ne.Val[i] > 0) || math.IsInf(r.Ne.Val[i], 0) {
			t.Errorf("depth %d: invalid electron density %g", i, r.Ne.Val[i])
		}
	}
}

func TestMolecules(t *testing.T) {
	cfg := Full(8)
	in := testInput(cfg)
	r, err := Solve(cfg, in)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range []string{"H2", "CO", "TiO"} {
		if _, ok := r.Molecules[m]; !ok {
			t.Fatalf("missing molecule %s", m)
		}
	}
	// Molecules dissociate as temperature increases.
	co := r.Molecules["CO"]
	if co[0] <= co[len(co)-1] {
		t.Errorf("CO does not dissociate: %g at 2800 K, %g at 25000 K", co[0], co[len(co)-1])
	}
	// At 2800 K a large fraction of carbon is bound in CO.
	frac := math.Exp(r.Depletion["C"][0] - in.LogN["C"][0])
	if frac < 0.1 {
		t.Errorf("only %g of carbon in molecules at 2800 K", frac)
	}
}

func TestRestrictedSinglePass(t *testing.T) {
	cfg := Restricted()
	in := testInput(cfg)
	r, err := Solve(cfg, in)
	if err != nil {
		t.Fatal(err)
	}
	if r.Iterations != 1 {
		t.Errorf("have %d iterations, want 1", r.Iterations)
	}
	for i := range r.Ne.Val {
		if r.Ne.Val[i] != in.Ne.Val[i] {
			t.Fatalf("restricted pass changed the electron density at depth %d", i)
		}
	}
	if _, ok := r.Molecules["TiO"]; ok {
		t.Error("restricted pass should not include TiO")
	}
}

func TestTolerance(t *testing.T) {
	cfg := Full(12)
	cfg.Tolerance = 0.5
	r, err := Solve(cfg, testInput(cfg))
	if err != nil {
		t.Fatal(err)
	}
	if !r.Converged || r.Iterations >= 12 {
		t.Errorf("converged=%v after %d iterations", r.Converged, r.Iterations)
	}
}

func TestReport(t *testing.T) {
	cfg := Full(5)
	r, err := Solve(cfg, testInput(cfg))
	if err != nil {
		t.Fatal(err)
	}
	var haveMo, haveFe bool
	for _, s := range r.Report.Defaulted {
		if s == "MoI" {
			haveMo = true
		}
	}
	for _, s := range r.Report.Resolved {
		if s == "FeI" {
			haveFe = true
		}
	}
	if !haveMo || !haveFe {
		t.Errorf("report: %+v", r.Report)
	}
}

func TestMissingElement(t *testing.T) {
	cfg := Restricted()
	in := testInput(cfg)
	delete(in.LogN, "Fe")
	if _, err := Solve(cfg, in); err == nil {
		t.Error("expected error for missing element density")
	}
}
