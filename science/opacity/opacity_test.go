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

package opacity

import (
	"math"
	"testing"

	"github.com/spatialmodel/photosphere/science/equilibrium"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refdata"
	"gonum.org/v1/gonum/floats"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

// testInput returns the gas state of a column spanning the allowed
// temperature range at photospheric density.
func testInput(t *testing.T, temps []float64, pe float64) *Input {
	n := len(temps)
	cfg := equilibrium.Restricted()
	nH := 1.0e17
	ein := equilibrium.Input{
		Temp: phys.ColumnFromVal(temps),
		Ne:   phys.NewColumn(n),
		LogN: make(map[string][]float64),
	}
	rho := phys.NewColumn(n)
	for i := 0; i < n; i++ {
		ein.Ne.Set(i, pe/(phys.K*temps[i]))
	}
	var massSum float64
	for _, e := range cfg.Elements {
		a := refdata.Abundance(e).Value
		ein.LogN[e] = make([]float64, n)
		for i := range ein.LogN[e] {
			ein.LogN[e][i] = math.Log(nH) + (a-12)*phys.Ln10
		}
		massSum += math.Pow(10, a-12) * refdata.Mass(e).Value
	}
	for i := 0; i < n; i++ {
		rho.Set(i, nH*massSum*phys.Amu)
	}
	pops, err := equilibrium.Solve(cfg, ein)
	if err != nil {
		t.Fatal(err)
	}
	pec := phys.NewColumn(n)
	for i := 0; i < n; i++ {
		pec.Set(i, pe)
	}
	return &Input{Temp: ein.Temp, Pe: pec, Ne: ein.Ne, Rho: rho, Pops: pops}
}

var testTemps = []float64{3000, 4000, 5000, 5800, 7300, 10000, 20000, 50000}

func TestContinuumFinite(t *testing.T) {
	in := testInput(t, testTemps, 10)
	lambdas := append([]float64{100e-7, 200e-7}, Lambdas(300, 1000, 50)...)
	lambdas = append(lambdas, 2000e-7, 10000e-7)
	tab, err := Continuum(in, lambdas)
	if err != nil {
		t.Fatal(err)
	}
	for il := range tab {
		for i, k := range tab[il] {
			if math.IsNaN(k) || math.IsInf(k, 0) {
				t.Errorf("λ=%g cm T=%g: opacity %g", lambdas[il], testTemps[i], k)
			}
		}
	}
}

func TestHMinusScalesWithPe(t *testing.T) {
	temps := []float64{5800}
	lo, err := At500(testInput(t, temps, 10))
	if err != nil {
		t.Fatal(err)
	}
	in := testInput(t, temps, 10)
	in.Pe.Set(0, 20)
	hi, err := At500(in)
	if err != nil {
		t.Fatal(err)
	}
	r := hi.Val[0] / lo.Val[0]
	if r < 1.5 || r > 2.01 {
		t.Errorf("opacity ratio for doubled Pe = %g, want ≈ 2", r)
	}
}

func TestAt500(t *testing.T) {
	in := testInput(t, testTemps, 10)
	tab, err := Continuum(in, []float64{400e-7, Lambda500, 600e-7})
	if err != nil {
		t.Fatal(err)
	}
	k, err := At500(in)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualApprox(k.Ln, tab[1], 1e-12) {
		t.Errorf("At500 = %v, want %v", k.Ln, tab[1])
	}
}

func TestFudge(t *testing.T) {
	if v := Fudge(5000, 0); v != CoolFudge {
		t.Errorf("Fudge(5000, 0) = %g", v)
	}
	if v := Fudge(7300, 0.1); v != 0.1 {
		t.Errorf("Fudge(7300, 0.1) = %g", v)
	}
	in := testInput(t, testTemps, 10)
	base, err := At500(in)
	if err != nil {
		t.Fatal(err)
	}
	in.LogFudge = 1
	fudged, err := At500(in)
	if err != nil {
		t.Fatal(err)
	}
	for i := range base.Val {
		if different(fudged.Val[i], 10*base.Val[i], 1e-10) {
			t.Errorf("depth %d: fudged %g, want %g", i, fudged.Val[i], 10*base.Val[i])
		}
	}
}

func TestRosselandBounds(t *testing.T) {
	in := testInput(t, testTemps, 10)
	lambdas := Lambdas(100, 20000, 120)
	tab, err := Continuum(in, lambdas)
	if err != nil {
		t.Fatal(err)
	}
	ros, err := Rosseland(tab, lambdas, in.Temp)
	if err != nil {
		t.Fatal(err)
	}
	for i := range testTemps {
		min, max := math.Inf(1), math.Inf(-1)
		for il := range tab {
			min = math.Min(min, tab[il][i])
			max = math.Max(max, tab[il][i])
		}
		if ros.Ln[i] < min-1e-9 || ros.Ln[i] > max+1e-9 {
			t.Errorf("T=%g: ln κRos = %g outside [%g, %g]", testTemps[i], ros.Ln[i], min, max)
		}
	}
	if _, err := Rosseland(tab[:1], lambdas[:1], in.Temp); err == nil {
		t.Error("expected error for a single wavelength")
	}
}

func TestLambdas(t *testing.T) {
	l := Lambdas(300, 1000, 250)
	if len(l) != 250 || different(l[0], 300e-7, 1e-12) || different(l[249], 1000e-7, 1e-12) {
		t.Errorf("Lambdas ends: %g, %g", l[0], l[len(l)-1])
	}
	for i := 1; i < len(l); i++ {
		if l[i] <= l[i-1] {
			t.Fatalf("Lambdas not increasing at %d", i)
		}
	}
}

func TestCrossSections(t *testing.T) {
	if different(seaton(2.0e15, 1.0e-17, 2, 3, 2.0e15), 1.0e-17, 1e-12) {
		t.Error("seaton cross section at threshold")
	}
	in := testInput(t, []float64{5800}, 10)
	m := newMetals(in)
	below := m.at(phys.C / 1.442e15)
	above := m.at(phys.C / 1.444e15)
	if len(above.terms) != len(below.terms)+1 {
		t.Errorf("Al I edge: %d terms above, %d below", len(above.terms), len(below.terms))
	}
	want := 6 * 6.5e-17 * math.Pow(1.443/1.444, 5)
	if got := above.al1([]float64{1})(0); different(got, want, 1e-12) {
		t.Errorf("Al I cross section %g, want %g", got, want)
	}
}

func TestMissingPopulations(t *testing.T) {
	in := testInput(t, testTemps, 10)
	delete(in.Pops.Stages, "He")
	if _, err := Continuum(in, []float64{Lambda500}); err == nil {
		t.Error("expected error for missing He")
	}
	in.Pops = nil
	if _, err := Continuum(in, []float64{Lambda500}); err == nil {
		t.Error("expected error for missing populations")
	}
}
