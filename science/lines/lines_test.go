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

package lines

import (
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/science/equilibrium"
	"github.com/spatialmodel/photosphere/science/opacity"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refdata"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

// testState returns a photosphere-like column with its populations.
func testState(t *testing.T, tLo, tHi float64) (*State, *equilibrium.Result) {
	const n = 20
	s := &State{
		Tau:  phys.Tau(n, -4, 1),
		Temp: phys.NewColumn(n),
		PGas: phys.NewColumn(n),
		Ne:   phys.NewColumn(n),
		Rho:  phys.NewColumn(n),
	}
	cfg := equilibrium.Full(3)
	in := equilibrium.Input{Temp: s.Temp, Ne: s.Ne, LogN: make(map[string][]float64)}
	var aTot float64
	for _, e := range cfg.Elements {
		aTot += math.Pow(10, refdata.Abundance(e).Value-12)
		in.LogN[e] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		f := float64(i) / (n - 1)
		temp := tLo + (tHi-tLo)*f
		pg := math.Pow(10, 2+3*f)
		pe := 1.0e-3 * pg
		kt := phys.K * temp
		s.Temp.Set(i, temp)
		s.PGas.Set(i, pg)
		s.Ne.Set(i, pe/kt)
		s.Rho.Set(i, 1.3*phys.Amu*pg/kt)
		nH := (pg - pe) / (kt * aTot)
		for _, e := range cfg.Elements {
			in.LogN[e][i] = math.Log(nH) + (refdata.Abundance(e).Value-12)*phys.Ln10
		}
	}
	pops, err := equilibrium.Solve(cfg, in)
	if err != nil {
		t.Fatal(err)
	}
	return s, pops
}

// testTable returns a flat continuum table on s.
func testTable(t *testing.T, s *State) *Table {
	lam := opacity.Lambdas(300, 1000, 100)
	cont := make(opacity.Table, len(lam))
	for il := range cont {
		cont[il] = make([]float64, s.Temp.Len())
		for i := range cont[il] {
			cont[il][i] = math.Log(0.1) - 0.1*float64(il)/float64(len(lam))
		}
	}
	tab, err := NewTable(lam, cont)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestLists(t *testing.T) {
	if n := len(CoolList()); n != 17 {
		t.Errorf("cool list has %d lines", n)
	}
	if n := len(HotList()); n != 14 {
		t.Errorf("hot list has %d lines", n)
	}
	if n := len(ListFor(5000)); n != 17 {
		t.Errorf("ListFor(5000) has %d lines", n)
	}
	if n := len(ListFor(7300)); n != 14 {
		t.Errorf("ListFor(7300) has %d lines", n)
	}
	for _, l := range append(CoolList(), HotList()...) {
		if err := l.Validate(); err != nil {
			t.Error(err)
		}
	}
}

func TestGrid(t *testing.T) {
	p := Grid(naD2, 5777, 1)
	if len(p.V) != 2*(NumCore+NumWing)-1 {
		t.Fatalf("grid has %d points", len(p.V))
	}
	mid := NumCore + NumWing - 1
	if p.V[mid] != 0 {
		t.Errorf("center offset = %g", p.V[mid])
	}
	for i := range p.V {
		if p.V[i] != -p.V[len(p.V)-1-i] {
			t.Errorf("grid not symmetric at %d", i)
		}
		if i > 0 && p.V[i] <= p.V[i-1] {
			t.Errorf("grid not increasing at %d", i)
		}
	}
	// Thermal plus 1 km/s microturbulence for sodium at 5777 K.
	want := math.Sqrt(2*phys.K*5777/(refdata.Mass("Na").Value*phys.Amu)+1.0e10) * 588.995e-7 / phys.C
	if different(p.Doppler, want, 1e-3) {
		t.Errorf("Doppler width %g, want %g", p.Doppler, want)
	}
}

func TestGridPositive(t *testing.T) {
	for _, teff := range []float64{7000, 20000, 45000, 50000} {
		for _, l := range HotList() {
			p := Grid(l, teff, 1)
			for i, lam := range p.Lambdas() {
				if !(lam > 0) {
					t.Fatalf("%s at %g K: wavelength %d = %g cm", l.ID(), teff, i, lam)
				}
			}
			if lo := p.Lambdas()[0]; lo < (1-maxWingFrac)*p.Lambda0 {
				t.Errorf("%s at %g K: blue edge %g cm beyond %g of center", l.ID(), teff, lo, maxWingFrac)
			}
		}
	}
}

func TestHjerting(t *testing.T) {
	for _, v := range []float64{0, 0.6, 1.5} {
		if different(hjertingH(0, v), math.Exp(-v*v), 5e-3) {
			t.Errorf("H(0, %g) = %g, want %g", v, hjertingH(0, v), math.Exp(-v*v))
		}
	}
	if h := hjertingH(0.01, 20); different(h, 0.01*(0.56419/400+0.846/160000), 1e-5) {
		t.Errorf("H(0.01, 20) = %g", h)
	}
}

func TestProfileNormalization(t *testing.T) {
	s, _ := testState(t, 4500, 7000)
	l := naD2
	l.Aij = 0
	l.LogGammaCol = -20
	p := Grid(l, 5777, 1)
	for name, prof := range map[string]Profile{"voigt": Voigt, "gauss-lorentz": GaussLorentz} {
		phi := prof(l, p, s)
		y := make([]float64, len(p.V))
		for i := range y {
			// φ_ν dν = φ_ν c/λ² dλ
			y[i] = phi[i][0] * phys.C / (p.Lambda0 * p.Lambda0)
		}
		if area := integrate.Trapezoidal(p.Delta, y); different(area, 1, 0.1) {
			t.Errorf("%s profile area = %g", name, area)
		}
	}
}

func TestStarkWings(t *testing.T) {
	s, _ := testState(t, 6000, 12000)
	p := Grid(hBeta, 9000, 1)
	st := Stark(hBeta, p, s)
	vo := Voigt(hBeta, p, s)
	for il, v := range p.V {
		for i := range st[il] {
			if math.Abs(v) > 2 && st[il][i] < vo[il][i] {
				t.Errorf("v=%g depth %d: Stark %g below Voigt %g", v, i, st[il][i], vo[il][i])
			}
		}
	}
	if i := balmerIndex(656.282); i != 0 {
		t.Errorf("H alpha index = %d", i)
	}
	if i := balmerIndex(434.047); i != 2 {
		t.Errorf("H gamma index = %d", i)
	}
}

func TestLevelPops(t *testing.T) {
	s, pops := testState(t, 4500, 7000)
	base, err := LevelPops(naD2, pops, s.Temp)
	if err != nil {
		t.Fatal(err)
	}
	l := naD2
	l.A12 = refdata.Abundance("Na").Value + 1
	enh, err := LevelPops(l, pops, s.Temp)
	if err != nil {
		t.Fatal(err)
	}
	for i := range base {
		if different(enh[i]-base[i], phys.Ln10, 1e-10) {
			t.Errorf("depth %d: abundance override shifts by %g", i, enh[i]-base[i])
		}
	}
	l.Species = "XxI"
	if _, err := LevelPops(l, pops, s.Temp); err == nil {
		t.Error("expected error for unknown species")
	}
}

func synthesize(t *testing.T, order func([]Line)) *Table {
	s, pops := testState(t, 3500, 7000)
	tab := testTable(t, s)
	cfg := Config{Teff: 4000, XiT: 1, Voigt: true, Molecules: true, Lines: CoolList()}
	order(cfg.Lines)
	if err := Synthesize(cfg, tab, s, pops, logrus.StandardLogger()); err != nil {
		t.Fatal(err)
	}
	return tab
}

func tableEqual(a, b *Table) bool {
	if !floats.Equal(a.Lambdas(), b.Lambdas()) {
		return false
	}
	ka, kb := a.LogKappa(), b.LogKappa()
	for i := range ka {
		if !floats.Equal(ka[i], kb[i]) {
			return false
		}
	}
	return true
}

func TestMergeIdempotent(t *testing.T) {
	once := synthesize(t, func([]Line) {})
	s, pops := testState(t, 3500, 7000)
	cfg := Config{Teff: 4000, XiT: 1, Voigt: true, Molecules: true, Lines: CoolList()}
	twice := testTable(t, s)
	for i := 0; i < 2; i++ {
		if err := Synthesize(cfg, twice, s, pops, logrus.StandardLogger()); err != nil {
			t.Fatal(err)
		}
	}
	if !tableEqual(once, twice) {
		t.Error("merging twice changed the table")
	}
	if n := len(once.IDs()); n < 17 || n > 17+len(TiOBands()) {
		t.Errorf("%d contributions", n)
	}
}

func TestMergeOrderIndependent(t *testing.T) {
	fwd := synthesize(t, func([]Line) {})
	rev := synthesize(t, func(l []Line) {
		sort.Slice(l, func(i, j int) bool { return l[i].Lambda0 > l[j].Lambda0 })
	})
	if !tableEqual(fwd, rev) {
		t.Error("merge order changed the table")
	}
}

func TestMergeExtendsContinuum(t *testing.T) {
	s, pops := testState(t, 4500, 7000)
	tab := testTable(t, s)
	cont := append([]float64(nil), tab.Lambdas()...)
	contK := tab.LogKappa()
	cfg := Config{Teff: 5777, XiT: 1, Voigt: true, Lines: []Line{naD2}}
	if err := Synthesize(cfg, tab, s, pops, logrus.StandardLogger()); err != nil {
		t.Fatal(err)
	}
	lam := tab.Lambdas()
	if len(lam) != len(cont)+2*(NumCore+NumWing)-1 {
		t.Errorf("master grid has %d points; want %d", len(lam), len(cont)+2*(NumCore+NumWing)-1)
	}
	if !sort.Float64sAreSorted(lam) {
		t.Error("master grid not sorted")
	}
	p := Grid(naD2, 5777, 1)
	lo, hi := p.Lambdas()[0], p.Lambdas()[len(p.V)-1]
	k := tab.LogKappa()
	for il, l := range lam {
		j := sort.SearchFloat64s(cont, l)
		inLine := l >= lo && l <= hi
		for i := range k[il] {
			if !inLine && j < len(cont) && cont[j] == l && k[il][i] != contK[j][i] {
				t.Errorf("λ=%g outside the line: opacity changed", l)
			}
			if inLine && k[il][i] < contK[0][i]-0.2 {
				t.Errorf("λ=%g inside the line: opacity %g below continuum", l, k[il][i])
			}
		}
	}
	center := sort.SearchFloat64s(lam, p.Lambda0)
	if k[center][s.Temp.Len()/2] <= contK[0][s.Temp.Len()/2] {
		t.Error("no line opacity at line center")
	}
}

func TestJOLA(t *testing.T) {
	s, pops := testState(t, 2800, 4500)
	for _, b := range TiOBands() {
		lam := b.Lambdas()
		k := JOLA(b, lam, s, pops.Molecules["TiO"])
		var any bool
		for iw := range k {
			for i := range k[iw] {
				if math.IsNaN(k[iw][i]) || k[iw][i] > maxLogKap {
					t.Fatalf("%s: ln κ = %g", b.Name, k[iw][i])
				}
				if k[iw][i] > noOpacity {
					any = true
				}
			}
		}
		if !any {
			t.Errorf("%s: no band opacity", b.Name)
		}
	}
}

const testList = `
[[Line]]
Name = "Fe I"
Species = "FeI"
Lambda0 = 438.354
LogF = -0.841
Aij = 5.0e7
ChiL = 1.485
GwL = 11.0

[[Line]]
Species = "KI"
Lambda0 = 766.490
LogF = -0.167
Aij = 3.8e7
GwL = 2.0
GammaCol = 1.0
`

func TestReadList(t *testing.T) {
	l, err := ReadList(strings.NewReader(testList))
	if err != nil {
		t.Fatal(err)
	}
	if len(l) != 2 {
		t.Fatalf("read %d lines", len(l))
	}
	if l[1].LogGammaCol != 1 || l[1].ID() != "KI 766.490" || l[0].GwL != 11 {
		t.Errorf("unexpected lines: %+v", l)
	}
	if _, err := ReadList(strings.NewReader("[[Line]]\nSpecies = \"Zz\"\nLambda0 = 500.0\nGwL = 1.0\n")); err == nil {
		t.Error("expected error for invalid species")
	}
}

func TestSourceFunction(t *testing.T) {
	s := SourceFunction([]float64{1, 2}, []float64{0, 2}, nil)
	if different(s[0], Epsilon, 1e-12) || different(s[1], 2, 1e-12) {
		t.Errorf("source function %v", s)
	}
	eps := Thermalization([]float64{0, math.Log(2), math.Log(1e9)}, []float64{0, 0, 0})
	if different(eps[0], 1, 1e-12) || different(eps[1], 0.5+0.5*Epsilon, 1e-12) || different(eps[2], Epsilon, 1e-6) {
		t.Errorf("thermalization %v", eps)
	}
	s = SourceFunction([]float64{1, 1, 1}, []float64{0, 0, 0}, eps)
	if !floats.Equal(s, eps) {
		t.Errorf("source function %v; want %v", s, eps)
	}
}

func TestOnly(t *testing.T) {
	s, pops := testState(t, 4500, 7000)
	tab := testTable(t, s)
	cfg := Config{Teff: 5777, XiT: 1, Voigt: true, Lines: []Line{naD1, naD2}}
	if err := Synthesize(cfg, tab, s, pops, logrus.StandardLogger()); err != nil {
		t.Fatal(err)
	}
	lam, k, err := tab.Only(naD2.ID())
	if err != nil {
		t.Fatal(err)
	}
	if len(lam) != len(k) || len(lam) != 2*(NumCore+NumWing)-1 {
		t.Fatalf("got %d wavelengths and %d rows", len(lam), len(k))
	}
	cont := tab.Continuum()
	master := tab.Lambdas()
	for il, l := range lam {
		j := sort.SearchFloat64s(master, l)
		for i := range k[il] {
			if k[il][i] < cont[j][i] {
				t.Errorf("λ=%g depth %d: line opacity %g below continuum %g", l, i, k[il][i], cont[j][i])
			}
			if k[il][i] > tab.LogKappa()[j][i]+1e-9 {
				t.Errorf("λ=%g depth %d: single line exceeds merged opacity", l, i)
			}
		}
	}
	if _, _, err := tab.Only("nothing"); err == nil {
		t.Error("missing contribution should fail")
	}
}
