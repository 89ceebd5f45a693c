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

package photosphere

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/science/lines"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/radtrans"
	"github.com/spatialmodel/photosphere/science/refmodel"
	"gonum.org/v1/gonum/integrate"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func testParams(mode Mode) Params {
	p := DefaultParams()
	p.Teff, p.LogG = 5780, 4.4
	p.Mode = mode
	p.NumDepths = 32
	p.LambdaPoints = 100
	return p
}

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

func run(t *testing.T, p Params) *Atmosphere {
	d, err := Run(context.Background(), p, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func naD2(t *testing.T, d *Atmosphere) *LineSpectrum {
	for _, l := range lines.CoolList() {
		if l.Species == "NaI" && math.Abs(l.Lambda0-588.995) < 0.01 {
			ls, ok := d.LineSpectra[l.ID()]
			if !ok {
				t.Fatalf("no spectrum for %s", l.ID())
			}
			return ls
		}
	}
	t.Fatal("Na D2 is not in the cool line list")
	return nil
}

func TestSeed(t *testing.T) {
	d := NewAtmosphere(testParams(Fast), testLogger())
	d.InitFuncs = []DomainManipulator{Seed()}
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 32 {
		t.Errorf("%d depths; want 32", d.Len())
	}
	if different(d.Tau.Val[0], 1.0e-6, 1.0e-14) || different(d.Tau.Val[d.Len()-1], 100, 1.0e-14) {
		t.Errorf("τ runs from %g to %g", d.Tau.Val[0], d.Tau.Val[d.Len()-1])
	}
	if len(d.ContLambdas) != 100 {
		t.Errorf("%d continuum wavelengths", len(d.ContLambdas))
	}
	var sum float64
	for _, a := range d.logA {
		sum += math.Exp(a)
	}
	if different(sum, d.aTot, 1.0e-12) || d.logA["H"] != 0 {
		t.Errorf("abundances: total %g vs %g, H %g", sum, d.aTot, d.logA["H"])
	}
}

func TestValidate(t *testing.T) {
	for _, p := range []func(*Params){
		func(p *Params) { p.Teff = 2000 },
		func(p *Params) { p.Teff = 60000 },
		func(p *Params) { p.LogG = 8 },
		func(p *Params) { p.Teff, p.LogG = 20000, 2 },
		func(p *Params) { p.ZScale = 0 },
		func(p *Params) { p.ZScale = 100 },
		func(p *Params) { p.Mass = 50 },
		func(p *Params) { p.Mode = "slow" },
		func(p *Params) { p.OuterIterations = 2 },
		func(p *Params) { p.InnerIterations = 13 },
		func(p *Params) { p.LambdaStop = p.LambdaStart },
		func(p *Params) { p.Extra = []lines.Line{{Species: "Xx", Lambda0: 500, GwL: 1}} },
	} {
		q := DefaultParams()
		p(&q)
		if err := q.Validate(); err == nil {
			t.Errorf("%+v should be invalid", q)
		}
	}
	if err := DefaultParams().Validate(); err != nil {
		t.Error(err)
	}
	if MinLogG(3500) != 0 || MinLogG(5778) != 1.5 || MinLogG(20000) != 3 {
		t.Error("wrong gravity floor")
	}
}

func TestSwitches(t *testing.T) {
	p := DefaultParams()
	p.Mode = Fast
	if v, s, tc, c := p.Switches(); v || s || tc || c {
		t.Error("fast mode should switch everything off")
	}
	p.Mode = Real
	if v, s, _, _ := p.Switches(); !v || !s {
		t.Error("real mode should use Voigt profiles and scattering")
	}
	p.Mode = Custom
	p.TempCorr = true
	if v, s, tc, c := p.Switches(); v || s || !tc || c {
		t.Error("custom mode should follow the switches")
	}
}

func TestSolar(t *testing.T) {
	d := run(t, testParams(Real))
	if d.Iterations != MaxIterations {
		t.Errorf("%d structure iterations", d.Iterations)
	}
	sun := refmodel.Sun()
	_, pg, _ := sun.At(1)
	rho, err := sun.RhoAt(1)
	if err != nil {
		t.Fatal(err)
	}
	gotPg := math.Exp(phys.Interpol(d.Tau.Ln, d.PGas.Ln, 0))
	gotRho := math.Exp(phys.Interpol(d.Tau.Ln, d.Rho.Ln, 0))
	if math.Abs(math.Log(gotPg/pg)) > math.Log(3) {
		t.Errorf("gas pressure at τ=1 is %g; reference %g", gotPg, pg)
	}
	if math.Abs(math.Log(gotRho/rho)) > math.Log(3) {
		t.Errorf("density at τ=1 is %g; reference %g", gotRho, rho)
	}
	for i := 1; i < d.Len(); i++ {
		if d.PGas.Val[i] <= d.PGas.Val[i-1] {
			t.Errorf("gas pressure does not increase at depth %d", i)
		}
		if d.Depth.Val[i] <= d.Depth.Val[i-1] {
			t.Errorf("depth does not increase at depth %d", i)
		}
	}
	if d.MMW.Val[d.Len()-1] < 1 || d.MMW.Val[d.Len()-1] > 1.5 {
		t.Errorf("mean molecular weight %g", d.MMW.Val[d.Len()-1])
	}

	ls := naD2(t, d)
	if ls.Residual >= 1 || ls.Residual <= 0 {
		t.Errorf("Na D2 central residual %g", ls.Residual)
	}
	n := len(ls.Lambdas)
	for _, i := range []int{0, n - 1} {
		if r := ls.Flux[i] / ls.Cont[i]; r < 0.95 || r > 1+1.0e-9 {
			t.Errorf("Na D2 wing at %g nm: residual %g", ls.Lambdas[i]*1.0e7, r)
		}
	}
	if ls.EqWidth <= 0 {
		t.Errorf("Na D2 equivalent width %g pm", ls.EqWidth)
	}

	if len(d.Colors) != 7 {
		t.Errorf("%d colors", len(d.Colors))
	}
	for _, c := range d.Colors {
		if c.Name == "B-V" && (c.Value <= 0 || c.Value > 2) {
			t.Errorf("solar B-V = %g", c.Value)
		}
	}
	if len(d.DiskIntensity) != radtrans.NumAngles+1 {
		t.Errorf("%d disk intensities", len(d.DiskIntensity))
	}
	for i := 1; i < len(d.DiskIntensity); i++ {
		if d.DiskIntensity[i] > d.DiskIntensity[i-1] {
			t.Errorf("disk intensity brightens toward the limb at angle %d", i)
		}
	}
}

// The fast and real modes differ only in the line physics, so the
// continuum and the points no line reaches must agree exactly.
func TestFastReal(t *testing.T) {
	fast := run(t, testParams(Fast))
	rl := run(t, testParams(Real))
	for i := range fast.PGas.Val {
		if fast.PGas.Val[i] != rl.PGas.Val[i] {
			t.Fatalf("structures differ at depth %d", i)
		}
	}
	if len(fast.ContSpectrum.Flux) != len(rl.ContSpectrum.Flux) {
		t.Fatal("wavelength grids differ")
	}
	covered := rl.Opacity.Covered()
	for il := range fast.ContSpectrum.Flux {
		if different(fast.ContSpectrum.Flux[il], rl.ContSpectrum.Flux[il], 1.0e-12) {
			t.Errorf("continuum differs at %g nm", fast.Spectrum.Lambdas[il]*1.0e7)
		}
		if !covered[il] && different(fast.Spectrum.Flux[il], rl.Spectrum.Flux[il], 1.0e-12) {
			t.Errorf("uncovered point %g nm differs", fast.Spectrum.Lambdas[il]*1.0e7)
		}
	}
	if naD2(t, fast).Residual == naD2(t, rl).Residual {
		t.Error("line physics has no effect on Na D2")
	}
}

func TestBoundaries(t *testing.T) {
	for _, c := range []struct{ teff, logg float64 }{{MinTeff, 4.5}, {MaxTeff, 5}} {
		p := testParams(Fast)
		p.Teff, p.LogG = c.teff, c.logg
		d := run(t, p)
		for _, col := range d.Columns() {
			for i, v := range col.Values {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("Teff=%g: %s is %g at depth %d", c.teff, col.Name, v, i)
				}
				if col.Name != "Depth" && v <= 0 {
					t.Errorf("Teff=%g: %s is %g at depth %d", c.teff, col.Name, v, i)
				}
			}
		}
		for il, f := range d.Flux {
			if !(f > 0) {
				t.Errorf("Teff=%g: flux %g at %g nm", c.teff, f, d.Spectrum.Lambdas[il]*1.0e7)
				break
			}
		}
	}
}

// bandFlux integrates the broadened flux of d between lo and hi [cm].
func bandFlux(d *Atmosphere, lo, hi float64) float64 {
	var x, y []float64
	for i, l := range d.Spectrum.Lambdas {
		if l >= lo && l <= hi {
			x = append(x, l)
			y = append(y, d.Flux[i])
		}
	}
	if len(x) < 2 {
		return math.NaN()
	}
	return integrate.Trapezoidal(x, y)
}

func TestMolecules(t *testing.T) {
	p := testParams(Fast)
	p.Teff, p.LogG = MinTeff, 4.5
	p.Molecules = true
	d := run(t, p)

	ids := make(map[string]bool)
	for _, id := range d.Opacity.IDs() {
		ids[id] = true
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, b := range lines.TiOBands() {
		if !ids[b.ID()] {
			t.Errorf("band %s is not merged", b.ID())
		}
		lo, hi = math.Min(lo, b.LambdaStart*1.0e-7), math.Max(hi, b.LambdaStop*1.0e-7)
	}

	tio, ok := d.Pops.Molecules["TiO"]
	if !ok {
		t.Fatal("no TiO population")
	}
	top := 0
	if frac := math.Exp(tio[top] - d.Pops.Total("Ti", top)); frac < 1.0e-4 {
		t.Errorf("only %g of titanium in TiO at %.0f K", frac, d.Temp.Val[top])
	}

	p.Molecules = false
	bare := run(t, p)
	for _, id := range bare.Opacity.IDs() {
		if strings.HasPrefix(id, "TiO") {
			t.Errorf("band %s merged with molecules off", id)
		}
	}
	with, without := bandFlux(d, lo, hi), bandFlux(bare, lo, hi)
	if !(with < without*(1-1.0e-3)) {
		t.Errorf("TiO bands do not lower the flux: %g with, %g without", with, without)
	}
}

func TestNoBroadening(t *testing.T) {
	p := testParams(Fast)
	p.Broadening = radtrans.Broadening{}
	d := run(t, p)
	for i := range d.Flux {
		if d.Flux[i] != d.Spectrum.Flux[i] {
			t.Fatalf("flux changed without broadening at %g nm", d.Spectrum.Lambdas[i]*1.0e7)
		}
	}
}

func TestSnapshot(t *testing.T) {
	p := testParams(Fast)
	d := run(t, p)
	s, err := d.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s["stage/Fe/1/0"]; !ok {
		t.Error("snapshot lacks FeII")
	}
	r := NewAtmosphere(DefaultParams(), testLogger())
	r.InitFuncs = []DomainManipulator{FromSnapshot(s)}
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	if !r.Done {
		t.Error("restored atmosphere should be done")
	}
	for _, c := range []struct {
		name string
		a, b phys.Column
	}{
		{"tau", d.Tau, r.Tau}, {"temp", d.Temp, r.Temp}, {"pgas", d.PGas, r.PGas},
		{"rho", d.Rho, r.Rho}, {"kappa500", d.Kappa500, r.Kappa500},
	} {
		for i := range c.a.Val {
			if different(c.a.Val[i], c.b.Val[i], 1.0e-13) {
				t.Errorf("%s[%d]: %g != %g", c.name, i, c.b.Val[i], c.a.Val[i])
			}
		}
	}
	for e, pops := range d.Pops.Stages {
		got, ok := r.Pops.Stages[e]
		if !ok {
			t.Errorf("%s populations not restored", e)
			continue
		}
		for st := range pops {
			for i := range pops[st] {
				if pops[st][i] != got[st][i] {
					t.Errorf("%s stage %d depth %d: %g != %g", e, st, i, got[st][i], pops[st][i])
				}
			}
		}
	}

	delete(s, "temp/3")
	bad := NewAtmosphere(DefaultParams(), testLogger())
	if err := FromSnapshot(s)(bad); err == nil || !strings.Contains(err.Error(), "temp/3") {
		t.Errorf("missing key: got error %v", err)
	}
}

func TestSaveResynthesize(t *testing.T) {
	p := testParams(Fast)
	d := run(t, p)
	var buf bytes.Buffer
	if err := Save(&buf)(d); err != nil {
		t.Fatal(err)
	}
	q := DefaultParams()
	q.Mode = Fast
	r, err := Resynthesize(context.Background(), &buf, q, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if r.Params.Teff != p.Teff || r.Params.NumDepths != p.NumDepths {
		t.Errorf("stellar parameters not loaded: %+v", r.Params)
	}
	if len(r.Flux) != len(d.Flux) {
		t.Fatalf("%d fluxes; want %d", len(r.Flux), len(d.Flux))
	}
	for i := range d.Flux {
		if different(r.Flux[i], d.Flux[i], 1.0e-9) {
			t.Errorf("flux at %g nm: %g != %g", d.Spectrum.Lambdas[i]*1.0e7, r.Flux[i], d.Flux[i])
			break
		}
	}
	if err := Load(strings.NewReader("nonsense"))(NewAtmosphere(q, testLogger())); err == nil {
		t.Error("loading garbage should fail")
	}
}

func TestCustomPhysics(t *testing.T) {
	p := testParams(Custom)
	p.TempCorr, p.Convection, p.Voigt = true, true, true
	p.OuterIterations = MinIterations
	d := run(t, p)
	fast := run(t, testParams(Fast))
	var changed bool
	for i := range d.Temp.Val {
		if d.Temp.Val[i] != fast.Temp.Val[i] {
			changed = true
		}
		if r := d.Temp.Val[i] / fast.Temp.Val[i]; r < 0.5 || r > 1.5 {
			t.Errorf("temperature at depth %d moved from %g to %g", i, fast.Temp.Val[i], d.Temp.Val[i])
		}
	}
	if !changed {
		t.Error("temperature correction had no effect")
	}
	for i := 1; i < d.Len(); i++ {
		dlnP := d.PGas.Ln[i] - d.PGas.Ln[i-1]
		if dlnP > 0 && (d.Temp.Ln[i]-d.Temp.Ln[i-1])/dlnP > gradAd+1.0e-9 {
			t.Errorf("superadiabatic gradient at depth %d", i)
		}
	}
}

func TestTolerance(t *testing.T) {
	p := testParams(Fast)
	p.Tolerance = 0.5
	d := run(t, p)
	if !d.Converged || d.Iterations >= MaxIterations {
		t.Errorf("converged=%v after %d iterations", d.Converged, d.Iterations)
	}
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, testParams(Fast), testLogger()); err == nil {
		t.Error("cancelled run should fail")
	}
}

func TestStellar(t *testing.T) {
	p := DefaultParams()
	p.LogG = math.Log10(phys.G * phys.MSun / (phys.RSun * phys.RSun))
	d := NewAtmosphere(p, nil)
	r, l := d.Solar()
	if different(r, 1, 1.0e-9) {
		t.Errorf("solar radius %g", r)
	}
	if different(l, 1, 0.02) {
		t.Errorf("solar luminosity %g", l)
	}
	if err := d.Radius().Check(unit.Meter); err != nil {
		t.Error(err)
	}
}

func TestColumns(t *testing.T) {
	d := run(t, testParams(Fast))
	c, err := d.Column("Temp")
	if err != nil {
		t.Fatal(err)
	}
	if c.Units != "K" || len(c.Values) != d.Len() {
		t.Errorf("temperature column %+v", c)
	}
	if len(d.Columns()) != 11 {
		t.Errorf("%d columns", len(d.Columns()))
	}
	if _, err := d.Column("Pops"); err == nil {
		t.Error("Pops is not a column")
	}
}

func TestModelCache(t *testing.T) {
	mc := NewModelCache(2, 4, testLogger())
	p := testParams(Fast)
	a, err := mc.Get(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := mc.Get(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("repeated request was recomputed")
	}
	p.Teff = 6000
	c, err := mc.Get(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if c == a || c.Params.Teff != 6000 {
		t.Error("different request returned the cached model")
	}
}
