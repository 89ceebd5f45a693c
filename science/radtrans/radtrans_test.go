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

package radtrans

import (
	"math"
	"testing"

	"github.com/spatialmodel/photosphere/science/phys"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestAngles(t *testing.T) {
	for _, n := range []int{2, 5, NumAngles} {
		a := NewAngles(n)
		if a.Len() != n+1 {
			t.Fatalf("n=%d: %d angles", n, a.Len())
		}
		if a.Mu[0] != 1 || a.Weight[0] != 0 {
			t.Errorf("n=%d: disk center: μ=%g w=%g", n, a.Mu[0], a.Weight[0])
		}
		if s := floats.Sum(a.Weight); different(s, 1, 1e-12) {
			t.Errorf("n=%d: weights sum to %g", n, s)
		}
		for i := 1; i < a.Len(); i++ {
			if a.Mu[i] >= a.Mu[i-1] || a.Mu[i] <= 0 {
				t.Errorf("n=%d: μ[%d] = %g out of order", n, i, a.Mu[i])
			}
		}
		// ∫₀¹ μ² dμ = 1/3
		var m2 float64
		for i, mu := range a.Mu {
			m2 += a.Weight[i] * mu * mu
		}
		if different(m2, 1.0/3, 1e-12) {
			t.Errorf("n=%d: second moment %g", n, m2)
		}
	}
}

func linearSource(a, b float64) (tau, s []float64) {
	col := phys.Tau(60, -6, 2)
	tau = col.Val
	s = make([]float64, len(tau))
	for i, t := range tau {
		s[i] = a + b*t
	}
	return tau, s
}

func TestConstantSource(t *testing.T) {
	tau, s := linearSource(3, 0)
	a := NewAngles(NumAngles)
	in := Intensity(tau, s, a)
	for it, v := range in {
		if different(v, 3, 1e-12) {
			t.Errorf("angle %d: I = %g", it, v)
		}
	}
	f := Flux([][]float64{in}, a)
	if different(f[0], 3*math.Pi, 1e-12) {
		t.Errorf("flux %g; want %g", f[0], 3*math.Pi)
	}
}

// For a source function linear in optical depth the emergent intensity
// is S(τ = μ).
func TestEddingtonBarbier(t *testing.T) {
	tau, s := linearSource(1, 1.5)
	a := NewAngles(NumAngles)
	in := Intensity(tau, s, a)
	for it, mu := range a.Mu {
		if different(in[it], 1+1.5*mu, 1e-5) {
			t.Errorf("μ=%g: I = %g; want %g", mu, in[it], 1+1.5*mu)
		}
	}
	j := MeanIntensity(tau, s, a)
	for i, v := range tau {
		if v > 10 && different(j[i], s[i], 1e-3) {
			t.Errorf("τ=%g: J = %g; want %g", v, j[i], s[i])
		}
	}
	if j[0] >= s[0] {
		t.Errorf("surface J = %g not below S = %g", j[0], s[0])
	}
}

func TestOpticalDepth(t *testing.T) {
	tau := phys.Tau(48, -6, 2)
	k500 := phys.NewColumn(48)
	lk := make([]float64, 48)
	lk2 := make([]float64, 48)
	for i := range lk {
		k500.SetLn(i, math.Log(0.3))
		k500.Val[i] = 0.3
		lk[i] = math.Log(0.3)
		lk2[i] = math.Log(0.6)
	}
	t1 := OpticalDepth(lk, k500, tau)
	t2 := OpticalDepth(lk2, k500, tau)
	for i := range t1 {
		if i > 0 && t1[i] <= t1[i-1] {
			t.Errorf("optical depth not increasing at %d", i)
		}
		if different(t1[i], tau.Val[i], 0.02) {
			t.Errorf("depth %d: τ = %g; want %g", i, t1[i], tau.Val[i])
		}
		if different(t2[i], 2*t1[i], 1e-12) {
			t.Errorf("depth %d: doubled opacity gives τ = %g", i, t2[i])
		}
	}
}

func TestScatteringSource(t *testing.T) {
	tau, b := linearSource(2, 0)
	a := NewAngles(NumAngles)
	s := ScatteringSource(tau, b, nil, a, ScatterIterations)
	if s[0] >= b[0] {
		t.Errorf("surface source %g not below B = %g", s[0], b[0])
	}
	if different(s[len(s)-1], b[len(b)-1], 1e-6) {
		t.Errorf("deep source %g; want %g", s[len(s)-1], b[len(b)-1])
	}
	if s := ScatteringSource(tau, b, nil, a, 0); !floats.Equal(s, b) {
		t.Error("zero iterations changed the source")
	}
}

// lineSpectrum returns intensities of a flat continuum with a Gaussian
// absorption line at 500 nm that deepens toward disk center.
func lineSpectrum(a Angles) (lambdas []float64, intens [][]float64) {
	const n = 801
	for i := 0; i < n; i++ {
		l := 499.5e-7 + 1.0e-7*float64(i)/(n-1)
		lambdas = append(lambdas, l)
		row := make([]float64, a.Len())
		for it, mu := range a.Mu {
			d := (l - 500e-7) / 0.005e-7
			row[it] = 1 - 0.5*mu*math.Exp(-d*d)
		}
		intens = append(intens, row)
	}
	return lambdas, intens
}

func TestBroadenNoVelocity(t *testing.T) {
	a := NewAngles(NumAngles)
	l, in := lineSpectrum(a)
	if !floats.Equal(Broaden(in, l, a, Broadening{Inclination: 90}), Flux(in, a)) {
		t.Error("broadening without velocity changed the flux")
	}
	if !floats.Equal(Broaden(in, l, a, Broadening{VEq: 50}), Flux(in, a)) {
		t.Error("pole-on rotation changed the flux")
	}
}

func TestBroadenConserves(t *testing.T) {
	a := NewAngles(NumAngles)
	l, in := lineSpectrum(a)
	f0 := Flux(in, a)
	fc := math.Pi
	depth := func(f []float64) ([]float64, float64) {
		d := make([]float64, len(f))
		var max float64
		for i := range f {
			d[i] = 1 - f[i]/fc
			max = math.Max(max, d[i])
		}
		return d, max
	}
	d0, max0 := depth(f0)
	w0 := integrate.Trapezoidal(l, d0)
	for _, b := range []Broadening{
		{VEq: 10, Inclination: 90},
		{VMacro: 3},
		{VEq: 10, Inclination: 30, VMacro: 3},
	} {
		f := Broaden(in, l, a, b)
		if different(f[0], fc, 1e-9) || different(f[len(f)-1], fc, 1e-9) {
			t.Errorf("%+v: continuum %g, %g; want %g", b, f[0], f[len(f)-1], fc)
		}
		d, max := depth(f)
		if max >= max0 {
			t.Errorf("%+v: line depth %g not below %g", b, max, max0)
		}
		if w := integrate.Trapezoidal(l, d); different(w, w0, 0.02) {
			t.Errorf("%+v: equivalent width %g; want %g", b, w, w0)
		}
	}
}

func TestSolve(t *testing.T) {
	n := 30
	in := &Input{
		Lambdas:  []float64{400e-7, 500e-7, 600e-7},
		Tau:      phys.Tau(n, -5, 1.5),
		Temp:     phys.NewColumn(n),
		Kappa500: phys.NewColumn(n),
	}
	for i := 0; i < n; i++ {
		in.Temp.Set(i, 4500+1500*float64(i)/float64(n-1))
		in.Kappa500.Set(i, 0.5)
	}
	for range in.Lambdas {
		k := make([]float64, n)
		for i := range k {
			k[i] = math.Log(0.5)
		}
		in.LogKappa = append(in.LogKappa, k)
	}
	a := NewAngles(NumAngles)
	sp, err := Solve(in, a)
	if err != nil {
		t.Fatal(err)
	}
	for il, row := range sp.Intensity {
		for it := 1; it < len(row); it++ {
			if row[it] >= row[it-1] {
				t.Errorf("λ %d: no limb darkening at angle %d", il, it)
			}
		}
	}
	in.Scatter = []bool{false, true, false}
	sc, err := Solve(in, a)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Flux[0] != sp.Flux[0] || sc.Flux[2] != sp.Flux[2] {
		t.Error("scattering changed unflagged wavelengths")
	}
	if sc.Flux[1] == sp.Flux[1] {
		t.Error("scattering had no effect")
	}
	in.LogCont = in.LogKappa
	th, err := Solve(in, a)
	if err != nil {
		t.Fatal(err)
	}
	if different(th.Flux[1], sp.Flux[1], 1e-12) {
		t.Error("pure continuum opacity should not scatter")
	}
	in.LogCont = nil
	in.Scatter = []bool{true}
	if _, err := Solve(in, a); err == nil {
		t.Error("expected error for mismatched scattering flags")
	}
}
