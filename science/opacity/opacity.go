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

// Package opacity computes the continuous monochromatic mass extinction of
// the gas: hydrogen and helium bound-free and free-free terms with electron
// scattering, metal photoionization edges and Rayleigh scattering. It also
// derives the Rosseland mean and the 500 nm reference opacity.
package opacity

import (
	"fmt"
	"math"

	"github.com/spatialmodel/photosphere/science/equilibrium"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refmodel"
	"gonum.org/v1/gonum/floats"
)

// Lambda500 is the reference wavelength of the optical depth scale [cm].
const Lambda500 = 500.0e-7

// CoolFudge is the automatic opacity correction [dex] applied below
// refmodel.ThresholdTeff.
const CoolFudge = 0.3

// Input holds the state of the gas the opacity is computed for.
type Input struct {
	Temp phys.Column // K
	Pe   phys.Column // electron pressure [dyn/cm²]
	Ne   phys.Column // electron density [cm⁻³]
	Rho  phys.Column // mass density [g/cm³]

	// Pops holds the species populations. H and He are required;
	// metals and H2 contribute when present.
	Pops *equilibrium.Result

	// LogFudge is the base-10 log of the multiplicative opacity
	// correction, as returned by Fudge.
	LogFudge float64
}

// Table is a logarithmic opacity table indexed [wavelength][depth]. Values
// are natural logs of the mass extinction [cm²/g].
type Table [][]float64

// Fudge returns the total opacity correction [dex] for effective
// temperature teff [K] given the user's correction userLog [dex].
func Fudge(teff, userLog float64) float64 {
	if teff < refmodel.ThresholdTeff {
		return userLog + CoolFudge
	}
	return userLog
}

// Lambdas returns n wavelengths [cm] spaced logarithmically from start to
// stop [nm], both included.
func Lambdas(start, stop float64, n int) []float64 {
	if n < 2 {
		return []float64{start * 1.0e-7}
	}
	l := make([]float64, n)
	floats.LogSpan(l, start*1.0e-7, stop*1.0e-7)
	return l
}

func (in *Input) check() error {
	n := in.Temp.Len()
	if n == 0 {
		return fmt.Errorf("opacity: no depths")
	}
	for name, c := range map[string]phys.Column{"Pe": in.Pe, "Ne": in.Ne, "Rho": in.Rho} {
		if c.Len() != n {
			return fmt.Errorf("opacity: %s has %d depths; want %d", name, c.Len(), n)
		}
	}
	if in.Pops == nil {
		return fmt.Errorf("opacity: missing populations")
	}
	for _, e := range []string{"H", "He"} {
		p, ok := in.Pops.Stages[e]
		if !ok {
			return fmt.Errorf("opacity: missing %s populations", e)
		}
		if len(p[0]) != n {
			return fmt.Errorf("opacity: %s populations have %d depths; want %d", e, len(p[0]), n)
		}
	}
	return nil
}

// Continuum returns the continuous opacity at each of lambdas [cm].
func Continuum(in *Input, lambdas []float64) (Table, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	n := in.Temp.Len()
	h := newHydrogenic(in)
	m := newMetals(in)
	r := newRayleigh(in)
	fudge := in.LogFudge * phys.Ln10
	t := make(Table, len(lambdas))
	for il, lam := range lambdas {
		t[il] = make([]float64, n)
		hw := h.at(lam)
		mw := m.at(lam)
		rw := r.at(lam)
		for i := 0; i < n; i++ {
			k := hw.kappa(i) + mw.kappa(i) + rw.kappa(i)
			if k < phys.Floor {
				k = phys.Floor
			}
			t[il][i] = math.Log(k) - in.Rho.Ln[i] + fudge
		}
	}
	return t, nil
}

// At500 returns the continuous opacity at Lambda500.
func At500(in *Input) (phys.Column, error) {
	t, err := Continuum(in, []float64{Lambda500})
	if err != nil {
		return phys.Column{}, err
	}
	return phys.ColumnFromLn(t[0]), nil
}

// Rosseland returns the Rosseland mean of t over lambdas [cm]: the
// harmonic mean of the opacity weighted by ∂B_λ/∂T.
func Rosseland(t Table, lambdas []float64, temp phys.Column) (phys.Column, error) {
	if len(t) != len(lambdas) {
		return phys.Column{}, fmt.Errorf("opacity: table has %d wavelengths; want %d", len(t), len(lambdas))
	}
	if len(lambdas) < 2 {
		return phys.Column{}, fmt.Errorf("opacity: Rosseland mean needs at least 2 wavelengths")
	}
	n := temp.Len()
	out := phys.NewColumn(n)
	num := make([]float64, len(lambdas)-1)
	den := make([]float64, len(lambdas)-1)
	for i := 0; i < n; i++ {
		for il := 1; il < len(lambdas); il++ {
			w := phys.LogDBDT(temp.Val[i], lambdas[il]) + math.Log(lambdas[il]-lambdas[il-1])
			den[il-1] = w
			num[il-1] = w - t[il][i]
		}
		out.SetLn(i, phys.LogSumExp(den...)-phys.LogSumExp(num...))
	}
	return out, nil
}
