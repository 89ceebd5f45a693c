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

// Package refmodel rescales precomputed reference model atmospheres onto a
// requested effective temperature, surface gravity and metallicity to seed
// the structure solver.
package refmodel

import (
	"fmt"
	"math"

	"github.com/spatialmodel/photosphere/science/phys"
)

// ThresholdTeff is the effective temperature [K] below which the cool
// reference model is used.
const ThresholdTeff = 7300.0

// SolarLogAHe is the natural log of the solar helium number abundance
// relative to hydrogen.
var SolarLogAHe = phys.Ln10 * (10.93 - 12.0)

// Reference is a tabulated reference atmosphere on its own optical-depth
// grid.
type Reference struct {
	Name   string
	Teff   float64 // K
	LogG   float64 // log10 of surface gravity [cm/s²]
	LogAHe float64 // natural log of the helium abundance

	LnTau []float64
	Temp  []float64 // K
	PGas  []float64 // dyn/cm²
	Pe    []float64 // dyn/cm²
	Rho   []float64 // g/cm³; only tabulated for the solar model
}

func newReference(name string, teff, logg float64, tau, temp, pgas, pe, rho []float64) Reference {
	return Reference{
		Name:   name,
		Teff:   teff,
		LogG:   logg,
		LogAHe: SolarLogAHe,
		LnTau:  lnTau(tau),
		Temp:   temp,
		PGas:   pgas,
		Pe:     pe,
		Rho:    rho,
	}
}

// lnTau returns the natural log of the reference optical depths. The
// first point is τ = 0, so it is extrapolated from the rest of the grid.
func lnTau(tau []float64) []float64 {
	n := len(tau)
	o := make([]float64, n)
	for i := 1; i < n; i++ {
		o[i] = math.Log(tau[i])
	}
	o[0] = o[1] - (o[n-1]-o[1])/float64(n)
	return o
}

// Cool returns the 5000 K, log g = 4.5 reference model.
func Cool() Reference {
	return newReference("cool", 5000, 4.5, refTau64, coolTemp64, coolPGas64, coolPe64, nil)
}

// Hot returns the 10000 K, log g = 4.0 reference model.
func Hot() Reference {
	return newReference("hot", 10000, 4.0, refTau64, hotTemp64, hotPGas64, hotPe64, nil)
}

// Sun returns the 5777 K, log g = 4.44 solar reference model.
func Sun() Reference {
	return newReference("sun", 5777, 4.44, sunTau64, sunTemp64, sunPGas64, sunPe64, sunRho64)
}

// At returns the temperature [K], gas pressure [dyn/cm²] and electron
// pressure [dyn/cm²] of the reference model at optical depth tau.
// Pressures are interpolated in log space.
func (r Reference) At(tau float64) (temp, pgas, pe float64) {
	lt := math.Log(tau)
	temp = phys.Interpol(r.LnTau, r.Temp, lt)
	pgas = math.Exp(phys.Interpol(r.LnTau, logs(r.PGas), lt))
	pe = math.Exp(phys.Interpol(r.LnTau, logs(r.Pe), lt))
	return
}

// RhoAt returns the mass density [g/cm³] at optical depth tau, or an error
// if the model does not tabulate density.
func (r Reference) RhoAt(tau float64) (float64, error) {
	if r.Rho == nil {
		return 0, fmt.Errorf("refmodel: %s model has no density table", r.Name)
	}
	return math.Exp(phys.Interpol(r.LnTau, logs(r.Rho), math.Log(tau))), nil
}

func logs(v []float64) []float64 {
	o := make([]float64, len(v))
	for i, x := range v {
		o[i] = math.Log(x)
	}
	return o
}

// Params are the stellar parameters a reference model is rescaled onto.
type Params struct {
	Teff   float64 // K
	LogG   float64 // log10 of surface gravity [cm/s²]
	ZScale float64 // metallicity relative to solar, linear
	LogAHe float64 // natural log of the helium abundance
}

// Seed is a rescaled starting structure.
type Seed struct {
	Reference string
	Temp      phys.Column // K
	PGas      phys.Column // dyn/cm²
	Pe        phys.Column // dyn/cm²
	Ne        phys.Column // cm⁻³
}

// scaling holds the exponents used to rescale a reference model.
type scaling struct {
	pgGexpTop, pgGexpBottom float64
	peGexpTop, peGexpBottom float64
	pgZ, peZ                float64 // metallicity exponents
	omegaAlways             bool    // apply the Teff term to Pe at all Teff
}

var (
	coolScaling = scaling{
		pgGexpTop: 0.54, pgGexpBottom: 0.64,
		peGexpTop: 0.48, peGexpBottom: 0.33,
		pgZ: -0.333333, peZ: 0.333333,
		omegaAlways: true,
	}
	hotScaling = scaling{
		pgGexpTop: 0.53, pgGexpBottom: 0.85,
		peGexpTop: 0.53, peGexpBottom: 0.82,
		pgZ: -0.5, peZ: 0.5,
	}
)

const (
	omegaTauM1 = 0.0012 // τ < 0.1
	omegaTauP1 = 0.0015 // τ > 10
)

// Rescale selects the cool or hot reference model by p.Teff and rescales its
// temperature, gas pressure and electron pressure onto the optical depths
// tau. It never fails for finite positive inputs.
func Rescale(p Params, tau phys.Column) (*Seed, error) {
	if tau.Len() < 2 {
		return nil, fmt.Errorf("refmodel: need at least 2 depths, have %d", tau.Len())
	}
	if p.Teff <= 0 || p.ZScale <= 0 {
		return nil, fmt.Errorf("refmodel: Teff and ZScale must be positive (Teff=%g, ZScale=%g)", p.Teff, p.ZScale)
	}
	ref, sc := Cool(), coolScaling
	if p.Teff >= ThresholdTeff {
		ref, sc = Hot(), hotScaling
	}
	n := tau.Len()
	s := &Seed{
		Reference: ref.Name,
		Temp:      phys.NewColumn(n),
		PGas:      phys.NewColumn(n),
		Pe:        phys.NewColumn(n),
		Ne:        phys.NewColumn(n),
	}

	logEg := p.LogG * phys.Ln10
	refLogEg := ref.LogG * phys.Ln10
	logZ := math.Log(p.ZScale)
	aHe, refAHe := math.Exp(p.LogAHe), math.Exp(ref.LogAHe)
	pgHe := 0.666667 * (math.Log(1+4*aHe) - math.Log(1+4*refAHe))
	peHe := 0.333333 * (math.Log(1+4*aHe) - math.Log(1+4*refAHe))
	logPG, logPe := logs(ref.PGas), logs(ref.Pe)
	tauLogRange := tau.Ln[n-1] - tau.Ln[0]
	lnTenth := math.Log(0.1)

	for i := 0; i < n; i++ {
		lt := tau.Ln[i]
		frac := (lt - tau.Ln[0]) / tauLogRange

		s.Temp.Set(i, p.Teff*phys.Interpol(ref.LnTau, ref.Temp, lt)/ref.Teff)

		gexp := sc.pgGexpTop + (sc.pgGexpBottom-sc.pgGexpTop)*frac
		lpg := gexp*logEg + phys.Interpol(ref.LnTau, logPG, lt) - gexp*refLogEg
		lpg += sc.pgZ*logZ + pgHe
		s.PGas.SetLn(i, lpg)

		gexp = sc.peGexpTop + (sc.peGexpBottom-sc.peGexpTop)*frac
		lpe := gexp*logEg + phys.Interpol(ref.LnTau, logPe, lt) - gexp*refLogEg
		if sc.omegaAlways || p.Teff < ref.Teff {
			var omega float64
			switch {
			case tau.Val[i] < 0.1:
				omega = omegaTauM1
			case tau.Val[i] > 10:
				omega = omegaTauP1
			default:
				omega = omegaTauM1 + (omegaTauP1-omegaTauM1)*(lt-lnTenth)/tauLogRange
			}
			lpe += omega * (p.Teff - ref.Teff)
		}
		lpe += sc.peZ*logZ + peHe
		s.Pe.SetLn(i, lpe)
	}
	// The surface pressure may be an underestimate but must not exceed
	// the value at the next depth in.
	if s.PGas.Val[0] >= s.PGas.Val[1] {
		s.PGas.Set(0, 0.5*s.PGas.Val[1])
	}
	for i := 0; i < n; i++ {
		if s.Pe.Val[i] > 0.5*s.PGas.Val[i] {
			s.Pe.Set(i, 0.5*s.PGas.Val[i])
		}
		s.Ne.SetLn(i, s.Pe.Ln[i]-s.Temp.Ln[i]-phys.LogK)
	}
	return s, nil
}
