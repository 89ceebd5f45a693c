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

	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refmodel"
)

const (
	// NumCore is the number of sampling points across the line core on
	// each side of line center, including the center.
	NumCore = 5
	// NumWing is the number of logarithmically spaced wing points on
	// each side of the core.
	NumWing = 10

	maxCoreV = 3.5 // core half-width [Doppler widths]
)

// State is the converged atmospheric structure lines are synthesized on.
type State struct {
	Tau  phys.Column // 500 nm optical depth
	Temp phys.Column // K
	PGas phys.Column // dyn/cm²
	Ne   phys.Column // cm⁻³
	Rho  phys.Column // g/cm³
}

// Points is the wavelength sampling of one line.
type Points struct {
	Lambda0 float64   // line center [cm]
	Doppler float64   // Doppler width [cm]
	Delta   []float64 // offset from line center [cm]
	V       []float64 // offset from line center [Doppler widths]
}

// Lambdas returns the absolute wavelengths [cm] of p.
func (p Points) Lambdas() []float64 {
	l := make([]float64, len(p.Delta))
	for i, d := range p.Delta {
		l[i] = p.Lambda0 + d
	}
	return l
}

// maxWingFrac bounds the half-width of a line grid as a fraction of the
// line center wavelength.
const maxWingFrac = 0.25

// Grid returns the wavelength sampling of l, symmetric about line center,
// for a star of effective temperature teff [K] and microturbulent
// velocity xiT [km/s].
func Grid(l Line, teff, xiT float64) Points {
	lam0 := l.Lambda0 * 1.0e-7
	xi := xiT * 1.0e5
	v2 := 2*phys.K*teff/(l.mass()*phys.Amu) + xi*xi
	doppler := math.Sqrt(v2) * lam0 / phys.C

	minWing := math.Log(maxCoreV + 1.5)
	maxWing := 9 + minWing
	if l.isHydrogen() && teff >= 7000 {
		maxWing = 12 + minWing
	}
	// The outermost sample stays within maxWingFrac of λ0.
	maxWing = math.Max(math.Min(maxWing, math.Log(maxWingFrac*lam0/doppler)), minWing+1)
	n := NumCore + NumWing
	half := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < NumCore {
			half[i] = float64(i) * maxCoreV / (NumCore - 1)
		} else {
			j := float64(i - NumCore)
			half[i] = math.Exp(j*(maxWing-minWing)/float64(n-1) + minWing)
		}
	}
	p := Points{Lambda0: lam0, Doppler: doppler}
	for i := n - 1; i > 0; i-- {
		p.V = append(p.V, -half[i])
	}
	p.V = append(p.V, half...)
	p.Delta = make([]float64, len(p.V))
	for i, v := range p.V {
		p.Delta[i] = v * doppler
	}
	return p
}

// dampingRatio returns the Voigt damping parameter a = Γλ²/(4πcΔλ_D) at
// each depth. The collisional width scales from the solar value at
// τ = 1 with gas pressure and temperature.
func dampingRatio(l Line, p Points, s *State) []float64 {
	tSun, pSun, _ := refmodel.Sun().At(1)
	logGammaSun := 9 * phys.Ln10
	a := make([]float64, s.Temp.Len())
	for i := range a {
		lg := s.PGas.Ln[i] - math.Log(pSun) + 0.7*(math.Log(tSun)-s.Temp.Ln[i]) +
			logGammaSun + l.LogGammaCol
		gamma := math.Exp(lg) + l.Aij
		a[i] = p.Lambda0 * p.Lambda0 * gamma / (4 * math.Pi * phys.C * p.Doppler)
	}
	return a
}

// hjertingH returns the Voigt function H(a, v) from its expansion in a.
func hjertingH(a, v float64) float64 {
	v = math.Abs(v)
	var h [5]float64
	if v <= 12 {
		for k := range h {
			h[k] = phys.Interpol(hjerting[0], hjerting[k+1], v)
		}
	} else {
		v2 := v * v
		h[1] = 0.56419/v2 + 0.846/(v2*v2)
		h[3] = -0.56 / (v2 * v2)
	}
	return h[0] + a*(h[1]+a*(h[2]+a*(h[3]+a*h[4])))
}

// Profile computes the area-normalized line profile φ [s] of a line,
// indexed [point][depth].
type Profile func(l Line, p Points, s *State) [][]float64

func newProfile(n, depths int) [][]float64 {
	phi := make([][]float64, n)
	for i := range phi {
		phi[i] = make([]float64, depths)
	}
	return phi
}

// norm converts a dimensionless profile in Doppler units to frequency
// units.
func norm(p Points) float64 {
	return p.Lambda0 * p.Lambda0 / (math.Sqrt(math.Pi) * p.Doppler * phys.C)
}

// Voigt is the Voigt profile evaluated from tabulated Hjerting functions.
func Voigt(l Line, p Points, s *State) [][]float64 {
	a := dampingRatio(l, p, s)
	phi := newProfile(len(p.V), len(a))
	f := norm(p)
	for il, v := range p.V {
		for i := range a {
			phi[il][i] = math.Max(hjertingH(a[i], v)*f, phys.Floor)
		}
	}
	return phi
}

// GaussLorentz approximates the Voigt profile by a Gaussian core and a
// Lorentzian wing beyond two Doppler widths.
func GaussLorentz(l Line, p Points, s *State) [][]float64 {
	a := dampingRatio(l, p, s)
	phi := newProfile(len(p.V), len(a))
	f := norm(p)
	for il, v := range p.V {
		core := math.Exp(-v * v)
		for i := range a {
			h := core
			if math.Abs(v) > 2 {
				h += a[i] / (math.Sqrt(math.Pi) * v * v)
			}
			phi[il][i] = math.Max(h*f, phys.Floor)
		}
	}
	return phi
}

// starkK holds the Stark broadening constants of the Balmer lines from
// Hα (index 0) to H13.
var starkK = [...]float64{2.56e-03, 7.06e-03, 1.19e-02, 1.94e-02, 2.95e-02,
	4.62e-02, 6.38e-02, 8.52e-02, 1.12e-01, 1.43e-01, 1.80e-01}

const starkTune = 3.1623e7

// balmerIndex returns the upper level n - 3 of the Balmer line at lam0 [nm].
func balmerIndex(lam0 float64) int {
	x := 0.25 - 1/(lam0*1.0968e-2)
	if x <= 0 {
		return 0
	}
	n := int(math.Floor(math.Sqrt(1/x) + 0.5))
	i := n - 3
	if i < 0 {
		return 0
	}
	if i >= len(starkK) {
		return len(starkK) - 1
	}
	return i
}

// Stark is the Voigt profile plus the linear Stark wings of a hydrogen
// line in the Holtsmark field of the free electrons.
func Stark(l Line, p Points, s *State) [][]float64 {
	a := dampingRatio(l, p, s)
	phi := newProfile(len(p.V), len(a))
	lam0A := p.Lambda0 * 1.0e8
	logK := math.Log(starkK[balmerIndex(l.Lambda0)] * starkTune)
	sqrtPi := math.Sqrt(math.Pi)
	for i := range a {
		f0 := 1.249e-9 * math.Pow(s.Ne.Val[i], 2.0/3.0)
		lamOverF0 := lam0A / f0
		for il, v := range p.V {
			h := hjertingH(a[i], v) / sqrtPi / p.Doppler
			if math.Abs(v) > 2 {
				dAlpha := math.Abs(p.Delta[il]) * 1.0e8 / f0
				h += math.Exp(logK + 0.5*math.Log((lamOverF0+dAlpha)/lamOverF0) -
					2.5*math.Log(dAlpha) - math.Log(f0))
			}
			phi[il][i] = math.Max(h*p.Lambda0*p.Lambda0/phys.C, phys.Floor)
		}
	}
	return phi
}
