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
)

const (
	// JolaPoints is the number of wavelength samples across a band.
	JolaPoints = 64
	// JolaMaxTeff is the effective temperature [K] below which
	// molecular bands are synthesized.
	JolaMaxTeff = 5000.0

	noOpacity = -999.0
	maxLogKap = 49.0
)

// Band is a diatomic electronic band system treated in the
// just-overlapping-line approximation.
type Band struct {
	Name     string
	Molecule string
	// LambdaStart and LambdaStop bound the band [nm].
	LambdaStart, LambdaStop float64
	// Origin is the wavenumber of the band origin [cm⁻¹].
	Origin float64
	// BLower and BUpper are the rotational constants [cm⁻¹].
	BLower, BUpper float64
	// RSqu is the squared electronic transition moment.
	RSqu float64
	// Strength scales the band oscillator strength.
	Strength float64
	// AlphaP, AlphaR and AlphaQ are the branch intensity fractions.
	AlphaP, AlphaR, AlphaQ float64
}

// ID returns the key under which the band is merged.
func (b Band) ID() string { return b.Name }

// LogF returns the natural log of the band oscillator strength.
func (b Band) LogF() float64 {
	return math.Log(3.0376e-6 * b.Origin * b.RSqu * b.Strength)
}

// TiOBands returns the TiO band systems.
func TiOBands() []Band {
	return []Band{
		{Name: "TiO C3Delta-X3Delta", Molecule: "TiO", LambdaStart: 405, LambdaStop: 630,
			Origin: 19341.7, BLower: 0.535431, BUpper: 0.489888, RSqu: 0.84, Strength: 1.0e-16,
			AlphaP: 0.5, AlphaR: 0.5},
		{Name: "TiO c1Phi-a1Delta", Molecule: "TiO", LambdaStart: 490, LambdaStop: 580,
			Origin: 17840.6, BLower: 0.537602, BUpper: 0.500000, RSqu: 4.63, Strength: 5.0e-16,
			AlphaP: 0.25, AlphaR: 0.25, AlphaQ: 0.5},
		{Name: "TiO A3Phi-X3Delta", Molecule: "TiO", LambdaStart: 570, LambdaStop: 865,
			Origin: 14095.9, BLower: 0.535431, BUpper: 0.507390, RSqu: 5.24, Strength: 5.0e-16,
			AlphaP: 0.25, AlphaR: 0.25, AlphaQ: 0.5},
	}
}

// Lambdas returns the band's wavelength samples [cm].
func (b Band) Lambdas() []float64 {
	l := make([]float64, JolaPoints)
	d := (b.LambdaStop - b.LambdaStart) / JolaPoints
	for i := range l {
		l[i] = (b.LambdaStart + float64(i)*d) * 1.0e-7
	}
	return l
}

// dfdw returns the oscillator strength per unit wavenumber of the P, R and
// Q branches, indexed [point][depth].
func (b Band) dfdw(lambdas []float64, temp phys.Column) [][]float64 {
	f := math.Exp(b.LogF())
	hcBk := phys.H * phys.C * b.BLower / phys.K
	bSum := b.BUpper + b.BLower
	bDiff := b.BUpper - b.BLower
	mH := -bSum / (2 * bDiff)
	wH := -bDiff*mH*mH + b.Origin

	out := make([][]float64, len(lambdas))
	for iw, lam := range lambdas {
		out[iw] = make([]float64, temp.Len())
		w := 1 / lam

		// P and R branches.
		x := (w - wH) / bDiff
		var m [2]float64
		var alpha, denom [2]float64
		if x > 0 {
			h := math.Sqrt(x)
			m = [2]float64{mH + h, mH - h}
			for j := range m {
				alpha[j] = b.AlphaR
				if m[j] < 0 {
					alpha[j] = b.AlphaP
				}
				denom[j] = math.Abs(bSum + 2*m[j]*bDiff)
			}
		}
		// Q branch.
		xq := (w - b.Origin) / bDiff
		mQ := -0.5 + math.Sqrt(0.25+math.Abs(xq))

		for i := range out[iw] {
			hck := hcBk / temp.Val[i]
			var v float64
			if x > 0 {
				for j := range m {
					v += alpha[j] * math.Exp(-hck*(m[j]*m[j]-m[j])) / denom[j]
				}
			}
			if xq > 0 && b.AlphaQ > 0 {
				v += b.AlphaQ * math.Exp(-hck*(mQ*mQ-mQ)) / math.Abs(bDiff)
			}
			out[iw][i] = f * hck * v
		}
	}
	return out
}

// JOLA returns the natural log of the band mass extinction [cm²/g] at
// lambdas, indexed [point][depth], for molecule number densities logN
// [ln cm⁻³].
func JOLA(b Band, lambdas []float64, s *State, logN []float64) [][]float64 {
	prof := b.dfdw(lambdas, s.Temp)
	logPre := math.Log(math.Pi) + 2*phys.LogE - phys.LogMe - phys.LogC
	k := make([][]float64, len(lambdas))
	for iw := range k {
		k[iw] = make([]float64, s.Temp.Len())
		var dw float64
		switch {
		case iw > 0:
			dw = math.Abs(1/lambdas[iw] - 1/lambdas[iw-1])
		case len(lambdas) > 1:
			dw = math.Abs(1/lambdas[1] - 1/lambdas[0])
		}
		hvk := phys.H * phys.C / (lambdas[iw] * phys.K)
		for i := range k[iw] {
			df := dw * prof[iw][i]
			if df <= 0 {
				k[iw][i] = noOpacity
				continue
			}
			stim := -math.Expm1(-hvk / s.Temp.Val[i])
			v := math.Log(df) + logPre + logN[i] - s.Rho.Ln[i] + math.Log(stim)
			k[iw][i] = math.Min(v, maxLogKap)
		}
	}
	return k
}
