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

	"github.com/spatialmodel/photosphere/science/phys"
)

const (
	chiH     = 13.598433 // H I ionization energy [eV]
	rydberg  = 1.0968e-2 // [nm⁻¹]
	numHLevs = 10
	aBF      = 1.0449e-26 // hydrogenic cross-section constant, λ in Å
	alphaE   = 0.6648e-24 // Thomson cross section [cm²]
	chiHe    = 10.92      // [eV]
)

var (
	hmBF = [...]float64{1.99654, -1.18267e-5, 2.64243e-6, -4.40524e-10,
		3.23992e-14, -1.39568e-18, 2.78701e-23}
	hmFF = [3][5]float64{
		{-2.2763, -1.6850, 0.76661, -0.053346, 0},
		{15.2827, -9.2846, 1.99381, -0.142631, 0},
		{-197.789, 190.266, -67.9775, 10.6913, -0.625151},
	}
	h2pSigma = [...]float64{-1040.54, 1345.71, -547.628, 71.9684}
	h2pU     = [...]float64{-54.0532, 32.713, -6.6699, 0.4574}
	hemFF    = [4][5]float64{
		{9.66736, -71.76242, 105.29576, -56.49259, 10.69206},
		{-10.50614, 48.28802, -70.43363, 37.80099, -7.15445},
		{2.74020, -10.62144, 15.50518, -8.33845, 1.57960},
		{-0.19923, 0.77485, -1.13200, 0.60994, -0.11564},
	}
)

// hLevels holds the threshold wavelength [nm] and excitation energy [eV]
// of the lowest hydrogen levels.
var hLevels = func() (l [numHLevs]struct{ thresh, chi float64 }) {
	for i := range l {
		n := float64(i + 1)
		inv := rydberg / (n * n)
		l[i].thresh = 1 / inv
		l[i].chi = chiH - phys.H*phys.C*inv*1.0e7/phys.EV
	}
	return
}()

// poly evaluates Σ c[i] x^i.
func poly(c []float64, x float64) float64 {
	var s float64
	for i := len(c) - 1; i >= 0; i-- {
		s = s*x + c[i]
	}
	return s
}

// hydrogenic computes the H I, H⁻, H2⁺, He, He⁻ and electron terms.
type hydrogenic struct {
	in              *Input
	theta, logTheta []float64
	nH1, nH2, nHe1  []float64 // ln number densities
}

func newHydrogenic(in *Input) *hydrogenic {
	n := in.Temp.Len()
	h := &hydrogenic{
		in:       in,
		theta:    make([]float64, n),
		logTheta: make([]float64, n),
		nH1:      in.Pops.Stages["H"][0],
		nH2:      in.Pops.Stages["H"][1],
		nHe1:     in.Pops.Stages["He"][0],
	}
	for i := 0; i < n; i++ {
		h.logTheta[i] = math.Log(phys.Log10E) - (in.Temp.Ln[i] + phys.LogK - phys.LogEV)
		h.theta[i] = math.Exp(h.logTheta[i])
	}
	return h
}

// hydrogenicAt holds the wavelength-dependent factors.
type hydrogenicAt struct {
	*hydrogenic
	nm, logA, chiLam, gauntHelp float64
	gbf                         [numHLevs]float64
}

func (h *hydrogenic) at(lambda float64) *hydrogenicAt {
	w := &hydrogenicAt{hydrogenic: h, nm: lambda * 1.0e7}
	w.logA = math.Log10(lambda * 1.0e8)
	w.chiLam = 1.2398e3 / w.nm
	w.gauntHelp = 0.3456 * math.Pow(rydberg, -0.333333) * math.Pow(w.nm, -0.333333)
	for l := range hLevels {
		if w.nm <= hLevels[l].thresh {
			w.gbf[l] = 1 - w.gauntHelp*(w.nm/hLevels[l].thresh-0.5)
		}
	}
	return w
}

// kappa returns the extinction per unit volume [cm⁻¹] at depth i.
func (w *hydrogenicAt) kappa(i int) float64 {
	in := w.in
	t := in.Temp.Val[i]
	theta := w.theta[i]
	stim := -math.Expm1(-theta * w.chiLam * phys.Ln10)
	nH1 := math.Exp(w.nH1[i])
	lamA3 := math.Pow(w.nm*10, 3)

	var bf float64
	for l := range hLevels {
		if w.nm > hLevels[l].thresh {
			continue
		}
		n := float64(l + 1)
		bf += w.gbf[l] / (n * n * n) * math.Pow(10, -theta*hLevels[l].chi)
	}
	h1bf := aBF * lamA3 * bf * stim * nH1

	gff := 1 + w.gauntHelp*(phys.Log10E/(w.chiLam*theta)+0.5)
	h1ff := aBF * lamA3 * gff * phys.Log10E / (2 * chiH) / theta *
		math.Pow(10, -theta*chiH) * stim * nH1
	k := h1bf + h1ff

	if t > 1000 && t < 10000 {
		if w.nm > 225 && w.nm < 1500 {
			alpha := poly(hmBF[:], w.nm*10)
			if alpha > 0 {
				k += 4.158e-28 * alpha * in.Pe.Val[i] * math.Pow(theta, 2.5) *
					math.Pow(10, 0.754*theta) * stim * nH1
			}
		}
		if w.nm > 260 && w.nm < 11390 {
			var f [3]float64
			for j := range f {
				f[j] = poly(hmFF[j][:], w.logA)
			}
			lt := w.logTheta[i] * phys.Log10E
			k += 1.0e-26 * in.Pe.Val[i] * math.Pow(10, f[0]+f[1]*lt+f[2]*lt*lt) * nH1
		}
	}

	if t < 4000 && w.nm > 380 && w.nm < 2500 {
		sigma := poly(h2pSigma[:], w.logA)
		if sigma > 0 {
			u := poly(h2pU[:], w.logA)
			k += 2.51e-42 * sigma * math.Pow(10, -u*theta) * math.Exp(w.nH2[i]) * stim * nH1
		}
	}

	if t > 10000 && w.nm > 22.8 {
		kT := t * phys.K / phys.EV
		k += 4 * math.Exp(-chiHe/kT) * (h1bf + h1ff)
	}

	if theta > 0.5 && theta < 2 && w.nm > 500 && w.nm < 15000 {
		var c [4]float64
		for j := range c {
			c[j] = poly(hemFF[j][:], theta)
		}
		log10Alpha := poly(c[:], w.logA)
		if log10Alpha < 10 {
			k += 1.0e-26 * math.Pow(10, log10Alpha) * in.Pe.Val[i] * math.Exp(w.nHe1[i])
		}
	}

	return k + alphaE*in.Ne.Val[i]
}
