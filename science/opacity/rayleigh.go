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
	"github.com/spatialmodel/photosphere/science/refdata"
)

// rayleigh computes Rayleigh scattering off ground-state H I and He I and
// off H2 molecules.
type rayleigh struct {
	h1, he1, h2 []float64 // linear number densities; nil if absent
}

func newRayleigh(in *Input) *rayleigh {
	n := in.Temp.Len()
	r := new(rayleigh)
	ground := func(sp refdata.Species) []float64 {
		g := make([]float64, n)
		p := in.Pops.Stages[sp.Element]
		for i := range g {
			g[i] = math.Exp(p[sp.Stage-1][i] - refdata.LogPartitionFn(sp, in.Temp.Val[i]).Value)
		}
		return g
	}
	r.h1 = ground(refdata.Species{Element: "H", Stage: 1})
	r.he1 = ground(refdata.Species{Element: "He", Stage: 1})
	if m, ok := in.Pops.Molecules["H2"]; ok {
		r.h2 = make([]float64, n)
		for i := range r.h2 {
			r.h2[i] = math.Exp(m[i])
		}
	}
	return r
}

type rayleighAt struct {
	*rayleigh
	sigH, sigHe, sigH2 float64
}

// squared wavelength [Å²] at frequency min(ν, maxFreq).
func wavelength2(freq, maxFreq float64) float64 {
	w := 2.997925e18 / math.Min(freq, maxFreq)
	return w * w
}

func (r *rayleigh) at(lambda float64) *rayleighAt {
	freq := phys.C / lambda
	w := &rayleighAt{rayleigh: r}
	ww := wavelength2(freq, 2.463e15)
	w.sigH = 2 * (5.799e-13 + 1.422e-6/ww + 2.784/(ww*ww)) / (ww * ww)
	w.sigH2 = (8.14e-13 + 1.28e-6/ww + 1.61/(ww*ww)) / (ww * ww)
	ww = wavelength2(freq, 5.15e15)
	f := 1 + (2.44e5+5.94e10/(ww-2.90e5))/ww
	w.sigHe = 5.484e-14 / ww / ww * f * f
	return w
}

// kappa returns the scattering extinction per unit volume [cm⁻¹] at depth i.
func (w *rayleighAt) kappa(i int) float64 {
	k := w.sigH*w.h1[i] + w.sigHe*w.he1[i]
	if w.h2 != nil {
		k += w.sigH2 * w.h2[i]
	}
	return k
}
