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
	"math"

	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/radtrans"
)

const (
	// gradAd is the adiabatic temperature gradient d ln T / d ln P of a
	// monatomic ideal gas.
	gradAd = 0.4

	// maxTempStep is the largest fractional temperature change of one
	// temperature correction.
	maxTempStep = 0.1

	sigmaOverPi = phys.Sigma / math.Pi
)

// temperatureCorrection moves the temperature toward radiative
// equilibrium with one damped Λ iteration on the Rosseland optical depth
// scale: T ← T (J/B)^¼, where J is the mean intensity of a gray source
// σT⁴/π.
func (d *Atmosphere) temperatureCorrection() {
	n := d.Len()
	a := radtrans.NewAngles(radtrans.NumAngles)
	tau := radtrans.OpticalDepth(d.KappaRos.Ln, d.Kappa500, d.Tau)
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Exp(4*d.Temp.Ln[i]) * sigmaOverPi
	}
	j := radtrans.MeanIntensity(tau, s, a)
	for i := 0; i < n; i++ {
		f := math.Pow(j[i]/s[i], 0.25)
		if math.IsNaN(f) {
			continue
		}
		f = 1 + 0.5*(f-1)
		f = math.Max(1-maxTempStep, math.Min(1+maxTempStep, f))
		d.Temp.Set(i, d.Temp.Val[i]*f)
	}
}

// convect limits the temperature gradient to the adiabatic gradient
// wherever the Schwarzschild criterion finds the radiative gradient
// unstable.
func (d *Atmosphere) convect() {
	for i := 1; i < d.Len(); i++ {
		dlnP := d.PGas.Ln[i] - d.PGas.Ln[i-1]
		if dlnP <= 0 {
			continue
		}
		if (d.Temp.Ln[i]-d.Temp.Ln[i-1])/dlnP > gradAd {
			d.Temp.SetLn(i, d.Temp.Ln[i-1]+gradAd*dlnP)
		}
	}
}
