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

	"github.com/spatialmodel/photosphere/science/phys"
	"gonum.org/v1/gonum/stat/distuv"
)

// NumAzimuths is the number of azimuthal sectors the projected disk is
// divided into for rotational broadening.
const NumAzimuths = 12

// kernelWidth is the macroturbulence kernel half width [σ].
const kernelWidth = 4.0

// Flux returns the disk-integrated flux F_λ = 2π ∫ I μ dμ
// [erg/s/cm²/cm] of the intensities intens, indexed [λ][angle].
func Flux(intens [][]float64, a Angles) []float64 {
	f := make([]float64, len(intens))
	for il, in := range intens {
		var s float64
		for it, mu := range a.Mu {
			s += in[it] * mu * a.Weight[it]
		}
		f[il] = 2 * math.Pi * s
	}
	return f
}

// Broadening holds the velocity fields that broaden the disk-integrated
// spectrum.
type Broadening struct {
	VEq         float64 // equatorial rotation velocity [km/s]
	Inclination float64 // rotation axis inclination to the line of sight [deg]
	VMacro      float64 // macroturbulent velocity [km/s]
}

// VSini returns the projected rotation velocity [km/s].
func (b Broadening) VSini() float64 {
	return b.VEq * math.Sin(b.Inclination*math.Pi/180)
}

// Broaden returns the flux of intens, indexed [λ][angle] at lambdas
// [cm], integrated over the projected disk with each surface element
// Doppler shifted by rotation, then convolved with a Gaussian
// macroturbulence kernel. With no rotation and no macroturbulence it
// returns Flux(intens, a).
func Broaden(intens [][]float64, lambdas []float64, a Angles, b Broadening) []float64 {
	vsini := b.VSini() * 1.0e5
	vmacro := b.VMacro * 1.0e5
	if vsini == 0 && vmacro == 0 {
		return Flux(intens, a)
	}
	var f []float64
	if vsini == 0 {
		f = Flux(intens, a)
	} else {
		f = rotate(intens, lambdas, a, vsini)
	}
	if vmacro == 0 {
		return f
	}
	return macroturbulence(f, lambdas, vmacro)
}

// rotate integrates the intensity over NumAzimuths sectors at each angle,
// shifting each sector by its line-of-sight rotation velocity.
func rotate(intens [][]float64, lambdas []float64, a Angles, vsini float64) []float64 {
	f := make([]float64, len(lambdas))
	dPhi := 2 * math.Pi / NumAzimuths
	col := make([]float64, len(lambdas))
	shifted := make([]float64, len(lambdas))
	for it, mu := range a.Mu {
		if a.Weight[it] == 0 {
			continue
		}
		for il := range col {
			col[il] = intens[il][it]
		}
		sinTheta := math.Sqrt(1 - mu*mu)
		fac := mu * a.Weight[it] * dPhi
		for ip := 0; ip < NumAzimuths; ip++ {
			v := vsini * sinTheta * math.Cos((float64(ip)+0.5)*dPhi)
			z := 1 + v/phys.C
			for il, l := range lambdas {
				shifted[il] = l / z
			}
			obs := resample(lambdas, col, shifted)
			for il := range f {
				f[il] += obs[il] * fac
			}
		}
	}
	return f
}

// macroturbulence convolves f with a Gaussian of standard deviation
// vmacro [cm/s] in velocity space.
func macroturbulence(f, lambdas []float64, vmacro float64) []float64 {
	k := distuv.Normal{Mu: 0, Sigma: vmacro}
	n := len(lambdas)
	dl := make([]float64, n)
	for i := range dl {
		lo, hi := i, i
		if i > 0 {
			lo = i - 1
		}
		if i < n-1 {
			hi = i + 1
		}
		dl[i] = 0.5 * (lambdas[hi] - lambdas[lo])
	}
	if n == 1 {
		return append([]float64(nil), f...)
	}
	out := make([]float64, n)
	lo := 0
	for i, l0 := range lambdas {
		dMax := l0 * kernelWidth * vmacro / phys.C
		for lambdas[lo] < l0-dMax {
			lo++
		}
		var num, den float64
		for j := lo; j < n && lambdas[j] <= l0+dMax; j++ {
			w := k.Prob(phys.C*(lambdas[j]-l0)/l0) * dl[j]
			num += w * f[j]
			den += w
		}
		out[i] = num / den
	}
	return out
}

// resample linearly interpolates y(x) at each of the increasing points
// xs, clamping outside the range of x.
func resample(x, y, xs []float64) []float64 {
	out := make([]float64, len(xs))
	j := 1
	n := len(x)
	for i, v := range xs {
		switch {
		case n == 1 || v <= x[0]:
			out[i] = y[0]
			continue
		case v >= x[n-1]:
			out[i] = y[n-1]
			continue
		}
		for j < n-1 && x[j] < v {
			j++
		}
		f := (v - x[j-1]) / (x[j] - x[j-1])
		out[i] = y[j-1] + f*(y[j]-y[j-1])
	}
	return out
}
