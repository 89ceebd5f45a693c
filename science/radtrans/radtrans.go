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

// Package radtrans solves the radiative transfer equation along a known
// optical depth and source function profile: emergent specific
// intensity at fixed emission angles, mean intensity for the scattering
// line source, and disk-integrated flux with rotational and
// macroturbulent broadening.
package radtrans

import (
	"math"

	"github.com/spatialmodel/photosphere/science/phys"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// NumAngles is the number of Gauss-Legendre emission angles.
const NumAngles = 11

// Angles holds the emission angle cosines μ and their quadrature weights
// on (0, 1]. The first angle is disk center, μ = 1, carried with zero
// weight; the rest run from center to limb.
type Angles struct {
	Mu     []float64
	Weight []float64
}

// NewAngles returns n Gauss-Legendre angles plus disk center.
func NewAngles(n int) Angles {
	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, 0, 1)
	if n > 1 && x[0] < x[n-1] {
		floats.Reverse(x)
		floats.Reverse(w)
	}
	a := Angles{Mu: []float64{1}, Weight: []float64{0}}
	a.Mu = append(a.Mu, x...)
	a.Weight = append(a.Weight, w...)
	return a
}

// Len returns the number of angles including disk center.
func (a Angles) Len() int { return len(a.Mu) }

// Planck returns the Planck function B_λ(T) [erg/s/cm²/cm/sr] at
// wavelength lambda [cm].
func Planck(temp, lambda float64) float64 {
	return math.Exp(phys.LogPlanck(temp, lambda))
}

// DBDT returns ∂B_λ/∂T at wavelength lambda [cm].
func DBDT(temp, lambda float64) float64 {
	return math.Exp(phys.LogDBDT(temp, lambda))
}

// OpticalDepth converts the monochromatic opacity column logKappa (ln κ)
// to optical depth on the 500 nm depth scale tau, given the 500 nm
// opacity kappa500. The top point keeps the opacity ratio of the first
// layer.
func OpticalDepth(logKappa []float64, kappa500, tau phys.Column) []float64 {
	n := len(logKappa)
	t := make([]float64, n)
	r := make([]float64, n)
	for i := range r {
		r[i] = math.Exp(logKappa[i]-kappa500.Ln[i]) * tau.Val[i]
	}
	t[0] = r[0]
	for i := 1; i < n; i++ {
		t[i] = t[i-1] + 0.5*(r[i]+r[i-1])*(tau.Ln[i]-tau.Ln[i-1])
	}
	return t
}

// layer returns the integral of a source function varying linearly from
// s0 to s1 over an optical path dx, attenuated from its s0 end:
// ∫₀^dx (s0 + u(s1-s0)/dx) e^{-u} du.
func layer(s0, s1, dx float64) (contrib, atten float64) {
	if dx <= 0 {
		return 0, 1
	}
	e := math.Exp(-dx)
	om := -math.Expm1(-dx)
	return s0*om + (s1-s0)/dx*(om-dx*e), e
}

// Outward returns the outgoing intensity I⁺(τ, μ) at each depth of
// optical depth scale tau for source function s. Below the bottom depth
// the source function is extrapolated linearly.
func Outward(tau, s []float64, mu float64) []float64 {
	n := len(tau)
	out := make([]float64, n)
	slope := 0.0
	if n > 1 && tau[n-1] > tau[n-2] {
		slope = (s[n-1] - s[n-2]) / (tau[n-1] - tau[n-2]) * mu
	}
	out[n-1] = s[n-1] + slope
	for i := n - 2; i >= 0; i-- {
		c, e := layer(s[i], s[i+1], (tau[i+1]-tau[i])/mu)
		out[i] = out[i+1]*e + c
	}
	return out
}

// Inward returns the incoming intensity I⁻(τ, μ) at each depth. No
// radiation enters at the surface, and the source function is taken as
// constant above the top depth.
func Inward(tau, s []float64, mu float64) []float64 {
	n := len(tau)
	in := make([]float64, n)
	in[0] = s[0] * -math.Expm1(-tau[0]/mu)
	for i := 1; i < n; i++ {
		c, e := layer(s[i], s[i-1], (tau[i]-tau[i-1])/mu)
		in[i] = in[i-1]*e + c
	}
	return in
}

// emergent returns I(0, μ).
func emergent(tau, s []float64, mu float64) float64 {
	out := Outward(tau, s, mu)
	x0 := tau[0] / mu
	return out[0]*math.Exp(-x0) + s[0]*-math.Expm1(-x0)
}

// Intensity returns the emergent specific intensity at each of the angles
// a for source function s on optical depth scale tau.
func Intensity(tau, s []float64, a Angles) []float64 {
	in := make([]float64, a.Len())
	for it, mu := range a.Mu {
		in[it] = emergent(tau, s, mu)
	}
	return in
}

// MeanIntensity returns the angle-averaged intensity J at each depth.
func MeanIntensity(tau, s []float64, a Angles) []float64 {
	j := make([]float64, len(tau))
	for it, mu := range a.Mu {
		if a.Weight[it] == 0 {
			continue
		}
		out := Outward(tau, s, mu)
		in := Inward(tau, s, mu)
		for i := range j {
			j[i] += 0.5 * a.Weight[it] * (out[i] + in[i])
		}
	}
	return j
}
