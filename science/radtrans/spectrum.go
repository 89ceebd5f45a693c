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
	"fmt"

	"github.com/spatialmodel/photosphere/science/lines"
	"github.com/spatialmodel/photosphere/science/phys"
)

// ScatterIterations is the default number of Λ iterations of the
// scattering line source function.
const ScatterIterations = 10

// Input is the atmosphere and opacity a spectrum is computed from.
type Input struct {
	Lambdas  []float64   // cm
	LogKappa [][]float64 // ln κ [cm²/g] indexed [λ][depth]
	Kappa500 phys.Column // 500 nm opacity [cm²/g]
	Tau      phys.Column // 500 nm optical depth
	Temp     phys.Column // K

	// Scatter selects the wavelengths that get the scattering line
	// source function (1-ε)J + εB. If nil, the source function is the
	// Planck function everywhere.
	Scatter []bool

	// LogCont is the continuous part of LogKappa. If set, only the line
	// share of the opacity scatters; otherwise all of it does.
	LogCont [][]float64

	// Iterations is the number of Λ iterations of the scattering source.
	// Zero selects ScatterIterations.
	Iterations int
}

func (in *Input) check() error {
	n := in.Tau.Len()
	if in.Temp.Len() != n || in.Kappa500.Len() != n {
		return fmt.Errorf("radtrans: temperature, opacity and depth columns differ in length")
	}
	if len(in.LogKappa) != len(in.Lambdas) {
		return fmt.Errorf("radtrans: %d wavelengths and %d opacity rows", len(in.Lambdas), len(in.LogKappa))
	}
	if in.Scatter != nil && len(in.Scatter) != len(in.Lambdas) {
		return fmt.Errorf("radtrans: %d wavelengths and %d scattering flags", len(in.Lambdas), len(in.Scatter))
	}
	if in.LogCont != nil && len(in.LogCont) != len(in.Lambdas) {
		return fmt.Errorf("radtrans: %d wavelengths and %d continuum rows", len(in.Lambdas), len(in.LogCont))
	}
	for il, k := range in.LogKappa {
		if len(k) != n || (in.LogCont != nil && len(in.LogCont[il]) != n) {
			return fmt.Errorf("radtrans: opacity row %d has %d depths; want %d", il, len(k), n)
		}
	}
	return nil
}

// Spectrum is the emergent radiation field.
type Spectrum struct {
	Angles    Angles
	Lambdas   []float64   // cm
	Intensity [][]float64 // erg/s/cm²/cm/sr, indexed [λ][angle]
	Flux      []float64   // erg/s/cm²/cm, without broadening
}

// Solve computes the emergent intensity at angles a and the
// disk-integrated flux at each wavelength of in.
func Solve(in *Input, a Angles) (*Spectrum, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	iter := in.Iterations
	if iter <= 0 {
		iter = ScatterIterations
	}
	sp := &Spectrum{
		Angles:    a,
		Lambdas:   append([]float64(nil), in.Lambdas...),
		Intensity: make([][]float64, len(in.Lambdas)),
	}
	n := in.Tau.Len()
	b := make([]float64, n)
	for il, lam := range in.Lambdas {
		tau := OpticalDepth(in.LogKappa[il], in.Kappa500, in.Tau)
		for i := range b {
			b[i] = Planck(in.Temp.Val[i], lam)
		}
		s := b
		if in.Scatter != nil && in.Scatter[il] {
			var eps []float64
			if in.LogCont != nil {
				eps = lines.Thermalization(in.LogKappa[il], in.LogCont[il])
			}
			s = ScatteringSource(tau, b, eps, a, iter)
		}
		sp.Intensity[il] = Intensity(tau, s, a)
	}
	sp.Flux = Flux(sp.Intensity, a)
	return sp, nil
}

// ScatteringSource returns the line source function with coherent
// scattering after iterations Λ iterations starting from the Planck
// function b. eps is the thermal fraction of the extinction at each
// depth, as for lines.SourceFunction.
func ScatteringSource(tau, b, eps []float64, a Angles, iterations int) []float64 {
	s := append([]float64(nil), b...)
	for k := 0; k < iterations; k++ {
		s = lines.SourceFunction(b, MeanIntensity(tau, s, a), eps)
	}
	return s
}

// Broaden returns the flux of s broadened by rotation and
// macroturbulence.
func (s *Spectrum) Broaden(b Broadening) []float64 {
	return Broaden(s.Intensity, s.Lambdas, s.Angles, b)
}
