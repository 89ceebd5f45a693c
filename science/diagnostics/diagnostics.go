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

// Package diagnostics derives observables from a computed spectrum:
// equivalent widths, photometric colors, limb-darkening coefficients and
// narrow-band disk intensity profiles.
package diagnostics

import (
	"fmt"
	"math"

	"github.com/spatialmodel/photosphere/science/phys"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Filter is a photometric transmission curve.
type Filter struct {
	Name   string
	Lambda []float64 // nm
	Trans  []float64
}

// Filters returns the Bessell UxBxBVRI and Bessell & Brett JHK filters.
func Filters() []Filter { return filterCurves }

// EqWidth returns the equivalent width [pm] of the line in flux relative
// to the continuum flux cont, both sampled at lambdas [cm].
func EqWidth(lambdas, flux, cont []float64) (float64, error) {
	if len(flux) != len(lambdas) || len(cont) != len(lambdas) {
		return 0, fmt.Errorf("diagnostics: %d wavelengths, %d flux and %d continuum values",
			len(lambdas), len(flux), len(cont))
	}
	if len(lambdas) < 2 {
		return 0, fmt.Errorf("diagnostics: equivalent width needs at least 2 wavelengths")
	}
	d := make([]float64, len(flux))
	for i := range d {
		d[i] = 1 - flux[i]/cont[i]
	}
	return integrate.Trapezoidal(lambdas, d) * 1.0e10, nil
}

// BandFlux returns the flux through filter f of the spectral energy
// distribution flux sampled at lambdas [cm]. The distribution must cover
// the filter.
func BandFlux(f Filter, lambdas, flux []float64) (float64, error) {
	lo, hi := f.Lambda[0]*1.0e-7, f.Lambda[len(f.Lambda)-1]*1.0e-7
	if len(lambdas) == 0 || lambdas[0] > lo || lambdas[len(lambdas)-1] < hi {
		return 0, fmt.Errorf("diagnostics: spectrum does not cover the %s band", f.Name)
	}
	lnF := make([]float64, len(flux))
	for i, v := range flux {
		lnF[i] = math.Log(v)
	}
	y := make([]float64, len(f.Lambda))
	for i, l := range f.Lambda {
		y[i] = f.Trans[i] * math.Exp(phys.Interpol(lambdas, lnF, l*1.0e-7))
	}
	return integrate.Trapezoidal(f.Lambda, y), nil
}

// Color is a photometric color index [mag].
type Color struct {
	Name  string
	Value float64
}

// colorDefs holds the bluer and redder filter of each color index and its
// calibration offset, the raw color of Vega.
var colorDefs = []struct {
	name      string
	blue, red string
	vega      float64
}{
	{"Ux-Bx", "Ux", "Bx", 0.49},
	{"B-V", "B", "V", -0.58},
	{"V-R", "V", "R", 0.11},
	{"V-I", "V", "I", -0.51},
	{"R-I", "R", "I", -0.62},
	{"V-K", "V", "K", -3.17},
	{"J-K", "J", "K", -1.54},
}

// Colors returns the Vega-calibrated color indices of the spectral
// energy distribution flux sampled at lambdas [cm].
func Colors(lambdas, flux []float64) ([]Color, error) {
	band := make(map[string]float64)
	for _, f := range filterCurves {
		v, err := BandFlux(f, lambdas, flux)
		if err != nil {
			return nil, err
		}
		band[f.Name] = v
	}
	c := make([]Color, len(colorDefs))
	for i, d := range colorDefs {
		c[i] = Color{
			Name:  d.name,
			Value: 2.5*math.Log10(band[d.red]/band[d.blue]) - d.vega,
		}
	}
	return c, nil
}

// LimbDarkening returns the linear limb-darkening coefficient ε of
// I(μ)/I(1) = 1 - ε(1 - μ) at each wavelength, fit by least squares to
// intens, indexed [λ][angle]. The first angle must be disk center.
func LimbDarkening(mu []float64, intens [][]float64) ([]float64, error) {
	if len(mu) < 2 || mu[0] != 1 {
		return nil, fmt.Errorf("diagnostics: limb darkening needs disk center and at least one more angle")
	}
	n := len(mu) - 1
	a := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		a.Set(i, 0, 1-mu[i+1])
	}
	eps := make([]float64, len(intens))
	b := mat.NewDense(n, 1, nil)
	var x mat.Dense
	for il, in := range intens {
		if len(in) != len(mu) {
			return nil, fmt.Errorf("diagnostics: intensity %d has %d angles; want %d", il, len(in), len(mu))
		}
		for i := 0; i < n; i++ {
			b.Set(i, 0, 1-in[i+1]/in[0])
		}
		if err := x.Solve(a, b); err != nil {
			return nil, fmt.Errorf("diagnostics: limb darkening fit: %v", err)
		}
		eps[il] = x.At(0, 0)
	}
	return eps, nil
}

// diskPoints is the number of wavelength samples across a disk filter.
const diskPoints = 101

// diskWidth is the disk filter half width [σ].
const diskWidth = 2.5

// DiskFilter returns the specific intensity at each angle seen through a
// Gaussian filter centered on center [nm] with standard deviation sigma
// [nm]. intens is indexed [λ][angle] and sampled at lambdas [cm].
func DiskFilter(lambdas []float64, intens [][]float64, center, sigma float64) ([]float64, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("diagnostics: invalid disk filter width %g nm", sigma)
	}
	lo, hi := (center-diskWidth*sigma)*1.0e-7, (center+diskWidth*sigma)*1.0e-7
	if len(lambdas) == 0 || lambdas[0] > lo || lambdas[len(lambdas)-1] < hi {
		return nil, fmt.Errorf("diagnostics: spectrum does not cover the disk filter at %g nm", center)
	}
	g := distuv.Normal{Mu: center * 1.0e-7, Sigma: sigma * 1.0e-7}
	x := make([]float64, diskPoints)
	w := make([]float64, diskPoints)
	for i := range x {
		x[i] = lo + (hi-lo)*float64(i)/(diskPoints-1)
		w[i] = g.Prob(x[i])
	}
	norm := integrate.Trapezoidal(x, w)
	nAngles := len(intens[0])
	out := make([]float64, nAngles)
	col := make([]float64, len(lambdas))
	y := make([]float64, diskPoints)
	for it := 0; it < nAngles; it++ {
		for il := range col {
			col[il] = intens[il][it]
		}
		for i, l := range x {
			y[i] = w[i] * phys.Interpol(lambdas, col, l)
		}
		out[it] = integrate.Trapezoidal(x, y) / norm
	}
	return out, nil
}
