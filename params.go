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
	"fmt"
	"math"

	"github.com/spatialmodel/photosphere/science/lines"
	"github.com/spatialmodel/photosphere/science/radtrans"
	"github.com/spatialmodel/photosphere/science/refmodel"
)

// Mode selects the physics of a run.
type Mode string

const (
	// Fast uses the Gaussian plus Lorentzian line profile and no
	// scattering.
	Fast Mode = "fast"
	// Real uses the Voigt profile and the scattering source function.
	Real Mode = "real"
	// Custom takes each switch from Params.
	Custom Mode = "custom"
)

// Limits of the accepted parameters.
const (
	MinTeff          = 3000.0  // K
	MaxTeff          = 50000.0 // K
	MaxLogG          = 7.0
	MinLogZ, MaxLogZ = -3.0, 1.0 // metallicity [dex]
	MinIterations    = 5
	MaxIterations    = 12
	MinMass, MaxMass = 0.1, 20.0 // solar masses
)

// MinLogG returns the lowest surface gravity accepted at effective
// temperature teff.
func MinLogG(teff float64) float64 {
	switch {
	case teff <= 4000:
		return 0
	case teff <= 5000:
		return 1
	case teff <= 6000:
		return 1.5
	case teff <= 7000:
		return 2
	case teff < 9000:
		return 2.5
	default:
		return 3
	}
}

// Params are the inputs of a model.
type Params struct {
	Teff   float64 // effective temperature [K]
	LogG   float64 // log10 of surface gravity [cm/s²]
	ZScale float64 // metallicity relative to solar, linear
	LogAHe float64 // natural log of the helium abundance relative to hydrogen
	Mass   float64 // solar masses

	Mode Mode
	// The physics switches are used when Mode is Custom.
	Voigt      bool
	Scattering bool
	TempCorr   bool
	Convection bool
	Molecules  bool

	LogFudge float64 // extra continuous opacity [dex]

	// OuterIterations is the number of structure iterations and
	// InnerIterations the number of electron-pressure iterations inside
	// each of them.
	OuterIterations int
	InnerIterations int
	// Tolerance, if > 0, ends the structure iteration early once the
	// largest relative change in the gas pressure falls below it.
	Tolerance float64

	NumDepths            int
	LogTauMin, LogTauMax float64 // log10 of the 500 nm optical depth range

	// LambdaStart and LambdaStop bound the continuum grid [nm], which has
	// LambdaPoints points.
	LambdaStart, LambdaStop float64
	LambdaPoints            int

	XiT float64 // microturbulent velocity [km/s]

	// Lines replaces the curated line list if not nil; Extra lines are
	// added to it.
	Lines []lines.Line
	Extra []lines.Line

	Broadening radtrans.Broadening

	// FilterLambda and FilterSigma are the center and width [nm] of the
	// Gaussian filter applied to the specific intensity.
	FilterLambda, FilterSigma float64
}

// DefaultParams returns the parameters of a solar model.
func DefaultParams() Params {
	return Params{
		Teff:            5778,
		LogG:            4.44,
		ZScale:          1,
		LogAHe:          refmodel.SolarLogAHe,
		Mass:            1,
		Mode:            Real,
		Molecules:       true,
		OuterIterations: MaxIterations,
		InnerIterations: MaxIterations,
		NumDepths:       48,
		LogTauMin:       -6,
		LogTauMax:       2,
		LambdaStart:     260,
		LambdaStop:      2600,
		LambdaPoints:    200,
		XiT:             1,
		Broadening:      radtrans.Broadening{VEq: 2, Inclination: 90, VMacro: 1},
		FilterLambda:    656.282,
		FilterSigma:     0.1,
	}
}

// Switches returns the physics selected by the mode of p.
func (p Params) Switches() (voigt, scattering, tempCorr, convection bool) {
	switch p.Mode {
	case Fast:
		return false, false, false, false
	case Real:
		return true, true, false, false
	default:
		return p.Voigt, p.Scattering, p.TempCorr, p.Convection
	}
}

// Validate checks that p can be computed.
func (p Params) Validate() error {
	for _, v := range []struct {
		name     string
		val      float64
		min, max float64
	}{
		{"Teff", p.Teff, MinTeff, MaxTeff},
		{"LogG", p.LogG, MinLogG(p.Teff), MaxLogG},
		{"Mass", p.Mass, MinMass, MaxMass},
		{"log10 ZScale", math.Log10(p.ZScale), MinLogZ, MaxLogZ},
	} {
		if math.IsNaN(v.val) || v.val < v.min || v.val > v.max {
			return fmt.Errorf("photosphere: %s=%g is outside [%g, %g]", v.name, v.val, v.min, v.max)
		}
	}
	switch p.Mode {
	case Fast, Real, Custom:
	default:
		return fmt.Errorf("photosphere: invalid mode %q", p.Mode)
	}
	if p.OuterIterations < MinIterations || p.OuterIterations > MaxIterations ||
		p.InnerIterations < MinIterations || p.InnerIterations > MaxIterations {
		return fmt.Errorf("photosphere: iterations must be in [%d, %d]; got %d outer and %d inner",
			MinIterations, MaxIterations, p.OuterIterations, p.InnerIterations)
	}
	if p.NumDepths < 2 || !(p.LogTauMax > p.LogTauMin) {
		return fmt.Errorf("photosphere: invalid depth grid: %d points over [%g, %g]",
			p.NumDepths, p.LogTauMin, p.LogTauMax)
	}
	if p.LambdaPoints < 2 || !(p.LambdaStop > p.LambdaStart) || p.LambdaStart <= 0 {
		return fmt.Errorf("photosphere: invalid wavelength grid: %d points over [%g, %g] nm",
			p.LambdaPoints, p.LambdaStart, p.LambdaStop)
	}
	if p.XiT < 0 || p.Broadening.VEq < 0 || p.Broadening.VMacro < 0 {
		return fmt.Errorf("photosphere: velocities must not be negative")
	}
	for _, l := range append(append([]lines.Line(nil), p.Lines...), p.Extra...) {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p Params) reference() refmodel.Params {
	return refmodel.Params{Teff: p.Teff, LogG: p.LogG, ZScale: p.ZScale, LogAHe: p.LogAHe}
}

func (p Params) lineConfig(logFudge float64) lines.Config {
	voigt, _, _, _ := p.Switches()
	return lines.Config{
		Teff:      p.Teff,
		XiT:       p.XiT,
		Voigt:     voigt,
		Molecules: p.Molecules,
		LogFudge:  logFudge,
		Lines:     p.Lines,
		Extra:     p.Extra,
	}
}
