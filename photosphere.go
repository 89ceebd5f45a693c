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

// Package photosphere computes one-dimensional LTE model atmospheres of
// stellar photospheres in hydrostatic equilibrium on a multi-gray
// temperature structure, and synthesizes the emergent spectrum, line
// profiles and colors from them.
//
// A model is built by a chain of DomainManipulators: InitFuncs seed the
// structure, RunFuncs iterate it until Done is set, and CleanupFuncs
// compute the final populations, opacity and spectrum.
package photosphere

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/science/diagnostics"
	"github.com/spatialmodel/photosphere/science/equilibrium"
	"github.com/spatialmodel/photosphere/science/lines"
	"github.com/spatialmodel/photosphere/science/opacity"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/radtrans"
)

// Version is the version of the model.
const Version = "0.3.0"

// Atmosphere holds the current state of the model.
type Atmosphere struct {
	Params Params

	Tau      phys.Column `desc:"Optical depth at 500 nm" units:"dimensionless"`
	Temp     phys.Column `desc:"Temperature" units:"K"`
	PGas     phys.Column `desc:"Gas pressure" units:"dyn/cm²"`
	PRad     phys.Column `desc:"Radiation pressure" units:"dyn/cm²"`
	Pe       phys.Column `desc:"Electron pressure" units:"dyn/cm²"`
	Ne       phys.Column `desc:"Electron number density" units:"cm⁻³"`
	Rho      phys.Column `desc:"Mass density" units:"g/cm³"`
	MMW      phys.Column `desc:"Mean molecular weight" units:"amu"`
	Depth    phys.Column `desc:"Geometric depth below the top" units:"cm"`
	Kappa500 phys.Column `desc:"Continuous opacity at 500 nm" units:"cm²/g"`
	KappaRos phys.Column `desc:"Rosseland mean opacity" units:"cm²/g"`

	// Pops are the ionization and molecular populations of the final
	// structure.
	Pops *equilibrium.Result

	// ContLambdas is the continuum wavelength grid [cm] and Continuum the
	// continuum opacity on it.
	ContLambdas []float64
	Continuum   opacity.Table

	// Opacity is the master wavelength/opacity table.
	Opacity *lines.Table

	// ContSpectrum and Spectrum are the emergent radiation without and
	// with line opacity on the master wavelength grid. Flux and ContFlux
	// are their broadened fluxes [erg/s/cm²/cm].
	ContSpectrum, Spectrum *radtrans.Spectrum
	Flux, ContFlux         []float64

	// LineSpectra are the isolated profiles of each synthesized line.
	LineSpectra map[string]*LineSpectrum

	Colors []diagnostics.Color
	// LimbDarkening is the linear limb-darkening coefficient at each
	// master wavelength.
	LimbDarkening []float64
	// DiskIntensity is the filtered intensity at each angle.
	DiskIntensity []float64

	// Iterations is the number of structure iterations performed.
	Iterations int
	// Converged is true if the structure met the tolerance before the
	// iteration limit.
	Converged bool
	// Done specifies that the structure iteration is finished.
	Done bool

	// Warnings are the problems that did not stop the model.
	Warnings []string

	// InitFuncs are functions to be called in the given order
	// at the beginning of the simulation.
	InitFuncs []DomainManipulator

	// RunFuncs are functions to be called in the given order repeatedly
	// until "Done" is true.
	RunFuncs []DomainManipulator

	// CleanupFuncs are functions to be called in the given order
	// after the structure iteration has finished.
	CleanupFuncs []DomainManipulator

	// logA is the natural-log abundance of each element relative to
	// hydrogen by number, and aTot the sum of the linear abundances.
	logA map[string]float64
	aTot float64

	// lastChange is the largest relative gas-pressure change of the last
	// structure iteration.
	lastChange float64

	log logrus.FieldLogger
}

// LineSpectrum is the spectrum of one line computed without its
// neighbours.
type LineSpectrum struct {
	Lambdas  []float64 // cm
	Flux     []float64 // erg/s/cm²/cm
	Cont     []float64 // continuum flux [erg/s/cm²/cm]
	EqWidth  float64   // pm
	Residual float64   // flux at line center relative to the continuum
}

// DomainManipulator is a function that changes the state of an
// atmosphere.
type DomainManipulator func(d *Atmosphere) error

// NewAtmosphere returns an empty atmosphere for p. If log is nil the
// standard logger is used.
func NewAtmosphere(p Params, log logrus.FieldLogger) *Atmosphere {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Atmosphere{Params: p, log: log}
}

// Init initializes the model by running d.InitFuncs.
func (d *Atmosphere) Init() error {
	if d.log == nil {
		d.log = logrus.StandardLogger()
	}
	for _, f := range d.InitFuncs {
		if err := f(d); err != nil {
			return err
		}
	}
	return nil
}

// Run carries out the structure iteration by running d.RunFuncs until
// d.Done is true.
func (d *Atmosphere) Run() error {
	for !d.Done {
		if len(d.RunFuncs) == 0 {
			return fmt.Errorf("photosphere: no RunFuncs and Done is false")
		}
		for _, f := range d.RunFuncs {
			if err := f(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// Cleanup finishes the model by running d.CleanupFuncs.
func (d *Atmosphere) Cleanup() error {
	for _, f := range d.CleanupFuncs {
		if err := f(d); err != nil {
			return err
		}
	}
	return nil
}

// Log returns the logger of d.
func (d *Atmosphere) Log() logrus.FieldLogger { return d.log }

// warn records and logs a problem that does not stop the model.
func (d *Atmosphere) warn(fields logrus.Fields, msg string) {
	d.Warnings = append(d.Warnings, msg)
	d.log.WithFields(fields).Warn(msg)
}

// Len returns the number of depth points.
func (d *Atmosphere) Len() int { return d.Tau.Len() }
