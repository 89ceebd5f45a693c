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
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/science/phys"
)

// Run computes the model atmosphere and spectrum for p. Cancelling ctx
// stops the run between steps.
func Run(ctx context.Context, p Params, log logrus.FieldLogger) (*Atmosphere, error) {
	d := NewAtmosphere(p, log)
	d.InitFuncs = []DomainManipulator{Seed()}
	d.RunFuncs = []DomainManipulator{
		CheckContext(ctx),
		Structure(),
		Log(d.log),
		ConvergenceCheck(),
	}
	d.CleanupFuncs = []DomainManipulator{
		CheckContext(ctx),
		Equilibrium(),
		Continuum(),
	}
	d.CleanupFuncs = append(d.CleanupFuncs, Synthesis(ctx)...)
	return d, d.execute()
}

// Resynthesize restores the structure written by Save from r and
// computes its spectrum with the line, broadening and mode parameters
// of p.
func Resynthesize(ctx context.Context, r io.Reader, p Params, log logrus.FieldLogger) (*Atmosphere, error) {
	d := NewAtmosphere(p, log)
	d.InitFuncs = []DomainManipulator{Load(r)}
	d.CleanupFuncs = Synthesis(ctx)
	return d, d.execute()
}

// Synthesis returns the manipulators that compute the spectrum and
// diagnostics of an atmosphere whose populations and continuum opacity
// are known.
func Synthesis(ctx context.Context) []DomainManipulator {
	return []DomainManipulator{
		CheckContext(ctx),
		Lines(),
		CheckContext(ctx),
		Spectrum(),
		Diagnostics(),
	}
}

func (d *Atmosphere) execute() error {
	if err := d.Init(); err != nil {
		return fmt.Errorf("photosphere: problem initializing model: %v", err)
	}
	if err := d.Run(); err != nil {
		return fmt.Errorf("photosphere: problem iterating structure: %v", err)
	}
	if err := d.Cleanup(); err != nil {
		return fmt.Errorf("photosphere: problem computing spectrum: %v", err)
	}
	return nil
}

// CheckContext returns a function that returns the error of ctx once it
// is done.
func CheckContext(ctx context.Context) DomainManipulator {
	return func(d *Atmosphere) error {
		return ctx.Err()
	}
}

// ConvergenceCheck returns a function that sets d.Done once the
// structure has been iterated Params.OuterIterations times or the gas
// pressure has changed by less than Params.Tolerance.
func ConvergenceCheck() DomainManipulator {
	return func(d *Atmosphere) error {
		p := d.Params
		if p.Tolerance > 0 && d.Iterations > 0 && d.lastChange < p.Tolerance {
			d.Converged = true
			d.Done = true
		}
		if d.Iterations >= p.OuterIterations {
			d.Done = true
		}
		return nil
	}
}

// Log returns a function that logs the progress of the structure
// iteration to log.
func Log(log logrus.FieldLogger) DomainManipulator {
	startTime := time.Now()
	stepTime := time.Now()
	return func(d *Atmosphere) error {
		log.WithFields(logrus.Fields{
			"iteration": d.Iterations,
			"walltime":  time.Since(startTime).Seconds(),
			"Δwalltime": time.Since(stepTime).Seconds(),
			"ΔPgas":     d.lastChange,
			"Pgas(τ=1)": phys.Interpol(d.Tau.Ln, d.PGas.Val, 0),
		}).Info("structure iteration")
		stepTime = time.Now()
		return nil
	}
}
