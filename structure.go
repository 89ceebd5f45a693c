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

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/science/equilibrium"
	"github.com/spatialmodel/photosphere/science/opacity"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refdata"
	"github.com/spatialmodel/photosphere/science/refmodel"
)

// topDepth is the geometric depth assigned to the top of the atmosphere [cm].
const topDepth = 1.0e-19

// Seed returns a function that sets up the optical-depth grid and the
// starting structure rescaled from a reference model.
func Seed() DomainManipulator {
	return func(d *Atmosphere) error {
		p := d.Params
		if err := p.Validate(); err != nil {
			return err
		}
		d.Tau = phys.Tau(p.NumDepths, p.LogTauMin, p.LogTauMax)
		s, err := refmodel.Rescale(p.reference(), d.Tau)
		if err != nil {
			return fmt.Errorf("photosphere: %v", err)
		}
		n := d.Tau.Len()
		d.Temp, d.PGas, d.Pe, d.Ne = s.Temp, s.PGas, s.Pe, s.Ne
		d.PRad = phys.NewColumn(n)
		d.Rho = phys.NewColumn(n)
		d.MMW = phys.NewColumn(n)
		d.Depth = phys.NewColumn(n)
		d.Kappa500 = phys.NewColumn(n)
		d.KappaRos = phys.NewColumn(n)
		d.ContLambdas = opacity.Lambdas(p.LambdaStart, p.LambdaStop, p.LambdaPoints)
		d.setAbundances()
		d.Iterations, d.Done, d.Converged = 0, false, false
		d.log.WithFields(logrus.Fields{
			"reference": s.Reference,
			"Teff":      p.Teff,
			"logg":      p.LogG,
			"depths":    n,
		}).Info("seeded structure")
		return nil
	}
}

// setAbundances sets the element abundances relative to hydrogen, with
// the metals scaled by ZScale and helium set by LogAHe.
func (d *Atmosphere) setAbundances() {
	d.logA = make(map[string]float64)
	d.aTot = 0
	lnZ := math.Log(d.Params.ZScale)
	for _, e := range refdata.Elements() {
		var a float64
		switch e.Symbol {
		case "H":
		case "He":
			a = d.Params.LogAHe
		default:
			a = (refdata.Abundance(e.Symbol).Value-12)*phys.Ln10 + lnZ
		}
		d.logA[e.Symbol] = a
		d.aTot += math.Exp(a)
	}
}

// Structure returns a function that carries out one iteration of the
// structure: the electron pressure, restricted equilibrium, density,
// reference opacities and hydrostatic gas pressure are updated in turn.
func Structure() DomainManipulator {
	return func(d *Atmosphere) error {
		p := d.Params
		d.electronPressure(p.InnerIterations)
		logN := d.numberDensities()
		pops, err := equilibrium.Solve(equilibrium.Restricted(), equilibrium.Input{
			Temp: d.Temp,
			Ne:   d.Ne,
			LogN: logN,
		})
		if err != nil {
			return fmt.Errorf("photosphere: structure iteration %d: %v", d.Iterations+1, err)
		}
		d.density(logN)
		if _, err := d.referenceOpacities(d.opacityInput(pops)); err != nil {
			return err
		}

		old := d.PGas.Copy()
		d.hydrostatic()
		d.depthScale()
		_, _, tempCorr, convection := p.Switches()
		if tempCorr {
			d.temperatureCorrection()
		}
		if convection {
			d.convect()
		}
		d.lastChange = maxRelChange(old.Val, d.PGas.Val)
		d.Iterations++
		return d.checkStructure()
	}
}

// referenceOpacities sets the 500 nm and Rosseland mean opacities of the
// gas described by in and returns its continuous opacity on the
// continuum grid.
func (d *Atmosphere) referenceOpacities(in *opacity.Input) (opacity.Table, error) {
	k500, err := opacity.At500(in)
	if err != nil {
		return nil, fmt.Errorf("photosphere: %v", err)
	}
	cont, err := opacity.Continuum(in, d.ContLambdas)
	if err != nil {
		return nil, fmt.Errorf("photosphere: %v", err)
	}
	ros, err := opacity.Rosseland(cont, d.ContLambdas, d.Temp)
	if err != nil {
		return nil, fmt.Errorf("photosphere: %v", err)
	}
	d.Kappa500, d.KappaRos = k500, ros
	return cont, nil
}

// electronPressure iterates the electron pressure at each depth toward
// charge balance with the gas pressure, counting single ionization of
// the donor elements only.
func (d *Atmosphere) electronPressure(iterations int) {
	donors := equilibrium.Restricted().Elements
	logPhi := make([]float64, len(donors))
	for i := 0; i < d.Len(); i++ {
		t, pg := d.Temp.Val[i], d.PGas.Val[i]
		kt := phys.K * t
		base := math.Ln2 + 1.5*math.Log(2*math.Pi*phys.Me*kt/(phys.H*phys.H)) + math.Log(kt)
		for j, e := range donors {
			chi := refdata.IonizationEnergy(refdata.Species{Element: e, Stage: 1}).Value
			lu1 := refdata.LogPartitionFn(refdata.Species{Element: e, Stage: 1}, t).Value
			lu2 := refdata.LogPartitionFn(refdata.Species{Element: e, Stage: 2}, t).Value
			logPhi[j] = base + lu2 - lu1 - chi*phys.EV/kt
		}
		pe := d.Pe.Val[i]
		if !(pe > 0) || pe > pg {
			pe = 1.0e-4 * pg
		}
		for k := 0; k < iterations; k++ {
			var num, den float64
			for j, e := range donors {
				x := math.Exp(logPhi[j] - math.Log(pe))
				f := x / (1 + x)
				a := math.Exp(d.logA[e])
				num += a * f
				den += a * (1 + f)
			}
			next := pg * num / den
			if next < phys.Floor*pg {
				next = phys.Floor * pg
			}
			pe = math.Sqrt(pe * next)
		}
		d.Pe.Set(i, pe)
		d.Ne.Set(i, pe/kt)
	}
}

// numberDensities returns the natural-log total number density [cm⁻³] of
// every element at every depth from the gas and electron pressures.
func (d *Atmosphere) numberDensities() map[string][]float64 {
	n := d.Len()
	logN := make(map[string][]float64, len(d.logA))
	for e := range d.logA {
		logN[e] = make([]float64, n)
	}
	lnATot := math.Log(d.aTot)
	for i := 0; i < n; i++ {
		pe := math.Min(d.Pe.Val[i], 0.5*d.PGas.Val[i])
		lnNH := math.Log(d.PGas.Val[i]-pe) - phys.LogK - d.Temp.Ln[i] - lnATot
		for e, a := range d.logA {
			logN[e][i] = lnNH + a
		}
	}
	return logN
}

// density sets the mass density and mean molecular weight from the
// element number densities logN.
func (d *Atmosphere) density(logN map[string][]float64) {
	for i := 0; i < d.Len(); i++ {
		var rho float64
		for _, e := range refdata.Elements() {
			if ln, ok := logN[e.Symbol]; ok {
				rho += math.Exp(ln[i]) * e.Mass() * phys.Amu
			}
		}
		d.Rho.Set(i, rho)
		d.MMW.Set(i, rho*phys.K*d.Temp.Val[i]/(d.PGas.Val[i]*phys.Amu))
	}
}

// hydrostatic integrates dP/dτ = g/κ₅₀₀ for the total pressure, using the
// current total pressure under the square root, and splits the result
// into gas and radiation pressure.
func (d *Atmosphere) hydrostatic() {
	n := d.Len()
	g := math.Pow(10, d.Params.LogG)
	radFac := math.Log(4 * phys.Sigma / (3 * phys.C))
	lnPTot := make([]float64, n)
	for i := 0; i < n; i++ {
		d.PRad.SetLn(i, radFac+4*d.Temp.Ln[i])
		lnPTot[i] = math.Log(d.PGas.Val[i] + d.PRad.Val[i])
	}
	f := func(i int) float64 {
		return math.Exp(d.Tau.Ln[i] + 0.5*lnPTot[i] - d.Kappa500.Ln[i])
	}

	sum := 2.0 / 3.0 * math.Pow(d.PGas.Val[0], 1.5) / g
	for i := 0; i < n; i++ {
		switch {
		case i == 1:
			sum += f(1) * (d.Tau.Ln[1] - d.Tau.Ln[0])
		case i > 1:
			sum += 0.5 * (f(i) + f(i-1)) * (d.Tau.Ln[i] - d.Tau.Ln[i-1])
		}
		p := math.Pow(1.5*g*sum, 2.0/3.0)
		frac := math.Min(d.PRad.Val[i]/p, 0.5)
		d.PGas.Set(i, p*(1-frac))
	}
}

// depthScale integrates dz = dτ/(κ₅₀₀ρ) from the top.
func (d *Atmosphere) depthScale() {
	f := func(i int) float64 {
		return math.Exp(d.Tau.Ln[i] - d.Kappa500.Ln[i] - d.Rho.Ln[i])
	}
	z := topDepth
	d.Depth.Set(0, z)
	for i := 1; i < d.Len(); i++ {
		z += 0.5 * (f(i) + f(i-1)) * (d.Tau.Ln[i] - d.Tau.Ln[i-1])
		d.Depth.Set(i, z)
	}
}

func maxRelChange(old, cur []float64) float64 {
	var m float64
	for i := range old {
		if c := math.Abs(cur[i]-old[i]) / old[i]; c > m || math.IsNaN(c) {
			m = c
		}
	}
	return m
}

// checkStructure returns an error if any structure column holds a value
// that is not finite and positive.
func (d *Atmosphere) checkStructure() error {
	for _, c := range []struct {
		name string
		col  phys.Column
	}{
		{"temperature", d.Temp},
		{"gas pressure", d.PGas},
		{"electron pressure", d.Pe},
		{"mass density", d.Rho},
		{"500 nm opacity", d.Kappa500},
	} {
		for i, v := range c.col.Val {
			if !(v > 0) || math.IsInf(v, 0) {
				return fmt.Errorf("photosphere: %s is %g at depth %d (τ=%g)", c.name, v, i, d.Tau.Val[i])
			}
		}
	}
	return nil
}
