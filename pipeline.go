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
	"github.com/spatialmodel/photosphere/science/diagnostics"
	"github.com/spatialmodel/photosphere/science/equilibrium"
	"github.com/spatialmodel/photosphere/science/lines"
	"github.com/spatialmodel/photosphere/science/opacity"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/radtrans"
)

// Equilibrium returns a function that solves the full ionization and
// molecular equilibrium of the converged structure, re-summing the
// electron density.
func Equilibrium() DomainManipulator {
	return func(d *Atmosphere) error {
		p := d.Params
		d.electronPressure(p.InnerIterations)
		logN := d.numberDensities()
		cfg := equilibrium.Full(p.InnerIterations)
		cfg.Tolerance = p.Tolerance
		res, err := equilibrium.Solve(cfg, equilibrium.Input{
			Temp: d.Temp,
			Ne:   d.Ne,
			LogN: logN,
		})
		if err != nil {
			return fmt.Errorf("photosphere: %v", err)
		}
		d.Pops = res
		for i := 0; i < d.Len(); i++ {
			d.Ne.SetLn(i, res.Ne.Ln[i])
			d.Pe.SetLn(i, res.Ne.Ln[i]+phys.LogK+d.Temp.Ln[i])
		}
		d.density(logN)
		if len(res.Report.Defaulted) > 0 {
			d.warn(logrus.Fields{"species": res.Report.Defaulted}, "missing reference data; defaults used")
		}
		d.log.WithFields(logrus.Fields{
			"iterations": res.Iterations,
			"converged":  res.Converged,
			"elements":   len(res.Stages),
			"molecules":  len(res.Molecules),
		}).Debug("solved equilibrium")
		return nil
	}
}

// Continuum returns a function that computes the continuous opacity of
// the final populations and seeds the master opacity table with it.
func Continuum() DomainManipulator {
	return func(d *Atmosphere) error {
		if d.Pops == nil {
			return fmt.Errorf("photosphere: continuum opacity needs the equilibrium populations")
		}
		cont, err := d.referenceOpacities(d.opacityInput(d.Pops))
		if err != nil {
			return err
		}
		d.Continuum = cont
		d.depthScale()
		d.Opacity, err = lines.NewTable(d.ContLambdas, cont)
		if err != nil {
			return fmt.Errorf("photosphere: %v", err)
		}
		return d.checkStructure()
	}
}

func (d *Atmosphere) opacityInput(pops *equilibrium.Result) *opacity.Input {
	return &opacity.Input{
		Temp:     d.Temp,
		Pe:       d.Pe,
		Ne:       d.Ne,
		Rho:      d.Rho,
		Pops:     pops,
		LogFudge: opacity.Fudge(d.Params.Teff, d.Params.LogFudge),
	}
}

func (d *Atmosphere) state() *lines.State {
	return &lines.State{Tau: d.Tau, Temp: d.Temp, PGas: d.PGas, Ne: d.Ne, Rho: d.Rho}
}

// Lines returns a function that merges the line and band opacity into
// the master table.
func Lines() DomainManipulator {
	return func(d *Atmosphere) error {
		if d.Opacity == nil {
			return fmt.Errorf("photosphere: line synthesis needs the continuum opacity table")
		}
		cfg := d.Params.lineConfig(opacity.Fudge(d.Params.Teff, d.Params.LogFudge))
		if err := lines.Synthesize(cfg, d.Opacity, d.state(), d.Pops, d.log); err != nil {
			return fmt.Errorf("photosphere: %v", err)
		}
		return nil
	}
}

// Spectrum returns a function that computes the emergent intensity and
// flux on the master wavelength grid, with and without the lines.
func Spectrum() DomainManipulator {
	return func(d *Atmosphere) error {
		if d.Opacity == nil {
			return fmt.Errorf("photosphere: spectrum needs the opacity table")
		}
		a := radtrans.NewAngles(radtrans.NumAngles)
		_, scattering, _, _ := d.Params.Switches()
		cont := d.transferInput(d.Opacity.Lambdas(), d.Opacity.Continuum())
		var err error
		if d.ContSpectrum, err = radtrans.Solve(cont, a); err != nil {
			return fmt.Errorf("photosphere: %v", err)
		}
		full := d.transferInput(d.Opacity.Lambdas(), d.Opacity.LogKappa())
		if scattering {
			full.Scatter = d.Opacity.Covered()
			full.LogCont = cont.LogKappa
		}
		if d.Spectrum, err = radtrans.Solve(full, a); err != nil {
			return fmt.Errorf("photosphere: %v", err)
		}
		d.Flux = d.Spectrum.Broaden(d.Params.Broadening)
		d.ContFlux = d.ContSpectrum.Broaden(d.Params.Broadening)
		d.log.WithFields(logrus.Fields{
			"wavelengths": len(d.Spectrum.Lambdas),
			"scattering":  scattering,
			"vsini":       d.Params.Broadening.VSini(),
		}).Debug("computed spectrum")
		return nil
	}
}

func (d *Atmosphere) transferInput(lambdas []float64, logKappa [][]float64) *radtrans.Input {
	return &radtrans.Input{
		Lambdas:  lambdas,
		LogKappa: logKappa,
		Kappa500: d.Kappa500,
		Tau:      d.Tau,
		Temp:     d.Temp,
	}
}

// Diagnostics returns a function that computes the colors, the
// isolated line profiles and equivalent widths, the limb darkening and
// the disk-filter intensity. Diagnostics the wavelength grid does not
// cover are skipped with a warning.
func Diagnostics() DomainManipulator {
	return func(d *Atmosphere) error {
		if d.Spectrum == nil {
			return fmt.Errorf("photosphere: diagnostics need the spectrum")
		}
		p := d.Params
		lam := d.Spectrum.Lambdas
		var err error
		if d.Colors, err = diagnostics.Colors(lam, d.Flux); err != nil {
			d.warn(logrus.Fields{"error": err}, "colors not computed")
		}
		if d.LimbDarkening, err = diagnostics.LimbDarkening(d.ContSpectrum.Angles.Mu, d.ContSpectrum.Intensity); err != nil {
			return fmt.Errorf("photosphere: %v", err)
		}
		if d.DiskIntensity, err = diagnostics.DiskFilter(lam, d.Spectrum.Intensity, p.FilterLambda, p.FilterSigma); err != nil {
			d.warn(logrus.Fields{"error": err}, "disk filter not computed")
		}
		d.LineSpectra = make(map[string]*LineSpectrum)
		for _, id := range d.Opacity.IDs() {
			ls, err := d.lineSpectrum(id)
			if err != nil {
				return err
			}
			d.LineSpectra[id] = ls
			d.log.WithFields(logrus.Fields{
				"line":     id,
				"W(pm)":    ls.EqWidth,
				"residual": ls.Residual,
			}).Debug("line")
		}
		return nil
	}
}

// lineSpectrum computes the unbroadened flux of contribution id alone on
// top of the continuum.
func (d *Atmosphere) lineSpectrum(id string) (*LineSpectrum, error) {
	a := d.Spectrum.Angles
	_, scattering, _, _ := d.Params.Switches()
	lam, logK, err := d.Opacity.Only(id)
	if err != nil {
		return nil, fmt.Errorf("photosphere: %v", err)
	}
	contK := d.continuumAt(lam)
	in := d.transferInput(lam, logK)
	if scattering {
		in.Scatter = make([]bool, len(lam))
		for i := range in.Scatter {
			in.Scatter[i] = true
		}
		in.LogCont = contK
	}
	line, err := radtrans.Solve(in, a)
	if err != nil {
		return nil, fmt.Errorf("photosphere: %s: %v", id, err)
	}
	cont, err := radtrans.Solve(d.transferInput(lam, contK), a)
	if err != nil {
		return nil, fmt.Errorf("photosphere: %s: %v", id, err)
	}
	ls := &LineSpectrum{
		Lambdas:  lam,
		Flux:     line.Flux,
		Cont:     cont.Flux,
		Residual: math.Inf(1),
	}
	if ls.EqWidth, err = diagnostics.EqWidth(lam, line.Flux, cont.Flux); err != nil {
		return nil, fmt.Errorf("photosphere: %s: %v", id, err)
	}
	for i := range lam {
		ls.Residual = math.Min(ls.Residual, line.Flux[i]/cont.Flux[i])
	}
	return ls, nil
}

// continuumAt interpolates the continuous opacity to lambdas [cm].
func (d *Atmosphere) continuumAt(lambdas []float64) [][]float64 {
	col := make([]float64, len(d.ContLambdas))
	k := make([][]float64, len(lambdas))
	for il := range k {
		k[il] = make([]float64, d.Len())
	}
	for i := 0; i < d.Len(); i++ {
		for j := range col {
			col[j] = d.Continuum[j][i]
		}
		for il, l := range lambdas {
			k[il][i] = phys.Interpol(d.ContLambdas, col, l)
		}
	}
	return k
}
