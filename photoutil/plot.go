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

package photoutil

import (
	"fmt"
	"io"
	"math"

	"github.com/spatialmodel/photosphere"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WriteSpectrumPlot writes a PNG image of the broadened flux of d
// divided by its continuum flux.
func WriteSpectrumPlot(w io.Writer, d *photosphere.Atmosphere) error {
	if d.Spectrum == nil || len(d.Flux) == 0 {
		return fmt.Errorf("photoutil: model has no spectrum to plot")
	}
	lambdas := d.Spectrum.Lambdas
	xy := make(plotter.XYs, len(lambdas))
	for i, l := range lambdas {
		xy[i].X = l * 1.0e7
		if d.ContFlux[i] > 0 {
			xy[i].Y = d.Flux[i] / d.ContFlux[i]
		}
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = fmt.Sprintf("Teff = %.0f K, log g = %.2f", d.Params.Teff, d.Params.LogG)
	p.X.Label.Text = "Wavelength (nm)"
	p.Y.Label.Text = "Normalized flux"
	if err = plotutil.AddLines(p, xy); err != nil {
		return err
	}
	p.Y.Min = 0
	return writePNG(w, p, 8*vg.Inch, 4*vg.Inch)
}

// WriteColumnPlot writes a PNG image of the named structure column
// against log10 of the 500 nm optical depth.
func WriteColumnPlot(w io.Writer, d *photosphere.Atmosphere, name string) error {
	c, err := d.Column(name)
	if err != nil {
		return err
	}
	tau := d.Tau.Val
	xy := make(plotter.XYs, len(tau))
	for i, t := range tau {
		xy[i].X = math.Log10(t)
		xy[i].Y = c.Values[i]
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = c.Desc
	p.X.Label.Text = "log τ(500 nm)"
	p.Y.Label.Text = c.Units
	if c.Name != "Temp" && c.Name != "MMW" && floats.Min(c.Values) > 0 {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}
	if err = plotutil.AddLinePoints(p, xy); err != nil {
		return err
	}
	return writePNG(w, p, 4*vg.Inch, 3*vg.Inch)
}

func writePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
