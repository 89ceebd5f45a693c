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
	"math"
	"sort"

	"github.com/spatialmodel/photosphere"
	"github.com/spatialmodel/photosphere/science/diagnostics"
)

// Result is the summary of a model written by the run command and
// returned by the model service.
type Result struct {
	Teff, LogG, Metallicity, Mass float64
	Mode                          photosphere.Mode

	Clamped    ClampReport `json:",omitempty"`
	Iterations int
	Converged  bool
	Warnings   []string `json:",omitempty"`

	// Radius and Luminosity are in solar units.
	Radius, Luminosity float64

	Columns []photosphere.OutputColumn

	// Lambdas [nm], Flux, and ContFlux [erg/s/cm²/cm] are the broadened
	// spectrum with and without lines.
	Lambdas, Flux, ContFlux []float64

	Lines         []LineResult
	Colors        []diagnostics.Color
	LimbDarkening []float64
	DiskIntensity []float64
}

// LineResult is the strength of one synthesized line.
type LineResult struct {
	ID       string
	EqWidth  float64 // pm
	Residual float64
}

// NewResult summarizes d. report may be nil.
func NewResult(d *photosphere.Atmosphere, report ClampReport) *Result {
	r := &Result{
		Teff:          d.Params.Teff,
		LogG:          d.Params.LogG,
		Metallicity:   math.Log10(d.Params.ZScale),
		Mass:          d.Params.Mass,
		Mode:          d.Params.Mode,
		Clamped:       report,
		Iterations:    d.Iterations,
		Converged:     d.Converged,
		Warnings:      d.Warnings,
		Columns:       d.Columns(),
		Flux:          finite(d.Flux),
		ContFlux:      finite(d.ContFlux),
		LimbDarkening: finite(d.LimbDarkening),
		DiskIntensity: finite(d.DiskIntensity),
	}
	r.Radius, r.Luminosity = d.Solar()
	for i, c := range r.Columns {
		r.Columns[i].Values = finite(c.Values)
	}
	if d.Spectrum != nil {
		r.Lambdas = make([]float64, len(d.Spectrum.Lambdas))
		for i, l := range d.Spectrum.Lambdas {
			r.Lambdas[i] = l * 1.0e7
		}
	}
	for id, ls := range d.LineSpectra {
		r.Lines = append(r.Lines, LineResult{ID: id, EqWidth: ls.EqWidth, Residual: ls.Residual})
	}
	sort.Slice(r.Lines, func(i, j int) bool { return r.Lines[i].ID < r.Lines[j].ID })
	for _, c := range d.Colors {
		if !math.IsNaN(c.Value) && !math.IsInf(c.Value, 0) {
			r.Colors = append(r.Colors, c)
		}
	}
	return r
}

// finite returns a copy of v with values that cannot be encoded as
// JSON set to zero.
func finite(v []float64) []float64 {
	if v == nil {
		return nil
	}
	o := make([]float64, len(v))
	for i, x := range v {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			o[i] = x
		}
	}
	return o
}
