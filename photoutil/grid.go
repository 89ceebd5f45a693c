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
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere"
)

// Grid runs a model for every combination of teffs and loggs, with the
// other parameters taken from base, and writes one CSV row per model to
// w. Out-of-range grid points are clamped. If snapshotDir is not empty a
// snapshot of each model is saved there.
func Grid(ctx context.Context, base photosphere.Params, teffs, loggs []float64, mc *photosphere.ModelCache, w io.Writer, snapshotDir string, log logrus.FieldLogger) error {
	if len(teffs) == 0 || len(loggs) == 0 {
		return fmt.Errorf("photoutil: grid needs at least one Teff and one log g")
	}
	var params []photosphere.Params
	for _, teff := range teffs {
		for _, logg := range loggs {
			p := base
			report := make(ClampReport)
			p.Teff = report.clamp("Teff", teff, photosphere.MinTeff, photosphere.MaxTeff)
			p.LogG = report.clamp("LogG", logg, photosphere.MinLogG(p.Teff), photosphere.MaxLogG)
			report.Log(log.WithFields(logrus.Fields{"gridTeff": teff, "gridLogG": logg}))
			params = append(params, p)
		}
	}

	models := make([]*photosphere.Atmosphere, len(params))
	errs := make([]error, len(params))
	var wg sync.WaitGroup
	wg.Add(len(params))
	for i, p := range params {
		go func(i int, p photosphere.Params) {
			defer wg.Done()
			models[i], errs[i] = mc.Get(ctx, p)
		}(i, p)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("photoutil: grid point Teff=%g, log g=%g: %v", params[i].Teff, params[i].LogG, err)
		}
	}

	if snapshotDir != "" {
		for _, d := range models {
			path := filepath.Join(snapshotDir, fmt.Sprintf("photosphere_%.0f_%.2f.gob", d.Params.Teff, d.Params.LogG))
			if err := writeFile(path, func(w io.Writer) error { return photosphere.Save(w)(d) }, log); err != nil {
				return err
			}
		}
	}
	return writeGridCSV(w, models)
}

// writeGridCSV writes one row per model, with a column for every color
// that any of the models has.
func writeGridCSV(w io.Writer, models []*photosphere.Atmosphere) error {
	var colors []string
	seen := make(map[string]bool)
	for _, d := range models {
		for _, c := range d.Colors {
			if !seen[c.Name] {
				seen[c.Name] = true
				colors = append(colors, c.Name)
			}
		}
	}
	cw := csv.NewWriter(w)
	header := append([]string{"Teff", "LogG", "Iterations", "Converged", "Radius", "Luminosity"}, colors...)
	if err := cw.Write(header); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', 8, 64) }
	for _, d := range models {
		r, l := d.Solar()
		row := []string{f(d.Params.Teff), f(d.Params.LogG), strconv.Itoa(d.Iterations),
			strconv.FormatBool(d.Converged), f(r), f(l)}
		vals := make(map[string]float64)
		for _, c := range d.Colors {
			vals[c.Name] = c.Value
		}
		for _, c := range colors {
			if v, ok := vals[c]; ok {
				row = append(row, f(v))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
