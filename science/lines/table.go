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

package lines

import (
	"fmt"
	"math"
	"sort"

	"github.com/spatialmodel/photosphere/science/opacity"
	"github.com/spatialmodel/photosphere/science/phys"
)

// Table is the master wavelength/opacity table: the continuum plus the
// line and band contributions merged into it. Each contribution is kept
// under its key, so merging the same key again replaces rather than
// adds, and the merged table does not depend on merge order.
type Table struct {
	depths     int
	contLambda []float64
	contByD    [][]float64 // continuum ln κ indexed [depth][λ]
	contribs   map[string]contribution

	lambda []float64
	logKap [][]float64
}

type contribution struct {
	lambda []float64
	logKap [][]float64 // [depth][λ]
}

// NewTable returns a table seeded with continuum opacity cont sampled at
// lambdas [cm].
func NewTable(lambdas []float64, cont opacity.Table) (*Table, error) {
	if len(lambdas) == 0 || len(lambdas) != len(cont) {
		return nil, fmt.Errorf("lines: continuum has %d wavelengths and %d opacity rows", len(lambdas), len(cont))
	}
	if err := increasing(lambdas); err != nil {
		return nil, err
	}
	t := &Table{
		depths:     len(cont[0]),
		contLambda: append([]float64(nil), lambdas...),
		contribs:   make(map[string]contribution),
	}
	t.contByD = transpose(cont)
	return t, nil
}

func increasing(l []float64) error {
	for i := 1; i < len(l); i++ {
		if !(l[i] > l[i-1]) {
			return fmt.Errorf("lines: wavelengths not increasing at index %d", i)
		}
	}
	return nil
}

func transpose(v [][]float64) [][]float64 {
	if len(v) == 0 {
		return nil
	}
	o := make([][]float64, len(v[0]))
	for j := range o {
		o[j] = make([]float64, len(v))
		for i := range v {
			o[j][i] = v[i][j]
		}
	}
	return o
}

// Merge adds the opacity logKappa, indexed [point][depth] and sampled at
// lambdas [cm], under key id.
func (t *Table) Merge(id string, lambdas []float64, logKappa [][]float64) error {
	if len(lambdas) != len(logKappa) {
		return fmt.Errorf("lines: %s: %d wavelengths and %d opacity rows", id, len(lambdas), len(logKappa))
	}
	if err := increasing(lambdas); err != nil {
		return fmt.Errorf("lines: %s: %v", id, err)
	}
	for _, row := range logKappa {
		if len(row) != t.depths {
			return fmt.Errorf("lines: %s: opacity has %d depths; want %d", id, len(row), t.depths)
		}
	}
	t.contribs[id] = contribution{
		lambda: append([]float64(nil), lambdas...),
		logKap: transpose(logKappa),
	}
	t.lambda, t.logKap = nil, nil
	return nil
}

// IDs returns the keys of the merged contributions in sorted order.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.contribs))
	for id := range t.contribs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lambdas returns the master wavelength grid [cm].
func (t *Table) Lambdas() []float64 {
	t.build()
	return t.lambda
}

// LogKappa returns the master opacity ln κ [cm²/g] indexed [λ][depth].
func (t *Table) LogKappa() [][]float64 {
	t.build()
	return t.logKap
}

// Continuum returns the continuum-only opacity on the master grid.
func (t *Table) Continuum() [][]float64 {
	t.build()
	k := make([][]float64, len(t.lambda))
	for il, lam := range t.lambda {
		k[il] = make([]float64, t.depths)
		for i := range k[il] {
			k[il][i] = phys.Interpol(t.contLambda, t.contByD[i], lam)
		}
	}
	return k
}

// Covered reports for each master wavelength whether it falls within the
// range of a merged contribution.
func (t *Table) Covered() []bool {
	t.build()
	c := make([]bool, len(t.lambda))
	for _, id := range t.IDs() {
		r := t.contribs[id].lambda
		lo := sort.SearchFloat64s(t.lambda, r[0])
		for il := lo; il < len(t.lambda) && t.lambda[il] <= r[len(r)-1]; il++ {
			c[il] = true
		}
	}
	return c
}

// Only returns the wavelengths [cm] of contribution id and the opacity
// of that contribution alone on top of the continuum, indexed
// [λ][depth]. Neighbouring contributions are left out.
func (t *Table) Only(id string) ([]float64, [][]float64, error) {
	c, ok := t.contribs[id]
	if !ok {
		return nil, nil, fmt.Errorf("lines: no contribution %q", id)
	}
	k := make([][]float64, len(c.lambda))
	for il, lam := range c.lambda {
		k[il] = make([]float64, t.depths)
		for i := range k[il] {
			k[il][i] = phys.LogSumExp(phys.Interpol(t.contLambda, t.contByD[i], lam), c.logKap[i][il])
		}
	}
	return append([]float64(nil), c.lambda...), k, nil
}

func (t *Table) build() {
	if t.lambda != nil {
		return
	}
	ids := t.IDs()
	grid := append([]float64(nil), t.contLambda...)
	for _, id := range ids {
		grid = append(grid, t.contribs[id].lambda...)
	}
	sort.Float64s(grid)
	t.lambda = grid[:0]
	for i, l := range grid {
		if i > 0 && l == grid[i-1] {
			continue
		}
		t.lambda = append(t.lambda, l)
	}

	t.logKap = make([][]float64, len(t.lambda))
	for il, lam := range t.lambda {
		t.logKap[il] = make([]float64, t.depths)
		for i := 0; i < t.depths; i++ {
			k := math.Exp(phys.Interpol(t.contLambda, t.contByD[i], lam))
			for _, id := range ids {
				c := t.contribs[id]
				if lam < c.lambda[0] || lam > c.lambda[len(c.lambda)-1] {
					continue
				}
				k += math.Exp(phys.Interpol(c.lambda, c.logKap[i], lam))
			}
			t.logKap[il][i] = math.Log(k)
		}
	}
}
