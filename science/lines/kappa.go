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

	"github.com/spatialmodel/photosphere/science/equilibrium"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refdata"
)

// Epsilon is the thermalization parameter of the line source function.
const Epsilon = 0.01

// LevelPops returns the natural log of the number density [cm⁻³] of the
// lower level of l in Boltzmann equilibrium with its ionization stage.
func LevelPops(l Line, pops *equilibrium.Result, temp phys.Column) ([]float64, error) {
	sp, err := l.Ion()
	if err != nil {
		return nil, fmt.Errorf("lines: %s: %v", l.ID(), err)
	}
	if sp.Stage > equilibrium.NumStages {
		return nil, fmt.Errorf("lines: %s: stage %d not solved", l.ID(), sp.Stage)
	}
	p, ok := pops.Stages[sp.Element]
	if !ok {
		return nil, fmt.Errorf("lines: %s: no populations for %s", l.ID(), sp.Element)
	}
	var shift float64
	if l.A12 != 0 {
		shift = (l.A12 - refdata.Abundance(sp.Element).Value) * phys.Ln10
	}
	chiL := l.ChiL * phys.EV / phys.K
	logGw := math.Log(l.GwL)
	n := make([]float64, temp.Len())
	for i := range n {
		logU := refdata.LogPartitionFn(sp, temp.Val[i]).Value
		n[i] = p[sp.Stage-1][i] + shift - chiL/temp.Val[i] + logGw - logU
	}
	return n, nil
}

// Kappa returns the natural log of the line mass extinction [cm²/g],
// indexed [point][depth], for profile phi and lower level populations
// logNums. logFudge [dex] is the opacity correction applied to the
// continuum.
func Kappa(l Line, p Points, phi [][]float64, logNums []float64, s *State, logFudge float64) [][]float64 {
	logPre := l.LogF*phys.Ln10 + math.Log(math.Pi) + 2*phys.LogE - phys.LogMe - phys.LogC
	hcOverLK := phys.H * phys.C / (p.Lambda0 * phys.K)
	fudge := logFudge * phys.Ln10
	k := make([][]float64, len(phi))
	for il := range phi {
		k[il] = make([]float64, len(logNums))
	}
	for i := range logNums {
		logStim := math.Log(-math.Expm1(-hcOverLK / s.Temp.Val[i]))
		base := logPre + logStim + logNums[i] - s.Rho.Ln[i] + fudge
		for il := range phi {
			k[il][i] = base + math.Log(phi[il][i])
		}
	}
	return k
}

// SourceFunction returns the line source function (1-ε)J + εB given the
// mean intensity j, the Planck function b and the thermal fraction eps of
// the extinction at each depth. If eps is nil, ε is Epsilon everywhere.
func SourceFunction(b, j, eps []float64) []float64 {
	s := make([]float64, len(b))
	for i := range b {
		e := Epsilon
		if eps != nil {
			e = eps[i]
		}
		s[i] = (1-e)*j[i] + e*b[i]
	}
	return s
}

// Thermalization returns the thermal fraction of the extinction at each
// depth given the natural logs of the total and continuous opacity: the
// continuum is fully thermal and the line share scatters all but Epsilon.
func Thermalization(logKappa, logCont []float64) []float64 {
	e := make([]float64, len(logKappa))
	for i := range e {
		c := math.Min(1, math.Exp(logCont[i]-logKappa[i]))
		e[i] = c + Epsilon*(1-c)
	}
	return e
}
