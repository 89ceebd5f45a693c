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

// Package equilibrium computes LTE ionization-stage populations from the
// Saha equation coupled to diatomic dissociation equilibrium. One routine
// serves both the restricted pass inside structure convergence and the
// full pass afterward; the Config selects the element and molecule sets.
package equilibrium

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refdata"
	"gonum.org/v1/gonum/floats"
)

// NumStages is the number of ionization stages solved for each element.
const NumStages = refdata.NumStages

// Config selects the species included in an equilibrium solution.
type Config struct {
	// Elements are the element symbols to solve for.
	Elements []string
	// Molecules are the molecule names to couple. A molecule is only
	// included if both of its constituents are in Elements.
	Molecules []string
	// Iterations is the number of electron-density iterations. If
	// UpdateNe is false a single pass is made regardless.
	Iterations int
	// UpdateNe specifies whether the electron density is re-summed from
	// the ionization stages after each iteration.
	UpdateNe bool
	// Tolerance, if > 0, ends the iteration early once the largest
	// relative change in the electron density falls below it.
	Tolerance float64
}

// restrictedElements are the abundant electron donors and molecule formers
// used inside structure convergence.
var restrictedElements = []string{"H", "He", "C", "N", "O", "Na", "Mg", "Al",
	"Si", "S", "K", "Ca", "Fe"}

var restrictedMolecules = []string{"H2", "CH", "OH", "CO", "N2"}

// Restricted returns the single-pass configuration used inside the
// structure solver.
func Restricted() Config {
	return Config{
		Elements:   append([]string(nil), restrictedElements...),
		Molecules:  append([]string(nil), restrictedMolecules...),
		Iterations: 1,
	}
}

// Full returns the configuration for the full equilibrium pass over all
// elements and molecules, iterated jointly with the electron density.
func Full(iterations int) Config {
	c := Config{Iterations: iterations, UpdateNe: true}
	for _, e := range refdata.Elements() {
		c.Elements = append(c.Elements, e.Symbol)
	}
	for _, m := range refdata.Molecules() {
		c.Molecules = append(c.Molecules, m.Name)
	}
	return c
}

// Input holds the thermodynamic state the populations are solved on.
type Input struct {
	Temp phys.Column // K
	Ne   phys.Column // starting electron density [cm⁻³]
	// LogN is the natural log of the total number density [cm⁻³] of each
	// element at each depth.
	LogN map[string][]float64
}

// Populations are the natural-log number densities [cm⁻³] of the
// ionization stages of one element, indexed [stage-1][depth].
type Populations [NumStages][]float64

// Result holds an equilibrium solution.
type Result struct {
	Stages map[string]*Populations
	// Molecules holds the natural-log number density of each molecule.
	Molecules map[string][]float64
	// Depletion holds the natural-log number density of atoms of each
	// element bound in molecules, as seen by that element's balance.
	Depletion map[string][]float64
	Ne        phys.Column
	// Iterations is the number of iterations performed.
	Iterations int
	// Converged is true if Tolerance was set and reached.
	Converged bool
	Report    Report
}

// Report lists the species whose reference data were found and those that
// fell back to default values.
type Report struct {
	Resolved  []string
	Defaulted []string
}

// Merge adds the species in o to r.
func (r *Report) Merge(o Report) {
	r.Resolved = mergeSorted(r.Resolved, o.Resolved)
	r.Defaulted = mergeSorted(r.Defaulted, o.Defaulted)
}

func mergeSorted(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		set[s] = struct{}{}
	}
	o := make([]string, 0, len(set))
	for s := range set {
		o = append(o, s)
	}
	sort.Strings(o)
	return o
}

type reportBuilder map[string]bool

func (rb reportBuilder) add(name string, resolved bool) {
	if old, ok := rb[name]; ok {
		rb[name] = old && resolved
		return
	}
	rb[name] = resolved
}

func (rb reportBuilder) report() Report {
	var r Report
	for s, ok := range rb {
		if ok {
			r.Resolved = append(r.Resolved, s)
		} else {
			r.Defaulted = append(r.Defaulted, s)
		}
	}
	sort.Strings(r.Resolved)
	sort.Strings(r.Defaulted)
	return r
}

var (
	logSahaFac = math.Log(2) + 1.5*(math.Log(2*math.Pi)+phys.LogMe+phys.LogK-2*phys.LogH)
	logMolFac  = 1.5 * (math.Log(2*math.Pi) + phys.LogK - 2*phys.LogH)
)

// solver holds the per-run reference data, looked up once per depth.
type solver struct {
	cfg   Config
	in    Input
	n     int
	rb    reportBuilder
	mols  map[string][]refdata.Molecule // element → included molecules
	chi   map[string][NumStages - 1]float64
	logU  map[string]*Populations // ln partition functions [stage][depth]
	logQ  map[string][]float64    // ln molecular partition functions [depth]
	dissE map[string]float64
}

func newSolver(cfg Config, in Input) (*solver, error) {
	n := in.Temp.Len()
	if in.Ne.Len() != n {
		return nil, fmt.Errorf("equilibrium: temperature has %d depths but Ne has %d", n, in.Ne.Len())
	}
	s := &solver{
		cfg:   cfg,
		in:    in,
		n:     n,
		rb:    make(reportBuilder),
		mols:  make(map[string][]refdata.Molecule),
		chi:   make(map[string][NumStages - 1]float64),
		logU:  make(map[string]*Populations),
		logQ:  make(map[string][]float64),
		dissE: make(map[string]float64),
	}
	inSet := make(map[string]bool)
	for _, e := range cfg.Elements {
		ln, ok := in.LogN[e]
		if !ok {
			return nil, fmt.Errorf("equilibrium: no total number density for element %s", e)
		}
		if len(ln) != n {
			return nil, fmt.Errorf("equilibrium: element %s has %d depths, want %d", e, len(ln), n)
		}
		inSet[e] = true
	}
	molSet := make(map[string]bool)
	for _, m := range cfg.Molecules {
		molSet[m] = true
	}
	for _, e := range cfg.Elements {
		var chi [NumStages - 1]float64
		u := new(Populations)
		for st := 1; st <= NumStages; st++ {
			sp := refdata.Species{Element: e, Stage: st}
			resolved := true
			if st < NumStages {
				q := refdata.IonizationEnergy(sp)
				chi[st-1] = q.Value
				resolved = q.Resolved
			}
			u[st-1] = make([]float64, n)
			for i := 0; i < n; i++ {
				q := refdata.LogPartitionFn(sp, in.Temp.Val[i])
				u[st-1][i] = q.Value
				resolved = resolved && q.Resolved
			}
			s.rb.add(sp.String(), resolved)
		}
		s.chi[e] = chi
		s.logU[e] = u
		for _, m := range refdata.MoleculesOf(e) {
			if !molSet[m.Name] || !inSet[m.Partner(e)] {
				continue
			}
			s.mols[e] = append(s.mols[e], m)
			if _, ok := s.logQ[m.Name]; ok {
				continue
			}
			d := refdata.DissociationEnergy(m.Name)
			s.dissE[m.Name] = d.Value
			q := make([]float64, n)
			resolved := d.Resolved
			for i := 0; i < n; i++ {
				qq := refdata.LogMolecularPartitionFn(m.Name, in.Temp.Val[i])
				q[i] = qq.Value
				resolved = resolved && qq.Resolved
			}
			s.logQ[m.Name] = q
			s.rb.add(m.Name, resolved)
		}
	}
	return s, nil
}

// Solve computes the equilibrium populations for the elements and
// molecules selected by cfg.
func Solve(cfg Config, in Input) (*Result, error) {
	s, err := newSolver(cfg, in)
	if err != nil {
		return nil, err
	}
	ne := in.Ne.Copy()
	res := &Result{
		Stages:    make(map[string]*Populations),
		Molecules: make(map[string][]float64),
		Depletion: make(map[string][]float64),
	}

	// Neutral populations of molecule partners from the previous iteration;
	// the first pass uses the atomic solution without molecules.
	neutral := make(map[string][]float64)
	for _, e := range cfg.Elements {
		p, _, _ := s.element(e, ne, nil)
		neutral[e] = p[0]
	}

	iterations := cfg.Iterations
	if !cfg.UpdateNe || iterations < 1 {
		iterations = 1
	}
	for it := 0; it < iterations; it++ {
		res.Iterations = it + 1
		for _, e := range cfg.Elements {
			p, dep, mol := s.element(e, ne, neutral)
			res.Stages[e] = p
			res.Depletion[e] = dep
			for name, v := range mol {
				res.Molecules[name] = v
			}
		}
		for _, e := range cfg.Elements {
			neutral[e] = res.Stages[e][0]
		}
		if !cfg.UpdateNe {
			break
		}
		maxChange := s.updateNe(ne, res.Stages)
		if cfg.Tolerance > 0 && maxChange < cfg.Tolerance {
			res.Converged = true
			break
		}
	}
	res.Ne = ne
	res.Report = s.rb.report()
	return res, nil
}

// element solves the ionization and dissociation balance of element e.
// If neutral is nil, molecules are ignored.
func (s *solver) element(e string, ne phys.Column, neutral map[string][]float64) (*Populations, []float64, map[string][]float64) {
	p := new(Populations)
	for st := range p {
		p[st] = make([]float64, s.n)
	}
	dep := make([]float64, s.n)
	var mols []refdata.Molecule
	if neutral != nil {
		mols = s.mols[e]
	}
	molPop := make(map[string][]float64)
	for _, m := range mols {
		if m.A == e {
			molPop[m.Name] = make([]float64, s.n)
		}
	}
	logN := s.in.LogN[e]
	chi := s.chi[e]
	u := s.logU[e]
	terms := make([]float64, NumStages)
	molTerms := make([]float64, len(mols))
	for i := 0; i < s.n; i++ {
		t, lnT := s.in.Temp.Val[i], s.in.Temp.Ln[i]
		terms[0] = 0
		for st := 1; st < NumStages; st++ {
			logSaha := logSahaFac - ne.Ln[i] - chi[st-1]*phys.EV/(phys.K*t) +
				1.5*lnT + u[st][i] - u[st-1][i]
			terms[st] = terms[st-1] + logSaha
		}
		for k, m := range mols {
			b := m.Partner(e)
			logMu := math.Log(m.ReducedMass()) + phys.LogAmu
			logSahaMol := logMolFac + 1.5*logMu - neutral[b][i] - s.dissE[m.Name]*phys.EV/(phys.K*t) +
				1.5*lnT + s.logU[b][0][i] + u[0][i] - s.logQ[m.Name][i]
			molTerms[k] = -logSahaMol
		}
		logDenom := phys.LogSumExp(append(append([]float64(nil), terms...), molTerms...)...)
		floor := logN[i] + phys.LogFloor
		for st := 0; st < NumStages; st++ {
			p[st][i] = math.Max(logN[i]+terms[st]-logDenom, floor)
		}
		if len(mols) == 0 {
			dep[i] = math.Inf(-1)
			continue
		}
		dep[i] = logN[i] + phys.LogSumExp(molTerms...) - logDenom
		for k, m := range mols {
			if m.A == e {
				molPop[m.Name][i] = math.Max(p[0][i]+molTerms[k], floor)
			}
		}
	}
	return p, dep, molPop
}

// updateNe re-sums the electron density from the ionized stages, counting
// st-1 electrons per stage st, and damps the update with the geometric
// mean of the old and new values. It returns the largest relative change.
func (s *solver) updateNe(ne phys.Column, stages map[string]*Populations) float64 {
	var maxChange float64
	sum := make([]float64, NumStages-1)
	for i := 0; i < s.n; i++ {
		var total float64
		for _, e := range s.cfg.Elements {
			p := stages[e]
			for st := 1; st < NumStages; st++ {
				sum[st-1] = float64(st) * math.Exp(p[st][i])
			}
			total += floats.Sum(sum)
		}
		if total <= 0 {
			continue
		}
		newLn := 0.5 * (ne.Ln[i] + math.Log(total))
		change := math.Abs(math.Exp(newLn-ne.Ln[i]) - 1)
		if change > maxChange {
			maxChange = change
		}
		ne.SetLn(i, newLn)
	}
	return maxChange
}

// Total returns the natural log of the total number density of element e
// reconstructed from its stage populations and molecular depletion.
func (r *Result) Total(e string, depth int) float64 {
	p := r.Stages[e]
	v := make([]float64, 0, NumStages+1)
	for st := 0; st < NumStages; st++ {
		v = append(v, p[st][depth])
	}
	if d, ok := r.Depletion[e]; ok {
		v = append(v, d[depth])
	}
	return phys.LogSumExp(v...)
}

// LogFields returns logrus fields summarizing r.
func (r *Result) LogFields() logrus.Fields {
	return logrus.Fields{
		"iterations": r.Iterations,
		"converged":  r.Converged,
		"species":    len(r.Report.Resolved) + len(r.Report.Defaulted),
		"defaulted":  len(r.Report.Defaulted),
	}
}
