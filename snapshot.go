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
	"encoding/gob"
	"fmt"
	"io"
	"math"

	"github.com/spatialmodel/photosphere/science/equilibrium"
	"github.com/spatialmodel/photosphere/science/lines"
	"github.com/spatialmodel/photosphere/science/opacity"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refdata"
)

// Snapshot is the converged structure, populations and continuum opacity
// of an atmosphere as a flat map of natural-log values. Keys name the
// quantity and its indices: "temp/3" is the temperature at depth 3,
// "cont/12/3" the continuum opacity at wavelength 12 and depth 3,
// "stage/Fe/1/3" the FeII population at depth 3 and "mol/CO/3" the CO
// population at depth 3.
type Snapshot map[string]float64

// snapshotColumns are the structure columns stored in a snapshot.
func (d *Atmosphere) snapshotColumns() map[string]*phys.Column {
	return map[string]*phys.Column{
		"tau":      &d.Tau,
		"temp":     &d.Temp,
		"pgas":     &d.PGas,
		"prad":     &d.PRad,
		"pe":       &d.Pe,
		"ne":       &d.Ne,
		"rho":      &d.Rho,
		"mmw":      &d.MMW,
		"depth":    &d.Depth,
		"kappa500": &d.Kappa500,
		"kappaRos": &d.KappaRos,
	}
}

// Snapshot returns the snapshot of d. The equilibrium and continuum
// manipulators must have run.
func (d *Atmosphere) Snapshot() (Snapshot, error) {
	if d.Pops == nil || d.Continuum == nil {
		return nil, fmt.Errorf("photosphere: snapshot needs the populations and continuum opacity")
	}
	s := make(Snapshot)
	for name, c := range d.snapshotColumns() {
		for i, v := range c.Ln {
			s[fmt.Sprintf("%s/%d", name, i)] = v
		}
	}
	for il, l := range d.ContLambdas {
		s[fmt.Sprintf("lambda/%d", il)] = math.Log(l)
		for i, v := range d.Continuum[il] {
			s[fmt.Sprintf("cont/%d/%d", il, i)] = v
		}
	}
	for e, p := range d.Pops.Stages {
		for st := range p {
			for i, v := range p[st] {
				s[fmt.Sprintf("stage/%s/%d/%d", e, st, i)] = v
			}
		}
	}
	for m, p := range d.Pops.Molecules {
		for i, v := range p {
			s[fmt.Sprintf("mol/%s/%d", m, i)] = v
		}
	}
	return s, nil
}

// count returns the number of consecutive indices stored under prefix.
func (s Snapshot) count(prefix string) int {
	n := 0
	for {
		if _, ok := s[fmt.Sprintf("%s/%d", prefix, n)]; !ok {
			return n
		}
		n++
	}
}

func (s Snapshot) get(key string) (float64, error) {
	v, ok := s[key]
	if !ok {
		return 0, fmt.Errorf("photosphere: snapshot is missing %q", key)
	}
	return v, nil
}

// FromSnapshot returns a function that restores the structure,
// populations and continuum opacity of d from s and marks the structure
// iteration done.
func FromSnapshot(s Snapshot) DomainManipulator {
	return func(d *Atmosphere) error {
		n := s.count("tau")
		if n < 2 {
			return fmt.Errorf("photosphere: snapshot has %d depths", n)
		}
		for name, c := range d.snapshotColumns() {
			*c = phys.NewColumn(n)
			for i := 0; i < n; i++ {
				v, err := s.get(fmt.Sprintf("%s/%d", name, i))
				if err != nil {
					return err
				}
				c.SetLn(i, v)
			}
		}

		nl := s.count("lambda")
		d.ContLambdas = make([]float64, nl)
		d.Continuum = make(opacity.Table, nl)
		for il := range d.ContLambdas {
			d.ContLambdas[il] = math.Exp(s["lambda/"+fmt.Sprint(il)])
			d.Continuum[il] = make([]float64, n)
			for i := range d.Continuum[il] {
				v, err := s.get(fmt.Sprintf("cont/%d/%d", il, i))
				if err != nil {
					return err
				}
				d.Continuum[il][i] = v
			}
		}

		d.Pops = &equilibrium.Result{
			Stages:    make(map[string]*equilibrium.Populations),
			Molecules: make(map[string][]float64),
			Depletion: make(map[string][]float64),
			Ne:        d.Ne.Copy(),
		}
		for _, e := range refdata.Elements() {
			prefix := "stage/" + e.Symbol
			if _, ok := s[prefix+"/0/0"]; !ok {
				continue
			}
			p := new(equilibrium.Populations)
			for st := range p {
				p[st] = make([]float64, n)
				for i := range p[st] {
					v, err := s.get(fmt.Sprintf("%s/%d/%d", prefix, st, i))
					if err != nil {
						return err
					}
					p[st][i] = v
				}
			}
			d.Pops.Stages[e.Symbol] = p
		}
		for _, m := range refdata.Molecules() {
			prefix := "mol/" + m.Name
			if s.count(prefix) != n {
				continue
			}
			v := make([]float64, n)
			for i := range v {
				v[i] = s[fmt.Sprintf("%s/%d", prefix, i)]
			}
			d.Pops.Molecules[m.Name] = v
		}
		for _, e := range []string{"H", "He"} {
			if _, ok := d.Pops.Stages[e]; !ok {
				return fmt.Errorf("photosphere: snapshot has no %s populations", e)
			}
		}

		var err error
		if d.Opacity, err = lines.NewTable(d.ContLambdas, d.Continuum); err != nil {
			return fmt.Errorf("photosphere: snapshot: %v", err)
		}
		d.setAbundances()
		d.Done = true
		return d.checkStructure()
	}
}

// savedModel is the file format written by Save.
type savedModel struct {
	Params   Params
	Snapshot Snapshot
}

// Save returns a function that writes the parameters and snapshot of d
// to w.
func Save(w io.Writer) DomainManipulator {
	return func(d *Atmosphere) error {
		s, err := d.Snapshot()
		if err != nil {
			return fmt.Errorf("photosphere.Atmosphere.Save: %v", err)
		}
		if err := gob.NewEncoder(w).Encode(savedModel{Params: d.Params, Snapshot: s}); err != nil {
			return fmt.Errorf("photosphere.Atmosphere.Save: %v", err)
		}
		return nil
	}
}

// Load returns a function that restores an atmosphere written by Save.
// The stellar and grid parameters are taken from the file; the line,
// broadening and mode parameters of d are kept so the stored structure
// can be synthesized again with different settings.
func Load(r io.Reader) DomainManipulator {
	return func(d *Atmosphere) error {
		var m savedModel
		if err := gob.NewDecoder(r).Decode(&m); err != nil {
			return fmt.Errorf("photosphere.Atmosphere.Load: %v", err)
		}
		p := &d.Params
		p.Teff, p.LogG, p.ZScale, p.LogAHe, p.Mass = m.Params.Teff, m.Params.LogG, m.Params.ZScale, m.Params.LogAHe, m.Params.Mass
		p.NumDepths, p.LogTauMin, p.LogTauMax = m.Params.NumDepths, m.Params.LogTauMin, m.Params.LogTauMax
		p.LambdaStart, p.LambdaStop, p.LambdaPoints = m.Params.LambdaStart, m.Params.LambdaStop, m.Params.LambdaPoints
		p.LogFudge = m.Params.LogFudge
		if err := FromSnapshot(m.Snapshot)(d); err != nil {
			return fmt.Errorf("photosphere.Atmosphere.Load: %v", err)
		}
		return nil
	}
}
