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

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/science/equilibrium"
)

// Config selects the lines and profiles of a synthesis.
type Config struct {
	Teff float64 // K
	XiT  float64 // microturbulent velocity [km/s]
	// Voigt selects the Voigt profile for metal lines; otherwise the
	// Gaussian plus Lorentzian approximation is used. Hydrogen lines
	// always get the Stark profile.
	Voigt bool
	// Molecules enables the JOLA molecular bands below JolaMaxTeff.
	Molecules bool
	LogFudge  float64 // dex
	// Lines replaces the curated list if not nil.
	Lines []Line
	// Extra lines are synthesized in addition to the list.
	Extra []Line
}

// List returns the lines selected by c.
func (c Config) List() []Line {
	l := c.Lines
	if l == nil {
		l = ListFor(c.Teff)
	}
	return append(append([]Line(nil), l...), c.Extra...)
}

// Synthesize computes the line and band opacity selected by cfg on state s
// and merges it into t.
func Synthesize(cfg Config, t *Table, s *State, pops *equilibrium.Result, log logrus.FieldLogger) error {
	list := cfg.List()
	for _, l := range list {
		if err := l.Validate(); err != nil {
			return err
		}
		p := Grid(l, cfg.Teff, cfg.XiT)
		var prof Profile
		switch {
		case l.isHydrogen():
			prof = Stark
		case cfg.Voigt:
			prof = Voigt
		default:
			prof = GaussLorentz
		}
		nums, err := LevelPops(l, pops, s.Temp)
		if err != nil {
			return err
		}
		k := Kappa(l, p, prof(l, p, s), nums, s, cfg.LogFudge)
		if err := t.Merge(l.ID(), p.Lambdas(), k); err != nil {
			return err
		}
	}
	var bands int
	if cfg.Molecules && cfg.Teff < JolaMaxTeff {
		for _, b := range TiOBands() {
			logN, ok := pops.Molecules[b.Molecule]
			if !ok {
				log.WithField("band", b.Name).Debug("no molecule population; skipping band")
				continue
			}
			lam := b.Lambdas()
			if err := t.Merge(b.ID(), lam, JOLA(b, lam, s, logN)); err != nil {
				return fmt.Errorf("lines: %s: %v", b.Name, err)
			}
			bands++
		}
	}
	log.WithFields(logrus.Fields{
		"lines":  len(list),
		"bands":  bands,
		"points": len(t.Lambdas()),
	}).Debug("merged line and band opacity")
	return nil
}
