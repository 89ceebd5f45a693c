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

// Package lines synthesizes atomic line and molecular band extinction and
// merges it with the continuum into a master wavelength/opacity table.
package lines

import (
	"fmt"
	"io"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/photosphere/science/refdata"
	"github.com/spatialmodel/photosphere/science/refmodel"
)

// Line holds the atomic data of one bound-bound transition.
type Line struct {
	// Name identifies the line in the merged table.
	Name string
	// Species is the absorbing ion in spectroscopic notation, e.g. "NaI".
	Species string
	// Lambda0 is the rest wavelength [nm].
	Lambda0 float64
	// Mass is the mass of the absorber [amu]. If zero the element
	// mass is used.
	Mass float64
	// A12 overrides the element abundance if non-zero.
	A12 float64
	// LogF is the base-10 log of the oscillator strength.
	LogF float64
	// Aij is the radiative damping constant [s⁻¹].
	Aij float64
	// ChiL is the excitation energy of the lower level above the
	// ground state of its ionization stage [eV].
	ChiL float64
	// GwL is the statistical weight of the lower level.
	GwL float64
	// LogGammaCol is the natural log of the collisional damping
	// enhancement over the solar van der Waals value.
	LogGammaCol float64 `toml:"GammaCol"`
}

// ID returns the key under which the line is merged.
func (l Line) ID() string {
	if l.Name != "" {
		return fmt.Sprintf("%s %.3f", l.Name, l.Lambda0)
	}
	return fmt.Sprintf("%s %.3f", l.Species, l.Lambda0)
}

// Ion returns the parsed species of l.
func (l Line) Ion() (refdata.Species, error) {
	return refdata.ParseSpecies(l.Species)
}

// isHydrogen returns whether l is a hydrogen line, which gets a Stark
// profile.
func (l Line) isHydrogen() bool { return l.Species == "HI" }

// mass returns the absorber mass [amu].
func (l Line) mass() float64 {
	if l.Mass > 0 {
		return l.Mass
	}
	sp, err := l.Ion()
	if err != nil {
		return refdata.DefaultMass
	}
	return refdata.Mass(sp.Element).Value
}

// Validate checks that l can be synthesized.
func (l Line) Validate() error {
	if _, err := l.Ion(); err != nil {
		return fmt.Errorf("lines: %s: %v", l.ID(), err)
	}
	if l.Lambda0 <= 0 || math.IsNaN(l.Lambda0) {
		return fmt.Errorf("lines: %s: invalid wavelength %g nm", l.ID(), l.Lambda0)
	}
	if l.GwL <= 0 {
		return fmt.Errorf("lines: %s: invalid statistical weight %g", l.ID(), l.GwL)
	}
	return nil
}

var (
	caIIK   = Line{Name: "Ca II K", Species: "CaII", Lambda0: 393.366, LogF: -0.166, Aij: 1.47e8, ChiL: 0, GwL: 2, LogGammaCol: 0.5}
	caIIH   = Line{Name: "Ca II H", Species: "CaII", Lambda0: 396.847, LogF: -0.482, Aij: 1.4e8, ChiL: 0, GwL: 2, LogGammaCol: 0.5}
	feI404  = Line{Name: "Fe I", Species: "FeI", Lambda0: 404.581, LogF: -0.674, Aij: 8.62e7, ChiL: 1.485, GwL: 9}
	hDelta  = Line{Name: "H I delta", Species: "HI", Lambda0: 410.174, LogF: -1.655, Aij: 9.7320e5, ChiL: 10.2, GwL: 8, LogGammaCol: 1}
	caI     = Line{Name: "Ca I", Species: "CaI", Lambda0: 422.673, LogF: 0.243, Aij: 2.18e8, ChiL: 0, GwL: 1, LogGammaCol: 1}
	feI427  = Line{Name: "Fe I", Species: "FeI", Lambda0: 427.176, LogF: -1.118, Aij: 2.28e7, ChiL: 1.485, GwL: 9}
	hGamma  = Line{Name: "H I gamma", Species: "HI", Lambda0: 434.047, LogF: -1.350, Aij: 2.5304e6, ChiL: 10.2, GwL: 8, LogGammaCol: 1}
	feI438  = Line{Name: "Fe I", Species: "FeI", Lambda0: 438.354, LogF: -0.841, Aij: 5.0e7, ChiL: 1.485, GwL: 11}
	heI438  = Line{Name: "He I", Species: "HeI", Lambda0: 438.793, LogF: -1.364, Aij: 8.9889e6, ChiL: 21.218, GwL: 3}
	heI447  = Line{Name: "He I", Species: "HeI", Lambda0: 447.147, LogF: -0.986, Aij: 2.4579e7, ChiL: 20.964, GwL: 5}
	hBeta   = Line{Name: "H I beta", Species: "HI", Lambda0: 486.128, LogF: -0.914, Aij: 9.6683e6, ChiL: 10.2, GwL: 8, LogGammaCol: 1}
	mgIb2   = Line{Name: "Mg I b2", Species: "MgI", Lambda0: 517.268, LogF: -0.927, Aij: 3.37e7, ChiL: 2.712, GwL: 3, LogGammaCol: 1}
	mgIb1   = Line{Name: "Mg I b1", Species: "MgI", Lambda0: 518.360, LogF: -0.867, Aij: 5.61e7, ChiL: 2.717, GwL: 5, LogGammaCol: 1}
	feI527  = Line{Name: "Fe I", Species: "FeI", Lambda0: 526.954, LogF: -2.275, Aij: 1.27e6, ChiL: 0.859, GwL: 9}
	naD2    = Line{Name: "Na I D2", Species: "NaI", Lambda0: 588.995, LogF: -0.193, Aij: 6.16e7, ChiL: 0, GwL: 2, LogGammaCol: 1}
	naD1    = Line{Name: "Na I D1", Species: "NaI", Lambda0: 589.592, LogF: -0.495, Aij: 6.14e7, ChiL: 0, GwL: 2, LogGammaCol: 1}
	hAlpha  = Line{Name: "H I alpha", Species: "HI", Lambda0: 656.282, LogF: -0.193, Aij: 6.4651e7, ChiL: 10.1988357, GwL: 8, LogGammaCol: 1}
	kI      = Line{Name: "K I", Species: "KI", Lambda0: 766.490, LogF: -0.167, Aij: 3.8e7, ChiL: 0, GwL: 2, LogGammaCol: 1}
	caII854 = Line{Name: "Ca II IR", Species: "CaII", Lambda0: 854.209, LogF: -1.138, Aij: 9.9e6, ChiL: 1.700, GwL: 6, LogGammaCol: 0.5}
)

// HotList returns the curated lines synthesized for stars at or above
// refmodel.ThresholdTeff.
func HotList() []Line {
	return []Line{caIIK, caIIH, feI404, hDelta, caI, feI427, hGamma,
		heI438, heI447, hBeta, mgIb1, naD2, naD1, hAlpha}
}

// CoolList returns the curated lines synthesized for stars below
// refmodel.ThresholdTeff.
func CoolList() []Line {
	return []Line{caIIK, caIIH, feI404, hDelta, caI, feI427, hGamma,
		feI438, hBeta, mgIb2, mgIb1, feI527, naD2, naD1, hAlpha, kI, caII854}
}

// ListFor returns the curated list for effective temperature teff [K].
func ListFor(teff float64) []Line {
	if teff < refmodel.ThresholdTeff {
		return CoolList()
	}
	return HotList()
}

// lineFile is the layout of a TOML line list.
type lineFile struct {
	Line []Line
}

// ReadList reads a line list in TOML format, with one [[Line]] table
// per line.
func ReadList(r io.Reader) ([]Line, error) {
	var f lineFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("lines: reading line list: %v", err)
	}
	for _, l := range f.Line {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Line, nil
}
