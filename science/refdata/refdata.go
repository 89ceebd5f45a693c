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

// Package refdata is the static atomic and molecular reference-data service
// used by the photosphere solvers. Lookups are pure functions of species
// and temperature. A lookup that misses a species returns a conservative
// default value with Resolved set to false instead of failing.
package refdata

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/spatialmodel/photosphere/science/phys"
)

// NumStages is the number of ionization stages carried for each element.
const NumStages = 4

// Default values returned for species that are missing from the tables.
const (
	DefaultIonizationEnergy   = 8.0  // eV
	DefaultDissociationEnergy = 29.0 // eV; high enough to suppress the molecule
	DefaultMass               = 1.0  // amu
)

var romans = [...]string{"I", "II", "III", "IV", "V"}

// Species is an ionization stage of an element. Stage 1 is the neutral atom.
type Species struct {
	Element string
	Stage   int
}

func (s Species) String() string {
	if s.Stage < 1 || s.Stage > len(romans) {
		return fmt.Sprintf("%s%d", s.Element, s.Stage)
	}
	return s.Element + romans[s.Stage-1]
}

// ParseSpecies parses spectroscopic notation such as "FeII".
func ParseSpecies(s string) (Species, error) {
	for i := len(romans) - 1; i >= 0; i-- {
		// The remaining prefix must be a known element, so "VI" parses
		// as vanadium I.
		if strings.HasSuffix(s, romans[i]) {
			el := strings.TrimSuffix(s, romans[i])
			if _, ok := atomicMass[el]; ok {
				return Species{Element: el, Stage: i + 1}, nil
			}
		}
	}
	return Species{}, fmt.Errorf("refdata: invalid species %q", s)
}

// Quantity is the result of a reference-data lookup.
type Quantity struct {
	Value float64
	// Resolved is false when the species was missing from the tables and
	// Value holds a default.
	Resolved bool
}

// Element holds the static data for one chemical element.
type Element struct {
	Symbol string
	Z      int
	A12    float64 // logarithmic abundance, log10(N/N_H) + 12
}

// Mass returns the atomic mass [amu].
func (e Element) Mass() float64 { return Mass(e.Symbol).Value }

// elements are the elements carried by the solvers, ordered by atomic
// number, with solar abundances from Asplund et al. (2009).
var elements = []Element{
	{"H", 1, 12.00}, {"He", 2, 10.93}, {"Li", 3, 1.05}, {"Be", 4, 1.38},
	{"B", 5, 2.70}, {"C", 6, 8.43}, {"N", 7, 7.83}, {"O", 8, 8.69},
	{"F", 9, 4.56}, {"Ne", 10, 7.93}, {"Na", 11, 6.24}, {"Mg", 12, 7.60},
	{"Al", 13, 6.45}, {"Si", 14, 7.51}, {"P", 15, 5.41}, {"S", 16, 7.12},
	{"Cl", 17, 5.50}, {"Ar", 18, 6.40}, {"K", 19, 5.03}, {"Ca", 20, 6.34},
	{"Sc", 21, 3.15}, {"Ti", 22, 4.95}, {"V", 23, 3.93}, {"Cr", 24, 5.64},
	{"Mn", 25, 5.43}, {"Fe", 26, 7.50}, {"Co", 27, 4.99}, {"Ni", 28, 6.22},
	{"Cu", 29, 4.19}, {"Zn", 30, 4.56}, {"Ga", 31, 3.04}, {"Ge", 32, 3.65},
	{"Rb", 37, 2.52}, {"Sr", 38, 2.87}, {"Y", 39, 2.21}, {"Zr", 40, 2.58},
	{"Mo", 42, 1.88}, {"Cs", 55, 1.08}, {"Ba", 56, 2.18}, {"La", 57, 1.10},
}

var elementIndex = make(map[string]int)

// Elements returns the element records ordered by atomic number.
func Elements() []Element {
	o := make([]Element, len(elements))
	copy(o, elements)
	return o
}

// LookupElement returns the record for the element with the given symbol.
func LookupElement(sym string) (Element, bool) {
	i, ok := elementIndex[sym]
	if !ok {
		return Element{}, false
	}
	return elements[i], true
}

// Mass returns the atomic mass of element sym [amu].
func Mass(sym string) Quantity {
	if m, ok := atomicMass[sym]; ok {
		return Quantity{Value: m, Resolved: true}
	}
	return Quantity{Value: DefaultMass}
}

// IonizationEnergy returns the ground-state ionization energy of sp [eV].
func IonizationEnergy(sp Species) Quantity {
	if e, ok := ionizationEnergy[sp.String()]; ok {
		return Quantity{Value: e, Resolved: true}
	}
	return Quantity{Value: DefaultIonizationEnergy}
}

// LogPartitionFn returns the natural log of the partition function of sp at
// temperature t [K]. The tabulated values at θ = 5040/T = 1.0 and 0.5 are
// interpolated linearly in θ and held constant outside that range.
// Missing species get U = 1.
func LogPartitionFn(sp Species, t float64) Quantity {
	return memoized(sp.String(), t, func() Quantity {
		u, ok := partitionLog10[sp.String()]
		if !ok {
			return Quantity{}
		}
		theta := 5040.0 / t
		var l float64
		switch {
		case theta >= 1.0:
			l = u[0]
		case theta <= 0.5:
			l = u[1]
		default:
			l = u[1] + (u[0]-u[1])*(theta-0.5)/0.5
		}
		return Quantity{Value: l * phys.Ln10, Resolved: true}
	})
}

// Molecule is a diatomic molecule AB. A is the donor element whose
// equilibrium solution carries the molecule population.
type Molecule struct {
	Name string
	A, B string
}

// ReducedMass returns the reduced mass of the molecule [amu].
func (m Molecule) ReducedMass() float64 {
	a, b := Mass(m.A).Value, Mass(m.B).Value
	return a * b / (a + b)
}

// Mass returns the molecular mass [amu].
func (m Molecule) Mass() float64 { return Mass(m.A).Value + Mass(m.B).Value }

// Contains reports whether element sym is a constituent of m.
func (m Molecule) Contains(sym string) bool { return m.A == sym || m.B == sym }

// Partner returns the constituent of m that is not sym.
func (m Molecule) Partner(sym string) string {
	if m.A == sym {
		return m.B
	}
	return m.A
}

// moleculeNames lists the diatomic molecules in order of importance in cool
// photospheres; the order sets the adjacency priority.
var moleculeNames = []string{"H2", "CO", "OH", "CH", "N2", "CN", "NH", "NO",
	"C2", "O2", "TiO", "SiO", "MgH", "CaH", "CaO", "VO", "FeO"}

// MaxMoleculesPerElement bounds the molecule adjacency list of an element.
const MaxMoleculesPerElement = 4

var (
	molecules     []Molecule
	moleculeIndex = make(map[string]int)
	adjacency     = make(map[string][]Molecule)
)

func init() {
	for i, e := range elements {
		elementIndex[e.Symbol] = i
	}
	for _, n := range moleculeNames {
		m, err := parseMolecule(n)
		if err != nil {
			panic(err)
		}
		moleculeIndex[n] = len(molecules)
		molecules = append(molecules, m)
	}
	// Molecules an element donates come first, then those it is a
	// partner in, each in priority order.
	for _, e := range elements {
		var adj []Molecule
		for _, donor := range []bool{true, false} {
			for _, m := range molecules {
				if len(adj) == MaxMoleculesPerElement {
					break
				}
				if (m.A == e.Symbol) == donor && m.Contains(e.Symbol) {
					adj = append(adj, m)
				}
			}
		}
		if len(adj) > 0 {
			adjacency[e.Symbol] = adj
		}
	}
}

// parseMolecule splits a name such as "MgH" or "N2" into constituents.
func parseMolecule(name string) (Molecule, error) {
	var parts []string
	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			parts = append(parts, string(r))
		case unicode.IsLower(r) && len(parts) > 0:
			parts[len(parts)-1] += string(r)
		case r == '2' && len(parts) == 1:
			parts = append(parts, parts[0])
		default:
			return Molecule{}, fmt.Errorf("refdata: can't parse molecule %q", name)
		}
	}
	if len(parts) != 2 {
		return Molecule{}, fmt.Errorf("refdata: %q is not diatomic", name)
	}
	return Molecule{Name: name, A: parts[0], B: parts[1]}, nil
}

// Molecules returns all molecule records in priority order.
func Molecules() []Molecule {
	o := make([]Molecule, len(molecules))
	copy(o, molecules)
	return o
}

// LookupMolecule returns the record for the named molecule.
func LookupMolecule(name string) (Molecule, bool) {
	i, ok := moleculeIndex[name]
	if !ok {
		return Molecule{}, false
	}
	return molecules[i], true
}

// MoleculesOf returns the molecules that element sym takes part in, at most
// MaxMoleculesPerElement of them.
func MoleculesOf(sym string) []Molecule { return adjacency[sym] }

// DissociationEnergy returns the dissociation energy of molecule m [eV].
func DissociationEnergy(m string) Quantity {
	if d, ok := dissociationEnergy[m]; ok {
		return Quantity{Value: d, Resolved: true}
	}
	return Quantity{Value: DefaultDissociationEnergy}
}

var molPartitionTemps = []float64{130, 500, 3000, 8000, 10000}

// LogMolecularPartitionFn returns the natural log of the rotational and
// vibrational partition function of molecule m at temperature t [K],
// interpolated piecewise-linearly in ln Q between tabulated temperatures.
func LogMolecularPartitionFn(m string, t float64) Quantity {
	return memoized(m, t, func() Quantity {
		q, ok := molecularPartitionLn[m]
		if !ok {
			return Quantity{}
		}
		return Quantity{Value: phys.Interpol(molPartitionTemps, q[:], t), Resolved: true}
	})
}

// Abundance returns the logarithmic number abundance of element sym
// relative to hydrogen, log10(N/N_H) + 12.
func Abundance(sym string) Quantity {
	e, ok := LookupElement(sym)
	if !ok {
		return Quantity{Value: math.Inf(-1)}
	}
	return Quantity{Value: e.A12, Resolved: true}
}
