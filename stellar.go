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
	"math"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/photosphere/science/phys"
)

// SurfaceGravity returns the surface gravity of the star.
func (d *Atmosphere) SurfaceGravity() *unit.Unit {
	return unit.New(math.Pow(10, d.Params.LogG)*1.0e-2, unit.MeterPerSecond2)
}

// StellarMass returns the mass of the star.
func (d *Atmosphere) StellarMass() *unit.Unit {
	return unit.New(d.Params.Mass*phys.MSun*1.0e-3, unit.Kilogram)
}

// Radius returns the stellar radius implied by the mass and surface
// gravity, R = √(GM/g).
func (d *Atmosphere) Radius() *unit.Unit {
	g := math.Pow(10, d.Params.LogG)
	return unit.New(math.Sqrt(phys.G*d.Params.Mass*phys.MSun/g)*1.0e-2, unit.Meter)
}

// Luminosity returns the bolometric luminosity L = 4πR²σTeff⁴.
func (d *Atmosphere) Luminosity() *unit.Unit {
	r := d.Radius().Value() * 1.0e2
	l := 4 * math.Pi * r * r * phys.Sigma * math.Pow(d.Params.Teff, 4)
	return unit.New(l*1.0e-7, unit.Watt)
}

// Solar returns the radius and luminosity in solar units.
func (d *Atmosphere) Solar() (radius, luminosity float64) {
	return d.Radius().Value() * 1.0e2 / phys.RSun, d.Luminosity().Value() * 1.0e7 / phys.LSun
}
