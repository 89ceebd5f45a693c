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
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ctessum/unit"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere"
	"github.com/spatialmodel/photosphere/science/lines"
	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spf13/cast"
)

// ClampedValue is an input that was moved into its accepted range.
type ClampedValue struct {
	Requested, Used float64
}

// ClampReport holds the inputs that were clamped, by option name.
type ClampReport map[string]ClampedValue

// Log writes one warning per clamped input.
func (c ClampReport) Log(log logrus.FieldLogger) {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		log.WithFields(logrus.Fields{
			"option":    n,
			"requested": c[n].Requested,
			"used":      c[n].Used,
		}).Warn("input out of range; clamped")
	}
}

// clamp moves v into [min, max], recording the change under name.
func (c ClampReport) clamp(name string, v, min, max float64) float64 {
	used := math.Min(math.Max(v, min), max)
	if used != v {
		c[name] = ClampedValue{Requested: v, Used: used}
	}
	return used
}

// clampUnit is clamp for dimensioned quantities. It returns an error if
// the dimensions of v and the limits differ.
func (c ClampReport) clampUnit(name string, v, min, max *unit.Unit) (*unit.Unit, error) {
	if !unit.DimensionsMatch(v, min) || !unit.DimensionsMatch(v, max) {
		return nil, fmt.Errorf("photoutil: %s has dimensions %v; want %v", name, v.Dimensions(), min.Dimensions())
	}
	used := unit.Min(unit.Max(v, min), max)
	if used.Value() != v.Value() {
		c[name] = ClampedValue{Requested: v.Value(), Used: used.Value()}
	}
	return used, nil
}

// MissingFieldError reports required options that were not given.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("photoutil: missing required configuration: %s", strings.Join(e.Fields, ", "))
}

// required are the options that must be set to a non-empty value.
var required = []string{"Teff", "LogG", "Metallicity", "Mass", "Mode"}

// Params reads the model parameters from cfg. Required options that are
// empty stop the run with a *MissingFieldError. Numbers outside their
// accepted ranges are clamped and listed in the returned report.
func Params(cfg *viper.Viper) (photosphere.Params, ClampReport, error) {
	p := photosphere.DefaultParams()
	report := make(ClampReport)

	var missing []string
	for _, name := range required {
		if strings.TrimSpace(cast.ToString(cfg.Get(name))) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return p, report, &MissingFieldError{Fields: missing}
	}

	var err error
	get := func(name string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = cast.ToFloat64E(cfg.Get(name))
		if err != nil {
			err = fmt.Errorf("photoutil: option %s: %v", name, err)
		}
		return v
	}
	getInt := func(name string) int {
		if err != nil {
			return 0
		}
		var v int
		v, err = cast.ToIntE(cfg.Get(name))
		if err != nil {
			err = fmt.Errorf("photoutil: option %s: %v", name, err)
		}
		return v
	}

	teffIn, loggIn, zIn, massIn := get("Teff"), get("LogG"), get("Metallicity"), get("Mass")
	if err != nil {
		return p, report, err
	}

	teff, err := report.clampUnit("Teff", unit.New(teffIn, unit.Kelvin),
		unit.New(photosphere.MinTeff, unit.Kelvin), unit.New(photosphere.MaxTeff, unit.Kelvin))
	if err != nil {
		return p, report, err
	}
	p.Teff = teff.Value()

	// Surface gravity and mass are checked in SI units; the clamped
	// values are then taken from the exact limits.
	gSI := func(logg float64) *unit.Unit { return unit.New(math.Pow(10, logg)*1.0e-2, unit.MeterPerSecond2) }
	minLogG := photosphere.MinLogG(p.Teff)
	if _, err = report.clampUnit("LogG", gSI(loggIn), gSI(minLogG), gSI(photosphere.MaxLogG)); err != nil {
		return p, report, err
	}
	p.LogG = loggIn
	if _, ok := report["LogG"]; ok {
		p.LogG = math.Min(math.Max(loggIn, minLogG), photosphere.MaxLogG)
		report["LogG"] = ClampedValue{Requested: loggIn, Used: p.LogG}
	}

	p.ZScale = math.Pow(10, report.clamp("Metallicity", zIn, photosphere.MinLogZ, photosphere.MaxLogZ))

	msun := phys.MSun * 1.0e-3
	kg := func(m float64) *unit.Unit { return unit.New(m*msun, unit.Kilogram) }
	if _, err = report.clampUnit("Mass", kg(massIn), kg(photosphere.MinMass), kg(photosphere.MaxMass)); err != nil {
		return p, report, err
	}
	p.Mass = massIn
	if _, ok := report["Mass"]; ok {
		p.Mass = math.Min(math.Max(massIn, photosphere.MinMass), photosphere.MaxMass)
		report["Mass"] = ClampedValue{Requested: massIn, Used: p.Mass}
	}

	p.Mode = photosphere.Mode(strings.ToLower(cfg.GetString("Mode")))
	switch p.Mode {
	case photosphere.Fast, photosphere.Real, photosphere.Custom:
	default:
		return p, report, fmt.Errorf("photoutil: Mode must be fast, real, or custom; got %q", cfg.GetString("Mode"))
	}
	p.Voigt = cfg.GetBool("Custom.Voigt")
	p.Scattering = cfg.GetBool("Custom.Scattering")
	p.TempCorr = cfg.GetBool("Custom.TempCorr")
	p.Convection = cfg.GetBool("Custom.Convection")
	p.Molecules = cfg.GetBool("Molecules")

	p.LogFudge = get("LogFudge")
	p.OuterIterations = int(report.clamp("OuterIterations", float64(getInt("OuterIterations")),
		photosphere.MinIterations, photosphere.MaxIterations))
	p.InnerIterations = int(report.clamp("InnerIterations", float64(getInt("InnerIterations")),
		photosphere.MinIterations, photosphere.MaxIterations))
	p.Tolerance = report.clamp("Tolerance", get("Tolerance"), 0, 1)

	p.NumDepths = int(report.clamp("NumDepths", float64(getInt("NumDepths")), 8, 200))
	p.LambdaStart = report.clamp("Lambda.Start", get("Lambda.Start"), 100, 20000)
	p.LambdaStop = report.clamp("Lambda.Stop", get("Lambda.Stop"), p.LambdaStart+1, 50000)
	p.LambdaPoints = int(report.clamp("Lambda.Points", float64(getInt("Lambda.Points")), 10, 2000))

	kms := func(name string, max float64) float64 {
		if err != nil {
			return 0
		}
		in := get(name)
		if err != nil {
			return 0
		}
		var v *unit.Unit
		v, err = report.clampUnit(name, unit.New(in*1.0e3, unit.MeterPerSecond),
			unit.New(0, unit.MeterPerSecond), unit.New(max*1.0e3, unit.MeterPerSecond))
		if err != nil {
			return 0
		}
		if _, ok := report[name]; ok {
			report[name] = ClampedValue{Requested: in, Used: v.Value() * 1.0e-3}
			return v.Value() * 1.0e-3
		}
		return in
	}
	p.XiT = kms("XiT", 20)
	p.Broadening.VMacro = kms("VMacro", 50)
	p.Broadening.VEq = kms("VEq", 500)
	p.Broadening.Inclination = report.clamp("Inclination", get("Inclination"), 0, 90)

	p.FilterLambda = report.clamp("Filter.Lambda", get("Filter.Lambda"), p.LambdaStart, p.LambdaStop)
	p.FilterSigma = report.clamp("Filter.Sigma", get("Filter.Sigma"), 1.0e-3, 100)
	if err != nil {
		return p, report, err
	}

	if path := os.ExpandEnv(cfg.GetString("LineList")); path != "" {
		p.Lines, err = LineList(path)
		if err != nil {
			return p, report, err
		}
	}
	if l, ok, err := userLine(cfg, get); err != nil {
		return p, report, err
	} else if ok {
		p.Extra = append(p.Extra, l)
	}
	if err != nil {
		return p, report, err
	}
	return p, report, p.Validate()
}

// userLine reads the optional extra line from the Line.* options. It
// returns false if Line.Species is empty.
func userLine(cfg *viper.Viper, get func(string) float64) (lines.Line, bool, error) {
	species := cfg.GetString("Line.Species")
	if species == "" {
		return lines.Line{}, false, nil
	}
	l := lines.Line{
		Name:        cfg.GetString("Line.Name"),
		Species:     species,
		Lambda0:     get("Line.Lambda0"),
		Mass:        get("Line.Mass"),
		A12:         get("Line.A12"),
		LogF:        get("Line.LogF"),
		Aij:         get("Line.Aij"),
		ChiL:        get("Line.ChiL"),
		GwL:         get("Line.GwL"),
		LogGammaCol: get("Line.GammaCol"),
	}
	if l.Name == "" {
		l.Name = fmt.Sprintf("%s %.3f", l.Species, l.Lambda0)
	}
	if err := l.Validate(); err != nil {
		return l, false, fmt.Errorf("photoutil: user line: %v", err)
	}
	return l, true, nil
}
