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
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/ctessum/unit"
	"github.com/kr/pretty"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/photosphere"
)

// testConfig returns a configuration holding the default value of
// every option.
func testConfig() *viper.Viper {
	v := viper.New()
	for _, o := range options {
		v.SetDefault(o.name, o.defaultVal)
	}
	return v
}

func TestParamsDefault(t *testing.T) {
	p, report, err := Params(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(report) != 0 {
		t.Errorf("clamped defaults: %v", report)
	}
	want := photosphere.DefaultParams()
	want.Voigt, want.Scattering = true, true
	if diff := pretty.Diff(p, want); len(diff) > 0 {
		t.Errorf("params differ from defaults:\n%s", strings.Join(diff, "\n"))
	}
}

func TestParamsClamp(t *testing.T) {
	cfg := testConfig()
	cfg.Set("Teff", 60000)
	cfg.Set("LogG", 1.0)
	cfg.Set("Metallicity", 2.5)
	cfg.Set("Mass", 0.01)
	cfg.Set("OuterIterations", 40)
	cfg.Set("VEq", -3)
	p, report, err := Params(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := ClampReport{
		"Teff":            {Requested: 60000, Used: photosphere.MaxTeff},
		"LogG":            {Requested: 1, Used: 3},
		"Metallicity":     {Requested: 2.5, Used: 1},
		"Mass":            {Requested: 0.01, Used: 0.1},
		"OuterIterations": {Requested: 40, Used: 12},
		"VEq":             {Requested: -3, Used: 0},
	}
	if !reflect.DeepEqual(report, want) {
		t.Errorf("report = %v; want %v", report, want)
	}
	if p.Teff != photosphere.MaxTeff || p.LogG != 3 || math.Abs(p.ZScale-10) > 1e-12 ||
		p.Mass != photosphere.MinMass || p.OuterIterations != photosphere.MaxIterations || p.Broadening.VEq != 0 {
		t.Errorf("clamped params = %+v", p)
	}
}

func TestParamsLogGFloor(t *testing.T) {
	cfg := testConfig()
	cfg.Set("Teff", 5500)
	cfg.Set("LogG", 0.2)
	p, report, err := Params(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.LogG != 1.5 {
		t.Errorf("LogG = %g; want 1.5", p.LogG)
	}
	if c := report["LogG"]; c.Requested != 0.2 || c.Used != 1.5 {
		t.Errorf("report = %v", report)
	}
}

func TestParamsMissing(t *testing.T) {
	cfg := testConfig()
	cfg.Set("Teff", "")
	cfg.Set("Mode", " ")
	_, _, err := Params(cfg)
	mErr, ok := err.(*MissingFieldError)
	if !ok {
		t.Fatalf("error %v is not a *MissingFieldError", err)
	}
	if !reflect.DeepEqual(mErr.Fields, []string{"Teff", "Mode"}) {
		t.Errorf("missing fields = %v", mErr.Fields)
	}
}

func TestParamsInvalid(t *testing.T) {
	t.Run("mode", func(t *testing.T) {
		cfg := testConfig()
		cfg.Set("Mode", "slow")
		if _, _, err := Params(cfg); err == nil {
			t.Error("no error for invalid mode")
		}
	})
	t.Run("number", func(t *testing.T) {
		cfg := testConfig()
		cfg.Set("LogFudge", "a lot")
		if _, _, err := Params(cfg); err == nil {
			t.Error("no error for invalid number")
		}
	})
	t.Run("user line", func(t *testing.T) {
		cfg := testConfig()
		cfg.Set("Line.Species", "XxI")
		cfg.Set("Line.Lambda0", 500)
		if _, _, err := Params(cfg); err == nil {
			t.Error("no error for unknown species")
		}
	})
}

func TestParamsUserLine(t *testing.T) {
	cfg := testConfig()
	cfg.Set("Mode", "FAST")
	cfg.Set("Line.Species", "FeI")
	cfg.Set("Line.Lambda0", 500.0)
	cfg.Set("Line.LogF", -1.2)
	cfg.Set("Line.Aij", 1e7)
	cfg.Set("Line.ChiL", 1.5)
	cfg.Set("Line.GwL", 5)
	p, _, err := Params(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.Mode != photosphere.Fast {
		t.Errorf("mode = %q", p.Mode)
	}
	if len(p.Extra) != 1 {
		t.Fatalf("extra lines = %v", p.Extra)
	}
	l := p.Extra[0]
	if l.Name != "FeI 500.000" || l.Lambda0 != 500 || l.LogF != -1.2 || l.GwL != 5 {
		t.Errorf("line = %+v", l)
	}
}

func TestClampUnit(t *testing.T) {
	report := make(ClampReport)
	_, err := report.clampUnit("Teff", unit.New(5000, unit.Kelvin), unit.New(0, unit.Meter), unit.New(1, unit.Meter))
	if err == nil {
		t.Error("no error for mismatched dimensions")
	}
	v, err := report.clampUnit("VEq", unit.New(2, unit.MeterPerSecond), unit.New(0, unit.MeterPerSecond), unit.New(1, unit.MeterPerSecond))
	if err != nil {
		t.Fatal(err)
	}
	if v.Value() != 1 || report["VEq"] != (ClampedValue{Requested: 2, Used: 1}) {
		t.Errorf("clamped %v; report %v", v, report)
	}
}

func TestClampReportLog(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ClampReport{
		"Teff": {Requested: 1, Used: 3000},
		"Mass": {Requested: 30, Used: 20},
	}.Log(logger)
	if len(hook.Entries) != 2 {
		t.Fatalf("%d log entries; want 2", len(hook.Entries))
	}
	for i, name := range []string{"Mass", "Teff"} {
		e := hook.Entries[i]
		if e.Level != logrus.WarnLevel || e.Data["option"] != name {
			t.Errorf("entry %d = %v %v", i, e.Level, e.Data)
		}
	}
}

func TestFloatList(t *testing.T) {
	cfg := testConfig()
	cfg.Set("Grid.Teff", []string{"4000, 5000", "6000"})
	v, err := floatList(cfg, "Grid.Teff")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, []float64{4000, 5000, 6000}) {
		t.Errorf("list = %v", v)
	}
	cfg.Set("Grid.Teff", []string{"hot"})
	if _, err := floatList(cfg, "Grid.Teff"); err == nil {
		t.Error("no error for invalid number")
	}
}
