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
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/ctessum/gobra"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
	"github.com/spatialmodel/photosphere"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
	// model options may be set in model service requests.
	model bool
}

var options []option

func init() {
	structure := []*pflag.FlagSet{runCmd.Flags(), gridCmd.Flags()}
	spectrum := []*pflag.FlagSet{runCmd.Flags(), resynthCmd.Flags(), gridCmd.Flags()}
	outputs := []*pflag.FlagSet{runCmd.Flags(), resynthCmd.Flags()}

	// Options are the configuration options available to photosphere.
	options = []option{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages to print:
              debug, info, warning, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Teff",
			usage: `
              Teff is the effective temperature of the star [K]. Values
              outside 3000 to 50000 K are clamped.`,
			shorthand:  "t",
			defaultVal: 5778.0,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "LogG",
			usage: `
              LogG is the base-10 log of the surface gravity [cm/s²].
              Values below a temperature-dependent floor or above 7 are
              clamped.`,
			shorthand:  "g",
			defaultVal: 4.44,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "Metallicity",
			usage: `
              Metallicity is the base-10 log of the metal abundance
              relative to solar [dex], from -3 to 1.`,
			shorthand:  "z",
			defaultVal: 0.0,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "Mass",
			usage: `
              Mass is the stellar mass in solar masses, from 0.1 to 20.
              It only affects the reported radius and luminosity.`,
			defaultVal: 1.0,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "Mode",
			usage: `
              Mode selects the physics: "fast" uses a Gaussian plus
              Lorentzian line profile and pure absorption, "real" uses the
              Voigt profile and scattering, and "custom" takes each switch
              from the Custom options.`,
			defaultVal: "real",
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Custom.Voigt",
			usage: `
              Custom.Voigt selects the Voigt line profile in custom mode.`,
			defaultVal: true,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Custom.Scattering",
			usage: `
              Custom.Scattering includes scattering in the line source
              function in custom mode.`,
			defaultVal: true,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Custom.TempCorr",
			usage: `
              Custom.TempCorr applies a radiative-equilibrium temperature
              correction in each structure iteration in custom mode.`,
			defaultVal: false,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "Custom.Convection",
			usage: `
              Custom.Convection limits the temperature gradient to the
              adiabatic gradient in custom mode.`,
			defaultVal: false,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "Molecules",
			usage: `
              Molecules includes the TiO bands in cool stars.`,
			defaultVal: true,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "LogFudge",
			usage: `
              LogFudge is added to the continuous opacity [dex].`,
			defaultVal: 0.0,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "OuterIterations",
			usage: `
              OuterIterations is the number of structure iterations, from
              5 to 12.`,
			defaultVal: photosphere.MaxIterations,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "InnerIterations",
			usage: `
              InnerIterations is the number of electron-pressure
              iterations within each structure iteration, from 5 to 12.`,
			defaultVal: photosphere.MaxIterations,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "Tolerance",
			usage: `
              Tolerance, if greater than zero, stops the structure
              iteration once the largest relative change in gas pressure
              falls below it.`,
			defaultVal: 0.0,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "NumDepths",
			usage: `
              NumDepths is the number of depth points.`,
			defaultVal: 48,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "Lambda.Start",
			usage: `
              Lambda.Start is the first wavelength of the continuum grid
              [nm].`,
			defaultVal: 260.0,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "Lambda.Stop",
			usage: `
              Lambda.Stop is the last wavelength of the continuum grid
              [nm].`,
			defaultVal: 2600.0,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "Lambda.Points",
			usage: `
              Lambda.Points is the number of continuum wavelengths.`,
			defaultVal: 200,
			flagsets:   structure,
			model:      true,
		},
		{
			name: "XiT",
			usage: `
              XiT is the microturbulent velocity [km/s].`,
			defaultVal: 1.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "VMacro",
			usage: `
              VMacro is the macroturbulent velocity [km/s].`,
			defaultVal: 1.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "VEq",
			usage: `
              VEq is the equatorial rotation velocity [km/s].`,
			defaultVal: 2.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Inclination",
			usage: `
              Inclination is the angle between the rotation axis and the
              line of sight [degrees].`,
			defaultVal: 90.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Filter.Lambda",
			usage: `
              Filter.Lambda is the center of the narrow-band filter used
              for the disk intensity profile [nm].`,
			defaultVal: 656.282,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Filter.Sigma",
			usage: `
              Filter.Sigma is the width of the narrow-band filter [nm].`,
			defaultVal: 0.1,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "LineList",
			usage: `
              LineList is the path or HTTP(S) URL of a TOML line list
              with one [[Line]] table per line. If set, it replaces the
              built-in list. It can contain environment variables.`,
			defaultVal: "",
			flagsets:   spectrum,
		},
		{
			name: "Line.Species",
			usage: `
              Line.Species is the absorber of an extra line, e.g. "FeI".
              If empty no extra line is added.`,
			defaultVal: "",
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Line.Name",
			usage: `
              Line.Name labels the extra line.`,
			defaultVal: "",
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Line.Lambda0",
			usage: `
              Line.Lambda0 is the rest wavelength of the extra line [nm].`,
			defaultVal: 0.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Line.Mass",
			usage: `
              Line.Mass is the mass of the absorber [amu]. If zero the
              element mass is used.`,
			defaultVal: 0.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Line.A12",
			usage: `
              Line.A12 overrides the abundance of the absorbing element
              if non-zero.`,
			defaultVal: 0.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Line.LogF",
			usage: `
              Line.LogF is the base-10 log of the oscillator strength.`,
			defaultVal: 0.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Line.Aij",
			usage: `
              Line.Aij is the radiative damping constant [1/s].`,
			defaultVal: 0.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Line.ChiL",
			usage: `
              Line.ChiL is the excitation energy of the lower level [eV].`,
			defaultVal: 0.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Line.GwL",
			usage: `
              Line.GwL is the statistical weight of the lower level.`,
			defaultVal: 1.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "Line.GammaCol",
			usage: `
              Line.GammaCol is the natural log of the collisional damping
              enhancement.`,
			defaultVal: 0.0,
			flagsets:   spectrum,
			model:      true,
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path of the JSON summary of the model. It
              can contain environment variables.`,
			shorthand:  "o",
			defaultVal: "photosphere.json",
			flagsets:   outputs,
		},
		{
			name: "SnapshotFile",
			usage: `
              SnapshotFile is where run saves the model and where resynth
              reads it from. It can contain environment variables.`,
			defaultVal: "",
			flagsets:   outputs,
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile, if not empty, is the path of a PNG plot of the
              normalized spectrum.`,
			defaultVal: "",
			flagsets:   outputs,
		},
		{
			name: "Grid.Teff",
			usage: `
              Grid.Teff lists the effective temperatures of the grid [K].`,
			defaultVal: []string{"4500", "5500", "6500"},
			flagsets:   []*pflag.FlagSet{gridCmd.Flags()},
		},
		{
			name: "Grid.LogG",
			usage: `
              Grid.LogG lists the surface gravities of the grid.`,
			defaultVal: []string{"4.5"},
			flagsets:   []*pflag.FlagSet{gridCmd.Flags()},
		},
		{
			name: "Grid.Workers",
			usage: `
              Grid.Workers is the number of models computed at once. If
              zero the number of CPUs is used.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{gridCmd.Flags()},
		},
		{
			name: "Grid.OutputFile",
			usage: `
              Grid.OutputFile is the path of the CSV grid summary.`,
			defaultVal: "grid.csv",
			flagsets:   []*pflag.FlagSet{gridCmd.Flags()},
		},
		{
			name: "Grid.SnapshotDir",
			usage: `
              Grid.SnapshotDir, if not empty, is the directory in which
              a snapshot of each grid model is saved.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{gridCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("PHOTOSPHERE")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		if option.model {
			modelOptions[option.name] = true
		}
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case []string:
				set.StringSliceP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(resynthCmd)
	Root.AddCommand(gridCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := os.ExpandEnv(Cfg.GetString("config")); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("photosphere: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("photosphere: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// loadConfig reads the configuration for a long-running process, which
// keeps the defaults rather than exiting when the configuration is bad.
func loadConfig(log logrus.FieldLogger) bool {
	if err := setConfig(); err != nil {
		log.WithError(err).Warn("photosphere: using default configuration")
		return false
	}
	return true
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "photosphere",
	Short: "A stellar atmosphere model and line synthesizer.",
	Long: `photosphere computes the structure of a static, plane-parallel stellar
atmosphere in local thermodynamic equilibrium and synthesizes its emergent
spectrum. Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'PHOTOSPHERE_var' where 'var'
is the name of the variable to be set, with dots replaced by underscores.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of photosphere.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("photosphere v%s\n", photosphere.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute a model atmosphere and its spectrum.",
	Long: `run computes the atmospheric structure for the configured star, then
synthesizes the line spectrum and writes the results to OutputFile,
SnapshotFile, and PlotFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.StandardLogger()
		p, report, err := Params(Cfg)
		if err != nil {
			return err
		}
		report.Log(logger)
		d, err := photosphere.Run(context.Background(), p, logger)
		if err != nil {
			return err
		}
		if err := writeOutputs(d, report, true, logger); err != nil {
			return err
		}
		printSummary(cmd, d)
		return nil
	},
	DisableAutoGenTag: true,
}

var resynthCmd = &cobra.Command{
	Use:   "resynth",
	Short: "Synthesize the spectrum of a saved model.",
	Long: `resynth reads the model saved in SnapshotFile and synthesizes its
spectrum again with the configured line, broadening, and filter options,
without recomputing the structure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.StandardLogger()
		path := os.ExpandEnv(Cfg.GetString("SnapshotFile"))
		if path == "" {
			return &MissingFieldError{Fields: []string{"SnapshotFile"}}
		}
		p, report, err := Params(Cfg)
		if err != nil {
			return err
		}
		report.Log(logger)
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("photosphere: %v", err)
		}
		defer f.Close()
		d, err := photosphere.Resynthesize(context.Background(), f, p, logger)
		if err != nil {
			return err
		}
		if err := writeOutputs(d, report, false, logger); err != nil {
			return err
		}
		printSummary(cmd, d)
		return nil
	},
	DisableAutoGenTag: true,
}

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Compute a grid of models.",
	Long: `grid computes a model for every combination of Grid.Teff and Grid.LogG,
running Grid.Workers models at once, and writes a CSV summary to
Grid.OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.StandardLogger()
		base, report, err := Params(Cfg)
		if err != nil {
			return err
		}
		report.Log(logger)
		teffs, err := floatList(Cfg, "Grid.Teff")
		if err != nil {
			return err
		}
		loggs, err := floatList(Cfg, "Grid.LogG")
		if err != nil {
			return err
		}
		mc := photosphere.NewModelCache(Cfg.GetInt("Grid.Workers"), len(teffs)*len(loggs), logger)
		return writeFile(os.ExpandEnv(Cfg.GetString("Grid.OutputFile")), func(w io.Writer) error {
			return Grid(context.Background(), base, teffs, loggs, mc, w,
				os.ExpandEnv(Cfg.GetString("Grid.SnapshotDir")), logger)
		}, logger)
	},
	DisableAutoGenTag: true,
}

// floatList reads a list of numbers from the named option.
func floatList(cfg *viper.Viper, name string) ([]float64, error) {
	var o []float64
	for _, s := range cast.ToStringSlice(cfg.Get(name)) {
		for _, f := range strings.Split(s, ",") {
			if f = strings.TrimSpace(f); f == "" {
				continue
			}
			v, err := cast.ToFloat64E(f)
			if err != nil {
				return nil, fmt.Errorf("photoutil: option %s: %v", name, err)
			}
			o = append(o, v)
		}
	}
	return o, nil
}

// writeOutputs writes the configured output files for d. The snapshot
// is only written if save is true.
func writeOutputs(d *photosphere.Atmosphere, report ClampReport, save bool, log logrus.FieldLogger) error {
	if path := os.ExpandEnv(Cfg.GetString("OutputFile")); path != "" {
		err := writeFile(path, func(w io.Writer) error {
			e := json.NewEncoder(w)
			e.SetIndent("", "  ")
			return e.Encode(NewResult(d, report))
		}, log)
		if err != nil {
			return err
		}
	}
	if path := os.ExpandEnv(Cfg.GetString("SnapshotFile")); save && path != "" {
		if err := writeFile(path, func(w io.Writer) error { return photosphere.Save(w)(d) }, log); err != nil {
			return err
		}
	}
	if path := os.ExpandEnv(Cfg.GetString("PlotFile")); path != "" {
		if err := writeFile(path, func(w io.Writer) error { return WriteSpectrumPlot(w, d) }, log); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(cmd *cobra.Command, d *photosphere.Atmosphere) {
	r, l := d.Solar()
	cmd.Printf("Teff = %.0f K, log g = %.2f: %d iterations, R = %.3g R☉, L = %.3g L☉\n",
		d.Params.Teff, d.Params.LogG, d.Iterations, r, l)
	for _, c := range d.Colors {
		cmd.Printf("  %s = %.3f\n", c.Name, c.Value)
	}
}

// StartWebServer starts the configuration web page.
func StartWebServer() {
	loadConfig(logrus.StandardLogger())

	http.HandleFunc("/setConfig", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		configFile := r.Form["config"][0]
		Root.PersistentFlags().Set("config", configFile)
		err := setConfig()
		if err != nil {
			http.Error(w, err.Error(), 204)
			return
		}
		config := make(map[string]interface{})
		for _, option := range options {
			config[option.name] = Cfg.Get(option.name)
		}
		e := json.NewEncoder(w)
		if err := e.Encode(config); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
	})

	log.Println("Loading front-end...")

	for _, cmd := range []*cobra.Command{Root, versionCmd, runCmd, resynthCmd, gridCmd} {
		cmd.SilenceUsage = true // We don't want the usage messages in the GUI.
	}

	const address = "localhost:7171"
	output := template.Must(template.New("").Parse(configPage(address)))
	server := gobra.Server{Root: Root, ServerAddress: address, AllowCORS: false, HTML: output}
	log.Println("Server starting... ")
	open.Run("http://" + address)
	fmt.Println("If not opened automatically, please visit http://" + address)
	server.Start()
}
