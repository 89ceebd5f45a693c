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
	"net/http"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere"
)

// modelOptions are the options a model request may set.
var modelOptions = map[string]bool{}

// NewServer returns a handler for the model service. POST /model takes
// a JSON object of option overrides, e.g. {"Teff": 6000}, and returns
// the Result of the model. Options that are not overridden take their
// values from cfg. GET /healthz reports whether the service is up.
func NewServer(cfg *viper.Viper, mc *photosphere.ModelCache, log logrus.FieldLogger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("/model", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "model requests must use POST", http.StatusMethodNotAllowed)
			return
		}
		var overrides map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
			http.Error(w, fmt.Sprintf("photoutil: decoding request: %v", err), http.StatusBadRequest)
			return
		}
		res, err := serveModel(r.Context(), cfg, overrides, mc, log)
		if err != nil {
			status := http.StatusInternalServerError
			if _, ok := err.(requestError); ok {
				status = http.StatusBadRequest
			}
			log.WithError(err).Warn("model request failed")
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			log.WithError(err).Error("writing model response")
		}
	})
	return mux
}

// requestError is a problem with the request rather than the model.
type requestError struct{ error }

func serveModel(ctx context.Context, cfg *viper.Viper, overrides map[string]interface{}, mc *photosphere.ModelCache, log logrus.FieldLogger) (*Result, error) {
	v := viper.New()
	for _, o := range options {
		if modelOptions[o.name] {
			v.SetDefault(o.name, cfg.Get(o.name))
		}
	}
	for k, val := range overrides {
		if !modelOptions[k] {
			return nil, requestError{fmt.Errorf("photoutil: unknown model option %q", k)}
		}
		v.Set(k, val)
	}
	p, report, err := Params(v)
	if err != nil {
		return nil, requestError{err}
	}
	report.Log(log)
	d, err := mc.Get(ctx, p)
	if err != nil {
		return nil, err
	}
	return NewResult(d, report), nil
}

// ServerConfig configures the model service.
type ServerConfig struct {
	// Address is the address to listen on.
	Address string
	// Workers is the number of models computed at once and Memory the
	// number of models kept in memory.
	Workers, Memory int
	// Model holds defaults for the model options.
	Model map[string]interface{}
}

// NewServerFromConfig returns the model service configured by c, with
// defaults for options not in c.Model taken from Cfg.
func NewServerFromConfig(c *ServerConfig, log logrus.FieldLogger) (http.Handler, error) {
	for k, v := range c.Model {
		if !modelOptions[k] {
			return nil, fmt.Errorf("photoutil: unknown model option %q in server configuration", k)
		}
		Cfg.Set(k, v)
	}
	if _, _, err := Params(Cfg); err != nil {
		return nil, err
	}
	memory := c.Memory
	if memory < 1 {
		memory = 20
	}
	return NewServer(Cfg, photosphere.NewModelCache(c.Workers, memory, log), log), nil
}
