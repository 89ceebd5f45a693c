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

// Command photosphereweb serves photosphere models over HTTP.
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/photoutil"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

var config = flag.String("config", "example_config.toml", "Path to the configuration file")

func main() {
	flag.Parse()

	f, err := os.Open(os.ExpandEnv(*config))
	if err != nil {
		logger.Fatal(err)
	}
	var c photoutil.ServerConfig
	_, err = toml.DecodeReader(f, &c)
	f.Close()
	if err != nil {
		logger.Fatal(err)
	}
	if c.Address == "" {
		c.Address = ":8080"
	}

	logger.Info("setting up...")
	h, err := photoutil.NewServerFromConfig(&c, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to create server")
	}

	srv := &http.Server{
		Addr:              c.Address,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	logger.Infof("listening on http://%s", c.Address)
	logger.Fatal(srv.ListenAndServe())
}
