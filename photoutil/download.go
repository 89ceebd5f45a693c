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
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/science/lines"
)

// maxRetryTime is the longest time spent retrying a download or a file
// write.
var maxRetryTime = 2 * time.Minute

// retry calls op until it succeeds or maxRetryTime has passed, logging
// each failure.
func retry(what string, op func() error, log logrus.FieldLogger) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxRetryTime
	return backoff.RetryNotify(op, b, func(err error, d time.Duration) {
		log.WithFields(logrus.Fields{"retryIn": d}).Warnf("%s: %v", what, err)
	})
}

// isURL returns whether path should be fetched over HTTP.
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetch returns the contents of path, which is either a local file or
// an HTTP(S) URL. Server errors and failed connections are retried;
// other error responses are not.
func fetch(path string, log logrus.FieldLogger) ([]byte, error) {
	if !isURL(path) {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("photoutil: %v", err)
		}
		return b, nil
	}
	var body []byte
	var final error
	err := retry("downloading "+path, func() error {
		resp, err := http.Get(path)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("server returned %s", resp.Status)
		}
		if resp.StatusCode != http.StatusOK {
			final = fmt.Errorf("photoutil: downloading %s: server returned %s", path, resp.Status)
			return nil
		}
		body, err = ioutil.ReadAll(resp.Body)
		return err
	}, log)
	if err != nil {
		return nil, fmt.Errorf("photoutil: downloading %s: %v", path, err)
	}
	return body, final
}

// LineList reads a TOML line list from a local file or an HTTP(S) URL.
func LineList(path string) ([]lines.Line, error) {
	b, err := fetch(path, logrus.StandardLogger())
	if err != nil {
		return nil, err
	}
	l, err := lines.ReadList(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("photoutil: %s: %v", path, err)
	}
	if len(l) == 0 {
		return nil, fmt.Errorf("photoutil: line list %s is empty", path)
	}
	return l, nil
}

// writeFile creates path and fills it using write, retrying if the file
// cannot be created or written.
func writeFile(path string, write func(io.Writer) error, log logrus.FieldLogger) error {
	err := retry("writing "+path, func() error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := write(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, log)
	if err != nil {
		return fmt.Errorf("photoutil: writing %s: %v", path, err)
	}
	return nil
}
