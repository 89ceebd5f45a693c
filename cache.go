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
	"context"
	"fmt"
	"runtime"

	"github.com/ctessum/requestcache"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/photosphere/internal/hash"
)

// ModelCache computes models concurrently, merging duplicate requests
// and keeping recent results in memory. Each model owns its own state,
// so concurrent runs do not interact.
type ModelCache struct {
	c *requestcache.Cache
}

// NewModelCache returns a cache that holds up to memory models and runs
// up to workers of them at once. If workers < 1 the number of CPUs is
// used.
func NewModelCache(workers, memory int, log logrus.FieldLogger) *ModelCache {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ModelCache{
		c: requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
			p := request.(Params)
			return Run(ctx, p, log.WithFields(logrus.Fields{"Teff": p.Teff, "logg": p.LogG}))
		}, workers, requestcache.Deduplicate(), requestcache.Memory(memory)),
	}
}

// Get returns the model for p, computing it if it is not cached. The
// returned model may be shared with other callers and must not be
// modified.
func (mc *ModelCache) Get(ctx context.Context, p Params) (*Atmosphere, error) {
	r := mc.c.NewRequest(ctx, p, hash.Key("model", p))
	result, err := r.Result()
	if err != nil {
		return nil, err
	}
	d, ok := result.(*Atmosphere)
	if !ok {
		return nil, fmt.Errorf("photosphere: cache returned %T", result)
	}
	return d, nil
}
