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

package refdata

import (
	"math"
	"sync"

	"github.com/golang/groupcache/lru"
)

// memoEntries bounds the number of cached partition-function evaluations.
const memoEntries = 1 << 14

type memoKey struct {
	species string
	t       uint64
}

var (
	memo   = lru.New(memoEntries)
	memoMu sync.Mutex
)

// memoized returns the cached result of f for species at temperature t,
// computing and caching it if necessary.
func memoized(species string, t float64, f func() Quantity) Quantity {
	k := memoKey{species: species, t: math.Float64bits(t)}
	memoMu.Lock()
	v, ok := memo.Get(k)
	memoMu.Unlock()
	if ok {
		return v.(Quantity)
	}
	q := f()
	memoMu.Lock()
	memo.Add(k, q)
	memoMu.Unlock()
	return q
}
