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

// Package hash creates cache keys for model inputs.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
)

var printer = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisableMethods:          true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Key returns a cache key for object in namespace. Objects gob cannot
// encode are printed with spew instead.
func Key(namespace string, object interface{}) string {
	h := fnv.New128a()
	start(h, namespace)
	if err := gob.NewEncoder(h).Encode(object); err != nil {
		h.Reset()
		start(h, namespace)
		printer.Fprintf(h, "%#v", object)
	}
	return fmt.Sprintf("%s-%x", namespace, h.Sum(nil))
}

func start(h hash.Hash, namespace string) {
	fmt.Fprintf(h, "%s\x00", namespace)
}
