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

package hash

import (
	"strings"
	"testing"
)

type params struct {
	Teff, LogG float64
	Lines      []string
}

func TestKey(t *testing.T) {
	a := Key("model", params{Teff: 5778, LogG: 4.44})
	b := Key("model", params{Teff: 5778, LogG: 4.44})
	if a != b {
		t.Errorf("equal inputs gave %s and %s", a, b)
	}
	if !strings.HasPrefix(a, "model-") {
		t.Errorf("key %s lacks namespace", a)
	}
	if c := Key("model", params{Teff: 5779, LogG: 4.44}); c == a {
		t.Error("different inputs gave the same key")
	}
	if c := Key("grid", params{Teff: 5778, LogG: 4.44}); c[len("grid-"):] == a[len("model-"):] {
		t.Error("namespace does not change the key")
	}
	if c := Key("model", params{Teff: 5778, LogG: 4.44, Lines: []string{"NaI"}}); c == a {
		t.Error("line list does not change the key")
	}
}

func TestKeyUnencodable(t *testing.T) {
	type f struct{ F func() }
	a, b := Key("x", f{}), Key("x", f{})
	if a != b {
		t.Errorf("spew fallback is not stable: %s != %s", a, b)
	}
}
