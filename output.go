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
	"fmt"
	"reflect"

	"github.com/spatialmodel/photosphere/science/phys"
)

// OutputColumn is one structure column with its description.
type OutputColumn struct {
	Name, Desc, Units string
	Values            []float64
}

// Columns returns the structure columns of d in field order.
func (d *Atmosphere) Columns() []OutputColumn {
	v := reflect.ValueOf(d).Elem()
	t := v.Type()
	colType := reflect.TypeOf(phys.Column{})
	var cols []OutputColumn
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		desc := f.Tag.Get("desc")
		if desc == "" || f.Type != colType {
			continue
		}
		cols = append(cols, OutputColumn{
			Name:   f.Name,
			Desc:   desc,
			Units:  f.Tag.Get("units"),
			Values: v.Field(i).Interface().(phys.Column).Val,
		})
	}
	return cols
}

// Column returns the structure column called name.
func (d *Atmosphere) Column(name string) (OutputColumn, error) {
	for _, c := range d.Columns() {
		if c.Name == name {
			return c, nil
		}
	}
	return OutputColumn{}, fmt.Errorf("photosphere: no column %q", name)
}
