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

// Package phys holds the physical constants, log-space depth columns and
// small numerical helpers shared by the photosphere science packages.
// All quantities are in cgs units unless noted otherwise.
package phys

import "math"

// Physical constants [cgs].
const (
	C     = 2.9979249e10    // speed of light [cm/s]
	Sigma = 5.670373e-5     // Stefan-Boltzmann constant [erg/s/cm²/K⁴]
	K     = 1.3806488e-16   // Boltzmann constant [erg/K]
	H     = 6.62606957e-27  // Planck constant [erg s]
	E     = 4.80320425e-10  // fundamental charge [statC]
	Me    = 9.10938291e-28  // electron mass [g]
	G     = 6.674e-8        // gravitational constant [cgs]
	Amu   = 1.66053892e-24  // atomic mass unit [g]
	EV    = 1.602176565e-12 // electron volt [erg]
	RSun  = 6.955e10        // solar radius [cm]
	MSun  = 1.9891e33       // solar mass [g]
	LSun  = 3.846e33        // solar bolometric luminosity [erg/s]
	A0    = 5.29177211e-9   // Bohr radius [cm]
)

// Natural logarithms of the constants above.
var (
	LogC     = math.Log(C)
	LogSigma = math.Log(Sigma)
	LogK     = math.Log(K)
	LogH     = math.Log(H)
	LogE     = math.Log(E)
	LogMe    = math.Log(Me)
	LogG     = math.Log(G)
	LogAmu   = math.Log(Amu)
	LogEV    = math.Log(EV)
	Ln10     = math.Ln10
	Log10E   = math.Log10E
)

// Floor is the smallest relative population carried by the solvers;
// smaller values are set to the floor to avoid underflow in log space.
const Floor = 1.0e-49

// LogFloor is the natural log of Floor.
var LogFloor = math.Log(Floor)

// Column holds a depth-dependent quantity in both linear and natural-log
// form. The two slices are always kept consistent by Set and SetLn.
type Column struct {
	Val []float64 // linear value
	Ln  []float64 // natural log of Val
}

// NewColumn returns a zero-valued column with n depths.
func NewColumn(n int) Column {
	return Column{Val: make([]float64, n), Ln: make([]float64, n)}
}

// ColumnFromLn creates a column from natural-log values.
func ColumnFromLn(ln []float64) Column {
	c := NewColumn(len(ln))
	for i, v := range ln {
		c.SetLn(i, v)
	}
	return c
}

// ColumnFromVal creates a column from linear values.
func ColumnFromVal(val []float64) Column {
	c := NewColumn(len(val))
	for i, v := range val {
		c.Set(i, v)
	}
	return c
}

// Len returns the number of depths.
func (c Column) Len() int { return len(c.Val) }

// Set sets the linear value at depth i.
func (c Column) Set(i int, v float64) {
	c.Val[i] = v
	c.Ln[i] = math.Log(v)
}

// SetLn sets the natural-log value at depth i.
func (c Column) SetLn(i int, ln float64) {
	c.Ln[i] = ln
	c.Val[i] = math.Exp(ln)
}

// Copy returns a deep copy of c.
func (c Column) Copy() Column {
	o := NewColumn(c.Len())
	copy(o.Val, c.Val)
	copy(o.Ln, c.Ln)
	return o
}

// Tau returns n optical depths evenly spaced in log10 between log10Min and
// log10Max inclusive. The endpoints are set exactly.
func Tau(n int, log10Min, log10Max float64) Column {
	t := NewColumn(n)
	step := (log10Max - log10Min) / float64(n-1)
	for i := 0; i < n; i++ {
		l := log10Min + float64(i)*step
		if i == n-1 {
			l = log10Max
		}
		t.SetLn(i, l*Ln10)
		t.Val[i] = math.Pow(10, l)
	}
	return t
}

// Interpol linearly interpolates y(x) at x0. x must be monotonic
// (increasing or decreasing). Values outside the tabulated range are
// clamped to the nearest end point.
func Interpol(x, y []float64, x0 float64) float64 {
	n := len(x)
	if n == 1 {
		return y[0]
	}
	inc := x[n-1] > x[0]
	if (inc && x0 <= x[0]) || (!inc && x0 >= x[0]) {
		return y[0]
	}
	if (inc && x0 >= x[n-1]) || (!inc && x0 <= x[n-1]) {
		return y[n-1]
	}
	for i := 1; i < n; i++ {
		if x[i] == x0 {
			return y[i]
		}
		if (inc && x[i] > x0) || (!inc && x[i] < x0) {
			step := x[i] - x[i-1]
			return y[i]*(x0-x[i-1])/step + y[i-1]*(x[i]-x0)/step
		}
	}
	return y[n-1]
}

// LogSumExp returns ln(Σ exp(v)) for the given natural-log values.
func LogSumExp(v ...float64) float64 {
	max := math.Inf(-1)
	for _, x := range v {
		if x > max {
			max = x
		}
	}
	if math.IsInf(max, -1) {
		return max
	}
	var s float64
	for _, x := range v {
		s += math.Exp(x - max)
	}
	return max + math.Log(s)
}

// logExpm1 returns ln(e^x - 1) without overflowing for large x.
func logExpm1(x float64) float64 {
	if x > 50 {
		return x + math.Log1p(-math.Exp(-x))
	}
	return math.Log(math.Expm1(x))
}

// LogPlanck returns ln B_λ(T) [erg/s/cm²/cm/sr] for wavelength lambda [cm].
func LogPlanck(t, lambda float64) float64 {
	lnLam := math.Log(lambda)
	x := math.Exp(LogH + LogC - LogK - lnLam - math.Log(t))
	return math.Ln2 + LogH + 2*LogC - 5*lnLam - logExpm1(x)
}

// LogDBDT returns ln(∂B_λ/∂T) for wavelength lambda [cm].
func LogDBDT(t, lambda float64) float64 {
	lnLam := math.Log(lambda)
	lnT := math.Log(t)
	lnX := LogH + LogC - LogK - lnLam - lnT
	x := math.Exp(lnX)
	pre := math.Ln2 + LogH + 2*LogC + LogH + LogC - LogK - 6*lnLam - 2*lnT
	// e^x / (e^x-1)^2 = 1 / (e^x - 2 + e^-x)
	if x > 50 {
		return pre - x
	}
	return pre + x - 2*logExpm1(x)
}
