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

package opacity

import (
	"math"

	"github.com/spatialmodel/photosphere/science/phys"
	"github.com/spatialmodel/photosphere/science/refdata"
)

// metals computes bound-free extinction of the ground and low-lying
// levels of C I, Mg I, Mg II, Al I, Si I, Si II and Fe I.
type metals struct {
	in *Input
	// ground holds the linear ground-state number density over the
	// statistical weight of each ion, or nil if the element is absent.
	ground map[string][]float64
	tkev   []float64
}

var metalIons = []refdata.Species{
	{Element: "C", Stage: 1}, {Element: "Mg", Stage: 1}, {Element: "Mg", Stage: 2},
	{Element: "Al", Stage: 1}, {Element: "Si", Stage: 1}, {Element: "Si", Stage: 2},
	{Element: "Fe", Stage: 1},
}

func newMetals(in *Input) *metals {
	n := in.Temp.Len()
	m := &metals{in: in, ground: make(map[string][]float64), tkev: make([]float64, n)}
	for i := range m.tkev {
		m.tkev[i] = in.Temp.Val[i] * phys.K / phys.EV
	}
	for _, sp := range metalIons {
		p, ok := in.Pops.Stages[sp.Element]
		if !ok {
			continue
		}
		g := make([]float64, n)
		for i := range g {
			g[i] = math.Exp(p[sp.Stage-1][i] - refdata.LogPartitionFn(sp, in.Temp.Val[i]).Value)
		}
		m.ground[sp.String()] = g
	}
	return m
}

type metalsAt struct {
	*metals
	freq, waveno float64
	terms        []func(i int) float64
}

func (m *metals) at(lambda float64) *metalsAt {
	w := &metalsAt{metals: m, freq: phys.C / lambda, waveno: 1 / lambda}
	add := func(ion string, minFreq float64, f func(g []float64) func(int) float64) {
		g, ok := m.ground[ion]
		if ok && w.freq >= minFreq {
			w.terms = append(w.terms, f(g))
		}
	}
	add("CI", 2.0761e15, w.c1)
	add("MgI", 2.997925e14, mg1.apply(w.freq, m.in.Temp))
	add("MgII", 2.564306e15, w.mg2)
	add("AlI", 1.443e15, w.al1)
	add("SiI", 2.997925e14, si1.apply(w.freq, m.in.Temp))
	add("SiII", 7.6869872e14, si2.apply(w.freq, m.in.Temp))
	if w.waveno >= 21000 {
		add("FeI", 0, w.fe1)
	}
	return w
}

// kappa returns the extinction per unit volume [cm⁻¹] at depth i.
func (w *metalsAt) kappa(i int) float64 {
	if len(w.terms) == 0 {
		return 0
	}
	var k float64
	for _, f := range w.terms {
		k += f(i)
	}
	stim := -math.Expm1(-phys.H * w.freq / (phys.K * w.in.Temp.Val[i]))
	return k * stim
}

// seaton returns a Seaton-type photoionization cross section.
func seaton(freq0, xsect, power, a, freq float64) float64 {
	r := freq0 / freq
	return xsect * (a + r*(1-a)) * math.Sqrt(math.Pow(r, math.Floor(2*power+0.01)))
}

// resonance returns a Fano-like autoionization feature.
func resonance(waveno, center, width, a, b float64) float64 {
	eps := (waveno - center) * 2 / width
	return (a*eps + b) / (eps*eps + 1)
}

const rydbergCM = 109732.298 // [cm⁻¹]

func (w *metalsAt) c1(g []float64) func(int) float64 {
	var x1100, x1240, x1444 float64
	if w.freq >= 2.7254e15 {
		x1100 = math.Pow(10, -16.80-(w.waveno-90777.000)/3/rydbergCM) *
			seaton(2.7254e15, 1.219e-17, 2, 3.317, w.freq)
	}
	if w.freq >= 2.4196e15 {
		x1240 = math.Pow(10, -16.80-(w.waveno-80627.760)/3/rydbergCM) +
			resonance(w.waveno, 93917, 9230, 22.0e-18, 26.0e-18) +
			resonance(w.waveno, 111130, 2743, -10.5e-18, 46.0e-18)
	}
	x1444 = math.Pow(10, -16.80-(w.waveno-69172.400)/3/rydbergCM) +
		resonance(w.waveno, 97700, 2743, 68.0e-18, 118.0e-18)
	return func(i int) float64 {
		tk := w.tkev[i]
		return (x1100*9 + x1240*5*math.Exp(-1.264/tk) + x1444*math.Exp(-2.683/tk)) * g[i]
	}
}

func (w *metalsAt) mg2(g []float64) func(int) float64 {
	var x824 float64
	if w.freq >= 3.635492e15 {
		x824 = seaton(3.635492e15, 1.40e-19, 4, 6.7, w.freq)
	}
	x1169 := 5.11e-19 * math.Pow(2.564306e15/w.freq, 3)
	return func(i int) float64 {
		return (x824*2 + x1169*6*math.Exp(-4.43/w.tkev[i])) * g[i]
	}
}

func (w *metalsAt) al1(g []float64) func(int) float64 {
	x := 6 * 6.5e-17 * math.Pow(1.443e15/w.freq, 5)
	return func(i int) float64 { return x * g[i] }
}

var (
	feG = [...]float64{25, 35, 21, 15, 9, 35, 33, 21, 27, 49, 9, 21, 27, 9, 9,
		25, 33, 15, 35, 3, 5, 11, 15, 13, 15, 9, 21, 15, 21, 25, 35,
		9, 5, 45, 27, 21, 15, 21, 15, 25, 21, 35, 5, 15, 45, 35, 55, 25}
	feE = [...]float64{500, 7500, 12500, 17500, 19000, 19500, 19500, 21000,
		22000, 23000, 23000, 24000, 24000, 24500, 24500, 26000, 26500,
		26500, 27000, 27500, 28500, 29000, 29500, 29500, 29500, 30000,
		31500, 31500, 33500, 33500, 34000, 34500, 34500, 35000, 35500,
		37000, 37000, 37000, 38500, 40000, 40000, 41000, 41000, 43000,
		43000, 43000, 43000, 44000}
	feW = [...]float64{63500, 58500, 53500, 59500, 45000, 44500, 44500, 43000,
		58000, 41000, 54000, 40000, 40000, 57500, 55500, 38000, 57500,
		57500, 37000, 54500, 53500, 55000, 34500, 34500, 34500, 34000,
		32500, 32500, 32500, 32500, 32000, 29500, 29500, 31000, 30500,
		29000, 27000, 54000, 27500, 24000, 47000, 23000, 44000, 42000,
		42000, 21000, 42000, 42000}
)

// fe1 sums the photoionization of the 48 lowest Fe I terms.
func (w *metalsAt) fe1(g []float64) func(int) float64 {
	var xsect [len(feW)]float64
	for k, wn := range feW {
		if wn < w.waveno {
			xsect[k] = 3.0e-18 / (1 + math.Pow((wn+3000-w.waveno)/wn/0.1, 4))
		}
	}
	return func(i int) float64 {
		hckt := phys.H * phys.C / (phys.K * w.in.Temp.Val[i])
		var s float64
		for k := range xsect {
			if xsect[k] != 0 {
				s += xsect[k] * feG[k] * math.Exp(-feE[k]*hckt)
			}
		}
		return s * g[i]
	}
}

// peachTable holds cross sections tabulated on frequency edges and
// temperature (after Peach), interpolated in ln ν and ln T.
type peachTable struct {
	freq  []float64   // edge frequencies, decreasing [Hz]
	flog  []float64   // ln ν bin boundaries
	tlg   []float64   // ln T nodes
	peach [][]float64 // [temperature][frequency]
	tStep float64     // temperature node spacing [K]
	tOff  int         // node offset
	tMax  int         // highest node
	sign  float64     // sign of the tabulated log cross section
	stat  float64     // statistical weight factor
	clamp int         // if > 0, highest usable frequency column
}

// apply returns the cross-section function for frequency freq.
func (p *peachTable) apply(freq float64, temp phys.Column) func(g []float64) func(int) float64 {
	return func(g []float64) func(int) float64 {
		nn := 0
		for _, f := range p.freq {
			if freq > f {
				break
			}
			nn++
		}
		dd := (math.Log(freq) - p.flog[nn]) / (p.flog[nn+1] - p.flog[nn])
		if nn > 1 {
			nn = 2*nn - 2
		}
		if p.clamp > 0 && nn > p.clamp {
			nn = p.clamp
		}
		xx := make([]float64, len(p.peach))
		for it := range xx {
			xx[it] = p.peach[it][nn+1]*dd + p.peach[it][nn]*(1-dd)
		}
		return func(i int) float64 {
			t := temp.Val[i]
			n := int(math.Floor(t/p.tStep)) - p.tOff
			if n > p.tMax {
				n = p.tMax
			}
			if n < 1 {
				n = 1
			}
			n--
			dt := (temp.Ln[i] - p.tlg[n]) / (p.tlg[n+1] - p.tlg[n])
			return p.stat * math.Exp(p.sign*(xx[n]*(1-dt)+xx[n+1]*dt)) * g[i]
		}
	}
}

var mg1 = &peachTable{
	freq: []float64{1.9341452e15, 1.8488510e15, 1.1925797e15, 7.9804046e14,
		4.5772110e14, 4.1440977e14, 4.1113514e14},
	flog: []float64{35.23123, 35.19844, 35.15334, 34.71490, 34.31318,
		33.75728, 33.65788, 33.64994, 33.43947},
	tlg: []float64{8.29405, 8.51719, 8.69951, 8.85367, 8.98720, 9.10498, 9.21034},
	peach: [][]float64{
		{-42.474, -41.808, -41.273, -45.583, -44.324, -50.969, -50.633, -53.028, -51.785, -52.285, -52.028, -52.384, -52.363, -54.704, -54.359},
		{-42.350, -41.735, -41.223, -44.008, -42.747, -48.388, -48.026, -49.643, -48.352, -48.797, -48.540, -48.876, -48.856, -50.772, -50.349},
		{-42.109, -41.582, -41.114, -42.957, -41.694, -46.630, -46.220, -47.367, -46.050, -46.453, -46.196, -46.513, -46.493, -48.107, -47.643},
		{-41.795, -41.363, -40.951, -42.205, -40.939, -45.344, -44.859, -45.729, -44.393, -44.765, -44.507, -44.806, -44.786, -46.176, -45.685},
		{-41.467, -41.115, -40.755, -41.639, -40.370, -44.355, -43.803, -44.491, -43.140, -43.486, -43.227, -43.509, -43.489, -44.707, -44.198},
		{-41.159, -40.866, -40.549, -41.198, -39.925, -43.568, -42.957, -43.520, -42.157, -42.480, -42.222, -42.488, -42.467, -43.549, -43.027},
		{-40.883, -40.631, -40.347, -40.841, -39.566, -42.924, -42.264, -42.736, -41.363, -41.668, -41.408, -41.660, -41.639, -42.611, -42.418},
	},
	tStep: 1000, tOff: 3, tMax: 6, sign: 1, stat: 1,
}

var si1 = &peachTable{
	freq: []float64{2.1413750e15, 1.9723165e15, 1.7879689e15, 1.5152920e15,
		5.5723927e14, 5.3295914e14, 4.7886458e14, 4.7216422e14, 4.6185133e14},
	flog: []float64{35.45438, 35.30022, 35.21799, 35.11986, 34.95438,
		33.95402, 33.90947, 33.80244, 33.78835, 33.76626, 33.70518},
	tlg: []float64{8.29405, 8.51719, 8.69951, 8.85367, 8.98720, 9.10498,
		9.21034, 9.30565, 9.39266},
	peach: [][]float64{
		{38.136, 37.834, 37.898, 40.737, 40.581, 45.521, 45.520, 55.068, 53.868, 54.133, 54.051, 54.442, 54.320, 55.691, 55.661, 55.973, 55.922, 56.828, 56.657},
		{38.138, 37.839, 37.898, 40.319, 40.164, 44.456, 44.455, 51.783, 50.369, 50.597, 50.514, 50.854, 50.722, 51.965, 51.933, 52.193, 52.141, 52.821, 52.653},
		{38.140, 37.843, 37.897, 40.047, 39.893, 43.753, 43.752, 49.553, 48.031, 48.233, 48.150, 48.455, 48.313, 49.444, 49.412, 49.630, 49.577, 50.110, 49.944},
		{38.141, 37.847, 37.897, 39.855, 39.702, 43.254, 43.251, 47.942, 46.355, 46.539, 46.454, 46.733, 46.583, 47.615, 47.582, 47.769, 47.715, 48.146, 47.983},
		{38.143, 37.850, 37.897, 39.714, 39.561, 42.878, 42.871, 46.723, 45.092, 45.261, 45.176, 45.433, 45.277, 46.221, 46.188, 46.349, 46.295, 46.654, 46.491},
		{38.144, 37.853, 37.896, 39.604, 39.452, 42.580, 42.569, 45.768, 44.104, 44.262, 44.175, 44.415, 44.251, 45.119, 45.085, 45.226, 45.172, 45.477, 45.315},
		{38.144, 37.855, 37.895, 39.517, 39.366, 42.332, 42.315, 44.997, 43.308, 43.456, 43.368, 43.592, 43.423, 44.223, 44.189, 44.314, 44.259, 44.522, 44.360},
		{38.145, 37.857, 37.895, 39.445, 39.295, 42.119, 42.094, 44.360, 42.652, 42.790, 42.702, 42.912, 42.738, 43.478, 43.445, 43.555, 43.500, 43.730, 43.569},
		{38.145, 37.858, 37.894, 39.385, 39.235, 41.930, 41.896, 43.823, 42.100, 42.230, 42.141, 42.340, 42.160, 42.848, 42.813, 42.913, 42.858, 43.061, 42.901},
	},
	tStep: 1000, tOff: 3, tMax: 8, sign: -1, stat: 9,
}

var si2 = &peachTable{
	freq: []float64{4.9965417e15, 3.9466738e15, 1.5736321e15, 1.5171539e15,
		9.2378947e14, 8.3825004e14, 7.6869872e14},
	flog: []float64{36.32984, 36.14752, 35.91165, 34.99216, 34.95561,
		34.45951, 34.36234, 34.27572, 34.20161},
	tlg: []float64{9.21034, 9.39266, 9.54681, 9.68034, 9.79813, 9.90349},
	peach: [][]float64{
		{-43.8941, -42.2444, -40.6054, -54.2389, -50.4108, -52.0936, -51.9548, -54.2407, -52.7355, -53.5387, -53.2417, -53.5097, -54.0561, -53.8469},
		{-43.8941, -42.2444, -40.6054, -52.2906, -48.4892, -50.0741, -49.9371, -51.7319, -50.2218, -50.9189, -50.6234, -50.8535, -51.2365, -51.0256},
		{-43.8941, -42.2444, -40.6054, -50.8799, -47.1090, -48.5999, -48.4647, -49.9178, -48.4059, -49.0200, -48.7252, -48.9263, -49.1980, -48.9860},
		{-43.8941, -42.2444, -40.6054, -49.8033, -46.0672, -47.4676, -47.3340, -48.5395, -47.0267, -47.5750, -47.2810, -47.4586, -47.6497, -47.4368},
		{-43.8941, -42.2444, -40.6054, -48.9485, -45.2510, -46.5649, -46.4333, -47.4529, -45.9402, -46.4341, -46.1410, -46.2994, -46.4302, -46.2162},
		{-43.8941, -42.2444, -40.6054, -48.2490, -44.5933, -45.8246, -45.6947, -46.5709, -45.0592, -45.5082, -45.2153, -45.3581, -45.4414, -45.2266},
	},
	tStep: 2000, tOff: 4, tMax: 5, sign: 1, stat: 6, clamp: 12,
}
