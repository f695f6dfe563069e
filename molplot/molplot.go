/*
 * molplot.go, part of automol.
 *
 * Copyright 2021 The Auto-Mech developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package molplot draws quick 2-D projections of molecular geometries,
//meant for eyeballing bootstrap structures rather than for publication.
package molplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//cpk holds the usual element colors. Elements not in the map get gray.
var cpk = map[string]color.RGBA{
	"H":  {R: 220, G: 220, B: 220, A: 255},
	"C":  {R: 50, G: 50, B: 50, A: 255},
	"N":  {R: 20, G: 70, B: 230, A: 255},
	"O":  {R: 230, G: 30, B: 30, A: 255},
	"F":  {R: 70, G: 200, B: 70, A: 255},
	"P":  {R: 255, G: 150, B: 0, A: 255},
	"S":  {R: 230, G: 200, B: 20, A: 255},
	"Cl": {R: 30, G: 180, B: 30, A: 255},
	"Br": {R: 160, G: 60, B: 30, A: 255},
	"I":  {R: 140, G: 20, B: 160, A: 255},
}

func elementColor(symbol string) color.RGBA {
	if c, ok := cpk[symbol]; ok {
		return c
	}
	return color.RGBA{R: 130, G: 130, B: 130, A: 255}
}

func basicMolPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "x (Angstrom)"
	p.Y.Label.Text = "y (Angstrom)"
	p.Add(plotter.NewGrid())
	return p
}

//Projection plots the xy projection of the given Nx3 geometry to a png
//file. symbols names the atoms, in the same order as the rows of geo, and
//picks their colors. bonds, which may be nil, holds pairs of row indexes
//to be joined by a line. The ".png" extension is appended to plotname.
func Projection(symbols []string, geo *mat.Dense, bonds [][2]int, title, plotname string) error {
	if geo == nil {
		panic("Given nil coordinates")
	}
	r, c := geo.Dims()
	if c != 3 || r != len(symbols) {
		return Error{fmt.Sprintf("Mismatched geometry: %d symbols, %dx%d coordinates", len(symbols), r, c), plotname, []string{"Projection"}, true}
	}
	p := basicMolPlot(title)
	//bonds go first so the atom glyphs sit on top of the lines.
	for _, b := range bonds {
		if b[0] < 0 || b[0] >= r || b[1] < 0 || b[1] >= r {
			return Error{fmt.Sprintf("Bond %v out of range for %d atoms", b, r), plotname, []string{"Projection"}, true}
		}
		seg := make(plotter.XYs, 2)
		seg[0].X = geo.At(b[0], 0)
		seg[0].Y = geo.At(b[0], 1)
		seg[1].X = geo.At(b[1], 0)
		seg[1].Y = geo.At(b[1], 1)
		l, err := plotter.NewLine(seg)
		if err != nil {
			return errDecorate(err, "Projection", plotname)
		}
		l.LineStyle.Color = color.RGBA{R: 150, G: 150, B: 150, A: 255}
		p.Add(l)
	}
	for i := 0; i < r; i++ {
		temp := make(plotter.XYs, 1)
		temp[0].X = geo.At(i, 0)
		temp[0].Y = geo.At(i, 1)
		s, err := plotter.NewScatter(temp)
		if err != nil {
			return errDecorate(err, "Projection", plotname)
		}
		s.GlyphStyle.Color = elementColor(symbols[i])
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return errDecorate(err, "Projection", plotname)
	}
	return nil
}

//errDecorate wraps errors from the plotting backend in the local Error
//type, as they don't implement the automol error interface.
func errDecorate(err error, caller, plotname string) error {
	return Error{err.Error(), plotname, []string{caller}, true}
}

//Error is the general error type for plots. It fulfills automol.Error.
type Error struct {
	message  string
	plotname string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("plot %s error: %s", err.plotname, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
