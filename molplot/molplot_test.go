/*
 * molplot_test.go, part of automol.
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

package molplot

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestProjection(Te *testing.T) {
	symbols := []string{"O", "H", "H"}
	geo := mat.NewDense(3, 3, []float64{
		0.0, 0.0, 0.0,
		0.96, 0.0, 0.0,
		-0.24, 0.93, 0.0,
	})
	bonds := [][2]int{{0, 1}, {0, 2}}
	plotname := filepath.Join(Te.TempDir(), "water")
	if err := Projection(symbols, geo, bonds, "water", plotname); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(plotname + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("the plot file is empty")
	}
}

func TestProjectionErrors(Te *testing.T) {
	geo := mat.NewDense(2, 3, nil)
	plotname := filepath.Join(Te.TempDir(), "bad")
	if err := Projection([]string{"C"}, geo, nil, "bad", plotname); err == nil {
		Te.Error("expected an error for a symbol/coordinate mismatch")
	}
	if err := Projection([]string{"C", "C"}, geo, [][2]int{{0, 5}}, "bad", plotname); err == nil {
		Te.Error("expected an error for an out-of-range bond")
	}
}
