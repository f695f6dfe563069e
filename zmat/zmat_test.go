/*
 * zmat_test.go, part of automol.
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

package zmat

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

//mustAdd keeps the construction of test matrices short.
func mustAdd(Z *Zmat, symbol string, refs [3]int, vals [3]float64) *Zmat {
	Z2, err := Z.AddAtom(symbol, refs, vals)
	if err != nil {
		panic(err.Error())
	}
	return Z2
}

//waterZmat returns a bent H2O in internal coordinates.
func waterZmat() *Zmat {
	z := New()
	z = mustAdd(z, "O", [3]int{NoRef, NoRef, NoRef}, [3]float64{})
	z = mustAdd(z, "H", [3]int{0, NoRef, NoRef}, [3]float64{0.96})
	z = mustAdd(z, "H", [3]int{0, 1, NoRef}, [3]float64{0.96, 104.5})
	return z
}

func TestAddAtomValidation(Te *testing.T) {
	z := New()
	//the first atom takes no references
	_, err := z.AddAtom("C", [3]int{0, NoRef, NoRef}, [3]float64{1.5})
	if err == nil {
		Te.Error("expected an error for a reference on the first atom")
	}
	z = mustAdd(z, "C", [3]int{NoRef, NoRef, NoRef}, [3]float64{})
	//the second takes exactly one, and it must point backwards
	_, err = z.AddAtom("C", [3]int{1, NoRef, NoRef}, [3]float64{1.5})
	if err == nil {
		Te.Error("expected an error for a forward reference")
	}
	_, err = z.AddAtom("C", [3]int{NoRef, NoRef, NoRef}, [3]float64{1.5})
	if err == nil {
		Te.Error("expected an error for a missing reference")
	}
	z = mustAdd(z, "C", [3]int{0, NoRef, NoRef}, [3]float64{1.5})
	if z.Count() != 2 {
		Te.Errorf("got %d rows, want 2", z.Count())
	}
	fmt.Println("validation errors as expected")
}

func TestCartesian(Te *testing.T) {
	z := waterZmat()
	if d := z.Distance(0, 1); math.Abs(d-0.96) > 1e-8 {
		Te.Errorf("O-H1 distance %v, want 0.96", d)
	}
	if d := z.Distance(0, 2); math.Abs(d-0.96) > 1e-8 {
		Te.Errorf("O-H2 distance %v, want 0.96", d)
	}
	if a := z.Angle(1, 0, 2); math.Abs(a-104.5) > 1e-6 {
		Te.Errorf("H-O-H angle %v, want 104.5", a)
	}
}

func TestDihedral(Te *testing.T) {
	build := func(phi float64) *Zmat {
		z := New()
		z = mustAdd(z, "C", [3]int{NoRef, NoRef, NoRef}, [3]float64{})
		z = mustAdd(z, "C", [3]int{0, NoRef, NoRef}, [3]float64{1.5})
		z = mustAdd(z, "C", [3]int{1, 0, NoRef}, [3]float64{1.5, 109.4712})
		z = mustAdd(z, "C", [3]int{2, 1, 0}, [3]float64{1.5, 109.4712, phi})
		return z
	}
	z := build(180.0)
	if d := z.Dihedral(0, 1, 2, 3); math.Abs(math.Abs(d)-180.0) > 1e-6 {
		Te.Errorf("trans dihedral came back as %v", d)
	}
	z = build(60.0)
	if d := z.Dihedral(0, 1, 2, 3); math.Abs(math.Abs(d)-60.0) > 1e-6 {
		Te.Errorf("gauche dihedral came back as %v", d)
	}
	//and the distance/angle values survive any dihedral
	if d := z.Distance(2, 3); math.Abs(d-1.5) > 1e-8 {
		Te.Errorf("2-3 distance %v, want 1.5", d)
	}
	if a := z.Angle(1, 2, 3); math.Abs(a-109.4712) > 1e-6 {
		Te.Errorf("1-2-3 angle %v, want 109.4712", a)
	}
}

func TestColinearPlacement(Te *testing.T) {
	//placing against three colinear references must not blow up
	z := New()
	z = mustAdd(z, "C", [3]int{NoRef, NoRef, NoRef}, [3]float64{})
	z = mustAdd(z, "C", [3]int{0, NoRef, NoRef}, [3]float64{1.5})
	z = mustAdd(z, "C", [3]int{1, 0, NoRef}, [3]float64{1.5, 180.0})
	z = mustAdd(z, "C", [3]int{2, 1, 0}, [3]float64{1.5, 109.4712, 0.0})
	if d := z.Distance(2, 3); math.Abs(d-1.5) > 1e-8 {
		Te.Errorf("2-3 distance %v, want 1.5", d)
	}
	if a := z.Angle(1, 2, 3); math.Abs(a-109.4712) > 1e-6 {
		Te.Errorf("1-2-3 angle %v, want 109.4712", a)
	}
}

func TestTruncate(Te *testing.T) {
	z := waterZmat()
	z2 := z.Truncate(2)
	if z2.Count() != 2 {
		Te.Errorf("truncated to %d rows, want 2", z2.Count())
	}
	//the original is untouched
	if z.Count() != 3 {
		Te.Errorf("truncation changed the original to %d rows", z.Count())
	}
}

func TestJoinReplaceOne(Te *testing.T) {
	//a 4-row backbone to splice into
	a := New()
	a = mustAdd(a, "C", [3]int{NoRef, NoRef, NoRef}, [3]float64{})
	a = mustAdd(a, "C", [3]int{0, NoRef, NoRef}, [3]float64{1.5})
	a = mustAdd(a, "C", [3]int{1, 0, NoRef}, [3]float64{1.5, 120.0})
	a = mustAdd(a, "C", [3]int{2, 1, 0}, [3]float64{1.5, 120.0, 0.0})
	//a 3-row fragment whose first row stands for backbone row 3
	b := New()
	b = mustAdd(b, "C", [3]int{NoRef, NoRef, NoRef}, [3]float64{})
	b = mustAdd(b, "N", [3]int{0, NoRef, NoRef}, [3]float64{1.4})
	b = mustAdd(b, "O", [3]int{1, 0, NoRef}, [3]float64{1.3, 110.0})
	rowMat := [][]int{{2, 1}, {2}}
	valMat := [][]float64{{100.0, 90.0}, {0.0}}
	j, err := JoinReplaceOne(a, b, 3, rowMat, valMat)
	if err != nil {
		Te.Fatal(err)
	}
	if j.Count() != 6 {
		Te.Fatalf("joined matrix has %d rows, want 6", j.Count())
	}
	//the first fragment row replaced backbone row 3, so the N lands at row 4
	n := j.Row(4)
	if n.Symbol != "N" || n.Refs != [3]int{3, 2, 1} {
		Te.Errorf("row 4: symbol %s references %v, want N [3 2 1]", n.Symbol, n.Refs)
	}
	if n.Vals != [3]float64{1.4, 100.0, 90.0} {
		Te.Errorf("row 4 values %v, want [1.4 100 90]", n.Vals)
	}
	o := j.Row(5)
	if o.Symbol != "O" || o.Refs != [3]int{4, 3, 2} {
		Te.Errorf("row 5: symbol %s references %v, want O [4 3 2]", o.Symbol, o.Refs)
	}
	if o.Vals != [3]float64{1.3, 110.0, 0.0} {
		Te.Errorf("row 5 values %v, want [1.3 110 0]", o.Vals)
	}
}

func TestString(Te *testing.T) {
	s := waterZmat().String()
	fmt.Println(s)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 3 {
		Te.Fatalf("got %d lines, want 3", len(lines))
	}
	//the first atom carries no references, the rest print them one-indexed
	if f := strings.Fields(lines[0]); len(f) != 1 || f[0] != "O" {
		Te.Errorf("bad first line: %q", lines[0])
	}
	if f := strings.Fields(lines[1]); len(f) != 3 || f[1] != "1" {
		Te.Errorf("bad second line: %q", lines[1])
	}
}
