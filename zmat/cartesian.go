/*
 * cartesian.go, part of automol.
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

//Conversion of a z-matrix to cartesian coordinates, and measurement of
//internal coordinates on the resulting geometry.

package zmat

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors in angle computations. Everything this close to +-1 is clamped.

const deg2rad = math.Pi / 180.0

//Cartesian converts the z-matrix to an Nx3 matrix of cartesian coordinates,
//in angstroms. The first atom sits at the origin, the second along the z
//axis, the third in a fixed plane through both; every further atom is placed
//from its three references with the standard local-frame (NeRF)
//construction. Panics on internal inconsistency, which AddAtom's validation
//makes unreachable.
func (Z *Zmat) Cartesian() *mat.Dense {
	n := Z.Count()
	if n == 0 {
		return &mat.Dense{}
	}
	pos := make([][3]float64, n)
	for i := 0; i < n; i++ {
		row := Z.rows[i]
		switch {
		case row.Refs[0] == NoRef:
			pos[i] = [3]float64{0, 0, 0}
		case row.Refs[1] == NoRef:
			c := pos[row.Refs[0]]
			pos[i] = [3]float64{c[0], c[1], c[2] + row.Vals[0]}
		case row.Refs[2] == NoRef:
			pos[i] = placeWithAngle(pos[row.Refs[0]], pos[row.Refs[1]], row.Vals[0], row.Vals[1]*deg2rad)
		default:
			pos[i] = placeWithDihedral(pos[row.Refs[0]], pos[row.Refs[1]], pos[row.Refs[2]],
				row.Vals[0], row.Vals[1]*deg2rad, row.Vals[2]*deg2rad)
		}
	}
	geo := mat.NewDense(n, 3, nil)
	for i, p := range pos {
		geo.SetRow(i, p[:])
	}
	return geo
}

//placeWithAngle puts an atom at distance r from c, forming the angle theta
//with b at c, in an arbitrary but fixed plane.
func placeWithAngle(c, b [3]float64, r, theta float64) [3]float64 {
	v := unit(sub(c, b))
	//any unit vector perpendicular to v will do for the in-plane direction
	p := cross(v, [3]float64{0, 0, 1})
	if norm(p) < appzero {
		p = cross(v, [3]float64{1, 0, 0})
	}
	p = unit(p)
	return add(c, add(scale(v, -r*math.Cos(theta)), scale(p, r*math.Sin(theta))))
}

//placeWithDihedral puts an atom at distance r from c, angle theta against b
//at c and dihedral phi against the a-b-c plane.
func placeWithDihedral(c, b, a [3]float64, r, theta, phi float64) [3]float64 {
	bc := unit(sub(c, b))
	nv := cross(sub(b, a), bc)
	if norm(nv) < appzero {
		//a, b, c are colinear and the dihedral plane is undefined; any
		//perpendicular gives a consistent (if arbitrary) orientation
		nv = cross(bc, [3]float64{0, 0, 1})
		if norm(nv) < appzero {
			nv = cross(bc, [3]float64{1, 0, 0})
		}
	}
	nv = unit(nv)
	mv := cross(nv, bc)
	d := [3]float64{-r * math.Cos(theta), r * math.Sin(theta) * math.Cos(phi), r * math.Sin(theta) * math.Sin(phi)}
	return add(c, add(scale(bc, d[0]), add(scale(mv, d[1]), scale(nv, d[2]))))
}

//Distance returns the distance, in angstroms, between the atoms in rows i
//and j of the cartesian geometry of the z-matrix.
func (Z *Zmat) Distance(i, j int) float64 {
	geo := Z.Cartesian()
	return norm(sub(rowvec(geo, i), rowvec(geo, j)))
}

//Angle returns the angle, in degrees, formed at the atom of row c by the
//atoms of rows i and j.
func (Z *Zmat) Angle(i, c, j int) float64 {
	geo := Z.Cartesian()
	v1 := sub(rowvec(geo, i), rowvec(geo, c))
	v2 := sub(rowvec(geo, j), rowvec(geo, c))
	return vecAngle(v1, v2) / deg2rad
}

//Dihedral returns the torsion angle, in degrees, of the atoms in rows
//a, b, c, d, where the first plane is defined by abc and the second by bcd.
func (Z *Zmat) Dihedral(a, b, c, d int) float64 {
	geo := Z.Cartesian()
	bma := sub(rowvec(geo, b), rowvec(geo, a))
	cmb := sub(rowvec(geo, c), rowvec(geo, b))
	dmc := sub(rowvec(geo, d), rowvec(geo, c))
	first := dot(scale(bma, norm(cmb)), cross(cmb, dmc))
	second := dot(cross(bma, cmb), cross(cmb, dmc))
	return math.Atan2(first, second) / deg2rad
}

//vecAngle takes 2 vectors and calculates the angle in radians between them.
func vecAngle(v1, v2 [3]float64) float64 {
	argument := dot(v1, v2) / (norm(v1) * norm(v2))
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	return math.Acos(argument)
}

func rowvec(geo *mat.Dense, i int) [3]float64 {
	return [3]float64{geo.At(i, 0), geo.At(i, 1), geo.At(i, 2)}
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func add(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scale(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm(a [3]float64) float64 {
	return math.Sqrt(dot(a, a))
}

func unit(a [3]float64) [3]float64 {
	n := norm(a)
	if n < appzero {
		panic("zmat: tried to normalize a zero-length vector; degenerate reference geometry")
	}
	return scale(a, 1/n)
}
