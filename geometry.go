/*
 * geometry.go, part of automol.
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

//Heuristic z-matrix construction from connectivity graphs. The geometries
//built here are plausible starting points for refinement by quantum
//chemistry or force-field programs, nothing more: two bond lengths, three
//canonical angles and flat, all-trans backbones.

package automol

import (
	"fmt"
	"math"

	"github.com/Auto-Mech/automol/zmat"
)

//bond distances, angstroms
const (
	XYDist = 1.5 //between heavy atoms
	XHDist = 1.1 //to a hydrogen
)

//bond angles, degrees
const (
	TetrahedralAngle = 109.4712
	TrigonalAngle    = 120.0
	LinearAngle      = 180.0
)

//dihedral angles, degrees
const (
	CisDihedral   = 0.0
	TransDihedral = 180.0
)

//miscellaneous
const (
	RightAngle = 90.0
)

//errDecorate is a helper that asserts that the error implements the Error
//interface of this package and decorates it with the caller's name before
//returning it. Used with any other error it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//BondDistance returns the heuristic bond distance, in angstroms, for the
//bonded atom pair k1, k2: one constant when either end is a hydrogen and
//another for any heavy pair. With check set, an unbonded pair is a
//precondition violation.
func BondDistance(g *Graph, k1, k2 int, check bool) (float64, error) {
	if check && !g.IsBonded(k1, k2) {
		return 0, PreconditionError{message: fmt.Sprintf("atoms %d and %d are not bonded", k1, k2), deco: []string{"BondDistance"}}
	}
	if AtomicNumber(g.Atom(k1).Symbol) == 1 || AtomicNumber(g.Atom(k2).Symbol) == 1 {
		return XHDist, nil
	}
	return XYDist, nil
}

//BondAngle returns the heuristic angle, in degrees, formed at the center
//atom kc by its bonded partners k1 and k3: tetrahedral, trigonal or linear
//following the center's hybridization. Centers outside the sp/sp2/sp3
//classes give a HybridizationError. With check set, a partner not bonded to
//the center is a precondition violation.
func BondAngle(g *Graph, k1, kc, k3 int, check bool) (float64, error) {
	if check && (!g.IsBonded(k1, kc) || !g.IsBonded(k3, kc)) {
		return 0, PreconditionError{message: fmt.Sprintf("atoms %d and %d must both be bonded to center %d", k1, k3, kc), deco: []string{"BondAngle"}}
	}
	hyb := g.Hybridizations()[kc]
	switch hyb {
	case 3:
		return TetrahedralAngle, nil
	case 2:
		return TrigonalAngle, nil
	case 1:
		return LinearAngle, nil
	}
	return 0, HybridizationError{Key: kc, Value: hyb, deco: []string{"BondAngle"}}
}

//RingArcBondAngle finds the bond angle, in degrees, that closes a circular
//arc of num atoms whose consecutive members sit bondDist apart and whose two
//ends sit endDist apart.
//
//Let theta be the total angle the arc subtends at the circle center, and
//alpha = theta/(num-1) the angle between neighboring atoms. Bisecting the
//isosceles triangle formed by two neighbors with the center gives
//	sin(alpha/2) = bondDist/(2R)
//and bisecting the one formed by the two arc ends with the center gives
//	sin(theta/2) = endDist/(2R)
//up to a sign flip past theta = pi, which doesn't matter for the magnitudes
//used here. Dividing the two eliminates the radius R:
//	sin(theta/(2(num-1)))/sin(theta/2) = bondDist/endDist
//and theta is the smallest positive root of that transcendental equation on
//(0, 2pi). The quotient has a removable singularity at theta = 0 (its limit
//is 1/(num-1)), so theta is clamped to a small floor before evaluating. With
//theta in hand, the angle-sum identity of the neighbor triangle
//(alpha + 2*beta = 180, the bond angle being 2*beta) gives
//	bondAngle = 180 - theta/(num-1).
//
//When the ends are at least as far apart as the stretched-out chain,
//endDist >= (num-1)*bondDist, there is no arc to close and the angle is 180.
//A root search that fails to converge is reported as a ConvergenceError.
func RingArcBondAngle(num int, endDist, bondDist float64) (float64, error) {
	if num < 2 {
		return 0, PreconditionError{message: fmt.Sprintf("an arc takes at least 2 atoms, got %d", num), deco: []string{"RingArcBondAngle"}}
	}
	if bondDist <= 0 || endDist <= 0 {
		return 0, PreconditionError{message: fmt.Sprintf("non-positive distances (bond: %v, end: %v)", bondDist, endDist), deco: []string{"RingArcBondAngle"}}
	}
	if endDist >= float64(num-1)*bondDist {
		return LinearAngle, nil
	}
	f := func(theta float64) float64 {
		if math.Abs(theta) < 0.001 {
			theta = 0.001
		}
		return math.Sin(theta/(2*float64(num-1)))/math.Sin(theta/2) - bondDist/endDist
	}
	theta, err := brentq(f, 0.01, 2*math.Pi)
	if err != nil {
		return 0, errDecorate(err, "RingArcBondAngle")
	}
	return LinearAngle - (theta/deg2rad)/float64(num-1), nil
}

const deg2rad = math.Pi / 180.0

//ChainZmat builds the z-matrix for a chain of atoms, given as an ordered key
//sequence describing a simple path in the graph. Each atom is placed against
//the three preceding ones with the heuristic distance and angle models and
//an all-trans backbone. It returns the z-matrix together with the row
//assigned to each input key, in input order.
func ChainZmat(g *Graph, chainKeys []int) (*zmat.Zmat, []int, error) {
	if len(chainKeys) < 1 {
		return nil, nil, PreconditionError{message: "empty chain", deco: []string{"ChainZmat"}}
	}
	rowdct := make(map[int]int, len(chainKeys))
	zma := zmat.New()
	key1, key2, key3 := -1, -1, -1
	var err error
	for _, key4 := range chainKeys {
		refs := [3]int{zmat.NoRef, zmat.NoRef, zmat.NoRef}
		var vals [3]float64
		if key3 >= 0 {
			refs[0] = rowdct[key3]
			vals[0], err = BondDistance(g, key3, key4, true)
			if err != nil {
				return nil, nil, errDecorate(err, "ChainZmat")
			}
		}
		if key2 >= 0 {
			refs[1] = rowdct[key2]
			vals[1], err = BondAngle(g, key2, key3, key4, true)
			if err != nil {
				return nil, nil, errDecorate(err, "ChainZmat")
			}
		}
		if key1 >= 0 {
			refs[2] = rowdct[key1]
			vals[2] = TransDihedral
		}
		rowdct[key4] = zma.Count()
		zma, err = zma.AddAtom(g.Atom(key4).Symbol, refs, vals)
		if err != nil {
			return nil, nil, errDecorate(err, "ChainZmat")
		}
		//now, shift the keys for the next one up
		key1, key2, key3 = key2, key3, key4
	}
	rows := make([]int, len(chainKeys))
	for i, k := range chainKeys {
		rows[i] = rowdct[k]
	}
	return zma, rows, nil
}

//RingZmat builds the z-matrix for a ring, or for an open arc when endDist
//differs from the bond distance, given as an ordered key sequence. One
//globally consistent bond angle, solved by RingArcBondAngle, is applied to
//every consecutive triple so the sequence closes geometrically, and all
//dihedrals are cis: rings come out planar and unpuckered. Passing zero for
//bondDist selects the heavy-atom default; passing zero for endDist selects
//the bond distance itself, that is, a true closed ring. It returns the
//z-matrix together with the row assigned to each input key, in input order.
func RingZmat(g *Graph, ringKeys []int, bondDist, endDist float64) (*zmat.Zmat, []int, error) {
	if len(ringKeys) < 2 {
		return nil, nil, PreconditionError{message: fmt.Sprintf("a ring or arc takes at least 2 atoms, got %d", len(ringKeys)), deco: []string{"RingZmat"}}
	}
	if bondDist == 0 {
		bondDist = XYDist
	}
	if endDist == 0 {
		endDist = bondDist
	}
	ang, err := RingArcBondAngle(len(ringKeys), endDist, bondDist)
	if err != nil {
		return nil, nil, errDecorate(err, "RingZmat")
	}
	rowdct := make(map[int]int, len(ringKeys))
	zma := zmat.New()
	key1, key2, key3 := -1, -1, -1
	for _, key4 := range ringKeys {
		refs := [3]int{zmat.NoRef, zmat.NoRef, zmat.NoRef}
		vals := [3]float64{bondDist, ang, CisDihedral}
		if key3 >= 0 {
			refs[0] = rowdct[key3]
		}
		if key2 >= 0 {
			refs[1] = rowdct[key2]
		}
		if key1 >= 0 {
			refs[2] = rowdct[key1]
		}
		rowdct[key4] = zma.Count()
		zma, err = zma.AddAtom(g.Atom(key4).Symbol, refs, vals)
		if err != nil {
			return nil, nil, errDecorate(err, "RingZmat")
		}
		//now, shift the keys for the next one up
		key1, key2, key3 = key2, key3, key4
	}
	rows := make([]int, len(ringKeys))
	for i, k := range ringKeys {
		rows[i] = rowdct[k]
	}
	return zma, rows, nil
}

//RingSystemZmat builds the z-matrix for a fused or bridged ring system from
//its decomposition: the primary ring first, then every arc in decomposition
//order. Each arc is built as a standalone arc whose end separation is the
//distance its two (already placed) endpoint atoms have in the growing
//composite, then rotated into place: its orientation is pinned by the angle
//its first atoms form with the far endpoint, a fixed right-angle twist and a
//cis closing dihedral, and it is spliced into the composite at the row of
//its first endpoint. It returns the composite z-matrix and the dictionary
//from atom key to composite row.
func RingSystemZmat(g *Graph, decomp [][]int) (*zmat.Zmat, map[int]int, error) {
	if len(decomp) == 0 {
		return nil, nil, PreconditionError{message: "empty ring-system decomposition", deco: []string{"RingSystemZmat"}}
	}
	ringKeys := decomp[0]
	zma, ringRows, err := RingZmat(g, ringKeys, 0, 0)
	if err != nil {
		return nil, nil, errDecorate(err, "RingSystemZmat")
	}
	rowdct := make(map[int]int, len(ringKeys))
	for i, k := range ringKeys {
		rowdct[k] = ringRows[i]
	}
	for _, arcKeys := range decomp[1:] {
		if len(arcKeys) < 2 {
			return nil, nil, PreconditionError{message: fmt.Sprintf("an arc takes at least 2 atoms, got %d", len(arcKeys)), deco: []string{"RingSystemZmat"}}
		}
		row3, ok3 := rowdct[arcKeys[0]]
		row2, ok2 := rowdct[arcKeys[len(arcKeys)-1]]
		if !ok3 || !ok2 {
			return nil, nil, PreconditionError{message: fmt.Sprintf("arc endpoints %d, %d are not placed yet", arcKeys[0], arcKeys[len(arcKeys)-1]), deco: []string{"RingSystemZmat"}}
		}
		if len(arcKeys) == 2 {
			//both ends placed and no interior: nothing to add
			continue
		}
		endDist := zma.Distance(row3, row2)
		arcZma, arcRows, err := RingZmat(g, arcKeys, XYDist, endDist)
		if err != nil {
			return nil, nil, errDecorate(err, "RingSystemZmat")
		}
		//orientation of the arc against the existing structure: the angle at
		//its first atom between its neighbor and the far end, a right-angle
		//twist and a cis closing dihedral. The two fixed angles are a
		//heuristic carried over as-is, not a derived quantity.
		ang1 := arcZma.Angle(arcRows[1], arcRows[0], arcRows[len(arcRows)-1])
		row1 := row2 - 1
		if row2 == 0 {
			row1 = row2 + 1
		}
		rowMat := [][]int{{row2, row1}, {row2}}
		valMat := [][]float64{{ang1, RightAngle}, {CisDihedral}}
		base := zma.Count()
		//the last arc atom is the far endpoint, already in the composite
		body := arcZma.Truncate(arcZma.Count() - 1)
		zma, err = zmat.JoinReplaceOne(zma, body, row3, rowMat, valMat)
		if err != nil {
			return nil, nil, errDecorate(err, "RingSystemZmat")
		}
		for i := 1; i < len(arcKeys)-1; i++ {
			rowdct[arcKeys[i]] = base + i - 1
		}
	}
	return zma, rowdct, nil
}
