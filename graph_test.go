/*
 * graph_test.go, part of automol.
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

package automol

import (
	"fmt"
	"testing"
)

func TestGraphBasics(Te *testing.T) {
	g := propene()
	if g.Len() != 3 {
		Te.Errorf("got %d atoms, want 3", g.Len())
	}
	if !g.IsBonded(1, 2) || g.IsBonded(0, 2) {
		Te.Error("wrong connectivity")
	}
	b, ok := g.Bond(2, 1) //order of the keys should not matter
	if !ok || b.Order != 2 {
		Te.Errorf("bond 1-2: got order %v, want 2", b.Order)
	}
	nbrs := g.NeighborKeys()
	if len(nbrs[1]) != 2 || nbrs[1][0] != 0 || nbrs[1][1] != 2 {
		Te.Errorf("neighbors of 1: got %v, want [0 2]", nbrs[1])
	}
	keys := g.AtomKeys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			Te.Errorf("atom keys not sorted: %v", keys)
		}
	}
}

func TestGraphValidation(Te *testing.T) {
	//a bond to a missing atom is rejected
	_, err := NewGraph(
		map[int]Atom{0: {Symbol: "C"}},
		map[BondKey]Bond{NewBondKey(0, 1): {Order: 1}})
	if err == nil {
		Te.Error("expected an error for a bond to a missing atom")
	}
	fmt.Println("dangling bond rejected with:", err.Error())
	defer func() {
		if recover() == nil {
			Te.Error("expected a panic for a self-bond key")
		}
	}()
	NewBondKey(3, 3)
}

func TestGraphCopyIsolated(Te *testing.T) {
	g := propane()
	h := g.Copy()
	h2, err := h.SetAtomImplicitHydrogens(map[int]int{0: 0})
	if err != nil {
		Te.Fatal(err)
	}
	if h2.Atom(0).ImplicitHydrogens != 0 {
		Te.Error("SetAtomImplicitHydrogens did not apply")
	}
	if g.Atom(0).ImplicitHydrogens != 3 {
		Te.Error("the original graph changed under a copy")
	}
}

func TestGraphRelabel(Te *testing.T) {
	g := propene()
	r, err := g.Relabel(map[int]int{0: 10, 1: 11, 2: 12})
	if err != nil {
		Te.Fatal(err)
	}
	if r.Len() != 3 || !r.IsBonded(11, 12) {
		Te.Error("relabeling lost connectivity")
	}
	b, _ := r.Bond(11, 12)
	if b.Order != 2 {
		Te.Errorf("relabeled bond order %v, want 2", b.Order)
	}
}

func TestSerializeRoundTrip(Te *testing.T) {
	tr := true
	g := mustGraph(
		map[int]Atom{
			0: {Symbol: "C", ImplicitHydrogens: 1, StereoParity: &tr},
			1: {Symbol: "C", ImplicitHydrogens: 1},
			2: {Symbol: "O"},
		},
		map[BondKey]Bond{
			NewBondKey(0, 1): {Order: 2, StereoParity: &tr},
			NewBondKey(1, 2): {Order: 1},
		})
	s := g.String()
	fmt.Println(s)
	g2, err := GraphFromString(s)
	if err != nil {
		Te.Fatal(err)
	}
	if g2.Len() != g.Len() {
		Te.Fatalf("round trip changed the atom count: %d vs %d", g2.Len(), g.Len())
	}
	for k, sym := range g.AtomSymbols() {
		if g2.Atom(k).Symbol != sym {
			Te.Errorf("atom %d symbol changed to %s", k, g2.Atom(k).Symbol)
		}
		if g2.Atom(k).ImplicitHydrogens != g.Atom(k).ImplicitHydrogens {
			Te.Errorf("atom %d implicit hydrogens changed", k)
		}
	}
	p := g2.Atom(0).StereoParity
	if p == nil || !*p {
		Te.Error("atom stereo parity lost in the round trip")
	}
	if g2.Atom(1).StereoParity != nil {
		Te.Error("unset atom stereo parity became set")
	}
	b, ok := g2.Bond(0, 1)
	if !ok || b.Order != 2 || b.StereoParity == nil || !*b.StereoParity {
		Te.Error("bond 0-1 changed in the round trip")
	}
}
