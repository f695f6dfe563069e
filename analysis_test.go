/*
 * analysis_test.go, part of automol.
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

func TestHybridizations(Te *testing.T) {
	//the middle atom runs sp3 -> sp2 -> sp across the three molecules
	for i, c := range []struct {
		g    *Graph
		want int
	}{
		{propane(), 3},
		{propene(), 2},
		{allene(), 1},
	} {
		hyb := c.g.Hybridizations()
		if hyb[1] != c.want {
			Te.Errorf("case %d: center classified sp%d, want sp%d", i, hyb[1], c.want)
		}
	}
	//lone pairs count: the water oxygen is sp3 with just two bonds
	if hyb := water().Hybridizations(); hyb[0] != 3 {
		Te.Errorf("water oxygen classified sp%d, want sp3", hyb[0])
	}
}

func TestLongestChain(Te *testing.T) {
	//2-methylbutane: the longest chain runs through the branch point
	g := mustGraph(
		map[int]Atom{
			0: {Symbol: "C", ImplicitHydrogens: 3},
			1: {Symbol: "C", ImplicitHydrogens: 1},
			2: {Symbol: "C", ImplicitHydrogens: 2},
			3: {Symbol: "C", ImplicitHydrogens: 3},
			4: {Symbol: "C", ImplicitHydrogens: 3},
		},
		map[BondKey]Bond{
			NewBondKey(0, 1): {Order: 1},
			NewBondKey(1, 2): {Order: 1},
			NewBondKey(2, 3): {Order: 1},
			NewBondKey(1, 4): {Order: 1},
		})
	chain := g.LongestChain()
	if len(chain) != 4 {
		Te.Fatalf("longest chain has %d atoms, want 4: %v", len(chain), chain)
	}
	for i := 1; i < len(chain); i++ {
		if !g.IsBonded(chain[i-1], chain[i]) {
			Te.Errorf("chain %v is not a path", chain)
		}
	}
	fmt.Println("longest chain:", chain)
}

func TestRings(Te *testing.T) {
	g := cycloalkane(6)
	rings := g.Rings()
	if len(rings) != 1 {
		Te.Fatalf("found %d rings, want 1", len(rings))
	}
	if len(rings[0]) != 6 {
		Te.Errorf("ring has %d atoms, want 6", len(rings[0]))
	}
	ring := rings[0]
	for i := range ring {
		if !g.IsBonded(ring[i], ring[(i+1)%len(ring)]) {
			Te.Errorf("ring %v is not cyclically bonded", ring)
		}
	}
	//an acyclic graph has none
	if r := propane().Rings(); len(r) != 0 {
		Te.Errorf("propane got %d rings, want 0", len(r))
	}
}

func TestRingSystems(Te *testing.T) {
	//two separate cyclopropanes: one system each
	atoms := make(map[int]Atom)
	bonds := make(map[BondKey]Bond)
	for base := 0; base <= 3; base += 3 {
		for i := 0; i < 3; i++ {
			atoms[base+i] = Atom{Symbol: "C", ImplicitHydrogens: 2}
			bonds[NewBondKey(base+i, base+(i+1)%3)] = Bond{Order: 1}
		}
	}
	g := mustGraph(atoms, bonds)
	systems := g.RingSystems()
	if len(systems) != 2 {
		Te.Fatalf("found %d ring systems, want 2", len(systems))
	}
	for _, sys := range systems {
		if len(sys) != 1 || len(sys[0]) != 3 {
			Te.Errorf("unexpected system shape: %v", sys)
		}
	}
	//the fused bicyclic collapses into one
	if systems := bicyclohexane().RingSystems(); len(systems) != 1 {
		Te.Errorf("fused bicyclic gave %d systems, want 1", len(systems))
	}
}

func TestRingSystemsDecomposed(Te *testing.T) {
	g := bicyclohexane()
	decomps, err := g.RingSystemsDecomposed()
	if err != nil {
		Te.Fatal(err)
	}
	if len(decomps) != 1 {
		Te.Fatalf("got %d decompositions, want 1", len(decomps))
	}
	d := decomps[0]
	if len(d) < 2 {
		Te.Fatalf("decomposition has no arcs: %v", d)
	}
	placed := make(map[int]bool)
	for _, k := range d[0] {
		placed[k] = true
	}
	for _, arc := range d[1:] {
		if len(arc) < 2 {
			Te.Errorf("degenerate arc %v", arc)
		}
		if !placed[arc[0]] || !placed[arc[len(arc)-1]] {
			Te.Errorf("arc %v does not end on placed atoms", arc)
		}
		for _, k := range arc {
			placed[k] = true
		}
		for i := 1; i < len(arc); i++ {
			if !g.IsBonded(arc[i-1], arc[i]) {
				Te.Errorf("arc %v is not a path", arc)
			}
		}
	}
	//every atom of the system must end up placed
	if len(placed) != 8 {
		Te.Errorf("decomposition places %d atoms, want 8", len(placed))
	}
	fmt.Println("decomposition:", d)
}

func TestDecomposeSpiroFails(Te *testing.T) {
	//spiro[2.2]pentane: two 3-rings sharing a single atom can't be
	//expressed as a primary ring plus arcs
	g := mustGraph(
		map[int]Atom{
			0: {Symbol: "C"},
			1: {Symbol: "C", ImplicitHydrogens: 2},
			2: {Symbol: "C", ImplicitHydrogens: 2},
			3: {Symbol: "C", ImplicitHydrogens: 2},
			4: {Symbol: "C", ImplicitHydrogens: 2},
		},
		map[BondKey]Bond{
			NewBondKey(0, 1): {Order: 1},
			NewBondKey(1, 2): {Order: 1},
			NewBondKey(2, 0): {Order: 1},
			NewBondKey(0, 3): {Order: 1},
			NewBondKey(3, 4): {Order: 1},
			NewBondKey(4, 0): {Order: 1},
		})
	_, err := g.RingSystemsDecomposed()
	if err == nil {
		Te.Fatal("expected the spiro system to be rejected")
	}
	if _, ok := err.(PreconditionError); !ok {
		Te.Errorf("wrong error type: %T", err)
	}
	fmt.Println("spiro system rejected with:", err.Error())
}
