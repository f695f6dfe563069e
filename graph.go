/*
 * graph.go, part of automol.
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
	"sort"
)

//Atom is one entry of the atom dictionary of a molecular graph. Hydrogens
//are normally kept implicit, as a count on their heavy atom, so the graph
//keys are heavy atoms only. The stereo parity is a three-valued flag
//(nil: unassigned).
type Atom struct {
	Symbol            string
	ImplicitHydrogens int
	StereoParity      *bool
}

//Bond is one entry of the bond dictionary of a molecular graph.
//An order of 0 means undetermined.
type Bond struct {
	Order        float64
	StereoParity *bool
}

//BondKey identifies a bond by its two atom keys. Bonds are not directional,
//so the constructor normalizes the order of the keys and keys built with
//either order compare equal.
type BondKey [2]int

//NewBondKey returns the normalized key for the bond between atoms k1 and k2.
//Panics if both keys are the same, as self-bonds can't exist.
func NewBondKey(k1, k2 int) BondKey {
	if k1 == k2 {
		panic(fmt.Sprintf("automol: tried to build a self-bond for atom key %d", k1))
	}
	if k1 > k2 {
		k1, k2 = k2, k1
	}
	return BondKey{k1, k2}
}

//Graph is a molecular connectivity graph: an atom dictionary and a bond
//dictionary. It is an unordered collection; the insertion order of atoms and
//bonds carries no meaning. Accessors return copies, so a Graph value can be
//shared freely between geometry builders.
type Graph struct {
	atoms map[int]Atom
	bonds map[BondKey]Bond
}

//NewGraph builds a graph from an atom and a bond dictionary. It returns an
//error if any bond endpoint is not an atom key. The maps are copied, the
//caller keeps ownership of its own.
func NewGraph(atoms map[int]Atom, bonds map[BondKey]Bond) (*Graph, error) {
	g := &Graph{atoms: make(map[int]Atom, len(atoms)), bonds: make(map[BondKey]Bond, len(bonds))}
	for k, at := range atoms {
		if k < 0 {
			return nil, CError{fmt.Sprintf("Negative atom key %d", k), []string{"NewGraph"}}
		}
		g.atoms[k] = at
	}
	for bk, b := range bonds {
		bk = NewBondKey(bk[0], bk[1])
		if _, ok := g.atoms[bk[0]]; !ok {
			return nil, CError{fmt.Sprintf("Bond %d-%d references a non-existent atom", bk[0], bk[1]), []string{"NewGraph"}}
		}
		if _, ok := g.atoms[bk[1]]; !ok {
			return nil, CError{fmt.Sprintf("Bond %d-%d references a non-existent atom", bk[0], bk[1]), []string{"NewGraph"}}
		}
		g.bonds[bk] = b
	}
	return g, nil
}

//Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return len(G.atoms)
}

//Copy returns a deep copy of the graph.
func (G *Graph) Copy() *Graph {
	ng, err := NewGraph(G.atoms, G.bonds)
	if err != nil {
		panic("cant happen: copying a valid graph gave " + err.Error())
	}
	return ng
}

//AtomKeys returns the atom keys, sorted.
func (G *Graph) AtomKeys() []int {
	keys := make([]int, 0, len(G.atoms))
	for k := range G.atoms {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

//BondKeys returns the bond keys, sorted by first and then second atom key.
func (G *Graph) BondKeys() []BondKey {
	keys := make([]BondKey, 0, len(G.bonds))
	for bk := range G.bonds {
		keys = append(keys, bk)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	return keys
}

//Atom returns the atom record for a key. Panics if the key is not in the
//graph, which amounts to a programming error upstream.
func (G *Graph) Atom(key int) Atom {
	at, ok := G.atoms[key]
	if !ok {
		panic(fmt.Sprintf("automol: requested atom key %d not in the graph", key))
	}
	return at
}

//Bond returns the bond record for the bond between k1 and k2 and whether
//such a bond exists.
func (G *Graph) Bond(k1, k2 int) (Bond, bool) {
	b, ok := G.bonds[NewBondKey(k1, k2)]
	return b, ok
}

//IsBonded tells whether atoms k1 and k2 are bonded in the graph.
func (G *Graph) IsBonded(k1, k2 int) bool {
	if k1 == k2 {
		return false
	}
	_, ok := G.bonds[NewBondKey(k1, k2)]
	return ok
}

//AtomSymbols returns the key -> element symbol dictionary.
func (G *Graph) AtomSymbols() map[int]string {
	ret := make(map[int]string, len(G.atoms))
	for k, at := range G.atoms {
		ret[k] = at.Symbol
	}
	return ret
}

//AtomImplicitHydrogens returns the key -> implicit hydrogen count dictionary.
func (G *Graph) AtomImplicitHydrogens() map[int]int {
	ret := make(map[int]int, len(G.atoms))
	for k, at := range G.atoms {
		ret[k] = at.ImplicitHydrogens
	}
	return ret
}

//AtomStereoParities returns the key -> stereo parity dictionary.
//Unassigned parities are nil.
func (G *Graph) AtomStereoParities() map[int]*bool {
	ret := make(map[int]*bool, len(G.atoms))
	for k, at := range G.atoms {
		ret[k] = at.StereoParity
	}
	return ret
}

//BondOrders returns the bond key -> order dictionary.
func (G *Graph) BondOrders() map[BondKey]float64 {
	ret := make(map[BondKey]float64, len(G.bonds))
	for bk, b := range G.bonds {
		ret[bk] = b.Order
	}
	return ret
}

//BondStereoParities returns the bond key -> stereo parity dictionary.
func (G *Graph) BondStereoParities() map[BondKey]*bool {
	ret := make(map[BondKey]*bool, len(G.bonds))
	for bk, b := range G.bonds {
		ret[bk] = b.StereoParity
	}
	return ret
}

//NeighborKeys returns, for every atom key, the sorted keys of the atoms
//bonded to it. Atoms with no bonds map to an empty slice.
func (G *Graph) NeighborKeys() map[int][]int {
	ret := make(map[int][]int, len(G.atoms))
	for k := range G.atoms {
		ret[k] = []int{}
	}
	for bk := range G.bonds {
		ret[bk[0]] = append(ret[bk[0]], bk[1])
		ret[bk[1]] = append(ret[bk[1]], bk[0])
	}
	for k := range ret {
		sort.Ints(ret[k])
	}
	return ret
}

//SetAtomImplicitHydrogens returns a new graph with the implicit hydrogen
//counts given in the dictionary replaced. Keys absent from the dictionary
//keep their counts.
func (G *Graph) SetAtomImplicitHydrogens(counts map[int]int) (*Graph, error) {
	ng := G.Copy()
	for k, n := range counts {
		at, ok := ng.atoms[k]
		if !ok {
			return nil, CError{fmt.Sprintf("Atom key %d not in the graph", k), []string{"SetAtomImplicitHydrogens"}}
		}
		at.ImplicitHydrogens = n
		ng.atoms[k] = at
	}
	return ng, nil
}

//SetBondOrders returns a new graph with the bond orders given in the
//dictionary replaced. Bonds absent from the dictionary keep their orders.
func (G *Graph) SetBondOrders(orders map[BondKey]float64) (*Graph, error) {
	ng := G.Copy()
	for bk, o := range orders {
		bk = NewBondKey(bk[0], bk[1])
		b, ok := ng.bonds[bk]
		if !ok {
			return nil, CError{fmt.Sprintf("Bond %d-%d not in the graph", bk[0], bk[1]), []string{"SetBondOrders"}}
		}
		b.Order = o
		ng.bonds[bk] = b
	}
	return ng, nil
}

//Relabel returns a new graph with atom keys replaced following the given
//dictionary. Keys absent from the dictionary are kept. The mapping must be
//injective over the resulting key set.
func (G *Graph) Relabel(keymap map[int]int) (*Graph, error) {
	full := make(map[int]int, len(G.atoms))
	for k := range G.atoms {
		full[k] = k
	}
	for old, nk := range keymap {
		if _, ok := G.atoms[old]; !ok {
			return nil, CError{fmt.Sprintf("Atom key %d not in the graph", old), []string{"Relabel"}}
		}
		full[old] = nk
	}
	atoms := make(map[int]Atom, len(G.atoms))
	for k, at := range G.atoms {
		nk := full[k]
		if _, taken := atoms[nk]; taken {
			return nil, CError{fmt.Sprintf("Relabeling maps two atoms to key %d", nk), []string{"Relabel"}}
		}
		atoms[nk] = at
	}
	bonds := make(map[BondKey]Bond, len(G.bonds))
	for bk, b := range G.bonds {
		bonds[NewBondKey(full[bk[0]], full[bk[1]])] = b
	}
	return NewGraph(atoms, bonds)
}
