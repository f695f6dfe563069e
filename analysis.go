/*
 * analysis.go, part of automol.
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

//Classification of atoms and ring perception on molecular graphs. These are
//the analyses the heuristic geometry builders feed on: hybridizations for
//bond angles, the longest chain for acyclic backbones and the ring-system
//decomposition for fused and bridged polycycles.

package automol

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/topo"
)

//Hybridizations classifies every atom as sp (1), sp2 (2) or sp3 (3), as a
//key -> class dictionary. The classification is the usual steric-number
//count: sigma partners (explicit neighbors plus implicit hydrogens) plus
//lone pairs estimated from the element's valence electrons and its total
//bond order. Atoms that fall outside the three classes (say, hypervalent
//centers, steric number > 4) get values outside {1,2,3}; the angle model
//rejects those with a HybridizationError.
func (G *Graph) Hybridizations() map[int]int {
	nbrs := G.NeighborKeys()
	hyb := make(map[int]int, len(G.atoms))
	for k, at := range G.atoms {
		nsigma := len(nbrs[k]) + at.ImplicitHydrogens
		orders := at.ImplicitHydrogens
		for _, nk := range nbrs[k] {
			b, _ := G.Bond(k, nk)
			o := int(math.Round(b.Order))
			if o < 1 {
				o = 1 //undetermined orders count as single
			}
			orders += o
		}
		lone := 0
		if ve, ok := symbolValenceElectrons[at.Symbol]; ok {
			lone = (ve - orders) / 2
			if lone < 0 {
				lone = 0
			}
		}
		hyb[k] = nsigma + lone - 1
	}
	return hyb
}

//LongestChain returns the longest simple path in the graph, as an ordered
//key sequence. Ties are broken deterministically (smaller starting keys
//first win). This is an exhaustive depth-first search; molecular graphs are
//small enough that the exponential worst case is not a concern here.
func (G *Graph) LongestChain() []int {
	nbrs := G.NeighborKeys()
	var best []int
	var dfs func(path []int, in map[int]bool)
	dfs = func(path []int, in map[int]bool) {
		last := path[len(path)-1]
		extended := false
		for _, nk := range nbrs[last] {
			if in[nk] {
				continue
			}
			extended = true
			in[nk] = true
			dfs(append(path, nk), in)
			delete(in, nk)
		}
		if !extended && len(path) > len(best) {
			best = append([]int(nil), path...)
		}
	}
	for _, k := range G.AtomKeys() {
		dfs([]int{k}, map[int]bool{k: true})
	}
	return best
}

//Rings returns the rings of the graph as ordered key sequences, with
//consecutive keys (wrapping around) bonded. The rings are the fundamental
//cycles of the connectivity, obtained with gonum's cycle finder; they are
//returned sorted by size and then by smallest member key.
func (G *Graph) Rings() [][]int {
	cycles := topo.UndirectedCyclesIn(G.Undirected())
	rings := make([][]int, 0, len(cycles))
	for _, cyc := range cycles {
		//the cycle finder repeats the starting node at the end
		ring := make([]int, 0, len(cyc)-1)
		for _, n := range cyc[:len(cyc)-1] {
			ring = append(ring, int(n.ID()))
		}
		rings = append(rings, ring)
	}
	sortRings(rings)
	return rings
}

func sortRings(rings [][]int) {
	minof := func(r []int) int {
		m := r[0]
		for _, k := range r {
			if k < m {
				m = k
			}
		}
		return m
	}
	sort.Slice(rings, func(i, j int) bool {
		if len(rings[i]) != len(rings[j]) {
			return len(rings[i]) < len(rings[j])
		}
		return minof(rings[i]) < minof(rings[j])
	})
}

//RingSystems groups the rings of the graph into ring systems: maximal sets
//of rings connected through shared atoms. Each system is a slice of rings
//sorted by size and then by smallest member key.
func (G *Graph) RingSystems() [][][]int {
	rings := G.Rings()
	parent := make([]int, len(rings))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	inring := make([]map[int]bool, len(rings))
	for i, r := range rings {
		inring[i] = make(map[int]bool, len(r))
		for _, k := range r {
			inring[i][k] = true
		}
	}
	for i := range rings {
		for j := i + 1; j < len(rings); j++ {
			for k := range inring[j] {
				if inring[i][k] {
					parent[find(j)] = find(i)
					break
				}
			}
		}
	}
	bysys := make(map[int][][]int)
	for i, r := range rings {
		root := find(i)
		bysys[root] = append(bysys[root], r)
	}
	roots := make([]int, 0, len(bysys))
	for root := range bysys {
		roots = append(roots, root)
	}
	sort.Ints(roots)
	systems := make([][][]int, 0, len(bysys))
	for _, root := range roots {
		sortRings(bysys[root])
		systems = append(systems, bysys[root])
	}
	return systems
}

//RingSystemsDecomposed returns, for each ring system of the graph, a
//decomposition into a primary ring plus arcs: the first key sequence is the
//smallest ring of the system, and each following sequence is an open arc
//whose two end keys already appear in the preceding sequences. The
//decomposition order is, by construction, a valid geometry build order.
func (G *Graph) RingSystemsDecomposed() ([][][]int, error) {
	systems := G.RingSystems()
	decomps := make([][][]int, 0, len(systems))
	for _, sys := range systems {
		d, err := decomposeRingSystem(sys)
		if err != nil {
			errd := err.(Error)
			errd.Decorate("RingSystemsDecomposed")
			return nil, errd
		}
		decomps = append(decomps, d)
	}
	return decomps, nil
}

//decomposeRingSystem turns one ring system (as returned by RingSystems)
//into primary-ring-plus-arcs form. Rings connected to the placed part by
//fewer than two atoms can't be expressed as arcs; they make the
//decomposition fail.
func decomposeRingSystem(sys [][]int) ([][]int, error) {
	if len(sys) == 0 {
		return nil, PreconditionError{message: "empty ring system"}
	}
	primary := sys[0]
	decomp := [][]int{append([]int(nil), primary...)}
	placed := make(map[int]bool, len(primary))
	for _, k := range primary {
		placed[k] = true
	}
	pending := make([][]int, len(sys)-1)
	copy(pending, sys[1:])
	for len(pending) > 0 {
		progress := false
		for i, ring := range pending {
			shared := 0
			for _, k := range ring {
				if placed[k] {
					shared++
				}
			}
			if shared < 2 {
				continue
			}
			for _, arc := range ringArcs(ring, placed) {
				decomp = append(decomp, arc)
				for _, k := range arc {
					placed[k] = true
				}
			}
			pending = append(pending[:i], pending[i+1:]...)
			progress = true
			break
		}
		if !progress {
			return nil, PreconditionError{message: fmt.Sprintf("ring system is not fused: %d rings share fewer than 2 atoms with the rest", len(pending))}
		}
	}
	return decomp, nil
}

//ringArcs extracts from a ring the maximal runs of not-yet-placed keys, each
//extended with the placed keys flanking it, so every arc starts and ends on
//an already-placed atom.
func ringArcs(ring []int, placed map[int]bool) [][]int {
	n := len(ring)
	start := -1 //a placed key from which to start the cyclic scan
	for i, k := range ring {
		if placed[k] {
			start = i
			break
		}
	}
	if start < 0 {
		panic("cant happen: ringArcs called with no placed key in the ring")
	}
	var arcs [][]int
	var run []int
	for off := 0; off <= n; off++ {
		k := ring[(start+off)%n]
		if placed[k] {
			if len(run) > 1 { //run[0] is the placed key opening the run
				arcs = append(arcs, append(run, k))
			}
			run = []int{k}
			continue
		}
		run = append(run, k)
	}
	return arcs
}
