/*
 * serialize.go, part of automol.
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

//YAML serialization of molecular graphs. The format is dictionary-based and
//one-indexed, with bond keys flattened to "i-j" strings:
//
//	atoms:
//	  1: {symbol: C, implicit_hydrogen_valence: 3, stereo_parity: null}
//	  2: {symbol: O, implicit_hydrogen_valence: 1, stereo_parity: null}
//	bonds:
//	  1-2: {order: 1, stereo_parity: null}

package automol

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type yamlAtom struct {
	Symbol            string `yaml:"symbol"`
	ImplicitHydrogens int    `yaml:"implicit_hydrogen_valence"`
	StereoParity      *bool  `yaml:"stereo_parity"`
}

type yamlBond struct {
	Order        float64 `yaml:"order"`
	StereoParity *bool   `yaml:"stereo_parity"`
}

type yamlGraph struct {
	Atoms map[int]yamlAtom    `yaml:"atoms"`
	Bonds map[string]yamlBond `yaml:"bonds"`
}

//String writes the graph to its YAML string form. Atom keys are shifted to
//one-indexing on output. Panics on a marshalling failure, which can only be
//a programming error for this data.
func (G *Graph) String() string {
	yg := yamlGraph{
		Atoms: make(map[int]yamlAtom, len(G.atoms)),
		Bonds: make(map[string]yamlBond, len(G.bonds)),
	}
	for k, at := range G.atoms {
		yg.Atoms[k+1] = yamlAtom{Symbol: at.Symbol, ImplicitHydrogens: at.ImplicitHydrogens, StereoParity: at.StereoParity}
	}
	for bk, b := range G.bonds {
		skey := fmt.Sprintf("%d-%d", bk[0]+1, bk[1]+1)
		yg.Bonds[skey] = yamlBond{Order: b.Order, StereoParity: b.StereoParity}
	}
	out, err := yaml.Marshal(yg)
	if err != nil {
		panic("automol: failed to YAML-marshal a graph: " + err.Error())
	}
	return string(out)
}

//GraphFromString reads a graph from its YAML string form, shifting the atom
//keys back to zero-indexing.
func GraphFromString(s string) (*Graph, error) {
	var yg yamlGraph
	if err := yaml.Unmarshal([]byte(s), &yg); err != nil {
		return nil, CError{"Malformed graph YAML: " + err.Error(), []string{"GraphFromString"}}
	}
	atoms := make(map[int]Atom, len(yg.Atoms))
	for k, at := range yg.Atoms {
		atoms[k-1] = Atom{Symbol: at.Symbol, ImplicitHydrogens: at.ImplicitHydrogens, StereoParity: at.StereoParity}
	}
	bonds := make(map[BondKey]Bond, len(yg.Bonds))
	for skey, b := range yg.Bonds {
		k1, k2, err := parseBondKey(skey)
		if err != nil {
			return nil, CError{err.Error(), []string{"GraphFromString"}}
		}
		bonds[NewBondKey(k1-1, k2-1)] = Bond{Order: b.Order, StereoParity: b.StereoParity}
	}
	g, err := NewGraph(atoms, bonds)
	if err != nil {
		errd := err.(Error)
		errd.Decorate("GraphFromString")
		return nil, errd
	}
	return g, nil
}

func parseBondKey(s string) (int, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("Malformed bond key %q", s)
	}
	k1, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("Malformed bond key %q", s)
	}
	k2, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("Malformed bond key %q", s)
	}
	return k1, k2, nil
}
