/*
 * atomicdata.go, part of automol.
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

//A map for assigning atomic numbers to element symbols.
//Note that just common "combustion and bio" elements are present,
//which is what the heuristic geometry model is meant for anyway.
var symbolZ = map[string]int{
	"H":  1,
	"He": 2,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Br": 35,
	"I":  53,
}

//A map for assigning valence electron counts to element symbols.
//Used to estimate lone pairs when classifying hybridization.
var symbolValenceElectrons = map[string]int{
	"H":  1,
	"He": 2,
	"B":  3,
	"C":  4,
	"N":  5,
	"O":  6,
	"F":  7,
	"Ne": 8,
	"Na": 1,
	"Mg": 2,
	"Si": 4,
	"P":  5,
	"S":  6,
	"Cl": 7,
	"Ar": 8,
	"K":  1,
	"Ca": 2,
	"Br": 7,
	"I":  7,
}

// AtomicNumber returns the atomic number for an element symbol, or 0
// if the element is not in the tables.
func AtomicNumber(symbol string) int {
	return symbolZ[symbol]
}
