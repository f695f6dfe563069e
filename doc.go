/*
 * doc.go, part of automol.
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

/*Package automol turns abstract molecular connectivity graphs into plausible
three-dimensional starting geometries, expressed as z-matrices.



	**automol capabilities**

    Molecular graphs as plain dictionaries of atoms and bonds, with
	implicit hydrogens and optional stereo parities, plus YAML
	serialization of the graphs.

    Graph analyses feeding the geometry builders: sp/sp2/sp3
	classification of atoms, longest chains, ring perception and the
	decomposition of fused/bridged ring systems into a primary ring
	plus arcs. The graphs also expose a gonum graph view, so any gonum
	graph algorithm runs on them directly.

    Heuristic z-matrix construction: chains with idealized angles and
	all-trans backbones, rings closed with a single globally consistent
	bond angle (solved from the ring-closure equation with a bracketed
	Brent search), and whole ring systems composed arc by arc.

    Conversion of z-matrices to cartesian geometries and measurement of
	distances, angles and dihedrals on them (subpackage zmat).

    Writing/reading batches of the resulting geometries as XYZ files,
	plain or zstd-compressed (subpackage xyz), and quick 2-D projection
	plots of a geometry (subpackage molplot).

The geometries built here are bootstrap guesses for external quantum
chemistry or force-field refinement. There is no energy model, no torsional
search and no stereochemistry assignment: two bond-length constants, three
canonical angles and planar rings.*/
package automol
