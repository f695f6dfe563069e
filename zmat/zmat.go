/*
 * zmat.go, part of automol.
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

/*Package zmat implements the z-matrix internal-coordinate table used by the
geometry builders: an ordered sequence of atoms, each positioned against up
to three earlier atoms through a distance (angstroms) and two angles
(degrees). Zmat values are functional: every operation returns a new value
and rows are never mutated after they are appended.*/
package zmat

import (
	"fmt"
	"strings"
)

//NoRef marks an unused reference slot in a row.
const NoRef = -1

//Row is one line of a z-matrix: an atom symbol, up to three references to
//strictly earlier rows, and the distance/angle/dihedral values measured
//against them. Reference slots beyond what the row's position allows hold
//NoRef, and their values are meaningless.
type Row struct {
	Symbol string
	Refs   [3]int
	Vals   [3]float64
}

//Zmat is an ordered, immutable z-matrix. The zero value (and nil) is an
//empty z-matrix ready to grow through AddAtom.
type Zmat struct {
	rows []Row
}

//New returns an empty z-matrix.
func New() *Zmat {
	return &Zmat{}
}

//Count returns the number of rows (placed atoms).
func (Z *Zmat) Count() int {
	if Z == nil {
		return 0
	}
	return len(Z.rows)
}

//Row returns row i. Panics if out of range.
func (Z *Zmat) Row(i int) Row {
	if i < 0 || i >= Z.Count() {
		panic(fmt.Sprintf("zmat: requested row %d out of range (%d rows)", i, Z.Count()))
	}
	return Z.rows[i]
}

//Symbols returns the atom symbols in row order.
func (Z *Zmat) Symbols() []string {
	syms := make([]string, Z.Count())
	for i := range syms {
		syms[i] = Z.rows[i].Symbol
	}
	return syms
}

//AddAtom returns a new z-matrix with one more row. The new row references
//min(Count,3) earlier rows: refs[0] is the distance reference, refs[1] the
//angle reference and refs[2] the dihedral reference; unused trailing slots
//must hold NoRef. All used references must point to strictly earlier rows.
//Values in unused slots are zeroed.
func (Z *Zmat) AddAtom(symbol string, refs [3]int, vals [3]float64) (*Zmat, error) {
	n := Z.Count()
	want := n
	if want > 3 {
		want = 3
	}
	for s := 0; s < 3; s++ {
		if s < want {
			if refs[s] < 0 || refs[s] >= n {
				return nil, Error{fmt.Sprintf("row %d reference %d must point to one of the %d earlier rows, got %d", n, s, n, refs[s]), []string{"AddAtom"}}
			}
			continue
		}
		if refs[s] != NoRef {
			return nil, Error{fmt.Sprintf("row %d takes only %d references, slot %d must be NoRef", n, want, s), []string{"AddAtom"}}
		}
		vals[s] = 0
	}
	rows := make([]Row, n, n+1)
	copy(rows, Z.rows)
	rows = append(rows, Row{Symbol: symbol, Refs: refs, Vals: vals})
	return &Zmat{rows: rows}, nil
}

//Truncate returns a new z-matrix holding only the first n rows. Since
//references always point backwards, the result is self-contained.
func (Z *Zmat) Truncate(n int) *Zmat {
	if n < 0 || n > Z.Count() {
		panic(fmt.Sprintf("zmat: truncation to %d rows out of range (%d rows)", n, Z.Count()))
	}
	rows := make([]Row, n)
	copy(rows, Z.rows[:n])
	return &Zmat{rows: rows}
}

//JoinReplaceOne merges other into Z by identifying other's first row with
//the existing row target of Z: that row is not appended again, and every
//reference to it inside other is rewritten to target, while references to
//other's interior rows are offset into the merged numbering. The first rows
//of other lack a full reference set (other's row 1 carries only a distance);
//rowMat and valMat supply the missing trailing references and values:
//rowMat[i]/valMat[i] fill, in order, the empty slots of other's row i+1,
//anchoring the merged fragment onto rows that already exist in Z.
func JoinReplaceOne(Z, other *Zmat, target int, rowMat [][]int, valMat [][]float64) (*Zmat, error) {
	if target < 0 || target >= Z.Count() {
		return nil, Error{fmt.Sprintf("target row %d out of range (%d rows)", target, Z.Count()), []string{"JoinReplaceOne"}}
	}
	if other.Count() == 0 {
		return nil, Error{"nothing to join: other z-matrix is empty", []string{"JoinReplaceOne"}}
	}
	if len(rowMat) != len(valMat) {
		return nil, Error{"mismatched reference and value fill matrices", []string{"JoinReplaceOne"}}
	}
	base := Z.Count()
	mapref := func(r int) int {
		if r == 0 {
			return target
		}
		return base + r - 1
	}
	merged := Z
	var err error
	for i := 1; i < other.Count(); i++ {
		row := other.Row(i)
		var refs [3]int
		vals := row.Vals
		fill := 0
		for s := 0; s < 3; s++ {
			if row.Refs[s] != NoRef {
				refs[s] = mapref(row.Refs[s])
				continue
			}
			refs[s] = NoRef
			if i-1 < len(rowMat) && fill < len(rowMat[i-1]) {
				refs[s] = rowMat[i-1][fill]
				vals[s] = valMat[i-1][fill]
				fill++
			}
		}
		merged, err = merged.AddAtom(row.Symbol, refs, vals)
		if err != nil {
			errd := err.(Error)
			errd.Decorate("JoinReplaceOne")
			return nil, errd
		}
	}
	return merged, nil
}

//String renders the z-matrix in the usual text form: one atom per line, with
//one-indexed row references.
func (Z *Zmat) String() string {
	var b strings.Builder
	for _, row := range Z.rows {
		fmt.Fprintf(&b, "%-2s", row.Symbol)
		for s := 0; s < 3; s++ {
			if row.Refs[s] == NoRef {
				break
			}
			fmt.Fprintf(&b, "  %3d %10.6f", row.Refs[s]+1, row.Vals[s])
		}
		b.WriteString("\n")
	}
	return b.String()
}

//Error is the z-matrix error type. It fulfills the Error interface of the
//parent package.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("zmat error: %s", err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
