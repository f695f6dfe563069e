/*
 * errors.go, part of automol.
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

import "fmt"

//This error scheme predates the "wrapping" error system of Go (the "%w" directive and
//the errors package). Instead of wrapping, errors are "decorated" with the names of the
//callers as they are passed up, without changing their type.

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. The decorate slice
// should contain a list of the functions in the calling stack, plus, for each
// function, any relevant information, or nothing. If passed an empty string,
// Decorate just returns the current decoration without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete general error type of the library.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter
	//the receiver, it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// PreconditionError reports invalid input to one of the geometry builders or
// graph accessors: an unbonded atom pair given to a bonded-pair lookup, a
// ring or arc with fewer than two atoms, or a ring-system decomposition whose
// arc endpoints have not been placed yet.
type PreconditionError struct {
	message string
	deco    []string
}

func (err PreconditionError) Error() string {
	return fmt.Sprintf("automol: precondition violated: %s", err.message)
}

func (err PreconditionError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// HybridizationError reports an atom whose hybridization is not one of the
// three categories (sp, sp2, sp3) the heuristic angle model understands.
// It keeps the offending atom key and the value that was obtained for it.
type HybridizationError struct {
	Key   int
	Value int
	deco  []string
}

func (err HybridizationError) Error() string {
	return fmt.Sprintf("automol: unsupported hybridization %d for atom key %d", err.Value, err.Key)
}

func (err HybridizationError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// ConvergenceError reports that the ring-closure root search did not converge,
// or could not bracket a root, within the search interval. It keeps the
// bracket and the function values at its ends for inspection.
type ConvergenceError struct {
	A, B     float64
	FA, FB   float64
	maxmoves bool //true if the iteration budget ran out, false if no bracket existed
	deco     []string
}

func (err ConvergenceError) Error() string {
	if err.maxmoves {
		return fmt.Sprintf("automol: ring-closure search did not converge in [%4.2f,%4.2f]", err.A, err.B)
	}
	return fmt.Sprintf("automol: ring-closure equation has no root in [%4.2f,%4.2f] (f: %6.4f, %6.4f)", err.A, err.B, err.FA, err.FB)
}

func (err ConvergenceError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
