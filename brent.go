/*
 * brent.go, part of automol.
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

import "math"

const (
	brentMaxIter = 100
	brentXtol    = 2.0e-12
)

//brentq finds a root of f in the bracket [a,b] with Brent's method: inverse
//quadratic interpolation where it behaves, secant steps where it doesn't,
//and bisection as the fallback that guarantees convergence. The bracket must
//straddle a sign change. Failures come back as ConvergenceError.
func brentq(f func(float64) float64, a, b float64) (float64, error) {
	fa := f(a)
	fb := f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, ConvergenceError{A: a, B: b, FA: fa, FB: fb}
	}
	c, fc := a, fa
	d := b - a
	e := d
	eps := math.Nextafter(1, 2) - 1 //machine epsilon
	for i := 0; i < brentMaxIter; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol := brentXtol/2 + 2*eps*math.Abs(b)
		m := (c - b) / 2
		if fb == 0 || math.Abs(m) <= tol {
			return b, nil
		}
		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			//interpolation is not trustworthy here, bisect
			d = m
			e = m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				//secant step
				p = 2 * m * s
				q = 1 - s
			} else {
				//inverse quadratic interpolation
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = m
			}
		}
		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
	}
	return 0, ConvergenceError{A: a, B: b, FA: fa, FB: fb, maxmoves: true}
}
