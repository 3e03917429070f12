package rootfind

import "math"

const (
	// bracketGrowth is the factor the search half-width grows by per expansion.
	bracketGrowth = 1.6
	epsilon       = 2.220446049250313e-16
)

func solveBrent(f Func, x0 float64, cfg Config) (Root, error) {
	fail := func(x, fx float64, iter int, reason string) (Root, error) {
		return Root{}, &NonConvergenceError{
			Method:     Brent,
			X:          x,
			Residual:   fx,
			Iterations: iter,
			Reason:     reason,
		}
	}

	f0 := f(x0)
	if !isFinite(f0) {
		return fail(x0, f0, 0, "objective not finite at initial guess")
	}
	if math.Abs(f0) <= cfg.Tol {
		return Root{X: x0, Residual: f0}, nil
	}

	a, b, fa, fb, iter, ok := expandBracket(f, x0, f0, cfg.MaxIter)
	if !ok {
		return fail(x0, f0, iter, "no sign change found")
	}

	c, fc := b, fb
	var d, e float64
	for ; iter <= cfg.MaxIter; iter++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		if math.Abs(fb) <= cfg.Tol {
			return Root{X: b, Residual: fb, Iterations: iter}, nil
		}

		tol1 := 2*epsilon*math.Abs(b) + 0.5*cfg.XTol*scale(b)
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 {
			return fail(b, fb, iter, "bracket collapsed")
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Inverse quadratic interpolation, or secant when a == c.
			var p, q float64
			s := fb / fa
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		if !isFinite(fb) {
			return fail(b, fb, iter, "objective not finite")
		}
	}

	return fail(b, fb, cfg.MaxIter, "iteration budget exhausted")
}

// expandBracket grows a symmetric interval around x0 until f changes sign.
// Each expansion counts as one iteration.
func expandBracket(f Func, x0, f0 float64, maxIter int) (a, b, fa, fb float64, iter int, ok bool) {
	dx := 0.1 * scale(x0)
	for iter = 1; iter <= maxIter; iter++ {
		lo, hi := x0-dx, x0+dx
		flo, fhi := f(lo), f(hi)

		if isFinite(fhi) && !sameSign(f0, fhi) {
			return x0, hi, f0, fhi, iter, true
		}
		if isFinite(flo) && !sameSign(flo, f0) {
			return lo, x0, flo, f0, iter, true
		}
		dx *= bracketGrowth
	}
	return 0, 0, 0, 0, maxIter, false
}

func sameSign(u, v float64) bool {
	return (u > 0 && v > 0) || (u < 0 && v < 0)
}
