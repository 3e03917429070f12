package rootfind

import "math"

// maxHalvings bounds the backtracking line search per iteration.
const maxHalvings = 40

func solveNewton(f Func, x0 float64, cfg Config) (Root, error) {
	fail := func(x, fx float64, iter int, reason string) (Root, error) {
		return Root{}, &NonConvergenceError{
			Method:     Newton,
			X:          x,
			Residual:   fx,
			Iterations: iter,
			Reason:     reason,
		}
	}

	x := x0
	fx := f(x)
	if !isFinite(fx) {
		return fail(x, fx, 0, "objective not finite at initial guess")
	}
	if math.Abs(fx) <= cfg.Tol {
		return Root{X: x, Residual: fx}, nil
	}

	prevX, prevF := math.NaN(), math.NaN()

	for iter := 1; iter <= cfg.MaxIter; iter++ {
		h := cfg.Step * scale(x)
		d := (f(x+h) - f(x-h)) / (2 * h)

		if !isFinite(d) || d == 0 {
			// Secant through the previous iterate.
			if isFinite(prevX) && prevF != fx {
				d = (fx - prevF) / (x - prevX)
			}
			if !isFinite(d) || d == 0 {
				return fail(x, fx, iter, "derivative vanished")
			}
		}

		step := fx / d
		t := 1.0
		xn, fn := x, fx
		improved := false
		for k := 0; k < maxHalvings; k++ {
			xn = x - t*step
			fn = f(xn)
			if isFinite(fn) && math.Abs(fn) < math.Abs(fx) {
				improved = true
				break
			}
			t /= 2
		}
		if !improved {
			return fail(x, fx, iter, "no further progress")
		}

		if math.Abs(fn) <= cfg.Tol {
			return Root{X: xn, Residual: fn, Iterations: iter}, nil
		}
		if math.Abs(xn-x) <= cfg.XTol*scale(x) {
			return fail(xn, fn, iter, "step below xtol")
		}

		prevX, prevF = x, fx
		x, fx = xn, fn
	}

	return fail(x, fx, cfg.MaxIter, "iteration budget exhausted")
}
