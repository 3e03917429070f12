// Package rootfind solves scalar nonlinear equations f(x) = 0.
//
// Two methods are available:
//   - newton: Newton iteration on a central-difference derivative with
//     step halving, falling back to a secant step when the derivative vanishes
//   - brent: geometric bracket expansion around the initial guess followed
//     by Brent's method
//
// Tolerances and the iteration budget are explicit in Config. A solve that
// exhausts the budget, stops making progress, or hits a non-finite value
// returns a *NonConvergenceError carrying the last iterate and residual.
// A candidate with |f| <= Tol is only accepted if f changes sign around it,
// so roots of even multiplicity and asymptotes approaching zero are rejected.
package rootfind
