// Package equilibrium computes Copeland–Galai equilibrium quotes.
//
// A market maker quotes ask = c + S/2 and bid = c - S/2 around the
// distribution's center c. Uninformed counterparties (probability 1-pi) pay
// the half-spread; informed counterparties (probability pi) trade only when
// the fundamental value V lies beyond the quote. The equilibrium spread S*
// is the root of the expected profit
//
//	0.5 * [ (1-pi)(a-c) + pi(a - E[V|V>a]) + (1-pi)(c-b) + pi(E[V|V<b] - b) ]
//
// Supported families:
//   - Normal(mu, sigma), center mu
//   - Exponential(lambda), center 1/lambda
package equilibrium
