package equilibrium

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rickgao/cg-spread/internal/rootfind"
)

// millsAsymptotic is the z above which the Mills ratio uses its asymptotic
// series instead of phi(z)/(1-Phi(z)).
const millsAsymptotic = 30

// normalProfit returns the expected profit as a function of the spread for
// V ~ Normal(mu, sigma). Terms are written relative to mu, so the profit
// does not depend on mu at all.
func normalProfit(sigma, pi float64) rootfind.Func {
	return func(s float64) float64 {
		half := s / 2

		// z_a = (a-mu)/sigma and z_b = (mu-b)/sigma coincide.
		z := half / sigma

		// E[V|V>a] - mu and E[V|V<b] - mu, with phi(z)/Phi(z) = millsRatio(-z).
		aboveAsk := sigma * millsRatio(z)
		belowBid := -sigma * millsRatio(-z)

		askProfit := (1-pi)*half + pi*(half-aboveAsk)
		bidProfit := (1-pi)*half + pi*(belowBid+half)

		return 0.5 * (askProfit + bidProfit)
	}
}

// millsRatio returns phi(z) / (1 - Phi(z)).
func millsRatio(z float64) float64 {
	if z > millsAsymptotic {
		// z + 1/z - 2/z^3 + 10/z^5 - 74/z^7
		r := 1 / (z * z)
		return z + (1/z)*(1+r*(-2+r*(10+r*(-74))))
	}
	return distuv.UnitNormal.Prob(z) / distuv.UnitNormal.CDF(-z)
}

// exponentialProfit returns the expected profit as a function of the spread
// for V ~ Exponential(lambda).
func exponentialProfit(lambda, pi float64) rootfind.Func {
	mean := 1 / lambda
	return func(s float64) float64 {
		half := s / 2
		b := mean - half

		// Informed buyers pay a for a+1/lambda (memoryless) and informed
		// sellers receive b for E[V|V<b]. The two 1/lambda terms cancel,
		// leaving -b / (1 - e^{-lambda b}).
		informed := -exponentialTail(lambda, b)

		uninformed := 2 * half
		return 0.5 * ((1-pi)*uninformed + pi*informed)
	}
}

// exponentialTail returns b / (1 - e^{-lambda b}), the informed sellers'
// loss in excess of 1/lambda. It tends to 1/lambda as b -> 0.
func exponentialTail(lambda, b float64) float64 {
	if b == 0 {
		return 1 / lambda
	}
	return b / -math.Expm1(-lambda*b)
}
