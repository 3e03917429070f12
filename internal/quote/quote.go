// Package quote turns equilibrium results into publishable quotes on a tick grid.
package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rickgao/cg-spread/internal/model"
)

// DefaultPlaces is the precision used when no tick size is set.
const DefaultPlaces = 4

// Quote is a two-sided price in fixed-point decimal.
type Quote struct {
	Bid    decimal.Decimal
	Ask    decimal.Decimal
	Spread decimal.Decimal // Ask - Bid

	places int32
}

// FromResult rounds the bid down and the ask up to multiples of tick, so the
// published spread is never narrower than the equilibrium spread.
// A non-positive tick keeps DefaultPlaces decimals with half-up rounding.
func FromResult(r model.Result, tick decimal.Decimal) Quote {
	bid := decimal.NewFromFloat(r.Bid)
	ask := decimal.NewFromFloat(r.Ask)

	if !tick.IsPositive() {
		bid = bid.Round(DefaultPlaces)
		ask = ask.Round(DefaultPlaces)
		return Quote{Bid: bid, Ask: ask, Spread: ask.Sub(bid), places: DefaultPlaces}
	}

	bid = bid.Div(tick).Floor().Mul(tick)
	ask = ask.Div(tick).Ceil().Mul(tick)

	return Quote{Bid: bid, Ask: ask, Spread: ask.Sub(bid), places: tickPlaces(tick)}
}

// String renders "bid / ask (spread s)".
func (q Quote) String() string {
	return fmt.Sprintf("%s / %s (spread %s)",
		q.Bid.StringFixed(q.places),
		q.Ask.StringFixed(q.places),
		q.Spread.StringFixed(q.places))
}

func tickPlaces(tick decimal.Decimal) int32 {
	if exp := tick.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}
