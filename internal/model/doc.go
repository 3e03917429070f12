// Package model defines the value types shared by the spread solver.
//
// Conventions:
//   - Prices and spreads are float64 in the asset's quote currency
//   - Pi is the probability that a counterparty is informed, in [0, 1]
//   - Params and Result are immutable values produced per solve call
package model
