// Package rebalance maintains a personal core/satellite portfolio against a
// target allocation model.
//
// The package splits the holdings table into a core subset (tickers present
// in the model) and a satellite remainder, then derives three views of the
// core:
//
//   - the unconstrained rebalance, where every position is moved to its
//     target weight and overweight positions imply sells,
//   - the no-sell rebalance, a buy-only plan scaled on the holding that is
//     cheapest to rebalance, and
//   - the spend scenario, a greedy simulation that deploys a cash amount one
//     share at a time across the most underweight holdings.
//
// Market prices and the USD/CAD exchange rate are refreshed through small
// collaborator interfaces; persistence is plain CSV owned by the caller.
package rebalance
