// Package params holds the tuning constants shared by the curve
// kernels. They are fixed at compile time rather than wired through a
// runtime config struct: a pure simulation library has no deployment
// surface to vary them at (see DESIGN.md, internal/params).
package params

import "github.com/paw-chain/curvesim/decimal"

// N is the number of assets every pool kernel in this engine supports.
const N = 2

// NPow2 is N^2, used as a scale factor inside the Newton iterations.
const NPow2 = N * N

// MaxIter bounds both newton_d and newton_y; exceeding it without
// converging is a hard error rather than returning a stale estimate.
const MaxIter = 64

var (
	// FeeTol is the dynamic fee curve's floor on its balance weight k:
	// a k at or below it is clamped to zero, so the fee becomes exactly
	// out_fee. Ported from consts.rs's FEE_TOL.
	FeeTol = mustDec("0.001")

	// Tol is the Newton convergence tolerance both solvers iterate to.
	Tol = mustDec("0.00001")

	// Padding inflates the df/dD and df/dx denominators before the
	// final division, preserving precision the same way consts.rs's
	// PADDING constant does. consts.rs defines this as the raw atomics
	// Decimal256::raw(1e36), which at 18 decimal places is the value
	// 1e18, not 1e36.
	Padding = mustDec("1000000000000000000")

	// MinimumLiquidityAmount is burned from the very first mint of
	// every pool kind, permanently pinning a minimum supply floor.
	MinimumLiquidityAmount = decimal.NewDec256FromUint64(1000)
)

func mustDec(s string) decimal.Dec256 {
	d, err := decimal.Dec256FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
