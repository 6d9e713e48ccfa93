// Package xyk implements the constant-product (x*y=k) curve: swap,
// provide and withdraw against a plain two-asset pool. Unlike stable
// and concentrated, xyk carries no per-asset precision concept at
// all -- every amount here is already in its asset's native units.
//
// Ported from original_source's
// pair_xyk/{mod,provide,withdraw,consts}.rs.
package xyk

import (
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/errs"
	"github.com/paw-chain/curvesim/internal/params"
)

// SwapResult is the wire-facing outcome of a swap simulation.
type SwapResult struct {
	ReturnAmount     sdkmath.Int
	SpreadAmount     sdkmath.Int
	CommissionAmount sdkmath.Int
}

// ProvideResult is the wire-facing outcome of a provide simulation.
type ProvideResult struct {
	ShareAmount sdkmath.Int
}

// WithdrawResult is the wire-facing outcome of a withdraw simulation.
type WithdrawResult struct {
	ReturnedAmounts [2]sdkmath.Int
}

func mulDecTrunc(v sdkmath.Int, rate decimal.Dec256) (sdkmath.Int, error) {
	vDec, err := decimal.Dec256FromAtomics(v, 0)
	if err != nil {
		return sdkmath.Int{}, err
	}
	product, err := vDec.Mul(rate)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return product.TruncateToInt(), nil
}

// Swap simulates a constant-product trade. Ported from
// pair_xyk/mod.rs's compute_swap: the commission is taken out of the
// naive return amount before it is handed back, and only the
// maker-fee share of the commission ever leaves the pool -- the rest
// is absorbed back into the reserves.
func Swap(offerPool, askPool, offerAmount sdkmath.Int, commissionRate decimal.Dec256) (SwapResult, error) {
	cp, err := offerPool.SafeMul(askPool)
	if err != nil {
		return SwapResult{}, errs.ErrOverflow.Wrap(err.Error())
	}

	offerPoolAfter, err := offerPool.SafeAdd(offerAmount)
	if err != nil {
		return SwapResult{}, errs.ErrOverflow.Wrap(err.Error())
	}
	if offerPoolAfter.IsZero() {
		return SwapResult{}, errs.ErrDivideByZero.Wrap("offer pool plus offer amount is zero")
	}
	// the source computes this step in Decimal256 and truncates only
	// once at the very end, which is equivalent to rounding cp/denom
	// UP before subtracting from ask_pool -- rounding it down here
	// would hand the trader one extra base unit every time the
	// division isn't exact.
	newAskPool, err := quoCeil(cp, offerPoolAfter)
	if err != nil {
		return SwapResult{}, errs.ErrOverflow.Wrap(err.Error())
	}
	returnAmount, err := askPool.SafeSub(newAskPool)
	if err != nil {
		return SwapResult{}, errs.ErrOverflow.Wrap(err.Error())
	}

	idealReturn, err := offerAmount.SafeMul(askPool)
	if err != nil {
		return SwapResult{}, errs.ErrOverflow.Wrap(err.Error())
	}
	if offerPool.IsZero() {
		return SwapResult{}, errs.ErrDivideByZero.Wrap("offer pool is zero")
	}
	idealReturn, err = idealReturn.SafeQuo(offerPool)
	if err != nil {
		return SwapResult{}, errs.ErrOverflow.Wrap(err.Error())
	}
	spreadAmount := saturatingSubInt(idealReturn, returnAmount)

	commissionAmount, err := mulDecTrunc(returnAmount, commissionRate)
	if err != nil {
		return SwapResult{}, err
	}

	// the commission (minus the maker's share of it) is absorbed back
	// into the pool rather than returned to the trader.
	finalReturn, err := returnAmount.SafeSub(commissionAmount)
	if err != nil {
		return SwapResult{}, errs.ErrOverflow.Wrap(err.Error())
	}

	return SwapResult{
		ReturnAmount:     finalReturn,
		SpreadAmount:     spreadAmount,
		CommissionAmount: commissionAmount,
	}, nil
}

func saturatingSubInt(a, b sdkmath.Int) sdkmath.Int {
	if a.LT(b) {
		return sdkmath.ZeroInt()
	}
	diff, err := a.SafeSub(b)
	if err != nil {
		return sdkmath.ZeroInt()
	}
	return diff
}

func integerSqrt(v sdkmath.Int) sdkmath.Int {
	return sdkmath.NewIntFromBigInt(new(big.Int).Sqrt(v.BigInt()))
}

// quoCeil divides two non-negative Ints rounding toward positive
// infinity, matching the source's Decimal256-then-truncate path for
// ask_pool - cp/denom (floor(ask_pool - cp/denom) == ask_pool -
// ceil(cp/denom) for integer ask_pool).
func quoCeil(a, b sdkmath.Int) (sdkmath.Int, error) {
	if b.IsZero() {
		return sdkmath.Int{}, errs.ErrDivideByZero.Wrap("quoCeil divisor is zero")
	}
	quo, rem := new(big.Int).QuoRem(a.BigInt(), b.BigInt(), new(big.Int))
	if rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return sdkmath.NewIntFromBigInt(quo), nil
}

// Provide simulates adding liquidity to a constant-product pool.
// Ported from pair_xyk/provide.rs's compute_provide: the first
// deposit mints shares at the integer square root of the product of
// the two deposits, less the minimum liquidity amount permanently
// withheld; every later deposit mints proportionally to the smaller
// of the two per-asset ratios.
func Provide(deposits [2]sdkmath.Int, assetAmounts [2]sdkmath.Int, totalShare sdkmath.Int) (ProvideResult, error) {
	if deposits[0].IsZero() || deposits[1].IsZero() {
		return ProvideResult{}, errs.ErrInvalidZeroAmount.Wrap("both deposits must be non-zero")
	}

	if totalShare.IsZero() {
		product, err := deposits[0].SafeMul(deposits[1])
		if err != nil {
			return ProvideResult{}, errs.ErrOverflow.Wrap(err.Error())
		}
		share, err := integerSqrt(product).SafeSub(params.MinimumLiquidityAmount.TruncateToInt())
		if err != nil || share.IsZero() {
			return ProvideResult{}, errs.ErrMinimumLiquidityAmount.Wrap("initial deposit below minimum liquidity amount")
		}
		return ProvideResult{ShareAmount: share}, nil
	}

	var ratios [2]sdkmath.Int
	for i := range deposits {
		if assetAmounts[i].IsZero() {
			return ProvideResult{}, errs.ErrDivideByZero.Wrap("pool asset amount is zero")
		}
		product, err := deposits[i].SafeMul(totalShare)
		if err != nil {
			return ProvideResult{}, errs.ErrOverflow.Wrap(err.Error())
		}
		ratio, err := product.SafeQuo(assetAmounts[i])
		if err != nil {
			return ProvideResult{}, errs.ErrOverflow.Wrap(err.Error())
		}
		ratios[i] = ratio
	}

	share := ratios[0]
	if ratios[1].LT(share) {
		share = ratios[1]
	}
	if share.IsZero() {
		return ProvideResult{}, errs.ErrLiquidityAmountTooSmall.Wrap("provide mints zero shares")
	}
	return ProvideResult{ShareAmount: share}, nil
}

// Withdraw simulates proportional removal of liquidity: each asset
// refunds amount/totalShare of the pool's reserve of that asset.
// Ported from pair_xyk/withdraw.rs's compute_withdraw; shared
// verbatim by pair_stable's own withdraw.
func Withdraw(amount sdkmath.Int, assetAmounts [2]sdkmath.Int, totalShare sdkmath.Int) (WithdrawResult, error) {
	var result WithdrawResult
	if totalShare.IsZero() {
		result.ReturnedAmounts[0] = sdkmath.ZeroInt()
		result.ReturnedAmounts[1] = sdkmath.ZeroInt()
		return result, nil
	}

	for i, pool := range assetAmounts {
		scaled, err := pool.SafeMul(amount)
		if err != nil {
			return WithdrawResult{}, errs.ErrOverflow.Wrap(err.Error())
		}
		refund, err := scaled.SafeQuo(totalShare)
		if err != nil {
			return WithdrawResult{}, errs.ErrOverflow.Wrap(err.Error())
		}
		result.ReturnedAmounts[i] = refund
	}
	return result, nil
}
