package concentrated

import (
	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/errs"
	"github.com/paw-chain/curvesim/internal/params"
	"github.com/paw-chain/curvesim/ramp"
)

// ProvideResult is the wire-facing outcome of a provide simulation.
type ProvideResult struct {
	ShareAmount sdkmath.Int
}

// WithdrawResult is the wire-facing outcome of a withdraw simulation.
type WithdrawResult struct {
	ReturnedAmounts [2]sdkmath.Int
}

func greatestPrecision(precisions [2]uint32) uint32 {
	if precisions[0] > precisions[1] {
		return precisions[0]
	}
	return precisions[1]
}

func rescalePair(xs [2]decimal.Dec256, precisions [2]uint32) ([2]decimal.Dec256, error) {
	var out [2]decimal.Dec256
	for i, x := range xs {
		rescaled, err := rescale(x, precisions[i])
		if err != nil {
			return out, err
		}
		out[i] = rescaled
	}
	return out, nil
}

// Provide simulates adding liquidity to a concentrated pool. The
// source material's pair_concentrated module never implements
// provide/withdraw (see DESIGN.md); this mirrors pair_stable's
// D-invariant-before/after approach, substituting calc_d's rotated,
// price_scale-aware invariant for stable's compute_d, since both
// curves share the same D-bonding-curve share-minting shape.
func Provide(
	xs, deposits [2]decimal.Dec256,
	assetPrecisions [2]uint32,
	totalShare sdkmath.Int,
	cfg PairConfig,
	sched ramp.Schedule,
	blockTime uint64,
) (ProvideResult, error) {
	if deposits[0].IsZero() || deposits[1].IsZero() {
		return ProvideResult{}, errs.ErrInvalidZeroAmount.Wrap("both deposits must be non-zero")
	}

	rotatedXs, err := rescalePair(xs, assetPrecisions)
	if err != nil {
		return ProvideResult{}, err
	}
	rotatedXs[1], err = rotatedXs[1].Mul(cfg.PriceScale)
	if err != nil {
		return ProvideResult{}, err
	}

	rotatedDeposits, err := rescalePair(deposits, assetPrecisions)
	if err != nil {
		return ProvideResult{}, err
	}
	rotatedDeposits[1], err = rotatedDeposits[1].Mul(cfg.PriceScale)
	if err != nil {
		return ProvideResult{}, err
	}

	a, gamma, err := resolveAmpGamma(blockTime, sched)
	if err != nil {
		return ProvideResult{}, err
	}

	var newBalances [2]decimal.Dec256
	for i := range newBalances {
		newBalances[i], err = rotatedXs[i].Add(rotatedDeposits[i])
		if err != nil {
			return ProvideResult{}, err
		}
	}

	depositD, err := CalcD(newBalances, a, gamma)
	if err != nil {
		return ProvideResult{}, err
	}

	prec := greatestPrecision(assetPrecisions)

	if totalShare.IsZero() {
		shareDec, err := depositD.ToUint128(prec)
		if err != nil {
			return ProvideResult{}, err
		}
		share, err := shareDec.SafeSub(params.MinimumLiquidityAmount.TruncateToInt())
		if err != nil || share.IsZero() {
			return ProvideResult{}, errs.ErrMinimumLiquidityAmount.Wrap("initial deposit D below minimum liquidity amount")
		}
		return ProvideResult{ShareAmount: share}, nil
	}

	initD, err := CalcD(rotatedXs, a, gamma)
	if err != nil {
		return ProvideResult{}, err
	}
	deltaD := depositD.SaturatingSub(initD)

	totalShareDec, err := decimal.Dec256FromAtomics(totalShare, prec)
	if err != nil {
		return ProvideResult{}, err
	}
	shareRatio, err := totalShareDec.MulRatio(deltaD, initD)
	if err != nil {
		return ProvideResult{}, err
	}
	share, err := shareRatio.ToUint128(prec)
	if err != nil {
		return ProvideResult{}, err
	}
	if share.IsZero() {
		return ProvideResult{}, errs.ErrLiquidityAmountTooSmall.Wrap("provide mints zero shares")
	}
	return ProvideResult{ShareAmount: share}, nil
}

// Withdraw simulates proportional removal of liquidity, unaffected by
// the price_scale rotation used internally for the invariant math:
// the actual reserves, not the rotated numeraire, are what is owed
// back. Same shape as xyk.Withdraw/stable.Withdraw.
func Withdraw(amount sdkmath.Int, xs [2]decimal.Dec256, assetPrecisions [2]uint32, totalShare sdkmath.Int) (WithdrawResult, error) {
	var result WithdrawResult
	if totalShare.IsZero() {
		result.ReturnedAmounts[0] = sdkmath.ZeroInt()
		result.ReturnedAmounts[1] = sdkmath.ZeroInt()
		return result, nil
	}

	for i, x := range xs {
		rescaled, err := rescale(x, assetPrecisions[i])
		if err != nil {
			return WithdrawResult{}, err
		}
		native, err := rescaled.ToUint128(assetPrecisions[i])
		if err != nil {
			return WithdrawResult{}, err
		}
		scaled, err := native.SafeMul(amount)
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
