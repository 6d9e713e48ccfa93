package stable

import (
	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/errs"
	"github.com/paw-chain/curvesim/internal/params"
	"github.com/paw-chain/curvesim/xyk"
)

// AmpSchedule is the direction-aware integer ramp pair_stable keeps
// alongside its reserves, distinct from concentrated's Dec-based
// ramp.Schedule.
type AmpSchedule struct {
	InitAmpTime uint64
	InitAmp     uint64
	NextAmpTime uint64
	NextAmp     uint64
}

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

// rescaleReserves rescales each reserve to the ask asset's own
// precision on the ask index and the offer asset's precision
// elsewhere, mirroring concentrated's helper of the same shape.
func rescaleReserves(xs [2]sdkmath.Int, askInd int, offerAssetPrec, askAssetPrec uint32) ([2]decimal.Dec256, error) {
	var out [2]decimal.Dec256
	for i, x := range xs {
		prec := offerAssetPrec
		if i == askInd {
			prec = askAssetPrec
		}
		rescaled, err := decimal.Dec256FromAtomics(x, prec)
		if err != nil {
			return out, err
		}
		out[i] = rescaled
	}
	return out, nil
}

func currentAmp(blockTime uint64, amp AmpSchedule) (decimal.Dec256, error) {
	return ComputeCurrentAmp(blockTime, amp.InitAmpTime, amp.InitAmp, amp.NextAmpTime, amp.NextAmp)
}

// Swap simulates a stableswap trade. Ported from
// pair_stable/swap.rs's simulate/compute_swap: the offer amount and
// the non-ask reserve are rescaled to the offer asset's own
// precision, the ask reserve to the ask asset's precision, D is
// solved once against the pre-trade reserves, then y is solved again
// against the post-trade offer reserve holding D fixed. A zero offer
// amount or a zero reserve on either side short-circuits to a no-op
// result, matching check_swap_parameters.
func Swap(
	xs [2]sdkmath.Int,
	offerAmount sdkmath.Int,
	offerAssetPrec, askAssetPrec uint32,
	askInd int,
	commissionRate decimal.Dec256,
	amp AmpSchedule,
	blockTime uint64,
) (SwapResult, error) {
	offerInd := 1 ^ askInd

	if offerAmount.IsZero() || xs[0].IsZero() || xs[1].IsZero() {
		zero := sdkmath.ZeroInt()
		return SwapResult{ReturnAmount: zero, SpreadAmount: zero, CommissionAmount: zero}, nil
	}

	ixs, err := rescaleReserves(xs, askInd, offerAssetPrec, askAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}
	offerDec, err := decimal.Dec256FromAtomics(offerAmount, offerAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}

	ampNow, err := currentAmp(blockTime, amp)
	if err != nil {
		return SwapResult{}, err
	}

	d, err := ComputeD(ixs, ampNow)
	if err != nil {
		return SwapResult{}, err
	}

	offeredBalance, err := ixs[offerInd].Add(offerDec)
	if err != nil {
		return SwapResult{}, err
	}
	ixs[offerInd] = offeredBalance

	newY, err := CalcY(ixs, ampNow, d, askInd)
	if err != nil {
		return SwapResult{}, err
	}

	newYInt, err := newY.ToUint128(askAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}
	returnAmount, err := xs[askInd].SafeSub(newYInt)
	if err != nil {
		return SwapResult{}, errs.ErrOverflow.Wrap(err.Error())
	}

	offerAmountAtAskPrec, err := offerDec.ToUint128(askAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}

	// swap rate is considered 1:1 in stableswap, so any gap between
	// the offer and the return is spread.
	spreadAmount := saturatingSubInt(offerAmountAtAskPrec, returnAmount)

	commissionAmountDec, err := decimal.Dec256FromAtomics(returnAmount, 0)
	if err != nil {
		return SwapResult{}, err
	}
	commissionAmountDec, err = commissionAmountDec.Mul(commissionRate)
	if err != nil {
		return SwapResult{}, err
	}
	commissionAmount := commissionAmountDec.TruncateToInt()

	finalReturn := saturatingSubInt(returnAmount, commissionAmount)

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

// Provide simulates adding liquidity to a stable pool. Ported from
// pair_stable/provide.rs's compute_provide: besides the
// InvalidZeroAmount check on either deposit, the original also keeps
// a second "at least one deposit non-zero" guard, which can never
// actually fire once the first check has passed -- preserved here
// for the same reason the original keeps it, as a belt-and-braces
// check against a future change to the first guard.
func Provide(
	xs, deposits [2]sdkmath.Int,
	assetPrecisions [2]uint32,
	totalShare sdkmath.Int,
	amp AmpSchedule,
	blockTime uint64,
) (ProvideResult, error) {
	if deposits[0].IsZero() || deposits[1].IsZero() {
		return ProvideResult{}, errs.ErrInvalidZeroAmount.Wrap("both deposits must be non-zero")
	}

	ampNow, err := currentAmp(blockTime, amp)
	if err != nil {
		return ProvideResult{}, err
	}

	nonZero := false
	for _, dep := range deposits {
		if !dep.IsZero() {
			nonZero = true
		}
	}
	if !nonZero {
		return ProvideResult{}, errs.ErrInvalidZeroAmount.Wrap("at least one deposit must be non-zero")
	}

	var ixs, ideposits [2]decimal.Dec256
	for i := range xs {
		ixs[i], err = decimal.Dec256FromAtomics(xs[i], assetPrecisions[i])
		if err != nil {
			return ProvideResult{}, err
		}
		ideposits[i], err = decimal.Dec256FromAtomics(deposits[i], assetPrecisions[i])
		if err != nil {
			return ProvideResult{}, err
		}
	}

	var newBalances [2]decimal.Dec256
	for i := range newBalances {
		newBalances[i], err = ixs[i].Add(ideposits[i])
		if err != nil {
			return ProvideResult{}, err
		}
	}

	depositD, err := ComputeD(newBalances, ampNow)
	if err != nil {
		return ProvideResult{}, err
	}

	greatest := GreatestPrecision(assetPrecisions[:])

	if totalShare.IsZero() {
		shareInt, err := depositD.ToUint128(greatest)
		if err != nil {
			return ProvideResult{}, err
		}
		share, err := shareInt.SafeSub(params.MinimumLiquidityAmount.TruncateToInt())
		if err != nil || share.IsZero() {
			return ProvideResult{}, errs.ErrMinimumLiquidityAmount.Wrap("initial deposit D below minimum liquidity amount")
		}
		return ProvideResult{ShareAmount: share}, nil
	}

	initD, err := ComputeD(ixs, ampNow)
	if err != nil {
		return ProvideResult{}, err
	}
	deltaD := depositD.SaturatingSub(initD)

	totalShareDec, err := decimal.Dec256FromAtomics(totalShare, greatest)
	if err != nil {
		return ProvideResult{}, err
	}
	shareRatio, err := totalShareDec.MulRatio(deltaD, initD)
	if err != nil {
		return ProvideResult{}, err
	}
	share, err := shareRatio.ToUint128(greatest)
	if err != nil {
		return ProvideResult{}, err
	}
	if share.IsZero() {
		return ProvideResult{}, errs.ErrLiquidityAmountTooSmall.Wrap("provide mints zero shares")
	}
	return ProvideResult{ShareAmount: share}, nil
}

// Withdraw simulates proportional removal of liquidity. Ported from
// pair_stable/withdraw.rs, which defers entirely to pair_xyk's
// compute_withdraw -- stable pools hold no per-asset precision
// concept at the withdraw step, operating on raw reserve integers
// exactly like a constant-product pool would.
func Withdraw(amount sdkmath.Int, xs [2]sdkmath.Int, totalShare sdkmath.Int) (xyk.WithdrawResult, error) {
	return xyk.Withdraw(amount, xs, totalShare)
}
