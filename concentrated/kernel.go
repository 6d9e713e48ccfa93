package concentrated

import (
	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/fee"
	"github.com/paw-chain/curvesim/ramp"
)

// PairConfig holds the concentrated pair's static tuning parameters.
// Ported from the field list pair_concentrated/{mod,swap}.rs's
// simulate() functions thread through individually.
type PairConfig struct {
	PriceScale    decimal.Dec256
	FeeGamma      decimal.Dec256
	MidFee        decimal.Dec256
	OutFee        decimal.Dec256
	MakerFeeShare decimal.Dec256 // accepted for input-signature parity; the source also never folds this into SwapResult
	OraclePrice   decimal.Dec256
}

// SwapResult is the wire-facing outcome of a swap simulation.
type SwapResult struct {
	ReturnAmount     sdkmath.Int
	SpreadAmount     sdkmath.Int
	CommissionAmount sdkmath.Int
}

// rescale re-interprets d's integer part as having `precision`
// fractional digits, ported from the with_precision(to_uint256(), _)
// pattern every simulate() entry point applies to its raw inputs.
func rescale(d decimal.Dec256, precision uint32) (decimal.Dec256, error) {
	return decimal.Dec256FromAtomics(d.TruncateToInt(), precision)
}

func rescaleReserves(xs [2]decimal.Dec256, askInd int, offerAssetPrec, askAssetPrec uint32) ([2]decimal.Dec256, error) {
	var out [2]decimal.Dec256
	for i, x := range xs {
		prec := offerAssetPrec
		if i == askInd {
			prec = askAssetPrec
		}
		rescaled, err := rescale(x, prec)
		if err != nil {
			return out, err
		}
		out[i] = rescaled
	}
	return out, nil
}

func resolveAmpGamma(blockTime uint64, sched ramp.Schedule) (a, gamma decimal.Dec256, err error) {
	ag, err := ramp.At(blockTime, sched)
	if err != nil {
		return decimal.Dec256{}, decimal.Dec256{}, err
	}
	a, err = decimal.FromLegacyDec(ag.Amp)
	if err != nil {
		return decimal.Dec256{}, decimal.Dec256{}, err
	}
	gamma, err = decimal.FromLegacyDec(ag.Gamma)
	if err != nil {
		return decimal.Dec256{}, decimal.Dec256{}, err
	}
	return a, gamma, nil
}

// Swap simulates a concentrated-pair trade without an external oracle
// reference, computing spread against the pool's own price_scale.
// Ported from pair_concentrated/mod.rs's simulate/compute_swap.
func Swap(
	xs [2]decimal.Dec256,
	offerAmount decimal.Dec256,
	offerAssetPrec, askAssetPrec uint32,
	askInd int,
	cfg PairConfig,
	sched ramp.Schedule,
	blockTime uint64,
) (SwapResult, error) {
	offerInd := 1 ^ askInd

	offerAmount, err := rescale(offerAmount, offerAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}
	ixs, err := rescaleReserves(xs, askInd, offerAssetPrec, askAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}
	ixs[1], err = ixs[1].Mul(cfg.PriceScale)
	if err != nil {
		return SwapResult{}, err
	}

	a, gamma, err := resolveAmpGamma(blockTime, sched)
	if err != nil {
		return SwapResult{}, err
	}

	d, err := CalcD(ixs, a, gamma)
	if err != nil {
		return SwapResult{}, err
	}

	if offerInd == 1 {
		offerAmount, err = offerAmount.Mul(cfg.PriceScale)
		if err != nil {
			return SwapResult{}, err
		}
	}
	ixs[offerInd], err = ixs[offerInd].Add(offerAmount)
	if err != nil {
		return SwapResult{}, err
	}

	newY, err := CalcY(ixs, a, gamma, d, askInd)
	if err != nil {
		return SwapResult{}, err
	}
	dy, err := ixs[askInd].Sub(newY)
	if err != nil {
		return SwapResult{}, err
	}
	ixs[askInd] = newY

	var price decimal.Dec256
	if askInd == 1 {
		dy, err = dy.Quo(cfg.PriceScale)
		if err != nil {
			return SwapResult{}, err
		}
		price, err = cfg.PriceScale.Inv()
		if err != nil {
			return SwapResult{}, err
		}
	} else {
		price = cfg.PriceScale
	}

	offerAtPrice, err := offerAmount.Mul(price)
	if err != nil {
		return SwapResult{}, err
	}
	spreadFee := offerAtPrice.SaturatingSub(dy)

	feeRate, err := fee.Rate(ixs, cfg.FeeGamma, cfg.MidFee, cfg.OutFee)
	if err != nil {
		return SwapResult{}, err
	}
	totalFee, err := feeRate.Mul(dy)
	if err != nil {
		return SwapResult{}, err
	}
	dy, err = dy.Sub(totalFee)
	if err != nil {
		return SwapResult{}, err
	}

	return buildSwapResult(dy, spreadFee, totalFee, askAssetPrec)
}

// SwapWithOracle simulates a concentrated-pair trade measuring spread
// against an external oracle price rather than the pool's price_scale.
// Ported from pair_concentrated/swap.rs's simulate/compute_swap.
func SwapWithOracle(
	xs [2]decimal.Dec256,
	offerAmount decimal.Dec256,
	offerAssetPrec, askAssetPrec uint32,
	askInd int,
	cfg PairConfig,
	sched ramp.Schedule,
	blockTime uint64,
) (SwapResult, error) {
	offerInd := 1 ^ askInd

	offerAmount, err := rescale(offerAmount, offerAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}
	ixs, err := rescaleReserves(xs, askInd, offerAssetPrec, askAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}
	ixs[1], err = ixs[1].Mul(cfg.PriceScale)
	if err != nil {
		return SwapResult{}, err
	}

	a, gamma, err := resolveAmpGamma(blockTime, sched)
	if err != nil {
		return SwapResult{}, err
	}

	d, err := CalcD(ixs, a, gamma)
	if err != nil {
		return SwapResult{}, err
	}

	offerAmountRotated := offerAmount
	if offerInd == 1 {
		offerAmountRotated, err = offerAmount.Mul(cfg.PriceScale)
		if err != nil {
			return SwapResult{}, err
		}
	}
	ixs[offerInd], err = ixs[offerInd].Add(offerAmountRotated)
	if err != nil {
		return SwapResult{}, err
	}

	newY, err := CalcY(ixs, a, gamma, d, askInd)
	if err != nil {
		return SwapResult{}, err
	}
	dy, err := ixs[askInd].Sub(newY)
	if err != nil {
		return SwapResult{}, err
	}
	ixs[askInd] = newY

	var spreadFee decimal.Dec256
	if askInd == 1 {
		dy, err = dy.Quo(cfg.PriceScale)
		if err != nil {
			return SwapResult{}, err
		}
		offerAtOracle, err := offerAmount.Quo(cfg.OraclePrice)
		if err != nil {
			return SwapResult{}, err
		}
		spreadFee = offerAtOracle.SaturatingSub(dy)
	} else {
		dyAtOracle, err := dy.Quo(cfg.OraclePrice)
		if err != nil {
			return SwapResult{}, err
		}
		spreadFee = offerAmount.SaturatingSub(dyAtOracle)
	}

	feeRate, err := fee.Rate(ixs, cfg.FeeGamma, cfg.MidFee, cfg.OutFee)
	if err != nil {
		return SwapResult{}, err
	}
	totalFee, err := feeRate.Mul(dy)
	if err != nil {
		return SwapResult{}, err
	}
	dy, err = dy.Sub(totalFee)
	if err != nil {
		return SwapResult{}, err
	}

	return buildSwapResult(dy, spreadFee, totalFee, askAssetPrec)
}

func buildSwapResult(dy, spreadFee, totalFee decimal.Dec256, askAssetPrec uint32) (SwapResult, error) {
	returnAmount, err := dy.ToUint128(askAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}
	spreadAmount, err := spreadFee.ToUint128(askAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}
	commissionAmount, err := totalFee.ToUint128(askAssetPrec)
	if err != nil {
		return SwapResult{}, err
	}
	return SwapResult{
		ReturnAmount:     returnAmount,
		SpreadAmount:     spreadAmount,
		CommissionAmount: commissionAmount,
	}, nil
}
