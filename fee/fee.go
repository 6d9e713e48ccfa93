// Package fee implements the concentrated pair's dynamic fee curve,
// which maps how balanced the pool currently is to a rate between
// mid_fee (balanced) and out_fee (imbalanced).
//
// Ported from pair_concentrated/state.rs's public fee() and its
// private duplicate in pair_concentrated/mod.rs — the same
// de-duplication the ramp package performs for amp/gamma.
package fee

import (
	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/internal/params"
)

// Rate returns the fee rate for reserves xs under feeGamma, clamped
// between midFee and outFee.
func Rate(xs [2]decimal.Dec256, feeGamma, midFee, outFee decimal.Dec256) (decimal.Dec256, error) {
	sum, err := xs[0].Add(xs[1])
	if err != nil {
		return decimal.Dec256{}, err
	}

	prod, err := xs[0].Mul(xs[1])
	if err != nil {
		return decimal.Dec256{}, err
	}
	nPow2 := decimal.NewDec256FromUint64(params.NPow2)
	numerator, err := prod.Mul(nPow2)
	if err != nil {
		return decimal.Dec256{}, err
	}
	sumPow2, err := sum.Pow(2)
	if err != nil {
		return decimal.Dec256{}, err
	}
	k, err := numerator.Quo(sumPow2)
	if err != nil {
		return decimal.Dec256{}, err
	}

	// k = fee_gamma / (fee_gamma + 1 - k); fee_gamma + 1 > 1 >= k always
	// holds for valid inputs, so this is a plain (non-saturating) sub.
	onePlusGamma, err := feeGamma.Add(decimal.OneDec256())
	if err != nil {
		return decimal.Dec256{}, err
	}
	denom, err := onePlusGamma.Sub(k)
	if err != nil {
		return decimal.Dec256{}, err
	}
	k, err = feeGamma.Quo(denom)
	if err != nil {
		return decimal.Dec256{}, err
	}

	if k.LTE(params.FeeTol) {
		k = decimal.ZeroDec256()
	}

	kMid, err := k.Mul(midFee)
	if err != nil {
		return decimal.Dec256{}, err
	}
	oneMinusK := decimal.OneDec256().SaturatingSub(k)
	kOut, err := oneMinusK.Mul(outFee)
	if err != nil {
		return decimal.Dec256{}, err
	}
	return kMid.Add(kOut)
}
