package boundary

import (
	"github.com/paw-chain/curvesim/xyk"
)

// XYKSwap simulates a constant-product trade. asset_amounts is a
// JSON-encoded 2-element array of raw reserve integers.
func XYKSwap(fields map[string]string, assetAmountsJSON string) (SwapResponse, error) {
	xs, err := decodeIntArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return SwapResponse{}, err
	}
	offerAmount, err := decodeInt(fields, "offer_amount")
	if err != nil {
		return SwapResponse{}, err
	}
	askInd, err := decodeIndex(fields, "ask_ind")
	if err != nil {
		return SwapResponse{}, err
	}
	commissionRate, err := decodeDec(fields, "total_fee_rate")
	if err != nil {
		return SwapResponse{}, err
	}

	offerInd := 1 ^ askInd
	result, err := xyk.Swap(xs[offerInd], xs[askInd], offerAmount, commissionRate)
	if err != nil {
		log.Warn("xyk swap failed", "err", err.Error())
		return SwapResponse{}, err
	}
	return SwapResponse{
		ReturnAmount:     result.ReturnAmount.String(),
		SpreadAmount:     result.SpreadAmount.String(),
		CommissionAmount: result.CommissionAmount.String(),
	}, nil
}

// XYKProvide simulates adding liquidity to a constant-product pool.
// deposits and asset_amounts are JSON-encoded 2-element arrays.
func XYKProvide(fields map[string]string, depositsJSON, assetAmountsJSON string) (ProvideResponse, error) {
	deposits, err := decodeIntArray(depositsJSON, "deposits")
	if err != nil {
		return ProvideResponse{}, err
	}
	assetAmounts, err := decodeIntArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return ProvideResponse{}, err
	}
	totalShare, err := decodeInt(fields, "total_share")
	if err != nil {
		return ProvideResponse{}, err
	}

	result, err := xyk.Provide(deposits, assetAmounts, totalShare)
	if err != nil {
		log.Warn("xyk provide failed", "err", err.Error())
		return ProvideResponse{}, err
	}
	return ProvideResponse{ShareAmount: result.ShareAmount.String()}, nil
}

// XYKWithdraw simulates proportional removal of liquidity from a
// constant-product pool.
func XYKWithdraw(fields map[string]string, assetAmountsJSON string) (WithdrawResponse, error) {
	amount, err := decodeInt(fields, "amount")
	if err != nil {
		return WithdrawResponse{}, err
	}
	assetAmounts, err := decodeIntArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return WithdrawResponse{}, err
	}
	totalShare, err := decodeInt(fields, "total_share")
	if err != nil {
		return WithdrawResponse{}, err
	}

	result, err := xyk.Withdraw(amount, assetAmounts, totalShare)
	if err != nil {
		log.Warn("xyk withdraw failed", "err", err.Error())
		return WithdrawResponse{}, err
	}
	return withdrawResponse(result.ReturnedAmounts), nil
}
