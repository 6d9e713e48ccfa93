package boundary

import (
	"github.com/paw-chain/curvesim/stable"
)

func decodeStableSchedule(fields map[string]string) (stable.AmpSchedule, uint64, error) {
	var sched stable.AmpSchedule
	var err error
	if sched.InitAmpTime, err = decodeUint64(fields, "initial_time"); err != nil {
		return sched, 0, err
	}
	if sched.NextAmpTime, err = decodeUint64(fields, "future_time"); err != nil {
		return sched, 0, err
	}
	if sched.InitAmp, err = decodeUint64(fields, "initial_amp"); err != nil {
		return sched, 0, err
	}
	if sched.NextAmp, err = decodeUint64(fields, "future_amp"); err != nil {
		return sched, 0, err
	}
	blockTime, err := decodeUint64(fields, "block_time")
	if err != nil {
		return sched, 0, err
	}
	return sched, blockTime, nil
}

// StableSwap simulates a stableswap trade. asset_amounts is a
// JSON-encoded 2-element array of raw reserve integers.
func StableSwap(fields map[string]string, assetAmountsJSON string) (SwapResponse, error) {
	xs, err := decodeIntArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return SwapResponse{}, err
	}
	offerAmount, err := decodeInt(fields, "offer_amount")
	if err != nil {
		return SwapResponse{}, err
	}
	offerPrec, err := decodeUint32(fields, "offer_asset_prec")
	if err != nil {
		return SwapResponse{}, err
	}
	askPrec, err := decodeUint32(fields, "ask_asset_prec")
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
	sched, blockTime, err := decodeStableSchedule(fields)
	if err != nil {
		return SwapResponse{}, err
	}

	result, err := stable.Swap(xs, offerAmount, offerPrec, askPrec, askInd, commissionRate, sched, blockTime)
	if err != nil {
		log.Warn("stable swap failed", "err", err.Error())
		return SwapResponse{}, err
	}
	return SwapResponse{
		ReturnAmount:     result.ReturnAmount.String(),
		SpreadAmount:     result.SpreadAmount.String(),
		CommissionAmount: result.CommissionAmount.String(),
	}, nil
}

// StableProvide simulates adding liquidity to a stable pool.
// asset_amounts, deposits and asset_precisions are JSON-encoded
// 2-element arrays.
func StableProvide(fields map[string]string, assetAmountsJSON, depositsJSON, assetPrecisionsJSON string) (ProvideResponse, error) {
	xs, err := decodeIntArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return ProvideResponse{}, err
	}
	deposits, err := decodeIntArray(depositsJSON, "deposits")
	if err != nil {
		return ProvideResponse{}, err
	}
	precisions, err := decodeUint32Array(assetPrecisionsJSON, "asset_precisions")
	if err != nil {
		return ProvideResponse{}, err
	}
	totalShare, err := decodeInt(fields, "total_share")
	if err != nil {
		return ProvideResponse{}, err
	}
	sched, blockTime, err := decodeStableSchedule(fields)
	if err != nil {
		return ProvideResponse{}, err
	}

	result, err := stable.Provide(xs, deposits, precisions, totalShare, sched, blockTime)
	if err != nil {
		log.Warn("stable provide failed", "err", err.Error())
		return ProvideResponse{}, err
	}
	return ProvideResponse{ShareAmount: result.ShareAmount.String()}, nil
}

// StableWithdraw simulates proportional removal of liquidity from a
// stable pool.
func StableWithdraw(fields map[string]string, assetAmountsJSON string) (WithdrawResponse, error) {
	amount, err := decodeInt(fields, "amount")
	if err != nil {
		return WithdrawResponse{}, err
	}
	xs, err := decodeIntArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return WithdrawResponse{}, err
	}
	totalShare, err := decodeInt(fields, "total_share")
	if err != nil {
		return WithdrawResponse{}, err
	}

	result, err := stable.Withdraw(amount, xs, totalShare)
	if err != nil {
		log.Warn("stable withdraw failed", "err", err.Error())
		return WithdrawResponse{}, err
	}
	return withdrawResponse(result.ReturnedAmounts), nil
}
