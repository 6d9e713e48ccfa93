package boundary

import (
	"github.com/paw-chain/curvesim/concentrated"
	"github.com/paw-chain/curvesim/ramp"
)

func decodeConcentratedConfig(fields map[string]string) (concentrated.PairConfig, error) {
	var cfg concentrated.PairConfig
	var err error
	if cfg.PriceScale, err = decodeDec(fields, "price_scale"); err != nil {
		return cfg, err
	}
	if cfg.FeeGamma, err = decodeDec(fields, "fee_gamma"); err != nil {
		return cfg, err
	}
	if cfg.MidFee, err = decodeDec(fields, "mid_fee"); err != nil {
		return cfg, err
	}
	if cfg.OutFee, err = decodeDec(fields, "out_fee"); err != nil {
		return cfg, err
	}
	if cfg.MakerFeeShare, err = decodeDec(fields, "maker_fee_share"); err != nil {
		return cfg, err
	}
	if cfg.OraclePrice, err = decodeDec(fields, "oracle_price"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeConcentratedSchedule(fields map[string]string) (ramp.Schedule, uint64, error) {
	var sched ramp.Schedule
	var err error
	if sched.InitTime, err = decodeUint64(fields, "initial_time"); err != nil {
		return sched, 0, err
	}
	if sched.FutureTime, err = decodeUint64(fields, "future_time"); err != nil {
		return sched, 0, err
	}
	if sched.InitAmp, err = decodeLegacyDec(fields, "initial_amp"); err != nil {
		return sched, 0, err
	}
	if sched.FutureAmp, err = decodeLegacyDec(fields, "future_amp"); err != nil {
		return sched, 0, err
	}
	if sched.InitGamma, err = decodeLegacyDec(fields, "initial_gamma"); err != nil {
		return sched, 0, err
	}
	if sched.FutureGamma, err = decodeLegacyDec(fields, "future_gamma"); err != nil {
		return sched, 0, err
	}
	blockTime, err := decodeUint64(fields, "block_time")
	if err != nil {
		return sched, 0, err
	}
	return sched, blockTime, nil
}

// ConcentratedSwap simulates a concentrated-pair trade without an
// external oracle reference. asset_amounts is a JSON-encoded
// 2-element array.
func ConcentratedSwap(fields map[string]string, assetAmountsJSON string) (SwapResponse, error) {
	xs, err := decodeDecArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return SwapResponse{}, err
	}
	offerAmount, err := decodeDec(fields, "offer_amount")
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
	cfg, err := decodeConcentratedConfig(fields)
	if err != nil {
		return SwapResponse{}, err
	}
	sched, blockTime, err := decodeConcentratedSchedule(fields)
	if err != nil {
		return SwapResponse{}, err
	}

	result, err := concentrated.Swap(xs, offerAmount, offerPrec, askPrec, askInd, cfg, sched, blockTime)
	if err != nil {
		log.Warn("concentrated swap failed", "err", err.Error())
		return SwapResponse{}, err
	}
	return SwapResponse{
		ReturnAmount:     result.ReturnAmount.String(),
		SpreadAmount:     result.SpreadAmount.String(),
		CommissionAmount: result.CommissionAmount.String(),
	}, nil
}

// ConcentratedSwapWithOracle simulates a concentrated-pair trade
// measuring spread against an external oracle price.
func ConcentratedSwapWithOracle(fields map[string]string, assetAmountsJSON string) (SwapResponse, error) {
	xs, err := decodeDecArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return SwapResponse{}, err
	}
	offerAmount, err := decodeDec(fields, "offer_amount")
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
	cfg, err := decodeConcentratedConfig(fields)
	if err != nil {
		return SwapResponse{}, err
	}
	sched, blockTime, err := decodeConcentratedSchedule(fields)
	if err != nil {
		return SwapResponse{}, err
	}

	result, err := concentrated.SwapWithOracle(xs, offerAmount, offerPrec, askPrec, askInd, cfg, sched, blockTime)
	if err != nil {
		log.Warn("concentrated swap with oracle failed", "err", err.Error())
		return SwapResponse{}, err
	}
	return SwapResponse{
		ReturnAmount:     result.ReturnAmount.String(),
		SpreadAmount:     result.SpreadAmount.String(),
		CommissionAmount: result.CommissionAmount.String(),
	}, nil
}

// ConcentratedProvide simulates adding liquidity to a concentrated
// pool. asset_amounts and deposits are JSON-encoded 2-element arrays;
// asset_precisions likewise.
func ConcentratedProvide(fields map[string]string, assetAmountsJSON, depositsJSON, assetPrecisionsJSON string) (ProvideResponse, error) {
	xs, err := decodeDecArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return ProvideResponse{}, err
	}
	deposits, err := decodeDecArray(depositsJSON, "deposits")
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
	cfg, err := decodeConcentratedConfig(fields)
	if err != nil {
		return ProvideResponse{}, err
	}
	sched, blockTime, err := decodeConcentratedSchedule(fields)
	if err != nil {
		return ProvideResponse{}, err
	}

	result, err := concentrated.Provide(xs, deposits, precisions, totalShare, cfg, sched, blockTime)
	if err != nil {
		log.Warn("concentrated provide failed", "err", err.Error())
		return ProvideResponse{}, err
	}
	return ProvideResponse{ShareAmount: result.ShareAmount.String()}, nil
}

// ConcentratedWithdraw simulates proportional removal of liquidity
// from a concentrated pool.
func ConcentratedWithdraw(fields map[string]string, assetAmountsJSON, assetPrecisionsJSON string) (WithdrawResponse, error) {
	amount, err := decodeInt(fields, "amount")
	if err != nil {
		return WithdrawResponse{}, err
	}
	xs, err := decodeDecArray(assetAmountsJSON, "asset_amounts")
	if err != nil {
		return WithdrawResponse{}, err
	}
	precisions, err := decodeUint32Array(assetPrecisionsJSON, "asset_precisions")
	if err != nil {
		return WithdrawResponse{}, err
	}
	totalShare, err := decodeInt(fields, "total_share")
	if err != nil {
		return WithdrawResponse{}, err
	}

	result, err := concentrated.Withdraw(amount, xs, precisions, totalShare)
	if err != nil {
		log.Warn("concentrated withdraw failed", "err", err.Error())
		return WithdrawResponse{}, err
	}
	return withdrawResponse(result.ReturnedAmounts), nil
}
