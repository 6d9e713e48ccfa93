package concentrated_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/curvesim/concentrated"
	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/ramp"
)

func testCfg(t *testing.T) concentrated.PairConfig {
	return concentrated.PairConfig{
		PriceScale:    mustDec(t, "1"),
		FeeGamma:      mustDec(t, "0.01"),
		MidFee:        mustDec(t, "0.001"),
		OutFee:        mustDec(t, "0.01"),
		MakerFeeShare: mustDec(t, "0.5"),
		OraclePrice:   mustDec(t, "1"),
	}
}

func constSchedule(amp, gamma string, t *testing.T) ramp.Schedule {
	return ramp.Schedule{
		InitTime:    0,
		FutureTime:  1,
		InitAmp:     sdkmath.LegacyMustNewDecFromStr(amp),
		FutureAmp:   sdkmath.LegacyMustNewDecFromStr(amp),
		InitGamma:   sdkmath.LegacyMustNewDecFromStr(gamma),
		FutureGamma: sdkmath.LegacyMustNewDecFromStr(gamma),
	}
}

func TestSwap_BalancedPoolNoRamp(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "1000")}
	offer := mustDec(t, "10")
	cfg := testCfg(t)
	sched := constSchedule("10", "0.000145", t)

	result, err := concentrated.Swap(xs, offer, 18, 18, 1, cfg, sched, 1)
	require.NoError(t, err)
	require.True(t, result.ReturnAmount.IsPositive())
	require.True(t, result.ReturnAmount.LT(offer.TruncateToInt()))
	require.True(t, result.CommissionAmount.IsPositive())
	require.False(t, result.SpreadAmount.IsNegative())
}

func TestSwapWithOracle_BalancedPoolNoRamp(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "1000")}
	offer := mustDec(t, "10")
	cfg := testCfg(t)
	sched := constSchedule("10", "0.000145", t)

	result, err := concentrated.SwapWithOracle(xs, offer, 18, 18, 1, cfg, sched, 1)
	require.NoError(t, err)
	require.True(t, result.ReturnAmount.IsPositive())
	require.False(t, result.SpreadAmount.IsNegative())
}

func TestProvide_InitialMintSubtractsMinimumLiquidity(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "0"), mustDec(t, "0")}
	deposits := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "1000")}
	cfg := testCfg(t)
	sched := constSchedule("10", "0.000145", t)

	result, err := concentrated.Provide(xs, deposits, [2]uint32{18, 18}, sdkmath.ZeroInt(), cfg, sched, 1)
	require.NoError(t, err)
	require.True(t, result.ShareAmount.IsPositive())
}

func TestProvide_RejectsZeroDeposit(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "1000")}
	deposits := [2]decimal.Dec256{mustDec(t, "0"), mustDec(t, "100")}
	cfg := testCfg(t)
	sched := constSchedule("10", "0.000145", t)

	_, err := concentrated.Provide(xs, deposits, [2]uint32{18, 18}, sdkmath.NewInt(1000), cfg, sched, 1)
	require.Error(t, err)
}

func TestWithdraw_ProportionalRefund(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "2000")}
	result, err := concentrated.Withdraw(sdkmath.NewInt(100), xs, [2]uint32{18, 18}, sdkmath.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(100), result.ReturnedAmounts[0])
	require.Equal(t, sdkmath.NewInt(200), result.ReturnedAmounts[1])
}

func TestWithdraw_ZeroTotalShareReturnsZero(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "2000")}
	result, err := concentrated.Withdraw(sdkmath.NewInt(100), xs, [2]uint32{18, 18}, sdkmath.ZeroInt())
	require.NoError(t, err)
	require.True(t, result.ReturnedAmounts[0].IsZero())
	require.True(t, result.ReturnedAmounts[1].IsZero())
}
