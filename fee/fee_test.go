package fee_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/fee"
)

func mustDec(t *testing.T, s string) decimal.Dec256 {
	t.Helper()
	d, err := decimal.Dec256FromString(s)
	require.NoError(t, err)
	return d
}

func TestRate_BalancedPoolGivesMidFee(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "1000")}
	feeGamma := mustDec(t, "0.01")
	midFee := mustDec(t, "0.001")
	outFee := mustDec(t, "0.01")

	rate, err := fee.Rate(xs, feeGamma, midFee, outFee)
	require.NoError(t, err)
	require.True(t, rate.GTE(midFee))
	require.True(t, rate.LTE(outFee))
	require.True(t, rate.Equal(midFee))
}

func TestRate_ImbalancedPoolApproachesOutFee(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000000"), mustDec(t, "1")}
	feeGamma := mustDec(t, "0.01")
	midFee := mustDec(t, "0.001")
	outFee := mustDec(t, "0.01")

	rate, err := fee.Rate(xs, feeGamma, midFee, outFee)
	require.NoError(t, err)
	require.True(t, rate.GTE(midFee))
	require.True(t, rate.LTE(outFee))

	diffToOut := outFee.Diff(rate)
	diffToMid := midFee.Diff(rate)
	require.True(t, diffToOut.LT(diffToMid))
}

func TestRate_BoundedByMidAndOutFee(t *testing.T) {
	midFee := mustDec(t, "0.001")
	outFee := mustDec(t, "0.01")
	feeGamma := mustDec(t, "0.05")

	cases := [][2]decimal.Dec256{
		{mustDec(t, "500"), mustDec(t, "500")},
		{mustDec(t, "900"), mustDec(t, "100")},
		{mustDec(t, "100000"), mustDec(t, "1")},
	}
	for _, xs := range cases {
		rate, err := fee.Rate(xs, feeGamma, midFee, outFee)
		require.NoError(t, err)
		require.True(t, rate.GTE(midFee))
		require.True(t, rate.LTE(outFee))
	}
}
