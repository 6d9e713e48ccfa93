package concentrated_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/curvesim/concentrated"
	"github.com/paw-chain/curvesim/decimal"
)

func mustDec(t *testing.T, s string) decimal.Dec256 {
	t.Helper()
	d, err := decimal.Dec256FromString(s)
	require.NoError(t, err)
	return d
}

func TestCalcD_BalancedPoolIsPositive(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "1000")}
	a := mustDec(t, "10")
	gamma := mustDec(t, "0.000145")

	d, err := concentrated.CalcD(xs, a, gamma)
	require.NoError(t, err)
	require.True(t, d.IsPositive())
}

func TestCalcD_ApproximatesSumAtSmallGamma(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "1000")}
	a := mustDec(t, "10")
	gamma := mustDec(t, "0.000145")

	d, err := concentrated.CalcD(xs, a, gamma)
	require.NoError(t, err)
	// at perfect balance D approx 2*x for a balanced 2-asset pool.
	lower := mustDec(t, "1999")
	upper := mustDec(t, "2001")
	require.True(t, d.GTE(lower))
	require.True(t, d.LTE(upper))
}

func TestCalcY_RoundTripsAgainstCalcD(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "1000")}
	a := mustDec(t, "10")
	gamma := mustDec(t, "0.000145")

	d, err := concentrated.CalcD(xs, a, gamma)
	require.NoError(t, err)

	y, err := concentrated.CalcY(xs, a, gamma, d, 1)
	require.NoError(t, err)
	require.True(t, y.IsPositive())

	diff := y.Diff(xs[1])
	require.True(t, diff.LTE(mustDec(t, "0.001")))
}

func TestCalcY_ReflectsOfferAddedToOtherSide(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "1000"), mustDec(t, "1000")}
	a := mustDec(t, "10")
	gamma := mustDec(t, "0.000145")

	d, err := concentrated.CalcD(xs, a, gamma)
	require.NoError(t, err)

	offered := [2]decimal.Dec256{mustDec(t, "1010"), mustDec(t, "1000")}
	y, err := concentrated.CalcY(offered, a, gamma, d, 1)
	require.NoError(t, err)
	require.True(t, y.LT(xs[1]))
}
