package decimal_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/curvesim/decimal"
)

func mustDec(t *testing.T, s string) decimal.Dec256 {
	t.Helper()
	d, err := decimal.Dec256FromString(s)
	require.NoError(t, err)
	return d
}

func TestDec256FromString_RoundTrips(t *testing.T) {
	d := mustDec(t, "123.45")
	require.Equal(t, "123.45", d.String())
}

func TestDec256FromString_RejectsNegative(t *testing.T) {
	_, err := decimal.Dec256FromString("-1")
	require.Error(t, err)
}

func TestDec256FromString_RejectsTooManyFracDigits(t *testing.T) {
	_, err := decimal.Dec256FromString("1.1234567890123456789")
	require.Error(t, err)
}

func TestDec256_AddSub(t *testing.T) {
	a := mustDec(t, "10.5")
	b := mustDec(t, "4.25")

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "14.75", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, "6.25", diff.String())
}

func TestDec256_SubUnderflowErrors(t *testing.T) {
	a := mustDec(t, "1")
	b := mustDec(t, "2")
	_, err := a.Sub(b)
	require.Error(t, err)
}

func TestDec256_SaturatingSubFloorsAtZero(t *testing.T) {
	a := mustDec(t, "1")
	b := mustDec(t, "2")
	require.True(t, a.SaturatingSub(b).IsZero())
}

func TestDec256_MulQuo(t *testing.T) {
	a := mustDec(t, "2")
	b := mustDec(t, "3.5")

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "7", prod.String())

	quo, err := prod.Quo(a)
	require.NoError(t, err)
	require.Equal(t, "3.5", quo.String())
}

func TestDec256_QuoByZeroErrors(t *testing.T) {
	a := mustDec(t, "1")
	_, err := a.Quo(decimal.ZeroDec256())
	require.Error(t, err)
}

func TestDec256_Diff(t *testing.T) {
	a := mustDec(t, "3")
	b := mustDec(t, "5")
	require.Equal(t, "2", a.Diff(b).String())
	require.Equal(t, "2", b.Diff(a).String())
}

func TestDec256_Sqrt(t *testing.T) {
	a := mustDec(t, "9")
	root, err := a.Sqrt()
	require.NoError(t, err)
	require.Equal(t, "3", root.String())
}

func TestDec256_Pow(t *testing.T) {
	a := mustDec(t, "3")
	cubed, err := a.Pow(3)
	require.NoError(t, err)
	require.Equal(t, "27", cubed.String())
}

func TestDec256_MulRatio(t *testing.T) {
	a := mustDec(t, "100")
	num := mustDec(t, "3")
	den := mustDec(t, "2")

	got, err := a.MulRatio(num, den)
	require.NoError(t, err)
	require.Equal(t, "150", got.String())
}

func TestDec256_ToUint128RescalesPrecision(t *testing.T) {
	d := mustDec(t, "1.123456")
	got, err := d.ToUint128(6)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1123456), got)
}

func TestDec256FromAtomics_RescalesUp(t *testing.T) {
	d, err := decimal.Dec256FromAtomics(sdkmath.NewInt(1000000), 6)
	require.NoError(t, err)
	require.Equal(t, "1", d.String())
}

func TestGeometricMean(t *testing.T) {
	xs := [2]decimal.Dec256{mustDec(t, "4"), mustDec(t, "9")}
	gm, err := decimal.GeometricMean(xs)
	require.NoError(t, err)
	require.Equal(t, "6", gm.String())
}
