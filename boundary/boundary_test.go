package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/curvesim/boundary"
)

func concentratedFields() map[string]string {
	return map[string]string{
		"offer_asset_prec": "18",
		"ask_asset_prec":   "18",
		"ask_ind":          "1",
		"price_scale":      "1",
		"fee_gamma":        "0.01",
		"mid_fee":          "0.001",
		"out_fee":          "0.01",
		"maker_fee_share":  "0.5",
		"oracle_price":     "1",
		"initial_time":     "0",
		"future_time":      "1",
		"initial_amp":      "10",
		"future_amp":       "10",
		"initial_gamma":    "0.000145",
		"future_gamma":     "0.000145",
		"block_time":       "1",
		"offer_amount":     "10",
	}
}

func TestConcentratedSwap_DecodesAndSimulates(t *testing.T) {
	resp, err := boundary.ConcentratedSwap(concentratedFields(), `["1000","1000"]`)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ReturnAmount)
}

func TestConcentratedSwap_RejectsMissingField(t *testing.T) {
	fields := concentratedFields()
	delete(fields, "price_scale")
	_, err := boundary.ConcentratedSwap(fields, `["1000","1000"]`)
	require.Error(t, err)
}

func TestConcentratedSwap_RejectsMalformedArray(t *testing.T) {
	_, err := boundary.ConcentratedSwap(concentratedFields(), `not-json`)
	require.Error(t, err)
}

func TestConcentratedSwapWithOracle_DecodesAndSimulates(t *testing.T) {
	resp, err := boundary.ConcentratedSwapWithOracle(concentratedFields(), `["1000","1000"]`)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ReturnAmount)
}

func TestConcentratedProvide_InitialMint(t *testing.T) {
	fields := concentratedFields()
	fields["total_share"] = "0"
	resp, err := boundary.ConcentratedProvide(fields, `["0","0"]`, `["1000","1000"]`, `["18","18"]`)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ShareAmount)
}

func TestConcentratedWithdraw_ProportionalRefund(t *testing.T) {
	fields := map[string]string{"amount": "100", "total_share": "1000"}
	resp, err := boundary.ConcentratedWithdraw(fields, `["1000","2000"]`, `["18","18"]`)
	require.NoError(t, err)
	require.Equal(t, "100", resp.ReturnedAmounts[0])
	require.Equal(t, "200", resp.ReturnedAmounts[1])
}

func stableFields() map[string]string {
	return map[string]string{
		"offer_asset_prec": "6",
		"ask_asset_prec":   "6",
		"ask_ind":          "1",
		"total_fee_rate":   "0.003",
		"initial_time":     "0",
		"future_time":      "1",
		"initial_amp":      "100",
		"future_amp":       "100",
		"block_time":       "1",
		"offer_amount":     "1000",
	}
}

func TestStableSwap_DecodesAndSimulates(t *testing.T) {
	resp, err := boundary.StableSwap(stableFields(), `["1000000","1000000"]`)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ReturnAmount)
}

func TestStableProvide_InitialMint(t *testing.T) {
	fields := stableFields()
	fields["total_share"] = "0"
	resp, err := boundary.StableProvide(fields, `["0","0"]`, `["1000000","1000000"]`, `["6","6"]`)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ShareAmount)
}

func TestStableWithdraw_ProportionalRefund(t *testing.T) {
	fields := map[string]string{"amount": "100", "total_share": "1000"}
	resp, err := boundary.StableWithdraw(fields, `["1000","2000"]`)
	require.NoError(t, err)
	require.Equal(t, "100", resp.ReturnedAmounts[0])
	require.Equal(t, "200", resp.ReturnedAmounts[1])
}

func TestXYKSwap_DecodesAndSimulates(t *testing.T) {
	fields := map[string]string{
		"offer_amount":   "100",
		"ask_ind":        "1",
		"total_fee_rate": "0.003",
	}
	resp, err := boundary.XYKSwap(fields, `["1000","1000"]`)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ReturnAmount)
}

func TestXYKProvide_InitialMint(t *testing.T) {
	fields := map[string]string{"total_share": "0"}
	resp, err := boundary.XYKProvide(fields, `["1000000","1000000"]`, `["0","0"]`)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ShareAmount)
}

func TestXYKWithdraw_ProportionalRefund(t *testing.T) {
	fields := map[string]string{"amount": "100", "total_share": "1000"}
	resp, err := boundary.XYKWithdraw(fields, `["1000","2000"]`)
	require.NoError(t, err)
	require.Equal(t, "100", resp.ReturnedAmounts[0])
	require.Equal(t, "200", resp.ReturnedAmounts[1])
}
