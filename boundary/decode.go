// Package boundary is the engine's marshalling edge: string/JSON
// decode on the way in, JSON-serializable results on the way out.
// Grounded on spec §6/§7; field-decode errors follow the teacher's
// one-error-per-field convention of naming the offending field.
package boundary

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/errs"
)

func field(fields map[string]string, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", errs.ErrInvalidArgument.Wrapf("missing field %q", key)
	}
	return v, nil
}

func decodeDec(fields map[string]string, key string) (decimal.Dec256, error) {
	v, err := field(fields, key)
	if err != nil {
		return decimal.Dec256{}, err
	}
	d, err := decimal.Dec256FromString(v)
	if err != nil {
		log.Warn("decode failure", "field", key, "value", v, "err", err.Error())
		return decimal.Dec256{}, errs.ErrInvalidArgument.Wrapf("field %q: %s", key, err.Error())
	}
	return d, nil
}

func decodeLegacyDec(fields map[string]string, key string) (sdkmath.LegacyDec, error) {
	v, err := field(fields, key)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	d, err := sdkmath.LegacyNewDecFromStr(v)
	if err != nil {
		log.Warn("decode failure", "field", key, "value", v, "err", err.Error())
		return sdkmath.LegacyDec{}, errs.ErrInvalidArgument.Wrapf("field %q: %s", key, err.Error())
	}
	return d, nil
}

func decodeInt(fields map[string]string, key string) (sdkmath.Int, error) {
	v, err := field(fields, key)
	if err != nil {
		return sdkmath.Int{}, err
	}
	i, ok := sdkmath.NewIntFromString(v)
	if !ok {
		log.Warn("decode failure", "field", key, "value", v)
		return sdkmath.Int{}, errs.ErrInvalidArgument.Wrapf("field %q: invalid integer", key)
	}
	return i, nil
}

func decodeUint64(fields map[string]string, key string) (uint64, error) {
	i, err := decodeInt(fields, key)
	if err != nil {
		return 0, err
	}
	if i.IsNegative() {
		return 0, errs.ErrInvalidArgument.Wrapf("field %q: must be non-negative", key)
	}
	return i.Uint64(), nil
}

func decodeUint32(fields map[string]string, key string) (uint32, error) {
	v, err := decodeUint64(fields, key)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func decodeIndex(fields map[string]string, key string) (int, error) {
	v, err := decodeUint64(fields, key)
	if err != nil {
		return 0, err
	}
	if v != 0 && v != 1 {
		return 0, errs.ErrInvalidArgument.Wrapf("field %q: must be 0 or 1", key)
	}
	return int(v), nil
}

func unmarshalArray(raw, name string) ([]string, error) {
	var strs []string
	if err := json.Unmarshal([]byte(raw), &strs); err != nil {
		log.Warn("decode failure", "field", name, "err", err.Error())
		return nil, errs.ErrInvalidArgument.Wrapf("field %q: malformed JSON array: %s", name, err.Error())
	}
	if len(strs) != 2 {
		return nil, errs.ErrInvalidArgument.Wrapf("field %q: expected 2 elements, got %d", name, len(strs))
	}
	return strs, nil
}

func decodeDecArray(raw, name string) ([2]decimal.Dec256, error) {
	var out [2]decimal.Dec256
	strs, err := unmarshalArray(raw, name)
	if err != nil {
		return out, err
	}
	for i, s := range strs {
		d, err := decimal.Dec256FromString(s)
		if err != nil {
			return out, errs.ErrInvalidArgument.Wrapf("field %q[%d]: %s", name, i, err.Error())
		}
		out[i] = d
	}
	return out, nil
}

func decodeIntArray(raw, name string) ([2]sdkmath.Int, error) {
	var out [2]sdkmath.Int
	strs, err := unmarshalArray(raw, name)
	if err != nil {
		return out, err
	}
	for i, s := range strs {
		v, ok := sdkmath.NewIntFromString(s)
		if !ok {
			return out, errs.ErrInvalidArgument.Wrapf("field %q[%d]: invalid integer", name, i)
		}
		out[i] = v
	}
	return out, nil
}

func decodeUint32Array(raw, name string) ([2]uint32, error) {
	var out [2]uint32
	strs, err := unmarshalArray(raw, name)
	if err != nil {
		return out, err
	}
	for i, s := range strs {
		v, ok := sdkmath.NewIntFromString(s)
		if !ok || v.IsNegative() {
			return out, errs.ErrInvalidArgument.Wrapf("field %q[%d]: invalid integer", name, i)
		}
		out[i] = uint32(v.Uint64())
	}
	return out, nil
}

// SwapResponse is the JSON-serializable outcome of any swap entry point.
type SwapResponse struct {
	ReturnAmount     string `json:"return_amount"`
	SpreadAmount     string `json:"spread_amount"`
	CommissionAmount string `json:"commission_amount"`
}

// ProvideResponse is the JSON-serializable outcome of any provide entry point.
type ProvideResponse struct {
	ShareAmount string `json:"share_amount"`
}

// WithdrawResponse is the JSON-serializable outcome of any withdraw entry point.
type WithdrawResponse struct {
	ReturnedAmounts []string `json:"returned_amounts"`
}

func withdrawResponse(amounts [2]sdkmath.Int) WithdrawResponse {
	return WithdrawResponse{ReturnedAmounts: []string{amounts[0].String(), amounts[1].String()}}
}
