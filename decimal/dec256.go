// Package decimal implements the fixed-point arithmetic the curve
// kernels are built on: Dec256, an unsigned 18-decimal-place value
// fenced to 256 bits, and SDec, its signed counterpart for Newton
// residuals that legitimately go negative mid-iteration.
//
// Grounded on poaiw-blockchain-paw's x/dex/keeper/safemath.go (the
// big.Int-plus-2^256-fence overflow-check idiom) and on
// original_source's cosmwasm_ext.rs Decimal256Ext trait, which this
// package's MulRatio, ToUint128 and Diff are ported from.
package decimal

import (
	"math/big"
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/holiman/uint256"

	"github.com/paw-chain/curvesim/errs"
)

// Precision is the number of fractional decimal digits Dec256 carries,
// matching Decimal256 in the source material.
const Precision = 18

var precisionBigInt = new(big.Int).Exp(big.NewInt(10), big.NewInt(Precision), nil)

func pow10(n uint32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Dec256 is an unsigned fixed-point decimal with 18 fractional digits,
// whose atomic (value * 1e18) representation is fenced to fit in an
// unsigned 256-bit word.
type Dec256 struct {
	atomics sdkmath.Int
}

// fromBigInt builds a Dec256 from raw atomics, rejecting negative
// values and anything that does not fit in 256 bits. The uint256
// round-trip is the authoritative fence: it is the same check the
// on-chain Decimal256/Uint256 types enforce natively.
func fromBigInt(v *big.Int) (Dec256, error) {
	if v.Sign() < 0 {
		return Dec256{}, errs.ErrNegativeResult.Wrap("negative Dec256 atomics")
	}
	if _, overflow := uint256.FromBig(v); overflow {
		return Dec256{}, errs.ErrOverflow.Wrap("atomics exceed 256 bits")
	}
	return Dec256{atomics: sdkmath.NewIntFromBigInt(v)}, nil
}

// ZeroDec256 returns 0.
func ZeroDec256() Dec256 { return Dec256{atomics: sdkmath.ZeroInt()} }

// OneDec256 returns 1.
func OneDec256() Dec256 { return Dec256{atomics: sdkmath.NewIntFromBigInt(precisionBigInt)} }

// NewDec256FromUint64 builds an integer value, e.g. NewDec256FromUint64(2) == 2.0.
func NewDec256FromUint64(v uint64) Dec256 {
	atomics := new(big.Int).Mul(new(big.Int).SetUint64(v), precisionBigInt)
	d, _ := fromBigInt(atomics)
	return d
}

// Dec256FromAtomics rescales an integer carrying `precision` fractional
// digits up to the internal 18-digit representation. Grounded on
// cosmwasm_ext.rs's IntegerToDecimal::to_decimal256/with_precision.
func Dec256FromAtomics(value sdkmath.Int, precision uint32) (Dec256, error) {
	if precision > Precision {
		return Dec256{}, errs.ErrInvalidArgument.Wrapf("precision %d exceeds %d", precision, Precision)
	}
	if value.IsNegative() {
		return Dec256{}, errs.ErrNegativeResult.Wrap("negative atomics")
	}
	scaled := new(big.Int).Mul(value.BigInt(), pow10(Precision-precision))
	return fromBigInt(scaled)
}

// Dec256FromString parses an unsigned decimal literal such as
// "1234.5" at up to 18 fractional digits.
func Dec256FromString(s string) (Dec256, error) {
	if s == "" {
		return Dec256{}, errs.ErrInvalidArgument.Wrap("empty decimal string")
	}
	if strings.HasPrefix(s, "-") {
		return Dec256{}, errs.ErrNegativeResult.Wrapf("negative decimal string %q", s)
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if !hasFrac {
		fracPart = ""
	}
	if len(fracPart) > Precision {
		return Dec256{}, errs.ErrInvalidArgument.Wrapf("more than %d fractional digits in %q", Precision, s)
	}
	fracPart += strings.Repeat("0", Precision-len(fracPart))
	combined := intPart + fracPart
	if combined == "" {
		combined = "0"
	}
	atomics, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return Dec256{}, errs.ErrInvalidArgument.Wrapf("invalid decimal string %q", s)
	}
	return fromBigInt(atomics)
}

// String renders the value with trailing fractional zeros trimmed,
// matching Decimal256's Display impl.
func (a Dec256) String() string {
	s := a.atomics.BigInt().String()
	for len(s) <= Precision {
		s = "0" + s
	}
	intPart := s[:len(s)-Precision]
	fracPart := strings.TrimRight(s[len(s)-Precision:], "0")
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}

// Atomics exposes the raw (value * 1e18) representation.
func (a Dec256) Atomics() sdkmath.Int { return a.atomics }

func (a Dec256) IsZero() bool     { return a.atomics.IsZero() }
func (a Dec256) IsPositive() bool { return a.atomics.IsPositive() }
func (a Dec256) Equal(b Dec256) bool { return a.atomics.Equal(b.atomics) }
func (a Dec256) GT(b Dec256) bool  { return a.atomics.GT(b.atomics) }
func (a Dec256) GTE(b Dec256) bool { return a.atomics.GTE(b.atomics) }
func (a Dec256) LT(b Dec256) bool  { return a.atomics.LT(b.atomics) }
func (a Dec256) LTE(b Dec256) bool { return a.atomics.LTE(b.atomics) }

// Add returns a + b.
func (a Dec256) Add(b Dec256) (Dec256, error) {
	return fromBigInt(new(big.Int).Add(a.atomics.BigInt(), b.atomics.BigInt()))
}

// Sub returns a - b, erroring if the result would be negative.
func (a Dec256) Sub(b Dec256) (Dec256, error) {
	diff := new(big.Int).Sub(a.atomics.BigInt(), b.atomics.BigInt())
	if diff.Sign() < 0 {
		return Dec256{}, errs.ErrNegativeResult.Wrapf("%s - %s underflows", a, b)
	}
	return fromBigInt(diff)
}

// SaturatingSub returns a - b, floored at zero. Used throughout the
// spread/fee computations, which must never error on a - b < 0.
func (a Dec256) SaturatingSub(b Dec256) Dec256 {
	diff := new(big.Int).Sub(a.atomics.BigInt(), b.atomics.BigInt())
	if diff.Sign() < 0 {
		return ZeroDec256()
	}
	d, _ := fromBigInt(diff)
	return d
}

// Diff returns |a - b|. Ported from cosmwasm_ext.rs's AbsDiff trait.
func (a Dec256) Diff(b Dec256) Dec256 {
	if a.GTE(b) {
		d, _ := a.Sub(b)
		return d
	}
	d, _ := b.Sub(a)
	return d
}

// Mul returns a * b.
func (a Dec256) Mul(b Dec256) (Dec256, error) {
	prod := new(big.Int).Mul(a.atomics.BigInt(), b.atomics.BigInt())
	prod.Quo(prod, precisionBigInt)
	return fromBigInt(prod)
}

// Quo returns a / b.
func (a Dec256) Quo(b Dec256) (Dec256, error) {
	if b.IsZero() {
		return Dec256{}, errs.ErrDivideByZero.Wrap("Dec256 division by zero")
	}
	num := new(big.Int).Mul(a.atomics.BigInt(), precisionBigInt)
	num.Quo(num, b.atomics.BigInt())
	return fromBigInt(num)
}

// Inv returns 1 / a.
func (a Dec256) Inv() (Dec256, error) {
	return OneDec256().Quo(a)
}

// Pow returns a^n for small non-negative integer exponents (the curve
// kernels only ever raise to 2 or 3, via repeated squaring/mul).
func (a Dec256) Pow(n uint64) (Dec256, error) {
	result := OneDec256()
	base := a
	for n > 0 {
		if n&1 == 1 {
			var err error
			result, err = result.Mul(base)
			if err != nil {
				return Dec256{}, err
			}
		}
		n >>= 1
		if n > 0 {
			var err error
			base, err = base.Mul(base)
			if err != nil {
				return Dec256{}, err
			}
		}
	}
	return result, nil
}

// Sqrt returns the square root of a, delegating to cosmossdk.io/math's
// LegacyDec.ApproxSqrt (same 18-digit fixed-point representation) via
// a string round-trip rather than poking at LegacyDec internals.
func (a Dec256) Sqrt() (Dec256, error) {
	ld, err := sdkmath.LegacyNewDecFromStr(a.String())
	if err != nil {
		return Dec256{}, errs.ErrInvalidArgument.Wrap(err.Error())
	}
	root, err := ld.ApproxSqrt()
	if err != nil {
		return Dec256{}, errs.ErrInvalidArgument.Wrap(err.Error())
	}
	return Dec256FromString(root.String())
}

// MulRatio computes a * num / den directly on atomics (precision
// cancels in the ratio), ported from Decimal256Ext::checked_multiply_ratio.
func (a Dec256) MulRatio(num, den Dec256) (Dec256, error) {
	if den.IsZero() {
		return Dec256{}, errs.ErrDivideByZero.Wrap("MulRatio division by zero")
	}
	prod := new(big.Int).Mul(a.atomics.BigInt(), num.atomics.BigInt())
	prod.Quo(prod, den.atomics.BigInt())
	return fromBigInt(prod)
}

// ToUint128 rescales down to `precision` fractional digits and checks
// the result fits a uint128, as required at the wire boundary (amounts
// are reported in the asset's native precision). Ported from
// Decimal256Ext::to_uint128_with_precision.
func (a Dec256) ToUint128(precision uint32) (sdkmath.Int, error) {
	if precision > Precision {
		return sdkmath.Int{}, errs.ErrInvalidArgument.Wrapf("precision %d exceeds %d", precision, Precision)
	}
	scaled := new(big.Int).Quo(a.atomics.BigInt(), pow10(Precision-precision))
	if scaled.BitLen() > 128 {
		return sdkmath.Int{}, errs.ErrOverflow.Wrapf("value exceeds uint128 range at precision %d", precision)
	}
	return sdkmath.NewIntFromBigInt(scaled), nil
}

// TruncateToInt drops the fractional component, returning the integer
// part as raw atomics. Ported from Decimal256Ext::to_uint256.
func (a Dec256) TruncateToInt() sdkmath.Int {
	return sdkmath.NewIntFromBigInt(new(big.Int).Quo(a.atomics.BigInt(), precisionBigInt))
}

// FromLegacyDec lifts a math.LegacyDec (the same 18-digit fixed-point
// representation) into a Dec256, by way of a string round-trip.
func FromLegacyDec(ld sdkmath.LegacyDec) (Dec256, error) {
	return Dec256FromString(ld.String())
}

// GeometricMean returns sqrt(xs[0] * xs[1]), ported from math_decimal.rs's
// geometric_mean (specialized to N=2, the only pool size this engine
// supports).
func GeometricMean(xs [2]Dec256) (Dec256, error) {
	prod, err := xs[0].Mul(xs[1])
	if err != nil {
		return Dec256{}, err
	}
	return prod.Sqrt()
}
