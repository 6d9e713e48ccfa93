package decimal

import "github.com/paw-chain/curvesim/errs"

// SDec is a signed fixed-point decimal: a Dec256 magnitude plus a sign
// bit. The concentrated-pair Newton solvers need it because their
// residuals (f, df/dD, df/dx) legitimately go negative mid-iteration
// even though every public input and output is unsigned.
//
// Ported from original_source's signed_decimal.rs (SignedDecimal256).
// Zero is always canonicalized to non-negative so that comparisons and
// the Diff/IsZero helpers don't need a "negative zero" special case.
type SDec struct {
	Mag Dec256
	Neg bool
}

// SDecFromDec256 lifts an unsigned value (always non-negative).
func SDecFromDec256(d Dec256) SDec {
	return SDec{Mag: d, Neg: false}
}

// SDecZero returns 0.
func SDecZero() SDec { return SDec{Mag: ZeroDec256()} }

func canonical(mag Dec256, neg bool) SDec {
	if mag.IsZero() {
		neg = false
	}
	return SDec{Mag: mag, Neg: neg}
}

// IsZero reports whether the value is exactly zero.
func (s SDec) IsZero() bool { return s.Mag.IsZero() }

// IsNegative reports whether the value is strictly less than zero.
func (s SDec) IsNegative() bool { return s.Neg && !s.Mag.IsZero() }

// Negate returns -s.
func (s SDec) Negate() SDec {
	return canonical(s.Mag, !s.Neg)
}

// Add returns s + other, the four sign-combination cases of
// SignedDecimal256's Add impl collapsed into magnitude compare/add/sub.
func (s SDec) Add(other SDec) (SDec, error) {
	if s.Neg == other.Neg {
		mag, err := s.Mag.Add(other.Mag)
		if err != nil {
			return SDec{}, err
		}
		return canonical(mag, s.Neg), nil
	}
	// opposite signs: subtract the smaller magnitude from the larger,
	// result takes the sign of the larger magnitude's operand.
	if s.Mag.GTE(other.Mag) {
		mag, err := s.Mag.Sub(other.Mag)
		if err != nil {
			return SDec{}, err
		}
		return canonical(mag, s.Neg), nil
	}
	mag, err := other.Mag.Sub(s.Mag)
	if err != nil {
		return SDec{}, err
	}
	return canonical(mag, other.Neg), nil
}

// Sub returns s - other.
func (s SDec) Sub(other SDec) (SDec, error) {
	return s.Add(other.Negate())
}

// Mul returns s * other.
func (s SDec) Mul(other SDec) (SDec, error) {
	mag, err := s.Mag.Mul(other.Mag)
	if err != nil {
		return SDec{}, err
	}
	return canonical(mag, s.Neg != other.Neg), nil
}

// Div returns s / other.
func (s SDec) Div(other SDec) (SDec, error) {
	mag, err := s.Mag.Quo(other.Mag)
	if err != nil {
		return SDec{}, err
	}
	return canonical(mag, s.Neg != other.Neg), nil
}

// Pow returns s^n for small non-negative integer exponents.
func (s SDec) Pow(n uint64) (SDec, error) {
	mag, err := s.Mag.Pow(n)
	if err != nil {
		return SDec{}, err
	}
	neg := s.Neg && n%2 == 1
	return canonical(mag, neg), nil
}

// Diff returns the unsigned absolute difference |s - other|, ported
// from the same AbsDiff trait Dec256.Diff implements.
func (s SDec) Diff(other SDec) (Dec256, error) {
	d, err := s.Sub(other)
	if err != nil {
		return Dec256{}, err
	}
	return d.Mag, nil
}

// TryIntoUnsigned converts back to Dec256, erroring if the value is
// strictly negative. The concentrated solvers CalcD and CalcY call this
// on their final iterate: the domain's outputs are always unsigned.
func (s SDec) TryIntoUnsigned() (Dec256, error) {
	if s.IsNegative() {
		return Dec256{}, errs.ErrNegativeResult.Wrapf("cannot convert negative signed decimal %s to unsigned", s)
	}
	return s.Mag, nil
}

// String renders "-" + magnitude for negative values, matching
// SignedDecimal256's Display impl.
func (s SDec) String() string {
	if s.IsNegative() {
		return "-" + s.Mag.String()
	}
	return s.Mag.String()
}
