package stable

import (
	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/errs"
	"github.com/paw-chain/curvesim/internal/params"
)

var (
	nDec    = decimal.NewDec256FromUint64(params.N)
	nPlus1  = decimal.NewDec256FromUint64(params.N + 1)
	nPowN   = decimal.NewDec256FromUint64(params.NPow2) // N^N == N^2 for N=2
	oneDec2 = decimal.OneDec256()
)

// ComputeD solves the StableSwap invariant D for a balanced pair of
// reserves under amplification amp, by the standard Curve n=2 Newton
// iteration: D is seeded at the reserve sum and refined until two
// passes differ by no more than params.Tol.
func ComputeD(xs [2]decimal.Dec256, amp decimal.Dec256) (decimal.Dec256, error) {
	s, err := xs[0].Add(xs[1])
	if err != nil {
		return decimal.Dec256{}, err
	}
	if s.IsZero() {
		return decimal.ZeroDec256(), nil
	}

	ann, err := amp.Mul(nPowN)
	if err != nil {
		return decimal.Dec256{}, err
	}

	d := s
	for iter := uint64(0); iter < params.MaxIter; iter++ {
		dP := d
		for _, x := range xs {
			denom, err := nDec.Mul(x)
			if err != nil {
				return decimal.Dec256{}, err
			}
			dP, err = dP.Mul(d)
			if err != nil {
				return decimal.Dec256{}, err
			}
			dP, err = dP.Quo(denom)
			if err != nil {
				return decimal.Dec256{}, err
			}
		}

		dPrev := d

		annS, err := ann.Mul(s)
		if err != nil {
			return decimal.Dec256{}, err
		}
		dPn, err := dP.Mul(nDec)
		if err != nil {
			return decimal.Dec256{}, err
		}
		numerator, err := annS.Add(dPn)
		if err != nil {
			return decimal.Dec256{}, err
		}
		numerator, err = numerator.Mul(d)
		if err != nil {
			return decimal.Dec256{}, err
		}

		annMinus1, err := ann.Sub(oneDec2)
		if err != nil {
			return decimal.Dec256{}, err
		}
		left, err := annMinus1.Mul(d)
		if err != nil {
			return decimal.Dec256{}, err
		}
		right, err := nPlus1.Mul(dP)
		if err != nil {
			return decimal.Dec256{}, err
		}
		denominator, err := left.Add(right)
		if err != nil {
			return decimal.Dec256{}, err
		}

		d, err = numerator.Quo(denominator)
		if err != nil {
			return decimal.Dec256{}, err
		}

		if d.Diff(dPrev).LTE(params.Tol) {
			return d, nil
		}
	}
	return decimal.Dec256{}, errs.ErrNewtonDNotConverging.Wrap("stable compute_d did not converge")
}

// CalcY solves for the reserve at index j that satisfies the
// StableSwap invariant D given the other reserve, by the standard
// Curve n=2 Newton iteration on y.
func CalcY(xs [2]decimal.Dec256, amp, d decimal.Dec256, j int) (decimal.Dec256, error) {
	other := 1 ^ j

	ann, err := amp.Mul(nPowN)
	if err != nil {
		return decimal.Dec256{}, err
	}

	denom, err := nDec.Mul(xs[other])
	if err != nil {
		return decimal.Dec256{}, err
	}
	c, err := d.Mul(d)
	if err != nil {
		return decimal.Dec256{}, err
	}
	c, err = c.Quo(denom)
	if err != nil {
		return decimal.Dec256{}, err
	}
	annN, err := ann.Mul(nDec)
	if err != nil {
		return decimal.Dec256{}, err
	}
	c, err = c.Mul(d)
	if err != nil {
		return decimal.Dec256{}, err
	}
	c, err = c.Quo(annN)
	if err != nil {
		return decimal.Dec256{}, err
	}

	dOverAnn, err := d.Quo(ann)
	if err != nil {
		return decimal.Dec256{}, err
	}
	b, err := xs[other].Add(dOverAnn)
	if err != nil {
		return decimal.Dec256{}, err
	}

	y := d
	for iter := uint64(0); iter < params.MaxIter; iter++ {
		yPrev := y

		ySquared, err := y.Mul(y)
		if err != nil {
			return decimal.Dec256{}, err
		}
		num, err := ySquared.Add(c)
		if err != nil {
			return decimal.Dec256{}, err
		}

		twoY, err := nDec.Mul(y)
		if err != nil {
			return decimal.Dec256{}, err
		}
		denomSum, err := twoY.Add(b)
		if err != nil {
			return decimal.Dec256{}, err
		}
		denomY, err := denomSum.Sub(d)
		if err != nil {
			return decimal.Dec256{}, err
		}

		y, err = num.Quo(denomY)
		if err != nil {
			return decimal.Dec256{}, err
		}

		if y.Diff(yPrev).LTE(params.Tol) {
			return y, nil
		}
	}
	return decimal.Dec256{}, errs.ErrNewtonYNotConverging.Wrap("stable calc_y did not converge")
}
