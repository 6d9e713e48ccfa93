// Package concentrated implements the Curve V2-style concentrated
// liquidity curve: the Newton-iteration invariant solvers (calc_d,
// calc_y) and the swap/provide/withdraw kernels built on top of them.
//
// Ported from original_source's
// pair_concentrated/math/{math_decimal,signed_decimal,mod}.rs and
// pair_concentrated/{mod,swap,state,consts}.rs.
package concentrated

import (
	"github.com/paw-chain/curvesim/decimal"
	"github.com/paw-chain/curvesim/errs"
	"github.com/paw-chain/curvesim/internal/params"
)

var (
	nDec     = decimal.NewDec256FromUint64(params.N)
	nPow2Dec = decimal.NewDec256FromUint64(params.NPow2)
	nCube    = decimal.NewDec256FromUint64(params.N * params.N * params.N)
)

// residual evaluates f(D, x) from math_decimal.rs's f(). Signed
// because (gamma + 1 - K0) can go negative mid-iteration.
func residual(d decimal.SDec, x [2]decimal.SDec, a, gamma decimal.Dec256) (decimal.SDec, error) {
	gammaPow2, err := gamma.Pow(2)
	if err != nil {
		return decimal.SDec{}, err
	}
	aGammaPow2, err := a.Mul(gammaPow2)
	if err != nil {
		return decimal.SDec{}, err
	}
	gammaPlusOne, err := gamma.Add(decimal.OneDec256())
	if err != nil {
		return decimal.SDec{}, err
	}

	mul := start(x[0]).Mul(start(x[1]))
	dPow2 := start(d).Pow(2)
	k0 := mul.Mul(lift(nPow2Dec)).Div(dPow2)

	gammaOneK0 := lift(gammaPlusOne).Sub(k0)
	gammaOneK0Pow2 := gammaOneK0.Pow(2)

	k := lift(aGammaPow2).Mul(k0).Div(gammaOneK0Pow2)

	sum := start(x[0]).Add(start(x[1]))
	result := k.Mul(start(d)).Mul(sum).Add(mul).Sub(k.Mul(dPow2)).Sub(dPow2.Div(lift(nPow2Dec)))
	return result.result()
}

// dResidual evaluates df/dD from math_decimal.rs's df_dd().
func dResidual(d decimal.SDec, x [2]decimal.SDec, a, gamma decimal.Dec256) (decimal.SDec, error) {
	gammaPow2, err := gamma.Pow(2)
	if err != nil {
		return decimal.SDec{}, err
	}
	aGammaPow2, err := a.Mul(gammaPow2)
	if err != nil {
		return decimal.SDec{}, err
	}
	gammaPlusOne, err := gamma.Add(decimal.OneDec256())
	if err != nil {
		return decimal.SDec{}, err
	}

	mul := start(x[0]).Mul(start(x[1]))
	dPow2 := start(d).Pow(2)
	dPow3 := start(d).Pow(3)
	k0 := mul.Mul(lift(nPow2Dec)).Div(dPow2)

	gammaOneK0 := lift(gammaPlusOne).Sub(k0)
	gammaOneK0Pow2 := gammaOneK0.Pow(2)

	k := lift(aGammaPow2).Mul(k0).Div(gammaOneK0Pow2)

	kDDenom := lift(params.Padding).Mul(dPow3).Mul(gammaOneK0Pow2).Mul(gammaOneK0)
	gammaOneK0Plus := lift(gammaPlusOne).Add(k0)
	kD := mul.Mul(lift(nCube)).Mul(lift(aGammaPow2)).Mul(gammaOneK0Plus).Neg()

	kdTerm := kD.Mul(start(d)).Mul(lift(params.Padding)).Div(kDDenom)

	sum := start(x[0]).Add(start(x[1]))
	result := kdTerm.Add(k).Mul(sum).
		Sub(kdTerm.Add(lift(nDec).Mul(k)).Mul(start(d))).
		Sub(start(d).Div(lift(nDec)))
	return result.result()
}

// dResidualDx evaluates df/dx_i from math_decimal.rs's df_dx(). d is
// the (unsigned) invariant, held fixed while x[i] iterates.
func dResidualDx(d decimal.Dec256, x [2]decimal.SDec, a, gamma decimal.Dec256, i int) (decimal.SDec, error) {
	xr := x[1-i]

	gammaPow2, err := gamma.Pow(2)
	if err != nil {
		return decimal.SDec{}, err
	}
	aGammaPow2, err := a.Mul(gammaPow2)
	if err != nil {
		return decimal.SDec{}, err
	}
	gammaPlusOne, err := gamma.Add(decimal.OneDec256())
	if err != nil {
		return decimal.SDec{}, err
	}
	dPow2, err := d.Pow(2)
	if err != nil {
		return decimal.SDec{}, err
	}

	mul := start(x[0]).Mul(start(x[1]))
	k0 := mul.Mul(lift(nPow2Dec)).Div(lift(dPow2))

	gammaOneK0 := lift(gammaPlusOne).Sub(k0)
	gammaOneK0Pow2 := gammaOneK0.Pow(2)

	k := lift(aGammaPow2).Mul(k0).Div(gammaOneK0Pow2)

	k0x := start(xr).Mul(lift(nPow2Dec))
	gammaOneK0Plus := lift(gammaPlusOne).Add(k0)
	numerator := k0x.Mul(lift(aGammaPow2)).Mul(gammaOneK0Plus).Mul(lift(params.Padding))
	denominator := lift(params.Padding).Mul(lift(dPow2)).Mul(gammaOneK0).Mul(gammaOneK0Pow2)
	kx := numerator.Div(denominator)

	sum := start(x[0]).Add(start(x[1]))
	result := kx.Mul(sum).Add(k).Mul(lift(d)).Add(start(xr)).Sub(kx.Mul(lift(dPow2)))
	return result.result()
}

// CalcD solves for the invariant D given rotated reserves xs, seeding
// at N times their geometric mean. Ported from newton_d.
func CalcD(xs [2]decimal.Dec256, a, gamma decimal.Dec256) (decimal.Dec256, error) {
	gm, err := decimal.GeometricMean(xs)
	if err != nil {
		return decimal.Dec256{}, err
	}
	seed, err := nDec.Mul(gm)
	if err != nil {
		return decimal.Dec256{}, err
	}
	dPrev := decimal.SDecFromDec256(seed)

	x := [2]decimal.SDec{decimal.SDecFromDec256(xs[0]), decimal.SDecFromDec256(xs[1])}

	for iter := 0; iter < params.MaxIter; iter++ {
		f, err := residual(dPrev, x, a, gamma)
		if err != nil {
			return decimal.Dec256{}, err
		}
		df, err := dResidual(dPrev, x, a, gamma)
		if err != nil {
			return decimal.Dec256{}, err
		}
		step, err := f.Div(df)
		if err != nil {
			return decimal.Dec256{}, err
		}
		d, err := dPrev.Sub(step)
		if err != nil {
			return decimal.Dec256{}, err
		}

		diff, err := d.Diff(dPrev)
		if err != nil {
			return decimal.Dec256{}, err
		}
		if diff.LTE(params.Tol) {
			return d.TryIntoUnsigned()
		}
		dPrev = d
	}
	return decimal.Dec256{}, errs.ErrNewtonDNotConverging.Wrap("newton_d did not converge within MaxIter")
}

// CalcY solves for reserve x[j] given the others and the invariant D.
// Ported from newton_y.
func CalcY(xs [2]decimal.Dec256, a, gamma, d decimal.Dec256, j int) (decimal.Dec256, error) {
	x := [2]decimal.SDec{decimal.SDecFromDec256(xs[0]), decimal.SDecFromDec256(xs[1])}

	dPow2, err := d.Pow(2)
	if err != nil {
		return decimal.Dec256{}, err
	}
	denom, err := nPow2Dec.Mul(xs[1-j])
	if err != nil {
		return decimal.Dec256{}, err
	}
	x0, err := dPow2.Quo(denom)
	if err != nil {
		return decimal.Dec256{}, err
	}
	xiPrev := decimal.SDecFromDec256(x0)
	x[j] = xiPrev

	for iter := 0; iter < params.MaxIter; iter++ {
		f, err := residual(decimal.SDecFromDec256(d), x, a, gamma)
		if err != nil {
			return decimal.Dec256{}, err
		}
		df, err := dResidualDx(d, x, a, gamma, j)
		if err != nil {
			return decimal.Dec256{}, err
		}
		step, err := f.Div(df)
		if err != nil {
			return decimal.Dec256{}, err
		}
		xi, err := xiPrev.Sub(step)
		if err != nil {
			return decimal.Dec256{}, err
		}

		diff, err := xi.Diff(xiPrev)
		if err != nil {
			return decimal.Dec256{}, err
		}
		if diff.LTE(params.Tol) {
			return xi.TryIntoUnsigned()
		}
		x[j] = xi
		xiPrev = xi
	}
	return decimal.Dec256{}, errs.ErrNewtonYNotConverging.Wrap("newton_y did not converge within MaxIter")
}
