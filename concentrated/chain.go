package concentrated

import "github.com/paw-chain/curvesim/decimal"

// chain wraps an SDec computation that short-circuits on the first
// error, the same way Go's errgroup lets you defer error checking
// across a sequence of otherwise-independent steps. The Newton
// residual and derivative formulas in math.go are long arithmetic chains
// straight out of the source material; threading `if err != nil`
// through every single operator obscures the formula more than it
// protects it.
type chain struct {
	v   decimal.SDec
	err error
}

func start(v decimal.SDec) chain { return chain{v: v} }

func (c chain) Add(other chain) chain {
	if c.err != nil {
		return c
	}
	if other.err != nil {
		return other
	}
	v, err := c.v.Add(other.v)
	return chain{v: v, err: err}
}

func (c chain) Sub(other chain) chain {
	if c.err != nil {
		return c
	}
	if other.err != nil {
		return other
	}
	v, err := c.v.Sub(other.v)
	return chain{v: v, err: err}
}

func (c chain) Mul(other chain) chain {
	if c.err != nil {
		return c
	}
	if other.err != nil {
		return other
	}
	v, err := c.v.Mul(other.v)
	return chain{v: v, err: err}
}

func (c chain) Div(other chain) chain {
	if c.err != nil {
		return c
	}
	if other.err != nil {
		return other
	}
	v, err := c.v.Div(other.v)
	return chain{v: v, err: err}
}

func (c chain) Neg() chain {
	if c.err != nil {
		return c
	}
	return chain{v: c.v.Negate()}
}

func (c chain) Pow(n uint64) chain {
	if c.err != nil {
		return c
	}
	v, err := c.v.Pow(n)
	return chain{v: v, err: err}
}

func (c chain) result() (decimal.SDec, error) {
	return c.v, c.err
}

func lift(d decimal.Dec256) chain {
	return chain{v: decimal.SDecFromDec256(d)}
}
