package spacing

import (
	"github.com/cockroachdb/apd/v3"
)

// calc chains decimal operations under one context. The first error sticks
// and turns every later operation into a no-op, so callers check err once.
type calc struct {
	ctx *apd.Context
	err error
}

func newCalc() *calc {
	ctx := apd.BaseContext.WithPrecision(Precision)
	ctx.Rounding = apd.RoundHalfEven
	return &calc{ctx: ctx}
}

// decimal converts v through its shortest decimal representation, so 0.046
// becomes exactly 0.046.
func (c *calc) decimal(v float64) *apd.Decimal {
	d := new(apd.Decimal)
	if c.err != nil {
		return d
	}
	_, c.err = d.SetFloat64(v)
	return d
}

func (c *calc) add(x, y *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	if c.err == nil {
		_, c.err = c.ctx.Add(d, x, y)
	}
	return d
}

func (c *calc) sub(x, y *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	if c.err == nil {
		_, c.err = c.ctx.Sub(d, x, y)
	}
	return d
}

func (c *calc) quo(x, y *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	if c.err == nil {
		_, c.err = c.ctx.Quo(d, x, y)
	}
	return d
}
