// Package ramp implements the concentrated pair's amp/gamma linear
// interpolation schedule.
//
// The source had two near-identical copies of this lookup — a private
// one in pair_concentrated/mod.rs and a public one in
// pair_concentrated/state.rs reused by pair_concentrated/swap.rs. This
// package is the single canonical implementation both
// concentrated.Swap and concentrated.SwapWithOracle call, per the
// de-duplication the source material itself flags as overdue.
package ramp

import (
	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/curvesim/errs"
)

// Schedule describes a linear ramp of (amp, gamma) between an initial
// and a future checkpoint.
type Schedule struct {
	InitTime, FutureTime   uint64
	InitAmp, FutureAmp     sdkmath.LegacyDec
	InitGamma, FutureGamma sdkmath.LegacyDec
}

// AmpGamma is the pair's current curve parameters.
type AmpGamma struct {
	Amp   sdkmath.LegacyDec
	Gamma sdkmath.LegacyDec
}

// At interpolates the schedule at blockTime. Outside the ramp window
// (blockTime >= FutureTime) the future values are returned unchanged;
// blockTime before InitTime is a caller error.
func At(blockTime uint64, sched Schedule) (AmpGamma, error) {
	if blockTime < sched.InitTime {
		return AmpGamma{}, errs.ErrInvalidArgument.Wrap("block_time precedes ramp init_time")
	}
	if blockTime >= sched.FutureTime {
		return AmpGamma{Amp: sched.FutureAmp, Gamma: sched.FutureGamma}, nil
	}

	total := sdkmath.LegacyNewDec(int64(sched.FutureTime - sched.InitTime))
	passed := sdkmath.LegacyNewDec(int64(blockTime - sched.InitTime))
	left := total.Sub(passed)

	amp := sched.InitAmp.Mul(left).Add(sched.FutureAmp.Mul(passed)).Quo(total)
	gamma := sched.InitGamma.Mul(left).Add(sched.FutureGamma.Mul(passed)).Quo(total)

	return AmpGamma{Amp: amp, Gamma: gamma}, nil
}
