package ramp_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/curvesim/ramp"
)

func testSchedule() ramp.Schedule {
	return ramp.Schedule{
		InitTime:    0,
		FutureTime:  1000,
		InitAmp:     sdkmath.LegacyNewDec(10),
		FutureAmp:   sdkmath.LegacyNewDec(20),
		InitGamma:   sdkmath.LegacyNewDecWithPrec(1, 2),
		FutureGamma: sdkmath.LegacyNewDecWithPrec(1, 2),
	}
}

func TestAt_Midpoint(t *testing.T) {
	got, err := ramp.At(500, testSchedule())
	require.NoError(t, err)
	require.True(t, got.Amp.Equal(sdkmath.LegacyNewDec(15)))
}

func TestAt_ClampsPastFutureTime(t *testing.T) {
	got, err := ramp.At(5000, testSchedule())
	require.NoError(t, err)
	require.True(t, got.Amp.Equal(sdkmath.LegacyNewDec(20)))
}

func TestAt_AtInitTime(t *testing.T) {
	got, err := ramp.At(0, testSchedule())
	require.NoError(t, err)
	require.True(t, got.Amp.Equal(sdkmath.LegacyNewDec(10)))
}

func TestAt_RejectsBeforeInitTime(t *testing.T) {
	sched := testSchedule()
	sched.InitTime = 100
	_, err := ramp.At(50, sched)
	require.Error(t, err)
}
