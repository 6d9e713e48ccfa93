// Package errs collects the sentinel errors the engine can return.
//
// Grounded on poaiw-blockchain-paw's x/dex/types/errors.go: one
// cosmossdk.io/errors-registered sentinel per failure kind, wrapped
// with call-site detail via .Wrap/.Wrapf rather than constructed ad hoc.
package errs

import (
	"cosmossdk.io/errors"
)

const moduleName = "curvesim"

var (
	// ErrInvalidArgument covers malformed decimal/integer/JSON input at
	// the marshalling boundary.
	ErrInvalidArgument = errors.Register(moduleName, 1, "invalid argument")

	// ErrOverflow covers a 256-bit intermediate or a 128-bit output
	// conversion that does not fit.
	ErrOverflow = errors.Register(moduleName, 2, "arithmetic overflow")

	// ErrDivideByZero mirrors the source's DivideByZeroError.
	ErrDivideByZero = errors.Register(moduleName, 3, "division by zero")

	// ErrNegativeResult is returned when a signed residual cannot be
	// converted back to an unsigned Dec256 (SDec.TryIntoUnsigned).
	ErrNegativeResult = errors.Register(moduleName, 4, "negative value where unsigned required")

	// ErrNewtonDNotConverging mirrors newton_d's non-convergence error.
	ErrNewtonDNotConverging = errors.Register(moduleName, 5, "newton_d is not converging")

	// ErrNewtonYNotConverging mirrors newton_y's non-convergence error.
	ErrNewtonYNotConverging = errors.Register(moduleName, 6, "newton_y is not converging")

	// ErrInvalidZeroAmount covers a provide with zero deposit or a swap
	// with zero offer amount where zero is not a valid input.
	ErrInvalidZeroAmount = errors.Register(moduleName, 7, "amount must not be zero")

	// ErrMinimumLiquidityAmount covers an initial provide that does not
	// clear MinimumLiquidityAmount shares.
	ErrMinimumLiquidityAmount = errors.Register(moduleName, 8, "initial liquidity must exceed minimum liquidity amount")

	// ErrLiquidityAmountTooSmall covers a non-initial provide that mints
	// zero shares.
	ErrLiquidityAmountTooSmall = errors.Register(moduleName, 9, "insufficient amount of liquidity")
)
