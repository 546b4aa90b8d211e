// Package schedule derives the contract-safe parameters of a payment stream:
// the time window it runs over and the amount the streaming contract will
// accept. Everything here is pure; the wall clock is an argument.
package schedule

import (
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/vaultstream/sdk-go/core/types"
	"github.com/vaultstream/sdk-go/core/util"
)

// StartBufferSeconds is added to the submission time to form the stream start.
// Multi-owner wallets collect signatures with unspecified latency; a stream
// whose start has already passed by execution time is rejected on-chain.
const StartBufferSeconds int64 = 3600

// DisplayPlaces is the fixed fractional precision for user-facing amounts.
const DisplayPlaces int32 = 4

// ComputePlan converts a requested amount and duration into a StreamPlan.
//
// The streaming contract derives a per-second rate and rejects deposits that do
// not divide evenly across the stream length, so the requested amount is
// truncated down to the nearest multiple of the duration. The truncated amount
// is what the plan carries and what callers must show the user.
func ComputePlan(amount *big.Int, durationSeconds int64, now time.Time) (types.StreamPlan, error) {
	if durationSeconds <= 0 {
		return types.StreamPlan{}, errors.WithStack(types.ErrInvalidDuration)
	}
	if amount == nil || amount.Sign() <= 0 {
		return types.StreamPlan{}, errors.WithStack(types.ErrAmountTooSmall)
	}

	duration := big.NewInt(durationSeconds)
	if amount.Cmp(duration) < 0 {
		// The adjusted amount would be zero: less than one smallest unit per second.
		return types.StreamPlan{}, errors.Wrapf(types.ErrAmountTooSmall,
			"%s over %d seconds", amount, durationSeconds)
	}

	remainder := new(big.Int).Mod(amount, duration)
	adjusted := new(big.Int).Sub(amount, remainder)

	start := now.Unix() + StartBufferSeconds
	return types.StreamPlan{
		Amount: adjusted,
		Window: types.StreamWindow{
			Start: start,
			Stop:  start + durationSeconds,
		},
	}, nil
}

// CheckBalance verifies that the requested amount is covered by the available
// balance, both in the token's smallest unit. On a shortfall it returns an
// *types.InsufficientBalanceError whose message expresses the missing amount
// in the token's decimal form.
func CheckBalance(requested, available *big.Int, token types.TokenDescriptor) error {
	if requested == nil || available == nil {
		return errors.New("requested and available amounts are required")
	}
	if requested.Cmp(available) <= 0 {
		return nil
	}

	shortfall := new(big.Int).Sub(requested, available)
	display, err := util.FormatUnits(shortfall, token.Decimals, DisplayPlaces)
	if err != nil {
		return errors.Wrap(err, "format shortfall")
	}
	return &types.InsufficientBalanceError{
		Token:     token,
		Shortfall: shortfall,
		Display:   display,
	}
}
