package types

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDuration is returned when a stream duration is zero or negative.
	ErrInvalidDuration = errors.New("duration must be a positive number of seconds")

	// ErrAmountTooSmall is returned when the requested amount cannot pay at least
	// one smallest unit per second over the stream duration. The streaming
	// contract rejects zero-rate streams.
	ErrAmountTooSmall = errors.New("amount too small for the requested duration")

	// ErrInsufficientBalance is the sentinel matched by errors.Is for
	// *InsufficientBalanceError values.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUnsupportedNetwork is returned when no wrapper/streaming deployment is
	// known for the requested chain.
	ErrUnsupportedNetwork = errors.New("no known deployment for network")

	// ErrInvalidRecipient is returned for a malformed or missing recipient
	// address, or a recipient equal to the sender.
	ErrInvalidRecipient = errors.New("invalid recipient address")

	// ErrUnknownToken is returned when the token registry has no entry for the
	// requested token on the requested chain.
	ErrUnknownToken = errors.New("token not found in registry")
)

// InsufficientBalanceError reports that a requested amount exceeds the sender's
// available balance. Shortfall is in the token's smallest unit; Display is the
// same value rendered in the token's decimal form for user-facing messages.
type InsufficientBalanceError struct {
	Token     TokenDescriptor
	Shortfall *big.Int
	Display   string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: short by %s", e.Token.Symbol, e.Display)
}

// Is makes errors.Is(err, ErrInsufficientBalance) match.
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
