package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/vaultstream/sdk-go/core/util"
)

// StreamRequest is the raw user input for a stream-creation proposal, as
// collected by the presentation layer. Addresses arrive as plain strings and
// are validated here, not upstream.
type StreamRequest struct {
	ChainID         string   `validate:"required"`
	TokenID         string   `validate:"required"`
	Amount          *big.Int `validate:"required"` // smallest token unit
	Sender          string   `validate:"required"`
	Recipient       string   `validate:"required"`
	DurationSeconds int64    `validate:"required"`
}

// Validate checks the request invariants: amount > 0, duration > 0, recipient
// well-formed and different from the sender.
func (r *StreamRequest) Validate() error {
	if r.DurationSeconds <= 0 {
		return errors.WithStack(ErrInvalidDuration)
	}
	if r.Amount == nil || r.Amount.Sign() <= 0 {
		return errors.Wrap(ErrAmountTooSmall, "amount must be positive")
	}
	recipient, err := util.NewEthereumAddressFromString(r.Recipient)
	if err != nil {
		return errors.Wrap(ErrInvalidRecipient, r.Recipient)
	}
	sender, err := util.NewEthereumAddressFromString(r.Sender)
	if err != nil {
		return errors.Errorf("invalid sender address: %q", r.Sender)
	}
	if recipient.Address() == sender.Address() {
		return errors.Wrap(ErrInvalidRecipient, "recipient must differ from sender")
	}
	return nil
}

// StreamWindow is the time window of a stream as Unix-epoch seconds.
// Stop is always Start plus the requested duration.
type StreamWindow struct {
	Start int64
	Stop  int64
}

// StreamPlan is the validated output of the parameter calculator: the amount
// that will actually be streamed (the request truncated down to a multiple of
// the duration) and the window it streams over. Callers must surface
// plan.Amount to the user, not the originally requested amount.
type StreamPlan struct {
	Amount *big.Int
	Window StreamWindow
}

// TransactionDescriptor is one step of a stream-creation batch. Descriptors
// are dispatched independently by the wallet but their order is a correctness
// contract: a createStream executed before its wrap or approve fails on-chain.
type TransactionDescriptor struct {
	To    common.Address
	Data  []byte
	Value *big.Int // native-asset amount attached, zero for plain calls
}

// StreamProposal is the result handed back after a batch has been given to the
// submission collaborator.
type StreamProposal struct {
	ID    uuid.UUID
	Token TokenDescriptor
	Plan  StreamPlan
	Batch []TransactionDescriptor
}
