// Package txbuilder constructs the ordered transaction batch that establishes
// a payment stream. It only builds descriptors; submission belongs to the
// wallet collaborator.
package txbuilder

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/vaultstream/sdk-go/core/types"
	"github.com/vaultstream/sdk-go/core/util"
)

// BuildBatch returns the transactions that establish a stream of the given
// token, in strict execution order. The batch is never reordered, merged or
// deduplicated downstream; executing the createStream step before its wrap or
// approve predecessor fails on-chain.
func BuildBatch(dep Deployment, token types.TokenDescriptor, recipient util.EthereumAddress, plan types.StreamPlan) ([]types.TransactionDescriptor, error) {
	if plan.Amount == nil || plan.Amount.Sign() <= 0 {
		return nil, errors.WithStack(types.ErrAmountTooSmall)
	}

	switch token.Kind {
	case types.TokenKindNative:
		return buildNativeBatch(dep, recipient, plan)
	case types.TokenKindERC20:
		return buildERC20Batch(dep, token, recipient, plan)
	default:
		return nil, errors.Errorf("unknown token kind %q", token.Kind)
	}
}

// buildNativeBatch wraps the native asset and opens the stream against the
// wrapper. The sequence is exactly [deposit, createStream]; no approval call
// is inserted between them. Deployments whose streaming contract requires a
// post-wrap allowance would add that step here, keyed off the Deployment pair.
func buildNativeBatch(dep Deployment, recipient util.EthereumAddress, plan types.StreamPlan) ([]types.TransactionDescriptor, error) {
	wrapData, err := wrappedNativeABI.Pack("deposit")
	if err != nil {
		return nil, errors.Wrap(err, "encode deposit")
	}
	streamData, err := packCreateStream(recipient, plan, dep.WrappedNative)
	if err != nil {
		return nil, err
	}

	return []types.TransactionDescriptor{
		{To: dep.WrappedNative, Data: wrapData, Value: new(big.Int).Set(plan.Amount)},
		{To: dep.Streaming, Data: streamData, Value: big.NewInt(0)},
	}, nil
}

// buildERC20Batch authorizes the streaming contract for the adjusted amount,
// then opens the stream against the token's own contract.
func buildERC20Batch(dep Deployment, token types.TokenDescriptor, recipient util.EthereumAddress, plan types.StreamPlan) ([]types.TransactionDescriptor, error) {
	approveData, err := erc20ABI.Pack("approve", dep.Streaming, plan.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "encode approve")
	}
	streamData, err := packCreateStream(recipient, plan, token.Address)
	if err != nil {
		return nil, err
	}

	return []types.TransactionDescriptor{
		{To: token.Address, Data: approveData, Value: big.NewInt(0)},
		{To: dep.Streaming, Data: streamData, Value: big.NewInt(0)},
	}, nil
}

func packCreateStream(recipient util.EthereumAddress, plan types.StreamPlan, asset common.Address) ([]byte, error) {
	data, err := streamingABI.Pack("createStream",
		recipient.Raw(),
		plan.Amount,
		asset,
		big.NewInt(plan.Window.Start),
		big.NewInt(plan.Window.Stop),
	)
	if err != nil {
		return nil, errors.Wrap(err, "encode createStream")
	}
	return data, nil
}
