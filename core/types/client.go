package types

import (
	"context"

	"github.com/vaultstream/sdk-go/core/util"
)

// Submitter hands an ordered transaction batch to the multi-owner wallet's
// proposal pipeline. The handoff is fire-and-forget from this SDK's point of
// view; confirmation and multi-signature collection are the wallet's concern.
type Submitter interface {
	SubmitBatch(ctx context.Context, batch []TransactionDescriptor) error
}

// TokenRegistry supplies the per-network token configuration. The list for a
// chain must include the native-asset sentinel entry (Kind == TokenKindNative).
type TokenRegistry interface {
	// Token resolves a single token by its chain-scoped identifier.
	Token(ctx context.Context, chainID string, tokenID string) (TokenDescriptor, error)
	// Tokens lists the streamable tokens configured for a chain.
	Tokens(ctx context.Context, chainID string) ([]TokenDescriptor, error)
}

// BalanceReader reads the owner's current balance for a token as an integer
// string in the token's smallest unit (NUMERIC(78,0) convention).
type BalanceReader interface {
	Balance(ctx context.Context, chainID string, token TokenDescriptor, owner util.EthereumAddress) (string, error)
}
