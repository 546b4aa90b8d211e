package types

import "github.com/ethereum/go-ethereum/common"

// TokenKind distinguishes the chain's base currency from contract-backed tokens.
// The two kinds take different transaction paths: native assets must be wrapped
// before streaming, ERC20 tokens must approve the streaming contract instead.
type TokenKind string

const (
	TokenKindNative TokenKind = "native"
	TokenKindERC20  TokenKind = "erc20"
)

// TokenDescriptor describes a streamable token on a specific chain. It is
// supplied by the token configuration collaborator, never constructed by this
// SDK. Native entries carry the zero address; their on-chain representation is
// the per-network wrapped-native contract resolved by the builder.
type TokenDescriptor struct {
	ID       string         `json:"id"` // chain-scoped identifier, e.g. "eth", "dai"
	Symbol   string         `json:"symbol"`
	Name     string         `json:"name"`
	Decimals uint8          `json:"decimals"`
	Kind     TokenKind      `json:"kind"`
	Address  common.Address `json:"address"`
}

func (t TokenDescriptor) IsNative() bool {
	return t.Kind == TokenKindNative
}
