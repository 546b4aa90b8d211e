package txbuilder

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/vaultstream/sdk-go/core/types"
)

// Deployment holds the contract addresses a stream batch targets on one chain.
// The wrapped-native and streaming contracts are carried as a pair: a stream
// of the native asset references the wrapper, and whatever authorization the
// streaming contract expects between wrap and createStream is a property of
// the pair, not of either address alone.
type Deployment struct {
	ChainID       string
	WrappedNative common.Address
	Streaming     common.Address
}

// Deployments is a read-only lookup of deployments by decimal chain ID. It is
// passed into the builder explicitly; there is no package-level registry.
type Deployments map[string]Deployment

// DefaultDeployments returns the known wrapper/streaming pairs.
func DefaultDeployments() Deployments {
	return Deployments{
		// Ethereum mainnet: WETH9, Sablier v1.1
		"1": {
			ChainID:       "1",
			WrappedNative: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
			Streaming:     common.HexToAddress("0xCD18eAa163733Da39c232722cBC4E8940b1D8888"),
		},
		// Rinkeby
		"4": {
			ChainID:       "4",
			WrappedNative: common.HexToAddress("0xc778417E063141139Fce010982780140Aa0cD5Ab"),
			Streaming:     common.HexToAddress("0xc04Ad234E01327b24a831e3718DBFcbf245c5fB8"),
		},
	}
}

// ForChain resolves the deployment for a chain, or ErrUnsupportedNetwork.
func (d Deployments) ForChain(chainID string) (Deployment, error) {
	dep, ok := d[chainID]
	if !ok {
		return Deployment{}, errors.Wrapf(types.ErrUnsupportedNetwork, "chain %q", chainID)
	}
	return dep, nil
}
