package txbuilder

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/vaultstream/sdk-go/core/contracts"
)

// Parsed once at startup from the embedded artifacts. A malformed artifact is
// a build defect, not a runtime condition.
var (
	erc20ABI         abi.ABI
	wrappedNativeABI abi.ABI
	streamingABI     abi.ABI
)

func init() {
	var err error
	erc20ABI, err = abi.JSON(bytes.NewReader(contracts.ERC20ABIContent))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ERC20 ABI: %v", err))
	}
	wrappedNativeABI, err = abi.JSON(bytes.NewReader(contracts.WrappedNativeABIContent))
	if err != nil {
		panic(fmt.Sprintf("failed to parse wrapped-native ABI: %v", err))
	}
	streamingABI, err = abi.JSON(bytes.NewReader(contracts.StreamingABIContent))
	if err != nil {
		panic(fmt.Sprintf("failed to parse streaming ABI: %v", err))
	}
}
