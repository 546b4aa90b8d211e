package util

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// EthereumAddress is a validated EVM address. The zero value is not valid;
// construct one through NewEthereumAddressFromString or
// NewEthereumAddressFromBytes.
type EthereumAddress struct {
	address common.Address
}

// NewEthereumAddressFromString parses a 0x-prefixed hex address.
func NewEthereumAddressFromString(s string) (EthereumAddress, error) {
	if !strings.HasPrefix(s, "0x") || !common.IsHexAddress(s) {
		return EthereumAddress{}, errors.Errorf("invalid ethereum address: %q", s)
	}
	return EthereumAddress{address: common.HexToAddress(s)}, nil
}

// NewEthereumAddressFromBytes builds an address from its 20-byte form.
func NewEthereumAddressFromBytes(b []byte) (EthereumAddress, error) {
	if len(b) != common.AddressLength {
		return EthereumAddress{}, errors.Errorf("invalid ethereum address length: %d", len(b))
	}
	return EthereumAddress{address: common.BytesToAddress(b)}, nil
}

// Address returns the canonical lowercase hex representation.
func (a EthereumAddress) Address() string {
	return strings.ToLower(a.address.Hex())
}

// Checksum returns the EIP-55 mixed-case representation.
func (a EthereumAddress) Checksum() string {
	return a.address.Hex()
}

func (a EthereumAddress) Bytes() []byte {
	return a.address.Bytes()
}

// Raw returns the underlying go-ethereum address for ABI encoding.
func (a EthereumAddress) Raw() common.Address {
	return a.address
}

// EthereumAddressesToStrings converts a slice of EthereumAddress to their
// lowercase hex string representation.
func EthereumAddressesToStrings(addrs []EthereumAddress) []string {
	strs := make([]string, len(addrs))
	for i, a := range addrs {
		strs[i] = a.Address()
	}
	return strs
}
