package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEthereumAddressFromString(t *testing.T) {
	t.Run("valid checksum address", func(t *testing.T) {
		addr, err := NewEthereumAddressFromString("0x8888f1F195AFa192CfeE860698584c030f4c9dB1")
		require.NoError(t, err)
		require.Equal(t, "0x8888f1f195afa192cfee860698584c030f4c9db1", addr.Address())
		require.Equal(t, "0x8888f1F195AFa192CfeE860698584c030f4c9dB1", addr.Checksum())
		require.Len(t, addr.Bytes(), 20)
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, s := range []string{
			"",
			"0x",
			"0x1234",
			"8888f1F195AFa192CfeE860698584c030f4c9dB1",  // missing prefix
			"0xZZ88f1F195AFa192CfeE860698584c030f4c9dB1", // not hex
		} {
			_, err := NewEthereumAddressFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestNewEthereumAddressFromBytes(t *testing.T) {
	addr, err := NewEthereumAddressFromString("0x8888f1F195AFa192CfeE860698584c030f4c9dB1")
	require.NoError(t, err)

	same, err := NewEthereumAddressFromBytes(addr.Bytes())
	require.NoError(t, err)
	require.Equal(t, addr.Address(), same.Address())

	_, err = NewEthereumAddressFromBytes([]byte{0x01, 0x02})
	require.Error(t, err)
}
