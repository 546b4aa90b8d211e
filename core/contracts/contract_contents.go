package contracts

import _ "embed"

//go:embed erc20.json
var ERC20ABIContent []byte

//go:embed wrapped_native.json
var WrappedNativeABIContent []byte

//go:embed streaming.json
var StreamingABIContent []byte
