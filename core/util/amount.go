package util

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// amountPrecision covers NUMERIC(78,0) amounts, the widest value a uint256 holds.
const amountPrecision = 78

// ToDecimal reinterprets a smallest-unit amount as a decimal value scaled by
// the token's decimals, without loss.
func ToDecimal(amount *big.Int, decimals uint8) *apd.Decimal {
	var coeff apd.BigInt
	coeff.SetMathBigInt(amount)
	return apd.NewWithBigInt(&coeff, -int32(decimals))
}

// FormatUnits renders a smallest-unit amount in the token's decimal form,
// rounded half-up to places fractional digits.
func FormatUnits(amount *big.Int, decimals uint8, places int32) (string, error) {
	ctx := apd.BaseContext.WithPrecision(amountPrecision)
	ctx.Rounding = apd.RoundHalfUp
	var out apd.Decimal
	if _, err := ctx.Quantize(&out, ToDecimal(amount, decimals), -places); err != nil {
		return "", errors.Wrap(err, "quantize amount")
	}
	return out.Text('f'), nil
}

// ParseUnits converts a human-entered decimal string into the token's smallest
// unit, truncating any fraction below the token's resolution.
func ParseUnits(value string, decimals uint8) (*big.Int, error) {
	d, _, err := apd.NewFromString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "parse amount %q", value)
	}
	ctx := apd.BaseContext.WithPrecision(amountPrecision)
	ctx.Rounding = apd.RoundDown

	var scaled apd.Decimal
	if _, err := ctx.Mul(&scaled, d, apd.New(1, int32(decimals))); err != nil {
		return nil, errors.Wrap(err, "scale amount")
	}
	var whole apd.Decimal
	if _, err := ctx.Quantize(&whole, &scaled, 0); err != nil {
		return nil, errors.Wrap(err, "truncate amount")
	}

	out := whole.Coeff.MathBigInt()
	if whole.Negative {
		out.Neg(out)
	}
	return out, nil
}
