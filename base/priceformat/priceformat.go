package priceformat

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Display renders a raw integer amount in the currency's base unit as a
// human readable decimal string, e.g. 1500000000000000000 wei -> "1.5".
func Display(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}
