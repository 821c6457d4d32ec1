package priceformat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	req := require.New(t)

	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	req.True(ok)
	req.Equal("1.5", Display(wei, 18))
	req.Equal("0.000001", Display(big.NewInt(1), 6))
	req.Equal("1000", Display(big.NewInt(1000), 0))
	req.Equal("0", Display(nil, 18))
}
