package domain

import (
	"math/big"
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeCurrency is the sentinel currency value meaning "native chain
// currency". Any other currency must be on the currency allow-list.
const NativeCurrency = EmptyAddress

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBig() (*big.Int, bool) {
	if len(i) == 0 {
		return big.NewInt(0), true
	}
	return new(big.Int).SetString(string(i), 10)
}

// ListingId is assigned monotonically at creation, starting at 1, and is
// never reused after deletion.
type ListingId uint64

// FeeDenominator is the denominator of listing fee rates. A fee rate of
// 1000 corresponds to 1%.
const FeeDenominator = 100000
