package ledger

import (
	"math/big"

	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
)

// Kind is the asset standard probed from the ledger.
type Kind int

const (
	KindUnsupported Kind = iota
	// KindUnique is an asset whose ownership is all-or-nothing per id.
	KindUnique
	// KindFungible is an asset where multiple interchangeable units share
	// one id and a balance applies.
	KindFungible
)

func (k Kind) String() string {
	switch k {
	case KindUnique:
		return "unique"
	case KindFungible:
		return "fungible"
	}
	return "unsupported"
}

// AssetId identifies one asset on one chain.
type AssetId struct {
	ChainId      domain.ChainId `json:"chainId" bson:"chainId"`
	TokenAddress domain.Address `json:"tokenAddress" bson:"tokenAddress"`
	TokenId      domain.TokenId `json:"tokenId" bson:"tokenId"`
}

// Royalty is the receiver/amount pair returned by a royalty-aware asset.
type Royalty struct {
	Receiver domain.Address
	Amount   *big.Int
}

func (r *Royalty) IsZero() bool {
	return r == nil || r.Receiver.IsEmpty() || r.Amount == nil || r.Amount.Sign() == 0
}

// Adapter exposes the external asset ledger. The ledger is independently
// mutable, so callers must re-issue reads immediately before relying on
// them and never cache results across a call boundary.
type Adapter interface {
	// OwnerOf returns the current owner of a unique asset.
	OwnerOf(ctx ctx.Ctx, asset AssetId) (domain.Address, error)
	// BalanceOf returns the holder's balance of a fungible asset.
	BalanceOf(ctx ctx.Ctx, holder domain.Address, asset AssetId) (uint64, error)
	// IsTransferAuthorized reports whether operator may move the holder's
	// asset, accepting both per-asset and blanket authorization forms.
	IsTransferAuthorized(ctx ctx.Ctx, holder, operator domain.Address, asset AssetId) (bool, error)
	// Transfer moves quantity units (1 for unique assets) from from to to.
	// Failure is surfaced as an asset-identifying error and must abort the
	// calling operation.
	Transfer(ctx ctx.Ctx, from, to domain.Address, asset AssetId, quantity uint64) error
	// ProbeKind reports the asset standard backing the asset.
	ProbeKind(ctx ctx.Ctx, asset AssetId) (Kind, error)
	// RoyaltyInfo queries the asset's royalty terms for a sale amount. A
	// nil royalty means the asset is not royalty-aware. An error aborts
	// the calling purchase.
	RoyaltyInfo(ctx ctx.Ctx, asset AssetId, saleAmount *big.Int) (*Royalty, error)
}

// PaymentAdapter settles currency legs. The engine is non-custodial: every
// leg moves value straight from the buyer to its recipient.
type PaymentAdapter interface {
	// TransferNative pays amount of the native chain currency, drawn from
	// the value attached to the in-flight settlement, to to.
	TransferNative(ctx ctx.Ctx, chainId domain.ChainId, to domain.Address, amount *big.Int) error
	// Transfer pulls amount of a fungible payment currency from from and
	// pays it to to.
	Transfer(ctx ctx.Ctx, chainId domain.ChainId, currency domain.Address, from, to domain.Address, amount *big.Int) error
}
