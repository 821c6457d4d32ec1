package listing

import (
	"math/big"
	"time"

	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/ledger"
)

// SwapTerms is the optional second asset a seller demands in exchange.
// All-zero terms mean "cash sale only".
type SwapTerms struct {
	TokenAddress domain.Address `json:"tokenAddress" bson:"tokenAddress"`
	TokenId      domain.TokenId `json:"tokenId" bson:"tokenId"`
	// Quantity follows the same sentinel convention as the listing: 0 for
	// a unique desired asset, >0 for fungible units.
	Quantity uint64 `json:"quantity" bson:"quantity"`
}

func (s SwapTerms) IsZero() bool {
	return s.TokenAddress.IsEmpty() && len(s.TokenId) == 0 && s.Quantity == 0
}

func (s SwapTerms) Equals(o SwapTerms) bool {
	return s.TokenAddress.Equals(o.TokenAddress) && s.TokenId == o.TokenId && s.Quantity == o.Quantity
}

func (s *SwapTerms) LowerCase() {
	s.TokenAddress = s.TokenAddress.ToLower()
}

// Listing is an offer to sell or swap a specific quantity of one asset.
//
// Quantity 0 is a sentinel meaning "unique asset" and the kind can never
// flip during the listing's life. Price is the total price for the full
// remaining quantity; partial purchases decrement both proportionally.
type Listing struct {
	ChainId      domain.ChainId   `json:"chainId" bson:"chainId"`
	ListingId    domain.ListingId `json:"listingId" bson:"listingId"`
	Seller       domain.Address   `json:"seller" bson:"seller"`
	TokenAddress domain.Address   `json:"tokenAddress" bson:"tokenAddress"`
	TokenId      domain.TokenId   `json:"tokenId" bson:"tokenId"`
	Quantity     uint64           `json:"quantity" bson:"quantity"`
	Price        *big.Int         `json:"price" bson:"-"`
	Currency     domain.Address   `json:"currency" bson:"currency"`
	// FeeRate is snapshotted from the platform rate at create/update time.
	// Purchases always use this stored rate.
	FeeRate               uint64    `json:"feeRate" bson:"feeRate"`
	Desired               SwapTerms `json:"desired" bson:"desired"`
	BuyerWhitelistEnabled bool      `json:"buyerWhitelistEnabled" bson:"buyerWhitelistEnabled"`
	PartialBuyEnabled     bool      `json:"partialBuyEnabled" bson:"partialBuyEnabled"`
	CreatedAt             time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) IsUnique() bool {
	return l.Quantity == 0
}

func (l *Listing) HasSwap() bool {
	return !l.Desired.IsZero()
}

// Units is the transferable unit count, 1 for unique assets.
func (l *Listing) Units() uint64 {
	if l.IsUnique() {
		return 1
	}
	return l.Quantity
}

func (l *Listing) AssetId() ledger.AssetId {
	return ledger.AssetId{ChainId: l.ChainId, TokenAddress: l.TokenAddress, TokenId: l.TokenId}
}

func (l *Listing) DesiredAssetId() ledger.AssetId {
	return ledger.AssetId{ChainId: l.ChainId, TokenAddress: l.Desired.TokenAddress, TokenId: l.Desired.TokenId}
}

func (l *Listing) LowerCase() {
	l.Seller = l.Seller.ToLower()
	l.TokenAddress = l.TokenAddress.ToLower()
	l.Currency = l.Currency.ToLower()
	l.Desired.LowerCase()
}

// CreateReq carries the seller-side parameters of a new listing.
type CreateReq struct {
	ChainId      domain.ChainId `json:"chainId"`
	Caller       domain.Address `json:"caller"`
	TokenAddress domain.Address `json:"tokenAddress"`
	TokenId      domain.TokenId `json:"tokenId"`
	Quantity     uint64         `json:"quantity"`
	Price        *big.Int       `json:"price"`
	Currency     domain.Address `json:"currency"`
	Desired      SwapTerms      `json:"desired"`
	// Holder names the fungible-asset balance holder when the caller acts
	// on the holder's behalf. Empty means the caller holds the balance.
	Holder                domain.Address   `json:"holder"`
	BuyerWhitelistEnabled bool             `json:"buyerWhitelistEnabled"`
	Whitelist             []domain.Address `json:"whitelist"`
	PartialBuyEnabled     bool             `json:"partialBuyEnabled"`
}

// UpdateReq mutates a listing in place. The listed asset and its
// unique/fungible kind are immutable; everything else is re-validated the
// same way as create and the fee rate is re-snapshotted.
type UpdateReq struct {
	ListingId             domain.ListingId `json:"listingId"`
	Caller                domain.Address   `json:"caller"`
	Quantity              uint64           `json:"quantity"`
	Price                 *big.Int         `json:"price"`
	Currency              domain.Address   `json:"currency"`
	Desired               SwapTerms        `json:"desired"`
	Holder                domain.Address   `json:"holder"`
	BuyerWhitelistEnabled bool             `json:"buyerWhitelistEnabled"`
	Whitelist             []domain.Address `json:"whitelist"`
	PartialBuyEnabled     bool             `json:"partialBuyEnabled"`
}

// ExpectedTerms is the buyer's copy of every mutable listing term. A buy
// aborts with ErrTermsChanged unless all of them still match the stored
// listing, so a broadcast purchase cannot be redirected onto different
// terms by a last-moment update.
type ExpectedTerms struct {
	Price    *big.Int       `json:"price"`
	Currency domain.Address `json:"currency"`
	Quantity uint64         `json:"quantity"`
	Desired  SwapTerms      `json:"desired"`
}

func (t ExpectedTerms) Matches(l *Listing) bool {
	if t.Price == nil || l.Price == nil || t.Price.Cmp(l.Price) != 0 {
		return false
	}
	return t.Currency.Equals(l.Currency) && t.Quantity == l.Quantity && t.Desired.Equals(l.Desired)
}

// BuyReq is one purchase attempt against a listing.
type BuyReq struct {
	ListingId domain.ListingId `json:"listingId"`
	Buyer     domain.Address   `json:"buyer"`
	// Quantity requested: must be 0 for unique assets, and for fungible
	// assets must equal the full remaining quantity unless partial buy is
	// enabled.
	Quantity uint64        `json:"quantity"`
	Expected ExpectedTerms `json:"expected"`
	// Value is the native currency attached to the call. It must equal the
	// purchased portion's price exactly for native listings and be zero
	// otherwise.
	Value *big.Int `json:"value"`
	// DesiredHolder names the address actually holding the desired
	// fungible asset of a swap leg. Empty means the buyer holds it.
	DesiredHolder domain.Address `json:"desiredHolder"`
}

// Receipt reports one settled purchase.
type Receipt struct {
	ListingId      domain.ListingId `json:"listingId"`
	Seller         domain.Address   `json:"seller"`
	Buyer          domain.Address   `json:"buyer"`
	Quantity       uint64           `json:"quantity"`
	Price          *big.Int         `json:"price"`
	Fee            *big.Int         `json:"fee"`
	Royalty        *ledger.Royalty  `json:"royalty,omitempty"`
	SellerProceeds *big.Int         `json:"sellerProceeds"`
	// Remaining is nil when the purchase consumed the listing.
	Remaining *Listing `json:"remaining,omitempty"`
}

type FindAllOptions struct {
	ChainId      *domain.ChainId `bson:"chainId"`
	Seller       *domain.Address `bson:"seller"`
	TokenAddress *domain.Address `bson:"tokenAddress"`
	TokenId      *domain.TokenId `bson:"tokenId"`
	Currency     *domain.Address `bson:"currency"`
	Offset       *int32          `bson:"-"`
	Limit        *int32          `bson:"-"`
	SortBy       *string         `bson:"-"`
	SortDir      *domain.SortDir `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithToken(tokenAddress domain.Address, tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TokenAddress = tokenAddress.ToLowerPtr()
		options.TokenId = &tokenId
		return nil
	}
}

func WithCollection(tokenAddress domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TokenAddress = tokenAddress.ToLowerPtr()
		return nil
	}
}

func WithCurrency(currency domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Currency = currency.ToLowerPtr()
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sortBy string, sortDir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		options.SortDir = &sortDir
		return nil
	}
}

// Repo is the authoritative listing store. FindOne returns
// domain.ErrNotListed for absent ids.
type Repo interface {
	// NextId reserves and returns the next monotonic listing id.
	NextId(ctx ctx.Ctx) (domain.ListingId, error)
	FindOne(ctx ctx.Ctx, id domain.ListingId) (*Listing, error)
	Exists(ctx ctx.Ctx, id domain.ListingId) (bool, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(ctx ctx.Ctx, l *Listing) error
	Update(ctx ctx.Ctx, l *Listing) error
	Remove(ctx ctx.Ctx, id domain.ListingId) error
}

// UseCase is the settlement engine.
type UseCase interface {
	Create(ctx ctx.Ctx, req *CreateReq) (domain.ListingId, error)
	Update(ctx ctx.Ctx, req *UpdateReq) error
	Buy(ctx ctx.Ctx, req *BuyReq) (*Receipt, error)
	Cancel(ctx ctx.Ctx, id domain.ListingId, caller domain.Address) error
	// Clean is permissionless invalidation cleanup: it deletes a listing
	// that has become invalid and aborts with ErrStillValid otherwise.
	Clean(ctx ctx.Ctx, id domain.ListingId, caller domain.Address) error
	Get(ctx ctx.Ctx, id domain.ListingId) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}

// ValidityUseCase decides whether a listing is still fulfillable against
// live ledger state. It has no side effects.
type ValidityUseCase interface {
	// Check returns nil for a fulfillable listing, or the precise failure
	// kind: ErrCollectionNotAllowed, ErrCurrencyNotAllowed,
	// ErrInsufficientBalance (as *InsufficientBalanceError) or
	// ErrAuthorizationLost.
	Check(ctx ctx.Ctx, l *Listing) error
	IsValid(ctx ctx.Ctx, l *Listing) (bool, error)
}

// AuthUseCase answers whether a caller may cancel a listing or mutate its
// whitelist: the stored seller, the platform owner, or an address the
// current asset owner has authorized at the ledger level. Authorization is
// re-checked live, never cached.
type AuthUseCase interface {
	CanOperate(ctx ctx.Ctx, l *Listing, caller domain.Address) (bool, error)
}
