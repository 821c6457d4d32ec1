package listing

import (
	"time"

	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
)

type EventType string

const (
	EventCreated     EventType = "created"
	EventUpdated     EventType = "updated"
	EventPurchased   EventType = "purchased"
	EventCanceled    EventType = "canceled"
	EventInvalidated EventType = "invalidated"
	EventRoyaltyPaid EventType = "royaltyPaid"
)

// Event is an emitted listing record. It carries every economically
// relevant field so off-engine observers never need to re-query ledger
// state to reconstruct history.
type Event struct {
	Id           string           `json:"id" bson:"id"`
	Type         EventType        `json:"type" bson:"type"`
	ChainId      domain.ChainId   `json:"chainId" bson:"chainId"`
	ListingId    domain.ListingId `json:"listingId" bson:"listingId"`
	Seller       domain.Address   `json:"seller" bson:"seller"`
	Buyer        domain.Address   `json:"buyer,omitempty" bson:"buyer,omitempty"`
	Cleaner      domain.Address   `json:"cleaner,omitempty" bson:"cleaner,omitempty"`
	TokenAddress domain.Address   `json:"tokenAddress" bson:"tokenAddress"`
	TokenId      domain.TokenId   `json:"tokenId" bson:"tokenId"`
	Quantity     uint64           `json:"quantity" bson:"quantity"`
	Price        string           `json:"price" bson:"price"`
	// DisplayPrice is the price scaled by the currency's decimals, for
	// indexers and bots that render history without chain access.
	DisplayPrice    string         `json:"displayPrice" bson:"displayPrice"`
	Currency        domain.Address `json:"currency" bson:"currency"`
	FeeRate         uint64         `json:"feeRate" bson:"feeRate"`
	Desired         SwapTerms      `json:"desired" bson:"desired"`
	Fee             string         `json:"fee,omitempty" bson:"fee,omitempty"`
	RoyaltyReceiver domain.Address `json:"royaltyReceiver,omitempty" bson:"royaltyReceiver,omitempty"`
	RoyaltyAmount   string         `json:"royaltyAmount,omitempty" bson:"royaltyAmount,omitempty"`
	SellerProceeds  string         `json:"sellerProceeds,omitempty" bson:"sellerProceeds,omitempty"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
}

type EventFindAllOptions struct {
	ListingId *domain.ListingId `bson:"listingId"`
	Type      *EventType        `bson:"type"`
	Seller    *domain.Address   `bson:"seller"`
	Offset    *int32            `bson:"-"`
	Limit     *int32            `bson:"-"`
}

type EventFindAllOptionsFunc func(*EventFindAllOptions) error

func GetEventFindAllOptions(opts ...EventFindAllOptionsFunc) (EventFindAllOptions, error) {
	res := EventFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func EventWithListingId(id domain.ListingId) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.ListingId = &id
		return nil
	}
}

func EventWithType(t EventType) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func EventWithSeller(seller domain.Address) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func EventWithPagination(offset, limit int32) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type EventRepo interface {
	Insert(ctx ctx.Ctx, ev *Event) error
	FindAll(ctx ctx.Ctx, opts ...EventFindAllOptionsFunc) ([]*Event, error)
}
