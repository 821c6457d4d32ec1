package marketplace

import (
	"time"

	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
)

// Collection is an allow-listed asset contract.
type Collection struct {
	ChainId domain.ChainId `json:"chainId" bson:"chainId"`
	Address domain.Address `json:"address" bson:"address"`
	Name    string         `json:"name" bson:"name"`
	AddedAt time.Time      `json:"addedAt" bson:"addedAt"`
}

func (c *Collection) ToId() *CollectionId {
	return &CollectionId{ChainId: c.ChainId, Address: c.Address}
}

type CollectionId struct {
	ChainId domain.ChainId `bson:"chainId"`
	Address domain.Address `bson:"address"`
}

// Currency is an allow-listed fungible payment asset. The native chain
// currency is always allowed and never stored here.
type Currency struct {
	ChainId  domain.ChainId `json:"chainId" bson:"chainId"`
	Address  domain.Address `json:"address" bson:"address"`
	Symbol   string         `json:"symbol" bson:"symbol"`
	Decimals int32          `json:"decimals" bson:"decimals"`
	AddedAt  time.Time      `json:"addedAt" bson:"addedAt"`
}

func (c *Currency) ToId() *CurrencyId {
	return &CurrencyId{ChainId: c.ChainId, Address: c.Address}
}

type CurrencyId struct {
	ChainId domain.ChainId `bson:"chainId"`
	Address domain.Address `bson:"address"`
}

// Settings is the platform-wide configuration. FeeRate is deliberately not
// clamped at write time: a rate above domain.FeeDenominator surfaces as a
// proceeds-exceeded failure on purchase instead.
type Settings struct {
	Owner   domain.Address `json:"owner" bson:"owner"`
	FeeRate uint64         `json:"feeRate" bson:"feeRate"`
	Paused  bool           `json:"paused" bson:"paused"`
}

type CollectionRepo interface {
	FindOne(ctx.Ctx, CollectionId) (*Collection, error)
	FindAll(ctx.Ctx, domain.ChainId) ([]*Collection, error)
	Upsert(ctx.Ctx, *Collection) error
	Remove(ctx.Ctx, CollectionId) error
}

type CurrencyRepo interface {
	FindOne(ctx.Ctx, CurrencyId) (*Currency, error)
	FindAll(ctx.Ctx, domain.ChainId) ([]*Currency, error)
	Upsert(ctx.Ctx, *Currency) error
	Remove(ctx.Ctx, CurrencyId) error
}

type SettingsRepo interface {
	Get(ctx.Ctx) (*Settings, error)
	Upsert(ctx.Ctx, *Settings) error
}

// UseCase is the engine's view of platform administration: allow-list
// membership, platform owner, current fee rate, and the pause switch.
type UseCase interface {
	IsCollectionAllowed(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address) (bool, error)
	IsCurrencyAllowed(ctx ctx.Ctx, chainId domain.ChainId, currency domain.Address) (bool, error)
	PlatformOwner(ctx ctx.Ctx) (domain.Address, error)
	FeeRate(ctx ctx.Ctx) (uint64, error)
	IsPaused(ctx ctx.Ctx) (bool, error)

	GetCurrency(ctx ctx.Ctx, chainId domain.ChainId, currency domain.Address) (*Currency, error)
	ListCollections(ctx ctx.Ctx, chainId domain.ChainId) ([]*Collection, error)
	ListCurrencies(ctx ctx.Ctx, chainId domain.ChainId) ([]*Currency, error)

	AllowCollection(ctx ctx.Ctx, caller domain.Address, collection *Collection) error
	DisallowCollection(ctx ctx.Ctx, caller domain.Address, id CollectionId) error
	AllowCurrency(ctx ctx.Ctx, caller domain.Address, currency *Currency) error
	DisallowCurrency(ctx ctx.Ctx, caller domain.Address, id CurrencyId) error
	SetFeeRate(ctx ctx.Ctx, caller domain.Address, rate uint64) error
	SetPaused(ctx ctx.Ctx, caller domain.Address, paused bool) error
	TransferOwnership(ctx ctx.Ctx, caller, newOwner domain.Address) error
}
