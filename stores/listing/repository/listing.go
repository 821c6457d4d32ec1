package repository

import (
	"math/big"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/database/mongoclient"
	"github.com/openlistings/goengine/base/log"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/listing"
	"github.com/openlistings/goengine/service/query"
)

// listingDoc is the persisted form of a listing. Price is stored as a
// decimal string since mongo has no 256-bit integer type.
type listingDoc struct {
	ChainId               domain.ChainId    `bson:"chainId"`
	ListingId             domain.ListingId  `bson:"listingId"`
	Seller                domain.Address    `bson:"seller"`
	TokenAddress          domain.Address    `bson:"tokenAddress"`
	TokenId               domain.TokenId    `bson:"tokenId"`
	Quantity              uint64            `bson:"quantity"`
	Price                 string            `bson:"price"`
	Currency              domain.Address    `bson:"currency"`
	FeeRate               uint64            `bson:"feeRate"`
	Desired               listing.SwapTerms `bson:"desired"`
	BuyerWhitelistEnabled bool              `bson:"buyerWhitelistEnabled"`
	PartialBuyEnabled     bool              `bson:"partialBuyEnabled"`
	CreatedAt             time.Time         `bson:"createdAt"`
	UpdatedAt             time.Time         `bson:"updatedAt"`
}

func toDoc(l *listing.Listing) *listingDoc {
	price := "0"
	if l.Price != nil {
		price = l.Price.String()
	}
	return &listingDoc{
		ChainId:               l.ChainId,
		ListingId:             l.ListingId,
		Seller:                l.Seller,
		TokenAddress:          l.TokenAddress,
		TokenId:               l.TokenId,
		Quantity:              l.Quantity,
		Price:                 price,
		Currency:              l.Currency,
		FeeRate:               l.FeeRate,
		Desired:               l.Desired,
		BuyerWhitelistEnabled: l.BuyerWhitelistEnabled,
		PartialBuyEnabled:     l.PartialBuyEnabled,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
}

func fromDoc(d *listingDoc) (*listing.Listing, error) {
	price, ok := new(big.Int).SetString(d.Price, 10)
	if !ok {
		return nil, xerrors.Errorf("malformed stored price %q for listing %d", d.Price, d.ListingId)
	}
	return &listing.Listing{
		ChainId:               d.ChainId,
		ListingId:             d.ListingId,
		Seller:                d.Seller,
		TokenAddress:          d.TokenAddress,
		TokenId:               d.TokenId,
		Quantity:              d.Quantity,
		Price:                 price,
		Currency:              d.Currency,
		FeeRate:               d.FeeRate,
		Desired:               d.Desired,
		BuyerWhitelistEnabled: d.BuyerWhitelistEnabled,
		PartialBuyEnabled:     d.PartialBuyEnabled,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}, nil
}

type counterDoc struct {
	Name string           `bson:"name"`
	Seq  domain.ListingId `bson:"seq"`
}

type listingMongoRepo struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingMongoRepo{q: q}
}

func (r *listingMongoRepo) NextId(ctx bCtx.Ctx) (domain.ListingId, error) {
	res := &counterDoc{}
	selector := counterDoc{Name: "listings"}
	sel, err := mongoclient.MakeBsonM(&selector)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return 0, err
	}
	if err := r.q.Increment(ctx, domain.TableCounters, sel, res, "seq", 1); err != nil {
		ctx.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return res.Seq, nil
}

func (r *listingMongoRepo) FindOne(ctx bCtx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	doc := &listingDoc{}
	if err := r.q.FindOne(ctx, domain.TableListings, listingSelector(id), doc); err == query.ErrNotFound {
		return nil, domain.ErrNotListed
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return fromDoc(doc)
}

func (r *listingMongoRepo) Exists(ctx bCtx.Ctx, id domain.ListingId) (bool, error) {
	n, err := r.q.Count(ctx, domain.TableListings, listingSelector(id))
	if err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return false, err
	}
	return n > 0, nil
}

func (r *listingMongoRepo) FindAll(ctx bCtx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}
	offset, limit, sort := 0, 0, "listingId"
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	if opts.SortBy != nil && opts.SortDir != nil {
		sort = *opts.SortBy
		if *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}
	sel, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	docs := []*listingDoc{}
	if err := r.q.Search(ctx, domain.TableListings, offset, limit, sort, sel, &docs); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	res := make([]*listing.Listing, 0, len(docs))
	for _, d := range docs {
		l, err := fromDoc(d)
		if err != nil {
			ctx.WithField("err", err).Error("fromDoc failed")
			return nil, err
		}
		res = append(res, l)
	}
	return res, nil
}

func (r *listingMongoRepo) Count(ctx bCtx.Ctx, optFns ...listing.FindAllOptionsFunc) (int, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return 0, err
	}
	sel, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return 0, err
	}
	n, err := r.q.Count(ctx, domain.TableListings, sel)
	if err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

func (r *listingMongoRepo) Insert(ctx bCtx.Ctx, l *listing.Listing) error {
	if err := r.q.Insert(ctx, domain.TableListings, toDoc(l)); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *listingMongoRepo) Update(ctx bCtx.Ctx, l *listing.Listing) error {
	if err := r.q.Patch(ctx, domain.TableListings, listingSelector(l.ListingId), toDoc(l)); err == query.ErrNotFound {
		return domain.ErrNotListed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *listingMongoRepo) Remove(ctx bCtx.Ctx, id domain.ListingId) error {
	if err := r.q.Remove(ctx, domain.TableListings, listingSelector(id)); err == query.ErrNotFound {
		return domain.ErrNotListed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}

func listingSelector(id domain.ListingId) map[string]interface{} {
	return map[string]interface{}{"listingId": id}
}
