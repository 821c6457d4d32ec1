package repository

import (
	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/database/mongoclient"
	"github.com/openlistings/goengine/base/log"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/listing"
	"github.com/openlistings/goengine/service/query"
)

type eventMongoRepo struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) listing.EventRepo {
	return &eventMongoRepo{q: q}
}

func (r *eventMongoRepo) Insert(ctx bCtx.Ctx, ev *listing.Event) error {
	if err := r.q.Insert(ctx, domain.TableListingEvents, ev); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": ev.ListingId,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *eventMongoRepo) FindAll(ctx bCtx.Ctx, optFns ...listing.EventFindAllOptionsFunc) ([]*listing.Event, error) {
	opts, err := listing.GetEventFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("listing.GetEventFindAllOptions failed")
		return nil, err
	}
	offset, limit := 0, 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	sel, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := []*listing.Event{}
	if err := r.q.Search(ctx, domain.TableListingEvents, offset, limit, "-createdAt", sel, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
