package repository

import (
	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/database/mongoclient"
	"github.com/openlistings/goengine/base/log"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/marketplace"
	"github.com/openlistings/goengine/service/query"
)

type collectionMongoRepo struct {
	q query.Mongo
}

func NewCollectionRepo(q query.Mongo) marketplace.CollectionRepo {
	return &collectionMongoRepo{q: q}
}

func (r *collectionMongoRepo) FindOne(ctx bCtx.Ctx, id marketplace.CollectionId) (*marketplace.Collection, error) {
	sel, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &marketplace.Collection{}
	if err := r.q.FindOne(ctx, domain.TableCollections, sel, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *collectionMongoRepo) FindAll(ctx bCtx.Ctx, chainId domain.ChainId) ([]*marketplace.Collection, error) {
	res := []*marketplace.Collection{}
	sel := map[string]interface{}{"chainId": chainId}
	if err := r.q.Search(ctx, domain.TableCollections, 0, 0, "address", sel, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *collectionMongoRepo) Upsert(ctx bCtx.Ctx, c *marketplace.Collection) error {
	sel, err := mongoclient.MakeBsonM(c.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableCollections, sel, c); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  c.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *collectionMongoRepo) Remove(ctx bCtx.Ctx, id marketplace.CollectionId) error {
	sel, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableCollections, sel); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
