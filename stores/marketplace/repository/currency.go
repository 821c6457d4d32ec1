package repository

import (
	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/database/mongoclient"
	"github.com/openlistings/goengine/base/log"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/marketplace"
	"github.com/openlistings/goengine/service/query"
)

type currencyMongoRepo struct {
	q query.Mongo
}

func NewCurrencyRepo(q query.Mongo) marketplace.CurrencyRepo {
	return &currencyMongoRepo{q: q}
}

func (r *currencyMongoRepo) FindOne(ctx bCtx.Ctx, id marketplace.CurrencyId) (*marketplace.Currency, error) {
	sel, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &marketplace.Currency{}
	if err := r.q.FindOne(ctx, domain.TableCurrencies, sel, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *currencyMongoRepo) FindAll(ctx bCtx.Ctx, chainId domain.ChainId) ([]*marketplace.Currency, error) {
	res := []*marketplace.Currency{}
	sel := map[string]interface{}{"chainId": chainId}
	if err := r.q.Search(ctx, domain.TableCurrencies, 0, 0, "symbol", sel, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *currencyMongoRepo) Upsert(ctx bCtx.Ctx, c *marketplace.Currency) error {
	sel, err := mongoclient.MakeBsonM(c.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableCurrencies, sel, c); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  c.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *currencyMongoRepo) Remove(ctx bCtx.Ctx, id marketplace.CurrencyId) error {
	sel, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableCurrencies, sel); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
