package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/log"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/whitelist"
	"github.com/openlistings/goengine/service/query"
)

type whitelistMongoRepo struct {
	q query.Mongo
}

func NewWhitelistRepo(q query.Mongo) whitelist.Repo {
	return &whitelistMongoRepo{q: q}
}

// Add upserts entries keyed on (listingId, address) so re-adding an
// address is a no-op.
func (r *whitelistMongoRepo) Add(ctx bCtx.Ctx, id domain.ListingId, addrs []domain.Address) error {
	now := time.Now()
	ops := make([]query.UpsertOp, 0, len(addrs))
	for _, a := range addrs {
		ops = append(ops, query.UpsertOp{
			Selector: bson.M{"listingId": id, "address": a},
			Updater: whitelist.Entry{
				ListingId: id,
				Address:   a,
				CreatedAt: now,
			},
		})
	}
	if _, _, err := r.q.BulkUpsert(ctx, domain.TableWhitelists, ops); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("q.BulkUpsert failed")
		return err
	}
	return nil
}

func (r *whitelistMongoRepo) Remove(ctx bCtx.Ctx, id domain.ListingId, addrs []domain.Address) error {
	sel := bson.M{"listingId": id, "address": bson.M{"$in": addrs}}
	if _, err := r.q.RemoveAll(ctx, domain.TableWhitelists, sel); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("q.RemoveAll failed")
		return err
	}
	return nil
}

func (r *whitelistMongoRepo) Exists(ctx bCtx.Ctx, id domain.ListingId, addr domain.Address) (bool, error) {
	n, err := r.q.Count(ctx, domain.TableWhitelists, bson.M{"listingId": id, "address": addr})
	if err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return false, err
	}
	return n > 0, nil
}

func (r *whitelistMongoRepo) FindAll(ctx bCtx.Ctx, id domain.ListingId) ([]domain.Address, error) {
	entries := []*whitelist.Entry{}
	if err := r.q.Search(ctx, domain.TableWhitelists, 0, 0, "createdAt", bson.M{"listingId": id}, &entries); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	res := make([]domain.Address, 0, len(entries))
	for _, e := range entries {
		res = append(res, e.Address)
	}
	return res, nil
}

func (r *whitelistMongoRepo) RemoveAllByListing(ctx bCtx.Ctx, id domain.ListingId) error {
	if _, err := r.q.RemoveAll(ctx, domain.TableWhitelists, bson.M{"listingId": id}); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("q.RemoveAll failed")
		return err
	}
	return nil
}
