package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/marketplace"
	"github.com/openlistings/goengine/service/query"
)

const settingsKey = "platform"

// settingsDoc pins the platform settings to a single well-known document.
type settingsDoc struct {
	Key     string         `bson:"key"`
	Owner   domain.Address `bson:"owner"`
	FeeRate uint64         `bson:"feeRate"`
	Paused  bool           `bson:"paused"`
}

type settingsMongoRepo struct {
	q query.Mongo
}

func NewSettingsRepo(q query.Mongo) marketplace.SettingsRepo {
	return &settingsMongoRepo{q: q}
}

func (r *settingsMongoRepo) Get(ctx bCtx.Ctx) (*marketplace.Settings, error) {
	doc := &settingsDoc{}
	if err := r.q.FindOne(ctx, domain.TableSettings, bson.M{"key": settingsKey}, doc); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &marketplace.Settings{Owner: doc.Owner, FeeRate: doc.FeeRate, Paused: doc.Paused}, nil
}

func (r *settingsMongoRepo) Upsert(ctx bCtx.Ctx, s *marketplace.Settings) error {
	doc := &settingsDoc{Key: settingsKey, Owner: s.Owner, FeeRate: s.FeeRate, Paused: s.Paused}
	if err := r.q.Upsert(ctx, domain.TableSettings, bson.M{"key": settingsKey}, doc); err != nil {
		ctx.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
