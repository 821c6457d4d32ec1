package usecase

import (
	"golang.org/x/xerrors"

	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/log"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/listing"
	"github.com/openlistings/goengine/domain/whitelist"
)

type WhitelistCfg struct {
	WhitelistRepo whitelist.Repo
	ListingRepo   listing.Repo
	Auth          listing.AuthUseCase
	MaxBatch      int
}

type impl struct {
	whitelistRepo whitelist.Repo
	listingRepo   listing.Repo
	auth          listing.AuthUseCase
	maxBatch      int
}

func New(cfg *WhitelistCfg) whitelist.UseCase {
	return &impl{
		whitelistRepo: cfg.WhitelistRepo,
		listingRepo:   cfg.ListingRepo,
		auth:          cfg.Auth,
		maxBatch:      cfg.MaxBatch,
	}
}

func (im *impl) Add(ctx ctx.Ctx, id domain.ListingId, caller domain.Address, addrs []domain.Address) error {
	addrs, err := im.authorizeMutation(ctx, id, caller, addrs)
	if err != nil {
		return err
	}
	if err := im.whitelistRepo.Add(ctx, id, addrs); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("whitelistRepo.Add failed")
		return err
	}
	return nil
}

func (im *impl) Remove(ctx ctx.Ctx, id domain.ListingId, caller domain.Address, addrs []domain.Address) error {
	addrs, err := im.authorizeMutation(ctx, id, caller, addrs)
	if err != nil {
		return err
	}
	if err := im.whitelistRepo.Remove(ctx, id, addrs); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("whitelistRepo.Remove failed")
		return err
	}
	return nil
}

func (im *impl) IsWhitelisted(ctx ctx.Ctx, id domain.ListingId, addr domain.Address) (bool, error) {
	return im.whitelistRepo.Exists(ctx, id, addr.ToLower())
}

func (im *impl) FindAll(ctx ctx.Ctx, id domain.ListingId) ([]domain.Address, error) {
	return im.whitelistRepo.FindAll(ctx, id)
}

// authorizeMutation validates the batch, checks the listing exists, and
// applies the same live authorization rule as cancel. The listing itself
// may have gone invalid; only authorization matters here.
func (im *impl) authorizeMutation(ctx ctx.Ctx, id domain.ListingId, caller domain.Address, addrs []domain.Address) ([]domain.Address, error) {
	if err := whitelist.ValidateBatch(addrs, im.maxBatch); err != nil {
		return nil, err
	}
	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	caller = caller.ToLower()
	ok, err := im.auth.CanOperate(ctx, l, caller)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.Errorf("whitelist mutation on listing %d by %s: %w", id, caller, domain.ErrNotAuthorized)
	}
	lowered := make([]domain.Address, len(addrs))
	for i, a := range addrs {
		lowered[i] = a.ToLower()
	}
	return lowered, nil
}
