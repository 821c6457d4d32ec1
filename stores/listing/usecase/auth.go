package usecase

import (
	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/ledger"
	"github.com/openlistings/goengine/domain/listing"
	"github.com/openlistings/goengine/domain/marketplace"
)

type AuthCfg struct {
	Marketplace marketplace.UseCase
	Ledger      ledger.Adapter
}

type authImpl struct {
	marketplace marketplace.UseCase
	ledger      ledger.Adapter
}

func NewAuth(cfg *AuthCfg) listing.AuthUseCase {
	return &authImpl{
		marketplace: cfg.Marketplace,
		ledger:      cfg.Ledger,
	}
}

// CanOperate allows the stored seller, the platform owner, and any address
// the current asset owner has authorized at the ledger level. The owner
// can differ from the stored seller when ownership drifted off-engine, so
// authorization is always re-read live.
func (im *authImpl) CanOperate(ctx ctx.Ctx, l *listing.Listing, caller domain.Address) (bool, error) {
	if caller.Equals(l.Seller) {
		return true, nil
	}
	owner, err := im.marketplace.PlatformOwner(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.PlatformOwner failed")
		return false, err
	}
	if caller.Equals(owner) {
		return true, nil
	}

	asset := l.AssetId()
	holder := l.Seller
	if l.IsUnique() {
		liveOwner, err := im.ledger.OwnerOf(ctx, asset)
		if err != nil {
			ctx.WithField("err", err).Error("ledger.OwnerOf failed")
			return false, err
		}
		if caller.Equals(liveOwner) {
			return true, nil
		}
		holder = liveOwner
	}
	ok, err := im.ledger.IsTransferAuthorized(ctx, holder, caller, asset)
	if err != nil {
		ctx.WithField("err", err).Error("ledger.IsTransferAuthorized failed")
		return false, err
	}
	return ok, nil
}
