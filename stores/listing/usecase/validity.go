package usecase

import (
	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/ledger"
	"github.com/openlistings/goengine/domain/listing"
	"github.com/openlistings/goengine/domain/marketplace"
)

type ValidityCfg struct {
	Marketplace marketplace.UseCase
	Ledger      ledger.Adapter
	// Operator is the engine's ledger identity, the operator sellers must
	// keep authorized for a listing to stay fulfillable.
	Operator domain.Address
}

type validityImpl struct {
	marketplace marketplace.UseCase
	ledger      ledger.Adapter
	operator    domain.Address
}

func NewValidity(cfg *ValidityCfg) listing.ValidityUseCase {
	return &validityImpl{
		marketplace: cfg.Marketplace,
		ledger:      cfg.Ledger,
		operator:    cfg.Operator.ToLower(),
	}
}

// Check re-reads every precondition against live state: allow-list
// membership, ownership or balance, and the engine's transfer
// authorization. It never caches and has no side effects.
func (im *validityImpl) Check(ctx ctx.Ctx, l *listing.Listing) error {
	allowed, err := im.marketplace.IsCollectionAllowed(ctx, l.ChainId, l.TokenAddress)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.IsCollectionAllowed failed")
		return err
	}
	if !allowed {
		return domain.ErrCollectionNotAllowed
	}
	if !l.Currency.IsEmpty() {
		allowed, err := im.marketplace.IsCurrencyAllowed(ctx, l.ChainId, l.Currency)
		if err != nil {
			ctx.WithField("err", err).Error("marketplace.IsCurrencyAllowed failed")
			return err
		}
		if !allowed {
			return domain.ErrCurrencyNotAllowed
		}
	}

	asset := l.AssetId()
	if l.IsUnique() {
		owner, err := im.ledger.OwnerOf(ctx, asset)
		if err != nil {
			ctx.WithField("err", err).Error("ledger.OwnerOf failed")
			return err
		}
		if !owner.Equals(l.Seller) {
			return &listing.InsufficientBalanceError{Required: 1, Available: 0}
		}
	} else {
		balance, err := im.ledger.BalanceOf(ctx, l.Seller, asset)
		if err != nil {
			ctx.WithField("err", err).Error("ledger.BalanceOf failed")
			return err
		}
		if balance < l.Quantity {
			return &listing.InsufficientBalanceError{Required: l.Quantity, Available: balance}
		}
	}

	ok, err := im.ledger.IsTransferAuthorized(ctx, l.Seller, im.operator, asset)
	if err != nil {
		ctx.WithField("err", err).Error("ledger.IsTransferAuthorized failed")
		return err
	}
	if !ok {
		return domain.ErrAuthorizationLost
	}
	return nil
}

func (im *validityImpl) IsValid(ctx ctx.Ctx, l *listing.Listing) (bool, error) {
	err := im.Check(ctx, l)
	if err == nil {
		return true, nil
	}
	if isInvalidityKind(err) {
		return false, nil
	}
	return false, err
}
