package usecase

import (
	"golang.org/x/xerrors"

	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/marketplace"
)

type MarketplaceCfg struct {
	CollectionRepo marketplace.CollectionRepo
	CurrencyRepo   marketplace.CurrencyRepo
	SettingsRepo   marketplace.SettingsRepo
}

type impl struct {
	collectionRepo marketplace.CollectionRepo
	currencyRepo   marketplace.CurrencyRepo
	settingsRepo   marketplace.SettingsRepo
}

func New(cfg *MarketplaceCfg) marketplace.UseCase {
	return &impl{
		collectionRepo: cfg.CollectionRepo,
		currencyRepo:   cfg.CurrencyRepo,
		settingsRepo:   cfg.SettingsRepo,
	}
}

func (im *impl) IsCollectionAllowed(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address) (bool, error) {
	_, err := im.collectionRepo.FindOne(ctx, marketplace.CollectionId{ChainId: chainId, Address: collection.ToLower()})
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("collectionRepo.FindOne failed")
		return false, err
	}
	return true, nil
}

func (im *impl) IsCurrencyAllowed(ctx ctx.Ctx, chainId domain.ChainId, currency domain.Address) (bool, error) {
	if currency.IsEmpty() {
		return true, nil
	}
	_, err := im.currencyRepo.FindOne(ctx, marketplace.CurrencyId{ChainId: chainId, Address: currency.ToLower()})
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("currencyRepo.FindOne failed")
		return false, err
	}
	return true, nil
}

func (im *impl) PlatformOwner(ctx ctx.Ctx) (domain.Address, error) {
	s, err := im.settingsRepo.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("settingsRepo.Get failed")
		return domain.EmptyAddress, err
	}
	return s.Owner, nil
}

func (im *impl) FeeRate(ctx ctx.Ctx) (uint64, error) {
	s, err := im.settingsRepo.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("settingsRepo.Get failed")
		return 0, err
	}
	return s.FeeRate, nil
}

func (im *impl) IsPaused(ctx ctx.Ctx) (bool, error) {
	s, err := im.settingsRepo.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("settingsRepo.Get failed")
		return false, err
	}
	return s.Paused, nil
}

func (im *impl) GetCurrency(ctx ctx.Ctx, chainId domain.ChainId, currency domain.Address) (*marketplace.Currency, error) {
	return im.currencyRepo.FindOne(ctx, marketplace.CurrencyId{ChainId: chainId, Address: currency.ToLower()})
}

func (im *impl) ListCollections(ctx ctx.Ctx, chainId domain.ChainId) ([]*marketplace.Collection, error) {
	return im.collectionRepo.FindAll(ctx, chainId)
}

func (im *impl) ListCurrencies(ctx ctx.Ctx, chainId domain.ChainId) ([]*marketplace.Currency, error) {
	return im.currencyRepo.FindAll(ctx, chainId)
}

func (im *impl) AllowCollection(ctx ctx.Ctx, caller domain.Address, collection *marketplace.Collection) error {
	if err := im.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if collection.Address.IsEmpty() {
		return domain.ErrZeroAddress
	}
	collection.Address = collection.Address.ToLower()
	if err := im.collectionRepo.Upsert(ctx, collection); err != nil {
		ctx.WithField("err", err).Error("collectionRepo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) DisallowCollection(ctx ctx.Ctx, caller domain.Address, id marketplace.CollectionId) error {
	if err := im.ensureOwner(ctx, caller); err != nil {
		return err
	}
	id.Address = id.Address.ToLower()
	if err := im.collectionRepo.Remove(ctx, id); err != nil && err != domain.ErrNotFound {
		ctx.WithField("err", err).Error("collectionRepo.Remove failed")
		return err
	}
	return nil
}

func (im *impl) AllowCurrency(ctx ctx.Ctx, caller domain.Address, currency *marketplace.Currency) error {
	if err := im.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if currency.Address.IsEmpty() {
		return domain.ErrZeroAddress
	}
	currency.Address = currency.Address.ToLower()
	if err := im.currencyRepo.Upsert(ctx, currency); err != nil {
		ctx.WithField("err", err).Error("currencyRepo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) DisallowCurrency(ctx ctx.Ctx, caller domain.Address, id marketplace.CurrencyId) error {
	if err := im.ensureOwner(ctx, caller); err != nil {
		return err
	}
	id.Address = id.Address.ToLower()
	if err := im.currencyRepo.Remove(ctx, id); err != nil && err != domain.ErrNotFound {
		ctx.WithField("err", err).Error("currencyRepo.Remove failed")
		return err
	}
	return nil
}

// SetFeeRate stores the rate verbatim. A rate above the denominator is
// not rejected here, it makes every purchase fail the proceeds check.
func (im *impl) SetFeeRate(ctx ctx.Ctx, caller domain.Address, rate uint64) error {
	return im.patchSettings(ctx, caller, func(s *marketplace.Settings) {
		s.FeeRate = rate
	})
}

func (im *impl) SetPaused(ctx ctx.Ctx, caller domain.Address, paused bool) error {
	return im.patchSettings(ctx, caller, func(s *marketplace.Settings) {
		s.Paused = paused
	})
}

func (im *impl) TransferOwnership(ctx ctx.Ctx, caller, newOwner domain.Address) error {
	if newOwner.IsEmpty() {
		return domain.ErrZeroAddress
	}
	return im.patchSettings(ctx, caller, func(s *marketplace.Settings) {
		s.Owner = newOwner.ToLower()
	})
}

func (im *impl) patchSettings(ctx ctx.Ctx, caller domain.Address, patch func(*marketplace.Settings)) error {
	s, err := im.settingsRepo.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("settingsRepo.Get failed")
		return err
	}
	if !s.Owner.Equals(caller) {
		return xerrors.Errorf("settings mutation by %s: %w", caller, domain.ErrNotAuthorized)
	}
	patch(s)
	if err := im.settingsRepo.Upsert(ctx, s); err != nil {
		ctx.WithField("err", err).Error("settingsRepo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) ensureOwner(ctx ctx.Ctx, caller domain.Address) error {
	s, err := im.settingsRepo.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("settingsRepo.Get failed")
		return err
	}
	if !s.Owner.Equals(caller) {
		return xerrors.Errorf("marketplace mutation by %s: %w", caller, domain.ErrNotAuthorized)
	}
	return nil
}
