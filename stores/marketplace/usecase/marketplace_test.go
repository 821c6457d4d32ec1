package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/marketplace"
	"github.com/openlistings/goengine/domain/marketplace/mocks"
)

const (
	owner    = domain.Address("0x00000000000000000000000000000000000000aa")
	stranger = domain.Address("0x00000000000000000000000000000000000000bb")
	nft      = domain.Address("0x0000000000000000000000000000000000000301")
	erc20    = domain.Address("0x0000000000000000000000000000000000000401")
	chainId  = domain.ChainId(1)
)

type marketplaceMocks struct {
	collections *mocks.CollectionRepo
	currencies  *mocks.CurrencyRepo
	settings    *mocks.SettingsRepo
}

func newTestMarketplace() (marketplace.UseCase, *marketplaceMocks) {
	m := &marketplaceMocks{
		collections: new(mocks.CollectionRepo),
		currencies:  new(mocks.CurrencyRepo),
		settings:    new(mocks.SettingsRepo),
	}
	uc := New(&MarketplaceCfg{
		CollectionRepo: m.collections,
		CurrencyRepo:   m.currencies,
		SettingsRepo:   m.settings,
	})
	return uc, m
}

func ownerSettings() *marketplace.Settings {
	return &marketplace.Settings{Owner: owner, FeeRate: 2500}
}

func TestAllowLists(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("collection membership", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.collections.On("FindOne", mock.Anything, marketplace.CollectionId{ChainId: chainId, Address: nft}).
			Return(&marketplace.Collection{ChainId: chainId, Address: nft}, nil)

		ok, err := uc.IsCollectionAllowed(ctx, chainId, nft)
		req.NoError(err)
		req.True(ok)
	})

	t.Run("absent collection", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.collections.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

		ok, err := uc.IsCollectionAllowed(ctx, chainId, nft)
		req.NoError(err)
		req.False(ok)
	})

	t.Run("native currency always allowed", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()

		ok, err := uc.IsCurrencyAllowed(ctx, chainId, domain.NativeCurrency)
		req.NoError(err)
		req.True(ok)
		m.currencies.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	})

	t.Run("erc20 membership", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.currencies.On("FindOne", mock.Anything, marketplace.CurrencyId{ChainId: chainId, Address: erc20}).
			Return(nil, domain.ErrNotFound)

		ok, err := uc.IsCurrencyAllowed(ctx, chainId, erc20)
		req.NoError(err)
		req.False(ok)
	})
}

func TestAdminMutations(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("owner allows collection", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.settings.On("Get", mock.Anything).Return(ownerSettings(), nil)
		m.collections.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		req.NoError(uc.AllowCollection(ctx, owner, &marketplace.Collection{ChainId: chainId, Address: nft}))
		m.collections.AssertExpectations(t)
	})

	t.Run("stranger cannot mutate", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.settings.On("Get", mock.Anything).Return(ownerSettings(), nil)

		err := uc.AllowCollection(ctx, stranger, &marketplace.Collection{ChainId: chainId, Address: nft})
		req.ErrorIs(err, domain.ErrNotAuthorized)
		m.collections.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("zero address collection", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.settings.On("Get", mock.Anything).Return(ownerSettings(), nil)

		err := uc.AllowCollection(ctx, owner, &marketplace.Collection{ChainId: chainId})
		req.ErrorIs(err, domain.ErrZeroAddress)
	})

	t.Run("disallow is idempotent", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.settings.On("Get", mock.Anything).Return(ownerSettings(), nil)
		m.collections.On("Remove", mock.Anything, mock.Anything).Return(domain.ErrNotFound)

		req.NoError(uc.DisallowCollection(ctx, owner, marketplace.CollectionId{ChainId: chainId, Address: nft}))
	})

	t.Run("fee rate above denominator is stored verbatim", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.settings.On("Get", mock.Anything).Return(ownerSettings(), nil)
		var saved *marketplace.Settings
		m.settings.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*marketplace.Settings)
		}).Return(nil)

		req.NoError(uc.SetFeeRate(ctx, owner, domain.FeeDenominator+1))
		req.Equal(uint64(domain.FeeDenominator+1), saved.FeeRate)
	})

	t.Run("pause switch", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.settings.On("Get", mock.Anything).Return(ownerSettings(), nil)
		var saved *marketplace.Settings
		m.settings.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*marketplace.Settings)
		}).Return(nil)

		req.NoError(uc.SetPaused(ctx, owner, true))
		req.True(saved.Paused)
	})

	t.Run("ownership transfer", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestMarketplace()
		m.settings.On("Get", mock.Anything).Return(ownerSettings(), nil)
		var saved *marketplace.Settings
		m.settings.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*marketplace.Settings)
		}).Return(nil)

		req.NoError(uc.TransferOwnership(ctx, owner, stranger))
		req.Equal(stranger, saved.Owner)

		req.ErrorIs(uc.TransferOwnership(ctx, owner, ""), domain.ErrZeroAddress)
	})
}
