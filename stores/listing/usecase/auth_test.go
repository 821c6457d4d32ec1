package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	mLedger "github.com/openlistings/goengine/domain/ledger/mocks"
	"github.com/openlistings/goengine/domain/listing"
	mMarketplace "github.com/openlistings/goengine/domain/marketplace/mocks"
)

func newTestAuth() (listing.AuthUseCase, *mMarketplace.UseCase, *mLedger.Adapter) {
	mp := new(mMarketplace.UseCase)
	ld := new(mLedger.Adapter)
	uc := NewAuth(&AuthCfg{Marketplace: mp, Ledger: ld})
	return uc, mp, ld
}

func TestCanOperate(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("stored seller", func(t *testing.T) {
		req := require.New(t)
		uc, _, _ := newTestAuth()
		ok, err := uc.CanOperate(ctx, uniqueListing(), testSeller)
		req.NoError(err)
		req.True(ok)
	})

	t.Run("platform owner", func(t *testing.T) {
		req := require.New(t)
		uc, mp, _ := newTestAuth()
		mp.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
		ok, err := uc.CanOperate(ctx, uniqueListing(), testOwner)
		req.NoError(err)
		req.True(ok)
	})

	t.Run("new owner after off-engine transfer", func(t *testing.T) {
		req := require.New(t)
		uc, mp, ld := newTestAuth()
		l := uniqueListing()
		mp.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
		ld.On("OwnerOf", mock.Anything, l.AssetId()).Return(testBuyer, nil)
		ok, err := uc.CanOperate(ctx, l, testBuyer)
		req.NoError(err)
		req.True(ok)
	})

	t.Run("operator authorized by live owner", func(t *testing.T) {
		req := require.New(t)
		uc, mp, ld := newTestAuth()
		l := uniqueListing()
		other := domain.Address("0x0000000000000000000000000000000000000009")
		mp.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
		ld.On("OwnerOf", mock.Anything, l.AssetId()).Return(testBuyer, nil)
		ld.On("IsTransferAuthorized", mock.Anything, testBuyer, other, l.AssetId()).Return(true, nil)
		ok, err := uc.CanOperate(ctx, l, other)
		req.NoError(err)
		req.True(ok)
	})

	t.Run("stranger", func(t *testing.T) {
		req := require.New(t)
		uc, mp, ld := newTestAuth()
		l := fungibleListing()
		mp.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
		ld.On("IsTransferAuthorized", mock.Anything, testSeller, testBuyer, l.AssetId()).Return(false, nil)
		ok, err := uc.CanOperate(ctx, l, testBuyer)
		req.NoError(err)
		req.False(ok)
	})
}
