package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	mLedger "github.com/openlistings/goengine/domain/ledger/mocks"
	"github.com/openlistings/goengine/domain/listing"
	mMarketplace "github.com/openlistings/goengine/domain/marketplace/mocks"
)

func newTestValidity() (listing.ValidityUseCase, *mMarketplace.UseCase, *mLedger.Adapter) {
	mp := new(mMarketplace.UseCase)
	ld := new(mLedger.Adapter)
	uc := NewValidity(&ValidityCfg{Marketplace: mp, Ledger: ld, Operator: testOperator})
	return uc, mp, ld
}

func TestValidityCheck(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("valid unique listing", func(t *testing.T) {
		req := require.New(t)
		uc, mp, ld := newTestValidity()
		l := uniqueListing()
		mp.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(true, nil)
		ld.On("OwnerOf", mock.Anything, l.AssetId()).Return(testSeller, nil)
		ld.On("IsTransferAuthorized", mock.Anything, testSeller, testOperator, l.AssetId()).Return(true, nil)

		req.NoError(uc.Check(ctx, l))
		// native currency never consults the allow-list
		mp.AssertNotCalled(t, "IsCurrencyAllowed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("collection de-allow-listed", func(t *testing.T) {
		req := require.New(t)
		uc, mp, _ := newTestValidity()
		l := uniqueListing()
		mp.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(false, nil)

		req.ErrorIs(uc.Check(ctx, l), domain.ErrCollectionNotAllowed)
	})

	t.Run("currency de-allow-listed", func(t *testing.T) {
		req := require.New(t)
		uc, mp, _ := newTestValidity()
		l := fungibleListing()
		mp.On("IsCollectionAllowed", mock.Anything, testChainId, testSft).Return(true, nil)
		mp.On("IsCurrencyAllowed", mock.Anything, testChainId, testErc20).Return(false, nil)

		req.ErrorIs(uc.Check(ctx, l), domain.ErrCurrencyNotAllowed)
	})

	t.Run("unique asset sold elsewhere", func(t *testing.T) {
		req := require.New(t)
		uc, mp, ld := newTestValidity()
		l := uniqueListing()
		mp.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(true, nil)
		ld.On("OwnerOf", mock.Anything, l.AssetId()).Return(testBuyer, nil)

		req.ErrorIs(uc.Check(ctx, l), domain.ErrInsufficientBalance)
	})

	t.Run("fungible balance drained", func(t *testing.T) {
		req := require.New(t)
		uc, mp, ld := newTestValidity()
		l := fungibleListing()
		mp.On("IsCollectionAllowed", mock.Anything, testChainId, testSft).Return(true, nil)
		mp.On("IsCurrencyAllowed", mock.Anything, testChainId, testErc20).Return(true, nil)
		ld.On("BalanceOf", mock.Anything, testSeller, l.AssetId()).Return(uint64(4), nil)

		err := uc.Check(ctx, l)
		var ib *listing.InsufficientBalanceError
		req.True(errors.As(err, &ib))
		req.Equal(uint64(10), ib.Required)
		req.Equal(uint64(4), ib.Available)
	})

	t.Run("authorization revoked", func(t *testing.T) {
		req := require.New(t)
		uc, mp, ld := newTestValidity()
		l := uniqueListing()
		mp.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(true, nil)
		ld.On("OwnerOf", mock.Anything, l.AssetId()).Return(testSeller, nil)
		ld.On("IsTransferAuthorized", mock.Anything, testSeller, testOperator, l.AssetId()).Return(false, nil)

		req.ErrorIs(uc.Check(ctx, l), domain.ErrAuthorizationLost)
	})
}

func TestValidityIsValid(t *testing.T) {
	ctx := bCtx.Background()
	req := require.New(t)

	uc, mp, ld := newTestValidity()
	l := uniqueListing()
	mp.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(true, nil)
	ld.On("OwnerOf", mock.Anything, l.AssetId()).Return(testBuyer, nil)

	ok, err := uc.IsValid(ctx, l)
	req.NoError(err)
	req.False(ok)

	// a transient read failure is surfaced, not folded into invalidity
	uc2, mp2, _ := newTestValidity()
	rpcErr := errors.New("rpc timeout")
	mp2.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(false, rpcErr)
	_, err = uc2.IsValid(ctx, l)
	req.ErrorIs(err, rpcErr)
}
