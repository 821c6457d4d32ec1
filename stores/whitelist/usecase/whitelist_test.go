package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/listing"
	mListing "github.com/openlistings/goengine/domain/listing/mocks"
	"github.com/openlistings/goengine/domain/whitelist"
	mWhitelist "github.com/openlistings/goengine/domain/whitelist/mocks"
)

const (
	seller = domain.Address("0x0000000000000000000000000000000000000001")
	buyer  = domain.Address("0x0000000000000000000000000000000000000002")
)

func newTestGate() (whitelist.UseCase, *mWhitelist.Repo, *mListing.Repo, *mListing.AuthUseCase) {
	wl := new(mWhitelist.Repo)
	lr := new(mListing.Repo)
	auth := new(mListing.AuthUseCase)
	uc := New(&WhitelistCfg{WhitelistRepo: wl, ListingRepo: lr, Auth: auth, MaxBatch: 3})
	return uc, wl, lr, auth
}

func TestGateAdd(t *testing.T) {
	ctx := bCtx.Background()
	l := &listing.Listing{ListingId: 1, Seller: seller}

	t.Run("seller adds addresses", func(t *testing.T) {
		req := require.New(t)
		uc, wl, lr, auth := newTestGate()
		lr.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
		auth.On("CanOperate", mock.Anything, l, seller).Return(true, nil)
		wl.On("Add", mock.Anything, domain.ListingId(1), []domain.Address{buyer}).Return(nil)

		req.NoError(uc.Add(ctx, 1, seller, []domain.Address{buyer}))
		wl.AssertExpectations(t)
	})

	t.Run("empty batch", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _ := newTestGate()
		req.ErrorIs(uc.Add(ctx, 1, seller, nil), domain.ErrEmptyBatch)
	})

	t.Run("oversized batch", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _ := newTestGate()
		batch := []domain.Address{buyer, buyer, buyer, buyer}
		req.ErrorIs(uc.Add(ctx, 1, seller, batch), domain.ErrBatchTooLarge)
	})

	t.Run("zero address in batch", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _ := newTestGate()
		req.ErrorIs(uc.Add(ctx, 1, seller, []domain.Address{buyer, ""}), domain.ErrZeroAddress)
	})

	t.Run("unknown listing", func(t *testing.T) {
		req := require.New(t)
		uc, _, lr, _ := newTestGate()
		lr.On("FindOne", mock.Anything, domain.ListingId(9)).Return(nil, domain.ErrNotListed)
		req.ErrorIs(uc.Add(ctx, 9, seller, []domain.Address{buyer}), domain.ErrNotListed)
	})

	t.Run("stranger", func(t *testing.T) {
		req := require.New(t)
		uc, wl, lr, auth := newTestGate()
		lr.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
		auth.On("CanOperate", mock.Anything, l, buyer).Return(false, nil)

		req.ErrorIs(uc.Add(ctx, 1, buyer, []domain.Address{buyer}), domain.ErrNotAuthorized)
		wl.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGateRemove(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	l := &listing.Listing{ListingId: 1, Seller: seller}

	uc, wl, lr, auth := newTestGate()
	lr.On("FindOne", mock.Anything, domain.ListingId(1)).Return(l, nil)
	auth.On("CanOperate", mock.Anything, l, seller).Return(true, nil)
	wl.On("Remove", mock.Anything, domain.ListingId(1), []domain.Address{buyer}).Return(nil)

	req.NoError(uc.Remove(ctx, 1, seller, []domain.Address{buyer}))
	wl.AssertExpectations(t)
}

func TestGateQueries(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, wl, _, _ := newTestGate()
	wl.On("Exists", mock.Anything, domain.ListingId(1), buyer).Return(true, nil)
	wl.On("FindAll", mock.Anything, domain.ListingId(1)).Return([]domain.Address{buyer}, nil)

	ok, err := uc.IsWhitelisted(ctx, 1, buyer)
	req.NoError(err)
	req.True(ok)

	addrs, err := uc.FindAll(ctx, 1)
	req.NoError(err)
	req.Equal([]domain.Address{buyer}, addrs)
}
