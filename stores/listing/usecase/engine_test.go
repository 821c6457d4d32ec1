package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/ledger"
	mLedger "github.com/openlistings/goengine/domain/ledger/mocks"
	"github.com/openlistings/goengine/domain/listing"
	mListing "github.com/openlistings/goengine/domain/listing/mocks"
	"github.com/openlistings/goengine/domain/marketplace"
	mMarketplace "github.com/openlistings/goengine/domain/marketplace/mocks"
	mWhitelist "github.com/openlistings/goengine/domain/whitelist/mocks"
)

const (
	testOperator = domain.Address("0x00000000000000000000000000000000000000ee")
	testOwner    = domain.Address("0x00000000000000000000000000000000000000aa")
	testSeller   = domain.Address("0x0000000000000000000000000000000000000001")
	testBuyer    = domain.Address("0x0000000000000000000000000000000000000002")
	testHolder   = domain.Address("0x0000000000000000000000000000000000000777")
	testNft      = domain.Address("0x0000000000000000000000000000000000000301")
	testSft      = domain.Address("0x0000000000000000000000000000000000000302")
	testErc20    = domain.Address("0x0000000000000000000000000000000000000401")
	testChainId  = domain.ChainId(1)
)

type engineMocks struct {
	listingRepo   *mListing.Repo
	eventRepo     *mListing.EventRepo
	whitelistRepo *mWhitelist.Repo
	marketplace   *mMarketplace.UseCase
	ledger        *mLedger.Adapter
	payment       *mLedger.PaymentAdapter
	validity      *mListing.ValidityUseCase
	auth          *mListing.AuthUseCase
}

func newTestEngine() (listing.UseCase, *engineMocks) {
	m := &engineMocks{
		listingRepo:   new(mListing.Repo),
		eventRepo:     new(mListing.EventRepo),
		whitelistRepo: new(mWhitelist.Repo),
		marketplace:   new(mMarketplace.UseCase),
		ledger:        new(mLedger.Adapter),
		payment:       new(mLedger.PaymentAdapter),
		validity:      new(mListing.ValidityUseCase),
		auth:          new(mListing.AuthUseCase),
	}
	uc := NewEngine(&EngineCfg{
		ListingRepo:       m.listingRepo,
		EventRepo:         m.eventRepo,
		WhitelistRepo:     m.whitelistRepo,
		Marketplace:       m.marketplace,
		Ledger:            m.ledger,
		Payment:           m.payment,
		Validity:          m.validity,
		Auth:              m.auth,
		Operator:          testOperator,
		MaxWhitelistBatch: 10,
	})
	return uc, m
}

func uniqueListing() *listing.Listing {
	return &listing.Listing{
		ChainId:      testChainId,
		ListingId:    1,
		Seller:       testSeller,
		TokenAddress: testNft,
		TokenId:      "42",
		Quantity:     0,
		Price:        big.NewInt(1000000),
		Currency:     domain.NativeCurrency,
		FeeRate:      2500,
	}
}

func fungibleListing() *listing.Listing {
	return &listing.Listing{
		ChainId:           testChainId,
		ListingId:         2,
		Seller:            testSeller,
		TokenAddress:      testSft,
		TokenId:           "7",
		Quantity:          10,
		Price:             big.NewInt(1000),
		Currency:          testErc20,
		FeeRate:           2500,
		PartialBuyEnabled: true,
	}
}

func expectedOf(l *listing.Listing) listing.ExpectedTerms {
	return listing.ExpectedTerms{
		Price:    new(big.Int).Set(l.Price),
		Currency: l.Currency,
		Quantity: l.Quantity,
		Desired:  l.Desired,
	}
}

func TestCreate(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("unique asset", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		asset := ledger.AssetId{ChainId: testChainId, TokenAddress: testNft, TokenId: "42"}

		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.marketplace.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(true, nil)
		m.marketplace.On("IsCurrencyAllowed", mock.Anything, testChainId, domain.NativeCurrency).Return(true, nil)
		m.ledger.On("ProbeKind", mock.Anything, asset).Return(ledger.KindUnique, nil)
		m.ledger.On("OwnerOf", mock.Anything, asset).Return(testSeller, nil)
		m.ledger.On("IsTransferAuthorized", mock.Anything, testSeller, testOperator, asset).Return(true, nil)
		m.marketplace.On("FeeRate", mock.Anything).Return(uint64(2500), nil)
		m.listingRepo.On("NextId", mock.Anything).Return(domain.ListingId(7), nil)
		var inserted *listing.Listing
		m.listingRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*listing.Listing)
		}).Return(nil)
		m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		id, err := uc.Create(ctx, &listing.CreateReq{
			ChainId:      testChainId,
			Caller:       testSeller,
			TokenAddress: testNft,
			TokenId:      "42",
			Quantity:     0,
			Price:        big.NewInt(1000000),
			Currency:     domain.NativeCurrency,
		})
		req.NoError(err)
		req.Equal(domain.ListingId(7), id)
		req.NotNil(inserted)
		req.Equal(testSeller, inserted.Seller)
		req.True(inserted.IsUnique())
		req.Equal(uint64(2500), inserted.FeeRate)
	})

	t.Run("fungible with insufficient balance", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		asset := ledger.AssetId{ChainId: testChainId, TokenAddress: testSft, TokenId: "7"}

		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.marketplace.On("IsCollectionAllowed", mock.Anything, testChainId, testSft).Return(true, nil)
		m.marketplace.On("IsCurrencyAllowed", mock.Anything, testChainId, testErc20).Return(true, nil)
		m.ledger.On("ProbeKind", mock.Anything, asset).Return(ledger.KindFungible, nil)
		m.ledger.On("BalanceOf", mock.Anything, testSeller, asset).Return(uint64(3), nil)

		_, err := uc.Create(ctx, &listing.CreateReq{
			ChainId:      testChainId,
			Caller:       testSeller,
			TokenAddress: testSft,
			TokenId:      "7",
			Quantity:     10,
			Price:        big.NewInt(1000),
			Currency:     testErc20,
		})
		req.ErrorIs(err, domain.ErrInsufficientBalance)
		var ib *listing.InsufficientBalanceError
		req.True(errors.As(err, &ib))
		req.Equal(uint64(10), ib.Required)
		req.Equal(uint64(3), ib.Available)
		m.listingRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("collection not allowed", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.marketplace.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(false, nil)

		_, err := uc.Create(ctx, &listing.CreateReq{
			ChainId:      testChainId,
			Caller:       testSeller,
			TokenAddress: testNft,
			TokenId:      "42",
			Price:        big.NewInt(1),
		})
		req.ErrorIs(err, domain.ErrCollectionNotAllowed)
	})

	t.Run("free listing rejected", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		asset := ledger.AssetId{ChainId: testChainId, TokenAddress: testNft, TokenId: "42"}
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.marketplace.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(true, nil)
		m.marketplace.On("IsCurrencyAllowed", mock.Anything, testChainId, domain.NativeCurrency).Return(true, nil)
		m.ledger.On("ProbeKind", mock.Anything, asset).Return(ledger.KindUnique, nil)
		m.ledger.On("OwnerOf", mock.Anything, asset).Return(testSeller, nil)
		m.ledger.On("IsTransferAuthorized", mock.Anything, testSeller, testOperator, asset).Return(true, nil)

		_, err := uc.Create(ctx, &listing.CreateReq{
			ChainId:      testChainId,
			Caller:       testSeller,
			TokenAddress: testNft,
			TokenId:      "42",
			Price:        big.NewInt(0),
		})
		req.ErrorIs(err, domain.ErrFreeListing)
	})

	t.Run("swap against same token rejected", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		asset := ledger.AssetId{ChainId: testChainId, TokenAddress: testNft, TokenId: "42"}
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.marketplace.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(true, nil)
		m.marketplace.On("IsCurrencyAllowed", mock.Anything, testChainId, domain.NativeCurrency).Return(true, nil)
		m.ledger.On("ProbeKind", mock.Anything, asset).Return(ledger.KindUnique, nil)
		m.ledger.On("OwnerOf", mock.Anything, asset).Return(testSeller, nil)
		m.ledger.On("IsTransferAuthorized", mock.Anything, testSeller, testOperator, asset).Return(true, nil)

		_, err := uc.Create(ctx, &listing.CreateReq{
			ChainId:      testChainId,
			Caller:       testSeller,
			TokenAddress: testNft,
			TokenId:      "42",
			Price:        big.NewInt(100),
			Desired:      listing.SwapTerms{TokenAddress: testNft, TokenId: "42"},
		})
		req.ErrorIs(err, domain.ErrSameTokenSwap)
	})

	t.Run("partial buy needs divisible price", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		asset := ledger.AssetId{ChainId: testChainId, TokenAddress: testSft, TokenId: "7"}
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.marketplace.On("IsCollectionAllowed", mock.Anything, testChainId, testSft).Return(true, nil)
		m.marketplace.On("IsCurrencyAllowed", mock.Anything, testChainId, testErc20).Return(true, nil)
		m.ledger.On("ProbeKind", mock.Anything, asset).Return(ledger.KindFungible, nil)
		m.ledger.On("BalanceOf", mock.Anything, testSeller, asset).Return(uint64(10), nil)
		m.ledger.On("IsTransferAuthorized", mock.Anything, testSeller, testOperator, asset).Return(true, nil)

		_, err := uc.Create(ctx, &listing.CreateReq{
			ChainId:           testChainId,
			Caller:            testSeller,
			TokenAddress:      testSft,
			TokenId:           "7",
			Quantity:          3,
			Price:             big.NewInt(1000),
			Currency:          testErc20,
			PartialBuyEnabled: true,
		})
		req.ErrorIs(err, domain.ErrIndivisiblePrice)
	})

	t.Run("paused", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		m.marketplace.On("IsPaused", mock.Anything).Return(true, nil)

		_, err := uc.Create(ctx, &listing.CreateReq{
			ChainId:      testChainId,
			Caller:       testSeller,
			TokenAddress: testNft,
			TokenId:      "42",
			Price:        big.NewInt(1),
		})
		req.ErrorIs(err, domain.ErrPaused)
	})
}

func TestBuy_uniqueNative(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	uc, m := newTestEngine()
	l := uniqueListing()

	m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
	m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
	m.validity.On("Check", mock.Anything, l).Return(nil)
	m.ledger.On("RoyaltyInfo", mock.Anything, l.AssetId(), big.NewInt(1000000)).
		Return(&ledger.Royalty{Receiver: domain.Address("0x0000000000000000000000000000000000000501"), Amount: big.NewInt(50000)}, nil)
	m.marketplace.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, testOwner, big.NewInt(25000)).Return(nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, domain.Address("0x0000000000000000000000000000000000000501"), big.NewInt(50000)).Return(nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, testSeller, big.NewInt(925000)).Return(nil)
	m.ledger.On("Transfer", mock.Anything, testSeller, testBuyer, l.AssetId(), uint64(1)).Return(nil)
	m.listingRepo.On("Remove", mock.Anything, l.ListingId).Return(nil)
	m.whitelistRepo.On("RemoveAllByListing", mock.Anything, l.ListingId).Return(nil)
	events := []*listing.Event{}
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		events = append(events, args.Get(1).(*listing.Event))
	}).Return(nil)

	receipt, err := uc.Buy(ctx, &listing.BuyReq{
		ListingId: l.ListingId,
		Buyer:     testBuyer,
		Quantity:  0,
		Expected:  expectedOf(l),
		Value:     big.NewInt(1000000),
	})
	req.NoError(err)
	req.Equal(uint64(1), receipt.Quantity)
	req.Equal(big.NewInt(1000000), receipt.Price)
	req.Equal(big.NewInt(25000), receipt.Fee)
	req.Equal(big.NewInt(50000), receipt.Royalty.Amount)
	req.Equal(big.NewInt(925000), receipt.SellerProceeds)
	req.Nil(receipt.Remaining)

	req.Len(events, 2)
	req.Equal(listing.EventPurchased, events[0].Type)
	req.Equal(testBuyer, events[0].Buyer)
	req.Equal("25000", events[0].Fee)
	req.Equal(listing.EventRoyaltyPaid, events[1].Type)
	req.Equal("50000", events[1].RoyaltyAmount)
	m.payment.AssertExpectations(t)
}

func TestBuy_partialFill(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	uc, m := newTestEngine()
	l := fungibleListing()

	m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
	m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
	m.validity.On("Check", mock.Anything, l).Return(nil)
	m.marketplace.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
	// 4 of 10 units at total price 1000: portion 400, fee 2.5% = 10
	m.payment.On("Transfer", mock.Anything, testChainId, testErc20, testBuyer, testOwner, big.NewInt(10)).Return(nil)
	m.payment.On("Transfer", mock.Anything, testChainId, testErc20, testBuyer, testSeller, big.NewInt(390)).Return(nil)
	m.ledger.On("Transfer", mock.Anything, testSeller, testBuyer, l.AssetId(), uint64(4)).Return(nil)
	var updated *listing.Listing
	m.listingRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*listing.Listing)
	}).Return(nil)
	m.marketplace.On("GetCurrency", mock.Anything, testChainId, testErc20).
		Return(&marketplace.Currency{Decimals: 6}, nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	receipt, err := uc.Buy(ctx, &listing.BuyReq{
		ListingId: l.ListingId,
		Buyer:     testBuyer,
		Quantity:  4,
		Expected:  expectedOf(l),
	})
	req.NoError(err)
	req.Equal(uint64(4), receipt.Quantity)
	req.Equal(big.NewInt(400), receipt.Price)
	req.Equal(big.NewInt(10), receipt.Fee)
	req.Nil(receipt.Royalty)
	req.Equal(big.NewInt(390), receipt.SellerProceeds)
	req.NotNil(receipt.Remaining)
	req.Equal(uint64(6), updated.Quantity)
	req.Equal(big.NewInt(600), updated.Price)
	m.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestBuy_displayPriceLookupFailure(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	uc, m := newTestEngine()
	l := fungibleListing()

	m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
	m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
	m.validity.On("Check", mock.Anything, l).Return(nil)
	m.marketplace.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
	m.payment.On("Transfer", mock.Anything, testChainId, testErc20, testBuyer, testOwner, big.NewInt(25)).Return(nil)
	m.payment.On("Transfer", mock.Anything, testChainId, testErc20, testBuyer, testSeller, big.NewInt(975)).Return(nil)
	m.ledger.On("Transfer", mock.Anything, testSeller, testBuyer, l.AssetId(), uint64(10)).Return(nil)
	m.listingRepo.On("Remove", mock.Anything, l.ListingId).Return(nil)
	m.whitelistRepo.On("RemoveAllByListing", mock.Anything, l.ListingId).Return(nil)
	m.marketplace.On("GetCurrency", mock.Anything, testChainId, testErc20).
		Return(nil, errors.New("rpc down"))
	var ev *listing.Event
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		ev = args.Get(1).(*listing.Event)
	}).Return(nil)

	_, err := uc.Buy(ctx, &listing.BuyReq{
		ListingId: l.ListingId,
		Buyer:     testBuyer,
		Quantity:  10,
		Expected:  expectedOf(l),
	})
	req.NoError(err)
	req.NotNil(ev)
	req.Empty(ev.DisplayPrice)
	req.Equal("1000", ev.Price)
}

func TestBuy_rejections(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("terms changed", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)

		exp := expectedOf(l)
		exp.Price = big.NewInt(999)
		_, err := uc.Buy(ctx, &listing.BuyReq{ListingId: l.ListingId, Buyer: testBuyer, Expected: exp, Value: big.NewInt(999)})
		req.ErrorIs(err, domain.ErrTermsChanged)
		m.validity.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	})

	t.Run("not whitelisted", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		l.BuyerWhitelistEnabled = true
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.whitelistRepo.On("Exists", mock.Anything, l.ListingId, testBuyer).Return(false, nil)

		_, err := uc.Buy(ctx, &listing.BuyReq{ListingId: l.ListingId, Buyer: testBuyer, Expected: expectedOf(l), Value: big.NewInt(1000000)})
		req.ErrorIs(err, domain.ErrNotWhitelisted)
	})

	t.Run("self purchase", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)

		_, err := uc.Buy(ctx, &listing.BuyReq{ListingId: l.ListingId, Buyer: testSeller, Expected: expectedOf(l), Value: big.NewInt(1000000)})
		req.ErrorIs(err, domain.ErrSelfPurchase)
	})

	t.Run("wrong native value", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.validity.On("Check", mock.Anything, l).Return(nil)

		_, err := uc.Buy(ctx, &listing.BuyReq{ListingId: l.ListingId, Buyer: testBuyer, Expected: expectedOf(l), Value: big.NewInt(999999)})
		req.ErrorIs(err, domain.ErrWrongPaymentValue)
	})

	t.Run("value attached to erc20 purchase", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := fungibleListing()
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.validity.On("Check", mock.Anything, l).Return(nil)

		_, err := uc.Buy(ctx, &listing.BuyReq{ListingId: l.ListingId, Buyer: testBuyer, Quantity: 10, Expected: expectedOf(l), Value: big.NewInt(1)})
		req.ErrorIs(err, domain.ErrWrongPaymentValue)
	})

	t.Run("partial buy disabled", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := fungibleListing()
		l.PartialBuyEnabled = false
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.validity.On("Check", mock.Anything, l).Return(nil)

		_, err := uc.Buy(ctx, &listing.BuyReq{ListingId: l.ListingId, Buyer: testBuyer, Quantity: 4, Expected: expectedOf(l)})
		req.ErrorIs(err, domain.ErrPartialBuyDisabled)
	})

	t.Run("listing gone invalid", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.validity.On("Check", mock.Anything, l).Return(domain.ErrAuthorizationLost)

		_, err := uc.Buy(ctx, &listing.BuyReq{ListingId: l.ListingId, Buyer: testBuyer, Expected: expectedOf(l), Value: big.NewInt(1000000)})
		req.ErrorIs(err, domain.ErrAuthorizationLost)
		m.payment.AssertNotCalled(t, "TransferNative", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fee above denominator blocks every purchase", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		l.FeeRate = domain.FeeDenominator + 1
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.validity.On("Check", mock.Anything, l).Return(nil)
		m.ledger.On("RoyaltyInfo", mock.Anything, l.AssetId(), big.NewInt(1000000)).Return(nil, nil)

		_, err := uc.Buy(ctx, &listing.BuyReq{ListingId: l.ListingId, Buyer: testBuyer, Expected: expectedOf(l), Value: big.NewInt(1000000)})
		req.ErrorIs(err, domain.ErrProceedsExceeded)
		m.payment.AssertNotCalled(t, "TransferNative", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.ledger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBuy_paymentFailureAborts(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	uc, m := newTestEngine()
	l := uniqueListing()
	royaltyReceiver := domain.Address("0x0000000000000000000000000000000000000501")

	m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
	m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
	m.validity.On("Check", mock.Anything, l).Return(nil)
	m.ledger.On("RoyaltyInfo", mock.Anything, l.AssetId(), big.NewInt(1000000)).
		Return(&ledger.Royalty{Receiver: royaltyReceiver, Amount: big.NewInt(50000)}, nil)
	m.marketplace.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, testOwner, big.NewInt(25000)).Return(nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, royaltyReceiver, big.NewInt(50000)).
		Return(errors.New("receiver reverted"))

	_, err := uc.Buy(ctx, &listing.BuyReq{
		ListingId: l.ListingId,
		Buyer:     testBuyer,
		Expected:  expectedOf(l),
		Value:     big.NewInt(1000000),
	})
	req.ErrorIs(err, domain.ErrPaymentFailed)
	var pe *listing.PaymentError
	req.True(errors.As(err, &pe))
	req.Equal(royaltyReceiver, pe.Recipient)
	m.ledger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestBuy_swapLeg(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	uc, m := newTestEngine()
	l := uniqueListing()
	l.Desired = listing.SwapTerms{TokenAddress: testSft, TokenId: "9", Quantity: 5}

	m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
	m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
	m.validity.On("Check", mock.Anything, l).Return(nil)
	m.ledger.On("RoyaltyInfo", mock.Anything, l.AssetId(), big.NewInt(1000000)).Return(nil, nil)
	m.marketplace.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, testOwner, big.NewInt(25000)).Return(nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, testSeller, big.NewInt(975000)).Return(nil)
	m.ledger.On("Transfer", mock.Anything, testSeller, testBuyer, l.AssetId(), uint64(1)).Return(nil)
	desired := l.DesiredAssetId()
	m.ledger.On("BalanceOf", mock.Anything, testBuyer, desired).Return(uint64(5), nil)
	m.ledger.On("Transfer", mock.Anything, testBuyer, testSeller, desired, uint64(5)).Return(nil)
	m.listingRepo.On("Remove", mock.Anything, l.ListingId).Return(nil)
	m.whitelistRepo.On("RemoveAllByListing", mock.Anything, l.ListingId).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Buy(ctx, &listing.BuyReq{
		ListingId: l.ListingId,
		Buyer:     testBuyer,
		Expected:  expectedOf(l),
		Value:     big.NewInt(1000000),
	})
	req.NoError(err)
	m.ledger.AssertExpectations(t)
}

func TestBuy_swapLegInsufficientDesired(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	uc, m := newTestEngine()
	l := uniqueListing()
	l.Desired = listing.SwapTerms{TokenAddress: testSft, TokenId: "9", Quantity: 5}

	m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
	m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
	m.validity.On("Check", mock.Anything, l).Return(nil)
	m.ledger.On("RoyaltyInfo", mock.Anything, l.AssetId(), big.NewInt(1000000)).Return(nil, nil)
	m.marketplace.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, testOwner, big.NewInt(25000)).Return(nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, testSeller, big.NewInt(975000)).Return(nil)
	m.ledger.On("Transfer", mock.Anything, testSeller, testBuyer, l.AssetId(), uint64(1)).Return(nil)
	m.ledger.On("BalanceOf", mock.Anything, testBuyer, l.DesiredAssetId()).Return(uint64(2), nil)

	_, err := uc.Buy(ctx, &listing.BuyReq{
		ListingId: l.ListingId,
		Buyer:     testBuyer,
		Expected:  expectedOf(l),
		Value:     big.NewInt(1000000),
	})
	req.ErrorIs(err, domain.ErrInsufficientBalance)
	m.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestBuy_pureSwapThirdPartyHolder(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	uc, m := newTestEngine()
	l := uniqueListing()
	l.Price = big.NewInt(0)
	l.Desired = listing.SwapTerms{TokenAddress: testSft, TokenId: "9", Quantity: 5}

	m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
	m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
	m.validity.On("Check", mock.Anything, l).Return(nil)
	m.marketplace.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
	m.ledger.On("Transfer", mock.Anything, testSeller, testBuyer, l.AssetId(), uint64(1)).Return(nil)
	desired := l.DesiredAssetId()
	m.ledger.On("BalanceOf", mock.Anything, testHolder, desired).Return(uint64(5), nil)
	m.ledger.On("IsTransferAuthorized", mock.Anything, testHolder, testBuyer, desired).Return(true, nil)
	m.ledger.On("Transfer", mock.Anything, testHolder, testSeller, desired, uint64(5)).Return(nil)
	m.listingRepo.On("Remove", mock.Anything, l.ListingId).Return(nil)
	m.whitelistRepo.On("RemoveAllByListing", mock.Anything, l.ListingId).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	receipt, err := uc.Buy(ctx, &listing.BuyReq{
		ListingId:     l.ListingId,
		Buyer:         testBuyer,
		Expected:      expectedOf(l),
		Value:         big.NewInt(0),
		DesiredHolder: testHolder,
	})
	req.NoError(err)
	req.Zero(receipt.Price.Sign())
	req.Zero(receipt.Fee.Sign())
	req.Zero(receipt.SellerProceeds.Sign())
	req.Nil(receipt.Royalty)
	m.ledger.AssertExpectations(t)
	m.ledger.AssertNotCalled(t, "RoyaltyInfo", mock.Anything, mock.Anything, mock.Anything)
	m.payment.AssertNotCalled(t, "TransferNative", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.payment.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBuy_pureSwapUnauthorizedHolder(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	uc, m := newTestEngine()
	l := uniqueListing()
	l.Price = big.NewInt(0)
	l.Desired = listing.SwapTerms{TokenAddress: testSft, TokenId: "9", Quantity: 5}

	m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
	m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
	m.validity.On("Check", mock.Anything, l).Return(nil)
	m.marketplace.On("PlatformOwner", mock.Anything).Return(testOwner, nil)
	m.ledger.On("Transfer", mock.Anything, testSeller, testBuyer, l.AssetId(), uint64(1)).Return(nil)
	desired := l.DesiredAssetId()
	m.ledger.On("BalanceOf", mock.Anything, testHolder, desired).Return(uint64(5), nil)
	m.ledger.On("IsTransferAuthorized", mock.Anything, testHolder, testBuyer, desired).Return(false, nil)

	_, err := uc.Buy(ctx, &listing.BuyReq{
		ListingId:     l.ListingId,
		Buyer:         testBuyer,
		Expected:      expectedOf(l),
		Value:         big.NewInt(0),
		DesiredHolder: testHolder,
	})
	req.ErrorIs(err, domain.ErrNotAuthorized)
	m.ledger.AssertNotCalled(t, "Transfer", mock.Anything, testHolder, testSeller, desired, uint64(5))
	m.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestBuy_reentrancy(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	uc, m := newTestEngine()
	l := uniqueListing()

	m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
	m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
	m.validity.On("Check", mock.Anything, l).Return(nil)
	m.ledger.On("RoyaltyInfo", mock.Anything, l.AssetId(), big.NewInt(1000000)).Return(nil, nil)
	m.marketplace.On("PlatformOwner", mock.Anything).Return(testOwner, nil)

	var nestedBuyErr, nestedCancelErr error
	m.payment.On("TransferNative", mock.Anything, testChainId, testOwner, big.NewInt(25000)).
		Run(func(args mock.Arguments) {
			// a malicious recipient calling back into the engine
			_, nestedBuyErr = uc.Buy(ctx, &listing.BuyReq{ListingId: l.ListingId, Buyer: testBuyer, Expected: expectedOf(l), Value: big.NewInt(1000000)})
			nestedCancelErr = uc.Cancel(ctx, l.ListingId, testSeller)
		}).Return(nil)
	m.payment.On("TransferNative", mock.Anything, testChainId, testSeller, big.NewInt(975000)).Return(nil)
	m.ledger.On("Transfer", mock.Anything, testSeller, testBuyer, l.AssetId(), uint64(1)).Return(nil)
	m.listingRepo.On("Remove", mock.Anything, l.ListingId).Return(nil)
	m.whitelistRepo.On("RemoveAllByListing", mock.Anything, l.ListingId).Return(nil)
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Buy(ctx, &listing.BuyReq{
		ListingId: l.ListingId,
		Buyer:     testBuyer,
		Expected:  expectedOf(l),
		Value:     big.NewInt(1000000),
	})
	req.NoError(err)
	req.ErrorIs(nestedBuyErr, domain.ErrReentrancy)
	req.ErrorIs(nestedCancelErr, domain.ErrReentrancy)
}

func TestCancel(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("authorized caller", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.auth.On("CanOperate", mock.Anything, l, testSeller).Return(true, nil)
		m.listingRepo.On("Remove", mock.Anything, l.ListingId).Return(nil)
		m.whitelistRepo.On("RemoveAllByListing", mock.Anything, l.ListingId).Return(nil)
		var ev *listing.Event
		m.eventRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			ev = args.Get(1).(*listing.Event)
		}).Return(nil)

		req.NoError(uc.Cancel(ctx, l.ListingId, testSeller))
		req.Equal(listing.EventCanceled, ev.Type)
	})

	t.Run("stranger", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.auth.On("CanOperate", mock.Anything, l, testBuyer).Return(false, nil)

		err := uc.Cancel(ctx, l.ListingId, testBuyer)
		req.ErrorIs(err, domain.ErrNotAuthorized)
		m.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("unknown listing", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		m.listingRepo.On("FindOne", mock.Anything, domain.ListingId(404)).Return(nil, domain.ErrNotListed)

		req.ErrorIs(uc.Cancel(ctx, 404, testSeller), domain.ErrNotListed)
	})
}

func TestClean(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("invalid listing removed by anyone", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.validity.On("Check", mock.Anything, l).Return(domain.ErrAuthorizationLost)
		m.listingRepo.On("Remove", mock.Anything, l.ListingId).Return(nil)
		m.whitelistRepo.On("RemoveAllByListing", mock.Anything, l.ListingId).Return(nil)
		var ev *listing.Event
		m.eventRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			ev = args.Get(1).(*listing.Event)
		}).Return(nil)

		req.NoError(uc.Clean(ctx, l.ListingId, testBuyer))
		req.Equal(listing.EventInvalidated, ev.Type)
		req.Equal(testBuyer, ev.Cleaner)
	})

	t.Run("still valid", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.validity.On("Check", mock.Anything, l).Return(nil)

		req.ErrorIs(uc.Clean(ctx, l.ListingId, testBuyer), domain.ErrStillValid)
		m.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("transient check failure is not invalidity", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		rpcErr := errors.New("rpc timeout")
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.validity.On("Check", mock.Anything, l).Return(rpcErr)

		req.ErrorIs(uc.Clean(ctx, l.ListingId, testBuyer), rpcErr)
		m.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("de-allow-listed collection is silently dropped", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.marketplace.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(false, nil)
		m.listingRepo.On("Remove", mock.Anything, l.ListingId).Return(nil)
		m.whitelistRepo.On("RemoveAllByListing", mock.Anything, l.ListingId).Return(nil)
		var ev *listing.Event
		m.eventRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			ev = args.Get(1).(*listing.Event)
		}).Return(nil)

		err := uc.Update(ctx, &listing.UpdateReq{
			ListingId: l.ListingId,
			Caller:    testSeller,
			Price:     big.NewInt(2000000),
		})
		req.NoError(err)
		req.Equal(listing.EventInvalidated, ev.Type)
		req.Equal(testSeller, ev.Cleaner)
	})

	t.Run("kind can never flip", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.marketplace.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(true, nil)

		err := uc.Update(ctx, &listing.UpdateReq{
			ListingId: l.ListingId,
			Caller:    testSeller,
			Quantity:  5,
			Price:     big.NewInt(2000000),
		})
		req.ErrorIs(err, domain.ErrKindMismatch)
	})

	t.Run("re-snapshots fee rate", func(t *testing.T) {
		req := require.New(t)
		uc, m := newTestEngine()
		l := uniqueListing()
		asset := l.AssetId()
		m.marketplace.On("IsPaused", mock.Anything).Return(false, nil)
		m.listingRepo.On("FindOne", mock.Anything, l.ListingId).Return(l, nil)
		m.marketplace.On("IsCollectionAllowed", mock.Anything, testChainId, testNft).Return(true, nil)
		m.marketplace.On("IsCurrencyAllowed", mock.Anything, testChainId, domain.NativeCurrency).Return(true, nil)
		m.ledger.On("ProbeKind", mock.Anything, asset).Return(ledger.KindUnique, nil)
		m.ledger.On("OwnerOf", mock.Anything, asset).Return(testSeller, nil)
		m.ledger.On("IsTransferAuthorized", mock.Anything, testSeller, testOperator, asset).Return(true, nil)
		m.marketplace.On("FeeRate", mock.Anything).Return(uint64(7000), nil)
		var updated *listing.Listing
		m.listingRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			updated = args.Get(1).(*listing.Listing)
		}).Return(nil)
		m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		err := uc.Update(ctx, &listing.UpdateReq{
			ListingId: l.ListingId,
			Caller:    testSeller,
			Price:     big.NewInt(2000000),
		})
		req.NoError(err)
		req.Equal(uint64(7000), updated.FeeRate)
		req.Equal(big.NewInt(2000000), updated.Price)
	})
}

func TestPurchaseQuantity(t *testing.T) {
	req := require.New(t)

	unique := uniqueListing()
	q, err := purchaseQuantity(unique, 0)
	req.NoError(err)
	req.Equal(uint64(1), q)
	_, err = purchaseQuantity(unique, 1)
	req.ErrorIs(err, domain.ErrInvalidQuantity)

	fungible := fungibleListing()
	_, err = purchaseQuantity(fungible, 0)
	req.ErrorIs(err, domain.ErrInvalidQuantity)
	_, err = purchaseQuantity(fungible, 11)
	req.ErrorIs(err, domain.ErrInvalidQuantity)
	q, err = purchaseQuantity(fungible, 10)
	req.NoError(err)
	req.Equal(uint64(10), q)
}

func TestPortionPrice_noDriftAcrossFills(t *testing.T) {
	req := require.New(t)
	l := fungibleListing()
	l.Quantity = 9
	l.Price = big.NewInt(900)

	total := big.NewInt(0)
	for _, fill := range []uint64{4, 3, 2} {
		p := portionPrice(l, fill)
		total.Add(total, p)
		l.Quantity -= fill
		l.Price = new(big.Int).Sub(l.Price, p)
	}
	req.Equal(big.NewInt(900), total)
	req.Equal(int64(0), l.Price.Int64())
}
