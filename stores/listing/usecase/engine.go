package usecase

import (
	"errors"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/log"
	"github.com/openlistings/goengine/base/priceformat"
	"github.com/openlistings/goengine/domain"
	"github.com/openlistings/goengine/domain/ledger"
	"github.com/openlistings/goengine/domain/listing"
	"github.com/openlistings/goengine/domain/marketplace"
	"github.com/openlistings/goengine/domain/whitelist"
)

// EngineCfg wires the settlement engine's collaborators.
type EngineCfg struct {
	ListingRepo   listing.Repo
	EventRepo     listing.EventRepo
	WhitelistRepo whitelist.Repo
	Marketplace   marketplace.UseCase
	Ledger        ledger.Adapter
	Payment       ledger.PaymentAdapter
	Validity      listing.ValidityUseCase
	Auth          listing.AuthUseCase
	// Operator is the engine's own ledger identity: the address sellers
	// must authorize for transfers.
	Operator domain.Address
	// MaxWhitelistBatch bounds whitelist seeding at create/update time.
	MaxWhitelistBatch int
}

type engineImpl struct {
	listingRepo   listing.Repo
	eventRepo     listing.EventRepo
	whitelistRepo whitelist.Repo
	marketplace   marketplace.UseCase
	ledger        ledger.Adapter
	payment       ledger.PaymentAdapter
	validity      listing.ValidityUseCase
	auth          listing.AuthUseCase
	operator      domain.Address
	maxBatch      int

	// inFlight is the shared operation-in-progress flag guarding
	// Buy/Cancel/Clean against re-entrant invocation from transfer
	// callbacks. Set on entry, cleared on every exit path.
	inFlight int32
}

func NewEngine(cfg *EngineCfg) listing.UseCase {
	return &engineImpl{
		listingRepo:   cfg.ListingRepo,
		eventRepo:     cfg.EventRepo,
		whitelistRepo: cfg.WhitelistRepo,
		marketplace:   cfg.Marketplace,
		ledger:        cfg.Ledger,
		payment:       cfg.Payment,
		validity:      cfg.Validity,
		auth:          cfg.Auth,
		operator:      cfg.Operator.ToLower(),
		maxBatch:      cfg.MaxWhitelistBatch,
	}
}

func (im *engineImpl) acquire() bool {
	return atomic.CompareAndSwapInt32(&im.inFlight, 0, 1)
}

func (im *engineImpl) release() {
	atomic.StoreInt32(&im.inFlight, 0)
}

func (im *engineImpl) Get(ctx ctx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	return im.listingRepo.FindOne(ctx, id)
}

func (im *engineImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	res, err := im.listingRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("listingRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *engineImpl) Create(ctx ctx.Ctx, req *listing.CreateReq) (domain.ListingId, error) {
	normalizeCreateReq(req)

	if err := im.ensureNotPaused(ctx); err != nil {
		return 0, err
	}
	seller, err := im.validateListingParams(ctx, &listingParams{
		chainId:      req.ChainId,
		caller:       req.Caller,
		tokenAddress: req.TokenAddress,
		tokenId:      req.TokenId,
		quantity:     req.Quantity,
		price:        req.Price,
		currency:     req.Currency,
		desired:      req.Desired,
		holder:       req.Holder,
		partialBuy:   req.PartialBuyEnabled,
		whitelist:    req.Whitelist,
	})
	if err != nil {
		return 0, err
	}

	feeRate, err := im.marketplace.FeeRate(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.FeeRate failed")
		return 0, err
	}
	id, err := im.listingRepo.NextId(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("listingRepo.NextId failed")
		return 0, err
	}

	now := time.Now()
	l := &listing.Listing{
		ChainId:               req.ChainId,
		ListingId:             id,
		Seller:                seller,
		TokenAddress:          req.TokenAddress,
		TokenId:               req.TokenId,
		Quantity:              req.Quantity,
		Price:                 req.Price,
		Currency:              req.Currency,
		FeeRate:               feeRate,
		Desired:               req.Desired,
		BuyerWhitelistEnabled: req.BuyerWhitelistEnabled,
		PartialBuyEnabled:     req.PartialBuyEnabled,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := im.listingRepo.Insert(ctx, l); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("listingRepo.Insert failed")
		return 0, err
	}
	if len(req.Whitelist) > 0 {
		if err := im.whitelistRepo.Add(ctx, id, req.Whitelist); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": id,
			}).Error("whitelistRepo.Add failed")
			return 0, err
		}
	}
	im.emit(ctx, im.newEvent(ctx, listing.EventCreated, l))
	return id, nil
}

func (im *engineImpl) Update(ctx ctx.Ctx, req *listing.UpdateReq) error {
	normalizeUpdateReq(req)

	if err := im.ensureNotPaused(ctx); err != nil {
		return err
	}
	l, err := im.listingRepo.FindOne(ctx, req.ListingId)
	if err != nil {
		return err
	}

	// A listing whose collection has been removed from the allow-list is
	// deleted here instead of erroring, as implicit cleanup.
	allowed, err := im.marketplace.IsCollectionAllowed(ctx, l.ChainId, l.TokenAddress)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.IsCollectionAllowed failed")
		return err
	}
	if !allowed {
		if err := im.deleteListing(ctx, l); err != nil {
			return err
		}
		ev := im.newEvent(ctx, listing.EventInvalidated, l)
		ev.Cleaner = req.Caller
		im.emit(ctx, ev)
		return nil
	}

	if (req.Quantity == 0) != l.IsUnique() {
		return domain.ErrKindMismatch
	}
	if req.Holder.IsEmpty() {
		req.Holder = l.Seller
	}
	seller, err := im.validateListingParams(ctx, &listingParams{
		chainId:      l.ChainId,
		caller:       req.Caller,
		tokenAddress: l.TokenAddress,
		tokenId:      l.TokenId,
		quantity:     req.Quantity,
		price:        req.Price,
		currency:     req.Currency,
		desired:      req.Desired,
		holder:       req.Holder,
		partialBuy:   req.PartialBuyEnabled,
		whitelist:    req.Whitelist,
	})
	if err != nil {
		return err
	}

	feeRate, err := im.marketplace.FeeRate(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.FeeRate failed")
		return err
	}

	l.Seller = seller
	l.Quantity = req.Quantity
	l.Price = req.Price
	l.Currency = req.Currency
	l.FeeRate = feeRate
	l.Desired = req.Desired
	l.BuyerWhitelistEnabled = req.BuyerWhitelistEnabled
	l.PartialBuyEnabled = req.PartialBuyEnabled
	l.UpdatedAt = time.Now()
	if err := im.listingRepo.Update(ctx, l); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
		}).Error("listingRepo.Update failed")
		return err
	}
	if len(req.Whitelist) > 0 {
		if err := im.whitelistRepo.Add(ctx, l.ListingId, req.Whitelist); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": l.ListingId,
			}).Error("whitelistRepo.Add failed")
			return err
		}
	}
	im.emit(ctx, im.newEvent(ctx, listing.EventUpdated, l))
	return nil
}

func (im *engineImpl) Buy(ctx ctx.Ctx, req *listing.BuyReq) (*listing.Receipt, error) {
	if !im.acquire() {
		return nil, domain.ErrReentrancy
	}
	defer im.release()

	normalizeBuyReq(req)

	if err := im.ensureNotPaused(ctx); err != nil {
		return nil, err
	}
	l, err := im.listingRepo.FindOne(ctx, req.ListingId)
	if err != nil {
		return nil, err
	}
	if !req.Expected.Matches(l) {
		return nil, domain.ErrTermsChanged
	}
	if l.BuyerWhitelistEnabled {
		ok, err := im.whitelistRepo.Exists(ctx, l.ListingId, req.Buyer)
		if err != nil {
			ctx.WithField("err", err).Error("whitelistRepo.Exists failed")
			return nil, err
		}
		if !ok {
			return nil, &listing.NotWhitelistedError{ListingId: l.ListingId, Buyer: req.Buyer}
		}
	}
	if req.Buyer.Equals(l.Seller) {
		return nil, domain.ErrSelfPurchase
	}
	// Ownership, balance and authorization can all have drifted since
	// listing time; re-check against the live ledger.
	if err := im.validity.Check(ctx, l); err != nil {
		return nil, err
	}

	quantity, err := purchaseQuantity(l, req.Quantity)
	if err != nil {
		return nil, err
	}
	portion := portionPrice(l, quantity)

	if l.Currency.IsEmpty() {
		if bigOrZero(req.Value).Cmp(portion) != 0 {
			return nil, domain.ErrWrongPaymentValue
		}
	} else if bigOrZero(req.Value).Sign() != 0 {
		return nil, domain.ErrWrongPaymentValue
	}

	// Royalty is queried live at purchase time, never snapshotted. A
	// failing royalty query aborts the whole purchase.
	var royalty *ledger.Royalty
	if l.IsUnique() && portion.Sign() > 0 {
		royalty, err = im.ledger.RoyaltyInfo(ctx, l.AssetId(), portion)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": l.ListingId,
			}).Error("ledger.RoyaltyInfo failed")
			return nil, xerrors.Errorf("royalty query: %w", err)
		}
	}

	fee := new(big.Int).Mul(portion, new(big.Int).SetUint64(l.FeeRate))
	fee.Div(fee, big.NewInt(domain.FeeDenominator))

	royaltyAmount := big.NewInt(0)
	if !royalty.IsZero() {
		royaltyAmount = royalty.Amount
	}
	feePlusRoyalty := new(big.Int).Add(fee, royaltyAmount)
	if feePlusRoyalty.Cmp(portion) > 0 {
		return nil, domain.ErrProceedsExceeded
	}
	proceeds := new(big.Int).Sub(portion, feePlusRoyalty)

	owner, err := im.marketplace.PlatformOwner(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.PlatformOwner failed")
		return nil, err
	}

	// Settlement legs, in order. Each failure aborts the whole operation
	// before any engine state is mutated.
	if err := im.payLeg(ctx, l, req.Buyer, owner, fee); err != nil {
		return nil, err
	}
	if !royalty.IsZero() {
		if err := im.payLeg(ctx, l, req.Buyer, royalty.Receiver, royaltyAmount); err != nil {
			return nil, err
		}
	}
	if err := im.payLeg(ctx, l, req.Buyer, l.Seller, proceeds); err != nil {
		return nil, err
	}

	units := quantity
	if l.IsUnique() {
		units = 1
	}
	if err := im.ledger.Transfer(ctx, l.Seller, req.Buyer, l.AssetId(), units); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
		}).Error("asset transfer failed")
		return nil, xerrors.Errorf("asset transfer: %w", err)
	}
	if l.HasSwap() {
		if err := im.settleSwapLeg(ctx, l, req); err != nil {
			return nil, err
		}
	}

	receipt := &listing.Receipt{
		ListingId:      l.ListingId,
		Seller:         l.Seller,
		Buyer:          req.Buyer,
		Quantity:       quantity,
		Price:          portion,
		Fee:            fee,
		Royalty:        royalty,
		SellerProceeds: proceeds,
	}

	full := l.IsUnique() || quantity == l.Quantity
	if full {
		if err := im.deleteListing(ctx, l); err != nil {
			return nil, err
		}
	} else {
		l.Quantity -= quantity
		l.Price = new(big.Int).Sub(l.Price, portion)
		l.UpdatedAt = time.Now()
		if err := im.listingRepo.Update(ctx, l); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": l.ListingId,
			}).Error("listingRepo.Update failed")
			return nil, err
		}
		receipt.Remaining = l
	}

	ev := im.newEvent(ctx, listing.EventPurchased, l)
	ev.Buyer = req.Buyer
	ev.Quantity = quantity
	ev.Price = portion.String()
	ev.DisplayPrice = im.displayPrice(ctx, l, portion)
	ev.Fee = fee.String()
	ev.SellerProceeds = proceeds.String()
	im.emit(ctx, ev)
	if !royalty.IsZero() {
		rev := im.newEvent(ctx, listing.EventRoyaltyPaid, l)
		rev.Buyer = req.Buyer
		rev.RoyaltyReceiver = royalty.Receiver
		rev.RoyaltyAmount = royaltyAmount.String()
		im.emit(ctx, rev)
	}
	return receipt, nil
}

func (im *engineImpl) Cancel(ctx ctx.Ctx, id domain.ListingId, caller domain.Address) error {
	if !im.acquire() {
		return domain.ErrReentrancy
	}
	defer im.release()

	caller = caller.ToLower()
	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	ok, err := im.auth.CanOperate(ctx, l, caller)
	if err != nil {
		return err
	}
	if !ok {
		return xerrors.Errorf("cancel listing %d by %s: %w", id, caller, domain.ErrNotAuthorized)
	}
	// Cancellation does not require the listing to still be valid.
	if err := im.deleteListing(ctx, l); err != nil {
		return err
	}
	im.emit(ctx, im.newEvent(ctx, listing.EventCanceled, l))
	return nil
}

func (im *engineImpl) Clean(ctx ctx.Ctx, id domain.ListingId, caller domain.Address) error {
	if !im.acquire() {
		return domain.ErrReentrancy
	}
	defer im.release()

	caller = caller.ToLower()
	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	verr := im.validity.Check(ctx, l)
	if verr == nil {
		return domain.ErrStillValid
	}
	if !isInvalidityKind(verr) {
		return verr
	}
	if err := im.deleteListing(ctx, l); err != nil {
		return err
	}
	ev := im.newEvent(ctx, listing.EventInvalidated, l)
	ev.Cleaner = caller
	im.emit(ctx, ev)
	return nil
}

// listingParams is the shared validation surface of create and update.
type listingParams struct {
	chainId      domain.ChainId
	caller       domain.Address
	tokenAddress domain.Address
	tokenId      domain.TokenId
	quantity     uint64
	price        *big.Int
	currency     domain.Address
	desired      listing.SwapTerms
	holder       domain.Address
	partialBuy   bool
	whitelist    []domain.Address
}

// validateListingParams runs the full create/update validation order and
// returns the resolved seller (the asset holder).
func (im *engineImpl) validateListingParams(ctx ctx.Ctx, p *listingParams) (domain.Address, error) {
	allowed, err := im.marketplace.IsCollectionAllowed(ctx, p.chainId, p.tokenAddress)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.IsCollectionAllowed failed")
		return "", err
	}
	if !allowed {
		return "", domain.ErrCollectionNotAllowed
	}
	allowed, err = im.marketplace.IsCurrencyAllowed(ctx, p.chainId, p.currency)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.IsCurrencyAllowed failed")
		return "", err
	}
	if !allowed {
		return "", domain.ErrCurrencyNotAllowed
	}

	asset := ledger.AssetId{ChainId: p.chainId, TokenAddress: p.tokenAddress, TokenId: p.tokenId}
	kind, err := im.ledger.ProbeKind(ctx, asset)
	if err != nil {
		ctx.WithField("err", err).Error("ledger.ProbeKind failed")
		return "", err
	}

	var seller domain.Address
	switch kind {
	case ledger.KindUnique:
		if p.quantity != 0 {
			return "", domain.ErrKindMismatch
		}
		owner, err := im.ledger.OwnerOf(ctx, asset)
		if err != nil {
			ctx.WithField("err", err).Error("ledger.OwnerOf failed")
			return "", err
		}
		seller = owner.ToLower()
		if !p.caller.Equals(seller) {
			ok, err := im.ledger.IsTransferAuthorized(ctx, seller, p.caller, asset)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", xerrors.Errorf("caller %s is not the owner: %w", p.caller, domain.ErrNotAuthorized)
			}
		}
	case ledger.KindFungible:
		if p.quantity == 0 {
			return "", domain.ErrKindMismatch
		}
		seller = p.caller
		if !p.holder.IsEmpty() && !p.holder.Equals(p.caller) {
			ok, err := im.ledger.IsTransferAuthorized(ctx, p.holder, p.caller, asset)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", xerrors.Errorf("caller %s not authorized by holder %s: %w", p.caller, p.holder, domain.ErrNotAuthorized)
			}
			seller = p.holder
		}
		balance, err := im.ledger.BalanceOf(ctx, seller, asset)
		if err != nil {
			ctx.WithField("err", err).Error("ledger.BalanceOf failed")
			return "", err
		}
		if balance < p.quantity {
			return "", &listing.InsufficientBalanceError{Required: p.quantity, Available: balance}
		}
	default:
		return "", domain.ErrUnsupportedAsset
	}

	ok, err := im.ledger.IsTransferAuthorized(ctx, seller, im.operator, asset)
	if err != nil {
		ctx.WithField("err", err).Error("ledger.IsTransferAuthorized failed")
		return "", err
	}
	if !ok {
		return "", domain.ErrAuthorizationLost
	}

	price := bigOrZero(p.price)
	if price.Sign() == 0 && p.desired.IsZero() {
		return "", domain.ErrFreeListing
	}
	if !p.desired.IsZero() {
		if p.desired.TokenAddress.Equals(p.tokenAddress) && p.desired.TokenId == p.tokenId {
			return "", domain.ErrSameTokenSwap
		}
		desiredAsset := ledger.AssetId{ChainId: p.chainId, TokenAddress: p.desired.TokenAddress, TokenId: p.desired.TokenId}
		desiredKind, err := im.ledger.ProbeKind(ctx, desiredAsset)
		if err != nil {
			ctx.WithField("err", err).Error("ledger.ProbeKind failed")
			return "", err
		}
		switch desiredKind {
		case ledger.KindUnique:
			if p.desired.Quantity != 0 {
				return "", domain.ErrKindMismatch
			}
		case ledger.KindFungible:
			if p.desired.Quantity == 0 {
				return "", domain.ErrKindMismatch
			}
		default:
			return "", domain.ErrUnsupportedAsset
		}
	}
	if p.partialBuy {
		if p.quantity < 2 || !p.desired.IsZero() {
			return "", domain.ErrInvalidQuantity
		}
		if new(big.Int).Mod(price, new(big.Int).SetUint64(p.quantity)).Sign() != 0 {
			return "", domain.ErrIndivisiblePrice
		}
	}
	if len(p.whitelist) > 0 {
		if err := whitelist.ValidateBatch(p.whitelist, im.maxBatch); err != nil {
			return "", err
		}
	}
	return seller, nil
}

func (im *engineImpl) settleSwapLeg(ctx ctx.Ctx, l *listing.Listing, req *listing.BuyReq) error {
	desired := l.DesiredAssetId()
	holder := req.DesiredHolder
	if holder.IsEmpty() {
		holder = req.Buyer
	}
	units := l.Desired.Quantity
	if l.Desired.Quantity == 0 {
		// Unique desired asset: the holder must be its live owner, and a
		// third-party holder must have authorized the buyer.
		owner, err := im.ledger.OwnerOf(ctx, desired)
		if err != nil {
			ctx.WithField("err", err).Error("ledger.OwnerOf failed")
			return err
		}
		if !owner.Equals(holder) {
			return &listing.InsufficientBalanceError{Required: 1, Available: 0}
		}
		units = 1
	} else {
		balance, err := im.ledger.BalanceOf(ctx, holder, desired)
		if err != nil {
			ctx.WithField("err", err).Error("ledger.BalanceOf failed")
			return err
		}
		if balance < units {
			return &listing.InsufficientBalanceError{Required: units, Available: balance}
		}
	}
	if !holder.Equals(req.Buyer) {
		ok, err := im.ledger.IsTransferAuthorized(ctx, holder, req.Buyer, desired)
		if err != nil {
			return err
		}
		if !ok {
			return xerrors.Errorf("buyer %s not authorized by holder %s: %w", req.Buyer, holder, domain.ErrNotAuthorized)
		}
	}
	if err := im.ledger.Transfer(ctx, holder, l.Seller, desired, units); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
		}).Error("swap transfer failed")
		return xerrors.Errorf("swap transfer: %w", err)
	}
	return nil
}

// payLeg settles one currency leg straight from the buyer to the
// recipient. Zero-amount legs are skipped entirely.
func (im *engineImpl) payLeg(ctx ctx.Ctx, l *listing.Listing, buyer, to domain.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	var err error
	if l.Currency.IsEmpty() {
		err = im.payment.TransferNative(ctx, l.ChainId, to, amount)
	} else {
		err = im.payment.Transfer(ctx, l.ChainId, l.Currency, buyer, to, amount)
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
			"to":        to,
			"amount":    amount.String(),
		}).Error("payment leg failed")
		return &listing.PaymentError{Currency: l.Currency, Recipient: to, Err: err}
	}
	return nil
}

func (im *engineImpl) deleteListing(ctx ctx.Ctx, l *listing.Listing) error {
	if err := im.listingRepo.Remove(ctx, l.ListingId); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
		}).Error("listingRepo.Remove failed")
		return err
	}
	if err := im.whitelistRepo.RemoveAllByListing(ctx, l.ListingId); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
		}).Error("whitelistRepo.RemoveAllByListing failed")
		return err
	}
	return nil
}

func (im *engineImpl) ensureNotPaused(ctx ctx.Ctx) error {
	paused, err := im.marketplace.IsPaused(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.IsPaused failed")
		return err
	}
	if paused {
		return domain.ErrPaused
	}
	return nil
}

func (im *engineImpl) newEvent(ctx ctx.Ctx, t listing.EventType, l *listing.Listing) *listing.Event {
	price := bigOrZero(l.Price)
	return &listing.Event{
		Id:           uuid.New().String(),
		Type:         t,
		ChainId:      l.ChainId,
		ListingId:    l.ListingId,
		Seller:       l.Seller,
		TokenAddress: l.TokenAddress,
		TokenId:      l.TokenId,
		Quantity:     l.Quantity,
		Price:        price.String(),
		DisplayPrice: im.displayPrice(ctx, l, price),
		Currency:     l.Currency,
		FeeRate:      l.FeeRate,
		Desired:      l.Desired,
		CreatedAt:    time.Now(),
	}
}

// emit records the event; emission failures are logged, not fatal, since
// settlement has already completed by the time events are written.
func (im *engineImpl) emit(ctx ctx.Ctx, ev *listing.Event) {
	if err := im.eventRepo.Insert(ctx, ev); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": ev.ListingId,
			"type":      ev.Type,
		}).Error("eventRepo.Insert failed")
	}
}

func (im *engineImpl) displayPrice(ctx ctx.Ctx, l *listing.Listing, amount *big.Int) string {
	decimals := int32(18)
	if !l.Currency.IsEmpty() {
		currency, err := im.marketplace.GetCurrency(ctx, l.ChainId, l.Currency)
		if err != nil || currency == nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"chainId":  l.ChainId,
				"currency": l.Currency,
			}).Error("marketplace.GetCurrency failed")
			return ""
		}
		decimals = currency.Decimals
	}
	return priceformat.Display(amount, decimals)
}

// purchaseQuantity checks quantity legality and returns the number of
// units being purchased (1 for unique assets).
func purchaseQuantity(l *listing.Listing, requested uint64) (uint64, error) {
	if l.IsUnique() {
		if requested != 0 {
			return 0, domain.ErrInvalidQuantity
		}
		return 1, nil
	}
	if requested == 0 || requested > l.Quantity {
		return 0, domain.ErrInvalidQuantity
	}
	if requested != l.Quantity && !l.PartialBuyEnabled {
		return 0, domain.ErrPartialBuyDisabled
	}
	return requested, nil
}

// portionPrice derives the price of the purchased portion from the current
// remaining price/quantity pair, so successive partial fills accumulate no
// rounding drift.
func portionPrice(l *listing.Listing, quantity uint64) *big.Int {
	price := bigOrZero(l.Price)
	if l.IsUnique() || quantity == l.Quantity {
		return new(big.Int).Set(price)
	}
	portion := new(big.Int).Mul(price, new(big.Int).SetUint64(quantity))
	return portion.Div(portion, new(big.Int).SetUint64(l.Quantity))
}

func isInvalidityKind(err error) bool {
	return errors.Is(err, domain.ErrCollectionNotAllowed) ||
		errors.Is(err, domain.ErrCurrencyNotAllowed) ||
		errors.Is(err, domain.ErrInsufficientBalance) ||
		errors.Is(err, domain.ErrAuthorizationLost)
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}

func normalizeCreateReq(req *listing.CreateReq) {
	req.Caller = req.Caller.ToLower()
	req.TokenAddress = req.TokenAddress.ToLower()
	req.Currency = req.Currency.ToLower()
	req.Holder = req.Holder.ToLower()
	req.Desired.LowerCase()
	for i := range req.Whitelist {
		req.Whitelist[i] = req.Whitelist[i].ToLower()
	}
}

func normalizeUpdateReq(req *listing.UpdateReq) {
	req.Caller = req.Caller.ToLower()
	req.Currency = req.Currency.ToLower()
	req.Holder = req.Holder.ToLower()
	req.Desired.LowerCase()
	for i := range req.Whitelist {
		req.Whitelist[i] = req.Whitelist[i].ToLower()
	}
}

func normalizeBuyReq(req *listing.BuyReq) {
	req.Buyer = req.Buyer.ToLower()
	req.Expected.Currency = req.Expected.Currency.ToLower()
	req.Expected.Desired.LowerCase()
	req.DesiredHolder = req.DesiredHolder.ToLower()
}
