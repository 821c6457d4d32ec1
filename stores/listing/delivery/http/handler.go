package http

import (
	"errors"
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"
	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/delivery"
	"github.com/openlistings/goengine/base/metrics"
	"github.com/openlistings/goengine/domain"
	dListing "github.com/openlistings/goengine/domain/listing"
	dWhitelist "github.com/openlistings/goengine/domain/whitelist"
)

var met metrics.Service

type handler struct {
	listing   dListing.UseCase
	whitelist dWhitelist.UseCase
	event     dListing.EventRepo
}

func New(e *echo.Echo, _listing dListing.UseCase, _whitelist dWhitelist.UseCase, _event dListing.EventRepo) {
	met = metrics.New("listing")

	h := &handler{_listing, _whitelist, _event}

	gs := e.Group("/listings")

	gs.GET("", h.getAll)

	gs.POST("", h.create)

	g := e.Group("/listing/:listingId")

	g.GET("", h.get)

	g.PUT("", h.update)

	g.POST("/buy", h.buy)

	g.POST("/cancel", h.cancel)

	g.POST("/clean", h.clean)

	g.GET("/events", h.getEvents)

	g.GET("/whitelist", h.getWhitelist)

	g.POST("/whitelist", h.addWhitelist)

	g.DELETE("/whitelist", h.removeWhitelist)
}

func (h *handler) getAll(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId      *domain.ChainId `query:"chainId"`
		Seller       *domain.Address `query:"seller"`
		TokenAddress *domain.Address `query:"tokenAddress"`
		TokenId      *domain.TokenId `query:"tokenId"`
		Currency     *domain.Address `query:"currency"`
		SortBy       *string         `query:"sortBy"`
		SortDir      *domain.SortDir `query:"sortDir"`
		Offset       int32           `query:"offset"`
		Limit        int32           `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dListing.FindAllOptionsFunc{
		dListing.WithPagination(p.Offset, p.Limit),
	}
	if p.SortBy != nil && p.SortDir != nil {
		opts = append(opts, dListing.WithSort(*p.SortBy, *p.SortDir))
	}
	if p.ChainId != nil {
		opts = append(opts, dListing.WithChainId(*p.ChainId))
	}
	if p.Seller != nil {
		opts = append(opts, dListing.WithSeller(*p.Seller))
	}
	if p.TokenAddress != nil && p.TokenId != nil {
		opts = append(opts, dListing.WithToken(*p.TokenAddress, *p.TokenId))
	} else if p.TokenAddress != nil {
		opts = append(opts, dListing.WithCollection(*p.TokenAddress))
	}
	if p.Currency != nil {
		opts = append(opts, dListing.WithCurrency(*p.Currency))
	}

	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) get(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ListingId domain.ListingId `param:"listingId"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.listing.Get(ctx, p.ListingId)
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) create(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId               domain.ChainId     `json:"chainId"`
		Caller                domain.Address     `json:"caller"`
		TokenAddress          domain.Address     `json:"tokenAddress"`
		TokenId               domain.TokenId     `json:"tokenId"`
		Quantity              uint64             `json:"quantity"`
		Price                 string             `json:"price"`
		Currency              domain.Address     `json:"currency"`
		Desired               dListing.SwapTerms `json:"desired"`
		Holder                domain.Address     `json:"holder"`
		BuyerWhitelistEnabled bool               `json:"buyerWhitelistEnabled"`
		Whitelist             []domain.Address   `json:"whitelist"`
		PartialBuyEnabled     bool               `json:"partialBuyEnabled"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	price, err := parseAmount(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	id, err := h.listing.Create(ctx, &dListing.CreateReq{
		ChainId:               p.ChainId,
		Caller:                p.Caller,
		TokenAddress:          p.TokenAddress,
		TokenId:               p.TokenId,
		Quantity:              p.Quantity,
		Price:                 price,
		Currency:              p.Currency,
		Desired:               p.Desired,
		Holder:                p.Holder,
		BuyerWhitelistEnabled: p.BuyerWhitelistEnabled,
		Whitelist:             p.Whitelist,
		PartialBuyEnabled:     p.PartialBuyEnabled,
	})
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, id)
}

func (h *handler) update(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ListingId             domain.ListingId   `param:"listingId"`
		Caller                domain.Address     `json:"caller"`
		Quantity              uint64             `json:"quantity"`
		Price                 string             `json:"price"`
		Currency              domain.Address     `json:"currency"`
		Desired               dListing.SwapTerms `json:"desired"`
		Holder                domain.Address     `json:"holder"`
		BuyerWhitelistEnabled bool               `json:"buyerWhitelistEnabled"`
		Whitelist             []domain.Address   `json:"whitelist"`
		PartialBuyEnabled     bool               `json:"partialBuyEnabled"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	price, err := parseAmount(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	err = h.listing.Update(ctx, &dListing.UpdateReq{
		ListingId:             p.ListingId,
		Caller:                p.Caller,
		Quantity:              p.Quantity,
		Price:                 price,
		Currency:              p.Currency,
		Desired:               p.Desired,
		Holder:                p.Holder,
		BuyerWhitelistEnabled: p.BuyerWhitelistEnabled,
		Whitelist:             p.Whitelist,
		PartialBuyEnabled:     p.PartialBuyEnabled,
	})
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) buy(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	defer met.BumpTime("buy.time").End()
	type expected struct {
		Price    string             `json:"price"`
		Currency domain.Address     `json:"currency"`
		Quantity uint64             `json:"quantity"`
		Desired  dListing.SwapTerms `json:"desired"`
	}
	type params struct {
		ListingId     domain.ListingId `param:"listingId"`
		Buyer         domain.Address   `json:"buyer"`
		Quantity      uint64           `json:"quantity"`
		Expected      expected         `json:"expected"`
		Value         string           `json:"value"`
		DesiredHolder domain.Address   `json:"desiredHolder"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	expectedPrice, err := parseAmount(p.Expected.Price)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	value, err := parseAmount(p.Value)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}
	if value == nil {
		value = big.NewInt(0)
	}

	receipt, err := h.listing.Buy(ctx, &dListing.BuyReq{
		ListingId: p.ListingId,
		Buyer:     p.Buyer,
		Quantity:  p.Quantity,
		Expected: dListing.ExpectedTerms{
			Price:    expectedPrice,
			Currency: p.Expected.Currency,
			Quantity: p.Expected.Quantity,
			Desired:  p.Expected.Desired,
		},
		Value:         value,
		DesiredHolder: p.DesiredHolder,
	})
	if err != nil {
		return errResp(_ctx, err)
	}
	met.BumpSum("buy.count", 1)
	return delivery.MakeJsonResp(_ctx, http.StatusOK, receipt)
}

func (h *handler) cancel(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ListingId domain.ListingId `param:"listingId"`
		Caller    domain.Address   `json:"caller"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.listing.Cancel(ctx, p.ListingId, p.Caller); err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) clean(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ListingId domain.ListingId `param:"listingId"`
		Caller    domain.Address   `json:"caller"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.listing.Clean(ctx, p.ListingId, p.Caller); err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) getEvents(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ListingId domain.ListingId    `param:"listingId"`
		Type      *dListing.EventType `query:"type"`
		Offset    int32               `query:"offset"`
		Limit     int32               `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dListing.EventFindAllOptionsFunc{
		dListing.EventWithListingId(p.ListingId),
		dListing.EventWithPagination(p.Offset, p.Limit),
	}
	if p.Type != nil {
		opts = append(opts, dListing.EventWithType(*p.Type))
	}

	res, err := h.event.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getWhitelist(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ListingId domain.ListingId `param:"listingId"`
		Address   *domain.Address  `query:"address"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if p.Address != nil {
		ok, err := h.whitelist.IsWhitelisted(ctx, p.ListingId, *p.Address)
		if err != nil {
			return errResp(_ctx, err)
		}
		return delivery.MakeJsonResp(_ctx, http.StatusOK, ok)
	}

	res, err := h.whitelist.FindAll(ctx, p.ListingId)
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) addWhitelist(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ListingId domain.ListingId `param:"listingId"`
		Caller    domain.Address   `json:"caller"`
		Addresses []domain.Address `json:"addresses"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.whitelist.Add(ctx, p.ListingId, p.Caller, p.Addresses); err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) removeWhitelist(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ListingId domain.ListingId `param:"listingId"`
		Caller    domain.Address   `json:"caller"`
		Addresses []domain.Address `json:"addresses"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.whitelist.Remove(ctx, p.ListingId, p.Caller, p.Addresses); err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

// parseAmount parses a base-10 amount string. Empty means absent.
func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return v, nil
}

func errResp(_ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotListed):
		return delivery.MakeJsonResp(_ctx, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrNotAuthorized):
		return delivery.MakeJsonResp(_ctx, http.StatusUnauthorized, err)
	case errors.Is(err, domain.ErrPaused), errors.Is(err, domain.ErrReentrancy):
		return delivery.MakeJsonResp(_ctx, http.StatusConflict, err)
	case errors.Is(err, domain.ErrTermsChanged),
		errors.Is(err, domain.ErrNotWhitelisted),
		errors.Is(err, domain.ErrStillValid),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrAuthorizationLost),
		errors.Is(err, domain.ErrProceedsExceeded),
		errors.Is(err, domain.ErrCollectionNotAllowed),
		errors.Is(err, domain.ErrCurrencyNotAllowed),
		errors.Is(err, domain.ErrKindMismatch),
		errors.Is(err, domain.ErrUnsupportedAsset),
		errors.Is(err, domain.ErrSameTokenSwap),
		errors.Is(err, domain.ErrFreeListing),
		errors.Is(err, domain.ErrIndivisiblePrice),
		errors.Is(err, domain.ErrPartialBuyDisabled),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrSelfPurchase),
		errors.Is(err, domain.ErrZeroAddress),
		errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, domain.ErrBatchTooLarge),
		errors.Is(err, domain.ErrWrongPaymentValue):
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
}
