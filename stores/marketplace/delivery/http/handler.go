package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/delivery"
	"github.com/openlistings/goengine/domain"
	dMarketplace "github.com/openlistings/goengine/domain/marketplace"
)

type handler struct {
	marketplace dMarketplace.UseCase
}

func New(e *echo.Echo, _marketplace dMarketplace.UseCase) {
	h := &handler{_marketplace}

	g := e.Group("/marketplace")

	g.GET("/settings", h.getSettings)

	g.GET("/collections", h.getCollections)

	g.POST("/collections", h.allowCollection)

	g.DELETE("/collections", h.disallowCollection)

	g.GET("/currencies", h.getCurrencies)

	g.POST("/currencies", h.allowCurrency)

	g.DELETE("/currencies", h.disallowCurrency)

	g.PUT("/fee-rate", h.setFeeRate)

	g.PUT("/paused", h.setPaused)

	g.PUT("/owner", h.transferOwnership)
}

func (h *handler) getSettings(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	owner, err := h.marketplace.PlatformOwner(ctx)
	if err != nil {
		return errResp(_ctx, err)
	}
	feeRate, err := h.marketplace.FeeRate(ctx)
	if err != nil {
		return errResp(_ctx, err)
	}
	paused, err := h.marketplace.IsPaused(ctx)
	if err != nil {
		return errResp(_ctx, err)
	}

	return delivery.MakeJsonResp(_ctx, http.StatusOK, dMarketplace.Settings{
		Owner:   owner,
		FeeRate: feeRate,
		Paused:  paused,
	})
}

func (h *handler) getCollections(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId domain.ChainId `query:"chainId"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.ListCollections(ctx, p.ChainId)
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) allowCollection(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller  domain.Address `json:"caller"`
		ChainId domain.ChainId `json:"chainId"`
		Address domain.Address `json:"address"`
		Name    string         `json:"name"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	err := h.marketplace.AllowCollection(ctx, p.Caller, &dMarketplace.Collection{
		ChainId: p.ChainId,
		Address: p.Address,
		Name:    p.Name,
	})
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) disallowCollection(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller  domain.Address `json:"caller"`
		ChainId domain.ChainId `json:"chainId"`
		Address domain.Address `json:"address"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	err := h.marketplace.DisallowCollection(ctx, p.Caller, dMarketplace.CollectionId{
		ChainId: p.ChainId,
		Address: p.Address,
	})
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) getCurrencies(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId domain.ChainId `query:"chainId"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketplace.ListCurrencies(ctx, p.ChainId)
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) allowCurrency(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller   domain.Address `json:"caller"`
		ChainId  domain.ChainId `json:"chainId"`
		Address  domain.Address `json:"address"`
		Symbol   string         `json:"symbol"`
		Decimals int32          `json:"decimals"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	err := h.marketplace.AllowCurrency(ctx, p.Caller, &dMarketplace.Currency{
		ChainId:  p.ChainId,
		Address:  p.Address,
		Symbol:   p.Symbol,
		Decimals: p.Decimals,
	})
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) disallowCurrency(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller  domain.Address `json:"caller"`
		ChainId domain.ChainId `json:"chainId"`
		Address domain.Address `json:"address"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	err := h.marketplace.DisallowCurrency(ctx, p.Caller, dMarketplace.CurrencyId{
		ChainId: p.ChainId,
		Address: p.Address,
	})
	if err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) setFeeRate(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `json:"caller"`
		Rate   uint64         `json:"rate"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.SetFeeRate(ctx, p.Caller, p.Rate); err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) setPaused(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `json:"caller"`
		Paused bool           `json:"paused"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.SetPaused(ctx, p.Caller, p.Paused); err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) transferOwnership(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller   domain.Address `json:"caller"`
		NewOwner domain.Address `json:"newOwner"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.TransferOwnership(ctx, p.Caller, p.NewOwner); err != nil {
		return errResp(_ctx, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func errResp(_ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotAuthorized):
		return delivery.MakeJsonResp(_ctx, http.StatusUnauthorized, err)
	case errors.Is(err, domain.ErrZeroAddress):
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
}
