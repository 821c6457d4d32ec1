// Package ledger backs the engine's asset and payment operations with
// on-chain contract calls through the operator account.
package ledger

import (
	"math/big"

	"golang.org/x/xerrors"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/log"
	"github.com/openlistings/goengine/domain"
	dLedger "github.com/openlistings/goengine/domain/ledger"
	"github.com/openlistings/goengine/service/chain/contract"
)

type AdapterCfg struct {
	Erc721  *contract.Erc721
	Erc1155 *contract.Erc1155
	Erc2981 *contract.Erc2981
}

type adapterImpl struct {
	erc721  *contract.Erc721
	erc1155 *contract.Erc1155
	erc2981 *contract.Erc2981
}

func NewAdapter(cfg *AdapterCfg) dLedger.Adapter {
	return &adapterImpl{
		erc721:  cfg.Erc721,
		erc1155: cfg.Erc1155,
		erc2981: cfg.Erc2981,
	}
}

func (a *adapterImpl) ProbeKind(ctx bCtx.Ctx, asset dLedger.AssetId) (dLedger.Kind, error) {
	chainId := int32(asset.ChainId)
	addr := asset.TokenAddress.ToLowerStr()
	if ok, err := a.erc721.Supports721Interface(ctx, chainId, addr); err != nil {
		ctx.WithField("err", err).Error("erc721.Supports721Interface failed")
		return dLedger.KindUnsupported, err
	} else if ok {
		return dLedger.KindUnique, nil
	}
	if ok, err := a.erc1155.Supports1155Interface(ctx, chainId, addr); err != nil {
		ctx.WithField("err", err).Error("erc1155.Supports1155Interface failed")
		return dLedger.KindUnsupported, err
	} else if ok {
		return dLedger.KindFungible, nil
	}
	return dLedger.KindUnsupported, nil
}

func (a *adapterImpl) OwnerOf(ctx bCtx.Ctx, asset dLedger.AssetId) (domain.Address, error) {
	tokenId, ok := asset.TokenId.ToBig()
	if !ok {
		return "", xerrors.Errorf("malformed token id %q", asset.TokenId)
	}
	owner, err := a.erc721.OwnerOf(ctx, int32(asset.ChainId), asset.TokenAddress.ToLowerStr(), tokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"asset": asset,
		}).Error("erc721.OwnerOf failed")
		return "", err
	}
	return domain.Address(owner).ToLower(), nil
}

func (a *adapterImpl) BalanceOf(ctx bCtx.Ctx, holder domain.Address, asset dLedger.AssetId) (uint64, error) {
	tokenId, ok := asset.TokenId.ToBig()
	if !ok {
		return 0, xerrors.Errorf("malformed token id %q", asset.TokenId)
	}
	balance, err := a.erc1155.BalanceOf(ctx, int32(asset.ChainId), asset.TokenAddress.ToLowerStr(), holder.ToLowerStr(), tokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
			"asset":  asset,
		}).Error("erc1155.BalanceOf failed")
		return 0, err
	}
	if !balance.IsUint64() {
		return ^uint64(0), nil
	}
	return balance.Uint64(), nil
}

// IsTransferAuthorized accepts either a per-token approval (unique assets
// only) or a blanket operator approval.
func (a *adapterImpl) IsTransferAuthorized(ctx bCtx.Ctx, holder, operator domain.Address, asset dLedger.AssetId) (bool, error) {
	kind, err := a.ProbeKind(ctx, asset)
	if err != nil {
		return false, err
	}
	chainId := int32(asset.ChainId)
	addr := asset.TokenAddress.ToLowerStr()
	switch kind {
	case dLedger.KindUnique:
		tokenId, ok := asset.TokenId.ToBig()
		if !ok {
			return false, xerrors.Errorf("malformed token id %q", asset.TokenId)
		}
		approved, err := a.erc721.GetApproved(ctx, chainId, addr, tokenId)
		if err != nil {
			ctx.WithField("err", err).Error("erc721.GetApproved failed")
			return false, err
		}
		if operator.Equals(domain.Address(approved)) {
			return true, nil
		}
		return a.erc721.IsApprovedForAll(ctx, chainId, addr, holder.ToLowerStr(), operator.ToLowerStr())
	case dLedger.KindFungible:
		return a.erc1155.IsApprovedForAll(ctx, chainId, addr, holder.ToLowerStr(), operator.ToLowerStr())
	}
	return false, domain.ErrUnsupportedAsset
}

func (a *adapterImpl) Transfer(ctx bCtx.Ctx, from, to domain.Address, asset dLedger.AssetId, quantity uint64) error {
	kind, err := a.ProbeKind(ctx, asset)
	if err != nil {
		return err
	}
	tokenId, ok := asset.TokenId.ToBig()
	if !ok {
		return xerrors.Errorf("malformed token id %q", asset.TokenId)
	}
	chainId := int32(asset.ChainId)
	addr := asset.TokenAddress.ToLowerStr()
	switch kind {
	case dLedger.KindUnique:
		err = a.erc721.TransferFrom(ctx, chainId, addr, from.ToLowerStr(), to.ToLowerStr(), tokenId)
	case dLedger.KindFungible:
		err = a.erc1155.SafeTransferFrom(ctx, chainId, addr, from.ToLowerStr(), to.ToLowerStr(), tokenId, new(big.Int).SetUint64(quantity))
	default:
		return domain.ErrUnsupportedAsset
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"from":  from,
			"to":    to,
			"asset": asset,
		}).Error("transfer failed")
		return err
	}
	return nil
}

// RoyaltyInfo returns nil for assets that do not expose royalty terms.
func (a *adapterImpl) RoyaltyInfo(ctx bCtx.Ctx, asset dLedger.AssetId, saleAmount *big.Int) (*dLedger.Royalty, error) {
	chainId := int32(asset.ChainId)
	addr := asset.TokenAddress.ToLowerStr()
	supported, err := a.erc2981.Supports2981Interface(ctx, chainId, addr)
	if err != nil {
		ctx.WithField("err", err).Error("erc2981.Supports2981Interface failed")
		return nil, err
	}
	if !supported {
		return nil, nil
	}
	tokenId, ok := asset.TokenId.ToBig()
	if !ok {
		return nil, xerrors.Errorf("malformed token id %q", asset.TokenId)
	}
	receiver, amount, err := a.erc2981.RoyaltyInfo(ctx, chainId, addr, tokenId, saleAmount)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"asset": asset,
		}).Error("erc2981.RoyaltyInfo failed")
		return nil, err
	}
	return &dLedger.Royalty{
		Receiver: domain.Address(receiver).ToLower(),
		Amount:   amount,
	}, nil
}
