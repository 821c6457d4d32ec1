package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/log"
	"github.com/openlistings/goengine/domain"
	dLedger "github.com/openlistings/goengine/domain/ledger"
	"github.com/openlistings/goengine/service/chain"
	"github.com/openlistings/goengine/service/chain/contract"
)

type PaymentCfg struct {
	Erc20      *contract.Erc20
	Transactor chain.Transactor
}

type paymentImpl struct {
	erc20      *contract.Erc20
	transactor chain.Transactor
}

func NewPayment(cfg *PaymentCfg) dLedger.PaymentAdapter {
	return &paymentImpl{
		erc20:      cfg.Erc20,
		transactor: cfg.Transactor,
	}
}

// TransferNative forwards native currency held by the in-flight settlement
// to the recipient as a plain value transfer.
func (p *paymentImpl) TransferNative(ctx bCtx.Ctx, chainId domain.ChainId, to domain.Address, amount *big.Int) error {
	_, err := p.transactor.Transact(ctx, int32(chainId), common.HexToAddress(to.ToLowerStr()), amount, nil, "")
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount.String(),
		}).Error("native transfer failed")
		return err
	}
	return nil
}

func (p *paymentImpl) Transfer(ctx bCtx.Ctx, chainId domain.ChainId, currency domain.Address, from, to domain.Address, amount *big.Int) error {
	err := p.erc20.TransferFrom(ctx, int32(chainId), currency.ToLowerStr(), from.ToLowerStr(), to.ToLowerStr(), amount)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"currency": currency,
			"from":     from,
			"to":       to,
			"amount":   amount.String(),
		}).Error("erc20 transfer failed")
		return err
	}
	return nil
}
