package chain

import (
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/openlistings/goengine/base/backoff"
	bCtx "github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/log"
)

// sendAttempts bounds resubmission of an already-signed transaction.
// Resending the same signed payload is idempotent, the nonce pins it.
const sendAttempts = 3

type TransactorCfg struct {
	RpcUrls map[int32]string
	// PrivateKey is the hex-encoded key of the engine's operator account.
	PrivateKey string
}

// Transactor sends state-changing transactions from the operator account
// and waits for them to be mined.
type Transactor interface {
	Address() common.Address
	Transact(ctx bCtx.Ctx, chainId int32, to common.Address, value *big.Int, _abi *abi.ABI, method string, params ...interface{}) (common.Hash, error)
}

type transactorImpl struct {
	clients map[int32]*ethclient.Client
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewTransactor(ctx bCtx.Ctx, cfg *TransactorCfg) (Transactor, error) {
	key, err := crypto.HexToECDSA(cfg.PrivateKey)
	if err != nil {
		ctx.WithField("err", err).Error("crypto.HexToECDSA failed")
		return nil, err
	}
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}
	return &transactorImpl{
		clients: clients,
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (t *transactorImpl) Address() common.Address {
	return t.address
}

func (t *transactorImpl) Transact(ctx bCtx.Ctx, chainId int32, to common.Address, value *big.Int, _abi *abi.ABI, method string, params ...interface{}) (common.Hash, error) {
	client, ok := t.clients[chainId]
	if !ok {
		return common.Hash{}, ErrUnsupportedChain
	}

	var data []byte
	if _abi != nil {
		packed, err := _abi.Pack(method, params...)
		if err != nil {
			ctx.WithFields(log.Fields{
				"method": method,
				"params": params,
				"err":    err,
			}).Error("abi.Pack failed")
			return common.Hash{}, err
		}
		data = packed
	}
	if value == nil {
		value = big.NewInt(0)
	}

	nonce, err := client.PendingNonceAt(ctx, t.address)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return common.Hash{}, err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return common.Hash{}, err
	}
	gas, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From:  t.address,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return common.Hash{}, err
	}

	tx := types.NewTransaction(nonce, to, value, gas, gasPrice, data)
	signer := types.LatestSignerForChainID(big.NewInt(int64(chainId)))
	signed, err := types.SignTx(tx, signer, t.key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return common.Hash{}, err
	}
	bo := backoff.NewExponential(time.Second, 8*time.Second)
	for attempt := 0; ; attempt++ {
		err := client.SendTransaction(ctx, signed)
		if err == nil {
			break
		}
		ctx.WithFields(log.Fields{
			"err":     err,
			"tx":      signed.Hash().Hex(),
			"attempt": attempt,
		}).Error("client.SendTransaction failed")
		if attempt+1 >= sendAttempts {
			return common.Hash{}, err
		}
		if err := bo.Backoff(ctx); err != nil {
			return common.Hash{}, err
		}
	}
	if _, err := waitMined(ctx, client, signed); err != nil {
		return signed.Hash(), err
	}
	return signed.Hash(), nil
}

func waitMined(ctx bCtx.Ctx, client *ethclient.Client, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		ctx.WithField("err", err).Error("bind.WaitMined failed")
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, xerrors.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return receipt, nil
}
