package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/openlistings/goengine/base/ctx"
	"github.com/openlistings/goengine/base/database/mongoclient"
	"github.com/openlistings/goengine/base/log"
	bValidator "github.com/openlistings/goengine/base/validator"
	"github.com/openlistings/goengine/domain"
	mmiddleware "github.com/openlistings/goengine/middleware"
	"github.com/openlistings/goengine/service/chain"
	"github.com/openlistings/goengine/service/chain/contract"
	"github.com/openlistings/goengine/service/ledger"
	"github.com/openlistings/goengine/service/query"
	hc_delivery "github.com/openlistings/goengine/stores/healthcheck/delivery/http"
	hc_repo "github.com/openlistings/goengine/stores/healthcheck/repository"
	hc_usecase "github.com/openlistings/goengine/stores/healthcheck/usecase"
	listing_delivery "github.com/openlistings/goengine/stores/listing/delivery/http"
	listing_repository "github.com/openlistings/goengine/stores/listing/repository"
	listing_usecase "github.com/openlistings/goengine/stores/listing/usecase"
	marketplace_delivery "github.com/openlistings/goengine/stores/marketplace/delivery/http"
	marketplace_repository "github.com/openlistings/goengine/stores/marketplace/repository"
	marketplace_usecase "github.com/openlistings/goengine/stores/marketplace/usecase"
	whitelist_repository "github.com/openlistings/goengine/stores/whitelist/repository"
	whitelist_usecase "github.com/openlistings/goengine/stores/whitelist/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	archiveRpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
		archiveRpcUrl := networks.GetString(fmt.Sprintf("%s.archiveRpcUrl", k))
		archiveRpcs[chainId] = archiveRpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		ArchiveRpcUrls: archiveRpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	transactor, err := chain.NewTransactor(context, &chain.TransactorCfg{
		RpcUrls:    rpcs,
		PrivateKey: viper.GetString("operator.privateKey"),
	})
	if err != nil {
		context.WithField("err", err).Error("transactor init failed")
		os.Exit(1)
	}
	operator := domain.Address(transactor.Address().Hex()).ToLower()

	erc721Service := contract.NewErc721(chainService, transactor)
	erc1155Service := contract.NewErc1155(chainService, transactor)
	erc2981Service := contract.NewErc2981(chainService)
	erc20Service := contract.NewErc20(chainService, transactor)

	ledgerAdapter := ledger.NewAdapter(&ledger.AdapterCfg{
		Erc721:  erc721Service,
		Erc1155: erc1155Service,
		Erc2981: erc2981Service,
	})
	paymentAdapter := ledger.NewPayment(&ledger.PaymentCfg{
		Erc20:      erc20Service,
		Transactor: transactor,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	listingRepo := listing_repository.NewListingRepo(q)
	eventRepo := listing_repository.NewEventRepo(q)
	whitelistRepo := whitelist_repository.NewWhitelistRepo(q)
	collectionRepo := marketplace_repository.NewCollectionRepo(q)
	currencyRepo := marketplace_repository.NewCurrencyRepo(q)
	settingsRepo := marketplace_repository.NewSettingsRepo(q)

	hc := hc_usecase.New(hcRepo)
	marketplace := marketplace_usecase.New(&marketplace_usecase.MarketplaceCfg{
		CollectionRepo: collectionRepo,
		CurrencyRepo:   currencyRepo,
		SettingsRepo:   settingsRepo,
	})
	validity := listing_usecase.NewValidity(&listing_usecase.ValidityCfg{
		Marketplace: marketplace,
		Ledger:      ledgerAdapter,
		Operator:    operator,
	})
	auth := listing_usecase.NewAuth(&listing_usecase.AuthCfg{
		Marketplace: marketplace,
		Ledger:      ledgerAdapter,
	})
	maxWhitelistBatch := viper.GetInt("engine.maxWhitelistBatch")
	engine := listing_usecase.NewEngine(&listing_usecase.EngineCfg{
		ListingRepo:       listingRepo,
		EventRepo:         eventRepo,
		WhitelistRepo:     whitelistRepo,
		Marketplace:       marketplace,
		Ledger:            ledgerAdapter,
		Payment:           paymentAdapter,
		Validity:          validity,
		Auth:              auth,
		Operator:          operator,
		MaxWhitelistBatch: maxWhitelistBatch,
	})
	whitelistGate := whitelist_usecase.New(&whitelist_usecase.WhitelistCfg{
		WhitelistRepo: whitelistRepo,
		ListingRepo:   listingRepo,
		Auth:          auth,
		MaxBatch:      maxWhitelistBatch,
	})

	hc_delivery.New(e, hc)
	listing_delivery.New(e, engine, whitelistGate, eventRepo)
	marketplace_delivery.New(e, marketplace)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
