package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/smartsales365/terminal/internal/cli"
	"github.com/smartsales365/terminal/internal/config"
	"github.com/smartsales365/terminal/internal/core/service"
	"github.com/smartsales365/terminal/internal/infrastructure/localstore"
	"github.com/smartsales365/terminal/internal/infrastructure/rest"
	"github.com/smartsales365/terminal/internal/infrastructure/stripeapi"
	"github.com/smartsales365/terminal/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A .env next to the binary mirrors the hosted client's setup; absence
	// is fine, the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	store, err := localstore.New(cfg.StateDir, logger.With("localstore"))
	if err != nil {
		log.Error().Err(err).Msg("state directory unavailable")
		return 1
	}

	cart := service.NewCartService(store.Carts(), logger.With("cart"))

	api := rest.NewClient(cfg.APIBaseURL, nil, logger.With("rest"))
	auth := rest.NewAuthGateway(api)

	session := service.NewSessionService(auth, store.Sessions(), cart, logger.With("session"))
	api.SetTokenSource(session)
	// Any 401 from any authenticated call drops the session locally.
	api.SetUnauthorizedHook(session.Invalidate)

	cards := stripeapi.NewClient(cfg.Stripe.APIURL, cfg.Stripe.PublishableKey, logger.With("stripe"))
	payments := rest.NewPaymentGateway(api)
	sales := rest.NewSaleGateway(api)

	app := &cli.App{
		Config:   cfg,
		Session:  session,
		Cart:     cart,
		Checkout: service.NewCheckoutService(cart, session, payments, cards, sales, logger.With("checkout")),
		Reports:  service.NewReportService(rest.NewReportGateway(api), logger.With("reports")),
		Clients:  rest.NewClientGateway(api),
		Products: rest.NewProductGateway(api),
		Sales:    sales,
		Log:      log,
	}

	return cli.Execute(app)
}
