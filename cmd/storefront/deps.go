package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	accountapp "github.com/dwikikusuma/shoping-storefront/internal/account/app"
	accountsf "github.com/dwikikusuma/shoping-storefront/internal/account/infra/storefront"
	cartapp "github.com/dwikikusuma/shoping-storefront/internal/cart/app"
	cartsf "github.com/dwikikusuma/shoping-storefront/internal/cart/infra/storefront"
	catalogapp "github.com/dwikikusuma/shoping-storefront/internal/catalog/app"
	"github.com/dwikikusuma/shoping-storefront/internal/catalog/infra/shopifyadmin"
	catalogsf "github.com/dwikikusuma/shoping-storefront/internal/catalog/infra/storefront"
	checkoutapp "github.com/dwikikusuma/shoping-storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/shoping-storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/shoping-storefront/internal/session"
	"github.com/dwikikusuma/shoping-storefront/internal/session/sqlite"
	"github.com/dwikikusuma/shoping-storefront/pkg/config"
	"github.com/dwikikusuma/shoping-storefront/pkg/logger"
	"github.com/dwikikusuma/shoping-storefront/pkg/storefront"
)

// deps is everything a command may touch.
type deps struct {
	log      *slog.Logger
	session  *session.Session
	cart     *cartapp.Manager
	catalog  *catalogapp.Service
	account  *accountapp.Service
	checkout *checkoutapp.Service

	menuPrefixes []string
	close        func() error
}

type depsLoader func(ctx context.Context) (*deps, error)

func loadDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout()}
	client, err := storefront.New(storefront.Config{
		ShopDomain:  cfg.ShopDomain,
		AccessToken: cfg.StorefrontToken,
		APIVersion:  cfg.APIVersion,
		HTTPClient:  httpClient,
		Logger:      log,
	})
	if err != nil {
		return nil, err
	}

	var menu catalogapp.CollectionSource
	if cfg.AdminEnabled() {
		admin, err := shopifyadmin.New(shopifyadmin.Config{
			Shop:        cfg.AdminShop,
			AccessToken: cfg.AdminToken,
			APIVersion:  cfg.APIVersion,
			HTTPClient:  httpClient,
		})
		if err != nil {
			return nil, err
		}
		menu = admin
	}

	store, err := sqlite.Open(cfg.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	d := wire(client, session.New(store), menu, log)
	d.menuPrefixes = cfg.MenuPrefixes
	d.close = store.Close
	log.Debug("storefront ready", slog.String("endpoint", client.Endpoint()))
	return d, nil
}

// wire builds the services on top of one Storefront client and session.
// menu may be nil.
func wire(client *storefront.Client, sess *session.Session, menu catalogapp.CollectionSource, log *slog.Logger) *deps {
	cart := cartapp.NewManager(cartsf.NewCartGateway(client), sess, log)
	repo := catalogsf.NewCatalogRepo(client)

	return &deps{
		log:          log,
		session:      sess,
		cart:         cart,
		catalog:      catalogapp.NewService(repo, repo, menu),
		account:      accountapp.NewService(accountsf.NewAuthGateway(client), sess, log),
		checkout:     checkoutapp.NewService(checkoutadapter.NewCartManagerReader(cart)),
		menuPrefixes: config.Default().MenuPrefixes,
		close:        func() error { return nil },
	}
}
