package main

import (
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	storefrontv1 "github.com/dwikikusuma/refill-store/api/storefront/v1"
	"github.com/dwikikusuma/refill-store/internal/auth"

	cartapp "github.com/dwikikusuma/refill-store/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/refill-store/internal/cart/grpc"
	cartadapter "github.com/dwikikusuma/refill-store/internal/cart/infra/adapter"
	cartmem "github.com/dwikikusuma/refill-store/internal/cart/infra/memory"

	catalogapp "github.com/dwikikusuma/refill-store/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/refill-store/internal/catalog/grpc"
	"github.com/dwikikusuma/refill-store/internal/catalog/infra/static"

	checkoutapp "github.com/dwikikusuma/refill-store/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/refill-store/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/refill-store/internal/checkout/infra/adapter"

	orderapp "github.com/dwikikusuma/refill-store/internal/order/app"
	orderdomain "github.com/dwikikusuma/refill-store/internal/order/domain"
	ordergrpc "github.com/dwikikusuma/refill-store/internal/order/grpc"

	ratingapp "github.com/dwikikusuma/refill-store/internal/rating/app"
	ratingdomain "github.com/dwikikusuma/refill-store/internal/rating/domain"
	ratinggrpc "github.com/dwikikusuma/refill-store/internal/rating/grpc"

	"github.com/dwikikusuma/refill-store/pkg/config"
)

type storefront struct {
	grpc    *grpc.Server
	health  *health.Server
	watch   *ordergrpc.Server
	orders  *orderapp.Ledger
	ratings *ratingapp.Ledger

	unsubscribe []func()
}

func newStorefront(cfg config.Config, log *slog.Logger) *storefront {
	// Catalog
	catalogRepo := static.NewProductRepo(static.DefaultProducts(cfg.Currency))
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	cartSvc := cartapp.NewService(cartmem.NewCartRepo(), cartadapter.NewCatalogServiceReader(catalogSvc), log)

	// Ledgers
	orders := orderapp.NewLedger(log)
	ratings := ratingapp.NewLedger(log, ratingapp.WithCommentMax(cfg.RatingCommentMax))

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewOrderLedgerWriter(orders),
		cfg.Currency,
		checkoutapp.WithLogger(log),
	)

	authn := auth.NewAuthenticator(cfg.Customer, cfg.Admin)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(authn.UnaryInterceptor()),
		grpc.ChainStreamInterceptor(authn.StreamInterceptor()),
	)
	storefrontv1.RegisterCatalogServiceServer(srv, cgrpc.NewServer(catalogSvc))
	storefrontv1.RegisterCartServiceServer(srv, cartgrpc.NewServer(cartSvc))
	storefrontv1.RegisterCheckoutServiceServer(srv, checkoutgrpc.NewServer(checkoutSvc))
	orderSrv := ordergrpc.NewServer(orders)
	storefrontv1.RegisterOrderServiceServer(srv, orderSrv)
	storefrontv1.RegisterRatingServiceServer(srv, ratinggrpc.NewServer(ratings))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	sf := &storefront{grpc: srv, health: hs, watch: orderSrv, orders: orders, ratings: ratings}
	sf.unsubscribe = append(sf.unsubscribe,
		orders.Subscribe(func(all []orderdomain.Order) {
			log.Debug("orders changed",
				slog.Int("total", len(all)),
				slog.Int("admin_live", len(orderapp.AdminLiveView(all))))
		}),
		ratings.Subscribe(func(all []ratingdomain.Entry) {
			log.Debug("ratings changed", slog.Int("total", len(all)))
		}),
	)
	return sf
}

func (s *storefront) close() {
	for _, unsub := range s.unsubscribe {
		unsub()
	}
	s.health.Shutdown()
	s.watch.Close()
}
