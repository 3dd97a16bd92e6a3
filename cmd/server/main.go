package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/satellitegroup/printshop/internal/bootstrap"
	"github.com/satellitegroup/printshop/internal/cart"
	"github.com/satellitegroup/printshop/internal/catalog"
	"github.com/satellitegroup/printshop/internal/config"
	"github.com/satellitegroup/printshop/internal/es"
	"github.com/satellitegroup/printshop/internal/handlers"
	"github.com/satellitegroup/printshop/internal/logging"
	"github.com/satellitegroup/printshop/internal/mykafka"
	"github.com/satellitegroup/printshop/internal/orders"
	"github.com/satellitegroup/printshop/internal/payment"
	"github.com/satellitegroup/printshop/internal/quotes"
	"github.com/satellitegroup/printshop/internal/service/token"
	"github.com/satellitegroup/printshop/internal/storage"
	httpserver "github.com/satellitegroup/printshop/internal/transport/http"
	"github.com/satellitegroup/printshop/internal/wishlist"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	cat, err := catalog.New(catalog.Seed)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	esClient, err := es.NewClient(cfg)
	if err != nil {
		log.Fatalf("elasticsearch: %v", err)
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := cat.IndexAll(initCtx, esClient, cfg.ES_INDEX); err != nil {
		logger.Warn("catalog indexing failed, search degraded", "err", err)
	}
	if err := bootstrap.EnsureAdmin(logging.IntoContext(initCtx, logger), db, cfg.ADMIN_EMAIL); err != nil {
		logger.Warn("admin bootstrap failed", "err", err)
	}
	cancel()

	producer, err := mykafka.NewProducer(
		strings.Split(cfg.KAFKA_ADDRESS, ","),
		[]string{"user_events", "cart_events", "order_events", "quote_events"},
	)
	if err != nil {
		log.Fatalf("kafka producer: %v", err)
	}

	gateway := payment.NewPaystack(cfg.PAYSTACK_SECRET, cfg.PAYSTACK_BASE_URL)
	uploads := &storage.DiskStore{Dir: cfg.UPLOAD_DIR, PublicBase: cfg.UPLOAD_PUBLIC_BASE}

	cartRepo := &cart.Repo{DB: db}
	orderSvc := &orders.Service{Repo: &orders.GormRepo{DB: db}}

	tokens := &token.TokenService{
		DB:            db,
		JWTSecret:     []byte(cfg.JWT_SECRET),
		RefreshSecret: []byte(cfg.REFRESH_SECRET),
	}

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(logging.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		Auth: &handlers.AuthHandler{
			DB:            db,
			JWTSecret:     tokens.JWTSecret,
			RefreshSecret: tokens.RefreshSecret,
			Producer:      producer,
		},
		Products: &handlers.ProductHandler{Catalog: cat},
		Search:   &handlers.SearchHandler{ES: esClient, Index: cfg.ES_INDEX},
		Cart:     &handlers.CartHandler{Repo: cartRepo, Catalog: cat, Producer: producer},
		Orders: &handlers.OrderHandler{
			Svc:      orderSvc,
			CartRepo: cartRepo,
			Gateway:  gateway,
			Producer: producer,
		},
		Receipts: &handlers.ReceiptHandler{Svc: orderSvc, Uploads: uploads, Producer: producer},
		Wishlist: &handlers.WishlistHandler{Repo: &wishlist.Repo{DB: db}, Producer: producer},
		Quotes:   &handlers.QuoteHandler{Repo: &quotes.Repo{DB: db}, Uploads: uploads, Producer: producer},
		Admin:    &handlers.AdminHandler{DB: db, Svc: orderSvc, Producer: producer},
		Tokens:   tokens,
	})

	go func() {
		logger.Info("starting server", "addr", cfg.HTTP_ADDR)
		if err := e.Start(cfg.HTTP_ADDR); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "err", err)
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close", "err", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
