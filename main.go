// File: handyhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"handyhub/config"
	"handyhub/cron"
	"handyhub/database"
	"handyhub/database/repository/bookingrepo"
	"handyhub/handlers"
	"handyhub/middleware"
	"handyhub/routes"
	cartSvc "handyhub/services/cart"
	"handyhub/services/catalog"
	"handyhub/services/checkout"
	"handyhub/services/ledger"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCartCache()
	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetCartCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingrepo.NewMongoBookingRepo()

	// stores.
	cartStore := cartSvc.NewRedisStore(utils.GetCartCacheClient(), utils.CartKeyPrefix)
	stageStore := cartSvc.NewRedisStore(utils.GetCartCacheClient(), utils.PendingBookingKeyPrefix)
	sessionStore := checkout.NewRedisSessionStore(utils.GetSessionCacheClient())

	// services.
	catalogProvider := catalog.NewStaticProvider()
	cartEngine := cartSvc.NewEngine(cartStore, logger)
	ledgerService := ledger.NewService(bookingRepo)

	var backend checkout.BookingBackend
	var taskClient *asynq.Client
	switch config.AppConfig.BookingBackend {
	case "mock":
		backend = checkout.NewMockBackend(2 * time.Second)
		logger.Sugar().Info("main: using mock booking backend")
	default:
		taskClient = cron.NewTaskClient()
		backend = checkout.NewLedgerBackend(bookingRepo, taskClient, logger)
		cron.InitFollowUpWorker(bookingRepo)
	}

	checkoutService := &checkout.DefaultCheckoutService{
		Carts:    cartStore,
		Stage:    stageStore,
		Sessions: sessionStore,
		Backend:  backend,
		Logger:   logger,
	}

	catalogHandler := handlers.NewCatalogHandler(catalogProvider)
	cartHandler := handlers.NewCartHandler(cartEngine, catalogProvider)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	bookingHandler := handlers.NewBookingHandler(ledgerService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListServicesHandler: catalogHandler.ListServices,
		GetServiceHandler:   catalogHandler.GetService,

		// Cart endpoints.
		GetCartHandler:        cartHandler.GetCart,
		AddToCartHandler:      cartHandler.AddToCart,
		ChangeQuantityHandler: cartHandler.ChangeQuantity,
		RemoveServiceHandler:  cartHandler.RemoveService,

		// Checkout endpoints.
		StartCheckoutHandler:  checkoutHandler.StartCheckout,
		GetCheckoutHandler:    checkoutHandler.GetCheckout,
		SubmitDateTimeHandler: checkoutHandler.SubmitDateTime,
		SubmitAddressHandler:  checkoutHandler.SubmitAddress,
		CheckoutBackHandler:   checkoutHandler.CheckoutBack,
		ConfirmBookingHandler: checkoutHandler.ConfirmBooking,

		// Booking ledger endpoints.
		ListBookingsHandler:  bookingHandler.ListBookings,
		GetBookingHandler:    bookingHandler.GetBooking,
		CancelBookingHandler: bookingHandler.CancelBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	if taskClient != nil {
		if err := taskClient.Close(); err != nil {
			logger.Sugar().Warnf("main: failed to close task client: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
