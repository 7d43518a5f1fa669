package ordersadmin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/handlers"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/middleware"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DefaultFlowID   int
}

// BackendService is everything the HTTP layer needs from the upstream
// client.
type BackendService interface {
	handlers.ListService
	handlers.OrderEditor
	handlers.CatalogService
	handlers.ShipmentService
	handlers.PurchaseOrderService
	handlers.AuthorizationService
	handlers.DashboardService
	handlers.OrderLoader
}

type Server struct {
	logger     *logging.ZapLogger
	httpServer *http.Server
	cfg        Config
}

func NewServer(
	cfg Config,
	tokenAuth *jwtauth.JWTAuth,
	tokenFactory handlers.TokenFactory,
	backend BackendService,
	dispatcher handlers.NotificationDispatcher,
	importService handlers.ImportService,
	logger *logging.ZapLogger,
) *Server {
	srv := &http.Server{
		Addr: cfg.ServerAddress,
		Handler: createMux(
			cfg,
			tokenAuth,
			tokenFactory,
			backend,
			dispatcher,
			importService,
			logger,
		),
	}

	res := &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: srv,
	}

	return res
}

func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server ListenAndServe failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func createMux(
	cfg Config,
	tokenAuth *jwtauth.JWTAuth,
	tokenFactory handlers.TokenFactory,
	backend BackendService,
	dispatcher handlers.NotificationDispatcher,
	importService handlers.ImportService,
	logger *logging.ZapLogger,
) *chi.Mux {

	authorizationHandler := handlers.NewAuthorizationHandler(backend, tokenFactory, logger)
	listGettingHandler := handlers.NewListGettingHandler(backend, logger)
	orderEditingHandler := handlers.NewOrderEditingHandler(backend, logger)
	catalogEditingHandler := handlers.NewCatalogEditingHandler(backend, logger)
	bulkNotifierHandler := handlers.NewBulkNotifierHandler(backend, dispatcher, cfg.DefaultFlowID, logger)
	orderImporterHandler := handlers.NewOrderImporterHandler(importService, logger)
	shipmentDispatcherHandler := handlers.NewShipmentDispatcherHandler(backend, logger)
	poCombinerHandler := handlers.NewPOCombinerHandler(backend, logger)
	dashboardGettingHandler := handlers.NewDashboardGettingHandler(backend, logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewLoggerContext().CreateHandler)
	router.Use(middleware.NewPanicRecover(logger).CreateHandler)

	router.Route("/api", func(router chi.Router) {
		router.Post("/auth/login", authorizationHandler.ServeHTTP)

		router.Group(func(router chi.Router) {
			router.Use(jwtauth.Verifier(tokenAuth))
			router.Use(jwtauth.Authenticator(tokenAuth))

			router.Get("/bank-orders", listGettingHandler.BankOrders)
			router.Get("/bip-orders", listGettingHandler.BipOrders)
			router.Get("/products", listGettingHandler.Products)
			router.Get("/vendors", listGettingHandler.Vendors)
			router.Get("/banks", listGettingHandler.Banks)
			router.Get("/categories", listGettingHandler.Categories)
			router.Get("/purchase-orders", listGettingHandler.PurchaseOrders)

			router.Post("/bank-orders", orderEditingHandler.CreateBankOrder)
			router.Get("/bank-orders/{orderID}", orderEditingHandler.GetBankOrder)
			router.Patch("/bank-orders/{orderID}", orderEditingHandler.UpdateBankOrder)
			router.Patch("/bank-orders/{orderID}/status", orderEditingHandler.UpdateBankOrderStatus)
			router.Delete("/bank-orders/{orderID}", orderEditingHandler.DeleteBankOrder)
			router.Post("/bip-orders", orderEditingHandler.CreateBipOrder)
			router.Get("/bip-orders/{orderID}", orderEditingHandler.GetBipOrder)
			router.Patch("/bip-orders/{orderID}", orderEditingHandler.UpdateBipOrder)
			router.Patch("/bip-orders/{orderID}/status", orderEditingHandler.UpdateBipOrderStatus)
			router.Delete("/bip-orders/{orderID}", orderEditingHandler.DeleteBipOrder)

			router.Post("/products", catalogEditingHandler.CreateProduct)
			router.Patch("/products/{id}", catalogEditingHandler.UpdateProduct)
			router.Delete("/products/{id}", catalogEditingHandler.DeleteProduct)
			router.Post("/vendors", catalogEditingHandler.CreateVendor)
			router.Patch("/vendors/{id}", catalogEditingHandler.UpdateVendor)
			router.Delete("/vendors/{id}", catalogEditingHandler.DeleteVendor)
			router.Post("/banks", catalogEditingHandler.CreateBank)
			router.Patch("/banks/{id}", catalogEditingHandler.UpdateBank)
			router.Delete("/banks/{id}", catalogEditingHandler.DeleteBank)
			router.Post("/categories", catalogEditingHandler.CreateCategory)
			router.Patch("/categories/{id}", catalogEditingHandler.UpdateCategory)
			router.Delete("/categories/{id}", catalogEditingHandler.DeleteCategory)

			router.Post("/notifications/bulk", bulkNotifierHandler.ServeHTTP)
			router.Post("/bip-orders/import", orderImporterHandler.ServeHTTP)

			router.Post("/shipments/dispatch/{kind}/{orderID}", shipmentDispatcherHandler.Dispatch)
			router.Post("/shipments/dispatch/{kind}/{orderID}/manual", shipmentDispatcherHandler.ManualDispatch)
			router.Get("/couriers", shipmentDispatcherHandler.Couriers)

			router.Post("/purchase-orders/combine/preview", poCombinerHandler.Preview)
			router.Post("/purchase-orders/merge", poCombinerHandler.Merge)
			router.Get("/purchase-orders/combinable", poCombinerHandler.Combinable)

			router.Get("/dashboard/stats", dashboardGettingHandler.ServeHTTP)
		})
	})

	return router
}
