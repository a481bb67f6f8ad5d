package routes

import (
	"context"
	"errors"
	_ "guytogo/docs"
	"guytogo/internal/infrastructure/config"
	"guytogo/internal/infrastructure/metrics"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathPing            = "/ping"
	PathAuth            = "/auth"
	PathProducts        = "/products"
	PathMe              = "/me"
	PathOrders          = "/orders"
	PathSubscriptions   = "/subscriptions"
	PathLessonPlans     = "/lesson-plans"
	PathAdmin           = "/admin"
	PathPaymentRequests = "/payment-requests"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	m := metrics.NewMetrics(cfg.MetricsNamespace)
	a, err := newApp(context.Background(), cfg, m)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(a, m),
		ReadHeaderTimeout: 15 * time.Second,
	}
	if err := serve(ctx, srv, a); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// serve runs srv until ctx is done, then drains in-flight requests and
// pending notifications before returning.
func serve(ctx context.Context, srv *http.Server, a *app) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		a.close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("[app][shutdown] stopping http server addr=%s", srv.Addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	<-errCh
	a.close()
	return err
}

// newRouter mounts every route of the storefront API on a fresh engine.
func newRouter(a *app, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, a)
	addCatalogRoutes(v1, a)
	addAccountRoutes(v1, a)
	addAdminRoutes(v1, a)

	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(m.Middleware())
}
