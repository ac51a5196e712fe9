package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apporder "github.com/aromahub/perfumeshop/internal/application/order"
	"github.com/aromahub/perfumeshop/internal/config"
	"github.com/aromahub/perfumeshop/internal/infrastructure/client"
	httptransport "github.com/aromahub/perfumeshop/internal/presentation/http"
	"github.com/aromahub/perfumeshop/internal/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const serviceName = "order"

func main() {
	cfg, err := config.LoadOrder()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.MustNewLogger(serviceName, cfg.Env)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	catalogClient := client.NewCatalogClient(cfg.CatalogURL, cfg.UpstreamTimeout)
	svc := apporder.NewService(catalogClient)
	handler := httptransport.NewOrderHandler(svc, cfg.CatalogURL)

	metrics := httptransport.NewMetrics(prometheus.DefaultRegisterer, serviceName)
	engine := httptransport.NewEngine(cfg.Env,
		httptransport.Observability(logger, serviceName, metrics),
	)
	handler.Register(engine)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http_server_start", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_server_shutdown_error", zap.Error(err))
	} else {
		logger.Info("http_server_stopped")
	}
}
