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

	appaccount "github.com/aromahub/perfumeshop/internal/application/account"
	"github.com/aromahub/perfumeshop/internal/config"
	"github.com/aromahub/perfumeshop/internal/infrastructure/mongo"
	"github.com/aromahub/perfumeshop/internal/infrastructure/password"
	"github.com/aromahub/perfumeshop/internal/infrastructure/token"
	httptransport "github.com/aromahub/perfumeshop/internal/presentation/http"
	"github.com/aromahub/perfumeshop/internal/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const serviceName = "user"

func main() {
	cfg, err := config.LoadUser()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.MustNewLogger(serviceName, cfg.Env)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal("mongo_connect_failed", zap.Error(err))
	}
	defer func() { _ = mongo.Disconnect(db) }()
	logger.Info("mongo_connected")

	repo := mongo.NewAccountRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("mongo_index_failed", zap.Error(err))
	}

	svc := appaccount.NewService(
		repo,
		password.NewBcryptHasher(cfg.BcryptCost),
		token.NewJWTIssuer(cfg.JWTSecret, token.DefaultTTL),
	)
	handler := httptransport.NewUserHandler(svc)

	metrics := httptransport.NewMetrics(prometheus.DefaultRegisterer, serviceName)
	engine := httptransport.NewEngine(cfg.Env,
		cors.Default(),
		httptransport.Observability(logger, serviceName, metrics),
	)
	handler.Register(engine)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

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
