// Command tokenctl runs the gateway service: it loads configuration and a
// genesis manifest, opens ledger storage and the indexer database, wires
// the event fan-out (WebSocket broadcast + indexer), and serves the HTTP
// API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"tokencore/cmd/internal/secretsource"
	"tokencore/config"
	"tokencore/core/events"
	"tokencore/core/host"
	"tokencore/gateway"
	"tokencore/gateway/middleware"
	"tokencore/genesis"
	"tokencore/indexer"
	"tokencore/observability/logging"
	"tokencore/observability/metrics"
	telemetry "tokencore/observability/otel"
	"tokencore/storage"
	"tokencore/token"
)

func main() {
	configFile := flag.String("config", "./tokencore.toml", "Path to the configuration file")
	initGenesis := flag.Bool("init", false, "Run TokenCore.Init from the genesis manifest before serving")
	flag.Parse()

	env := strings.TrimSpace(os.Getenv("TOKENCORE_ENV"))
	logger := logging.Setup("tokenctl", env)

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Error("load config", "error", err.Error())
		os.Exit(1)
	}

	if strings.TrimSpace(cfg.LogFile) != "" {
		logger = logging.SetupRotating("tokenctl", env, cfg.LogFile, 100, 5, 28)
	}

	shutdownTelemetry, err := initTelemetry(cfg, env)
	if err != nil {
		logger.Error("init telemetry", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if shutdownTelemetry != nil {
			_ = shutdownTelemetry(context.Background())
		}
	}()

	backend, err := openBackend(cfg)
	if err != nil {
		logger.Error("open storage backend", "error", err.Error())
		os.Exit(1)
	}
	if closer, ok := backend.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	db, err := indexer.Open(indexer.Driver(cfg.IndexerDriver), cfg.IndexerDSN)
	if err != nil {
		logger.Error("open indexer", "error", err.Error())
		os.Exit(1)
	}
	ix := indexer.New(db, logger)

	broadcast := gateway.NewBroadcastEmitter()
	fanout := events.NewFanOut(ix, broadcast)
	runtime := host.NewRuntime(backend, fanout)

	if *initGenesis {
		if err := runInit(runtime, cfg.GenesisFile, logger); err != nil {
			logger.Error("genesis init", "error", err.Error())
			os.Exit(1)
		}
	}

	signingKey := cfg.JWTSigningKey
	if cfg.AuthEnabled && strings.TrimSpace(signingKey) == "" {
		secret, err := secretsource.NewSource("TOKENCTL_JWT_SECRET").Get()
		if err != nil {
			logger.Error("resolve JWT signing secret", "error", err.Error())
			os.Exit(1)
		}
		signingKey = secret
	}
	auth := middleware.NewAuthenticator(middleware.AuthConfig{
		Enabled:    cfg.AuthEnabled,
		HMACSecret: signingKey,
		Issuer:     cfg.JWTIssuer,
	}, logger)
	limiter := middleware.NewRateLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst)

	balanceCachePath := ""
	if strings.TrimSpace(cfg.DataDir) != "" {
		balanceCachePath = cfg.DataDir + "/balance-cache.db"
	}
	balanceCache, err := gateway.OpenBalanceCache(balanceCachePath)
	if err != nil {
		logger.Error("open balance cache", "error", err.Error())
		os.Exit(1)
	}
	defer balanceCache.Close()

	server := gateway.NewServer(runtime, broadcast, auth, limiter, logger,
		gateway.WithBalanceCache(balanceCache),
		gateway.WithIdempotency(db),
	)

	handler := otelhttp.NewHandler(server.Router(), "tokencore-gateway")

	httpServer := &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("tokenctl: listening", "addr", cfg.ListenAddress)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("gateway server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	waitForShutdown(httpServer, logger)
}

func initTelemetry(cfg *config.Config, env string) (func(context.Context) error, error) {
	insecure := cfg.OTelInsecure
	if value := strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_INSECURE")); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			insecure = parsed
		}
	}
	return telemetry.Init(context.Background(), telemetry.Config{
		ServiceName: "tokenctl",
		Environment: env,
		Endpoint:    cfg.OTelEndpoint,
		Insecure:    insecure,
		Headers:     telemetry.ParseHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")),
		Metrics:     true,
		Traces:      true,
	})
}

func openBackend(cfg *config.Config) (storage.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.StorageBackend)) {
	case "leveldb":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("prepare data dir: %w", err)
		}
		return storage.NewLevelStore(cfg.DataDir)
	case "memory", "":
		return storage.NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func runInit(runtime *host.Runtime, genesisPath string, logger *slog.Logger) error {
	manifest, err := genesis.Load(genesisPath)
	if err != nil {
		return fmt.Errorf("load genesis manifest: %w", err)
	}
	deployer, err := manifest.DeployerAddress()
	if err != nil {
		return err
	}
	masterMinters, owners, pausers, blacklister, err := manifest.Addresses()
	if err != nil {
		return err
	}
	initialSupply, err := manifest.InitialSupplyAmount()
	if err != nil {
		return err
	}
	params := token.InitParams{
		Symbol:           manifest.Symbol,
		Name:             manifest.Name,
		Decimals:         manifest.Decimals,
		InitialSupply:    initialSupply,
		MasterMinterList: masterMinters,
		OwnerList:        owners,
		PauserList:       pausers,
		Blacklister:      blacklister,
		Modality:         manifest.Modality(),
	}
	err = runtime.Dispatch(func(store storage.Backend, emit events.Emitter) error {
		core := token.New(store)
		return core.Init(deployer, emit, params)
	})
	if err != nil {
		return fmt.Errorf("token init: %w", err)
	}
	metrics.Token().SetTotalSupply(initialSupply.Float64())
	metrics.Token().SetPaused(false)
	logger.Info("tokenctl: genesis applied", "symbol", manifest.Symbol, "deployer", deployer.String())
	return nil
}

func waitForShutdown(srv *http.Server, logger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("tokenctl: shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err.Error())
	}
}
