package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	lndclock "github.com/lightningnetwork/lnd/clock"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsync/internal/comms"
	"github.com/goodnatureofminers/chainsync/internal/consensus"
	"github.com/goodnatureofminers/chainsync/internal/crypto/pedersen"
	"github.com/goodnatureofminers/chainsync/internal/difficulty"
	"github.com/goodnatureofminers/chainsync/internal/metrics"
	"github.com/goodnatureofminers/chainsync/internal/repository/bolt"
	"github.com/goodnatureofminers/chainsync/internal/service/chainsync"
	"github.com/goodnatureofminers/chainsync/internal/validation"
)

var config struct {
	DBPath         string `long:"db-path" env:"BASENODE_DB_PATH" description:"chain database file" default:"chain.db"`
	Network        string `long:"network" env:"BASENODE_NETWORK" description:"mainnet, testnet or localnet" default:"mainnet"`
	MetricsAddr    string `long:"metrics-addr" env:"BASENODE_METRICS_ADDR" description:"prometheus listen addr" default:":9100"`
	PruningHorizon uint64 `long:"pruning-horizon" env:"BASENODE_PRUNING_HORIZON" description:"blocks kept with full bodies, 0 is archival"`

	MetadataAttempts   int           `long:"metadata-attempts" env:"BASENODE_METADATA_ATTEMPTS" description:"chain metadata attempts before giving up" default:"8"`
	MetadataBaseDelay  time.Duration `long:"metadata-base-delay" env:"BASENODE_METADATA_BASE_DELAY" description:"first metadata retry delay" default:"1s"`
	MetadataMultiplier float64       `long:"metadata-multiplier" env:"BASENODE_METADATA_MULTIPLIER" description:"metadata retry delay multiplier" default:"2"`
	MetadataMaxDelay   time.Duration `long:"metadata-max-delay" env:"BASENODE_METADATA_MAX_DELAY" description:"metadata retry delay cap" default:"1m"`

	HeaderChunkSize        uint64        `long:"header-chunk-size" env:"BASENODE_HEADER_CHUNK_SIZE" description:"headers requested per round" default:"100"`
	BlockRequestsPerSecond int           `long:"block-rps" env:"BASENODE_BLOCK_RPS" description:"block requests per second, 0 is unlimited" default:"20"`
	PeerTimeout            time.Duration `long:"peer-timeout" env:"BASENODE_PEER_TIMEOUT" description:"per peer metadata request timeout" default:"10s"`

	BypassInternalConsistency bool `long:"bypass-internal-consistency" env:"BASENODE_BYPASS_INTERNAL_CONSISTENCY" description:"skip the internal consistency check of synced blocks"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	rules, err := consensus.NewManager(consensus.Network(config.Network))
	if err != nil {
		logger.Fatal("Unknown network", zap.String("network", config.Network), zap.Error(err))
	}
	network := string(rules.Network())

	repo, err := bolt.Open(
		bolt.Config{Path: config.DBPath, PruningHorizon: config.PruningHorizon},
		rules.GenesisBlock(),
		rules.GenesisPow(),
		metrics.NewRepository(network),
		logger.Named("repository"),
	)
	if err != nil {
		logger.Fatal("Failed to open chain database", zap.String("path", config.DBPath), zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close chain database", zap.Error(err))
		}
	}()

	crypto := pedersen.NewVerifier()
	calc := difficulty.NewCalculator(rules, difficulty.NewCachingHasherFactory(difficulty.KeyedBlake2bHasherFactory{}, 16))
	validator := validation.NewBlockValidator(
		validation.NewHeaderValidator(rules, calc, lndclock.NewDefaultClock()),
		validation.NewBodyValidator(rules, crypto),
		validation.NewInternalConsistencyValidator(rules, crypto),
		metrics.NewValidation(network),
		config.BypassInternalConsistency,
	)
	if config.BypassInternalConsistency {
		logger.Warn("Internal consistency validation is disabled")
	}

	// Peer clients are registered by the transport layer. Without any, initial sync runs
	// out of metadata attempts and the node stops.
	peers := comms.NewMetadataAggregator(config.PeerTimeout, comms.DefaultConcurrency, logger.Named("comms"))

	cfg := chainsync.DefaultConfig()
	cfg.MaxMetadataAttempts = config.MetadataAttempts
	cfg.MetadataBaseDelay = config.MetadataBaseDelay
	cfg.MetadataMultiplier = config.MetadataMultiplier
	cfg.MetadataMaxDelay = config.MetadataMaxDelay
	cfg.HeaderChunkSize = config.HeaderChunkSize
	cfg.BlockRequestsPerSecond = config.BlockRequestsPerSecond

	machine := chainsync.NewStateMachine(
		repo,
		peers,
		peers,
		validator,
		rules,
		metrics.NewChainSync(network),
		logger.Named("chainsync"),
		cfg,
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &http.Server{
		Addr:              config.MetricsAddr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the metrics server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", config.MetricsAddr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve", zap.Error(err))
		}
	}()

	logger.Info("Starting chain sync", zap.String("network", network), zap.String("db", config.DBPath))
	if err := machine.Run(ctx); err != nil {
		logger.Error("Chain sync stopped", zap.Error(err))
		stop()
		return
	}
	logger.Info("Chain sync stopped")
}
