// Package app assembles the service: storage, use cases, notifier, and
// the HTTP server.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fifahub/liga-tracker/external/notifier"
	"github.com/fifahub/liga-tracker/internal/config"
	"github.com/fifahub/liga-tracker/internal/domain/ban"
	"github.com/fifahub/liga-tracker/internal/domain/finance"
	"github.com/fifahub/liga-tracker/internal/domain/match"
	"github.com/fifahub/liga-tracker/internal/domain/motm"
	"github.com/fifahub/liga-tracker/internal/domain/player"
	cacherepo "github.com/fifahub/liga-tracker/internal/infrastructure/repository/cache"
	"github.com/fifahub/liga-tracker/internal/infrastructure/repository/memory"
	"github.com/fifahub/liga-tracker/internal/infrastructure/repository/postgres"
	"github.com/fifahub/liga-tracker/internal/interfaces/httpapi"
	basecache "github.com/fifahub/liga-tracker/internal/platform/cache"
	idgen "github.com/fifahub/liga-tracker/internal/platform/id"
	"github.com/fifahub/liga-tracker/internal/platform/logging"
	"github.com/fifahub/liga-tracker/internal/platform/resilience"
	"github.com/fifahub/liga-tracker/internal/usecase"
)

type repositories struct {
	matches  match.Repository
	players  player.Repository
	bans     ban.Repository
	finances finance.Repository
	awards   motm.Repository
}

// NewHTTPServer wires the full application and returns the server plus a
// cleanup func that releases storage resources.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.matches = cacherepo.NewMatchRepository(repos.matches, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.awards = cacherepo.NewMotmRepository(repos.awards, store)
	}

	var settlementNotifier usecase.Notifier
	if cfg.WebhookEnabled {
		settlementNotifier = notifier.NewWebhook(notifier.WebhookConfig{
			URL:     cfg.WebhookURL,
			Timeout: cfg.WebhookTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.WebhookCircuitEnabled,
				FailureThreshold: cfg.WebhookCircuitFailureCount,
				OpenTimeout:      cfg.WebhookCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.WebhookCircuitHalfOpenReqs,
			},
		}, logger)
	}

	matchSvc := usecase.NewMatchService(repos.matches)
	settlementSvc := usecase.NewSettlementService(
		repos.matches,
		repos.players,
		repos.bans,
		repos.finances,
		repos.awards,
		settlementNotifier,
		idgen.NewRandomGenerator(),
		logger,
	)
	playerSvc := usecase.NewPlayerService(repos.players, repos.finances)
	banSvc := usecase.NewBanService(repos.bans, repos.players)
	financeSvc := usecase.NewFinanceService(repos.finances)
	statsSvc := usecase.NewStatsService(repos.matches, repos.players, repos.awards, cfg.StatsTTL)
	auditSvc := usecase.NewAuditService(repos.matches, repos.players, repos.finances, repos.awards)

	handler := httpapi.NewHandler(
		matchSvc,
		settlementSvc,
		playerSvc,
		banSvc,
		financeSvc,
		statsSvc,
		auditSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanupErr := cleanup(context.Background())
		if cleanupErr != nil {
			logger.Warn("cleanup after failed startup", "error", cleanupErr)
		}
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func(context.Context) error, error) {
	if cfg.DBURL == "" {
		logger.Info("storage backend selected", "backend", "memory")
		return repositories{
			matches:  memory.NewMatchRepository(),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			bans:     memory.NewBanRepository(),
			finances: memory.NewFinanceRepository(),
			awards:   memory.NewMotmRepository(),
		}, func(context.Context) error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info("storage backend selected", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		matches:  postgres.NewMatchRepository(db),
		players:  postgres.NewPlayerRepository(db),
		bans:     postgres.NewBanRepository(db),
		finances: postgres.NewFinanceRepository(db),
		awards:   postgres.NewMotmRepository(db),
	}, func(context.Context) error { return db.Close() }, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}
