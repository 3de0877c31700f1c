package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/dadifc/teamstats/internal/config"
	"github.com/dadifc/teamstats/internal/domain/match"
	"github.com/dadifc/teamstats/internal/domain/matchstat"
	"github.com/dadifc/teamstats/internal/domain/player"
	"github.com/dadifc/teamstats/internal/domain/season"
	"github.com/dadifc/teamstats/internal/domain/team"
	cacherepo "github.com/dadifc/teamstats/internal/infrastructure/repository/cache"
	"github.com/dadifc/teamstats/internal/infrastructure/repository/memory"
	"github.com/dadifc/teamstats/internal/infrastructure/repository/postgres"
	"github.com/dadifc/teamstats/internal/interfaces/httpapi"
	basecache "github.com/dadifc/teamstats/internal/platform/cache"
	idgen "github.com/dadifc/teamstats/internal/platform/id"
	"github.com/dadifc/teamstats/internal/platform/logging"
	"github.com/dadifc/teamstats/internal/usecase"
)

// App bundles the HTTP server with the resources it owns.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

type repositories struct {
	teams   team.Repository
	players player.Repository
	matches match.Repository
	stats   matchstat.Repository
	seasons season.Repository
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var db *sqlx.DB
	var repos repositories
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("database url empty, using in-memory repositories")
		repos = newMemoryRepositories()
	} else {
		opened, err := openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = opened
		repos = newPostgresRepositories(db)
	}

	if cfg.CacheEnabled {
		repos = wrapWithCache(repos, basecache.NewStore(cfg.CacheTTL))
	}

	ids := idgen.NewRandomGenerator()
	teamSvc := usecase.NewTeamService(repos.teams, ids)
	playerSvc := usecase.NewPlayerService(repos.players, repos.teams, ids)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, ids)
	statSvc := usecase.NewMatchStatService(repos.stats, repos.matches, ids)
	seasonSvc := usecase.NewSeasonService(repos.seasons, repos.teams, ids)
	migrationSvc := usecase.NewMigrationService(repos.teams, repos.players, repos.matches, repos.stats, repos.seasons, ids)

	handler := httpapi.NewHandler(teamSvc, playerSvc, matchSvc, statSvc, seasonSvc, migrationSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func newMemoryRepositories() repositories {
	statRepo := memory.NewStatRepository()
	playerRepo := memory.NewPlayerRepository(statRepo)
	matchRepo := memory.NewMatchRepository(statRepo)
	seasonRepo := memory.NewSeasonRepository()
	teamRepo := memory.NewTeamRepository(playerRepo, matchRepo, seasonRepo)

	return repositories{
		teams:   teamRepo,
		players: playerRepo,
		matches: matchRepo,
		stats:   statRepo,
		seasons: seasonRepo,
	}
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		teams:   postgres.NewTeamRepository(db),
		players: postgres.NewPlayerRepository(db),
		matches: postgres.NewMatchRepository(db),
		stats:   postgres.NewStatRepository(db),
		seasons: postgres.NewSeasonRepository(db),
	}
}

// wrapWithCache decorates every repository with the same store so
// cross-entity invalidation (e.g. team delete purging player lists)
// works on shared keys.
func wrapWithCache(repos repositories, store *basecache.Store) repositories {
	return repositories{
		teams:   cacherepo.NewTeamRepository(repos.teams, store),
		players: cacherepo.NewPlayerRepository(repos.players, store),
		matches: cacherepo.NewMatchRepository(repos.matches, store),
		stats:   cacherepo.NewStatRepository(repos.stats, store),
		seasons: cacherepo.NewSeasonRepository(repos.seasons, store),
	}
}
