package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
	"github.com/bekbolotov/movie-catalog-api/internal/mailer"
	"github.com/bekbolotov/movie-catalog-api/internal/repository"
	"github.com/bekbolotov/movie-catalog-api/internal/token"
	appvalidator "github.com/bekbolotov/movie-catalog-api/internal/validator"
	"github.com/bekbolotov/movie-catalog-api/internal/vcs"
)

const serviceName = "movie-catalog-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     *redis.Client
	validator *validator.Validate
	mailer    mailer.Mailer
	tokens    *token.Authority

	userRepo     domain.UserRepository
	movieRepo    domain.MovieRepository
	countryRepo  domain.CountryRepository
	genreRepo    domain.GenreRepository
	directorRepo domain.PersonRepository
	actorRepo    domain.PersonRepository
	ratingRepo   domain.RatingRepository
	favoriteRepo domain.FavoriteRepository
	historyRepo  domain.HistoryRepository
}

type Config struct {
	Port int
	Env  string
	DB   struct {
		Dsn          string
		MaxOpenConns int
		MaxIdleTime  time.Duration
	}
	Redis struct {
		URL          string
		MaxOpenConns int
		MaxIdleConns int
		MaxIdleTime  time.Duration
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		Sender   string
	}
	Auth struct {
		Secret     string
		AccessTTL  time.Duration
		RefreshTTL time.Duration
	}
	OtelCollectorUrl string
}

// Option overrides a collaborator after the default wiring, mainly so tests
// can slot in mocks.
type Option func(*Application)

func WithMailer(m mailer.Mailer) Option {
	return func(app *Application) {
		app.mailer = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(app *Application) {
		app.logger = logger
	}
}

// New wires an Application from live database and Redis connections.
func New(cfg Config, logger *slog.Logger, db *pgxpool.Pool, redisClient *redis.Client, opts ...Option) *Application {
	app := &Application{
		config:    cfg,
		logger:    logger,
		db:        db,
		redis:     redisClient,
		validator: appvalidator.NewValidator(),
		mailer:    mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		tokens: token.NewAuthority(
			cfg.Auth.Secret,
			cfg.Auth.AccessTTL,
			cfg.Auth.RefreshTTL,
			repository.NewRedisRevocationStore(redisClient),
		),
		userRepo:     repository.NewPostgresUserRepository(db),
		movieRepo:    repository.NewPostgresMovieRepository(db),
		countryRepo:  repository.NewPostgresCountryRepository(db),
		genreRepo:    repository.NewPostgresGenreRepository(db),
		directorRepo: repository.NewPostgresDirectorRepository(db),
		actorRepo:    repository.NewPostgresActorRepository(db),
		ratingRepo:   repository.NewPostgresRatingRepository(db),
		favoriteRepo: repository.NewPostgresFavoriteRepository(db),
		historyRepo:  repository.NewPostgresHistoryRepository(db),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.Dsn, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "MovieCatalog <no-reply@moviecatalog.bekbolotov.net>", "SMTP sender")

	flag.StringVar(&cfg.Auth.Secret, "auth-secret", "", "HMAC secret for signing tokens")
	flag.DurationVar(&cfg.Auth.AccessTTL, "auth-access-ttl", 30*time.Minute, "Access token lifetime")
	flag.DurationVar(&cfg.Auth.RefreshTTL, "auth-refresh-ttl", 72*time.Hour, "Refresh token lifetime")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if cfg.Auth.Secret == "" {
		return errors.New("auth-secret must be set")
	}

	textHandler := slog.NewTextHandler(os.Stdout, nil)
	logger := slog.New(textHandler)

	db, err := newDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	err = runMigrations(cfg.DB.Dsn)
	if err != nil {
		return err
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	app := New(cfg, logger, db, redisClient)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(textHandler, otelslog.NewHandler(serviceName)))
	}

	return app.serve()
}

func newRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func newDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.Dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
