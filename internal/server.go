package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/uglednimomak/active-life-visuals/internal/auth"
	"github.com/uglednimomak/active-life-visuals/internal/config"
	"github.com/uglednimomak/active-life-visuals/internal/db"
	"github.com/uglednimomak/active-life-visuals/internal/exercises"
	"github.com/uglednimomak/active-life-visuals/internal/keyval"
	"github.com/uglednimomak/active-life-visuals/internal/middleware"
	"github.com/uglednimomak/active-life-visuals/internal/misc"
	"github.com/uglednimomak/active-life-visuals/internal/notify"
	"github.com/uglednimomak/active-life-visuals/internal/telemetry/metrics"
	"github.com/uglednimomak/active-life-visuals/internal/telemetry/tracing"
	"github.com/uglednimomak/active-life-visuals/internal/voice"
	"github.com/uglednimomak/active-life-visuals/internal/workout"
	"github.com/uglednimomak/active-life-visuals/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	quotesManager *misc.QuotesManager

	exercisesStore *exercises.Store
	workoutStore   *workout.Store
	voiceListener  *voice.Listener

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	var dbPool *pgxpool.Pool
	var promCollectors []prometheus.Collector
	if params.Config.Storage == config.StoragePostgres {
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         params.Config.PostgresHost,
			DBPort:         params.Config.PostgresPort,
			DBName:         params.Config.PostgresDBName,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		dbPool = pool
		promCollectors = append(promCollectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": params.Config.PostgresDBName},
		))
	}

	promRegistry := metrics.SetupPrometheus(promCollectors...)
	metricsManager := metrics.NewManager("fitnesstracker", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitness-tracker-backend", rdb)
	if err != nil {
		return nil, err
	}

	var kvApi keyval.Api
	switch params.Config.Storage {
	case config.StoragePostgres:
		kvApi = keyval.NewPsqlApi(dbPool)
	case config.StorageRedis:
		kvApi = keyval.NewRedisApi(rdb)
	case config.StorageInMemory, "":
		log.Warnln("tracker snapshots kept in memory only, nothing survives a restart")
		kvApi = keyval.NewMemoryApi()
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", params.Config.Storage)
	}

	notifier := notify.NewLogNotifier()
	exercisesStore := exercises.NewStore(ctx, kvApi, notifier)
	workoutStore := workout.NewStore(ctx, kvApi, workout.DefaultSchedule(), notifier)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		exercisesStore: exercisesStore,
		workoutStore:   workoutStore,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	s.voiceListener = voice.NewListener(
		voice.UnsupportedEngine{},
		s.handleVoiceCommand,
		notifier,
	)

	if exists, err := pkg.PathExists(params.Config.QuotesCsvPath, false); err != nil {
		return nil, fmt.Errorf("check quotes file: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("quotes file %s does not exist", params.Config.QuotesCsvPath)
	}

	quotesCsvFile, err := os.Open(params.Config.QuotesCsvPath)
	if err != nil {
		return nil, fmt.Errorf("open quotes file: %w", err)
	}
	defer func() {
		if err := quotesCsvFile.Close(); err != nil {
			log.Warnf("close quotes csv file: %s", err)
		}
	}()

	s.quotesManager, err = misc.NewQuoteManager(csv.NewReader(quotesCsvFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create quote manager: %s", err)
	}

	return s, nil
}

// handleVoiceCommand turns a recognized voice command into a logged
// exercise and the matching workout progress mark.
func (s *Server) handleVoiceCommand(ctx context.Context, cmd voice.Command) {
	added, err := s.exercisesStore.Add(ctx, exercises.AddExerciseParams{
		Name:       cmd.Exercise,
		Count:      cmd.Count,
		PersonName: cmd.PersonName,
	})
	if err != nil {
		log.Errorf("voice command, log exercise [%s]: %s", cmd.Exercise, err)
		return
	}

	resolved, err := s.workoutStore.AddExercise(ctx, cmd.Exercise, added.Timestamp)
	if err != nil {
		log.Errorf("voice command, mark workout progress [%s]: %s", cmd.Exercise, err)
		return
	}

	log.Debugf("voice command handled: %d x %s (progress: %s)", cmd.Count, cmd.Exercise, resolved)
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	exercisesHandler := exercises.NewHandler(s.exercisesStore, s.metricsManager)
	exercisesHandler.SetupRoutes(r.PathPrefix("/exercises").Subrouter())

	workoutHandler := workout.NewHandler(s.workoutStore, s.metricsManager)
	workoutHandler.SetupRoutes(r.PathPrefix("/workout").Subrouter())

	voiceHandler := voice.NewHandler(s.voiceListener, s.metricsManager)
	voiceHandler.SetupRoutes(r.PathPrefix("/voice").Subrouter())

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.quotesManager, s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.voiceListener.Close()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
