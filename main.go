package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexuraPortal/handlers"
	"nexuraPortal/internal/access"
	"nexuraPortal/internal/config"
	"nexuraPortal/internal/logging"
	"nexuraPortal/internal/onetime"
	"nexuraPortal/internal/workers"
	"nexuraPortal/middleware"
	"nexuraPortal/services"
)

const visitorMaxIdle = 3 * time.Minute

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nexura",
		Short:         "Nexura campaigns, quests and leaderboard portal",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newSnapshotCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

// app holds everything main wires together.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	client *services.BackendClient
}

func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	client := services.NewBackendClient(cfg.ResolvedBackendURL(), cfg.BackendTimeout, logger)
	return &app{cfg: cfg, logger: logger, client: client}, nil
}

func serve(ctx context.Context) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.logger.Sync()
	logger := a.logger

	if a.cfg.ResolvedBackendURL() == "" {
		if a.cfg.PublicOrigin == "" {
			logger.Warn("no backend URL or PUBLIC_ORIGIN configured, only origins in ALLOWED_ORIGINS reach the backend")
		} else {
			logger.Info("no backend URL configured, requests go to the public origin", zap.String("origin", a.cfg.PublicOrigin))
		}
	}

	sessions := onetime.NewStore(a.cfg.SessionTTL)
	campaignService := services.NewCampaignService(a.client, logger)
	questService := services.NewQuestService(a.client, sessions, logger)
	leaderboardService := services.NewLeaderboardService(a.client, logger)

	renderer, err := handlers.NewRenderer(a.cfg.AssetBaseURL, logger)
	if err != nil {
		return err
	}
	campaignHandler := handlers.NewCampaignHandler(campaignService, renderer, logger)
	questHandler := handlers.NewQuestHandler(questService, renderer, logger)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService, renderer, logger)

	limiter := middleware.NewRateLimiter(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst, a.cfg.TrustProxy)
	housekeeping, err := workers.NewHousekeeping(logger,
		workers.Job{Name: "one-time-sessions", Interval: time.Minute, Sweeper: sessions},
		workers.Job{Name: "rate-limit-visitors", Interval: time.Minute, Sweeper: workers.SweepFunc(func() int {
			return limiter.Cleanup(visitorMaxIdle)
		})},
	)
	if err != nil {
		return err
	}
	housekeeping.Start()
	defer func() {
		if err := housekeeping.Shutdown(); err != nil {
			logger.Warn("housekeeping shutdown", zap.Error(err))
		}
	}()

	middleware.InitPrometheus(prometheus.DefaultRegisterer, services.Collectors()...)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderer.NotFound(w, "Page not found")
	})
	r.Use(middleware.OriginMiddleware(a.cfg.OriginResolver()))
	r.Use(limiter.Middleware)
	r.Use(middleware.MonitorMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Named("http"), a.cfg.TrustProxy))

	r.Handle("/metrics", middleware.BasicAuthMiddleware(a.cfg.MetricsUser, a.cfg.MetricsPass)(promhttp.Handler()))
	r.HandleFunc("/health", handlers.Health).Methods("GET")

	r.Handle("/", http.RedirectHandler("/campaigns", http.StatusFound)).Methods("GET")
	r.HandleFunc("/campaigns", campaignHandler.CampaignsPage).Methods("GET")
	r.HandleFunc("/campaigns/tasks", campaignHandler.TasksPage).Methods("GET")
	r.HandleFunc("/quests", questHandler.QuestsPage).Methods("GET")
	r.HandleFunc("/quests/one-time/{taskID}", questHandler.AdvanceOneTime).Methods("POST")
	r.HandleFunc("/quests/{id}", questHandler.QuestDetailPage).Methods("GET")

	// Leaderboard routes sit behind the access guard.
	guard := access.AllowAll{}
	ranked := r.PathPrefix("/leaderboard").Subrouter()
	ranked.Use(middleware.RequireAccess(guard))
	ranked.HandleFunc("", leaderboardHandler.LeaderboardPage).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/campaigns", campaignHandler.GetCampaigns).Methods("GET")
	api.HandleFunc("/quests", questHandler.GetQuests).Methods("GET")
	api.HandleFunc("/quests/one-time", questHandler.GetOneTime).Methods("GET")
	api.HandleFunc("/quests/one-time/{taskID}", questHandler.PostOneTime).Methods("POST")

	protected := api.PathPrefix("/leaderboard").Subrouter()
	protected.Use(middleware.RequireAccess(guard))
	protected.HandleFunc("", leaderboardHandler.GetLeaderboard).Methods("GET")

	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins(a.cfg.AllowedOrigins),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
	)
	recovery := gorilllaHandlers.RecoveryHandler(
		gorilllaHandlers.RecoveryLogger(zap.NewStdLog(logger)),
	)

	server := http.Server{
		Addr:         a.cfg.Addr(),
		Handler:      recovery(corsHandler(r)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	case <-sigCtx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
		return err
	}
	logger.Info("server shutdown complete")
	return nil
}
