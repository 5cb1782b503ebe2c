// Command server runs the name registry HTTP API. main wires configuration,
// storage backends, and the middleware chain; business logic lives in the
// internal service packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"nomen/internal/bank"
	"nomen/internal/identity"
	"nomen/internal/platform/config"
	"nomen/internal/platform/httpserver"
	"nomen/internal/platform/logger"
	"nomen/internal/platform/token"
	"nomen/internal/platform/tracing"
	"nomen/internal/registry/handler"
	"nomen/internal/registry/metrics"
	"nomen/internal/registry/service"
	"nomen/internal/registry/store"
	"nomen/pkg/platform/audit"
	auditkafka "nomen/pkg/platform/audit/kafka"
	"nomen/pkg/platform/audit/publisher"
	auditmem "nomen/pkg/platform/audit/store/memory"
	"nomen/pkg/platform/middleware/admin"
	"nomen/pkg/platform/middleware/auth"
	"nomen/pkg/platform/middleware/metadata"
	"nomen/pkg/platform/middleware/requestid"
	"nomen/pkg/platform/middleware/requesttime"
	"nomen/pkg/platform/middleware/version"
)

// registryStore is the storage surface the registry service needs; every
// backend implements both halves.
type registryStore interface {
	service.ConfigStore
	service.RecordStore
}

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "nomen-server",
	Short:         "Fee-gated name registry HTTP server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./nomen.yaml, /etc/nomen/nomen.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nomen-server:", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Format, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(cfg.Tracing.Enabled, "nomen-registry")
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("tracing shutdown failed", "error", err)
		}
	}()

	st, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	ledger, closeLedger, err := openLedger(cfg.Ledger)
	if err != nil {
		return err
	}
	defer closeLedger()

	sink, closeSink, err := openAuditSink(ctx, cfg.Audit, log)
	if err != nil {
		return err
	}
	defer closeSink()

	var publisherOpts []publisher.Option
	if cfg.Audit.Buffer > 0 {
		publisherOpts = append(publisherOpts, publisher.WithAsyncBuffer(cfg.Audit.Buffer))
	}
	auditPublisher := publisher.NewPublisher(sink, publisherOpts...)
	defer auditPublisher.Close()

	svc := service.New(st, st, identity.NewHexValidator(), ledger,
		service.WithLogger(log),
		service.WithAuditPublisher(auditPublisher),
		service.WithMetrics(metrics.New()),
	)
	tokens := token.NewService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)

	if cfg.Auth.OperatorTokenHash == "" {
		log.Warn("no operator token hash configured, ops endpoints will reject every request")
	}

	h := handler.New(svc, ledger, log)
	router := newRouter(h, tokens, cfg.Auth.OperatorTokenHash, log)
	srv := httpserver.New(cfg.Server, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting nomen registry",
			"addr", cfg.Server.Addr,
			"store", cfg.Store.Backend,
			"ledger", cfg.Ledger.Backend,
			"audit_sink", cfg.Audit.Sink,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// newRouter assembles the middleware chain and mounts every endpoint group.
func newRouter(h *handler.Handler, tokens *token.Service, operatorTokenHash string, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(version.Extract(version.V1))
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireCaller(tokens, log))
			h.Register(r)
		})
		h.RegisterQueries(r)
		r.Group(func(r chi.Router) {
			r.Use(admin.RequireOperatorToken(operatorTokenHash, log))
			h.RegisterOps(r)
		})
	})
	return r
}

func openStore(ctx context.Context, cfg config.Store) (registryStore, func(), error) {
	switch cfg.Backend {
	case "postgres":
		db, err := sql.Open("pgx", cfg.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		st := store.NewPostgres(db)
		if err := st.Migrate(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate postgres store: %w", err)
		}
		return st, func() { _ = db.Close() }, nil

	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return store.NewRedis(client), func() { _ = client.Close() }, nil

	default:
		return store.NewMemory(), func() {}, nil
	}
}

func openLedger(cfg config.Ledger) (bank.Ledger, func(), error) {
	if cfg.Backend == "sqlite" {
		ledger, err := bank.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite ledger: %w", err)
		}
		return ledger, func() { _ = ledger.Close() }, nil
	}
	return bank.NewMemoryLedger(), func() {}, nil
}

func openAuditSink(ctx context.Context, cfg config.Audit, log *slog.Logger) (audit.Sink, func(), error) {
	if cfg.Sink == "kafka" {
		sink, err := auditkafka.NewSink(ctx, cfg.Brokers, cfg.Topic)
		if err != nil {
			return nil, nil, fmt.Errorf("open kafka audit sink: %w", err)
		}
		// Broker outages fail over to process memory instead of losing the
		// trail or stalling request handling.
		guarded := publisher.NewGuardedSink("kafka", sink, auditmem.NewInMemoryStore(), log)
		return guarded, sink.Close, nil
	}
	return auditmem.NewInMemoryStore(), func() {}, nil
}
