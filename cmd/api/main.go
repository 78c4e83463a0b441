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

	"github.com/zerobuild-ai/zerobuild-backend/config"
	httpapi "github.com/zerobuild-ai/zerobuild-backend/internal/api/http"
	"github.com/zerobuild-ai/zerobuild-backend/internal/api/http/routes"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth"
	authhttp "github.com/zerobuild-ai/zerobuild-backend/internal/auth/http"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/middleware"
	authrepo "github.com/zerobuild-ai/zerobuild-backend/internal/auth/repository"
	authservice "github.com/zerobuild-ai/zerobuild-backend/internal/auth/service"
	"github.com/zerobuild-ai/zerobuild-backend/internal/bootstrap"
	"github.com/zerobuild-ai/zerobuild-backend/internal/cronjob"
	"github.com/zerobuild-ai/zerobuild-backend/internal/gateway"
	"github.com/zerobuild-ai/zerobuild-backend/internal/logging"
	projectservice "github.com/zerobuild-ai/zerobuild-backend/internal/projects/service"
	roomservice "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.SetLevel(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := bootstrap.OpenStores(ctx, cfg)
	if err != nil {
		log.Fatalf("stores: %v", err)
	}
	defer stores.Close()

	gwOpts := gateway.Options{
		BaseURL:   cfg.Gateway.BaseURL,
		Timeout:   cfg.Gateway.Timeout,
		RateLimit: cfg.Gateway.RateLimit,
		Burst:     cfg.Gateway.Burst,
	}
	if cfg.Gateway.GoogleAuth {
		ts, err := gateway.GoogleTokenSource(ctx)
		if err != nil {
			log.Fatalf("gateway auth: %v", err)
		}
		gwOpts.TokenSource = ts
	}
	gw := gateway.NewClient(gwOpts)

	resolver, sessions, err := buildAuth(ctx, cfg, stores)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	checks := map[string]httpapi.Check{}
	if stores.DB != nil {
		checks["db"] = stores.DB.PingContext
	}
	if stores.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return stores.Redis.Ping(ctx).Err() }
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  cfg.App.ServiceName,
		Version:      cfg.App.Version,
		AllowOrigins: cfg.Server.AllowOrigins,
		HealthChecks: checks,
		V1: routes.V1Deps{
			Records:  stores.Records,
			Projects: projectservice.NewSynthesisService(gw, stores.Records, cfg.Synthesis.Timeout),
			Plots:    projectservice.NewPlotService(gw),
			Rooms:    roomservice.NewSynthesisService(gw, stores.Records, cfg.Synthesis.Timeout),
			Resolver: resolver,
			Sessions: sessions,
		},
	})

	scheduler := cronjob.NewScheduler(gw)
	if err := scheduler.Start(cfg.Cron.MetricsSpec); err != nil {
		log.Printf("metrics cron disabled: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("%s %s listening on :%s (store=%s auth=%s)",
			cfg.App.ServiceName, cfg.App.Version, cfg.Server.Port, cfg.Store.Backend, cfg.Auth.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	<-scheduler.Stop().Done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// buildAuth returns the token resolver for protected routes and, in accounts
// mode, the session service behind /auth/login.
func buildAuth(ctx context.Context, cfg *config.Config, stores *bootstrap.Stores) (middleware.Resolver, authhttp.Sessions, error) {
	if cfg.Auth.Mode == config.AuthFirebase {
		client, err := auth.NewFirebaseAuth(ctx, &cfg.Auth.Firebase)
		if err != nil {
			return nil, nil, err
		}
		return authservice.NewFirebaseResolver(client), nil, nil
	}

	accounts, err := authrepo.LoadAccountsFile(cfg.Auth.AccountsFile)
	if err != nil {
		return nil, nil, err
	}

	var sessions authrepo.SessionRepository = authrepo.NewMemorySessionRepository()
	if stores.Redis != nil {
		sessions = authrepo.NewRedisSessionRepository(stores.Redis)
	}

	svc := authservice.NewAuthService(accounts, sessions, cfg.Auth.SessionTTL)
	return svc, svc, nil
}
