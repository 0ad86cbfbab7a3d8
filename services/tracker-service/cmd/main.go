package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/config"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/handler"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/usecase"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/auth"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/database"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/discovery"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/logger"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/mailer"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/provider"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/utilities"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewTrackerServiceConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.ServiceName, cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("tracker service stopped with error")
	}

	log.Info().Msg("tracker service stopped")
}

func run(ctx context.Context, cfg *config.TrackerServiceConfig, log *zerolog.Logger) error {
	mongoClient, err := database.NewMongoClient(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		database.CloseMongoClient(shutdownCtx, log, mongoClient)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	db := mongoClient.Database(cfg.Mongo.Database)

	userRepo := repository.NewUserMongoRepository(ctx, log, db)
	identityRepo := repository.NewIdentityMongoRepository(ctx, log, db)
	opportunityRepo := repository.NewOpportunityMongoRepository(db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer, cfg.Token.Secret, cfg.Token.ExpiresIn)

	var google usecase.GoogleAuthenticator
	if cfg.Google.ClientID != "" {
		google = provider.NewGoogleOAuthProvider(cfg.Google.ClientID)
	}

	router := handler.NewRouter(log, handler.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}, jwtAuth, handler.Usecases{
		Auth:           usecase.NewAuthUsecase(userRepo, identityRepo, jwtAuth, mailer.NewMailer(log), google, log),
		Profile:        usecase.NewProfileUsecase(userRepo),
		Interest:       usecase.NewInterestUsecase(userRepo),
		JobApplication: usecase.NewJobApplicationUsecase(userRepo),
		Opportunity:    usecase.NewOpportunityUsecase(opportunityRepo),
		Calendar:       usecase.NewCalendarUsecase(userRepo, nil),
	})

	httpServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           router,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	var probe *utilities.HealthProbe
	var healthListener net.Listener
	if cfg.GRPCHealthPort > 0 {
		healthListener, err = net.Listen("tcp", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.GRPCHealthPort)))
		if err != nil {
			return fmt.Errorf("listen gRPC health port: %w", err)
		}
		probe = utilities.NewHealthProbe(log, cfg.ServiceName)
	}

	registry, serviceID, err := registerWithConsul(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to register with consul, continuing without it")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if probe != nil {
		g.Go(func() error {
			return probe.Serve(healthListener)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		if registry != nil {
			if err := registry.Deregister(serviceID); err != nil {
				log.Error().Err(err).Msg("failed to deregister from consul")
			}
		}

		if probe != nil {
			probe.Stop()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func registerWithConsul(cfg *config.TrackerServiceConfig, log *zerolog.Logger) (*discovery.ConsulRegistry, string, error) {
	if cfg.Consul.Address == "" {
		return nil, "", nil
	}

	registry, err := discovery.NewConsulRegistry(cfg.Consul.Address, log)
	if err != nil {
		return nil, "", err
	}

	address := cfg.Consul.ServiceAddress
	if address == "" {
		address, _ = os.Hostname()
	}

	serviceID := fmt.Sprintf("%s-%s-%d", cfg.ServiceName, address, cfg.Port)
	if err := registry.Register(discovery.Registration{
		ID:         serviceID,
		Name:       cfg.ServiceName,
		Address:    address,
		Port:       cfg.Port,
		Tags:       []string{"http", "api"},
		HealthPath: "/health",
	}); err != nil {
		return nil, "", err
	}

	return registry, serviceID, nil
}
