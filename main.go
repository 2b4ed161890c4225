package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seller-dashboard-api/internal/config"
	"seller-dashboard-api/internal/database"
	"seller-dashboard-api/internal/handler/health"
	productHandler "seller-dashboard-api/internal/handler/product"
	"seller-dashboard-api/internal/handler/root"
	"seller-dashboard-api/internal/openapi"
	productRepository "seller-dashboard-api/internal/repository/product"
	"seller-dashboard-api/internal/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {

	cnf := config.LoadConfigOrPanic()
	setupLogger(cnf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	firestoreClient := createFirestoreClientOrPanic(ctx, cnf.Firebase)
	defer firestoreClient.Close()

	pingCtx, pingCancel := context.WithTimeout(ctx, cnf.Server.HealthTimeout)
	if err := firestoreClient.Ping(pingCtx); err != nil {
		// The service still starts; /health reports the outage.
		log.Warn().Err(err).Msg("firestore is not reachable at startup")
	}
	pingCancel()

	productRepo := productRepository.New(firestoreClient)

	docs, err := openapi.NewHandler(openapi.New(root.APIName, root.Version, root.Description))
	if err != nil {
		panic(err)
	}

	srv := server.New(cnf.Server,
		root.New(),
		health.New(firestoreClient, cnf.Server.HealthTimeout),
		productHandler.New(productRepo),
		docs,
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Start()
	})
	group.Go(func() error {
		select {
		case <-sigs:
			// Received a termination signal, continue to shutdown
		case <-gctx.Done():
			// errgroup encountered an error, continue to shutdown
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cnf.Server.ShutdownTimeout)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped")
		firestoreClient.Close()
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

func setupLogger(cnf config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cnf.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cnf.Server.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cnf.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	log.Info().
		Str("app_env", cnf.AppEnv).
		Str("log_level", level.String()).
		Bool("debug", cnf.Server.Debug).
		Msg("logger configured")
}

func createFirestoreClientOrPanic(ctx context.Context, cnf config.Firebase) database.FirestoreClient {
	firestoreClient, err := database.NewFirestoreClient(ctx, cnf)
	if err != nil {
		panic(err)
	}
	return firestoreClient
}
