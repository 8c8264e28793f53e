// The users-server binary runs the profiles service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ecomovil/platform/internal/config"
	"github.com/ecomovil/platform/internal/infrastructure/monitoring"
	"github.com/ecomovil/platform/internal/infrastructure/persistence/postgres"
	httpiface "github.com/ecomovil/platform/internal/interfaces/http"
	"github.com/ecomovil/platform/internal/users/application"
	"github.com/ecomovil/platform/internal/users/application/outbound"
	userspostgres "github.com/ecomovil/platform/internal/users/infrastructure/postgres"
	"github.com/ecomovil/platform/internal/users/interfaces/rest"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

const serviceName = "users"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "users-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(serviceName)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log = log.WithFields(logger.Fields{"service": serviceName})

	db, err := postgres.Open(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := userspostgres.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	profileService := application.NewProfileService(
		userspostgres.NewProfileRepository(db),
		outbound.NewExternalPlanService(cfg.Services.PlansURL, log),
		log,
	)

	verifier := security.NewVerifier(cfg.JWT.Secret, log)
	metrics := monitoring.NewMetrics(serviceName)
	server := httpiface.NewServer(cfg, log, metrics, verifier)
	rest.RegisterRoutes(server.Engine(), rest.NewProfilesHandler(profileService, log), log)

	return server.Run()
}
