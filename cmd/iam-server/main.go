// The iam-server binary runs the identity and access management service:
// account registration, authentication, and token issuance.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ecomovil/platform/internal/config"
	"github.com/ecomovil/platform/internal/iam/application"
	iampostgres "github.com/ecomovil/platform/internal/iam/infrastructure/postgres"
	"github.com/ecomovil/platform/internal/iam/interfaces/rest"
	"github.com/ecomovil/platform/internal/infrastructure/events"
	"github.com/ecomovil/platform/internal/infrastructure/hashing"
	"github.com/ecomovil/platform/internal/infrastructure/monitoring"
	"github.com/ecomovil/platform/internal/infrastructure/persistence/postgres"
	httpiface "github.com/ecomovil/platform/internal/interfaces/http"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

const serviceName = "iam"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "iam-server: %v\n", err)
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
	if err := iampostgres.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	var publisher events.Publisher
	if cfg.Events.Enabled {
		publisher = events.NewKafkaPublisher(&cfg.Events, log)
	} else {
		publisher = events.NewNoopPublisher(log)
	}
	defer publisher.Close()

	issuer := security.NewIssuer(cfg.JWT.Secret, cfg.JWT.ExpirationDays)
	verifier := security.NewVerifier(cfg.JWT.Secret, log)

	userService := application.NewUserService(
		iampostgres.NewUserRepository(db),
		iampostgres.NewRoleRepository(db),
		hashing.NewBcryptService(),
		issuer,
		publisher,
		log,
	)

	metrics := monitoring.NewMetrics(serviceName)
	server := httpiface.NewServer(cfg, log, metrics, verifier)
	rest.RegisterRoutes(
		server.Engine(),
		rest.NewAuthenticationHandler(userService, metrics, log),
		rest.NewUsersHandler(userService, log),
		log,
	)

	return server.Run()
}
