package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	authapp "github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/application"
	authdomain "github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/domain"
	authpostgres "github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/infrastructure/postgres"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/jwt"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/application"
	httpwrap "github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/infrastructure/http"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/infrastructure/postgres"
	"github.com/Ahmeddsamy/VendingMachine-Backend/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	shutdownTimeout = 5 * time.Second
)

type VendingApp struct {
	cfg    VendingConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewVendingApp(cfg VendingConfig, logger logging.Logger) *VendingApp {
	return &VendingApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Run serves the API on lis until ctx is cancelled or the server fails.
func (a *VendingApp) Run(ctx context.Context, lis net.Listener) error {
	logger := a.logger

	if a.cfg.MigrateOnStart {
		if err := database.MigratePostgres(a.cfg.PostgresSettings, migrations.FS); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	dbpool, err := pgxpool.New(ctx, a.cfg.GetURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	a.server = &http.Server{
		Handler: a.newRouter(dbpool),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", lis.Addr().String())

		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while serving http: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *VendingApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	a.dbpool.Close()
	a.logger.Info("http server stopped")
}

func (a *VendingApp) newRouter(dbpool *pgxpool.Pool) *gin.Engine {
	logger := a.logger
	txManager := database.NewDelegateTxManager(dbpool, logger)

	accountsRepository := postgres.NewAccountsRepository()
	productsRepository := postgres.NewProductsRepository()
	purchasesRepository := postgres.NewPurchasesRepository()

	credentialsRepository := authpostgres.NewCredentialsRepository(dbpool)
	passwordHasher := authdomain.NewArgonPasswordHasher()

	handlers := httpwrap.Handlers{
		Auth: httpwrap.NewAuthHandler(
			authapp.NewAuthenticator(credentialsRepository, passwordHasher, jwt.NewJWTTokenIssuer(), a.cfg.JwtSecret),
			authapp.NewPasswordChanger(credentialsRepository, passwordHasher),
			logger,
		),
		Machine: httpwrap.NewMachineHandler(
			application.NewDepositCase(accountsRepository, txManager),
			application.NewResetCase(accountsRepository, txManager),
			application.NewPurchaseCase(accountsRepository, productsRepository, purchasesRepository, txManager),
			logger,
		),
		Products: httpwrap.NewProductsHandler(
			application.NewProductCase(accountsRepository, productsRepository, txManager, dbpool),
			logger,
		),
		Accounts: httpwrap.NewAccountsHandler(application.NewAccountCase(accountsRepository, txManager), logger),
		Health:   httpwrap.NewHealthHandler(dbpool, logger),
	}

	router := gin.New()
	router.Use(gin.Recovery(), httpwrap.NewRequestIDMiddleware())

	authMiddleware := httpwrap.NewAuthMiddleware(a.cfg.JwtSecret, jwt.NewJWTTokenParser(), logger)
	httpwrap.RegisterRoutes(router, handlers, authMiddleware)

	return router
}
