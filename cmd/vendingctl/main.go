package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	authapp "github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/application"
	authdomain "github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/domain"
	authpostgres "github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/infrastructure/postgres"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/env"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
	"github.com/Ahmeddsamy/VendingMachine-Backend/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"
)

const (
	usernameFlag = "username"
	passwordFlag = "password"
	roleFlag     = "role"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(mainCtx, os.Args); err != nil {
		logging.StdoutLogger.Error("vendingctl failed", "error", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "vendingctl",
		Usage: "operate the vending machine backend",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply pending database migrations",
				Action: migrate,
			},
			{
				Name:  "accounts",
				Usage: "manage accounts",
				Subcommands: []*cli.Command{
					{
						Name:  "create",
						Usage: "provision a buyer or seller account",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: usernameFlag, Required: true},
							&cli.StringFlag{Name: passwordFlag, Required: true},
							&cli.StringFlag{
								Name:  roleFlag,
								Value: string(domain.RoleBuyer),
								Usage: "buyer or seller",
							},
						},
						Action: createAccount,
					},
				},
			},
		},
	}
}

func loadDatabaseSettings() (database.PostgresSettings, error) {
	var settings database.PostgresSettings
	if err := env.Load(&settings); err != nil {
		return database.PostgresSettings{}, err
	}

	return settings, nil
}

func migrate(c *cli.Context) error {
	settings, err := loadDatabaseSettings()
	if err != nil {
		return err
	}

	if err := database.MigratePostgres(settings, migrations.FS); err != nil {
		return err
	}

	logging.StdoutLogger.Info("migrations applied", "database", settings.DBName)
	return nil
}

func createAccount(c *cli.Context) error {
	role := domain.Role(strings.ToLower(c.String(roleFlag)))
	if !role.Valid() {
		return fmt.Errorf("unknown role %q, expected %q or %q", role, domain.RoleBuyer, domain.RoleSeller)
	}

	username := strings.TrimSpace(c.String(usernameFlag))
	if username == "" {
		return fmt.Errorf("username must not be blank")
	}

	settings, err := loadDatabaseSettings()
	if err != nil {
		return err
	}

	dbpool, err := pgxpool.New(c.Context, settings.GetURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbpool.Close()

	provisioner := authapp.NewProvisioner(authpostgres.NewCredentialsRepository(dbpool), authdomain.NewArgonPasswordHasher())

	credentials, err := provisioner.Provision(c.Context, username, c.String(passwordFlag), string(role))
	if err != nil {
		return err
	}

	logging.StdoutLogger.Info("account created", "account_id", credentials.AccountID, "username", credentials.Username, "role", role)
	return nil
}
