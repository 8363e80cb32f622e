package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/hatchswap/hatchswapd/config"
	"github.com/hatchswap/hatchswapd/daemon"
	"github.com/hatchswap/hatchswapd/database"

	_ "github.com/hatchswap/hatchswapd/logging"
	_ "github.com/lib/pq"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info("Received signal, shutting down")
		cancel()
	}()

	app := &cli.Command{
		Name:  "hatchswapd",
		Usage: "Atomic swap orchestration daemon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the TOML configuration file",
				Value: "hatchswap.toml",
			},
			&cli.StringFlag{
				Name:  "db-host",
				Usage: "Database host, overrides the configuration file",
			},
			&cli.IntFlag{
				Name:  "db-port",
				Usage: "Database port, overrides the configuration file",
			},
			&cli.StringFlag{
				Name:  "db-data-path",
				Usage: "Data path for the embedded database",
				Value: "./.data",
			},
			&cli.BoolFlag{
				Name:  "db-keep-alive",
				Usage: "Keep the embedded database running after the daemon stops",
				Value: false,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "start",
				Usage: "Start the hatchswapd daemon",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}

					db, closeDb, err := startDatabase(cmd, cfg)
					if err != nil {
						return err
					}
					defer func() {
						if err := closeDb(); err != nil {
							log.Errorf("Could not close database: %v", err)
						}
					}()

					if err := db.MigrateDatabase(); err != nil {
						return err
					}

					return daemon.Start(ctx, cfg, db)
				},
			},
			{
				Name:  "database",
				Usage: "Database operations",
				Commands: []*cli.Command{
					{
						Name:  "migrate",
						Usage: "Migrate the database",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							cfg, err := loadConfig(cmd)
							if err != nil {
								return err
							}

							db, closeDb, err := startDatabase(cmd, cfg)
							if err != nil {
								return err
							}
							defer func() {
								if err := closeDb(); err != nil {
									log.Errorf("Could not close database: %v", err)
								}
							}()

							return db.MigrateDatabase()
						},
					},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(afero.NewOsFs(), cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if host := cmd.String("db-host"); host != "" {
		cfg.Database.Host = host
	}
	if port := cmd.Int("db-port"); port != 0 {
		validated, err := validatePort(port)
		if err != nil {
			return nil, err
		}
		cfg.Database.Port = validated
	}

	return cfg, nil
}

func validatePort(port int64) (uint32, error) {
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("port number %d is invalid: must be between 0 and 65535", port)
	}

	return uint32(port), nil
}

func startDatabase(cmd *cli.Command, cfg *config.Config) (*database.Database, func() error, error) {
	db, closeDb, err := database.NewDatabase(
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cmd.String("db-data-path"),
		cfg.Database.Host,
		cmd.Bool("db-keep-alive"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, closeDb, nil
}
