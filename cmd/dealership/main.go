// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the dealership command line entry point.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/absmach/dealership/cars"
	carsmw "github.com/absmach/dealership/cars/middleware"
	carsmongo "github.com/absmach/dealership/cars/mongodb"
	carstracing "github.com/absmach/dealership/cars/tracing"
	"github.com/absmach/dealership/cli"
	"github.com/absmach/dealership/concessionaires"
	conmw "github.com/absmach/dealership/concessionaires/middleware"
	conmongo "github.com/absmach/dealership/concessionaires/mongodb"
	contracing "github.com/absmach/dealership/concessionaires/tracing"
	"github.com/absmach/dealership/internal/clients/jaeger"
	mongoclient "github.com/absmach/dealership/internal/clients/mongo"
	"github.com/absmach/dealership/internal/lifecycle"
	mglog "github.com/absmach/dealership/logger"
	"github.com/absmach/dealership/pkg/objectid"
	"github.com/absmach/dealership/pkg/prometheus"
	"github.com/absmach/dealership/pkg/uuid"
	"github.com/absmach/dealership/tour"
	"github.com/absmach/dealership/users"
	usersmw "github.com/absmach/dealership/users/middleware"
	usersmongo "github.com/absmach/dealership/users/mongodb"
	userstracing "github.com/absmach/dealership/users/tracing"
	"github.com/caarlos0/env/v10"
	cc "github.com/ivanpirog/coloredcobra"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName     = "dealership"
	envPrefixDB = "DEALERSHIP_DB_"
)

type config struct {
	LogLevel       string  `env:"DEALERSHIP_LOG_LEVEL"         envDefault:"info"`
	InstanceID     string  `env:"DEALERSHIP_INSTANCE_ID"       envDefault:""`
	JaegerURL      string  `env:"DEALERSHIP_JAEGER_URL"        envDefault:""`
	TraceRatio     float64 `env:"DEALERSHIP_JAEGER_TRACE_RATIO" envDefault:"1.0"`
	PushgatewayURL string  `env:"DEALERSHIP_PUSHGATEWAY_URL"   envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	// Logs go to stderr so command output on stdout stays parseable.
	logger, err := mglog.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err.Error())
	}

	var exitCode int
	defer mglog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	tracer := trace.NewNoopTracerProvider().Tracer(svcName)
	if cfg.JaegerURL != "" {
		tp, err := jaeger.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
			exitCode = 1
			return
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error(fmt.Sprintf("error shutting down tracer provider: %v", err))
			}
		}()
		tracer = tp.Tracer(svcName)
	}

	var db *mongo.Database
	defer func() {
		if db == nil {
			return
		}
		if err := mongoclient.Close(context.Background(), db); err != nil {
			logger.Error(fmt.Sprintf("failed to disconnect from MongoDB: %s", err))
		}
	}()

	rootCmd := &cobra.Command{
		Use:           "dealership",
		Short:         "Dealership document store walkthrough",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ParseConfig(cmd); err != nil {
				return err
			}
			if !cli.RequiresDatabase(cmd) {
				return nil
			}

			db, err = mongoclient.Setup(cmd.Context(), envPrefixDB, func(err error, next time.Duration) {
				logger.Warn(fmt.Sprintf("MongoDB not reachable, retrying in %s: %s", next, err))
			})
			if err != nil {
				return err
			}
			logger.Info(fmt.Sprintf("connected to MongoDB database %s", db.Name()))

			cli.SetServices(newServices(db, tracer, logger))
			return nil
		},
	}

	versionCmd := cli.NewVersionCmd(svcName, cfg.InstanceID)
	configCmd := cli.NewConfigCmd()
	cli.MarkOffline(versionCmd, configCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cli.NewUsersCmd())
	rootCmd.AddCommand(cli.NewCarsCmd())
	rootCmd.AddCommand(cli.NewConcessionairesCmd())
	rootCmd.AddCommand(cli.NewTourCmd())

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&cli.ConfigPath,
		"config",
		"c",
		"",
		"Config path",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		false,
		"Enables raw output mode for easier parsing of output",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Limit,
		"limit",
		"l",
		10,
		"Limit query parameter",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Offset,
		"offset",
		"o",
		0,
		"Offset query parameter",
	)

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	g.Go(func() error {
		defer cancel()
		return rootCmd.ExecuteContext(ctx)
	})

	g.Go(func() error {
		return lifecycle.StopSignalHandler(ctx, cancel, logger, svcName)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s terminated: %s", svcName, err))
		exitCode = 1
	}

	if cfg.PushgatewayURL != "" {
		if err := prometheus.Push(cfg.PushgatewayURL, svcName, cfg.InstanceID, stdprometheus.DefaultGatherer); err != nil {
			logger.Warn(err.Error())
		}
	}
}

func newServices(db *mongo.Database, tracer trace.Tracer, logger *slog.Logger) tour.Services {
	idp := objectid.New()

	carsRepo := carstracing.CarRepositoryMiddleware(tracer, carsmongo.NewRepository(db))
	carsSvc := cars.NewService(carsRepo, idp)
	carsSvc = carsmw.LoggingMiddleware(carsSvc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "cars")
	carsSvc = carsmw.MetricsMiddleware(carsSvc, counter, latency)

	usersRepo := userstracing.UserRepositoryMiddleware(tracer, usersmongo.NewRepository(db))
	usersSvc := users.NewService(usersRepo, idp)
	usersSvc = usersmw.LoggingMiddleware(usersSvc, logger)
	counter, latency = prometheus.MakeMetrics(svcName, "users")
	usersSvc = usersmw.MetricsMiddleware(usersSvc, counter, latency)

	conRepo := contracing.ConcessionaireRepositoryMiddleware(tracer, conmongo.NewRepository(db))
	conSvc := concessionaires.NewService(conRepo, carsSvc, idp)
	conSvc = conmw.LoggingMiddleware(conSvc, logger)
	counter, latency = prometheus.MakeMetrics(svcName, "concessionaires")
	conSvc = conmw.MetricsMiddleware(conSvc, counter, latency)

	return tour.Services{
		Users:           usersSvc,
		Cars:            carsSvc,
		Concessionaires: conSvc,
	}
}
