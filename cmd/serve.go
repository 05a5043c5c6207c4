// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/workload-service/internal/config"
	"github.com/canonical/workload-service/internal/db"
	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring/prometheus"
	"github.com/canonical/workload-service/internal/otp"
	"github.com/canonical/workload-service/internal/password"
	"github.com/canonical/workload-service/internal/storage"
	"github.com/canonical/workload-service/internal/tracing"
	"github.com/canonical/workload-service/pkg/account"
	"github.com/canonical/workload-service/pkg/web"
	"github.com/canonical/workload-service/pkg/workload"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	level := specs.LogLevel
	if specs.Debug {
		level = "debug"
	}

	logger := logging.NewLogger(level)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workload-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	otpService := otp.NewService(
		s,
		dbClient,
		otp.Config{
			TTL:       specs.OtpTTL,
			SingleUse: specs.OtpSingleUse,
		},
		tracer,
		monitor,
		logger,
	)

	if !specs.OtpEchoEnabled {
		logger.Info("OTP echo is disabled, codes are only written to debug logs")
	}

	accountService := account.NewService(
		s,
		otpService,
		password.NewHasher(specs.BcryptCost),
		dbClient,
		tracer,
		monitor,
		logger,
	)

	workloadService := workload.NewService(s, tracer, monitor, logger)

	router := web.NewRouter(
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			EchoOtp:            specs.OtpEchoEnabled,
		},
		accountService,
		workloadService,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
