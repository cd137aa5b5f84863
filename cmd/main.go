package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"restaurant-management/internal/api"
	"restaurant-management/internal/config"
	"restaurant-management/internal/database"
	"restaurant-management/internal/logger"
	"restaurant-management/internal/messaging"
	"restaurant-management/internal/models"
	"restaurant-management/internal/services/notification"
)

const serviceName = "rms"

func main() {
	cliApp := &cli.App{
		Name:  serviceName,
		Usage: "restaurant management: customers, staff, menu, orders and payments",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"RMS_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API and the dashboard refresher",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "apply the embedded database schema",
				Action: runMigrate,
			},
			{
				Name:      "exec",
				Usage:     "run one operation and print its result",
				ArgsUsage: "<operation> [json payload | -]",
				Action:    runExec,
			},
			{
				Name:  "dashboard",
				Usage: "print the dashboard summary",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "watch", Usage: "keep printing on every refresh"},
				},
				Action: runDashboard,
			},
			{
				Name:   "notifications",
				Usage:  "print order and payment notifications as they arrive",
				Action: runNotifications,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func signalContext(c *cli.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := logger.New(serviceName)
	requestID := logger.GenerateRequestID()

	ctx, stop := signalContext(c)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error("startup_failed", "Failed to start", requestID, err, nil)
		return err
	}
	defer a.Close()

	if err := a.db.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	handler := api.NewHandler(a.dispatcher, a.refresher, a.db, log)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           api.NewRouter(handler, cfg.HTTP.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("service_started", fmt.Sprintf("API started on port %d", cfg.HTTP.Port), requestID, map[string]interface{}{
			"port":             cfg.HTTP.Port,
			"request_timeout":  cfg.HTTP.RequestTimeout.Seconds(),
			"refresh_interval": cfg.Dashboard.RefreshInterval.Seconds(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return a.refresher.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("graceful_shutdown", "Shutting down", requestID, nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("service_failed", "API failed", requestID, err, nil)
		return err
	}
	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
	return nil
}

func runMigrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := logger.New(serviceName)

	db, err := database.New(c.Context, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return db.RunMigrations(c.Context)
}

func runExec(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("an operation name is required, e.g. customer.list", 2)
	}
	name := c.Args().Get(0)

	var payload []byte
	switch arg := c.Args().Get(1); arg {
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}
		payload = data
	default:
		payload = []byte(arg)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := logger.New(serviceName)

	a, err := newApp(c.Context, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	res := a.dispatcher.Dispatch(c.Context, name, payload)
	if err := printJSON(c.App.Writer, res); err != nil {
		return err
	}
	if !res.OK {
		return cli.Exit("", 1)
	}
	return nil
}

func runDashboard(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := logger.New(serviceName)

	ctx, stop := signalContext(c)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	if !c.Bool("watch") {
		summary, err := a.refresher.Refresh(ctx)
		if err != nil {
			return cli.Exit("Failed to load dashboard.", 1)
		}
		return printJSON(c.App.Writer, summary)
	}

	a.refresher.OnRefresh(func(s models.DashboardSummary) {
		if err := printJSON(c.App.Writer, s); err != nil {
			log.Error("dashboard_print_failed", "Failed to print dashboard", "", err, nil)
		}
	})
	return a.refresher.Run(ctx)
}

func runNotifications(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if !cfg.RabbitMQEnabled() {
		return cli.Exit("rabbitmq.host is not configured", 1)
	}
	log := logger.New(serviceName)

	ctx, stop := signalContext(c)
	defer stop()

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()
	log.Info("rabbitmq_connected", "Connected to RabbitMQ", "", nil)

	consumer := messaging.NewConsumer(conn, log, messaging.NotificationsQueue, "rms-notifications", 10)
	return notification.NewSubscriber(consumer, log).Start(ctx)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
