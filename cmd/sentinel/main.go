package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"okta-sentinel/internal/analyzer"
	"okta-sentinel/internal/config"
	"okta-sentinel/internal/controller"
	"okta-sentinel/internal/db"
	httpserver "okta-sentinel/internal/http"
	"okta-sentinel/internal/okta"
	"okta-sentinel/internal/repository"
	"okta-sentinel/internal/service"
	"okta-sentinel/internal/snapshot"
	"okta-sentinel/internal/trends"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if level, parseErr := logrus.ParseLevel(cfg.LogLevel); parseErr == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := snapshot.NewStore(cfg.DataDir, log)
	trendsSvc := trends.NewService(store, log)

	var source service.LogSource
	if cfg.AppMode != "offline" {
		client, err := okta.NewClient(cfg.OktaDomain, cfg.OktaAPIToken, cfg.APITimeout, log)
		if err != nil {
			log.WithError(err).Fatal("create okta client")
		}
		if err := client.TestConnection(ctx); err != nil {
			log.WithError(err).Warn("Okta connection test failed, continuing anyway")
		}
		source = client
	}

	var worker service.ArchiveWorker
	if cfg.ArchiveEnabled() {
		conn, err := db.NewConnection(ctx, cfg)
		if err != nil {
			log.WithError(err).Fatal("connect clickhouse")
		}
		defer conn.Close()

		if err := db.RunMigrations(ctx, conn); err != nil {
			log.WithError(err).Fatal("migrate")
		}

		w := service.NewArchiveWorker(repository.NewEventArchive(conn), cfg.ArchiveBufferSize, cfg.ArchiveBatchSize, cfg.ArchiveFlushEvery, log)
		defer w.Shutdown()
		worker = w
	}

	monitor := service.NewMonitorService(source, analyzer.New(log), store, worker, cfg.LookbackHours, cfg.LogLimit, log)

	if cfg.PollInterval > 0 && source != nil {
		go pollLoop(ctx, monitor, cfg.PollInterval, log)
	}

	server := httpserver.NewServer(controller.NewDashboardController(trendsSvc, monitor))

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("server shutdown")
		}
	}()

	log.WithField("addr", cfg.HTTPPort).Info("starting server")
	if err := server.Listen(cfg.HTTPPort); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func pollLoop(ctx context.Context, monitor service.MonitorService, interval time.Duration, log logrus.FieldLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := monitor.RunOnce(ctx); err != nil {
				log.WithError(err).Error("scheduled analysis run failed")
			}
		}
	}
}
