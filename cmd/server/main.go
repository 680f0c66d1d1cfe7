package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/sirupsen/logrus"

	httpadapter "chronoclicker/internal/adapter/http"
	metricsinmem "chronoclicker/internal/adapter/metrics/inmemory"
	"chronoclicker/internal/adapter/notify"
	gormrepo "chronoclicker/internal/adapter/repo/gorm"
	"chronoclicker/internal/adapter/repo/memory"
	"chronoclicker/internal/app/game"
	"chronoclicker/internal/app/ports"
	"chronoclicker/internal/app/replay"
	"chronoclicker/internal/config"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", os.Getenv("CHRONOCLICKER_CONFIG"), "path to yaml config")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	saves, events := buildRepos(log, cfg)
	kpiRecorder := metricsinmem.NewRecorder()

	store := game.New(game.Config{
		Saves:             saves,
		Events:            events,
		Notifier:          notify.LogSink{Log: log},
		Metrics:           kpiRecorder,
		Log:               log,
		SaveKey:           cfg.SaveKey,
		BaseDropChance:    cfg.BaseDropChance,
		MaxBulkIterations: cfg.MaxBulkIterations,
		AutosaveInterval:  time.Duration(cfg.AutosaveSeconds) * time.Second,
		GameSpeed:         cfg.GameSpeed,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if store.LoadGame(ctx) {
		log.Info("restored saved game")
	} else {
		log.Info("starting fresh game")
	}
	go store.Run(ctx)

	h := httpadapter.Handler{
		Game:     store,
		ReplayUC: replay.UseCase{Events: events},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Listen))
	h.RegisterRoutes(s)

	log.WithField("listen", cfg.Listen).Info("chronoclicker server listening")
	s.Spin()
}

func buildRepos(log *logrus.Logger, cfg config.Config) (ports.SaveStore, ports.EventStore) {
	if cfg.DatabaseDSN == "" {
		log.Warn("no database dsn configured, using in-memory storage")
		store := memory.NewStore()
		return memory.NewSaveRepo(store), memory.NewEventRepo(store)
	}
	db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.WithError(err).Fatal("open postgres")
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate")
	}
	return gormrepo.NewSaveRepo(db), gormrepo.NewEventRepo(db)
}
