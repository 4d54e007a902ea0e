package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"globaljobhunter-engine/internal/cache"
	"globaljobhunter-engine/internal/config"
	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/events"
	"globaljobhunter-engine/internal/httpapi"
	"globaljobhunter-engine/internal/search"
	"globaljobhunter-engine/internal/source"
	"globaljobhunter-engine/internal/source/adzuna"
	"globaljobhunter-engine/internal/source/careerjet"
	"globaljobhunter-engine/internal/source/jobicy"
	"globaljobhunter-engine/internal/timeutil"
)

func main() {
	dataDir := os.Getenv("ENGINE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	base := config.FromEnv()
	overlayPath, err := config.EnsureOverlay(dataDir, base)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	loadCfg := func() (config.Config, error) {
		c := config.FromEnv()
		if err := config.Overlay(&c, overlayPath); err != nil {
			return c, err
		}
		return c, config.Validate(c)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", overlayPath, err)
	}
	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	store := buildStore(cfg)
	cm := cache.NewManager(store, time.Duration(cfg.App.CacheTTLHours)*time.Hour, timeutil.Real())

	clock := timeutil.Real()
	jitter := timeutil.NewJitter(0)
	metrics := make(map[domain.SourceKind]*source.Metrics)
	var adapters []source.Adapter

	if cfg.Sources.Adzuna.Enabled {
		m := source.NewMetrics("adzuna_stats", cm)
		metrics[domain.SourceAdzuna] = m
		adapters = append(adapters, adzuna.New(adzuna.Config{
			AppID:     cfg.Credentials.AdzunaAppID,
			AppKey:    cfg.Credentials.AdzunaAppKey,
			PerMinute: cfg.Sources.Adzuna.PerMinute,
			Cooldown:  time.Duration(cfg.Sources.Adzuna.CooldownSec) * time.Second,
			Timeout:   time.Duration(cfg.Sources.Adzuna.TimeoutSec) * time.Second,
		}, cm, m, clock, jitter))
	}
	if cfg.Sources.Careerjet.Enabled {
		m := source.NewMetrics("careerjet_stats", cm)
		metrics[domain.SourceCareerjet] = m
		adapters = append(adapters, careerjet.New(careerjet.Config{
			APIKey:    cfg.Credentials.CareerjetAPIKey,
			AffID:     cfg.Credentials.CareerjetAffID,
			PerMinute: cfg.Sources.Careerjet.PerMinute,
			MaxPages:  cfg.Sources.Careerjet.MaxPages,
			Cooldown:  time.Duration(cfg.Sources.Careerjet.CooldownSec) * time.Second,
			Timeout:   time.Duration(cfg.Sources.Careerjet.TimeoutSec) * time.Second,
		}, cm, m, clock, jitter))
	}
	if cfg.Sources.Jobicy.Enabled {
		m := source.NewMetrics("jobicy_stats", cm)
		metrics[domain.SourceJobicy] = m
		adapters = append(adapters, jobicy.New(jobicy.Config{
			PerMinute: cfg.Sources.Jobicy.PerMinute,
			Cooldown:  time.Duration(cfg.Sources.Jobicy.CooldownSec) * time.Second,
			Timeout:   time.Duration(cfg.Sources.Jobicy.TimeoutSec) * time.Second,
		}, cm, m, clock, jitter))
	}
	for _, a := range adapters {
		log.Printf("[engine] source enabled: %s", a.Kind())
	}

	engine := search.NewEngine(cm, adapters...)
	hub := events.NewHub()

	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.App.SweepCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		cm.SweepExpired(ctx)
	}); err != nil {
		log.Fatalf("bad sweep schedule %q: %v", cfg.App.SweepCron, err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	mux := httpapi.NewMux(httpapi.Deps{
		Engine:      engine,
		Hub:         hub,
		Metrics:     metrics,
		CfgVal:      &cfgVal,
		OverlayPath: overlayPath,
		LoadCfg:     loadCfg,
	})
	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		log.Printf("[engine] shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	log.Printf("engine listening on %s (cache=%s, ttl=%dh)", addr, cfg.App.CacheDir, cfg.App.CacheTTLHours)
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// buildStore wires the cache tiers: Redis primary when configured and
// reachable, the file tier always, composed so Redis outages degrade to
// disk instead of failing searches.
func buildStore(cfg config.Config) cache.Store {
	fileStore, err := cache.NewFileStore(cfg.App.CacheDir)
	if err != nil {
		log.Fatalf("file cache init failed: %v", err)
	}
	if cfg.Credentials.RedisURL == "" {
		log.Printf("[engine] no REDIS_URL, file cache only")
		return fileStore
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisStore, err := cache.NewRedisStore(ctx, cfg.Credentials.RedisURL)
	if err != nil {
		log.Printf("[engine] redis unavailable, file cache only: %v", err)
		return fileStore
	}
	log.Printf("[engine] cache tiers: redis + file")
	return cache.NewFallbackStore(redisStore, fileStore)
}
