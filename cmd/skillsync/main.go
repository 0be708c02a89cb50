package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/SkillSynth-25-26/skillsync-client/config"
	"github.com/SkillSynth-25-26/skillsync-client/internal/bus"
	"github.com/SkillSynth-25-26/skillsync-client/internal/generation"
	"github.com/SkillSynth-25-26/skillsync-client/internal/identity"
	"github.com/SkillSynth-25-26/skillsync-client/internal/notify"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
	"github.com/SkillSynth-25-26/skillsync-client/internal/views"
)

// skillsync mounts the full view set against a running backend and keeps
// the caches fresh until interrupted. Useful as a smoke check that the
// whole sync layer wires together against real services.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	cache := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err := cache.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: redis unavailable at %s: %v", cfg.Redis.Addr, err)
	}

	rc := remote.NewClient(cfg.Remote.BaseURL)
	store := identity.NewStore(cache)
	topics := bus.New()
	gen := generation.NewService(
		generation.NewClient(cfg.Remote.BaseURL, cfg.ML.Timeout),
		generation.NewResolver(),
	)

	// one notifier per view: a toast in one view never preempts another's
	dashboard := views.NewDashboard(rc, topics, notify.New(cfg.Notify.TTL))
	board := views.NewBoard(rc, topics, notify.New(cfg.Notify.TTL))
	learn := views.NewLearn(gen, rc, topics, notify.New(cfg.Notify.TTL))
	profile := views.NewProfile(rc, store, topics, notify.New(cfg.Notify.TTL))

	ctx := context.Background()
	dashboard.Mount(ctx)
	board.Mount(ctx)
	learn.Mount(ctx)
	profile.Mount(ctx)

	scheduler := views.NewRefreshScheduler()
	scheduler.Register(dashboard)
	scheduler.Register(board)
	scheduler.Register(profile)
	if err := scheduler.Start("@every 5m"); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer scheduler.Stop()

	log.Printf("skillsync running against %s (env=%s)", cfg.Remote.BaseURL, cfg.App.Environment)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	profile.Unmount()
	learn.Unmount()
	board.Unmount()
	dashboard.Unmount()
	log.Println("skillsync stopped")
}
