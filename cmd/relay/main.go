package main

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/SkillSynth-25-26/skillsync-client/config"
	"github.com/SkillSynth-25-26/skillsync-client/internal/relay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	relay.SetGinMode(cfg.App.Environment)

	cache := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})

	r := relay.BuildRouter(relay.RouterDeps{
		ServiceName: "skillsync-relay",
		Version:     cfg.App.Version,
		MLURL:       cfg.ML.URL,
		Timeout:     cfg.ML.Timeout,
		Cache:       cache,
	})

	log.Printf("relay listening on :%s", cfg.Relay.Port)
	if err := r.Run(":" + cfg.Relay.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
