package main // Entry point package

import (
	"log" // Logging library

	"github.com/bharat-health-buddy/api/internal/config"     // Internal config loader
	"github.com/bharat-health-buddy/api/internal/middleware" // Response cache store
	"github.com/bharat-health-buddy/api/internal/router"     // Internal router setup
	"github.com/bharat-health-buddy/api/internal/service"    // Chat event publisher
)

func main() {
	config.LoadDotEnv() // Apply .env before reading any variable
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var deps router.Deps
	if cfg.Cache.Enabled {
		if rdb := config.NewRedisClient(); rdb != nil {
			deps.Cache = middleware.NewRedisStore(rdb)
			defer rdb.Close()
		} else {
			log.Printf("redis unreachable; response cache disabled")
		}
	}
	if cfg.Events.Enabled {
		deps.Events = service.NewEventPublisher(cfg.Events.URL, cfg.Events.Queue)
	}

	e := router.New(cfg, deps)
	log.Printf("Server running on port %s (env=%s)", cfg.Port, cfg.Env)
	if err := e.Start(cfg.Addr()); err != nil { // Runs until the process is killed
		log.Fatal(err)
	}
}
