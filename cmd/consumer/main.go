package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bharat-health-buddy/api/internal/config"
	"github.com/bharat-health-buddy/api/internal/queue"
)

func main() {
	config.LoadDotEnv()
	cfg := config.LoadEventConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := queue.NewChatConsumer(cfg.URL, cfg.Queue, cfg.LogDir)
	log.Printf("chat-consumer: reading %q into %s", cfg.Queue, cfg.LogDir)
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("chat-consumer: stopped")
}
