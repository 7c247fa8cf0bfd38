package main

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/adapters/events"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/adapters/store"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/internal/config"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/ports"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/service"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var (
		identityStore ports.IdentityStore
		documentStore ports.DocumentStore
		eventPub      ports.EventPublisher
	)

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)

		publisher, err := redisstream.NewPublisher(
			redisstream.PublisherConfig{
				Client: redisClient,
			},
			watermill.NewStdLogger(cfg.Debug, false),
		)
		if err != nil {
			log.Fatalf("Failed to create Redis publisher: %v", err)
		}

		identityStore = store.NewRedisIdentityStore(redisClient)
		documentStore = store.NewRedisDocumentStore(redisClient)
		eventPub = events.NewWatermillPublisher(publisher)

		log.WithField("redis", opts.Addr).Info("using redis-backed stores")
	} else {
		identityStore = store.NewMemoryIdentityStore()
		documentStore = store.NewMemoryDocumentStore()
		eventPub = events.NewNoopPublisher()

		log.Warn("no redis configured, using in-memory stores")
	}

	authService := service.NewAuthService(identityStore, eventPub)
	docService := service.NewDocumentService(documentStore, eventPub)

	gin.SetMode(cfg.GinMode)

	router := http.SetupRouter(authService, docService)

	log.WithField("addr", cfg.ListenAddr).Info("starting server")
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
