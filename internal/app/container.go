package app

import (
	"log"
	"os"

	"hirehack/internal/config"
	"hirehack/internal/flow/store"
	"hirehack/internal/graph"
	"hirehack/internal/relay"
	"hirehack/internal/ws"
)

// Container wires the shared clients and stores the handlers depend on.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Relay *relay.Client
	Graph *graph.Client
	Flows store.Store
	Hub   *ws.Hub

	redis *store.Redis
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c := &Container{
		Config: cfg,
		Logger: logger,
		Relay:  relay.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger),
		Hub:    ws.NewHub(logger),
	}

	if cfg.Graph.BaseURL != "" {
		c.Graph = graph.NewClient(cfg.Graph.BaseURL, cfg.Graph.APIKey, logger)
	}

	// Flow state lives in redis when one is reachable, otherwise in memory.
	if cfg.Redis.Host != "" {
		c.redis = store.NewRedis(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, logger)
	}
	if c.redis != nil {
		c.Flows = c.redis
	} else {
		c.Flows = store.NewMemory()
		logger.Printf("app | flow store using in-memory fallback")
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
