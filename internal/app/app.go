package app

import (
	"context"
	"fmt"
	"time"

	"printshop/internal/auth"
	"printshop/internal/config"
	"printshop/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg      config.Config
	redis    *redis.Client
	store    *store.MemStore
	sessions auth.SessionStore
	router   *gin.Engine
}

// New builds the application: seeds the store (the admin credential hash is
// derived before this returns, so login works immediately), picks a session
// backend, and wires the router. Redis is optional; without it, sessions live
// in memory and catalog caching is off.
func New(cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	adminHash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	st, err := store.NewMemStore(adminHash)
	if err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	a.store = st

	if cfg.Redis.Enabled() {
		rdb, err := newRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = rdb
		a.sessions = auth.NewRedisStore(rdb, cfg.Session.TTL.Duration())
	} else {
		a.sessions = auth.NewMemoryStore(cfg.Session.TTL.Duration())
	}

	a.router = newRouter(cfg, st, a.sessions, a.redis)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// Close releases background resources: the session sweeper and, when
// configured, the redis connection.
func (a *App) Close() error {
	if ms, ok := a.sessions.(*auth.MemoryStore); ok {
		ms.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	return nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func newRouter(cfg config.Config, st *store.MemStore, sessions auth.SessionStore, rdb *redis.Client) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, st, sessions, rdb)
	return r
}
