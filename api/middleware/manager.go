package middleware

import (
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

// TokenVerifier validates a bearer token and resolves the admin user it
// belongs to.
type TokenVerifier interface {
	VerifyToken(token string) (*structs.AdminUser, bool)
}

type Middleware struct {
	cfg      *structs.Config
	logger   *gecho.Logger
	verifier TokenVerifier
	redis    *redis.Client
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, verifier TokenVerifier) *Middleware {
	mw := &Middleware{
		cfg:      cfg,
		logger:   logger,
		verifier: verifier,
	}

	if cfg.RateLimit.Enabled && cfg.Cache.Address != "" {
		mw.redis = redis.NewClient(&redis.Options{
			Addr:        cfg.Cache.Address,
			Username:    cfg.Cache.Username,
			Password:    cfg.Cache.Password,
			DB:          cfg.Cache.DB,
			PoolSize:    cfg.Cache.PoolSize,
			DialTimeout: cfg.Cache.DialTimeout,
			ReadTimeout: cfg.Cache.ReadTimeout,
		})
	}

	return mw
}
