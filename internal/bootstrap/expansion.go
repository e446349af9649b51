package bootstrap

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/in-tuned/emotion-engine/internal/cache"
	"github.com/in-tuned/emotion-engine/internal/config"
	"github.com/in-tuned/emotion-engine/internal/expansion"
	"github.com/in-tuned/emotion-engine/internal/lexicon"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/telemetry"
)

// SetupExpansion builds the external expansion service. Returns nil when the
// feature is disabled or no database is configured; the API degrades to 503
// on expansion routes in that case.
func SetupExpansion(cfg *config.Config, db *DatabaseComponents, manager *lexicon.Manager, tele *telemetry.Provider, logger logging.Logger) *expansion.Service {
	if !cfg.Expansion.Enabled || db == nil {
		logger.Info("external lexicon expansion disabled")
		return nil
	}

	httpClient := &http.Client{Timeout: cfg.Expansion.RequestTimeout}
	providers := []expansion.Provider{
		expansion.NewFreeDictionary(cfg.Expansion.FreeDictURL, httpClient),
		expansion.NewUrbanDictionary(cfg.Expansion.UrbanURL, httpClient),
	}

	var ttlCache cache.TTLCache = cache.NewMemory()
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.Database,
			DialTimeout:  cfg.Redis.Timeout,
			ReadTimeout:  cfg.Redis.Timeout,
			WriteTimeout: cfg.Redis.Timeout,
		})
		ttlCache = cache.NewRedis(client, "expansion:")
		logger.Info("expansion cache backed by redis",
			logging.String("addr", cfg.Redis.Addr))
	}

	svc := expansion.NewService(expansion.ServiceParams{
		Providers:      providers,
		Cache:          ttlCache,
		CacheTTL:       cfg.Expansion.CacheTTL,
		RequestTimeout: cfg.Expansion.RequestTimeout,
		RatePerSecond:  cfg.Expansion.RatePerSecond,
		RateBurst:      cfg.Expansion.RateBurst,
		Repository:     db.CandidateRepo,
		Sink:           manager,
		Telemetry:      tele,
		Logger:         logger,
	})

	logger.Info("external lexicon expansion enabled",
		logging.Duration("cache_ttl", cfg.Expansion.CacheTTL),
		logging.Duration("request_timeout", cfg.Expansion.RequestTimeout))
	return svc
}
