package http

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-family-vault/internal/config"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/service"
)

// authLimiterTTL is how long an idle client IP keeps its bucket.
const authLimiterTTL = 10 * time.Minute

type Handler struct {
	services *service.Services

	authLimiter    *ipRateLimiter
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, serverCfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	var limiter *ipRateLimiter
	if appCfg.AuthRateLimit > 0 {
		limiter = newIPRateLimiter(rate.Limit(appCfg.AuthRateLimit), appCfg.AuthRateBurst, authLimiterTTL)
	}

	return &Handler{
		services:       services,
		authLimiter:    limiter,
		requestTimeout: serverCfg.RequestTimeout,
		logger:         logger,
	}
}
