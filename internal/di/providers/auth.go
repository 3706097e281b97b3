package providers

import (
	"github.com/samber/do/v2"

	"github.com/newsdeskapp/newsdesk-server/internal/auth"
	"github.com/newsdeskapp/newsdesk-server/internal/config"
	"github.com/newsdeskapp/newsdesk-server/internal/logger"
	"github.com/newsdeskapp/newsdesk-server/internal/ratelimit"
)

// AuthKey wraps the hex-encoded token signing key.
type AuthKey string

// ProvideAuthKey loads or generates the authentication key.
func ProvideAuthKey(i do.Injector) (AuthKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	key, err := auth.LoadOrGenerateKey(cfg.Data.BasePath)
	if err != nil {
		return "", err
	}

	// Update config with the loaded key
	cfg.Auth.TokenKey = key

	log.Info("Authentication key loaded",
		"token_duration", cfg.Auth.TokenDuration,
	)

	return AuthKey(key), nil
}

// ProvideTokenService provides the PASETO token service.
func ProvideTokenService(i do.Injector) (*auth.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	authKey := do.MustInvoke[AuthKey](i)

	return auth.NewTokenService(string(authKey), cfg.Auth.TokenDuration)
}

// LoginLimiterHandle wraps the credential-endpoint rate limiter with shutdown capability.
type LoginLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *LoginLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideLoginLimiter provides the per-IP rate limiter for registration and login.
func ProvideLoginLimiter(i do.Injector) (*LoginLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)

	limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	return &LoginLimiterHandle{KeyedRateLimiter: limiter}, nil
}
