package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/spec-kit/legal-case-service/internal/config"
	"github.com/spec-kit/legal-case-service/internal/observability"
	"github.com/spec-kit/legal-case-service/internal/persistence"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares: timeout, error handling,
// CORS, rate limiting and request logging.
func RegisterMiddlewares(app *fiber.App, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics, redis *persistence.Redis) {
	if timeout := cfg.App.RequestTimeout(); timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics, cfg.App.IsProduction()))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use("/api", rateLimitMiddleware(redis, cfg.RateLimit))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware converts every error into the response envelope
// with a stable code. Unrecognized errors become a generic 500; internals are
// only exposed outside production.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, production bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)

				errBody := fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}
				if domainErr.Details != nil {
					errBody["details"] = domainErr.Details
				}
				if !production && domainErr.Err != nil {
					errBody["cause"] = domainErr.Err.Error()
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}

				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(fiber.Map{"success": false, "error": errBody})
				err = nil
			}
		}()
		return c.Next()
	}
}

// rateLimitMiddleware bounds requests per client IP using a fixed Redis
// window. Redis outages fail open.
func rateLimitMiddleware(redis *persistence.Redis, cfg config.RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redis == nil || redis.Client == nil || cfg.MaxRequests <= 0 {
			return c.Next()
		}

		key := "ratelimit:" + c.IP()
		count, err := redis.Client.Incr(c.Context(), key).Result()
		if err != nil {
			return c.Next()
		}
		if count == 1 {
			_ = redis.Client.Expire(c.Context(), key, cfg.Window()).Err()
		}
		if count > int64(cfg.MaxRequests) {
			return apperrors.NewDomainError(apperrors.CodeRateLimited,
				"too many requests, try again in a few minutes",
				fiber.StatusTooManyRequests, nil)
		}
		return c.Next()
	}
}

// NotFoundHandler answers unmatched routes with the envelope shape.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"error": fiber.Map{
			"code":    apperrors.CodeRouteNotFound,
			"message": "route not found: " + c.Method() + " " + c.OriginalURL(),
		},
	})
}
