package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func TestAdminLoginRateLimit(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	app := fiber.New()
	app.Post("/login", AdminLoginRateLimit(cache, 3), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	attempt := func() int {
		req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(`{"username":"admin"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	for i := 0; i < 3; i++ {
		if code := attempt(); code != fiber.StatusOK {
			t.Fatalf("attempt %d expected 200, got %d", i+1, code)
		}
	}
	if code := attempt(); code != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", code)
	}
}

func TestAdminLoginRateLimitWithoutRedis(t *testing.T) {
	app := fiber.New()
	app.Post("/login", AdminLoginRateLimit(nil, 1), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(`{}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected pass-through without redis, got %d", resp.StatusCode)
		}
	}
}
