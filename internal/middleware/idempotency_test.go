package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/aitprint-portal/AITPRINT/internal/logging"
)

func setupIdempotencyApp(t *testing.T) (*fiber.App, *atomic.Int64) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	var hits atomic.Int64
	app := fiber.New()
	app.Use(Idempotency(cache, time.Minute, logging.Discard()))
	app.Post("/topup", func(c *fiber.Ctx) error {
		hits.Add(1)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"wallet": hits.Load() * 100})
	})

	return app, &hits
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	app, hits := setupIdempotencyApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/topup", strings.NewReader("{}"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(idempotencyKeyHeader, "recharge-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	first, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	req2 := httptest.NewRequest(fiber.MethodPost, "/topup", strings.NewReader("{}"))
	req2.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req2.Header.Set(idempotencyKeyHeader, "recharge-1")

	resp2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	second, _ := io.ReadAll(resp2.Body)
	resp2.Body.Close()

	if hits.Load() != 1 {
		t.Fatalf("handler must run once, ran %d times", hits.Load())
	}
	if string(first) != string(second) {
		t.Fatalf("expected replayed payload %s, got %s", first, second)
	}
}

func TestIdempotencyKeyIsOptional(t *testing.T) {
	app, hits := setupIdempotencyApp(t)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/topup", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	}

	if hits.Load() != 2 {
		t.Fatalf("keyless requests must all reach the handler, got %d", hits.Load())
	}
}
