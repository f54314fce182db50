package middleware

import (
	"bytes"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestAccessLogMiddleware_LogsRequestIDAndCaller(t *testing.T) {
	var buf bytes.Buffer
	mw := NewAccessLogMiddleware(log.New(&buf, "", 0))

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/me", func(c fiber.Ctx) error {
		c.Locals(CtxUserIDKey, "u1")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID response header")
	}

	line := buf.String()
	if !strings.Contains(line, "uid=u1") {
		t.Fatalf("expected uid in access log, got %q", line)
	}
	if !strings.Contains(line, "method=GET") || !strings.Contains(line, "path=/me") || !strings.Contains(line, "status=200") {
		t.Fatalf("unexpected access log line: %q", line)
	}
}

func TestAccessLogMiddleware_AnonymousCaller(t *testing.T) {
	var buf bytes.Buffer
	mw := NewAccessLogMiddleware(log.New(&buf, "", 0))

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/skills", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/skills", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if !strings.Contains(buf.String(), "uid=-") {
		t.Fatalf("expected anonymous uid marker, got %q", buf.String())
	}
}
