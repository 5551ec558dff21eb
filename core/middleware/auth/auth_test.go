package auth_test

import (
	"net/http/httptest"
	"testing"

	"sync-actions/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		headers map[string]string
		want    int
	}{
		{"Disabled", "", nil, fiber.StatusOK},
		{"Missing Key", "secret", nil, fiber.StatusUnauthorized},
		{"Wrong Key", "secret", map[string]string{auth.Header: "nope"}, fiber.StatusUnauthorized},
		{"Header Key", "secret", map[string]string{auth.Header: "secret"}, fiber.StatusOK},
		{"Bearer Token", "secret", map[string]string{"Authorization": "Bearer secret"}, fiber.StatusOK},
		{"Basic Scheme", "secret", map[string]string{"Authorization": "Basic secret"}, fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(auth.New(auth.Config{ApiKey: tt.apiKey}))
			app.Get("/", func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
