package response

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h fiber.Handler) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestText(t *testing.T) {
	status, body := serve(t, func(c *fiber.Ctx) error {
		return Text(c, fiber.StatusBadRequest, MsgInvalidHost)
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, MsgInvalidHost, body)
}

func TestLeakInternal(t *testing.T) {
	internal := errors.New("URL: 'https://h/v1/waitlist?api_key=secret', Error: boom")
	status, body := serve(t, func(c *fiber.Ctx) error {
		return LeakInternal(c, internal)
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	// 漏洞映射逐字转发内部错误
	assert.Equal(t, internal.Error(), body)
}

func TestSanitized(t *testing.T) {
	status, body := serve(t, func(c *fiber.Ctx) error {
		return Sanitized(c)
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	// 脱敏映射没有任何入参可转发, 只可能输出固定文案
	assert.Equal(t, MsgInternalGeneric, body)
}
