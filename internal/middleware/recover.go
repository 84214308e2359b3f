package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Recover 异常恢复中间件
// 只挂在安全管线上; 漏洞管线有意不恢复, strict变体的panic会终止进程
func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
	})
}
