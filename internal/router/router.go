package router

import (
	"waitlist/internal/config"
	"waitlist/internal/handler"
	"waitlist/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Setup 设置路由
func Setup(app *fiber.App, cfg *config.Config) {
	// 全局中间件
	app.Use(middleware.CORS(), middleware.RequestID(), middleware.Logger())

	h := handler.NewWaitlistHandler(cfg)

	app.Get("/health", h.Health)

	// 漏洞管线故意不挂Recover: strict变体panic时进程直接退出
	vul := app.Group("/vulnerable")
	vul.Get("/waitlist", h.Vulnerable)
	vul.Get("/waitlist-strict", h.VulnerableStrict)

	sec := app.Group("/secure", middleware.Recover())
	sec.Get("/waitlist", h.Secure)
}
