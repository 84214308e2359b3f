package handler

import (
	"waitlist/internal/backend"
	"waitlist/internal/config"
	"waitlist/internal/hosttrust"
	"waitlist/internal/logger"
	"waitlist/internal/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WaitlistHandler 候补名单处理器
// 持有启动后只读的配置, 运行期绝不修改
type WaitlistHandler struct {
	cfg *config.Config
}

// NewWaitlistHandler 创建候补名单处理器
func NewWaitlistHandler(cfg *config.Config) *WaitlistHandler {
	return &WaitlistHandler{cfg: cfg}
}

// Vulnerable 漏洞管线: 盲信Host, 构造失败时把内部错误原样回给客户端
func (h *WaitlistHandler) Vulnerable(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return response.Text(c, fiber.StatusBadRequest, response.MsgMissingEmail)
	}

	decision := hosttrust.DecideOpen(c.Hostname())

	raw := backend.BuildWaitlistURL(decision.Host, h.cfg.Waitlist.APIKey, email)
	logger.Info("漏洞管线尝试使用URL", zap.String("url", raw))

	if err := backend.Validate(raw); err != nil {
		// 信息泄露点: 候选URL连同api_key一起进了响应体
		return response.LeakInternal(c, err)
	}
	return response.Text(c, fiber.StatusOK, response.MsgJoinedWaitlist)
}

// VulnerableStrict 漏洞管线的崩溃变体: 对未校验输入做必成断言
// 非法Host会触发panic, 且该路由组没有Recover, 进程直接退出
func (h *WaitlistHandler) VulnerableStrict(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return response.Text(c, fiber.StatusBadRequest, response.MsgMissingEmail)
	}

	decision := hosttrust.DecideOpen(c.Hostname())

	raw := backend.BuildWaitlistURL(decision.Host, h.cfg.Waitlist.APIKey, email)
	logger.Info("漏洞管线(strict)尝试使用URL", zap.String("url", raw))

	backend.MustValidate(raw)
	return response.Text(c, fiber.StatusOK, response.MsgJoinedWaitlist)
}

// Secure 安全管线: 白名单校验Host, 失败响应一律脱敏
func (h *WaitlistHandler) Secure(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return response.Text(c, fiber.StatusBadRequest, response.MsgMissingEmail)
	}

	decision := hosttrust.DecideAllowlist(c.Hostname(), h.cfg.Waitlist.AllowedHosts)
	if !decision.Accepted {
		return response.Text(c, fiber.StatusBadRequest, response.MsgInvalidHost)
	}

	raw := backend.BuildWaitlistURL(decision.Host, h.cfg.Waitlist.APIKey, email)
	logger.Info("安全管线尝试使用URL", zap.String("url", raw))

	if err := backend.Validate(raw); err != nil {
		// 完整细节只进服务端日志, 客户端只拿固定文案
		logger.Error("后端URL解析失败", zap.String("url", raw), zap.Error(err))
		return response.Sanitized(c)
	}
	return response.Text(c, fiber.StatusOK, response.MsgLaunchNotify)
}
