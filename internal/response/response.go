package response

import (
	"github.com/gofiber/fiber/v2"
)

// Response 统一JSON响应结构, 健康检查等内部接口使用
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// CodeSuccess 成功响应码
const CodeSuccess = 0

// 固定的客户端可见文案
// 字面内容即对外契约, 任何一条都不得携带内部细节
const (
	MsgInvalidHost     = "Invalid 'Host' header provided."
	MsgJoinedWaitlist  = "Thank you for your interest. You have been added to the waitlist."
	MsgLaunchNotify    = "Thank you for your interest. We will notify you when we are ready to launch."
	MsgInternalGeneric = "Oops! Something went wrong. Please try again later."
	MsgMissingEmail    = "missing 'email' query parameter"
)

// Text 纯文本响应
func Text(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).SendString(msg)
}

// LeakInternal 漏洞管线的错误映射: 把内部错误原文直接写进响应体
// err.Error() 携带完整候选URL与api_key, 这正是信息泄露点
func LeakInternal(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
}

// Sanitized 安全管线的错误映射: 对外只回固定文案, 不转发任何内部字段
func Sanitized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).SendString(MsgInternalGeneric)
}

// Success 成功JSON响应
func Success(c *fiber.Ctx, data any) error {
	return c.JSON(Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}
