package backend

import (
	"fmt"
	"net/url"
)

// BuildWaitlistURL 拼接后端候补名单URL
// host与email原样插值, 不做转义(两条管线一致的次级注入面, 按设计保留)
func BuildWaitlistURL(host, apiKey, email string) string {
	return fmt.Sprintf("https://%s/v1/waitlist?api_key=%s&email=%s", host, apiKey, email)
}

// ParseFailure URL校验失败
// 错误文本按构造携带完整候选串(含api_key), 绝不能直接回给客户端
type ParseFailure struct {
	URL string
	Err error
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("Failed to construct backend request. URL: '%s', Error: %v", e.URL, e.Err)
}

func (e *ParseFailure) Unwrap() error {
	return e.Err
}

// Validate 校验候选URL, 只解析不发请求
// 空authority视为非法, 与通用HTTP客户端的解析行为对齐
func Validate(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &ParseFailure{URL: raw, Err: err}
	}
	if u.Host == "" {
		return &ParseFailure{URL: raw, Err: fmt.Errorf("empty host")}
	}
	return nil
}

// MustValidate 断言校验必定成功, 失败直接panic
// 仅用于演示对未校验输入做unwrap式断言带来的拒绝服务隐患
func MustValidate(raw string) {
	if err := Validate(raw); err != nil {
		panic(err)
	}
}
