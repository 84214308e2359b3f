package hosttrust

import (
	"waitlist/internal/logger"

	"github.com/duke-git/lancet/v2/slice"
	"go.uber.org/zap"
)

// Decision Host信任判定结果
// Accepted为true时下游用Host拼接后端URL, 为false时Reason给出拒绝原因
type Decision struct {
	Host     string
	Accepted bool
	Reason   string
}

// ReasonDisallowed 拒绝原因固定文案
const ReasonDisallowed = "missing or disallowed host"

// DecideOpen 漏洞策略: 无条件信任客户端Host
// 缺失按空串处理, 白名单根本不参与判定, 攻击者完全控制下游host
func DecideOpen(claimed string) Decision {
	logger.Info("接受客户端Host(未校验)", zap.String("host", claimed))
	return Decision{Host: claimed, Accepted: true}
}

// DecideAllowlist 安全策略: host非空且精确命中白名单才接受
// 不做任何规范化: 不剥端口, 不支持通配
func DecideAllowlist(claimed string, allowed []string) Decision {
	if claimed != "" && slice.Contain(allowed, claimed) {
		return Decision{Host: claimed, Accepted: true}
	}

	logger.Warn("拒绝非法或缺失的Host", zap.String("host", claimed))
	return Decision{Accepted: false, Reason: ReasonDisallowed}
}
