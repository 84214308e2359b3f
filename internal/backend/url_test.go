package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWaitlistURL(t *testing.T) {
	got := BuildWaitlistURL("my-app.com:8080", "secret-key", "a@b.com")
	assert.Equal(t, "https://my-app.com:8080/v1/waitlist?api_key=secret-key&email=a@b.com", got)
}

func TestBuildWaitlistURLNoEscaping(t *testing.T) {
	// email原样插值, 次级注入面按设计保留
	got := BuildWaitlistURL("my-app.com:8080", "k", "a@b.com&admin=true")
	assert.Contains(t, got, "&admin=true")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("https://my-app.com:8080/v1/waitlist?api_key=k&email=a@b.com"))
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"space in host", "https://bad host/v1/waitlist?api_key=k&email=a@b.com"},
		{"control character", "https://my-app.com/v1/waitlist?api_key=k&email=a\x00b"},
		{"empty host", "https:///v1/waitlist?api_key=k&email=a@b.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.raw)
			require.Error(t, err)

			var pf *ParseFailure
			require.ErrorAs(t, err, &pf)
			assert.Equal(t, tt.raw, pf.URL)
			// 错误文本按构造携带完整候选串
			assert.Contains(t, err.Error(), tt.raw)
		})
	}
}

// 非法Host驱动的泄露细节: 解析失败的错误文本带出密钥与被信任的Host
// 传输层不会把这类Host放行到处理器, 因此该向量在这里而非路由层钉住
func TestHostDrivenFailureDetailCarriesSecret(t *testing.T) {
	raw := BuildWaitlistURL("bad host", "secret-key-123", "a@b.com")

	err := Validate(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret-key-123")
	assert.Contains(t, err.Error(), "bad host")
}

func TestMustValidate(t *testing.T) {
	assert.NotPanics(t, func() {
		MustValidate("https://my-app.com:8080/v1/waitlist?api_key=k&email=a@b.com")
	})
	assert.Panics(t, func() {
		MustValidate("https://bad host/v1/waitlist?api_key=k&email=a@b.com")
	})
}
