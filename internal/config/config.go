package config

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Config 全局配置结构
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Waitlist WaitlistConfig `yaml:"waitlist"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Env     string `yaml:"env"` // dev, test, prod
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // json, console
	Output     string `yaml:"output"` // stdout, file, both
	FilePath   string `yaml:"file_path"`
	MaxSize    int    `yaml:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
}

// WaitlistConfig 候补名单后端配置
type WaitlistConfig struct {
	APIKey       string   `yaml:"api_key"`       // 后端API密钥, 不得出现在任何客户端可见输出中
	AllowedHosts []string `yaml:"allowed_hosts"` // 可信host:port白名单, 精确匹配
}

// LoadConfig 加载配置文件
// 返回的配置在启动时注入各处理器, 之后只读, 不提供全局可变入口
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults 填充缺省配置
// 启动后配置只读, 所有缺省值必须在这里一次性补齐
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "waitlist"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Waitlist.APIKey == "" {
		// 未配置密钥时随机生成一个, 保证演示环境始终存在可泄露的秘密
		cfg.Waitlist.APIKey = uuid.NewString()
	}
	if len(cfg.Waitlist.AllowedHosts) == 0 {
		cfg.Waitlist.AllowedHosts = []string{
			"my-app.com:8080",
			"prod.my-app.com:8080",
			"127.0.0.1:8080",
		}
	}
	// 请求侧的host由fasthttp统一转为小写, 白名单也按小写存储
	for i, h := range cfg.Waitlist.AllowedHosts {
		cfg.Waitlist.AllowedHosts[i] = strings.ToLower(h)
	}
}
