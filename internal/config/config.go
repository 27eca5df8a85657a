package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultCertConfigPath 证书监控默认配置文件路径
const DefaultCertConfigPath = "/etc/ssl-monitor/config.json"

// CertConfig 证书监控配置
// JSON 键与配置文件中的键一致，未出现的键保留默认值（浅层覆盖）
type CertConfig struct {
	Domains      []string `json:"domains"`       // 待检查的域名列表
	WarningDays  int      `json:"warning_days"`  // 剩余天数 <= 该值时产生 warning 告警
	CriticalDays int      `json:"critical_days"` // 剩余天数 <= 该值时产生 critical 告警并触发续期
	SlackWebhook string   `json:"slack_webhook"` // Webhook 地址，为空则不发送通知
	EmailAlerts  string   `json:"email_alerts"`  // 告警邮件收件人，为空则不发送邮件
	AutoRenew    bool     `json:"auto_renew"`    // 是否允许自动续期
	CertbotEmail string   `json:"certbot_email"` // 传给续期工具的账户邮箱
	LogFile      string   `json:"log_file"`      // 运行日志文件（JSON Lines）
}

// DefaultCertConfig 返回内置默认配置，环境变量在此时读取一次
func DefaultCertConfig() *CertConfig {
	return &CertConfig{
		Domains: []string{
			"api.mycompany.com",
			"app.mycompany.com",
			"www.mycompany.com",
		},
		WarningDays:  30,
		CriticalDays: 7,
		SlackWebhook: os.Getenv("SLACK_WEBHOOK_URL"),
		EmailAlerts:  os.Getenv("ALERT_EMAIL"),
		AutoRenew:    false,
		CertbotEmail: os.Getenv("CERTBOT_EMAIL"),
		LogFile:      "/var/log/ssl-monitor.log",
	}
}

// LoadCertConfig 加载配置文件并覆盖到默认值上
// 文件不存在时静默使用默认值，解析失败时打印警告后使用默认值
func LoadCertConfig(path string) *CertConfig {
	cfg := DefaultCertConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Could not load config file %s: %v\n", path, err)
		}
		return cfg
	}

	// 反序列化到已填充默认值的结构体上，实现浅层键覆盖
	if err := json.Unmarshal(data, cfg); err != nil {
		fmt.Printf("Warning: Could not load config file %s: %v\n", path, err)
		return DefaultCertConfig()
	}

	return cfg
}

// SysmonConfig 系统监控配置（仅来自命令行参数和环境变量，无配置文件）
type SysmonConfig struct {
	Output             string  // 输出格式 json / human
	LogFile            string  // 运行日志文件，为空则不记录
	Daemon             bool    // 是否以守护进程模式循环运行
	Interval           int     // 守护进程模式的采集间隔（秒）
	LoadThreshold      float64 // 1 分钟负载告警阈值
	MonitoringEndpoint string  // 指标上报地址，为空则不上报
}

// DefaultSysmonConfig 返回系统监控默认配置
func DefaultSysmonConfig() *SysmonConfig {
	return &SysmonConfig{
		Output:             "human",
		Interval:           60,
		LoadThreshold:      4.0,
		MonitoringEndpoint: os.Getenv("MONITORING_ENDPOINT"),
	}
}
