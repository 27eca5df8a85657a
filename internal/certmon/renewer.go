package certmon

import (
	"context"
	"log/slog"
	"time"

	"github.com/mental-lab/opswatch/internal/config"
	"github.com/mental-lab/opswatch/pkg/agent/sysutil"
)

// DefaultRenewTimeout 单个域名续期命令的超时
const DefaultRenewTimeout = 300 * time.Second

// webServer 候选 Web 服务器，按顺序探测，命中第一个即停止
type webServer struct {
	testCmd []string // 配置检查命令
	service string   // service manager 中的服务名
}

var webServers = []webServer{
	{testCmd: []string{"nginx", "-t"}, service: "nginx"},
	{testCmd: []string{"apache2ctl", "configtest"}, service: "apache2"},
}

// Renewer 证书续期执行器
// 调用外部续期工具，成功后重载 Web 服务器，所有子进程失败仅记录日志
type Renewer struct {
	cfg     *config.CertConfig
	runner  sysutil.Runner
	timeout time.Duration
}

// NewRenewer 创建续期执行器
func NewRenewer(cfg *config.CertConfig) *Renewer {
	return &Renewer{
		cfg:     cfg,
		runner:  sysutil.ExecRunner{},
		timeout: DefaultRenewTimeout,
	}
}

// RenewAll 依次续期所有域名，单个域名失败不影响其余域名
func (r *Renewer) RenewAll(domains []string) {
	for _, domain := range domains {
		r.Renew(domain)
	}
}

// Renew 续期单个域名，配置未开启自动续期时为空操作
func (r *Renewer) Renew(domain string) bool {
	if !r.cfg.AutoRenew {
		slog.Info("自动续期未开启，跳过", "domain", domain)
		return false
	}

	slog.Info("尝试续期证书", "domain", domain)

	args := []string{
		"renew",
		"--domain", domain,
		"--non-interactive",
		"--agree-tos",
	}
	if r.cfg.CertbotEmail != "" {
		args = append(args, "--email", r.cfg.CertbotEmail)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	out, err := r.runner.Run(ctx, "certbot", args...)
	if err != nil {
		slog.Warn("证书续期失败", "domain", domain, "error", err, "output", string(out))
		return false
	}

	slog.Info("证书续期成功", "domain", domain)

	// 重载 Web 服务器以加载新证书
	r.reloadWebServer()
	return true
}

// reloadWebServer 按固定顺序探测已部署的 Web 服务器并重载第一个命中的
func (r *Renewer) reloadWebServer() {
	ctx := context.Background()

	for _, server := range webServers {
		if _, err := r.runner.Run(ctx, server.testCmd[0], server.testCmd[1:]...); err != nil {
			continue
		}

		if out, err := r.runner.Run(ctx, "systemctl", "reload", server.service); err != nil {
			slog.Warn("重载 Web 服务器失败", "service", server.service, "error", err, "output", string(out))
		} else {
			slog.Info("已重载 Web 服务器", "service", server.service)
		}
		return
	}

	slog.Warn("未找到可重载的 Web 服务器")
}
