package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mental-lab/opswatch/internal/certmon"
	"github.com/mental-lab/opswatch/internal/config"
	"github.com/mental-lab/opswatch/internal/models"
	"github.com/mental-lab/opswatch/internal/notify"
	"github.com/mental-lab/opswatch/internal/runlog"
	"github.com/mental-lab/opswatch/pkg/agent"
)

const defaultPort = 443

func main() {
	exitCode := 0

	rootCmd := newRootCmd(&exitCode)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func newRootCmd(exitCode *int) *cobra.Command {
	var (
		configPath  string
		checkDomain string
		renew       bool
		output      string
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:           "certmon",
		Short:         "SSL 证书监控与续期工具",
		Long:          "检查域名证书的剩余有效期，超过阈值时告警，必要时调用外部工具续期。",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			agent.InitLogger(&agent.LogConfig{Level: logLevel})
			*exitCode = run(configPath, checkDomain, renew, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultCertConfigPath, "配置文件路径")
	cmd.Flags().StringVar(&checkDomain, "check-domain", "", "仅检查指定域名")
	cmd.Flags().BoolVar(&renew, "renew", false, "对 critical 域名执行自动续期")
	cmd.Flags().StringVar(&output, "output", "human", "输出格式 (json|human)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "诊断日志级别")

	return cmd
}

// run 执行一次完整的检查流程，返回进程退出码
func run(configPath, checkDomain string, renew bool, output string) int {
	cfg := config.LoadCertConfig(configPath)

	domains := cfg.Domains
	if checkDomain != "" {
		domains = []string{checkDomain}
	}

	// 逐个域名顺序检查
	checker := certmon.NewChecker()
	results := make([]models.CertificateRecord, 0, len(domains))
	for _, domain := range domains {
		slog.Info("检查域名证书", "domain", domain)
		results = append(results, checker.Check(domain, defaultPort))
	}

	alerts, renewalsNeeded := certmon.Analyze(results, cfg)

	if output == "json" {
		if err := certmon.PrintJSON(os.Stdout, results, alerts, renewalsNeeded); err != nil {
			slog.Warn("输出 JSON 报告失败", "error", err)
		}
	} else {
		certmon.PrintHuman(os.Stdout, results, alerts, cfg)
	}

	if len(alerts) > 0 {
		sendNotifications(cfg, alerts)
	}

	if renew && len(renewalsNeeded) > 0 {
		certmon.NewRenewer(cfg).RenewAll(renewalsNeeded)
	}

	logResults(cfg, results, alerts)

	if certmon.HasCritical(alerts) {
		return 1
	}
	return 0
}

// sendNotifications 发送 Webhook 和邮件通知，失败仅打印警告
func sendNotifications(cfg *config.CertConfig, alerts []models.Alert) {
	if cfg.SlackWebhook != "" {
		if err := notify.NewWebhookNotifier(cfg.SlackWebhook).SendAlerts(alerts); err != nil {
			fmt.Printf("Error sending Slack alert: %v\n", err)
		} else {
			fmt.Println("Slack alert sent successfully")
		}
	}

	if cfg.EmailAlerts != "" {
		mailer := notify.NewMailNotifierFromEnv(cfg.EmailAlerts)
		if !mailer.Enabled() {
			return
		}
		if err := mailer.SendAlerts(alerts); err != nil {
			fmt.Printf("Error sending alert email: %v\n", err)
		}
	}
}

// logResults 追加一条运行日志记录
func logResults(cfg *config.CertConfig, results []models.CertificateRecord, alerts []models.Alert) {
	entry := models.CertLogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Hostname:  hostname(),
		Results:   results,
		Alerts:    alerts,
	}

	if err := runlog.Append(cfg.LogFile, entry); err != nil {
		fmt.Printf("Warning: Could not write to log file: %v\n", err)
	}
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
