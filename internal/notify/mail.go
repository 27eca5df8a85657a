package notify

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/mental-lab/opswatch/internal/models"
)

// MailNotifier 通过 SMTP 发送告警邮件
type MailNotifier struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

// NewMailNotifierFromEnv 从环境变量读取 SMTP 配置
// 需要 SMTP_HOST、SMTP_USERNAME、SMTP_PASSWORD，SMTP_PORT 默认 587
func NewMailNotifierFromEnv(to string) *MailNotifier {
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	return &MailNotifier{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		To:       to,
	}
}

// Enabled 判断是否具备发送邮件的完整配置
func (n *MailNotifier) Enabled() bool {
	return n.Host != "" && n.To != ""
}

// SendAlerts 发送告警摘要邮件
func (n *MailNotifier) SendAlerts(alerts []models.Alert) error {
	if !n.Enabled() || len(alerts) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.Username)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", "SSL Certificate Alert")
	m.SetBody("text/plain", FormatAlertSummary(alerts))

	d := gomail.NewDialer(n.Host, n.Port, n.Username, n.Password)
	return d.DialAndSend(m)
}
