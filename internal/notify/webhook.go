package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mental-lab/opswatch/internal/models"
)

// webhookTimeout Webhook 请求超时
const webhookTimeout = 10 * time.Second

// webhookPayload Webhook 请求体
type webhookPayload struct {
	Text      string `json:"text"`
	Username  string `json:"username"`
	IconEmoji string `json:"icon_emoji"`
}

// WebhookNotifier 通过 Webhook 发送告警摘要
type WebhookNotifier struct {
	URL    string
	client *http.Client
}

// NewWebhookNotifier 创建 Webhook 通知器，URL 为空时 SendAlerts 为空操作
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

// SendAlerts 把告警列表格式化为摘要并 POST 到 Webhook
func (n *WebhookNotifier) SendAlerts(alerts []models.Alert) error {
	if n.URL == "" || len(alerts) == 0 {
		return nil
	}

	payload := webhookPayload{
		Text:      FormatAlertSummary(alerts),
		Username:  "SSL Monitor",
		IconEmoji: ":lock:",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload failed: %w", err)
	}

	resp, err := n.client.Post(n.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send webhook failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("send webhook failed: status %d", resp.StatusCode)
	}
	return nil
}

// FormatAlertSummary 生成告警摘要文本，critical 使用红色标记
func FormatAlertSummary(alerts []models.Alert) string {
	var sb strings.Builder
	sb.WriteString("SSL Certificate Alert:\n")

	for _, alert := range alerts {
		emoji := "🟡"
		if alert.Level == models.AlertLevelCritical {
			emoji = "🔴"
		}
		sb.WriteString(fmt.Sprintf("%s %s: %s\n", emoji, alert.Domain, alert.Message))
	}

	return sb.String()
}
