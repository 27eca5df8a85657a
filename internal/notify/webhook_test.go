package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mental-lab/opswatch/internal/models"
)

func testAlerts() []models.Alert {
	return []models.Alert{
		{Level: models.AlertLevelCritical, Domain: "api.mycompany.com", Message: "Certificate expires in 3 days!"},
		{Level: models.AlertLevelWarning, Domain: "www.mycompany.com", Message: "Certificate expires in 20 days"},
	}
}

func TestWebhookSendAlerts(t *testing.T) {
	var received webhookPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("请求方法应为 POST，实际为 %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type 错误: %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("解析请求体失败: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	if err := NewWebhookNotifier(server.URL).SendAlerts(testAlerts()); err != nil {
		t.Fatalf("发送失败: %v", err)
	}

	if received.Username != "SSL Monitor" {
		t.Errorf("username 错误: %s", received.Username)
	}
	if received.IconEmoji != ":lock:" {
		t.Errorf("icon_emoji 错误: %s", received.IconEmoji)
	}
	if !strings.HasPrefix(received.Text, "SSL Certificate Alert:\n") {
		t.Errorf("摘要开头错误: %q", received.Text)
	}
	if !strings.Contains(received.Text, "🔴 api.mycompany.com: Certificate expires in 3 days!") {
		t.Errorf("critical 告警行错误: %q", received.Text)
	}
	if !strings.Contains(received.Text, "🟡 www.mycompany.com: Certificate expires in 20 days") {
		t.Errorf("warning 告警行错误: %q", received.Text)
	}
}

func TestWebhookServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if err := NewWebhookNotifier(server.URL).SendAlerts(testAlerts()); err == nil {
		t.Error("非 200 响应应返回错误")
	}
}

func TestWebhookNoopWhenUnconfigured(t *testing.T) {
	if err := NewWebhookNotifier("").SendAlerts(testAlerts()); err != nil {
		t.Errorf("未配置 URL 时应为空操作: %v", err)
	}
	if err := NewWebhookNotifier("http://127.0.0.1:1").SendAlerts(nil); err != nil {
		t.Errorf("无告警时应为空操作: %v", err)
	}
}

func TestMailNotifierEnabled(t *testing.T) {
	n := &MailNotifier{}
	if n.Enabled() {
		t.Error("缺少配置时不应启用")
	}

	n = &MailNotifier{Host: "smtp.mycompany.com", To: "ops@mycompany.com"}
	if !n.Enabled() {
		t.Error("配置完整时应启用")
	}
}
