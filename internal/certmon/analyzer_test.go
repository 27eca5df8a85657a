package certmon

import (
	"testing"

	"github.com/mental-lab/opswatch/internal/config"
	"github.com/mental-lab/opswatch/internal/models"
)

func testConfig() *config.CertConfig {
	return &config.CertConfig{
		CriticalDays: 7,
		WarningDays:  30,
	}
}

func validRecord(domain string, days int) models.CertificateRecord {
	return models.CertificateRecord{
		Domain:          domain,
		Status:          models.CertStatusValid,
		DaysUntilExpiry: days,
	}
}

func TestAnalyzeThresholds(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name        string
		days        int
		wantLevel   string // 空字符串表示不产生告警
		wantRenewal bool
	}{
		{"已过期", -3, models.AlertLevelCritical, true},
		{"剩余 0 天", 0, models.AlertLevelCritical, true},
		{"临界边界值 7 天仍为 critical", 7, models.AlertLevelCritical, true},
		{"刚超过临界阈值为 warning", 8, models.AlertLevelWarning, false},
		{"警告边界值 30 天仍为 warning", 30, models.AlertLevelWarning, false},
		{"超过警告阈值无告警", 31, "", false},
		{"剩余天数充足", 90, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts, renewals := Analyze([]models.CertificateRecord{validRecord("example.com", tt.days)}, cfg)

			if tt.wantLevel == "" {
				if len(alerts) != 0 {
					t.Fatalf("不应产生告警，实际产生 %d 条: %+v", len(alerts), alerts)
				}
			} else {
				if len(alerts) != 1 {
					t.Fatalf("应产生 1 条告警，实际产生 %d 条", len(alerts))
				}
				if alerts[0].Level != tt.wantLevel {
					t.Errorf("告警级别应为 %s，实际为 %s", tt.wantLevel, alerts[0].Level)
				}
				if alerts[0].Domain != "example.com" {
					t.Errorf("告警域名错误: %s", alerts[0].Domain)
				}
			}

			if tt.wantRenewal {
				if len(renewals) != 1 || renewals[0] != "example.com" {
					t.Errorf("域名应进入续期列表，实际为 %v", renewals)
				}
			} else if len(renewals) != 0 {
				t.Errorf("域名不应进入续期列表，实际为 %v", renewals)
			}
		})
	}
}

func TestAnalyzeErrorRecord(t *testing.T) {
	cfg := testConfig()

	// 检查失败的记录无论剩余天数如何都是 critical
	record := models.CertificateRecord{
		Domain:          "broken.example.com",
		Status:          models.CertStatusError,
		Error:           "dial tcp: i/o timeout",
		DaysUntilExpiry: 365,
	}

	alerts, renewals := Analyze([]models.CertificateRecord{record}, cfg)

	if len(alerts) != 1 {
		t.Fatalf("应产生 1 条告警，实际产生 %d 条", len(alerts))
	}
	if alerts[0].Level != models.AlertLevelCritical {
		t.Errorf("告警级别应为 critical，实际为 %s", alerts[0].Level)
	}
	if alerts[0].Message != "Certificate check failed: dial tcp: i/o timeout" {
		t.Errorf("告警消息错误: %s", alerts[0].Message)
	}
	if len(renewals) != 0 {
		t.Errorf("检查失败的域名不应进入续期列表，实际为 %v", renewals)
	}
}

func TestAnalyzePreservesOrder(t *testing.T) {
	cfg := testConfig()

	records := []models.CertificateRecord{
		validRecord("a.example.com", 3),
		validRecord("b.example.com", 15),
		validRecord("c.example.com", 60),
		validRecord("d.example.com", 1),
	}

	alerts, renewals := Analyze(records, cfg)

	wantAlertDomains := []string{"a.example.com", "b.example.com", "d.example.com"}
	if len(alerts) != len(wantAlertDomains) {
		t.Fatalf("应产生 %d 条告警，实际产生 %d 条", len(wantAlertDomains), len(alerts))
	}
	for i, domain := range wantAlertDomains {
		if alerts[i].Domain != domain {
			t.Errorf("第 %d 条告警域名应为 %s，实际为 %s", i, domain, alerts[i].Domain)
		}
	}

	wantRenewals := []string{"a.example.com", "d.example.com"}
	if len(renewals) != len(wantRenewals) {
		t.Fatalf("续期列表长度应为 %d，实际为 %d", len(wantRenewals), len(renewals))
	}
	for i, domain := range wantRenewals {
		if renewals[i] != domain {
			t.Errorf("续期列表第 %d 项应为 %s，实际为 %s", i, domain, renewals[i])
		}
	}
}

func TestHasCritical(t *testing.T) {
	if HasCritical(nil) {
		t.Error("空列表不应包含 critical")
	}
	if HasCritical([]models.Alert{{Level: models.AlertLevelWarning}}) {
		t.Error("仅有 warning 时不应返回 true")
	}
	if !HasCritical([]models.Alert{{Level: models.AlertLevelWarning}, {Level: models.AlertLevelCritical}}) {
		t.Error("包含 critical 时应返回 true")
	}
}
