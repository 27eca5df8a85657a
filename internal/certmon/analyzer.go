package certmon

import (
	"fmt"

	"github.com/mental-lab/opswatch/internal/config"
	"github.com/mental-lab/opswatch/internal/models"
)

// Analyze 根据阈值分析检查结果
// 返回按输入顺序排列的告警列表，以及需要续期的域名（仅 critical）
// critical 先于 warning 判断，边界值（剩余天数恰好等于阈值）落入更严格的一档
func Analyze(results []models.CertificateRecord, cfg *config.CertConfig) ([]models.Alert, []string) {
	var alerts []models.Alert
	var renewalsNeeded []string

	for _, cert := range results {
		if cert.Status == models.CertStatusError {
			alerts = append(alerts, models.Alert{
				Level:   models.AlertLevelCritical,
				Domain:  cert.Domain,
				Message: fmt.Sprintf("Certificate check failed: %s", cert.Error),
			})
			continue
		}

		daysLeft := cert.DaysUntilExpiry

		switch {
		case daysLeft <= cfg.CriticalDays:
			alerts = append(alerts, models.Alert{
				Level:   models.AlertLevelCritical,
				Domain:  cert.Domain,
				Message: fmt.Sprintf("Certificate expires in %d days!", daysLeft),
			})
			renewalsNeeded = append(renewalsNeeded, cert.Domain)
		case daysLeft <= cfg.WarningDays:
			alerts = append(alerts, models.Alert{
				Level:   models.AlertLevelWarning,
				Domain:  cert.Domain,
				Message: fmt.Sprintf("Certificate expires in %d days", daysLeft),
			})
		}
	}

	return alerts, renewalsNeeded
}

// HasCritical 判断告警列表中是否存在 critical 级别
func HasCritical(alerts []models.Alert) bool {
	for _, alert := range alerts {
		if alert.Level == models.AlertLevelCritical {
			return true
		}
	}
	return false
}
