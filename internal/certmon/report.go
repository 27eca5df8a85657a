package certmon

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mental-lab/opswatch/internal/config"
	"github.com/mental-lab/opswatch/internal/models"
)

// PrintHuman 输出人类可读的检查报告
func PrintHuman(w io.Writer, results []models.CertificateRecord, alerts []models.Alert, cfg *config.CertConfig) {
	fmt.Fprintf(w, "\nSSL Certificate Report - %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for _, cert := range results {
		if cert.Status == models.CertStatusError {
			fmt.Fprintf(w, "❌ %s: ERROR - %s\n", cert.Domain, cert.Error)
			continue
		}

		days := cert.DaysUntilExpiry
		var status string
		switch {
		case days <= cfg.CriticalDays:
			status = "❌ CRITICAL"
		case days <= cfg.WarningDays:
			status = "⚠️  WARNING"
		default:
			status = "✅ OK"
		}

		fmt.Fprintf(w, "%s %s: %d days until expiry\n", status, cert.Domain, days)
	}

	if len(alerts) > 0 {
		fmt.Fprintf(w, "\nAlerts (%d):\n", len(alerts))
		for _, alert := range alerts {
			icon := "⚠️"
			if alert.Level == models.AlertLevelCritical {
				icon = "❌"
			}
			fmt.Fprintf(w, "  %s %s: %s\n", icon, alert.Domain, alert.Message)
		}
	}
}

// PrintJSON 输出 JSON 格式的检查报告
func PrintJSON(w io.Writer, results []models.CertificateRecord, alerts []models.Alert, renewalsNeeded []string) error {
	report := models.CertReport{
		Timestamp:      time.Now().Format(time.RFC3339),
		Results:        results,
		Alerts:         alerts,
		RenewalsNeeded: renewalsNeeded,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
