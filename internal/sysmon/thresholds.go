package sysmon

import (
	"fmt"

	"github.com/mental-lab/opswatch/internal/models"
)

// 静态告警阈值，全部使用严格大于比较
const (
	MemoryWarnPercent = 90.0
	DiskWarnPercent   = 85.0
	// DefaultLoadThreshold 1 分钟负载的默认告警阈值，可通过参数覆盖
	DefaultLoadThreshold = 4.0
)

// CheckThresholds 对快照做独立的阈值比较，生成告警文本列表
// serviceOrder 决定服务告警的输出顺序；采集失败的子记录不产生告警
func CheckThresholds(snapshot models.MetricsSnapshot, loadThreshold float64, serviceOrder []string) []string {
	var warnings []string

	if snapshot.System.Error == "" && snapshot.System.MemoryUsedPercent > MemoryWarnPercent {
		warnings = append(warnings, fmt.Sprintf("High memory usage: %.1f%%", snapshot.System.MemoryUsedPercent))
	}

	if snapshot.Disk.Error == "" && snapshot.Disk.DiskUsedPercent > DiskWarnPercent {
		warnings = append(warnings, fmt.Sprintf("High disk usage: %.1f%%", snapshot.Disk.DiskUsedPercent))
	}

	if snapshot.CPU.Error == "" && snapshot.CPU.Load1 > loadThreshold {
		warnings = append(warnings, fmt.Sprintf("High load average: %.2f", snapshot.CPU.Load1))
	}

	if snapshot.Network.Error == "" && !snapshot.Network.InternetReachable {
		warnings = append(warnings, "Internet connectivity issue detected")
	}

	for _, name := range serviceOrder {
		if active, ok := snapshot.Services[name]; ok && !active {
			warnings = append(warnings, fmt.Sprintf("Service %s is not running", name))
		}
	}

	return warnings
}
