package sysmon

import (
	"strings"
	"testing"

	"github.com/mental-lab/opswatch/internal/models"
)

// healthySnapshot 构造一个各项指标均正常的快照
func healthySnapshot() models.MetricsSnapshot {
	return models.MetricsSnapshot{
		Timestamp: "2026-08-30T10:00:00+08:00",
		Hostname:  "test-host",
		System:    models.MemoryInfo{MemoryUsedPercent: 50.0},
		Disk:      models.DiskInfo{DiskUsedPercent: 40.0},
		CPU:       models.CPUInfo{Load1: 1.0, Load5: 0.8, Load15: 0.5},
		Network:   models.NetworkInfo{DNSWorking: true, InternetReachable: true},
		Services: map[string]bool{
			"sshd":             true,
			"systemd-resolved": true,
			"cron":             true,
		},
	}
}

func TestCheckThresholdsHealthy(t *testing.T) {
	warnings := CheckThresholds(healthySnapshot(), DefaultLoadThreshold, DefaultServices)
	if len(warnings) != 0 {
		t.Errorf("健康快照不应产生警告，实际产生: %v", warnings)
	}
}

func TestMemoryThresholdStrict(t *testing.T) {
	// 阈值比较为严格大于
	snapshot := healthySnapshot()
	snapshot.System.MemoryUsedPercent = 90.0

	if warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices); len(warnings) != 0 {
		t.Errorf("内存恰好 90%% 不应产生警告，实际产生: %v", warnings)
	}

	snapshot.System.MemoryUsedPercent = 90.01
	warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices)
	if len(warnings) != 1 {
		t.Fatalf("内存 90.01%% 应产生 1 条警告，实际产生 %d 条", len(warnings))
	}
	if !strings.Contains(warnings[0], "High memory usage") {
		t.Errorf("警告文本应包含 High memory usage，实际为: %s", warnings[0])
	}
}

func TestDiskThreshold(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.Disk.DiskUsedPercent = 85.0

	if warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices); len(warnings) != 0 {
		t.Errorf("磁盘恰好 85%% 不应产生警告，实际产生: %v", warnings)
	}

	snapshot.Disk.DiskUsedPercent = 92.5
	warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "High disk usage: 92.5%") {
		t.Errorf("磁盘警告错误: %v", warnings)
	}
}

func TestLoadThresholdConfigurable(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.CPU.Load1 = 5.5

	// 默认阈值 4.0 应告警
	warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "High load average") {
		t.Errorf("负载警告错误: %v", warnings)
	}

	// 提高阈值后不再告警
	if warnings := CheckThresholds(snapshot, 8.0, DefaultServices); len(warnings) != 0 {
		t.Errorf("阈值 8.0 时不应产生警告，实际产生: %v", warnings)
	}
}

func TestNetworkWarning(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.Network.InternetReachable = false

	warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices)
	if len(warnings) != 1 || warnings[0] != "Internet connectivity issue detected" {
		t.Errorf("网络警告错误: %v", warnings)
	}

	// DNS 失败本身不产生警告，与原始行为一致
	snapshot = healthySnapshot()
	snapshot.Network.DNSWorking = false
	if warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices); len(warnings) != 0 {
		t.Errorf("仅 DNS 失败不应产生警告，实际产生: %v", warnings)
	}
}

func TestServiceWarningsOrdered(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.Services["sshd"] = false
	snapshot.Services["cron"] = false

	warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices)

	want := []string{
		"Service sshd is not running",
		"Service cron is not running",
	}
	if len(warnings) != len(want) {
		t.Fatalf("应产生 %d 条警告，实际产生 %d 条: %v", len(want), len(warnings), warnings)
	}
	for i, w := range want {
		if warnings[i] != w {
			t.Errorf("第 %d 条警告应为 %q，实际为 %q", i, w, warnings[i])
		}
	}
}

func TestErroredSubRecordsProduceNoWarnings(t *testing.T) {
	// 采集失败的子记录不参与阈值比较
	snapshot := healthySnapshot()
	snapshot.System = models.MemoryInfo{Error: "Failed to get memory info: boom", MemoryUsedPercent: 99.0}
	snapshot.Disk = models.DiskInfo{Error: "Failed to get disk usage: boom", DiskUsedPercent: 99.0}
	snapshot.CPU = models.CPUInfo{Error: "Failed to get CPU info: boom", Load1: 99.0}
	snapshot.Network = models.NetworkInfo{Error: "Failed to get network info: boom"}

	warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices)
	if len(warnings) != 0 {
		t.Errorf("采集失败的子记录不应产生警告，实际产生: %v", warnings)
	}
}

func TestMultipleWarnings(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.System.MemoryUsedPercent = 95.0
	snapshot.Disk.DiskUsedPercent = 90.0
	snapshot.CPU.Load1 = 6.0
	snapshot.Network.InternetReachable = false
	snapshot.Services["systemd-resolved"] = false

	warnings := CheckThresholds(snapshot, DefaultLoadThreshold, DefaultServices)
	if len(warnings) != 5 {
		t.Errorf("应产生 5 条警告，实际产生 %d 条: %v", len(warnings), warnings)
	}
}
