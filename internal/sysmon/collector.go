package sysmon

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/mental-lab/opswatch/internal/models"
	"github.com/mental-lab/opswatch/pkg/agent/sysutil"
)

// DefaultServices 默认检查的服务列表
var DefaultServices = []string{"sshd", "systemd-resolved", "cron"}

// Collector 系统指标采集器
// 各子项独立采集，互不影响，单项失败只在对应子记录写入 error 字段
type Collector struct {
	DiskPath   string   // 磁盘使用率采集的挂载点
	DNSTarget  string   // DNS 探测域名
	PingTarget string   // ICMP 探测地址
	Services   []string // 需要检查 active 状态的服务

	runner sysutil.Runner
}

// NewCollector 创建使用默认探测目标的采集器
func NewCollector() *Collector {
	return &Collector{
		DiskPath:   "/",
		DNSTarget:  "google.com",
		PingTarget: "8.8.8.8",
		Services:   DefaultServices,
		runner:     sysutil.ExecRunner{},
	}
}

// Collect 依次执行所有子采集并组装快照
func (c *Collector) Collect() models.MetricsSnapshot {
	snapshot := models.MetricsSnapshot{
		Timestamp: time.Now().Format(time.RFC3339),
		Hostname:  hostname(),
	}

	snapshot.System = c.collectMemory()
	snapshot.Disk = c.collectDisk()
	snapshot.CPU = c.collectLoad()
	snapshot.Network = c.collectNetwork()
	snapshot.Services = c.collectServices()

	return snapshot
}

// collectMemory 采集内存使用情况
func (c *Collector) collectMemory() models.MemoryInfo {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return models.MemoryInfo{Error: fmt.Sprintf("Failed to get memory info: %v", err)}
	}

	var usedPercent float64
	if vm.Total > 0 {
		usedPercent = round2(float64(vm.Total-vm.Available) / float64(vm.Total) * 100)
	}

	return models.MemoryInfo{
		MemoryTotalBytes:     vm.Total,
		MemoryAvailableBytes: vm.Available,
		MemoryUsedPercent:    usedPercent,
	}
}

// collectDisk 采集根文件系统的磁盘使用情况
func (c *Collector) collectDisk() models.DiskInfo {
	usage, err := disk.Usage(c.DiskPath)
	if err != nil {
		return models.DiskInfo{Error: fmt.Sprintf("Failed to get disk usage: %v", err)}
	}

	var usedPercent float64
	if usage.Total > 0 {
		usedPercent = round2(float64(usage.Used) / float64(usage.Total) * 100)
	}

	return models.DiskInfo{
		DiskTotalBytes:     usage.Total,
		DiskUsedBytes:      usage.Used,
		DiskAvailableBytes: usage.Free,
		DiskUsedPercent:    usedPercent,
	}
}

// collectLoad 采集负载平均值
func (c *Collector) collectLoad() models.CPUInfo {
	loadAvg, err := load.Avg()
	if err != nil {
		return models.CPUInfo{Error: fmt.Sprintf("Failed to get CPU info: %v", err)}
	}

	return models.CPUInfo{
		Load1:  loadAvg.Load1,
		Load5:  loadAvg.Load5,
		Load15: loadAvg.Load15,
	}
}

// hostname 获取主机名，优先使用 gopsutil 的主机信息
func hostname() string {
	if info, err := host.Info(); err == nil && info.Hostname != "" {
		return info.Hostname
	}

	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

// round2 保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
