package models

// MetricsSnapshot 一次采集得到的完整主机指标
// 任何子采集失败都只在对应子记录上体现为 Error 字段，不影响其他子记录
type MetricsSnapshot struct {
	Timestamp string          `json:"timestamp"`
	Hostname  string          `json:"hostname"`
	System    MemoryInfo      `json:"system"`
	Disk      DiskInfo        `json:"disk"`
	CPU       CPUInfo         `json:"cpu"`
	Network   NetworkInfo     `json:"network"`
	Services  map[string]bool `json:"services"` // 服务名 -> 是否 active
}

// MemoryInfo 内存子记录
type MemoryInfo struct {
	MemoryTotalBytes     uint64  `json:"memory_total_bytes,omitempty"`
	MemoryAvailableBytes uint64  `json:"memory_available_bytes,omitempty"`
	MemoryUsedPercent    float64 `json:"memory_used_percent,omitempty"` // (total-available)/total*100，保留两位小数
	Error                string  `json:"error,omitempty"`
}

// DiskInfo 磁盘子记录（仅根文件系统一个挂载点）
type DiskInfo struct {
	DiskTotalBytes     uint64  `json:"disk_total_bytes,omitempty"`
	DiskUsedBytes      uint64  `json:"disk_used_bytes,omitempty"`
	DiskAvailableBytes uint64  `json:"disk_available_bytes,omitempty"`
	DiskUsedPercent    float64 `json:"disk_used_percent,omitempty"`
	Error              string  `json:"error,omitempty"`
}

// CPUInfo 负载子记录
type CPUInfo struct {
	Load1  float64 `json:"load_1min,omitempty"`
	Load5  float64 `json:"load_5min,omitempty"`
	Load15 float64 `json:"load_15min,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// NetworkInfo 网络连通性子记录，两个探测互相独立
type NetworkInfo struct {
	DNSWorking        bool   `json:"dns_working"`
	InternetReachable bool   `json:"internet_reachable"`
	Error             string `json:"error,omitempty"`
}

// MetricsLogEntry 系统监控的运行日志记录（JSON Lines，一次运行一条）
// 指针字段在对应子采集失败时为 null
type MetricsLogEntry struct {
	Timestamp     string   `json:"timestamp"`
	Hostname      string   `json:"hostname"`
	Warnings      []string `json:"warnings"`
	MemoryPercent *float64 `json:"memory_percent"`
	DiskPercent   *float64 `json:"disk_percent"`
	LoadAvg       *float64 `json:"load_avg"`
}

// MetricsReport JSON 输出格式
type MetricsReport struct {
	Metrics  MetricsSnapshot `json:"metrics"`
	Warnings []string        `json:"warnings"`
	Status   string          `json:"status"` // ok / warning
}
