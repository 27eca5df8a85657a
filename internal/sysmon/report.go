package sysmon

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mental-lab/opswatch/internal/models"
)

// PrintHuman 输出人类可读的监控报告
func PrintHuman(w io.Writer, snapshot models.MetricsSnapshot, warnings []string, serviceOrder []string) {
	fmt.Fprintf(w, "System Monitor Report - %s\n", snapshot.Timestamp)
	fmt.Fprintf(w, "Hostname: %s\n\n", snapshot.Hostname)

	if snapshot.System.Error == "" {
		fmt.Fprintf(w, "Memory Usage: %.1f%%\n", snapshot.System.MemoryUsedPercent)
	}
	if snapshot.Disk.Error == "" {
		fmt.Fprintf(w, "Disk Usage: %.1f%%\n", snapshot.Disk.DiskUsedPercent)
	}
	if snapshot.CPU.Error == "" {
		fmt.Fprintf(w, "Load Average: %.2f\n", snapshot.CPU.Load1)
	}

	connectivity := "FAILED"
	if snapshot.Network.InternetReachable {
		connectivity = "OK"
	}
	fmt.Fprintf(w, "Internet Connectivity: %s\n", connectivity)

	fmt.Fprintln(w, "\nService Status:")
	for _, name := range serviceOrder {
		statusText := "STOPPED"
		if snapshot.Services[name] {
			statusText = "RUNNING"
		}
		fmt.Fprintf(w, "  %s: %s\n", name, statusText)
	}

	if len(warnings) > 0 {
		fmt.Fprintln(w, "\nWARNINGS:")
		for _, warning := range warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	} else {
		fmt.Fprintln(w, "\nAll systems normal")
	}
}

// PrintJSON 输出 JSON 格式的监控报告
func PrintJSON(w io.Writer, snapshot models.MetricsSnapshot, warnings []string) error {
	status := "ok"
	if len(warnings) > 0 {
		status = "warning"
	}

	report := models.MetricsReport{
		Metrics:  snapshot,
		Warnings: warnings,
		Status:   status,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// LogEntry 构造运行日志记录，采集失败的指标为 null
func LogEntry(snapshot models.MetricsSnapshot, warnings []string) models.MetricsLogEntry {
	entry := models.MetricsLogEntry{
		Timestamp: snapshot.Timestamp,
		Hostname:  snapshot.Hostname,
		Warnings:  warnings,
	}

	if snapshot.System.Error == "" {
		v := snapshot.System.MemoryUsedPercent
		entry.MemoryPercent = &v
	}
	if snapshot.Disk.Error == "" {
		v := snapshot.Disk.DiskUsedPercent
		entry.DiskPercent = &v
	}
	if snapshot.CPU.Error == "" {
		v := snapshot.CPU.Load1
		entry.LoadAvg = &v
	}

	return entry
}
