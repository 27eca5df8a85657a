//go:build linux

package sysutil

import "os"

// ConfigureICMPPermissions 放开非特权 ICMP 的 GID 范围
// 等价于 sysctl -w net.ipv4.ping_group_range="0 2147483647"，需要 root 权限
func ConfigureICMPPermissions() error {
	return os.WriteFile("/proc/sys/net/ipv4/ping_group_range", []byte("0 2147483647"), 0644)
}
