//go:build !linux

package sysutil

// ConfigureICMPPermissions 非 Linux 系统无需配置
func ConfigureICMPPermissions() error {
	return nil
}
