package sysmon

import (
	"context"
	"strings"
	"time"
)

// serviceQueryTimeout 单次服务状态查询超时
const serviceQueryTimeout = 10 * time.Second

// collectServices 检查服务列表的 active 状态，任何失败都视为未运行
func (c *Collector) collectServices() map[string]bool {
	status := make(map[string]bool, len(c.Services))
	for _, name := range c.Services {
		status[name] = c.serviceActive(name)
	}
	return status
}

// serviceActive 通过 service manager 查询单个服务是否处于 active 状态
func (c *Collector) serviceActive(name string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), serviceQueryTimeout)
	defer cancel()

	out, err := c.runner.Run(ctx, "systemctl", "is-active", name)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "active"
}
