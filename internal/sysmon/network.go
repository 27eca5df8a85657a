package sysmon

import (
	"context"
	"net"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"github.com/mental-lab/opswatch/internal/models"
)

// 网络探测超时
const (
	dnsTimeout  = 5 * time.Second
	pingTimeout = 10 * time.Second
)

// collectNetwork 采集网络连通性，DNS 和 ICMP 两个探测互相独立
func (c *Collector) collectNetwork() models.NetworkInfo {
	return models.NetworkInfo{
		DNSWorking:        c.checkDNS(),
		InternetReachable: c.checkPing(),
	}
}

// checkDNS 检查 DNS 解析是否可用
func (c *Collector) checkDNS() bool {
	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()

	addrs, err := net.DefaultResolver.LookupHost(ctx, c.DNSTarget)
	return err == nil && len(addrs) > 0
}

// checkPing 检查外网 ICMP 可达性
func (c *Collector) checkPing() bool {
	pinger, err := probing.NewPinger(c.PingTarget)
	if err != nil {
		return false
	}

	pinger.Count = 1
	pinger.Timeout = pingTimeout

	// 优先非特权模式（UDP），失败后回退到特权模式（需要 root 或 CAP_NET_RAW）
	pinger.SetPrivileged(false)
	if err := pinger.Run(); err != nil {
		pinger.SetPrivileged(true)
		if err := pinger.Run(); err != nil {
			return false
		}
	}

	return pinger.Statistics().PacketsRecv > 0
}
