package sysmon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mental-lab/opswatch/internal/models"
)

// pushTimeout 指标上报请求超时
const pushTimeout = 10 * time.Second

// Pusher 将快照上报到外部监控端点
type Pusher struct {
	Endpoint string
	client   *http.Client
}

// NewPusher 创建上报器，endpoint 为空时 Push 为空操作
func NewPusher(endpoint string) *Pusher {
	return &Pusher{
		Endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
	}
}

// Push 以 JSON POST 上报一次快照
func (p *Pusher) Push(snapshot models.MetricsSnapshot) error {
	if p.Endpoint == "" {
		return nil
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot failed: %w", err)
	}

	resp, err := p.client.Post(p.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("push metrics failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("push metrics failed: status %d", resp.StatusCode)
	}
	return nil
}
